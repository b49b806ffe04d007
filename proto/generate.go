// Package proto holds the executor service wire definitions. The generated
// Go bindings are produced by protoc and are not checked in.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative runner.proto
