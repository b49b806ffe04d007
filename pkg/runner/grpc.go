package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/maestro-orch/maestro/proto"
)

// GRPCRunner executes tasks against an external executor sidecar over gRPC.
type GRPCRunner struct {
	conn   *grpc.ClientConn
	client pb.ExecutorServiceClient
}

// NewGRPCRunner dials the executor sidecar. The connection is lazy; a
// sidecar that is down at startup surfaces as per-call errors, not here.
func NewGRPCRunner(address string) (*GRPCRunner, error) {
	conn, err := grpc.NewClient(address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create executor client: %w", err)
	}

	slog.Info("Executor gRPC client created", "address", address)
	return &GRPCRunner{
		conn:   conn,
		client: pb.NewExecutorServiceClient(conn),
	}, nil
}

// Execute runs one task on the sidecar and maps the response.
func (r *GRPCRunner) Execute(ctx context.Context, req TaskRequest) (*TaskResult, error) {
	pbReq := &pb.ExecuteTaskRequest{
		AgentId:       req.AgentID,
		Role:          req.Role,
		Task:          req.Task,
		WorkspacePath: req.WorkspacePath,
		BudgetTokens:  int64(req.BudgetTokens),
	}
	if rc := req.RoleConfig; rc != nil {
		pbReq.Model = rc.Model
		pbReq.Temperature = rc.Temperature
		pbReq.MaxOutputTokens = int64(rc.MaxOutputTokens)
		pbReq.SystemPrompt = rc.SystemPrompt
	}

	start := time.Now()
	resp, err := r.client.ExecuteTask(ctx, pbReq)
	if err != nil {
		return nil, fmt.Errorf("executor call failed: %w", err)
	}

	result := &TaskResult{
		Output:     resp.GetOutput(),
		TokensUsed: int(resp.GetTokensUsed()),
		CostUSD:    resp.GetCostUsd(),
		DurationMS: resp.GetDurationMs(),
		IsError:    resp.GetIsError(),
		Error:      resp.GetError(),
	}
	if result.DurationMS == 0 {
		result.DurationMS = time.Since(start).Milliseconds()
	}
	return result, nil
}

// Close tears down the client connection.
func (r *GRPCRunner) Close() error {
	if r.conn == nil {
		return nil
	}
	return r.conn.Close()
}
