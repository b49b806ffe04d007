// Maestro orchestration kernel server — provides the HTTP API, runs the
// execution worker pool, and drives workflow graphs.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/maestro-orch/maestro/pkg/api"
	"github.com/maestro-orch/maestro/pkg/config"
	"github.com/maestro-orch/maestro/pkg/database"
	"github.com/maestro-orch/maestro/pkg/kernel"
	"github.com/maestro-orch/maestro/pkg/runner"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// newRunner picks the task runner: a gRPC executor service when
// EXECUTOR_SERVICE_ADDR is set, otherwise the built-in stub (useful for
// development and smoke tests).
func newRunner() (runner.TaskRunner, func(), error) {
	addr := os.Getenv("EXECUTOR_SERVICE_ADDR")
	if addr == "" {
		slog.Warn("EXECUTOR_SERVICE_ADDR not set, using stub runner")
		return runner.NewStubRunner(100), func() {}, nil
	}

	// grpc.NewClient dials lazily; the connection is made on first RPC.
	r, err := runner.NewGRPCRunner(addr)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Executor client initialized", "addr", addr)
	return r, func() {
		if err := r.Close(); err != nil {
			slog.Error("Error closing executor client", "error", err)
		}
	}, nil
}

func main() {
	configPath := flag.String("config",
		getEnv("CONFIG_PATH", "./deploy/maestro.yaml"),
		"Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file, continuing with existing environment")
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting maestro",
		"http_port", httpPort,
		"pod_id", podID,
		"config_path", *configPath)

	ctx := context.Background()

	cfg, err := config.Initialize(*configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	taskRunner, closeRunner, err := newRunner()
	if err != nil {
		slog.Error("Failed to initialize task runner", "error", err)
		os.Exit(1)
	}
	defer closeRunner()

	k, err := kernel.New(cfg, dbClient, taskRunner, podID)
	if err != nil {
		slog.Error("Failed to build kernel", "error", err)
		os.Exit(1)
	}
	if err := k.Start(ctx); err != nil {
		slog.Error("Failed to start kernel", "error", err)
		os.Exit(1)
	}

	httpServer := api.NewServer(k)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Maestro started successfully",
		"pod_id", podID,
		"workers", cfg.Kernel.WorkerCount)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Stop background loops and wait for in-flight executions to settle.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Kernel.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		k.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Kernel stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete executions will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
