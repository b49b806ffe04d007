// Package runner abstracts the execution backend that actually performs an
// agent's task. The kernel only sees TaskRunner; the concrete backend is a
// gRPC sidecar in production and a stub in tests.
package runner

import (
	"context"

	"github.com/maestro-orch/maestro/pkg/config"
)

// TaskRequest carries everything a backend needs to execute one agent task.
type TaskRequest struct {
	AgentID       string
	Role          string
	Task          string
	WorkspacePath string
	BudgetTokens  int
	RoleConfig    *config.RoleConfig
}

// TaskResult is the outcome of a single task execution.
type TaskResult struct {
	Output     string
	TokensUsed int
	CostUSD    float64
	DurationMS int64
	IsError    bool
	Error      string
}

// TaskRunner executes one agent task to completion. Implementations must
// honor ctx cancellation; a cancelled run returns ctx.Err().
type TaskRunner interface {
	Execute(ctx context.Context, req TaskRequest) (*TaskResult, error)
}
