package runner

import (
	"context"
	"fmt"
)

// StubRunner is a local TaskRunner for development and tests. It echoes a
// canned result and charges a fixed token cost per call.
type StubRunner struct {
	// TokensPerTask is the usage reported for every execution.
	TokensPerTask int

	// Fail, when set, makes every execution return an error result.
	Fail bool
}

// NewStubRunner creates a stub charging tokensPerTask per execution.
func NewStubRunner(tokensPerTask int) *StubRunner {
	return &StubRunner{TokensPerTask: tokensPerTask}
}

// Execute returns a synthetic result immediately, honoring cancellation.
func (r *StubRunner) Execute(ctx context.Context, req TaskRequest) (*TaskResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if r.Fail {
		return &TaskResult{
			IsError:    true,
			Error:      fmt.Sprintf("stub failure for agent %s", req.AgentID),
			TokensUsed: r.TokensPerTask,
		}, nil
	}

	return &TaskResult{
		Output:     fmt.Sprintf("completed: %s", req.Task),
		TokensUsed: r.TokensPerTask,
		DurationMS: 1,
	}, nil
}
