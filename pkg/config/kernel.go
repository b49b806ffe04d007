package config

import "time"

// KernelConfig contains the orchestration kernel's recognized options.
// These control hierarchy limits, worker loop cadence, and execution caps.
type KernelConfig struct {
	// MaxDepth is the maximum agent hierarchy depth. A root agent is at
	// depth 0; spawning at MaxDepth succeeds, spawning below it fails.
	MaxDepth int `yaml:"max_depth"`

	// PollInterval is the base period of the execution worker and the
	// workflow poller loops.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// WorkerCount is the number of execution worker goroutines polling for
	// pending agents.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentExecutions caps concurrent agent executions in this
	// process.
	MaxConcurrentExecutions int `yaml:"max_concurrent_executions"`

	// AgentTimeout is the per-agent execution wall clock. Exceeding it
	// transitions the agent to failed.
	AgentTimeout time.Duration `yaml:"agent_timeout"`

	// HeartbeatInterval is how often an executing agent's row is touched so
	// orphan detection can tell live executions from dead ones.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is the cadence of the orphan scan.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how stale an executing agent's heartbeat may be
	// before it is declared orphaned and failed.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// DefaultBudget is the initial token budget for root agents that do
	// not state one.
	DefaultBudget int `yaml:"default_budget"`

	// ContinueOnFailure switches the workflow failure policy from
	// fail-fast (default) to skip-failed-subtree: dependents of a failed
	// node are marked skipped and independent branches keep running.
	ContinueOnFailure bool `yaml:"continue_on_failure"`

	// GracefulShutdownTimeout is the max time to wait for in-flight agent
	// executions during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultKernelConfig returns the built-in kernel defaults.
func DefaultKernelConfig() *KernelConfig {
	return &KernelConfig{
		MaxDepth:                5,
		PollInterval:            5 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		WorkerCount:             4,
		MaxConcurrentExecutions: 16,
		AgentTimeout:            30 * time.Minute,
		HeartbeatInterval:       15 * time.Second,
		OrphanDetectionInterval: time.Minute,
		OrphanThreshold:         2 * time.Minute,
		DefaultBudget:           100_000,
		ContinueOnFailure:       false,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}
