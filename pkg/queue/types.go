// Package queue provides the execution worker pool that claims pending
// agents from the database and runs their tasks.
package queue

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for queue operations.
var (
	// ErrNoAgentsAvailable indicates no pending agents are waiting.
	ErrNoAgentsAvailable = errors.New("no agents available")

	// ErrAtCapacity indicates the concurrent execution limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// AgentRegistry is the subset of WorkerPool used by Worker to expose an
// in-flight execution for cancellation.
type AgentRegistry interface {
	RegisterAgent(agentID string, cancel context.CancelFunc)
	UnregisterAgent(agentID string)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveExecutions int            `json:"active_executions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID              string       `json:"id"`
	Status          WorkerStatus `json:"status"`
	CurrentAgentID  string       `json:"current_agent_id,omitempty"`
	AgentsProcessed int          `json:"agents_processed"`
	LastActivity    time.Time    `json:"last_activity"`
}
