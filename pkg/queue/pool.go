package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/maestro-orch/maestro/ent"
	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/pkg/config"
	"github.com/maestro-orch/maestro/pkg/models"
	"github.com/maestro-orch/maestro/pkg/runner"
	"github.com/maestro-orch/maestro/pkg/services"
)

// WorkerPool manages the execution workers and the orphan detection loop.
// It is also the kernel's ExecutionCanceller: terminating an agent cancels
// its in-flight execution through the registry.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	config   *config.KernelConfig
	agents   *services.AgentService
	roles    *config.RoleRegistry
	runner   runner.TaskRunner
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Execution cancel registry: agent_id → cancel function
	activeAgents map[string]context.CancelFunc
	mu           sync.RWMutex
	started      bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.KernelConfig, agents *services.AgentService, roles *config.RoleRegistry, r runner.TaskRunner) *WorkerPool {
	return &WorkerPool{
		podID:        podID,
		client:       client,
		config:       cfg,
		agents:       agents,
		roles:        roles,
		runner:       r,
		workers:      make([]*Worker, 0, cfg.WorkerCount),
		stopCh:       make(chan struct{}),
		activeAgents: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.agents, p.roles, p.runner, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current agents before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveAgentIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active executions to complete",
			"count", len(active),
			"agent_ids", active)
	}

	// Signal all workers to stop (they finish current executions)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal orphan detection to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterAgent stores a cancel function for termination cancellation.
func (p *WorkerPool) RegisterAgent(agentID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeAgents[agentID] = cancel
}

// UnregisterAgent removes the cancel function when execution ends.
func (p *WorkerPool) UnregisterAgent(agentID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeAgents, agentID)
}

// CancelAgent triggers context cancellation for an agent executing on this
// pod. A miss is normal: the agent may be pending, finished, or on another
// pod.
func (p *WorkerPool) CancelAgent(agentID string) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeAgents[agentID]; ok {
		cancel()
	}
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	health := &PoolHealth{
		PodID:         p.podID,
		TotalWorkers:  len(p.workers),
		MaxConcurrent: p.config.MaxConcurrentExecutions,
		DBReachable:   true,
	}

	queueDepth, err := p.client.Agent.Query().
		Where(
			agent.StatusEQ(agent.StatusPending),
			agent.RoleNEQ(models.WorkflowCoordinatorRole),
		).
		Count(ctx)
	if err != nil {
		slog.Error("Failed to query queue depth for health check", "pod_id", p.podID, "error", err)
		health.DBReachable = false
		health.DBError = err.Error()
	}
	health.QueueDepth = queueDepth

	p.mu.RLock()
	health.ActiveExecutions = len(p.activeAgents)
	p.mu.RUnlock()

	for _, w := range p.workers {
		health.WorkerStats = append(health.WorkerStats, w.Health())
	}

	p.orphans.mu.Lock()
	health.LastOrphanScan = p.orphans.lastOrphanScan
	health.OrphansRecovered = p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	health.IsHealthy = health.DBReachable
	return health
}

func (p *WorkerPool) getActiveAgentIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeAgents))
	for id := range p.activeAgents {
		ids = append(ids, id)
	}
	return ids
}
