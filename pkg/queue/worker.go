package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/maestro-orch/maestro/ent"
	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/pkg/config"
	"github.com/maestro-orch/maestro/pkg/models"
	"github.com/maestro-orch/maestro/pkg/runner"
	"github.com/maestro-orch/maestro/pkg/services"
)

// Worker is a single execution worker that polls for and runs pending
// agents. Claims go through FOR UPDATE SKIP LOCKED, so any number of
// workers (and pods) can poll the same table without double-executing.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.KernelConfig
	agents   *services.AgentService
	roles    *config.RoleRegistry
	runner   runner.TaskRunner
	pool     AgentRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu              sync.RWMutex
	status          WorkerStatus
	currentAgentID  string
	agentsProcessed int
	lastActivity    time.Time
}

// NewWorker creates a new execution worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.KernelConfig, agents *services.AgentService, roles *config.RoleRegistry, r runner.TaskRunner, pool AgentRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		agents:       agents,
		roles:        roles,
		runner:       r,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:              w.id,
		Status:          w.status,
		CurrentAgentID:  w.currentAgentID,
		AgentsProcessed: w.agentsProcessed,
		LastActivity:    w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Execution worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoAgentsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing agent", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an agent, and runs it.
func (w *Worker) pollAndProcess(ctx context.Context) (err error) {
	// 1. Check global capacity (best-effort; racy with concurrent workers
	//    but bounded by WorkerCount and mitigated by poll jitter).
	executing, err := w.client.Agent.Query().
		Where(agent.StatusEQ(agent.StatusExecuting)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking executing agents: %w", err)
	}
	if executing >= w.config.MaxConcurrentExecutions {
		return ErrAtCapacity
	}

	// 2. Claim the next pending agent
	a, err := w.claimNextAgent(ctx)
	if err != nil {
		return err
	}

	log := slog.With("agent_id", a.ID, "worker_id", w.id)
	log.Info("Agent claimed", "role", a.Role)

	w.setStatus(WorkerStatusWorking, a.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// A panicking runner must not take the worker loop down with it.
	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic during agent execution", "panic", r)
			if serr := w.agents.SetStatus(context.Background(), a.ID, agent.StatusFailed,
				fmt.Sprintf("execution panicked: %v", r)); serr != nil {
				log.Error("Failed to fail panicked agent", "error", serr)
			}
			err = nil
		}
	}()

	// 3. Create execution context with timeout
	execCtx, cancelExec := context.WithTimeout(ctx, w.config.AgentTimeout)
	defer cancelExec()

	// 4. Register cancel function for termination-triggered cancellation
	w.pool.RegisterAgent(a.ID, cancelExec)
	defer w.pool.UnregisterAgent(a.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(execCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, a.ID)

	// 6. Run the agent's task
	runErr := w.agents.Run(execCtx, a, w.runner, w.roles.Get(a.Role))

	cancelHeartbeat()

	// 7. Settle cancellation outcomes (use background context — the
	//    execution context is already dead).
	switch {
	case runErr != nil && errors.Is(execCtx.Err(), context.DeadlineExceeded):
		serr := w.agents.SetStatus(context.Background(), a.ID, agent.StatusFailed,
			fmt.Sprintf("execution timed out after %v", w.config.AgentTimeout))
		if serr != nil && !errors.Is(serr, services.ErrInvalidTransition) {
			log.Error("Failed to fail timed-out agent", "error", serr)
			return serr
		}
		log.Warn("Agent execution timed out")
	case runErr != nil && errors.Is(execCtx.Err(), context.Canceled):
		// Terminated from outside; the terminator owns the status.
		log.Info("Agent execution cancelled")
	case runErr != nil:
		// Run already recorded the failure.
		log.Warn("Agent execution failed", "error", runErr)
	}

	w.mu.Lock()
	w.agentsProcessed++
	w.mu.Unlock()

	log.Info("Agent processing complete")
	return nil
}

// claimNextAgent atomically claims the oldest pending agent using
// FOR UPDATE SKIP LOCKED. Workflow coordinator agents are never claimed;
// the engine drives those.
func (w *Worker) claimNextAgent(ctx context.Context) (*ent.Agent, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	a, err := tx.Agent.Query().
		Where(
			agent.StatusEQ(agent.StatusPending),
			agent.RoleNEQ(models.WorkflowCoordinatorRole),
		).
		Order(ent.Asc(agent.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoAgentsAvailable
		}
		return nil, fmt.Errorf("failed to query pending agent: %w", err)
	}

	// Claim: the executing status takes the agent out of every other
	// worker's pending query.
	a, err = a.Update().
		SetStatus(agent.StatusExecuting).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim agent: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return a, nil
}

// runHeartbeat periodically touches updated_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, agentID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Agent.UpdateOneID(agentID).
				SetUpdatedAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "agent_id", agentID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, agentID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentAgentID = agentID
	w.lastActivity = time.Now()
}
