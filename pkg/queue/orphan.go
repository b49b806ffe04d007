package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/maestro-orch/maestro/ent"
	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned executions.
// All pods run this independently — the recovery is idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds executing agents whose heartbeat went stale
// (their worker died without settling them) and fails them, which also
// reclaims their budget and notifies the workflow engine.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Agent.Query().
		Where(
			agent.StatusEQ(agent.StatusExecuting),
			agent.UpdatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned agents: %w", err)
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.mu.Unlock()

	if len(orphans) == 0 {
		return nil
	}

	// Agents executing on THIS pod have live heartbeats; anything stale
	// but locally registered is mid-write, skip it this round.
	activeHere := make(map[string]bool)
	for _, id := range p.getActiveAgentIDs() {
		activeHere[id] = true
	}

	recovered := 0
	for _, a := range orphans {
		if activeHere[a.ID] {
			continue
		}
		err := p.agents.SetStatus(ctx, a.ID, agent.StatusFailed,
			fmt.Sprintf("orphaned: no heartbeat since %s", a.UpdatedAt.Format(time.RFC3339)))
		if err != nil && !isRecoveryRace(err) {
			slog.Error("Failed to recover orphaned agent", "agent_id", a.ID, "error", err)
			continue
		}
		recovered++
	}

	if recovered > 0 {
		slog.Warn("Recovered orphaned agents", "count", recovered)
		p.orphans.mu.Lock()
		p.orphans.orphansRecovered += recovered
		p.orphans.mu.Unlock()
	}
	return nil
}

// isRecoveryRace reports whether another pod settled the agent first.
func isRecoveryRace(err error) bool {
	return errors.Is(err, services.ErrInvalidTransition) || errors.Is(err, services.ErrNotFound)
}

// CleanupStartupOrphans performs a one-time recovery sweep of agents left
// executing with a stale heartbeat by a previous run. Called once during
// startup, before the worker pool begins processing. Agents with fresh
// heartbeats are left alone — another pod may be running them.
func CleanupStartupOrphans(ctx context.Context, agents *services.AgentService, client *ent.Client, orphanThreshold time.Duration) error {
	threshold := time.Now().Add(-orphanThreshold)

	orphans, err := client.Agent.Query().
		Where(
			agent.StatusEQ(agent.StatusExecuting),
			agent.UpdatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run", "count", len(orphans))

	for _, a := range orphans {
		err := agents.SetStatus(ctx, a.ID, agent.StatusFailed,
			fmt.Sprintf("orphaned: no heartbeat since %s", a.UpdatedAt.Format(time.RFC3339)))
		if err != nil && !isRecoveryRace(err) {
			slog.Error("Failed to recover startup orphan", "agent_id", a.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "agent_id", a.ID)
	}
	return nil
}
