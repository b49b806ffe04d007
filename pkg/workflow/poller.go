package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/maestro-orch/maestro/ent"
	entagent "github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/workflowgraph"
	"github.com/maestro-orch/maestro/ent/workflownode"
	"github.com/maestro-orch/maestro/pkg/config"
)

// Poller is the pull side of workflow progression. The push side — agent
// completion callbacks — normally advances graphs immediately; the poller
// sweeps active graphs to heal anything the push path missed: callbacks
// lost to a crash, nodes stuck in ready or spawning, and agent terminal
// states observed by another pod. Every repair goes through the same
// idempotent engine handlers, so poller and callbacks can race freely.
type Poller struct {
	client   *ent.Client
	engine   *Engine
	cfg      *config.KernelConfig
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPoller creates a new workflow poller.
func NewPoller(client *ent.Client, engine *Engine, cfg *config.KernelConfig) *Poller {
	return &Poller{
		client: client,
		engine: engine,
		cfg:    cfg,
		stopCh: make(chan struct{}),
	}
}

// Start begins the polling loop in a goroutine.
func (p *Poller) Start(ctx context.Context) {
	p.wg.Add(1)
	go p.run(ctx)
}

// Stop signals the poller to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

func (p *Poller) run(ctx context.Context) {
	defer p.wg.Done()

	slog.Info("Workflow poller started", "interval", p.cfg.PollInterval)

	for {
		select {
		case <-p.stopCh:
			slog.Info("Workflow poller shutting down")
			return
		case <-ctx.Done():
			slog.Info("Context cancelled, workflow poller shutting down")
			return
		case <-time.After(p.interval()):
			if err := p.pollOnce(ctx); err != nil {
				slog.Error("Workflow poll failed", "error", err)
			}
		}
	}
}

// pollOnce sweeps every active graph.
func (p *Poller) pollOnce(ctx context.Context) error {
	graphIDs, err := p.client.WorkflowGraph.Query().
		Where(workflowgraph.StatusEQ(workflowgraph.StatusActive)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to query active graphs: %w", err)
	}

	for _, graphID := range graphIDs {
		if err := p.syncGraph(ctx, graphID); err != nil {
			slog.Error("Graph sync failed", "graph_id", graphID, "error", err)
		}
	}
	return nil
}

// syncGraph reconciles one graph's nodes with their backing agents.
func (p *Poller) syncGraph(ctx context.Context, graphID string) error {
	nodes, err := p.client.WorkflowNode.Query().
		Where(
			workflownode.WorkflowGraphIDEQ(graphID),
			workflownode.ExecutionStatusIn(
				workflownode.ExecutionStatusReady,
				workflownode.ExecutionStatusSpawning,
				workflownode.ExecutionStatusExecuting,
			),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query live nodes: %w", err)
	}

	spawnNeeded := false
	for _, node := range nodes {
		switch node.ExecutionStatus {
		case workflownode.ExecutionStatusReady:
			spawnNeeded = true

		case workflownode.ExecutionStatusSpawning:
			if node.AgentID == nil {
				// Claims always record the agent id; a nil here is a
				// broken row, not a recoverable state.
				slog.Error("Spawning node has no agent id", "node_id", node.ID)
				continue
			}
			if err := p.syncNodeAgent(ctx, node); err != nil {
				return err
			}

		case workflownode.ExecutionStatusExecuting:
			if node.AgentID != nil {
				if err := p.syncNodeAgent(ctx, node); err != nil {
					return err
				}
			}
		}
	}

	if spawnNeeded {
		return p.engine.SpawnReadyNodes(ctx, graphID)
	}
	return nil
}

// syncNodeAgent mirrors the backing agent's state onto the node via the
// engine's idempotent handlers.
func (p *Poller) syncNodeAgent(ctx context.Context, node *ent.WorkflowNode) error {
	a, err := p.client.Agent.Get(ctx, *node.AgentID)
	if err != nil {
		if ent.IsNotFound(err) {
			// A crash between the node claim and the agent insert. The
			// claim pinned the agent id, so after a grace period for an
			// in-flight insert the spawn is finished under that id.
			if node.ExecutionStatus == workflownode.ExecutionStatusSpawning &&
				time.Since(node.UpdatedAt) > 2*p.cfg.PollInterval {
				return p.engine.RecoverNodeSpawn(ctx, node.ID)
			}
			return nil
		}
		return fmt.Errorf("failed to load agent %s: %w", *node.AgentID, err)
	}

	switch a.Status {
	case entagent.StatusExecuting:
		if node.ExecutionStatus == workflownode.ExecutionStatusSpawning {
			return p.engine.MarkNodeExecuting(ctx, node.ID)
		}
	case entagent.StatusCompleted:
		return p.engine.OnAgentCompleted(ctx, a.ID)
	case entagent.StatusFailed, entagent.StatusTerminated:
		return p.engine.OnAgentFailed(ctx, a.ID)
	}
	return nil
}

// interval returns the poll duration with jitter.
func (p *Poller) interval() time.Duration {
	base := p.cfg.PollInterval
	jitter := p.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}
