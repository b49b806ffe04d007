package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/maestro-orch/maestro/ent"
	entagent "github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/workflowgraph"
	"github.com/maestro-orch/maestro/ent/workflownode"
	"github.com/maestro-orch/maestro/pkg/config"
	"github.com/maestro-orch/maestro/pkg/models"
	"github.com/maestro-orch/maestro/pkg/services"
)

// Engine drives instantiated workflow graphs: it validates the DAG, spawns
// node agents as their dependencies complete, and settles the graph into a
// terminal status.
//
// The graph row is the serialization point. Every handler that moves nodes
// locks the graph FOR UPDATE first, so the push path (agent completion
// callbacks) and the pull path (poller) can both fire for the same event and
// only one of them takes effect.
type Engine struct {
	client *ent.Client
	agents *services.AgentService
	cfg    *config.KernelConfig
}

// NewEngine creates a new workflow engine.
func NewEngine(client *ent.Client, agents *services.AgentService, cfg *config.KernelConfig) *Engine {
	return &Engine{client: client, agents: agents, cfg: cfg}
}

// Validate checks an instantiated graph and records the outcome on the
// graph row. Only validated graphs may Execute. Safe to re-run.
func (e *Engine) Validate(ctx context.Context, graphID string) (*models.ValidationResult, error) {
	graph, err := e.getGraph(ctx, graphID)
	if err != nil {
		return nil, err
	}

	nodes, err := e.client.WorkflowNode.Query().
		Where(workflownode.WorkflowGraphIDEQ(graphID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load nodes: %w", err)
	}

	var errs []string
	if len(nodes) == 0 {
		errs = append(errs, "graph has no nodes")
	}

	keys := make(map[string]bool, len(nodes))
	budgetSum := 0
	for _, n := range nodes {
		keys[n.NodeKey] = true
		budgetSum += n.BudgetAllocation
	}
	deps := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		deps[n.NodeKey] = n.Dependencies
		for _, d := range n.Dependencies {
			if !keys[d] {
				errs = append(errs, fmt.Sprintf("node %s depends on unknown node %s", n.NodeKey, d))
			}
		}
	}
	if cyclic, member := hasCycle(deps); cyclic {
		errs = append(errs, fmt.Sprintf("node %s participates in a dependency cycle", member))
	}
	if budgetSum > graph.TotalBudget {
		errs = append(errs, fmt.Sprintf("node budgets sum to %d, exceeding total %d", budgetSum, graph.TotalBudget))
	}

	status := workflowgraph.ValidationStatusValidated
	if len(errs) > 0 {
		status = workflowgraph.ValidationStatusInvalid
	}
	update := e.client.WorkflowGraph.UpdateOneID(graphID).SetValidationStatus(status)
	if len(errs) > 0 {
		update = update.SetValidationErrors(errs)
	} else {
		update = update.ClearValidationErrors()
	}
	if err := update.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record validation: %w", err)
	}

	return &models.ValidationResult{Valid: len(errs) == 0, Errors: errs}, nil
}

// Execute starts a validated graph: the graph goes active, its workflow
// agent starts executing, and every node with no dependencies is released.
func (e *Engine) Execute(ctx context.Context, graphID string) error {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	graph, err := e.lockGraphTx(ctx, tx, graphID)
	if err != nil {
		return err
	}
	if graph.ValidationStatus != workflowgraph.ValidationStatusValidated {
		return fmt.Errorf("%w: graph %s is %s, must be validated before execution",
			services.ErrInvalidTransition, graphID, graph.ValidationStatus)
	}
	if graph.Status != workflowgraph.StatusPending {
		return fmt.Errorf("%w: graph %s is %s, only pending graphs start",
			services.ErrInvalidTransition, graphID, graph.Status)
	}

	if err := tx.WorkflowGraph.UpdateOne(graph).
		SetStatus(workflowgraph.StatusActive).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to activate graph: %w", err)
	}

	if err := e.releaseReadyTx(ctx, tx, graphID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit execution start: %w", err)
	}

	if graph.RootAgentID != nil {
		if err := e.agents.SetStatus(ctx, *graph.RootAgentID, entagent.StatusExecuting, ""); err != nil {
			slog.Error("Failed to start workflow agent", "graph_id", graphID, "error", err)
		}
	}

	slog.Info("Workflow execution started", "graph_id", graphID)
	return e.SpawnReadyNodes(ctx, graphID)
}

// Pause stops releasing new nodes. Agents already executing run on.
func (e *Engine) Pause(ctx context.Context, graphID string) error {
	return e.transitionGraph(ctx, graphID, workflowgraph.StatusActive, workflowgraph.StatusPaused)
}

// Resume reactivates a paused graph and releases any nodes that became
// ready while it slept.
func (e *Engine) Resume(ctx context.Context, graphID string) error {
	if err := e.transitionGraph(ctx, graphID, workflowgraph.StatusPaused, workflowgraph.StatusActive); err != nil {
		return err
	}
	return e.SpawnReadyNodes(ctx, graphID)
}

// Terminate stops a graph: remaining nodes are skipped and the workflow
// agent subtree is torn down, reclaiming every node budget. Idempotent.
func (e *Engine) Terminate(ctx context.Context, graphID, reason string) error {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	graph, err := e.lockGraphTx(ctx, tx, graphID)
	if err != nil {
		return err
	}
	if graphTerminal(graph.Status) {
		return tx.Commit()
	}

	if err := tx.WorkflowGraph.UpdateOne(graph).
		SetStatus(workflowgraph.StatusTerminated).
		SetTerminationReason(reason).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to terminate graph: %w", err)
	}

	if err := tx.WorkflowNode.Update().
		Where(
			workflownode.WorkflowGraphIDEQ(graphID),
			workflownode.ExecutionStatusIn(nonTerminalNodeStatuses...),
		).
		SetExecutionStatus(workflownode.ExecutionStatusSkipped).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to skip remaining nodes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit termination: %w", err)
	}

	if graph.RootAgentID != nil {
		if err := e.agents.Terminate(ctx, *graph.RootAgentID, reason); err != nil {
			slog.Error("Failed to terminate workflow agents", "graph_id", graphID, "error", err)
		}
	}

	slog.Info("Workflow terminated", "graph_id", graphID, "reason", reason)
	return nil
}

// Progress reports per-status node counts for a graph.
func (e *Engine) Progress(ctx context.Context, graphID string) (*models.WorkflowProgress, error) {
	graph, err := e.getGraph(ctx, graphID)
	if err != nil {
		return nil, err
	}

	nodes, err := e.client.WorkflowNode.Query().
		Where(workflownode.WorkflowGraphIDEQ(graphID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load nodes: %w", err)
	}

	counts := make(map[string]int)
	completed := 0
	for _, n := range nodes {
		counts[string(n.ExecutionStatus)]++
		if n.ExecutionStatus == workflownode.ExecutionStatusCompleted {
			completed++
		}
	}

	progress := &models.WorkflowProgress{
		GraphID:      graphID,
		GraphStatus:  string(graph.Status),
		TotalNodes:   len(nodes),
		StatusCounts: counts,
	}
	if len(nodes) > 0 {
		progress.PercentComplete = float64(completed) / float64(len(nodes))
	}
	return progress, nil
}

// OnAgentCompleted advances the graph when a node's agent completes. Agents
// that do not back a workflow node are ignored. Idempotent: re-delivery of
// the same completion is a no-op.
func (e *Engine) OnAgentCompleted(ctx context.Context, agentID string) error {
	node, err := e.nodeByAgent(ctx, agentID)
	if err != nil || node == nil {
		return err
	}

	a, err := e.agents.Get(ctx, agentID)
	if err != nil {
		return err
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	graph, err := e.lockGraphTx(ctx, tx, node.WorkflowGraphID)
	if err != nil {
		return err
	}

	node, err = tx.WorkflowNode.Get(ctx, node.ID)
	if err != nil {
		return fmt.Errorf("failed to reload node: %w", err)
	}
	if nodeTerminal(node.ExecutionStatus) {
		return tx.Commit()
	}

	update := tx.WorkflowNode.UpdateOne(node).
		SetExecutionStatus(workflownode.ExecutionStatusCompleted)
	if a.Result != nil {
		update = update.SetResult(*a.Result)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to complete node: %w", err)
	}

	if err := e.releaseReadyTx(ctx, tx, graph.ID); err != nil {
		return err
	}
	finalStatus, err := e.settleGraphTx(ctx, tx, graph)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit node completion: %w", err)
	}

	slog.Info("Workflow node completed", "graph_id", graph.ID, "node_key", node.NodeKey, "agent_id", agentID)

	e.finishWorkflowAgent(ctx, graph, finalStatus)
	if finalStatus == "" && graph.Status == workflowgraph.StatusActive {
		return e.SpawnReadyNodes(ctx, graph.ID)
	}
	return nil
}

// OnAgentFailed handles a node agent failing or being terminated. Under the
// default fail-fast policy the whole graph fails and in-flight agents are
// cancelled; with ContinueOnFailure only the dependent subtree is skipped
// and independent branches run to completion.
func (e *Engine) OnAgentFailed(ctx context.Context, agentID string) error {
	node, err := e.nodeByAgent(ctx, agentID)
	if err != nil || node == nil {
		return err
	}

	a, err := e.agents.Get(ctx, agentID)
	if err != nil {
		return err
	}
	errMsg := "agent " + agentID + " did not complete"
	if a.ErrorMessage != nil && *a.ErrorMessage != "" {
		errMsg = *a.ErrorMessage
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	graph, err := e.lockGraphTx(ctx, tx, node.WorkflowGraphID)
	if err != nil {
		return err
	}

	node, err = tx.WorkflowNode.Get(ctx, node.ID)
	if err != nil {
		return fmt.Errorf("failed to reload node: %w", err)
	}
	if nodeTerminal(node.ExecutionStatus) {
		return tx.Commit()
	}

	if err := tx.WorkflowNode.UpdateOne(node).
		SetExecutionStatus(workflownode.ExecutionStatusFailed).
		SetErrorMessage(errMsg).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to fail node: %w", err)
	}

	var finalStatus workflowgraph.Status
	if e.cfg.ContinueOnFailure {
		if err := e.skipDependentsTx(ctx, tx, graph.ID, node.NodeKey); err != nil {
			return err
		}
		finalStatus, err = e.settleGraphTx(ctx, tx, graph)
		if err != nil {
			return err
		}
	} else {
		// Fail fast: nothing else gets to run.
		if err := tx.WorkflowNode.Update().
			Where(
				workflownode.WorkflowGraphIDEQ(graph.ID),
				workflownode.ExecutionStatusIn(nonTerminalNodeStatuses...),
			).
			SetExecutionStatus(workflownode.ExecutionStatusSkipped).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to skip remaining nodes: %w", err)
		}
		if !graphTerminal(graph.Status) {
			if err := tx.WorkflowGraph.UpdateOne(graph).
				SetStatus(workflowgraph.StatusFailed).
				SetTerminationReason(fmt.Sprintf("node %s failed: %s", node.NodeKey, errMsg)).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to fail graph: %w", err)
			}
			finalStatus = workflowgraph.StatusFailed
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit node failure: %w", err)
	}

	slog.Warn("Workflow node failed",
		"graph_id", graph.ID, "node_key", node.NodeKey, "agent_id", agentID,
		"error", errMsg, "continue_on_failure", e.cfg.ContinueOnFailure)

	if finalStatus == workflowgraph.StatusFailed && !e.cfg.ContinueOnFailure && graph.RootAgentID != nil {
		// Cancel whatever is still in flight and reclaim node budgets.
		if err := e.agents.Terminate(ctx, *graph.RootAgentID, "workflow failed fast"); err != nil {
			slog.Error("Failed to cancel workflow agents", "graph_id", graph.ID, "error", err)
		}
		return nil
	}

	e.finishWorkflowAgent(ctx, graph, finalStatus)
	if finalStatus == "" && graph.Status == workflowgraph.StatusActive {
		return e.SpawnReadyNodes(ctx, graph.ID)
	}
	return nil
}

// SpawnReadyNodes materializes agents for every node in status ready. Each
// node is claimed (ready → spawning) under the graph lock before its agent
// is spawned, so concurrent callers never double-spawn. Also the poller's
// recovery hook for nodes left in ready by a crash.
func (e *Engine) SpawnReadyNodes(ctx context.Context, graphID string) error {
	ready, err := e.client.WorkflowNode.Query().
		Where(
			workflownode.WorkflowGraphIDEQ(graphID),
			workflownode.ExecutionStatusEQ(workflownode.ExecutionStatusReady),
		).
		Order(ent.Asc(workflownode.FieldPosition)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query ready nodes: %w", err)
	}

	for _, node := range ready {
		if err := e.spawnNode(ctx, graphID, node.ID); err != nil {
			return err
		}
	}
	return nil
}

// spawnNode claims one ready node and spawns its agent as a child of the
// workflow agent, carving the node budget out of the workflow pool.
func (e *Engine) spawnNode(ctx context.Context, graphID, nodeID string) error {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	graph, err := e.lockGraphTx(ctx, tx, graphID)
	if err != nil {
		return err
	}
	if graph.Status != workflowgraph.StatusActive {
		return tx.Commit()
	}

	node, err := tx.WorkflowNode.Get(ctx, nodeID)
	if err != nil {
		return fmt.Errorf("failed to reload node: %w", err)
	}
	if node.ExecutionStatus != workflownode.ExecutionStatusReady {
		// Another caller claimed it first.
		return tx.Commit()
	}

	task, err := e.enrichTaskTx(ctx, tx, graphID, node)
	if err != nil {
		return err
	}

	// The agent id is chosen before the agent exists and committed with
	// the claim, together with the enriched task. A crash after this
	// commit leaves a spawning node the poller can finish under the same
	// id, never a second agent.
	agentID := uuid.New().String()
	if err := tx.WorkflowNode.UpdateOne(node).
		SetExecutionStatus(workflownode.ExecutionStatusSpawning).
		SetAgentID(agentID).
		SetTaskDescription(task).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to claim node: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit node claim: %w", err)
	}

	return e.spawnNodeAgent(ctx, graph, node, agentID, task)
}

// spawnNodeAgent creates the agent a claimed node is waiting on, under the
// id recorded at claim time. A conflict means another pod finished this
// spawn first.
func (e *Engine) spawnNodeAgent(ctx context.Context, graph *ent.WorkflowGraph, node *ent.WorkflowNode, agentID, task string) error {
	var parentID string
	if graph.RootAgentID != nil {
		parentID = *graph.RootAgentID
	}
	_, err := e.agents.Spawn(ctx, models.SpawnRequest{
		AgentID:  agentID,
		Role:     node.Role,
		Task:     task,
		Budget:   node.BudgetAllocation,
		ParentID: parentID,
	})
	if errors.Is(err, services.ErrConflict) {
		slog.Info("Node agent already spawned",
			"graph_id", graph.ID, "node_key", node.NodeKey, "agent_id", agentID)
		return nil
	}
	if err != nil {
		// Spawn failure is a node failure; route it through the normal
		// failure path so the policy applies.
		slog.Error("Node spawn failed", "graph_id", graph.ID, "node_key", node.NodeKey, "error", err)
		if uerr := e.client.WorkflowNode.UpdateOneID(node.ID).
			SetExecutionStatus(workflownode.ExecutionStatusFailed).
			SetErrorMessage(err.Error()).
			Exec(ctx); uerr != nil {
			return fmt.Errorf("failed to record spawn failure: %w", uerr)
		}
		return e.failGraphForNode(ctx, graph.ID, node.NodeKey, err.Error())
	}

	slog.Info("Workflow node spawned",
		"graph_id", graph.ID, "node_key", node.NodeKey, "agent_id", agentID,
		"budget", node.BudgetAllocation)
	return nil
}

// RecoverNodeSpawn finishes a spawn interrupted between the node claim and
// the agent insert. The claim recorded the agent id and the final task, so
// the original spawn completes instead of a second agent being created.
func (e *Engine) RecoverNodeSpawn(ctx context.Context, nodeID string) error {
	node, err := e.client.WorkflowNode.Get(ctx, nodeID)
	if err != nil {
		return fmt.Errorf("failed to load node: %w", err)
	}
	if node.ExecutionStatus != workflownode.ExecutionStatusSpawning || node.AgentID == nil {
		return nil
	}
	graph, err := e.client.WorkflowGraph.Get(ctx, node.WorkflowGraphID)
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}
	if graph.Status != workflowgraph.StatusActive {
		return nil
	}

	slog.Warn("Finishing interrupted node spawn",
		"graph_id", graph.ID, "node_key", node.NodeKey, "agent_id", *node.AgentID)
	return e.spawnNodeAgent(ctx, graph, node, *node.AgentID, node.TaskDescription)
}

// MarkNodeExecuting mirrors the backing agent's move into executing onto
// the node row. Called by the poller.
func (e *Engine) MarkNodeExecuting(ctx context.Context, nodeID string) error {
	err := e.client.WorkflowNode.Update().
		Where(
			workflownode.IDEQ(nodeID),
			workflownode.ExecutionStatusEQ(workflownode.ExecutionStatusSpawning),
		).
		SetExecutionStatus(workflownode.ExecutionStatusExecuting).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark node executing: %w", err)
	}
	return nil
}

// enrichTaskTx appends completed dependency results to the node's task so
// downstream agents see upstream output.
func (e *Engine) enrichTaskTx(ctx context.Context, tx *ent.Tx, graphID string, node *ent.WorkflowNode) (string, error) {
	if len(node.Dependencies) == 0 {
		return node.TaskDescription, nil
	}

	deps, err := tx.WorkflowNode.Query().
		Where(
			workflownode.WorkflowGraphIDEQ(graphID),
			workflownode.NodeKeyIn(node.Dependencies...),
		).
		Order(ent.Asc(workflownode.FieldPosition)).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load dependency nodes: %w", err)
	}

	var b strings.Builder
	b.WriteString(node.TaskDescription)
	for _, dep := range deps {
		if dep.Result == nil || *dep.Result == "" {
			continue
		}
		fmt.Fprintf(&b, "\n\n--- Result from %s ---\n%s", dep.NodeKey, *dep.Result)
	}
	return b.String(), nil
}

// releaseReadyTx moves every pending node whose dependencies have all
// completed into ready. Runs under the graph lock.
func (e *Engine) releaseReadyTx(ctx context.Context, tx *ent.Tx, graphID string) error {
	nodes, err := tx.WorkflowNode.Query().
		Where(workflownode.WorkflowGraphIDEQ(graphID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load nodes: %w", err)
	}

	completed := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if n.ExecutionStatus == workflownode.ExecutionStatusCompleted {
			completed[n.NodeKey] = true
		}
	}

	for _, n := range nodes {
		if n.ExecutionStatus != workflownode.ExecutionStatusPending {
			continue
		}
		satisfied := true
		for _, dep := range n.Dependencies {
			if !completed[dep] {
				satisfied = false
				break
			}
		}
		if !satisfied {
			continue
		}
		if err := tx.WorkflowNode.UpdateOne(n).
			SetExecutionStatus(workflownode.ExecutionStatusReady).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to release node %s: %w", n.NodeKey, err)
		}
	}
	return nil
}

// skipDependentsTx skips the transitive closure of nodes depending on the
// failed node key. Runs under the graph lock.
func (e *Engine) skipDependentsTx(ctx context.Context, tx *ent.Tx, graphID, failedKey string) error {
	nodes, err := tx.WorkflowNode.Query().
		Where(workflownode.WorkflowGraphIDEQ(graphID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load nodes: %w", err)
	}

	dead := map[string]bool{failedKey: true}
	for changed := true; changed; {
		changed = false
		for _, n := range nodes {
			if dead[n.NodeKey] {
				continue
			}
			for _, dep := range n.Dependencies {
				if dead[dep] {
					dead[n.NodeKey] = true
					changed = true
					break
				}
			}
		}
	}

	for _, n := range nodes {
		if !dead[n.NodeKey] || n.NodeKey == failedKey {
			continue
		}
		if nodeTerminal(n.ExecutionStatus) {
			continue
		}
		if err := tx.WorkflowNode.UpdateOne(n).
			SetExecutionStatus(workflownode.ExecutionStatusSkipped).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to skip node %s: %w", n.NodeKey, err)
		}
	}
	return nil
}

// settleGraphTx checks whether any node can still run and, if not, moves
// the graph to completed or failed. Returns the terminal status applied, or
// "" when the graph is still running. Runs under the graph lock.
func (e *Engine) settleGraphTx(ctx context.Context, tx *ent.Tx, graph *ent.WorkflowGraph) (workflowgraph.Status, error) {
	if graphTerminal(graph.Status) {
		return "", nil
	}

	nodes, err := tx.WorkflowNode.Query().
		Where(workflownode.WorkflowGraphIDEQ(graph.ID)).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load nodes: %w", err)
	}

	degraded := false
	for _, n := range nodes {
		switch n.ExecutionStatus {
		case workflownode.ExecutionStatusFailed, workflownode.ExecutionStatusSkipped:
			degraded = true
		case workflownode.ExecutionStatusCompleted:
		default:
			// Something still runnable.
			return "", nil
		}
	}

	final := workflowgraph.StatusCompleted
	update := tx.WorkflowGraph.UpdateOne(graph)
	if degraded {
		final = workflowgraph.StatusFailed
		update = update.SetTerminationReason("one or more nodes failed")
	}
	if err := update.SetStatus(final).Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to settle graph: %w", err)
	}

	slog.Info("Workflow settled", "graph_id", graph.ID, "status", final)
	return final, nil
}

// finishWorkflowAgent moves the workflow agent to its terminal status after
// the graph settles.
func (e *Engine) finishWorkflowAgent(ctx context.Context, graph *ent.WorkflowGraph, final workflowgraph.Status) {
	if final == "" || graph.RootAgentID == nil {
		return
	}
	target := entagent.StatusCompleted
	errMsg := ""
	if final == workflowgraph.StatusFailed {
		target = entagent.StatusFailed
		errMsg = "workflow did not complete cleanly"
	}
	if err := e.agents.SetStatus(ctx, *graph.RootAgentID, target, errMsg); err != nil {
		slog.Error("Failed to finish workflow agent",
			"graph_id", graph.ID, "agent_id", *graph.RootAgentID, "error", err)
	}
}

// failGraphForNode applies the failure policy for a node that never got an
// agent (spawn failure), reusing the same settle logic as agent failures.
func (e *Engine) failGraphForNode(ctx context.Context, graphID, nodeKey, reason string) error {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	graph, err := e.lockGraphTx(ctx, tx, graphID)
	if err != nil {
		return err
	}

	var finalStatus workflowgraph.Status
	if e.cfg.ContinueOnFailure {
		if err := e.skipDependentsTx(ctx, tx, graphID, nodeKey); err != nil {
			return err
		}
		finalStatus, err = e.settleGraphTx(ctx, tx, graph)
		if err != nil {
			return err
		}
	} else {
		if err := tx.WorkflowNode.Update().
			Where(
				workflownode.WorkflowGraphIDEQ(graphID),
				workflownode.ExecutionStatusIn(nonTerminalNodeStatuses...),
			).
			SetExecutionStatus(workflownode.ExecutionStatusSkipped).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to skip remaining nodes: %w", err)
		}
		if !graphTerminal(graph.Status) {
			if err := tx.WorkflowGraph.UpdateOne(graph).
				SetStatus(workflowgraph.StatusFailed).
				SetTerminationReason(fmt.Sprintf("node %s failed to spawn: %s", nodeKey, reason)).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to fail graph: %w", err)
			}
			finalStatus = workflowgraph.StatusFailed
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit spawn failure: %w", err)
	}

	e.finishWorkflowAgent(ctx, graph, finalStatus)
	return nil
}

// transitionGraph applies one guarded graph status move under the lock.
func (e *Engine) transitionGraph(ctx context.Context, graphID string, from, to workflowgraph.Status) error {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	graph, err := e.lockGraphTx(ctx, tx, graphID)
	if err != nil {
		return err
	}
	if graph.Status != from {
		return fmt.Errorf("%w: graph %s is %s, expected %s",
			services.ErrInvalidTransition, graphID, graph.Status, from)
	}

	if err := tx.WorkflowGraph.UpdateOne(graph).SetStatus(to).Exec(ctx); err != nil {
		return fmt.Errorf("failed to update graph status: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit graph transition: %w", err)
	}

	slog.Info("Workflow status changed", "graph_id", graphID, "from", from, "to", to)
	return nil
}

// nodeByAgent resolves the workflow node backed by an agent, or nil when
// the agent is not part of a workflow.
func (e *Engine) nodeByAgent(ctx context.Context, agentID string) (*ent.WorkflowNode, error) {
	node, err := e.client.WorkflowNode.Query().
		Where(workflownode.AgentIDEQ(agentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve node for agent %s: %w", agentID, err)
	}
	return node, nil
}

// Get loads one workflow graph.
func (e *Engine) Get(ctx context.Context, graphID string) (*ent.WorkflowGraph, error) {
	return e.getGraph(ctx, graphID)
}

// Nodes returns a graph's nodes in position order.
func (e *Engine) Nodes(ctx context.Context, graphID string) ([]*ent.WorkflowNode, error) {
	if _, err := e.getGraph(ctx, graphID); err != nil {
		return nil, err
	}
	nodes, err := e.client.WorkflowNode.Query().
		Where(workflownode.WorkflowGraphIDEQ(graphID)).
		Order(ent.Asc(workflownode.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	return nodes, nil
}

// getGraph loads one graph row.
func (e *Engine) getGraph(ctx context.Context, graphID string) (*ent.WorkflowGraph, error) {
	graph, err := e.client.WorkflowGraph.Get(ctx, graphID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: graph %s", services.ErrNotFound, graphID)
		}
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}
	return graph, nil
}

// lockGraphTx locks the graph row FOR UPDATE within the transaction.
func (e *Engine) lockGraphTx(ctx context.Context, tx *ent.Tx, graphID string) (*ent.WorkflowGraph, error) {
	graph, err := tx.WorkflowGraph.Query().
		Where(workflowgraph.IDEQ(graphID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: graph %s", services.ErrNotFound, graphID)
		}
		return nil, fmt.Errorf("failed to lock graph: %w", err)
	}
	return graph, nil
}

var nonTerminalNodeStatuses = []workflownode.ExecutionStatus{
	workflownode.ExecutionStatusPending,
	workflownode.ExecutionStatusReady,
	workflownode.ExecutionStatusSpawning,
	workflownode.ExecutionStatusExecuting,
}

func nodeTerminal(st workflownode.ExecutionStatus) bool {
	switch st {
	case workflownode.ExecutionStatusCompleted, workflownode.ExecutionStatusFailed, workflownode.ExecutionStatusSkipped:
		return true
	}
	return false
}

func graphTerminal(st workflowgraph.Status) bool {
	switch st {
	case workflowgraph.StatusCompleted, workflowgraph.StatusFailed, workflowgraph.StatusTerminated:
		return true
	}
	return false
}
