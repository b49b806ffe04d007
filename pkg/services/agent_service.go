package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-orch/maestro/ent"
	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/pkg/config"
	"github.com/maestro-orch/maestro/pkg/models"
	"github.com/maestro-orch/maestro/pkg/runner"
)

// WorkspaceCreator provisions and tears down an isolated working directory
// for an agent. Implemented by the workspace manager; optional — a nil
// creator means agents run without filesystem isolation.
type WorkspaceCreator interface {
	Create(ctx context.Context, agentID string) (path string, err error)
	Destroy(ctx context.Context, agentID string) error
}

// CompletionNotifier is told when an agent reaches a terminal status.
// Implemented by the workflow engine so node agents advance their graph.
type CompletionNotifier interface {
	OnAgentCompleted(ctx context.Context, agentID string) error
	OnAgentFailed(ctx context.Context, agentID string) error
}

// ExecutionCanceller aborts an in-flight execution. Implemented by the
// execution worker pool.
type ExecutionCanceller interface {
	CancelAgent(agentID string)
}

// validAgentTransitions is the agent lifecycle state machine. Terminal
// statuses (completed, failed, terminated) have no outgoing edges.
var validAgentTransitions = map[agent.Status][]agent.Status{
	agent.StatusPending:   {agent.StatusExecuting, agent.StatusTerminated},
	agent.StatusExecuting: {agent.StatusCompleted, agent.StatusFailed, agent.StatusTerminated},
}

// AgentService owns the agent lifecycle: spawning into the hierarchy with a
// budget reservation, status transitions, task execution, and cascade
// termination.
type AgentService struct {
	client    *ent.Client
	budgets   *BudgetService
	hierarchy *HierarchyService
	cfg       *config.KernelConfig

	workspaces WorkspaceCreator
	notifier   CompletionNotifier
	canceller  ExecutionCanceller
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client, budgets *BudgetService, hierarchy *HierarchyService, cfg *config.KernelConfig) *AgentService {
	return &AgentService{
		client:    client,
		budgets:   budgets,
		hierarchy: hierarchy,
		cfg:       cfg,
	}
}

// SetWorkspaceCreator wires the workspace manager. Called once at startup.
func (s *AgentService) SetWorkspaceCreator(w WorkspaceCreator) { s.workspaces = w }

// SetCompletionNotifier wires the workflow engine. Called once at startup.
func (s *AgentService) SetCompletionNotifier(n CompletionNotifier) { s.notifier = n }

// SetExecutionCanceller wires the worker pool. Called once at startup.
func (s *AgentService) SetExecutionCanceller(c ExecutionCanceller) { s.canceller = c }

// Spawn creates a new agent in status pending. Root agents (no parent) take
// their stated budget, or the configured default when zero. Child agents
// are linked under their parent and their budget is reserved from the
// parent's pool — agent row, hierarchy edge, and budget move commit as one
// transaction, so a failed reservation leaves no orphan rows.
func (s *AgentService) Spawn(ctx context.Context, req models.SpawnRequest) (*ent.Agent, error) {
	if req.Role == "" {
		return nil, NewValidationError("role", "required")
	}
	if req.Task == "" {
		return nil, NewValidationError("task", "required")
	}

	budget := req.Budget
	depth := 0
	var parent *ent.Agent

	if req.ParentID != "" {
		var err error
		parent, err = s.Get(ctx, req.ParentID)
		if err != nil {
			return nil, err
		}
		if isTerminalAgentStatus(parent.Status) {
			return nil, fmt.Errorf("%w: parent %s is %s", ErrInvalidTransition, parent.ID, parent.Status)
		}
		depth = parent.DepthLevel + 1
		if depth > s.cfg.MaxDepth {
			return nil, fmt.Errorf("%w: depth %d exceeds maximum %d", ErrDepthExceeded, depth, s.cfg.MaxDepth)
		}
		if budget <= 0 {
			return nil, NewValidationError("budget", "child agents require an explicit positive budget")
		}
	} else if budget <= 0 {
		budget = s.cfg.DefaultBudget
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id := req.AgentID
	if id == "" {
		id = uuid.New().String()
	}
	create := tx.Agent.Create().
		SetID(id).
		SetRole(req.Role).
		SetTaskDescription(req.Task).
		SetStatus(agent.StatusPending).
		SetDepthLevel(depth)
	if parent != nil {
		create = create.SetParentID(parent.ID)
	}

	a, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: agent %s already exists", ErrConflict, id)
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	if parent != nil {
		if err := s.hierarchy.CreateRelationTx(ctx, tx, parent.ID, a.ID); err != nil {
			return nil, err
		}
	}

	var parentID *string
	if parent != nil {
		parentID = &parent.ID
	}
	if err := s.budgets.AllocateTx(ctx, tx, a.ID, parentID, budget); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit spawn: %w", err)
	}

	slog.Info("Agent spawned",
		"agent_id", a.ID, "role", a.Role, "depth", depth, "budget", budget,
		"parent_id", req.ParentID)

	// Workspace provisioning is best-effort: an agent without a worktree
	// still executes, just without filesystem isolation.
	if s.workspaces != nil {
		if _, err := s.workspaces.Create(ctx, a.ID); err != nil {
			slog.Warn("Workspace creation failed", "agent_id", a.ID, "error", err)
		}
	}

	return a, nil
}

// SetStatus applies one lifecycle transition under a row lock. Re-applying
// the current status is rejected like any other invalid move, so racing
// callers get exactly one winner. Reaching a terminal status stamps
// completed_at, reclaims the unused budget to the parent, and notifies the
// completion listener.
func (s *AgentService) SetStatus(ctx context.Context, agentID string, target agent.Status, errorMessage string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	a, err := tx.Agent.Query().
		Where(agent.IDEQ(agentID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: agent %s", ErrNotFound, agentID)
		}
		return fmt.Errorf("failed to lock agent: %w", err)
	}

	if !transitionAllowed(validAgentTransitions[a.Status], target) {
		return fmt.Errorf("%w: agent %s cannot go %s → %s",
			ErrInvalidTransition, agentID, a.Status, target)
	}

	update := tx.Agent.UpdateOne(a).
		SetStatus(target).
		SetUpdatedAt(time.Now())
	if isTerminalAgentStatus(target) {
		update = update.SetCompletedAt(time.Now())
	}
	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update agent status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit status change: %w", err)
	}

	slog.Info("Agent status changed", "agent_id", agentID, "from", a.Status, "to", target)

	if isTerminalAgentStatus(target) {
		s.onTerminal(ctx, agentID, target)
	}
	return nil
}

// onTerminal runs the post-transition hooks: budget reclamation and the
// completion callback. Both are idempotent, so a crash between commit and
// hook is healed by the poller re-observing the terminal agent.
func (s *AgentService) onTerminal(ctx context.Context, agentID string, status agent.Status) {
	if reclaimed, err := s.budgets.Reclaim(ctx, agentID); err != nil {
		slog.Error("Budget reclamation failed", "agent_id", agentID, "error", err)
	} else if reclaimed > 0 {
		slog.Info("Budget reclaimed", "agent_id", agentID, "tokens", reclaimed)
	}

	if s.notifier == nil {
		return
	}
	var err error
	switch status {
	case agent.StatusCompleted:
		err = s.notifier.OnAgentCompleted(ctx, agentID)
	case agent.StatusFailed, agent.StatusTerminated:
		err = s.notifier.OnAgentFailed(ctx, agentID)
	}
	if err != nil {
		slog.Error("Completion notification failed", "agent_id", agentID, "error", err)
	}
}

// Run executes an agent's task synchronously via the given runner: the
// agent moves to executing, the backend runs, actual token usage is charged
// (clamped to the remaining allocation), and the result or error is
// persisted with the final status.
func (s *AgentService) Run(ctx context.Context, a *ent.Agent, r runner.TaskRunner, roleCfg *config.RoleConfig) error {
	cur, err := s.Get(ctx, a.ID)
	if err != nil {
		return err
	}
	switch cur.Status {
	case agent.StatusExecuting:
		// Claimed by a worker; the claim transaction already moved it.
	case agent.StatusPending:
		if err := s.SetStatus(ctx, a.ID, agent.StatusExecuting, ""); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: agent %s is %s and cannot run", ErrInvalidTransition, a.ID, cur.Status)
	}

	budget, err := s.budgets.Get(ctx, a.ID)
	if err != nil {
		return err
	}

	var workspacePath string
	if ws, err := s.client.Agent.QueryWorkspace(a).Only(ctx); err == nil {
		workspacePath = ws.Path
	}

	result, execErr := r.Execute(ctx, runner.TaskRequest{
		AgentID:       a.ID,
		Role:          a.Role,
		Task:          a.TaskDescription,
		WorkspacePath: workspacePath,
		BudgetTokens:  budget.Allocated - budget.Used - budget.Reserved,
		RoleConfig:    roleCfg,
	})

	if result != nil && result.TokensUsed > 0 {
		// Usage is reported after the fact; charge what we can and
		// keep the run's outcome.
		if _, err := s.budgets.ConsumeClamped(ctx, a.ID, result.TokensUsed); err != nil {
			slog.Error("Failed to record token usage", "agent_id", a.ID, "error", err)
		}
	}

	if execErr != nil {
		if ctx.Err() != nil {
			// Cancellation is a termination, not a failure; the
			// terminator owns the status transition.
			return execErr
		}
		if err := s.SetStatus(ctx, a.ID, agent.StatusFailed, execErr.Error()); err != nil {
			slog.Error("Failed to mark agent failed", "agent_id", a.ID, "error", err)
		}
		return execErr
	}

	if result.IsError {
		if err := s.SetStatus(ctx, a.ID, agent.StatusFailed, result.Error); err != nil {
			return err
		}
		return nil
	}

	if err := s.client.Agent.UpdateOneID(a.ID).
		SetResult(result.Output).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist result: %w", err)
	}
	return s.SetStatus(ctx, a.ID, agent.StatusCompleted, "")
}

// Terminate forcibly stops an agent and its whole subtree. Descendants are
// terminated deepest-first so every child's budget reclaims into its parent
// before the parent itself is reclaimed. Already-terminal agents are
// skipped, making repeated termination safe.
func (s *AgentService) Terminate(ctx context.Context, agentID, reason string) error {
	root, err := s.Get(ctx, agentID)
	if err != nil {
		return err
	}

	descendants, err := s.hierarchy.Descendants(ctx, agentID, 0)
	if err != nil {
		return err
	}

	// BFS order reversed gives deepest-first.
	targets := make([]*ent.Agent, 0, len(descendants)+1)
	for i := len(descendants) - 1; i >= 0; i-- {
		targets = append(targets, descendants[i])
	}
	targets = append(targets, root)

	for _, a := range targets {
		if isTerminalAgentStatus(a.Status) {
			continue
		}
		if s.canceller != nil {
			s.canceller.CancelAgent(a.ID)
		}
		if err := s.SetStatus(ctx, a.ID, agent.StatusTerminated, reason); err != nil {
			return fmt.Errorf("failed to terminate agent %s: %w", a.ID, err)
		}
	}

	slog.Info("Agent subtree terminated",
		"agent_id", agentID, "descendants", len(descendants), "reason", reason)
	return nil
}

// Get returns one agent by ID.
func (s *AgentService) Get(ctx context.Context, agentID string) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: agent %s", ErrNotFound, agentID)
		}
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	return a, nil
}

// List returns agents matching the filters, newest first.
func (s *AgentService) List(ctx context.Context, filters models.AgentFilters) ([]*ent.Agent, error) {
	q := s.client.Agent.Query()
	if filters.Status != "" {
		q = q.Where(agent.StatusEQ(agent.Status(filters.Status)))
	}
	if filters.Role != "" {
		q = q.Where(agent.RoleEQ(filters.Role))
	}
	if filters.ParentID != "" {
		q = q.Where(agent.ParentIDEQ(filters.ParentID))
	}
	if filters.CreatedAt != nil {
		q = q.Where(agent.CreatedAtGTE(*filters.CreatedAt))
	}
	q = q.Order(ent.Desc(agent.FieldCreatedAt))
	if filters.Limit > 0 {
		q = q.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		q = q.Offset(filters.Offset)
	}

	agents, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

// Tree renders the hierarchy below root as nested TreeNodes.
func (s *AgentService) Tree(ctx context.Context, rootID string) (*models.TreeNode, error) {
	root, err := s.Get(ctx, rootID)
	if err != nil {
		return nil, err
	}

	descendants, err := s.hierarchy.Descendants(ctx, rootID, 0)
	if err != nil {
		return nil, err
	}

	nodes := map[string]*models.TreeNode{
		root.ID: {AgentID: root.ID, Role: root.Role, Status: string(root.Status), Depth: root.DepthLevel},
	}
	for _, d := range descendants {
		nodes[d.ID] = &models.TreeNode{
			AgentID: d.ID, Role: d.Role, Status: string(d.Status), Depth: d.DepthLevel,
		}
	}
	for _, d := range descendants {
		if d.ParentID == nil {
			continue
		}
		if parent, ok := nodes[*d.ParentID]; ok {
			parent.Children = append(parent.Children, nodes[d.ID])
		}
	}
	return nodes[root.ID], nil
}

func isTerminalAgentStatus(st agent.Status) bool {
	switch st {
	case agent.StatusCompleted, agent.StatusFailed, agent.StatusTerminated:
		return true
	}
	return false
}
