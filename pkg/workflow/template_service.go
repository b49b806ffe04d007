// Package workflow implements reusable workflow templates and the DAG
// engine that drives instantiated graphs to completion.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/maestro-orch/maestro/ent"
	"github.com/maestro-orch/maestro/ent/workflowtemplate"
	"github.com/maestro-orch/maestro/pkg/models"
	"github.com/maestro-orch/maestro/pkg/services"
)

const templateCacheSize = 128

// taskPlaceholder in a node's task template is replaced with the
// caller-supplied task at instantiation time.
const taskPlaceholder = "{{task}}"

// TemplateService manages workflow templates: validated DAG blueprints that
// Instantiate stamps out into executable graphs. Reads go through a small
// LRU cache since templates are hot on the instantiation path and change
// rarely.
type TemplateService struct {
	client *ent.Client
	agents *services.AgentService
	cache  *lru.Cache[string, *ent.WorkflowTemplate]
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(client *ent.Client, agents *services.AgentService) (*TemplateService, error) {
	cache, err := lru.New[string, *ent.WorkflowTemplate](templateCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create template cache: %w", err)
	}
	return &TemplateService{client: client, agents: agents, cache: cache}, nil
}

// Create validates and stores a new template. The node set must form a DAG
// over the declared dependencies and the budget percentages must sum to
// exactly 100.
func (s *TemplateService) Create(ctx context.Context, req models.CreateTemplateRequest) (*ent.WorkflowTemplate, error) {
	if req.Name == "" {
		return nil, services.NewValidationError("name", "required")
	}
	if req.MinBudget < 0 {
		return nil, services.NewValidationError("min_budget", "must not be negative")
	}
	if err := validateNodeTemplates(req.Nodes); err != nil {
		return nil, err
	}

	tpl, err := s.client.WorkflowTemplate.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetNodeTemplates(req.Nodes).
		SetEdgePatterns(edgePatterns(req.Nodes)).
		SetMinBudget(req.MinBudget).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: template name %q already exists", services.ErrConflict, req.Name)
		}
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	slog.Info("Workflow template created", "template_id", tpl.ID, "name", tpl.Name, "nodes", len(req.Nodes))
	return tpl, nil
}

// Get returns a template by ID, served from cache when possible.
func (s *TemplateService) Get(ctx context.Context, templateID string) (*ent.WorkflowTemplate, error) {
	if tpl, ok := s.cache.Get(templateID); ok {
		return tpl, nil
	}

	tpl, err := s.client.WorkflowTemplate.Get(ctx, templateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: template %s", services.ErrNotFound, templateID)
		}
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	s.cache.Add(templateID, tpl)
	return tpl, nil
}

// List returns all templates ordered by name.
func (s *TemplateService) List(ctx context.Context) ([]*ent.WorkflowTemplate, error) {
	tpls, err := s.client.WorkflowTemplate.Query().
		Order(ent.Asc(workflowtemplate.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return tpls, nil
}

// Delete removes a template. Graphs already instantiated from it keep
// running; they carry their own node copies.
func (s *TemplateService) Delete(ctx context.Context, templateID string) error {
	err := s.client.WorkflowTemplate.DeleteOneID(templateID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: template %s", services.ErrNotFound, templateID)
		}
		return fmt.Errorf("failed to delete template: %w", err)
	}
	s.cache.Remove(templateID)
	return nil
}

// Instantiate stamps a template into a new workflow graph. A root
// "workflow" agent is spawned holding the total budget; every node's share
// is carved out of that agent's pool when the node later spawns, so the
// whole workflow can never spend more than totalBudget. The graph comes
// back in status pending awaiting Validate and Execute.
func (s *TemplateService) Instantiate(ctx context.Context, templateID, task string, totalBudget int) (*ent.WorkflowGraph, error) {
	tpl, err := s.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if totalBudget < tpl.MinBudget {
		return nil, fmt.Errorf("%w: template %s requires at least %d tokens, got %d",
			services.ErrInsufficientBudget, tpl.Name, tpl.MinBudget, totalBudget)
	}
	if totalBudget <= 0 {
		return nil, services.NewValidationError("total_budget", "must be positive")
	}

	rootAgent, err := s.agents.Spawn(ctx, models.SpawnRequest{
		Role:   models.WorkflowCoordinatorRole,
		Task:   fmt.Sprintf("workflow %s: %s", tpl.Name, task),
		Budget: totalBudget,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to spawn workflow agent: %w", err)
	}

	graphID := uuid.New().String()
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	graph, err := tx.WorkflowGraph.Create().
		SetID(graphID).
		SetTemplateID(tpl.ID).
		SetRootAgentID(rootAgent.ID).
		SetTask(task).
		SetTotalBudget(totalBudget).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create graph: %w", err)
	}

	budgets := nodeBudgets(tpl.NodeTemplates, totalBudget)
	for i, nt := range tpl.NodeTemplates {
		create := tx.WorkflowNode.Create().
			SetID(uuid.New().String()).
			SetWorkflowGraphID(graphID).
			SetNodeKey(nt.NodeID).
			SetRole(nt.Role).
			SetTaskDescription(strings.ReplaceAll(nt.TaskTemplate, taskPlaceholder, task)).
			SetBudgetAllocation(budgets[i]).
			SetPosition(i)
		if len(nt.Dependencies) > 0 {
			create = create.SetDependencies(nt.Dependencies)
		}
		if _, err := create.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create node %s: %w", nt.NodeID, err)
		}
	}

	if err := tx.WorkflowTemplate.UpdateOneID(tpl.ID).
		AddUsageCount(1).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to bump usage count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit instantiation: %w", err)
	}

	// The cached copy now has a stale usage count; drop it.
	s.cache.Remove(tpl.ID)

	slog.Info("Workflow instantiated",
		"graph_id", graphID, "template", tpl.Name, "root_agent_id", rootAgent.ID,
		"total_budget", totalBudget, "nodes", len(tpl.NodeTemplates))
	return graph, nil
}

// validateNodeTemplates checks key uniqueness, dependency references,
// budget percentages, and acyclicity.
func validateNodeTemplates(nodes []models.NodeTemplate) error {
	if len(nodes) == 0 {
		return services.NewValidationError("nodes", "at least one node is required")
	}

	keys := make(map[string]bool, len(nodes))
	pctSum := 0
	for _, n := range nodes {
		if n.NodeID == "" {
			return services.NewValidationError("nodes", "node_id is required")
		}
		if n.Role == "" {
			return services.NewValidationError("nodes", fmt.Sprintf("node %s: role is required", n.NodeID))
		}
		if n.TaskTemplate == "" {
			return services.NewValidationError("nodes", fmt.Sprintf("node %s: task_template is required", n.NodeID))
		}
		if n.BudgetPercentage <= 0 {
			return services.NewValidationError("nodes", fmt.Sprintf("node %s: budget_percentage must be positive", n.NodeID))
		}
		if keys[n.NodeID] {
			return services.NewValidationError("nodes", fmt.Sprintf("duplicate node_id %s", n.NodeID))
		}
		keys[n.NodeID] = true
		pctSum += n.BudgetPercentage
	}
	if pctSum != 100 {
		return services.NewValidationError("nodes", fmt.Sprintf("budget percentages sum to %d, expected 100", pctSum))
	}

	for _, n := range nodes {
		for _, dep := range n.Dependencies {
			if !keys[dep] {
				return services.NewValidationError("nodes",
					fmt.Sprintf("node %s depends on unknown node %s", n.NodeID, dep))
			}
			if dep == n.NodeID {
				return services.NewValidationError("nodes",
					fmt.Sprintf("node %s depends on itself", n.NodeID))
			}
		}
	}

	deps := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		deps[n.NodeID] = n.Dependencies
	}
	if cyclic, member := hasCycle(deps); cyclic {
		return fmt.Errorf("%w: node %s participates in a dependency cycle", services.ErrCycle, member)
	}
	return nil
}

// edgePatterns denormalizes the dependency lists into from→to pairs.
func edgePatterns(nodes []models.NodeTemplate) []models.EdgePattern {
	var edges []models.EdgePattern
	for _, n := range nodes {
		for _, dep := range n.Dependencies {
			edges = append(edges, models.EdgePattern{From: dep, To: n.NodeID})
		}
	}
	return edges
}

// nodeBudgets converts percentages into token amounts. Integer division
// remainders accrue to the last node so the shares always sum to total.
func nodeBudgets(nodes []models.NodeTemplate, total int) []int {
	out := make([]int, len(nodes))
	assigned := 0
	for i, n := range nodes {
		out[i] = total * n.BudgetPercentage / 100
		assigned += out[i]
	}
	if len(out) > 0 {
		out[len(out)-1] += total - assigned
	}
	return out
}

// hasCycle runs Kahn's algorithm over the dependency map; any node left
// unprocessed sits on a cycle.
func hasCycle(deps map[string][]string) (bool, string) {
	indegree := make(map[string]int, len(deps))
	dependents := make(map[string][]string, len(deps))
	for node, ds := range deps {
		if _, ok := indegree[node]; !ok {
			indegree[node] = 0
		}
		for _, d := range ds {
			indegree[node]++
			dependents[d] = append(dependents[d], node)
		}
	}

	var queue []string
	for node, deg := range indegree {
		if deg == 0 {
			queue = append(queue, node)
		}
	}

	processed := 0
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		processed++
		for _, dep := range dependents[node] {
			indegree[dep]--
			if indegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if processed == len(indegree) {
		return false, ""
	}
	for node, deg := range indegree {
		if deg > 0 {
			return true, node
		}
	}
	return true, ""
}
