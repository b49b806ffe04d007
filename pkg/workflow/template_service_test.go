package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entagent "github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/workflowgraph"
	"github.com/maestro-orch/maestro/pkg/models"
	"github.com/maestro-orch/maestro/pkg/services"
)

func TestTemplateCreateAndGet(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()

	tpl, err := env.templates.Create(ctx, diamondTemplate())
	require.NoError(t, err)
	assert.NotEmpty(t, tpl.ID)
	assert.Equal(t, "diamond", tpl.Name)
	assert.Len(t, tpl.NodeTemplates, 4)
	// plan→analyze, plan→review, analyze→summarize, review→summarize
	assert.Len(t, tpl.EdgePatterns, 4)
	assert.Equal(t, 0, tpl.UsageCount)

	got, err := env.templates.Get(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, tpl.ID, got.ID)

	// Second Get comes from cache.
	got2, err := env.templates.Get(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, got, got2)

	// Duplicate names are rejected.
	_, err = env.templates.Create(ctx, diamondTemplate())
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestTemplateCreateValidation(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()

	node := func(id string, pct int, deps ...string) models.NodeTemplate {
		return models.NodeTemplate{NodeID: id, Role: "r", TaskTemplate: "t", BudgetPercentage: pct, Dependencies: deps}
	}

	tests := []struct {
		name string
		req  models.CreateTemplateRequest
	}{
		{"missing name", models.CreateTemplateRequest{Nodes: []models.NodeTemplate{node("a", 100)}}},
		{"no nodes", models.CreateTemplateRequest{Name: "x"}},
		{"percentages under 100", models.CreateTemplateRequest{Name: "x", Nodes: []models.NodeTemplate{node("a", 60)}}},
		{"percentages over 100", models.CreateTemplateRequest{Name: "x", Nodes: []models.NodeTemplate{node("a", 60), node("b", 50)}}},
		{"duplicate node id", models.CreateTemplateRequest{Name: "x", Nodes: []models.NodeTemplate{node("a", 50), node("a", 50)}}},
		{"unknown dependency", models.CreateTemplateRequest{Name: "x", Nodes: []models.NodeTemplate{node("a", 100, "ghost")}}},
		{"self dependency", models.CreateTemplateRequest{Name: "x", Nodes: []models.NodeTemplate{node("a", 100, "a")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.templates.Create(ctx, tt.req)
			assert.Error(t, err)
		})
	}

	// Dependency cycles are a distinct error.
	_, err := env.templates.Create(ctx, models.CreateTemplateRequest{
		Name: "cyclic",
		Nodes: []models.NodeTemplate{
			node("a", 30, "c"),
			node("b", 30, "a"),
			node("c", 40, "b"),
		},
	})
	assert.ErrorIs(t, err, services.ErrCycle)
}

func TestTemplateInstantiate(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()

	tpl, err := env.templates.Create(ctx, diamondTemplate())
	require.NoError(t, err)

	graph, err := env.templates.Instantiate(ctx, tpl.ID, "ship it", 1_003)
	require.NoError(t, err)
	assert.Equal(t, workflowgraph.StatusPending, graph.Status)
	assert.Equal(t, workflowgraph.ValidationStatusPending, graph.ValidationStatus)
	assert.Equal(t, 1_003, graph.TotalBudget)

	// The coordinator agent holds the full budget.
	require.NotNil(t, graph.RootAgentID)
	root, err := env.agents.Get(ctx, *graph.RootAgentID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowCoordinatorRole, root.Role)
	assert.Equal(t, entagent.StatusPending, root.Status)
	rootBudget, err := env.budgets.Get(ctx, *graph.RootAgentID)
	require.NoError(t, err)
	assert.Equal(t, 1_003, rootBudget.Allocated)

	// Node budgets: floors plus the rounding remainder on the last node,
	// summing exactly to the total.
	assert.Equal(t, 100, env.node(t, graph.ID, "plan").BudgetAllocation)
	assert.Equal(t, 401, env.node(t, graph.ID, "analyze").BudgetAllocation)
	assert.Equal(t, 300, env.node(t, graph.ID, "review").BudgetAllocation)
	assert.Equal(t, 202, env.node(t, graph.ID, "summarize").BudgetAllocation)

	// The task is substituted into every node template.
	assert.Equal(t, "plan: ship it", env.node(t, graph.ID, "plan").TaskDescription)

	// Usage counting survives the cache.
	got, err := env.templates.Get(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.UsageCount)
}

func TestTemplateInstantiateBudgetFloor(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()

	tpl, err := env.templates.Create(ctx, diamondTemplate())
	require.NoError(t, err)

	_, err = env.templates.Instantiate(ctx, tpl.ID, "task", 999)
	assert.ErrorIs(t, err, services.ErrInsufficientBudget)
}

func TestTemplateListAndDelete(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()

	req := diamondTemplate()
	req.Name = "beta"
	_, err := env.templates.Create(ctx, req)
	require.NoError(t, err)

	req2 := diamondTemplate()
	req2.Name = "alpha"
	tpl2, err := env.templates.Create(ctx, req2)
	require.NoError(t, err)

	tpls, err := env.templates.List(ctx)
	require.NoError(t, err)
	require.Len(t, tpls, 2)
	assert.Equal(t, "alpha", tpls[0].Name)
	assert.Equal(t, "beta", tpls[1].Name)

	require.NoError(t, env.templates.Delete(ctx, tpl2.ID))
	_, err = env.templates.Get(ctx, tpl2.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = env.templates.Delete(ctx, tpl2.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
