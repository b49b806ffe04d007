package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-orch/maestro/ent"
	entagent "github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/workflowgraph"
	"github.com/maestro-orch/maestro/ent/workflownode"
	"github.com/maestro-orch/maestro/pkg/config"
	"github.com/maestro-orch/maestro/pkg/models"
	"github.com/maestro-orch/maestro/pkg/runner"
	"github.com/maestro-orch/maestro/pkg/services"
	testdb "github.com/maestro-orch/maestro/test/database"
)

// workflowEnv bundles the full workflow stack against one test database.
type workflowEnv struct {
	client    *ent.Client
	agents    *services.AgentService
	budgets   *services.BudgetService
	engine    *Engine
	templates *TemplateService
	cfg       *config.KernelConfig
}

func setupWorkflowTest(t *testing.T) *workflowEnv {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultKernelConfig()

	budgets := services.NewBudgetService(client.Client)
	hierarchy := services.NewHierarchyService(client.Client)
	agents := services.NewAgentService(client.Client, budgets, hierarchy, cfg)
	engine := NewEngine(client.Client, agents, cfg)
	agents.SetCompletionNotifier(engine)

	templates, err := NewTemplateService(client.Client, agents)
	require.NoError(t, err)

	return &workflowEnv{
		client:    client.Client,
		agents:    agents,
		budgets:   budgets,
		engine:    engine,
		templates: templates,
		cfg:       cfg,
	}
}

// diamondTemplate is plan → {analyze, review} → summarize.
func diamondTemplate() models.CreateTemplateRequest {
	return models.CreateTemplateRequest{
		Name: "diamond",
		Nodes: []models.NodeTemplate{
			{NodeID: "plan", Role: "planner", TaskTemplate: "plan: {{task}}", BudgetPercentage: 10},
			{NodeID: "analyze", Role: "analyst", TaskTemplate: "analyze: {{task}}", BudgetPercentage: 40, Dependencies: []string{"plan"}},
			{NodeID: "review", Role: "reviewer", TaskTemplate: "review: {{task}}", BudgetPercentage: 30, Dependencies: []string{"plan"}},
			{NodeID: "summarize", Role: "writer", TaskTemplate: "summarize: {{task}}", BudgetPercentage: 20, Dependencies: []string{"analyze", "review"}},
		},
		MinBudget: 1_000,
	}
}

// startDiamond instantiates, validates, and executes the diamond template.
func startDiamond(t *testing.T, env *workflowEnv, budget int) *ent.WorkflowGraph {
	t.Helper()
	ctx := context.Background()

	tpl, err := env.templates.Create(ctx, diamondTemplate())
	require.NoError(t, err)

	graph, err := env.templates.Instantiate(ctx, tpl.ID, "ship the feature", budget)
	require.NoError(t, err)

	result, err := env.engine.Validate(ctx, graph.ID)
	require.NoError(t, err)
	require.True(t, result.Valid, "validation errors: %v", result.Errors)

	require.NoError(t, env.engine.Execute(ctx, graph.ID))
	return graph
}

// node fetches one node row by key.
func (env *workflowEnv) node(t *testing.T, graphID, key string) *ent.WorkflowNode {
	t.Helper()
	n, err := env.client.WorkflowNode.Query().
		Where(
			workflownode.WorkflowGraphIDEQ(graphID),
			workflownode.NodeKeyEQ(key),
		).
		Only(context.Background())
	require.NoError(t, err)
	return n
}

// runNode drives the agent behind a spawned node to completion (or failure)
// through the same path the execution worker uses.
func (env *workflowEnv) runNode(t *testing.T, graphID, key string, fail bool) {
	t.Helper()
	ctx := context.Background()

	n := env.node(t, graphID, key)
	require.NotNil(t, n.AgentID, "node %s has no agent", key)

	a, err := env.agents.Get(ctx, *n.AgentID)
	require.NoError(t, err)

	stub := runner.NewStubRunner(10)
	stub.Fail = fail
	require.NoError(t, env.agents.Run(ctx, a, stub, nil))
}

func TestEngineExecutesDiamond(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()
	graph := startDiamond(t, env, 1_000)

	// Only the dependency-free node spawns at start.
	plan := env.node(t, graph.ID, "plan")
	assert.Equal(t, workflownode.ExecutionStatusSpawning, plan.ExecutionStatus)
	require.NotNil(t, plan.AgentID)
	for _, key := range []string{"analyze", "review", "summarize"} {
		assert.Equal(t, workflownode.ExecutionStatusPending, env.node(t, graph.ID, key).ExecutionStatus)
	}

	// Node agents hang off the workflow coordinator with their share of
	// the budget.
	g, err := env.client.WorkflowGraph.Get(ctx, graph.ID)
	require.NoError(t, err)
	planAgent, err := env.agents.Get(ctx, *plan.AgentID)
	require.NoError(t, err)
	assert.Equal(t, g.RootAgentID, planAgent.ParentID)
	planBudget, err := env.budgets.Get(ctx, *plan.AgentID)
	require.NoError(t, err)
	assert.Equal(t, 100, planBudget.Allocated)

	// plan completing releases both middle nodes.
	env.runNode(t, graph.ID, "plan", false)
	assert.Equal(t, workflownode.ExecutionStatusCompleted, env.node(t, graph.ID, "plan").ExecutionStatus)
	assert.Equal(t, workflownode.ExecutionStatusSpawning, env.node(t, graph.ID, "analyze").ExecutionStatus)
	assert.Equal(t, workflownode.ExecutionStatusSpawning, env.node(t, graph.ID, "review").ExecutionStatus)
	assert.Equal(t, workflownode.ExecutionStatusPending, env.node(t, graph.ID, "summarize").ExecutionStatus)

	// summarize waits for both.
	env.runNode(t, graph.ID, "analyze", false)
	assert.Equal(t, workflownode.ExecutionStatusPending, env.node(t, graph.ID, "summarize").ExecutionStatus)
	env.runNode(t, graph.ID, "review", false)

	// Now it spawned, with upstream results folded into its task.
	sum := env.node(t, graph.ID, "summarize")
	assert.Equal(t, workflownode.ExecutionStatusSpawning, sum.ExecutionStatus)
	sumAgent, err := env.agents.Get(ctx, *sum.AgentID)
	require.NoError(t, err)
	assert.Contains(t, sumAgent.TaskDescription, "summarize: ship the feature")
	assert.Contains(t, sumAgent.TaskDescription, "Result from analyze")
	assert.Contains(t, sumAgent.TaskDescription, "Result from review")

	env.runNode(t, graph.ID, "summarize", false)

	// Everything settles.
	g, err = env.client.WorkflowGraph.Get(ctx, graph.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowgraph.StatusCompleted, g.Status)

	root, err := env.agents.Get(ctx, *g.RootAgentID)
	require.NoError(t, err)
	assert.Equal(t, entagent.StatusCompleted, root.Status)

	// Each node agent spent 10 and reclaimed the rest; the coordinator's
	// reservations are fully released.
	rootBudget, err := env.budgets.Get(ctx, *g.RootAgentID)
	require.NoError(t, err)
	assert.Equal(t, 0, rootBudget.Reserved)
	assert.True(t, rootBudget.Reclaimed)
}

func TestEngineFailFast(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()
	graph := startDiamond(t, env, 1_000)

	env.runNode(t, graph.ID, "plan", false)
	env.runNode(t, graph.ID, "analyze", true)

	g, err := env.client.WorkflowGraph.Get(ctx, graph.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowgraph.StatusFailed, g.Status)
	require.NotNil(t, g.TerminationReason)
	assert.Contains(t, *g.TerminationReason, "analyze")

	assert.Equal(t, workflownode.ExecutionStatusFailed, env.node(t, graph.ID, "analyze").ExecutionStatus)
	assert.Equal(t, workflownode.ExecutionStatusSkipped, env.node(t, graph.ID, "review").ExecutionStatus)
	assert.Equal(t, workflownode.ExecutionStatusSkipped, env.node(t, graph.ID, "summarize").ExecutionStatus)
	// Finished work is untouched.
	assert.Equal(t, workflownode.ExecutionStatusCompleted, env.node(t, graph.ID, "plan").ExecutionStatus)

	// The coordinator subtree was torn down and every reservation
	// returned.
	root, err := env.agents.Get(ctx, *g.RootAgentID)
	require.NoError(t, err)
	assert.Equal(t, entagent.StatusTerminated, root.Status)
	rootBudget, err := env.budgets.Get(ctx, *g.RootAgentID)
	require.NoError(t, err)
	assert.Equal(t, 0, rootBudget.Reserved)
}

func TestEngineContinueOnFailure(t *testing.T) {
	env := setupWorkflowTest(t)
	env.cfg.ContinueOnFailure = true
	ctx := context.Background()
	graph := startDiamond(t, env, 1_000)

	env.runNode(t, graph.ID, "plan", false)
	env.runNode(t, graph.ID, "analyze", true)

	// Only the dependent subtree dies; review keeps its agent.
	assert.Equal(t, workflownode.ExecutionStatusFailed, env.node(t, graph.ID, "analyze").ExecutionStatus)
	assert.Equal(t, workflownode.ExecutionStatusSkipped, env.node(t, graph.ID, "summarize").ExecutionStatus)
	assert.Equal(t, workflownode.ExecutionStatusSpawning, env.node(t, graph.ID, "review").ExecutionStatus)

	g, err := env.client.WorkflowGraph.Get(ctx, graph.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowgraph.StatusActive, g.Status)

	env.runNode(t, graph.ID, "review", false)

	// The last runnable node finishing settles the graph as failed
	// because part of it was skipped.
	g, err = env.client.WorkflowGraph.Get(ctx, graph.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowgraph.StatusFailed, g.Status)
	assert.Equal(t, workflownode.ExecutionStatusCompleted, env.node(t, graph.ID, "review").ExecutionStatus)

	root, err := env.agents.Get(ctx, *g.RootAgentID)
	require.NoError(t, err)
	assert.Equal(t, entagent.StatusFailed, root.Status)
}

func TestEngineTerminate(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()
	graph := startDiamond(t, env, 1_000)

	env.runNode(t, graph.ID, "plan", false)

	require.NoError(t, env.engine.Terminate(ctx, graph.ID, "operator stop"))

	g, err := env.client.WorkflowGraph.Get(ctx, graph.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowgraph.StatusTerminated, g.Status)
	require.NotNil(t, g.TerminationReason)
	assert.Equal(t, "operator stop", *g.TerminationReason)

	assert.Equal(t, workflownode.ExecutionStatusCompleted, env.node(t, graph.ID, "plan").ExecutionStatus)
	for _, key := range []string{"analyze", "review", "summarize"} {
		assert.Equal(t, workflownode.ExecutionStatusSkipped, env.node(t, graph.ID, key).ExecutionStatus)
	}

	rootBudget, err := env.budgets.Get(ctx, *g.RootAgentID)
	require.NoError(t, err)
	assert.Equal(t, 0, rootBudget.Reserved)
	assert.True(t, rootBudget.Reclaimed)

	// Idempotent.
	assert.NoError(t, env.engine.Terminate(ctx, graph.ID, "again"))
}

func TestEnginePauseResume(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()
	graph := startDiamond(t, env, 1_000)

	require.NoError(t, env.engine.Pause(ctx, graph.ID))

	// Completions still land while paused, but nothing new spawns.
	env.runNode(t, graph.ID, "plan", false)
	assert.Equal(t, workflownode.ExecutionStatusCompleted, env.node(t, graph.ID, "plan").ExecutionStatus)
	assert.Equal(t, workflownode.ExecutionStatusReady, env.node(t, graph.ID, "analyze").ExecutionStatus)
	assert.Equal(t, workflownode.ExecutionStatusReady, env.node(t, graph.ID, "review").ExecutionStatus)

	// Resume releases the backlog.
	require.NoError(t, env.engine.Resume(ctx, graph.ID))
	assert.Equal(t, workflownode.ExecutionStatusSpawning, env.node(t, graph.ID, "analyze").ExecutionStatus)
	assert.Equal(t, workflownode.ExecutionStatusSpawning, env.node(t, graph.ID, "review").ExecutionStatus)

	// Pausing a pending graph is rejected.
	assert.ErrorIs(t, env.engine.Pause(ctx, graph.ID), services.ErrInvalidTransition)
}

func TestEngineExecuteRequiresValidation(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()

	tpl, err := env.templates.Create(ctx, diamondTemplate())
	require.NoError(t, err)
	graph, err := env.templates.Instantiate(ctx, tpl.ID, "task", 1_000)
	require.NoError(t, err)

	err = env.engine.Execute(ctx, graph.ID)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestEngineProgress(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()
	graph := startDiamond(t, env, 1_000)

	env.runNode(t, graph.ID, "plan", false)

	progress, err := env.engine.Progress(ctx, graph.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, progress.TotalNodes)
	assert.Equal(t, 1, progress.StatusCounts["completed"])
	assert.Equal(t, 2, progress.StatusCounts["spawning"])
	assert.Equal(t, 1, progress.StatusCounts["pending"])
	assert.InDelta(t, 0.25, progress.PercentComplete, 0.001)
}

func TestEngineCallbacksIgnoreForeignAgents(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()

	a, err := env.agents.Spawn(ctx, models.SpawnRequest{Role: "worker", Task: "solo", Budget: 100})
	require.NoError(t, err)

	assert.NoError(t, env.engine.OnAgentCompleted(ctx, a.ID))
	assert.NoError(t, env.engine.OnAgentFailed(ctx, a.ID))
}
