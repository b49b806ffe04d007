package kernel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entagent "github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/workflowgraph"
	"github.com/maestro-orch/maestro/pkg/config"
	"github.com/maestro-orch/maestro/pkg/models"
	"github.com/maestro-orch/maestro/pkg/runner"
	testdb "github.com/maestro-orch/maestro/test/database"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Kernel.WorkerCount = 2
	cfg.Kernel.PollInterval = 50 * time.Millisecond
	cfg.Kernel.PollIntervalJitter = 10 * time.Millisecond
	cfg.Kernel.HeartbeatInterval = 50 * time.Millisecond
	cfg.Kernel.AgentTimeout = 10 * time.Second
	cfg.Kernel.OrphanThreshold = 5 * time.Second
	cfg.Kernel.DefaultBudget = 5_000
	return cfg
}

func startKernel(t *testing.T, cfg *config.Config) *Kernel {
	t.Helper()

	db := testdb.NewTestClient(t)
	k, err := New(cfg, db, runner.NewStubRunner(50), "test-pod")
	require.NoError(t, err)

	require.NoError(t, k.Start(context.Background()))
	t.Cleanup(k.Stop)
	return k
}

func TestKernelRunsSpawnedAgent(t *testing.T) {
	k := startKernel(t, testConfig())
	ctx := context.Background()

	a, err := k.Agents.Spawn(ctx, models.SpawnRequest{
		Role: "researcher",
		Task: "summarize recent activity",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := k.Agents.Get(ctx, a.ID)
		return err == nil && got.Status == entagent.StatusCompleted
	}, 15*time.Second, 50*time.Millisecond, "agent never completed")

	b, err := k.Budgets.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, b.Used)
	assert.True(t, b.Reclaimed)
}

func TestKernelRunsWorkflowEndToEnd(t *testing.T) {
	k := startKernel(t, testConfig())
	ctx := context.Background()

	tpl, err := k.Templates.Create(ctx, models.CreateTemplateRequest{
		Name: "pipeline",
		Nodes: []models.NodeTemplate{
			{NodeID: "gather", Role: "researcher", TaskTemplate: "gather: {{task}}", BudgetPercentage: 60},
			{NodeID: "report", Role: "writer", TaskTemplate: "report: {{task}}", BudgetPercentage: 40, Dependencies: []string{"gather"}},
		},
	})
	require.NoError(t, err)

	graph, err := k.Templates.Instantiate(ctx, tpl.ID, "release notes", 2_000)
	require.NoError(t, err)

	result, err := k.Workflows.Validate(ctx, graph.ID)
	require.NoError(t, err)
	require.True(t, result.Valid, "validation errors: %v", result.Errors)

	require.NoError(t, k.Workflows.Execute(ctx, graph.ID))

	// Node agents are claimed by the worker pool; their completion
	// callbacks drive the graph through both nodes to completed.
	require.Eventually(t, func() bool {
		got, err := k.Workflows.Get(ctx, graph.ID)
		return err == nil && got.Status == workflowgraph.StatusCompleted
	}, 30*time.Second, 50*time.Millisecond, "workflow never completed")

	require.NotNil(t, graph.RootAgentID)
	root, err := k.Agents.Get(ctx, *graph.RootAgentID)
	require.NoError(t, err)
	assert.Equal(t, entagent.StatusCompleted, root.Status)

	// All workflow budget comes home to the coordinator.
	rootBudget, err := k.Budgets.Get(ctx, *graph.RootAgentID)
	require.NoError(t, err)
	assert.Equal(t, 0, rootBudget.Reserved)
}

func TestKernelStartupOrphanRecovery(t *testing.T) {
	cfg := testConfig()
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	k, err := New(cfg, db, runner.NewStubRunner(50), "test-pod")
	require.NoError(t, err)

	// Simulate an agent left executing by a crashed process.
	a, err := k.Agents.Spawn(ctx, models.SpawnRequest{Role: "worker", Task: "stuck"})
	require.NoError(t, err)
	require.NoError(t, db.Agent.UpdateOneID(a.ID).
		SetStatus(entagent.StatusExecuting).
		SetUpdatedAt(time.Now().Add(-time.Hour)).
		Exec(ctx))

	require.NoError(t, k.Start(ctx))
	defer k.Stop()

	got, err := k.Agents.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entagent.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "orphaned")
}

func TestKernelStartStopIdempotent(t *testing.T) {
	k := startKernel(t, testConfig())

	// Second Start is a no-op; Stop runs once via cleanup plus here.
	require.NoError(t, k.Start(context.Background()))
	k.Stop()
	k.Stop()
}
