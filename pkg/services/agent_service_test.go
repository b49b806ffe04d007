package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/pkg/models"
	"github.com/maestro-orch/maestro/pkg/runner"
)

func TestAgentService_SpawnRoot(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	a, err := ts.agents.Spawn(ctx, models.SpawnRequest{
		Role:   "coordinator",
		Task:   "plan the release",
		Budget: 5_000,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "coordinator", a.Role)
	assert.Equal(t, agent.StatusPending, a.Status)
	assert.Equal(t, 0, a.DepthLevel)
	assert.Nil(t, a.ParentID)

	b, err := ts.budgets.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 5_000, b.Allocated)
}

func TestAgentService_SpawnRootDefaultBudget(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	a, err := ts.agents.Spawn(ctx, models.SpawnRequest{Role: "coordinator", Task: "t"})
	require.NoError(t, err)

	b, err := ts.budgets.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, ts.cfg.DefaultBudget, b.Allocated)
}

func TestAgentService_SpawnValidation(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	_, err := ts.agents.Spawn(ctx, models.SpawnRequest{Task: "t", Budget: 100})
	assert.True(t, IsValidationError(err))

	_, err = ts.agents.Spawn(ctx, models.SpawnRequest{Role: "r", Budget: 100})
	assert.True(t, IsValidationError(err))

	// Children must state their budget explicitly.
	root := ts.spawnRoot(t, ctx, 1_000)
	_, err = ts.agents.Spawn(ctx, models.SpawnRequest{Role: "r", Task: "t", ParentID: root.ID})
	assert.True(t, IsValidationError(err))

	// Unknown parent.
	_, err = ts.agents.Spawn(ctx, models.SpawnRequest{Role: "r", Task: "t", Budget: 10, ParentID: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAgentService_SpawnChildDepth(t *testing.T) {
	ts := setupTestServices(t)
	ts.cfg.MaxDepth = 2
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 10_000)
	c1 := ts.spawnChild(t, ctx, root.ID, 1_000)
	assert.Equal(t, 1, c1.DepthLevel)

	c2 := ts.spawnChild(t, ctx, c1.ID, 100)
	assert.Equal(t, 2, c2.DepthLevel)

	_, err := ts.agents.Spawn(ctx, spawnChildReq(c2.ID, 10))
	assert.ErrorIs(t, err, ErrDepthExceeded)
}

func TestAgentService_SpawnUnderTerminalParent(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 10_000)
	require.NoError(t, ts.agents.Terminate(ctx, root.ID, "operator request"))

	_, err := ts.agents.Spawn(ctx, spawnChildReq(root.ID, 100))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAgentService_StatusTransitions(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	a := ts.spawnRoot(t, ctx, 1_000)

	// pending → completed skips executing and is rejected.
	err := ts.agents.SetStatus(ctx, a.ID, agent.StatusCompleted, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, ts.agents.SetStatus(ctx, a.ID, agent.StatusExecuting, ""))
	require.NoError(t, ts.agents.SetStatus(ctx, a.ID, agent.StatusCompleted, ""))

	got, err := ts.agents.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)

	// Terminal states are frozen; even re-applying the same status is
	// rejected, and the row keeps its first outcome.
	err = ts.agents.SetStatus(ctx, a.ID, agent.StatusCompleted, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	err = ts.agents.SetStatus(ctx, a.ID, agent.StatusExecuting, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	err = ts.agents.SetStatus(ctx, a.ID, agent.StatusFailed, "boom")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err = ts.agents.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusCompleted, got.Status)
	assert.Nil(t, got.ErrorMessage)
}

func TestAgentService_RunPersistsResultAndUsage(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	a := ts.spawnRoot(t, ctx, 1_000)

	err := ts.agents.Run(ctx, a, runner.NewStubRunner(250), nil)
	require.NoError(t, err)

	got, err := ts.agents.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusCompleted, got.Status)
	assert.Contains(t, *got.Result, "completed")

	b, err := ts.budgets.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 250, b.Used)
	assert.True(t, b.Reclaimed)
}

func TestAgentService_RunErrorResultFailsAgent(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	a := ts.spawnRoot(t, ctx, 1_000)

	stub := runner.NewStubRunner(100)
	stub.Fail = true
	require.NoError(t, ts.agents.Run(ctx, a, stub, nil))

	got, err := ts.agents.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusFailed, got.Status)
	assert.NotNil(t, got.ErrorMessage)

	// Usage is still charged for failed runs.
	b, err := ts.budgets.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, b.Used)
}

func TestAgentService_TerminateCascades(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	// root → a → b, root → c; c already completed.
	root := ts.spawnRoot(t, ctx, 10_000)
	a := ts.spawnChild(t, ctx, root.ID, 3_000)
	b := ts.spawnChild(t, ctx, a.ID, 1_000)
	c := ts.spawnChild(t, ctx, root.ID, 2_000)
	require.NoError(t, ts.agents.SetStatus(ctx, c.ID, agent.StatusExecuting, ""))
	require.NoError(t, ts.agents.SetStatus(ctx, c.ID, agent.StatusCompleted, ""))

	require.NoError(t, ts.agents.Terminate(ctx, root.ID, "shutdown"))

	for _, id := range []string{root.ID, a.ID, b.ID} {
		got, err := ts.agents.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, agent.StatusTerminated, got.Status)
	}

	// The completed child is left as-is.
	got, err := ts.agents.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusCompleted, got.Status)

	// Deepest-first reclamation drained every reservation.
	for _, id := range []string{root.ID, a.ID, b.ID, c.ID} {
		bud, err := ts.budgets.Get(ctx, id)
		require.NoError(t, err)
		assert.True(t, bud.Reclaimed, "budget for %s", id)
		assert.Equal(t, 0, bud.Reserved, "budget for %s", id)
	}

	// Terminating again is safe.
	assert.NoError(t, ts.agents.Terminate(ctx, root.ID, "shutdown"))
}

func TestAgentService_ListAndTree(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 10_000)
	a := ts.spawnChild(t, ctx, root.ID, 2_000)
	_ = ts.spawnChild(t, ctx, a.ID, 500)

	workers, err := ts.agents.List(ctx, models.AgentFilters{Role: "worker"})
	require.NoError(t, err)
	assert.Len(t, workers, 2)

	pending, err := ts.agents.List(ctx, models.AgentFilters{Status: "pending", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	tree, err := ts.agents.Tree(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, root.ID, tree.AgentID)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, a.ID, tree.Children[0].AgentID)
	require.Len(t, tree.Children[0].Children, 1)
}
