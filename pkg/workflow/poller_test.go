package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entagent "github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/workflowgraph"
	"github.com/maestro-orch/maestro/ent/workflownode"
)

// TestPollerHealsLostCompletionCallback simulates a crash between an agent
// finishing and its callback landing: the agent row is terminal but the
// node still says spawning. The poller must replay the completion.
func TestPollerHealsLostCompletionCallback(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()

	graph := startDiamond(t, env, 1_000)
	plan := env.node(t, graph.ID, "plan")
	require.Equal(t, workflownode.ExecutionStatusSpawning, plan.ExecutionStatus)
	require.NotNil(t, plan.AgentID)

	// Flip the agent terminal behind the engine's back — no notifier.
	require.NoError(t, env.client.Agent.UpdateOneID(*plan.AgentID).
		SetStatus(entagent.StatusCompleted).
		SetResult("plan done").
		Exec(ctx))

	env.cfg.PollInterval = 30 * time.Millisecond
	env.cfg.PollIntervalJitter = 0
	poller := NewPoller(env.client, env.engine, env.cfg)
	poller.Start(ctx)
	defer poller.Stop()

	require.Eventually(t, func() bool {
		n := env.node(t, graph.ID, "plan")
		return n.ExecutionStatus == workflownode.ExecutionStatusCompleted
	}, 10*time.Second, 20*time.Millisecond, "poller never replayed the completion")

	// The replay releases and spawns the dependents.
	require.Eventually(t, func() bool {
		return env.node(t, graph.ID, "analyze").ExecutionStatus == workflownode.ExecutionStatusSpawning &&
			env.node(t, graph.ID, "review").ExecutionStatus == workflownode.ExecutionStatusSpawning
	}, 10*time.Second, 20*time.Millisecond, "dependents never spawned")
}

// TestPollerFinishesInterruptedSpawn covers a crash between claiming a node
// (spawning, with its agent id pinned) and inserting the agent row: the
// poller must create the agent under the pinned id rather than releasing
// the node for a second spawn.
func TestPollerFinishesInterruptedSpawn(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()

	graph := startDiamond(t, env, 1_000)
	analyze := env.node(t, graph.ID, "analyze")

	// A claimed node whose agent was never inserted, aged past the grace
	// period for in-flight inserts.
	pinned := uuid.New().String()
	require.NoError(t, env.client.WorkflowNode.UpdateOneID(analyze.ID).
		SetExecutionStatus(workflownode.ExecutionStatusSpawning).
		SetAgentID(pinned).
		SetUpdatedAt(time.Now().Add(-time.Hour)).
		Exec(ctx))

	env.cfg.PollInterval = 30 * time.Millisecond
	env.cfg.PollIntervalJitter = 0
	poller := NewPoller(env.client, env.engine, env.cfg)
	poller.Start(ctx)
	defer poller.Stop()

	require.Eventually(t, func() bool {
		_, err := env.agents.Get(ctx, pinned)
		return err == nil
	}, 10*time.Second, 20*time.Millisecond, "pinned agent never spawned")

	a, err := env.agents.Get(ctx, pinned)
	require.NoError(t, err)
	assert.Equal(t, "analyst", a.Role)
	require.NotNil(t, graph.RootAgentID)
	require.NotNil(t, a.ParentID)
	assert.Equal(t, *graph.RootAgentID, *a.ParentID)

	// The node keeps its one agent; the graph runs on.
	n := env.node(t, graph.ID, "analyze")
	assert.Equal(t, workflownode.ExecutionStatusSpawning, n.ExecutionStatus)
	require.NotNil(t, n.AgentID)
	assert.Equal(t, pinned, *n.AgentID)

	got, err := env.engine.Get(ctx, graph.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowgraph.StatusActive, got.Status)
}

// TestPollerMirrorsExecutingAgent verifies spawning nodes follow their
// agent into executing.
func TestPollerMirrorsExecutingAgent(t *testing.T) {
	env := setupWorkflowTest(t)
	ctx := context.Background()

	graph := startDiamond(t, env, 1_000)
	plan := env.node(t, graph.ID, "plan")

	require.NoError(t, env.agents.SetStatus(ctx, *plan.AgentID, entagent.StatusExecuting, ""))

	env.cfg.PollInterval = 30 * time.Millisecond
	env.cfg.PollIntervalJitter = 0
	poller := NewPoller(env.client, env.engine, env.cfg)
	poller.Start(ctx)
	defer poller.Stop()

	require.Eventually(t, func() bool {
		return env.node(t, graph.ID, "plan").ExecutionStatus == workflownode.ExecutionStatusExecuting
	}, 10*time.Second, 20*time.Millisecond, "node never mirrored executing")
}
