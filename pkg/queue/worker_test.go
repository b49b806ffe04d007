package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-orch/maestro/ent"
	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/pkg/config"
	"github.com/maestro-orch/maestro/pkg/models"
	"github.com/maestro-orch/maestro/pkg/runner"
	"github.com/maestro-orch/maestro/pkg/services"
	testdb "github.com/maestro-orch/maestro/test/database"
)

// testEnv bundles everything a queue test needs.
type testEnv struct {
	client *ent.Client
	agents *services.AgentService
	cfg    *config.KernelConfig
	roles  *config.RoleRegistry
}

func setupQueueTest(t *testing.T) *testEnv {
	client := testdb.NewTestClient(t)

	cfg := config.DefaultKernelConfig()
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 10 * time.Millisecond
	cfg.HeartbeatInterval = 50 * time.Millisecond
	cfg.WorkerCount = 2

	budgets := services.NewBudgetService(client.Client)
	hierarchy := services.NewHierarchyService(client.Client)
	agents := services.NewAgentService(client.Client, budgets, hierarchy, cfg)

	return &testEnv{
		client: client.Client,
		agents: agents,
		cfg:    cfg,
		roles:  config.NewRoleRegistry(nil),
	}
}

func (env *testEnv) spawn(t *testing.T, role string) *ent.Agent {
	t.Helper()
	a, err := env.agents.Spawn(context.Background(), models.SpawnRequest{
		Role:   role,
		Task:   "queued work",
		Budget: 1_000,
	})
	require.NoError(t, err)
	return a
}

// waitForStatus polls until the agent reaches the wanted status.
func waitForStatus(t *testing.T, env *testEnv, agentID string, want agent.Status) *ent.Agent {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		a, err := env.agents.Get(context.Background(), agentID)
		require.NoError(t, err)
		if a.Status == want {
			return a
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("agent %s never reached status %s", agentID, want)
	return nil
}

func TestWorkerExecutesPendingAgent(t *testing.T) {
	env := setupQueueTest(t)
	ctx := context.Background()

	a := env.spawn(t, "worker")

	pool := NewWorkerPool("test-pod", env.client, env.cfg, env.agents, env.roles, runner.NewStubRunner(100))
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	got := waitForStatus(t, env, a.ID, agent.StatusCompleted)
	require.NotNil(t, got.Result)
	assert.Contains(t, *got.Result, "queued work")

	b, err := services.NewBudgetService(env.client).Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, b.Used)
}

func TestWorkerSkipsWorkflowCoordinators(t *testing.T) {
	env := setupQueueTest(t)
	ctx := context.Background()

	coordinator := env.spawn(t, models.WorkflowCoordinatorRole)
	regular := env.spawn(t, "worker")

	pool := NewWorkerPool("test-pod", env.client, env.cfg, env.agents, env.roles, runner.NewStubRunner(10))
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	waitForStatus(t, env, regular.ID, agent.StatusCompleted)

	// The coordinator is still waiting for its engine; workers left it
	// alone.
	got, err := env.agents.Get(ctx, coordinator.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusPending, got.Status)
}

func TestWorkerRecordsRunnerFailure(t *testing.T) {
	env := setupQueueTest(t)
	ctx := context.Background()

	a := env.spawn(t, "worker")

	failing := runner.NewStubRunner(25)
	failing.Fail = true
	pool := NewWorkerPool("test-pod", env.client, env.cfg, env.agents, env.roles, failing)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	got := waitForStatus(t, env, a.ID, agent.StatusFailed)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "stub failure")
}

// blockingRunner blocks until its context is cancelled.
type blockingRunner struct {
	started chan string
}

func (r *blockingRunner) Execute(ctx context.Context, req runner.TaskRequest) (*runner.TaskResult, error) {
	select {
	case r.started <- req.AgentID:
	default:
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestWorkerTimeoutFailsAgent(t *testing.T) {
	env := setupQueueTest(t)
	env.cfg.AgentTimeout = 200 * time.Millisecond
	ctx := context.Background()

	a := env.spawn(t, "worker")

	pool := NewWorkerPool("test-pod", env.client, env.cfg, env.agents, env.roles,
		&blockingRunner{started: make(chan string, 1)})
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	got := waitForStatus(t, env, a.ID, agent.StatusFailed)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "timed out")
}

func TestPoolCancelAgent(t *testing.T) {
	env := setupQueueTest(t)
	ctx := context.Background()

	a := env.spawn(t, "worker")

	blocking := &blockingRunner{started: make(chan string, 1)}
	pool := NewWorkerPool("test-pod", env.client, env.cfg, env.agents, env.roles, blocking)
	env.agents.SetExecutionCanceller(pool)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	// Wait until the runner is actually blocked inside Execute.
	select {
	case <-blocking.started:
	case <-time.After(10 * time.Second):
		t.Fatal("agent never started executing")
	}

	// Terminate cancels the in-flight execution via the registry and
	// settles the status itself.
	require.NoError(t, env.agents.Terminate(ctx, a.ID, "operator stop"))

	got := waitForStatus(t, env, a.ID, agent.StatusTerminated)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "operator stop", *got.ErrorMessage)
}

func TestPoolHealth(t *testing.T) {
	env := setupQueueTest(t)
	ctx := context.Background()

	_ = env.spawn(t, "worker")

	pool := NewWorkerPool("test-pod", env.client, env.cfg, env.agents, env.roles, runner.NewStubRunner(1))
	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, 1, health.QueueDepth)
	assert.Equal(t, "test-pod", health.PodID)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()
	assert.Len(t, pool.Health().WorkerStats, env.cfg.WorkerCount)
}
