package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-orch/maestro/ent/agent"
)

func TestBudgetService_AllocationReservesParent(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 10_000)
	_ = ts.spawnChild(t, ctx, root.ID, 4_000)

	parent, err := ts.budgets.Get(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 10_000, parent.Allocated)
	assert.Equal(t, 0, parent.Used)
	assert.Equal(t, 4_000, parent.Reserved)

	remaining, err := ts.budgets.Remaining(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 6_000, remaining)
}

func TestBudgetService_AllocationRejectsOvercommit(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 1_000)
	_ = ts.spawnChild(t, ctx, root.ID, 600)

	// 600 reserved, only 400 left.
	_, err := ts.agents.Spawn(ctx, spawnChildReq(root.ID, 401))
	assert.ErrorIs(t, err, ErrInsufficientBudget)

	// Exactly the remaining amount is fine.
	_, err = ts.agents.Spawn(ctx, spawnChildReq(root.ID, 400))
	assert.NoError(t, err)

	// And now the parent is fully committed.
	_, err = ts.agents.Spawn(ctx, spawnChildReq(root.ID, 1))
	assert.ErrorIs(t, err, ErrInsufficientBudget)
}

func TestBudgetService_ConcurrentSpawnsNeverOvercommit(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 1_000)

	// 10 goroutines each try to reserve 300; at most 3 can succeed.
	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ts.agents.Spawn(ctx, spawnChildReq(root.ID, 300))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrInsufficientBudget)
		}
	}
	assert.Equal(t, 3, succeeded)

	parent, err := ts.budgets.Get(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 900, parent.Reserved)
	assert.LessOrEqual(t, parent.Used+parent.Reserved, parent.Allocated)
}

func TestBudgetService_Consume(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 1_000)

	require.NoError(t, ts.budgets.Consume(ctx, root.ID, 400))
	require.NoError(t, ts.budgets.Consume(ctx, root.ID, 600))

	b, err := ts.budgets.Get(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 1_000, b.Used)

	// Allocation exhausted.
	err = ts.budgets.Consume(ctx, root.ID, 1)
	assert.ErrorIs(t, err, ErrOverrun)

	// Zero is a no-op, negative is rejected.
	assert.NoError(t, ts.budgets.Consume(ctx, root.ID, 0))
	assert.True(t, IsValidationError(ts.budgets.Consume(ctx, root.ID, -5)))
}

func TestBudgetService_ConsumeCannotSpendReserved(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 1_000)
	_ = ts.spawnChild(t, ctx, root.ID, 700)

	// Only 300 is spendable by the parent itself.
	err := ts.budgets.Consume(ctx, root.ID, 301)
	assert.ErrorIs(t, err, ErrOverrun)
	assert.NoError(t, ts.budgets.Consume(ctx, root.ID, 300))
}

func TestBudgetService_ConsumeClamped(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 500)

	recorded, err := ts.budgets.ConsumeClamped(ctx, root.ID, 400)
	require.NoError(t, err)
	assert.Equal(t, 400, recorded)

	// Reported usage exceeds what is left; only the remainder is charged.
	recorded, err = ts.budgets.ConsumeClamped(ctx, root.ID, 400)
	require.NoError(t, err)
	assert.Equal(t, 100, recorded)

	b, err := ts.budgets.Get(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 500, b.Used)

	// Nothing left: recorded amount is zero, no error.
	recorded, err = ts.budgets.ConsumeClamped(ctx, root.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 0, recorded)
}

func TestBudgetService_ReclaimReturnsUnusedToParent(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 10_000)
	child := ts.spawnChild(t, ctx, root.ID, 4_000)

	require.NoError(t, ts.budgets.Consume(ctx, child.ID, 1_500))

	reclaimed, err := ts.budgets.Reclaim(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, 2_500, reclaimed)

	parent, err := ts.budgets.Get(ctx, root.ID)
	require.NoError(t, err)
	// Reservation shrinks by the unused amount; the 1,500 the child spent
	// stays committed.
	assert.Equal(t, 1_500, parent.Reserved)

	remaining, err := ts.budgets.Remaining(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 8_500, remaining)
}

func TestBudgetService_ReclaimIsIdempotent(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 10_000)
	child := ts.spawnChild(t, ctx, root.ID, 4_000)

	first, err := ts.budgets.Reclaim(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, 4_000, first)

	// A second reclaim (poller racing the terminal-status hook) is a no-op.
	second, err := ts.budgets.Reclaim(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, second)

	parent, err := ts.budgets.Get(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, parent.Reserved)
}

func TestBudgetService_ReclaimRootAgent(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 1_000)

	// No parent pool to return to; the latch still flips.
	reclaimed, err := ts.budgets.Reclaim(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 1_000, reclaimed)

	b, err := ts.budgets.Get(ctx, root.ID)
	require.NoError(t, err)
	assert.True(t, b.Reclaimed)
}

func TestBudgetService_TerminalStatusTriggersReclaim(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()

	root := ts.spawnRoot(t, ctx, 10_000)
	child := ts.spawnChild(t, ctx, root.ID, 4_000)

	require.NoError(t, ts.agents.SetStatus(ctx, child.ID, agent.StatusExecuting, ""))
	require.NoError(t, ts.budgets.Consume(ctx, child.ID, 1_000))
	require.NoError(t, ts.agents.SetStatus(ctx, child.ID, agent.StatusCompleted, ""))

	parent, err := ts.budgets.Get(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 1_000, parent.Reserved)

	b, err := ts.budgets.Get(ctx, child.ID)
	require.NoError(t, err)
	assert.True(t, b.Reclaimed)
}
