package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maestro-orch/maestro/ent"
	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/budget"
)

// BudgetService owns hierarchical token accounting. Every mutation runs
// under row locks; when a parent and child row are both touched the parent
// is always locked first, so concurrent child spawns and reclaims serialize
// on the parent without deadlocking.
//
// Invariant on every row at all times:
//
//	0 <= used, 0 <= reserved, used + reserved <= allocated
type BudgetService struct {
	client *ent.Client
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(client *ent.Client) *BudgetService {
	return &BudgetService{client: client}
}

// AllocateTx creates the budget row for a new agent inside the caller's
// transaction. For a child, the parent budget is locked, availability is
// asserted, and the amount moves into parent.reserved before the child row
// is created — one atomic step, so two concurrent spawns cannot
// over-commit the parent.
func (s *BudgetService) AllocateTx(ctx context.Context, tx *ent.Tx, agentID string, parentID *string, amount int) error {
	if amount <= 0 {
		return NewValidationError("budget", "must be positive")
	}

	if parentID != nil {
		parent, err := tx.Budget.Query().
			Where(budget.AgentIDEQ(*parentID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: parent budget for agent %s", ErrNotFound, *parentID)
			}
			return fmt.Errorf("failed to lock parent budget: %w", err)
		}

		available := parent.Allocated - parent.Used - parent.Reserved
		if available < amount {
			return fmt.Errorf("%w: parent %s has %d available, child needs %d",
				ErrInsufficientBudget, *parentID, available, amount)
		}

		if err := tx.Budget.UpdateOne(parent).
			SetReserved(parent.Reserved + amount).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to reserve parent budget: %w", err)
		}
	}

	if _, err := tx.Budget.Create().
		SetAgentID(agentID).
		SetAllocated(amount).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}

	return nil
}

// Allocate creates a budget row for an existing agent that lacks one,
// resolving the parent from the agent row. Spawn goes through AllocateTx
// directly; this entry point serves administrative backfill.
func (s *BudgetService) Allocate(ctx context.Context, agentID string, amount int) error {
	a, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: agent %s", ErrNotFound, agentID)
		}
		return fmt.Errorf("failed to load agent: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.AllocateTx(ctx, tx, agentID, a.ParentID, amount); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit allocation: %w", err)
	}
	return nil
}

// Consume spends tokens from an agent's own allocation. Fails with
// ErrOverrun when used+amount+reserved would exceed allocated; reserved
// capacity is never consumable by the owner.
func (s *BudgetService) Consume(ctx context.Context, agentID string, amount int) error {
	if amount < 0 {
		return NewValidationError("amount", "must not be negative")
	}
	if amount == 0 {
		return nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	b, err := s.lockBudgetTx(ctx, tx, agentID)
	if err != nil {
		return err
	}

	if b.Used+amount+b.Reserved > b.Allocated {
		return fmt.Errorf("%w: agent %s used=%d reserved=%d allocated=%d, cannot consume %d",
			ErrOverrun, agentID, b.Used, b.Reserved, b.Allocated, amount)
	}

	if err := tx.Budget.UpdateOne(b).
		SetUsed(b.Used + amount).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to record consumption: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit consumption: %w", err)
	}
	return nil
}

// ConsumeClamped consumes up to amount, clamped to what the agent has
// left. Used on the execution path where the runner reports actual token
// usage after the fact and an overrun must not fail the whole run.
// Returns the amount actually recorded.
func (s *BudgetService) ConsumeClamped(ctx context.Context, agentID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	b, err := s.lockBudgetTx(ctx, tx, agentID)
	if err != nil {
		return 0, err
	}

	clamped := amount
	if remaining := b.Allocated - b.Used - b.Reserved; clamped > remaining {
		slog.Warn("Token usage exceeds remaining budget, clamping",
			"agent_id", agentID, "reported", amount, "remaining", remaining)
		clamped = remaining
	}
	if clamped <= 0 {
		return 0, tx.Commit()
	}

	if err := tx.Budget.UpdateOne(b).
		SetUsed(b.Used + clamped).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to record consumption: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit consumption: %w", err)
	}
	return clamped, nil
}

// Reclaim returns a finished child's unused allocation to its parent's
// pool. Idempotent: the reclaimed latch guarantees at most one effective
// reclamation per agent no matter how many paths trigger it (explicit call,
// terminal-status hook, cascade termination). Returns the amount reclaimed.
func (s *BudgetService) Reclaim(ctx context.Context, agentID string) (int, error) {
	a, err := s.client.Agent.Query().
		Where(agent.IDEQ(agentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, fmt.Errorf("%w: agent %s", ErrNotFound, agentID)
		}
		return 0, fmt.Errorf("failed to load agent: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Parent row first, then child — same order as AllocateTx.
	var parent *ent.Budget
	if a.ParentID != nil {
		parent, err = tx.Budget.Query().
			Where(budget.AgentIDEQ(*a.ParentID)).
			ForUpdate().
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return 0, fmt.Errorf("failed to lock parent budget: %w", err)
		}
	}

	child, err := s.lockBudgetTx(ctx, tx, agentID)
	if err != nil {
		return 0, err
	}

	if child.Reclaimed {
		return 0, tx.Commit()
	}

	unused := child.Allocated - child.Used
	if unused < 0 {
		unused = 0
	}

	if parent != nil && unused > 0 {
		newReserved := parent.Reserved - unused
		if newReserved < 0 {
			newReserved = 0
		}
		if err := tx.Budget.UpdateOne(parent).
			SetReserved(newReserved).
			Exec(ctx); err != nil {
			return 0, fmt.Errorf("failed to release parent reservation: %w", err)
		}
	}

	if err := tx.Budget.UpdateOne(child).
		SetReclaimed(true).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to set reclaimed flag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit reclaim: %w", err)
	}
	return unused, nil
}

// Remaining returns allocated − used − reserved for an agent.
func (s *BudgetService) Remaining(ctx context.Context, agentID string) (int, error) {
	b, err := s.Get(ctx, agentID)
	if err != nil {
		return 0, err
	}
	return b.Allocated - b.Used - b.Reserved, nil
}

// Get returns an agent's budget row.
func (s *BudgetService) Get(ctx context.Context, agentID string) (*ent.Budget, error) {
	b, err := s.client.Budget.Query().
		Where(budget.AgentIDEQ(agentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: budget for agent %s", ErrNotFound, agentID)
		}
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}
	return b, nil
}

// lockBudgetTx locks one budget row FOR UPDATE within the transaction.
func (s *BudgetService) lockBudgetTx(ctx context.Context, tx *ent.Tx, agentID string) (*ent.Budget, error) {
	b, err := tx.Budget.Query().
		Where(budget.AgentIDEQ(agentID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: budget for agent %s", ErrNotFound, agentID)
		}
		return nil, fmt.Errorf("failed to lock budget: %w", err)
	}
	return b, nil
}
