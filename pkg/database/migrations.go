package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"fmt"
)

//go:embed migrations
var migrationsFS embed.FS

// CreateCheckConstraints adds cross-column CHECK constraints that Ent
// schemas cannot express. These are belt-and-suspenders behind the service
// layer, which enforces the same invariants under row locks. The helper is
// also called from the test harness after Ent auto-migration so tests run
// against the same constraints as production.
func CreateCheckConstraints(ctx context.Context, db *stdsql.DB) error {
	constraints := []struct {
		table string
		name  string
		check string
	}{
		{"budgets", "budgets_within_allocation", "used + reserved <= allocated"},
		{"budgets", "budgets_non_negative", "allocated >= 0 AND used >= 0 AND reserved >= 0"},
		{"agents", "agents_depth_non_negative", "depth_level >= 0"},
		{"hierarchies", "hierarchies_no_self_edge", "parent_id <> child_id"},
		{"messages", "messages_priority_range", "priority >= 0 AND priority <= 10"},
	}

	for _, c := range constraints {
		if err := addConstraintIfAbsent(ctx, db, c.table, c.name, c.check); err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", c.name, err)
		}
	}

	return nil
}

// addConstraintIfAbsent emulates ADD CONSTRAINT IF NOT EXISTS, which
// PostgreSQL does not support directly.
func addConstraintIfAbsent(ctx context.Context, db *stdsql.DB, table, name, check string) error {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM pg_constraint con
			JOIN pg_class rel ON rel.oid = con.conrelid
			WHERE con.conname = $1 AND rel.relname = $2
		)`, name, table).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for constraint: %w", err)
	}
	if exists {
		return nil
	}

	_, err = db.ExecContext(ctx,
		fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s)", table, name, check))
	return err
}
