// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-orch/maestro/ent/predicate"
	"github.com/maestro-orch/maestro/ent/workflowgraph"
)

// WorkflowGraphDelete is the builder for deleting a WorkflowGraph entity.
type WorkflowGraphDelete struct {
	config
	hooks    []Hook
	mutation *WorkflowGraphMutation
}

// Where appends a list predicates to the WorkflowGraphDelete builder.
func (_d *WorkflowGraphDelete) Where(ps ...predicate.WorkflowGraph) *WorkflowGraphDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WorkflowGraphDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkflowGraphDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WorkflowGraphDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(workflowgraph.Table, sqlgraph.NewFieldSpec(workflowgraph.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// WorkflowGraphDeleteOne is the builder for deleting a single WorkflowGraph entity.
type WorkflowGraphDeleteOne struct {
	_d *WorkflowGraphDelete
}

// Where appends a list predicates to the WorkflowGraphDelete builder.
func (_d *WorkflowGraphDeleteOne) Where(ps ...predicate.WorkflowGraph) *WorkflowGraphDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WorkflowGraphDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workflowgraph.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkflowGraphDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
