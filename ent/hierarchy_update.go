// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-orch/maestro/ent/hierarchy"
	"github.com/maestro-orch/maestro/ent/predicate"
)

// HierarchyUpdate is the builder for updating Hierarchy entities.
type HierarchyUpdate struct {
	config
	hooks     []Hook
	mutation  *HierarchyMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the HierarchyUpdate builder.
func (_u *HierarchyUpdate) Where(ps ...predicate.Hierarchy) *HierarchyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the HierarchyMutation object of the builder.
func (_u *HierarchyUpdate) Mutation() *HierarchyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HierarchyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HierarchyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HierarchyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HierarchyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HierarchyUpdate) check() error {
	if _u.mutation.ParentCleared() && len(_u.mutation.ParentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Hierarchy.parent"`)
	}
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Hierarchy.child"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *HierarchyUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *HierarchyUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *HierarchyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hierarchy.Table, hierarchy.Columns, sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hierarchy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HierarchyUpdateOne is the builder for updating a single Hierarchy entity.
type HierarchyUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *HierarchyMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Mutation returns the HierarchyMutation object of the builder.
func (_u *HierarchyUpdateOne) Mutation() *HierarchyMutation {
	return _u.mutation
}

// Where appends a list predicates to the HierarchyUpdate builder.
func (_u *HierarchyUpdateOne) Where(ps ...predicate.Hierarchy) *HierarchyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HierarchyUpdateOne) Select(field string, fields ...string) *HierarchyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Hierarchy entity.
func (_u *HierarchyUpdateOne) Save(ctx context.Context) (*Hierarchy, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HierarchyUpdateOne) SaveX(ctx context.Context) *Hierarchy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HierarchyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HierarchyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HierarchyUpdateOne) check() error {
	if _u.mutation.ParentCleared() && len(_u.mutation.ParentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Hierarchy.parent"`)
	}
	if _u.mutation.ChildCleared() && len(_u.mutation.ChildIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Hierarchy.child"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *HierarchyUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *HierarchyUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *HierarchyUpdateOne) sqlSave(ctx context.Context) (_node *Hierarchy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hierarchy.Table, hierarchy.Columns, sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Hierarchy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hierarchy.FieldID)
		for _, f := range fields {
			if !hierarchy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hierarchy.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Hierarchy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hierarchy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
