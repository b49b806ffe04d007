// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-orch/maestro/ent/budget"
	"github.com/maestro-orch/maestro/ent/predicate"
)

// BudgetUpdate is the builder for updating Budget entities.
type BudgetUpdate struct {
	config
	hooks     []Hook
	mutation  *BudgetMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the BudgetUpdate builder.
func (_u *BudgetUpdate) Where(ps ...predicate.Budget) *BudgetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAllocated sets the "allocated" field.
func (_u *BudgetUpdate) SetAllocated(v int) *BudgetUpdate {
	_u.mutation.ResetAllocated()
	_u.mutation.SetAllocated(v)
	return _u
}

// SetNillableAllocated sets the "allocated" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableAllocated(v *int) *BudgetUpdate {
	if v != nil {
		_u.SetAllocated(*v)
	}
	return _u
}

// AddAllocated adds value to the "allocated" field.
func (_u *BudgetUpdate) AddAllocated(v int) *BudgetUpdate {
	_u.mutation.AddAllocated(v)
	return _u
}

// SetUsed sets the "used" field.
func (_u *BudgetUpdate) SetUsed(v int) *BudgetUpdate {
	_u.mutation.ResetUsed()
	_u.mutation.SetUsed(v)
	return _u
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableUsed(v *int) *BudgetUpdate {
	if v != nil {
		_u.SetUsed(*v)
	}
	return _u
}

// AddUsed adds value to the "used" field.
func (_u *BudgetUpdate) AddUsed(v int) *BudgetUpdate {
	_u.mutation.AddUsed(v)
	return _u
}

// SetReserved sets the "reserved" field.
func (_u *BudgetUpdate) SetReserved(v int) *BudgetUpdate {
	_u.mutation.ResetReserved()
	_u.mutation.SetReserved(v)
	return _u
}

// SetNillableReserved sets the "reserved" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableReserved(v *int) *BudgetUpdate {
	if v != nil {
		_u.SetReserved(*v)
	}
	return _u
}

// AddReserved adds value to the "reserved" field.
func (_u *BudgetUpdate) AddReserved(v int) *BudgetUpdate {
	_u.mutation.AddReserved(v)
	return _u
}

// SetReclaimed sets the "reclaimed" field.
func (_u *BudgetUpdate) SetReclaimed(v bool) *BudgetUpdate {
	_u.mutation.SetReclaimed(v)
	return _u
}

// SetNillableReclaimed sets the "reclaimed" field if the given value is not nil.
func (_u *BudgetUpdate) SetNillableReclaimed(v *bool) *BudgetUpdate {
	if v != nil {
		_u.SetReclaimed(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetUpdate) SetUpdatedAt(v time.Time) *BudgetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BudgetMutation object of the builder.
func (_u *BudgetUpdate) Mutation() *BudgetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BudgetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BudgetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budget.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetUpdate) check() error {
	if v, ok := _u.mutation.Allocated(); ok {
		if err := budget.AllocatedValidator(v); err != nil {
			return &ValidationError{Name: "allocated", err: fmt.Errorf(`ent: validator failed for field "Budget.allocated": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Used(); ok {
		if err := budget.UsedValidator(v); err != nil {
			return &ValidationError{Name: "used", err: fmt.Errorf(`ent: validator failed for field "Budget.used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reserved(); ok {
		if err := budget.ReservedValidator(v); err != nil {
			return &ValidationError{Name: "reserved", err: fmt.Errorf(`ent: validator failed for field "Budget.reserved": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Budget.agent"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *BudgetUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BudgetUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *BudgetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budget.Table, budget.Columns, sqlgraph.NewFieldSpec(budget.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Allocated(); ok {
		_spec.SetField(budget.FieldAllocated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAllocated(); ok {
		_spec.AddField(budget.FieldAllocated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Used(); ok {
		_spec.SetField(budget.FieldUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsed(); ok {
		_spec.AddField(budget.FieldUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reserved(); ok {
		_spec.SetField(budget.FieldReserved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReserved(); ok {
		_spec.AddField(budget.FieldReserved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reclaimed(); ok {
		_spec.SetField(budget.FieldReclaimed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budget.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BudgetUpdateOne is the builder for updating a single Budget entity.
type BudgetUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *BudgetMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetAllocated sets the "allocated" field.
func (_u *BudgetUpdateOne) SetAllocated(v int) *BudgetUpdateOne {
	_u.mutation.ResetAllocated()
	_u.mutation.SetAllocated(v)
	return _u
}

// SetNillableAllocated sets the "allocated" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableAllocated(v *int) *BudgetUpdateOne {
	if v != nil {
		_u.SetAllocated(*v)
	}
	return _u
}

// AddAllocated adds value to the "allocated" field.
func (_u *BudgetUpdateOne) AddAllocated(v int) *BudgetUpdateOne {
	_u.mutation.AddAllocated(v)
	return _u
}

// SetUsed sets the "used" field.
func (_u *BudgetUpdateOne) SetUsed(v int) *BudgetUpdateOne {
	_u.mutation.ResetUsed()
	_u.mutation.SetUsed(v)
	return _u
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableUsed(v *int) *BudgetUpdateOne {
	if v != nil {
		_u.SetUsed(*v)
	}
	return _u
}

// AddUsed adds value to the "used" field.
func (_u *BudgetUpdateOne) AddUsed(v int) *BudgetUpdateOne {
	_u.mutation.AddUsed(v)
	return _u
}

// SetReserved sets the "reserved" field.
func (_u *BudgetUpdateOne) SetReserved(v int) *BudgetUpdateOne {
	_u.mutation.ResetReserved()
	_u.mutation.SetReserved(v)
	return _u
}

// SetNillableReserved sets the "reserved" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableReserved(v *int) *BudgetUpdateOne {
	if v != nil {
		_u.SetReserved(*v)
	}
	return _u
}

// AddReserved adds value to the "reserved" field.
func (_u *BudgetUpdateOne) AddReserved(v int) *BudgetUpdateOne {
	_u.mutation.AddReserved(v)
	return _u
}

// SetReclaimed sets the "reclaimed" field.
func (_u *BudgetUpdateOne) SetReclaimed(v bool) *BudgetUpdateOne {
	_u.mutation.SetReclaimed(v)
	return _u
}

// SetNillableReclaimed sets the "reclaimed" field if the given value is not nil.
func (_u *BudgetUpdateOne) SetNillableReclaimed(v *bool) *BudgetUpdateOne {
	if v != nil {
		_u.SetReclaimed(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BudgetUpdateOne) SetUpdatedAt(v time.Time) *BudgetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BudgetMutation object of the builder.
func (_u *BudgetUpdateOne) Mutation() *BudgetMutation {
	return _u.mutation
}

// Where appends a list predicates to the BudgetUpdate builder.
func (_u *BudgetUpdateOne) Where(ps ...predicate.Budget) *BudgetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BudgetUpdateOne) Select(field string, fields ...string) *BudgetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Budget entity.
func (_u *BudgetUpdateOne) Save(ctx context.Context) (*Budget, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BudgetUpdateOne) SaveX(ctx context.Context) *Budget {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BudgetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BudgetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BudgetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := budget.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BudgetUpdateOne) check() error {
	if v, ok := _u.mutation.Allocated(); ok {
		if err := budget.AllocatedValidator(v); err != nil {
			return &ValidationError{Name: "allocated", err: fmt.Errorf(`ent: validator failed for field "Budget.allocated": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Used(); ok {
		if err := budget.UsedValidator(v); err != nil {
			return &ValidationError{Name: "used", err: fmt.Errorf(`ent: validator failed for field "Budget.used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reserved(); ok {
		if err := budget.ReservedValidator(v); err != nil {
			return &ValidationError{Name: "reserved", err: fmt.Errorf(`ent: validator failed for field "Budget.reserved": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Budget.agent"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *BudgetUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BudgetUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *BudgetUpdateOne) sqlSave(ctx context.Context) (_node *Budget, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(budget.Table, budget.Columns, sqlgraph.NewFieldSpec(budget.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Budget.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, budget.FieldID)
		for _, f := range fields {
			if !budget.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != budget.FieldID {
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
	if value, ok := _u.mutation.Allocated(); ok {
		_spec.SetField(budget.FieldAllocated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAllocated(); ok {
		_spec.AddField(budget.FieldAllocated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Used(); ok {
		_spec.SetField(budget.FieldUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsed(); ok {
		_spec.AddField(budget.FieldUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reserved(); ok {
		_spec.SetField(budget.FieldReserved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReserved(); ok {
		_spec.AddField(budget.FieldReserved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reclaimed(); ok {
		_spec.SetField(budget.FieldReclaimed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(budget.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Budget{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{budget.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
