// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/budget"
)

// BudgetCreate is the builder for creating a Budget entity.
type BudgetCreate struct {
	config
	mutation *BudgetMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *BudgetCreate) SetAgentID(v string) *BudgetCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetAllocated sets the "allocated" field.
func (_c *BudgetCreate) SetAllocated(v int) *BudgetCreate {
	_c.mutation.SetAllocated(v)
	return _c
}

// SetUsed sets the "used" field.
func (_c *BudgetCreate) SetUsed(v int) *BudgetCreate {
	_c.mutation.SetUsed(v)
	return _c
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableUsed(v *int) *BudgetCreate {
	if v != nil {
		_c.SetUsed(*v)
	}
	return _c
}

// SetReserved sets the "reserved" field.
func (_c *BudgetCreate) SetReserved(v int) *BudgetCreate {
	_c.mutation.SetReserved(v)
	return _c
}

// SetNillableReserved sets the "reserved" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableReserved(v *int) *BudgetCreate {
	if v != nil {
		_c.SetReserved(*v)
	}
	return _c
}

// SetReclaimed sets the "reclaimed" field.
func (_c *BudgetCreate) SetReclaimed(v bool) *BudgetCreate {
	_c.mutation.SetReclaimed(v)
	return _c
}

// SetNillableReclaimed sets the "reclaimed" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableReclaimed(v *bool) *BudgetCreate {
	if v != nil {
		_c.SetReclaimed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BudgetCreate) SetCreatedAt(v time.Time) *BudgetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableCreatedAt(v *time.Time) *BudgetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BudgetCreate) SetUpdatedAt(v time.Time) *BudgetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BudgetCreate) SetNillableUpdatedAt(v *time.Time) *BudgetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *BudgetCreate) SetAgent(v *Agent) *BudgetCreate {
	return _c.SetAgentID(v.ID)
}

// Mutation returns the BudgetMutation object of the builder.
func (_c *BudgetCreate) Mutation() *BudgetMutation {
	return _c.mutation
}

// Save creates the Budget in the database.
func (_c *BudgetCreate) Save(ctx context.Context) (*Budget, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BudgetCreate) SaveX(ctx context.Context) *Budget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BudgetCreate) defaults() {
	if _, ok := _c.mutation.Used(); !ok {
		v := budget.DefaultUsed
		_c.mutation.SetUsed(v)
	}
	if _, ok := _c.mutation.Reserved(); !ok {
		v := budget.DefaultReserved
		_c.mutation.SetReserved(v)
	}
	if _, ok := _c.mutation.Reclaimed(); !ok {
		v := budget.DefaultReclaimed
		_c.mutation.SetReclaimed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := budget.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := budget.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BudgetCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Budget.agent_id"`)}
	}
	if _, ok := _c.mutation.Allocated(); !ok {
		return &ValidationError{Name: "allocated", err: errors.New(`ent: missing required field "Budget.allocated"`)}
	}
	if v, ok := _c.mutation.Allocated(); ok {
		if err := budget.AllocatedValidator(v); err != nil {
			return &ValidationError{Name: "allocated", err: fmt.Errorf(`ent: validator failed for field "Budget.allocated": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Used(); !ok {
		return &ValidationError{Name: "used", err: errors.New(`ent: missing required field "Budget.used"`)}
	}
	if v, ok := _c.mutation.Used(); ok {
		if err := budget.UsedValidator(v); err != nil {
			return &ValidationError{Name: "used", err: fmt.Errorf(`ent: validator failed for field "Budget.used": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reserved(); !ok {
		return &ValidationError{Name: "reserved", err: errors.New(`ent: missing required field "Budget.reserved"`)}
	}
	if v, ok := _c.mutation.Reserved(); ok {
		if err := budget.ReservedValidator(v); err != nil {
			return &ValidationError{Name: "reserved", err: fmt.Errorf(`ent: validator failed for field "Budget.reserved": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reclaimed(); !ok {
		return &ValidationError{Name: "reclaimed", err: errors.New(`ent: missing required field "Budget.reclaimed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Budget.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Budget.updated_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "Budget.agent"`)}
	}
	return nil
}

func (_c *BudgetCreate) sqlSave(ctx context.Context) (*Budget, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BudgetCreate) createSpec() (*Budget, *sqlgraph.CreateSpec) {
	var (
		_node = &Budget{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(budget.Table, sqlgraph.NewFieldSpec(budget.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Allocated(); ok {
		_spec.SetField(budget.FieldAllocated, field.TypeInt, value)
		_node.Allocated = value
	}
	if value, ok := _c.mutation.Used(); ok {
		_spec.SetField(budget.FieldUsed, field.TypeInt, value)
		_node.Used = value
	}
	if value, ok := _c.mutation.Reserved(); ok {
		_spec.SetField(budget.FieldReserved, field.TypeInt, value)
		_node.Reserved = value
	}
	if value, ok := _c.mutation.Reclaimed(); ok {
		_spec.SetField(budget.FieldReclaimed, field.TypeBool, value)
		_node.Reclaimed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(budget.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(budget.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   budget.AgentTable,
			Columns: []string{budget.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BudgetCreateBulk is the builder for creating many Budget entities in bulk.
type BudgetCreateBulk struct {
	config
	err      error
	builders []*BudgetCreate
}

// Save creates the Budget entities in the database.
func (_c *BudgetCreateBulk) Save(ctx context.Context) ([]*Budget, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Budget, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BudgetMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BudgetCreateBulk) SaveX(ctx context.Context) []*Budget {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
