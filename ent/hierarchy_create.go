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
	"github.com/maestro-orch/maestro/ent/hierarchy"
)

// HierarchyCreate is the builder for creating a Hierarchy entity.
type HierarchyCreate struct {
	config
	mutation *HierarchyMutation
	hooks    []Hook
}

// SetParentID sets the "parent_id" field.
func (_c *HierarchyCreate) SetParentID(v string) *HierarchyCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *HierarchyCreate) SetChildID(v string) *HierarchyCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HierarchyCreate) SetCreatedAt(v time.Time) *HierarchyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HierarchyCreate) SetNillableCreatedAt(v *time.Time) *HierarchyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetParent sets the "parent" edge to the Agent entity.
func (_c *HierarchyCreate) SetParent(v *Agent) *HierarchyCreate {
	return _c.SetParentID(v.ID)
}

// SetChild sets the "child" edge to the Agent entity.
func (_c *HierarchyCreate) SetChild(v *Agent) *HierarchyCreate {
	return _c.SetChildID(v.ID)
}

// Mutation returns the HierarchyMutation object of the builder.
func (_c *HierarchyCreate) Mutation() *HierarchyMutation {
	return _c.mutation
}

// Save creates the Hierarchy in the database.
func (_c *HierarchyCreate) Save(ctx context.Context) (*Hierarchy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HierarchyCreate) SaveX(ctx context.Context) *Hierarchy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HierarchyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HierarchyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HierarchyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hierarchy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HierarchyCreate) check() error {
	if _, ok := _c.mutation.ParentID(); !ok {
		return &ValidationError{Name: "parent_id", err: errors.New(`ent: missing required field "Hierarchy.parent_id"`)}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "Hierarchy.child_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Hierarchy.created_at"`)}
	}
	if len(_c.mutation.ParentIDs()) == 0 {
		return &ValidationError{Name: "parent", err: errors.New(`ent: missing required edge "Hierarchy.parent"`)}
	}
	if len(_c.mutation.ChildIDs()) == 0 {
		return &ValidationError{Name: "child", err: errors.New(`ent: missing required edge "Hierarchy.child"`)}
	}
	return nil
}

func (_c *HierarchyCreate) sqlSave(ctx context.Context) (*Hierarchy, error) {
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

func (_c *HierarchyCreate) createSpec() (*Hierarchy, *sqlgraph.CreateSpec) {
	var (
		_node = &Hierarchy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hierarchy.Table, sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hierarchy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hierarchy.ParentTable,
			Columns: []string{hierarchy.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hierarchy.ChildTable,
			Columns: []string{hierarchy.ChildColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChildID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HierarchyCreateBulk is the builder for creating many Hierarchy entities in bulk.
type HierarchyCreateBulk struct {
	config
	err      error
	builders []*HierarchyCreate
}

// Save creates the Hierarchy entities in the database.
func (_c *HierarchyCreateBulk) Save(ctx context.Context) ([]*Hierarchy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Hierarchy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HierarchyMutation)
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
func (_c *HierarchyCreateBulk) SaveX(ctx context.Context) []*Hierarchy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HierarchyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HierarchyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
