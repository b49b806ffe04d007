// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-orch/maestro/ent/workflowgraph"
	"github.com/maestro-orch/maestro/ent/workflownode"
)

// WorkflowGraphCreate is the builder for creating a WorkflowGraph entity.
type WorkflowGraphCreate struct {
	config
	mutation *WorkflowGraphMutation
	hooks    []Hook
}

// SetTemplateID sets the "template_id" field.
func (_c *WorkflowGraphCreate) SetTemplateID(v string) *WorkflowGraphCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_c *WorkflowGraphCreate) SetNillableTemplateID(v *string) *WorkflowGraphCreate {
	if v != nil {
		_c.SetTemplateID(*v)
	}
	return _c
}

// SetRootAgentID sets the "root_agent_id" field.
func (_c *WorkflowGraphCreate) SetRootAgentID(v string) *WorkflowGraphCreate {
	_c.mutation.SetRootAgentID(v)
	return _c
}

// SetNillableRootAgentID sets the "root_agent_id" field if the given value is not nil.
func (_c *WorkflowGraphCreate) SetNillableRootAgentID(v *string) *WorkflowGraphCreate {
	if v != nil {
		_c.SetRootAgentID(*v)
	}
	return _c
}

// SetTask sets the "task" field.
func (_c *WorkflowGraphCreate) SetTask(v string) *WorkflowGraphCreate {
	_c.mutation.SetTask(v)
	return _c
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_c *WorkflowGraphCreate) SetNillableTask(v *string) *WorkflowGraphCreate {
	if v != nil {
		_c.SetTask(*v)
	}
	return _c
}

// SetTotalBudget sets the "total_budget" field.
func (_c *WorkflowGraphCreate) SetTotalBudget(v int) *WorkflowGraphCreate {
	_c.mutation.SetTotalBudget(v)
	return _c
}

// SetNillableTotalBudget sets the "total_budget" field if the given value is not nil.
func (_c *WorkflowGraphCreate) SetNillableTotalBudget(v *int) *WorkflowGraphCreate {
	if v != nil {
		_c.SetTotalBudget(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowGraphCreate) SetStatus(v workflowgraph.Status) *WorkflowGraphCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowGraphCreate) SetNillableStatus(v *workflowgraph.Status) *WorkflowGraphCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *WorkflowGraphCreate) SetValidationStatus(v workflowgraph.ValidationStatus) *WorkflowGraphCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *WorkflowGraphCreate) SetNillableValidationStatus(v *workflowgraph.ValidationStatus) *WorkflowGraphCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetValidationErrors sets the "validation_errors" field.
func (_c *WorkflowGraphCreate) SetValidationErrors(v []string) *WorkflowGraphCreate {
	_c.mutation.SetValidationErrors(v)
	return _c
}

// SetTerminationReason sets the "termination_reason" field.
func (_c *WorkflowGraphCreate) SetTerminationReason(v string) *WorkflowGraphCreate {
	_c.mutation.SetTerminationReason(v)
	return _c
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_c *WorkflowGraphCreate) SetNillableTerminationReason(v *string) *WorkflowGraphCreate {
	if v != nil {
		_c.SetTerminationReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowGraphCreate) SetCreatedAt(v time.Time) *WorkflowGraphCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowGraphCreate) SetNillableCreatedAt(v *time.Time) *WorkflowGraphCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowGraphCreate) SetUpdatedAt(v time.Time) *WorkflowGraphCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowGraphCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowGraphCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowGraphCreate) SetID(v string) *WorkflowGraphCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddNodeIDs adds the "nodes" edge to the WorkflowNode entity by IDs.
func (_c *WorkflowGraphCreate) AddNodeIDs(ids ...string) *WorkflowGraphCreate {
	_c.mutation.AddNodeIDs(ids...)
	return _c
}

// AddNodes adds the "nodes" edges to the WorkflowNode entity.
func (_c *WorkflowGraphCreate) AddNodes(v ...*WorkflowNode) *WorkflowGraphCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNodeIDs(ids...)
}

// Mutation returns the WorkflowGraphMutation object of the builder.
func (_c *WorkflowGraphCreate) Mutation() *WorkflowGraphMutation {
	return _c.mutation
}

// Save creates the WorkflowGraph in the database.
func (_c *WorkflowGraphCreate) Save(ctx context.Context) (*WorkflowGraph, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowGraphCreate) SaveX(ctx context.Context) *WorkflowGraph {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowGraphCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowGraphCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowGraphCreate) defaults() {
	if _, ok := _c.mutation.TotalBudget(); !ok {
		v := workflowgraph.DefaultTotalBudget
		_c.mutation.SetTotalBudget(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := workflowgraph.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := workflowgraph.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowgraph.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflowgraph.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowGraphCreate) check() error {
	if _, ok := _c.mutation.TotalBudget(); !ok {
		return &ValidationError{Name: "total_budget", err: errors.New(`ent: missing required field "WorkflowGraph.total_budget"`)}
	}
	if v, ok := _c.mutation.TotalBudget(); ok {
		if err := workflowgraph.TotalBudgetValidator(v); err != nil {
			return &ValidationError{Name: "total_budget", err: fmt.Errorf(`ent: validator failed for field "WorkflowGraph.total_budget": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkflowGraph.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflowgraph.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowGraph.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "WorkflowGraph.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := workflowgraph.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "WorkflowGraph.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowGraph.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowGraph.updated_at"`)}
	}
	return nil
}

func (_c *WorkflowGraphCreate) sqlSave(ctx context.Context) (*WorkflowGraph, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected WorkflowGraph.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowGraphCreate) createSpec() (*WorkflowGraph, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowGraph{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowgraph.Table, sqlgraph.NewFieldSpec(workflowgraph.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(workflowgraph.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = &value
	}
	if value, ok := _c.mutation.RootAgentID(); ok {
		_spec.SetField(workflowgraph.FieldRootAgentID, field.TypeString, value)
		_node.RootAgentID = &value
	}
	if value, ok := _c.mutation.Task(); ok {
		_spec.SetField(workflowgraph.FieldTask, field.TypeString, value)
		_node.Task = value
	}
	if value, ok := _c.mutation.TotalBudget(); ok {
		_spec.SetField(workflowgraph.FieldTotalBudget, field.TypeInt, value)
		_node.TotalBudget = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflowgraph.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(workflowgraph.FieldValidationStatus, field.TypeEnum, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.ValidationErrors(); ok {
		_spec.SetField(workflowgraph.FieldValidationErrors, field.TypeJSON, value)
		_node.ValidationErrors = value
	}
	if value, ok := _c.mutation.TerminationReason(); ok {
		_spec.SetField(workflowgraph.FieldTerminationReason, field.TypeString, value)
		_node.TerminationReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowgraph.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowgraph.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.NodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowgraph.NodesTable,
			Columns: []string{workflowgraph.NodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflownode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowGraphCreateBulk is the builder for creating many WorkflowGraph entities in bulk.
type WorkflowGraphCreateBulk struct {
	config
	err      error
	builders []*WorkflowGraphCreate
}

// Save creates the WorkflowGraph entities in the database.
func (_c *WorkflowGraphCreateBulk) Save(ctx context.Context) ([]*WorkflowGraph, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowGraph, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowGraphMutation)
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
func (_c *WorkflowGraphCreateBulk) SaveX(ctx context.Context) []*WorkflowGraph {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowGraphCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowGraphCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
