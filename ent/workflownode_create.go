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

// WorkflowNodeCreate is the builder for creating a WorkflowNode entity.
type WorkflowNodeCreate struct {
	config
	mutation *WorkflowNodeMutation
	hooks    []Hook
}

// SetWorkflowGraphID sets the "workflow_graph_id" field.
func (_c *WorkflowNodeCreate) SetWorkflowGraphID(v string) *WorkflowNodeCreate {
	_c.mutation.SetWorkflowGraphID(v)
	return _c
}

// SetNodeKey sets the "node_key" field.
func (_c *WorkflowNodeCreate) SetNodeKey(v string) *WorkflowNodeCreate {
	_c.mutation.SetNodeKey(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *WorkflowNodeCreate) SetRole(v string) *WorkflowNodeCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetTaskDescription sets the "task_description" field.
func (_c *WorkflowNodeCreate) SetTaskDescription(v string) *WorkflowNodeCreate {
	_c.mutation.SetTaskDescription(v)
	return _c
}

// SetBudgetAllocation sets the "budget_allocation" field.
func (_c *WorkflowNodeCreate) SetBudgetAllocation(v int) *WorkflowNodeCreate {
	_c.mutation.SetBudgetAllocation(v)
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *WorkflowNodeCreate) SetDependencies(v []string) *WorkflowNodeCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetExecutionStatus sets the "execution_status" field.
func (_c *WorkflowNodeCreate) SetExecutionStatus(v workflownode.ExecutionStatus) *WorkflowNodeCreate {
	_c.mutation.SetExecutionStatus(v)
	return _c
}

// SetNillableExecutionStatus sets the "execution_status" field if the given value is not nil.
func (_c *WorkflowNodeCreate) SetNillableExecutionStatus(v *workflownode.ExecutionStatus) *WorkflowNodeCreate {
	if v != nil {
		_c.SetExecutionStatus(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *WorkflowNodeCreate) SetAgentID(v string) *WorkflowNodeCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *WorkflowNodeCreate) SetNillableAgentID(v *string) *WorkflowNodeCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *WorkflowNodeCreate) SetResult(v string) *WorkflowNodeCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *WorkflowNodeCreate) SetNillableResult(v *string) *WorkflowNodeCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *WorkflowNodeCreate) SetPosition(v int) *WorkflowNodeCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *WorkflowNodeCreate) SetNillablePosition(v *int) *WorkflowNodeCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkflowNodeCreate) SetErrorMessage(v string) *WorkflowNodeCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkflowNodeCreate) SetNillableErrorMessage(v *string) *WorkflowNodeCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowNodeCreate) SetCreatedAt(v time.Time) *WorkflowNodeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowNodeCreate) SetNillableCreatedAt(v *time.Time) *WorkflowNodeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowNodeCreate) SetUpdatedAt(v time.Time) *WorkflowNodeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowNodeCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowNodeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowNodeCreate) SetID(v string) *WorkflowNodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetGraphID sets the "graph" edge to the WorkflowGraph entity by ID.
func (_c *WorkflowNodeCreate) SetGraphID(id string) *WorkflowNodeCreate {
	_c.mutation.SetGraphID(id)
	return _c
}

// SetGraph sets the "graph" edge to the WorkflowGraph entity.
func (_c *WorkflowNodeCreate) SetGraph(v *WorkflowGraph) *WorkflowNodeCreate {
	return _c.SetGraphID(v.ID)
}

// Mutation returns the WorkflowNodeMutation object of the builder.
func (_c *WorkflowNodeCreate) Mutation() *WorkflowNodeMutation {
	return _c.mutation
}

// Save creates the WorkflowNode in the database.
func (_c *WorkflowNodeCreate) Save(ctx context.Context) (*WorkflowNode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowNodeCreate) SaveX(ctx context.Context) *WorkflowNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowNodeCreate) defaults() {
	if _, ok := _c.mutation.ExecutionStatus(); !ok {
		v := workflownode.DefaultExecutionStatus
		_c.mutation.SetExecutionStatus(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := workflownode.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflownode.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflownode.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowNodeCreate) check() error {
	if _, ok := _c.mutation.WorkflowGraphID(); !ok {
		return &ValidationError{Name: "workflow_graph_id", err: errors.New(`ent: missing required field "WorkflowNode.workflow_graph_id"`)}
	}
	if _, ok := _c.mutation.NodeKey(); !ok {
		return &ValidationError{Name: "node_key", err: errors.New(`ent: missing required field "WorkflowNode.node_key"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "WorkflowNode.role"`)}
	}
	if _, ok := _c.mutation.TaskDescription(); !ok {
		return &ValidationError{Name: "task_description", err: errors.New(`ent: missing required field "WorkflowNode.task_description"`)}
	}
	if _, ok := _c.mutation.BudgetAllocation(); !ok {
		return &ValidationError{Name: "budget_allocation", err: errors.New(`ent: missing required field "WorkflowNode.budget_allocation"`)}
	}
	if v, ok := _c.mutation.BudgetAllocation(); ok {
		if err := workflownode.BudgetAllocationValidator(v); err != nil {
			return &ValidationError{Name: "budget_allocation", err: fmt.Errorf(`ent: validator failed for field "WorkflowNode.budget_allocation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExecutionStatus(); !ok {
		return &ValidationError{Name: "execution_status", err: errors.New(`ent: missing required field "WorkflowNode.execution_status"`)}
	}
	if v, ok := _c.mutation.ExecutionStatus(); ok {
		if err := workflownode.ExecutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "execution_status", err: fmt.Errorf(`ent: validator failed for field "WorkflowNode.execution_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "WorkflowNode.position"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowNode.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowNode.updated_at"`)}
	}
	if len(_c.mutation.GraphIDs()) == 0 {
		return &ValidationError{Name: "graph", err: errors.New(`ent: missing required edge "WorkflowNode.graph"`)}
	}
	return nil
}

func (_c *WorkflowNodeCreate) sqlSave(ctx context.Context) (*WorkflowNode, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowNode.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowNodeCreate) createSpec() (*WorkflowNode, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflownode.Table, sqlgraph.NewFieldSpec(workflownode.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NodeKey(); ok {
		_spec.SetField(workflownode.FieldNodeKey, field.TypeString, value)
		_node.NodeKey = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(workflownode.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.TaskDescription(); ok {
		_spec.SetField(workflownode.FieldTaskDescription, field.TypeString, value)
		_node.TaskDescription = value
	}
	if value, ok := _c.mutation.BudgetAllocation(); ok {
		_spec.SetField(workflownode.FieldBudgetAllocation, field.TypeInt, value)
		_node.BudgetAllocation = value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(workflownode.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.ExecutionStatus(); ok {
		_spec.SetField(workflownode.FieldExecutionStatus, field.TypeEnum, value)
		_node.ExecutionStatus = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(workflownode.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(workflownode.FieldResult, field.TypeString, value)
		_node.Result = &value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(workflownode.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workflownode.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflownode.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflownode.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.GraphIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflownode.GraphTable,
			Columns: []string{workflownode.GraphColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowgraph.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkflowGraphID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowNodeCreateBulk is the builder for creating many WorkflowNode entities in bulk.
type WorkflowNodeCreateBulk struct {
	config
	err      error
	builders []*WorkflowNodeCreate
}

// Save creates the WorkflowNode entities in the database.
func (_c *WorkflowNodeCreateBulk) Save(ctx context.Context) ([]*WorkflowNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowNodeMutation)
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
func (_c *WorkflowNodeCreateBulk) SaveX(ctx context.Context) []*WorkflowNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
