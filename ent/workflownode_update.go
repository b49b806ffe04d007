// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/maestro-orch/maestro/ent/predicate"
	"github.com/maestro-orch/maestro/ent/workflownode"
)

// WorkflowNodeUpdate is the builder for updating WorkflowNode entities.
type WorkflowNodeUpdate struct {
	config
	hooks     []Hook
	mutation  *WorkflowNodeMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the WorkflowNodeUpdate builder.
func (_u *WorkflowNodeUpdate) Where(ps ...predicate.WorkflowNode) *WorkflowNodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *WorkflowNodeUpdate) SetRole(v string) *WorkflowNodeUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *WorkflowNodeUpdate) SetNillableRole(v *string) *WorkflowNodeUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *WorkflowNodeUpdate) SetTaskDescription(v string) *WorkflowNodeUpdate {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *WorkflowNodeUpdate) SetNillableTaskDescription(v *string) *WorkflowNodeUpdate {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// SetBudgetAllocation sets the "budget_allocation" field.
func (_u *WorkflowNodeUpdate) SetBudgetAllocation(v int) *WorkflowNodeUpdate {
	_u.mutation.ResetBudgetAllocation()
	_u.mutation.SetBudgetAllocation(v)
	return _u
}

// SetNillableBudgetAllocation sets the "budget_allocation" field if the given value is not nil.
func (_u *WorkflowNodeUpdate) SetNillableBudgetAllocation(v *int) *WorkflowNodeUpdate {
	if v != nil {
		_u.SetBudgetAllocation(*v)
	}
	return _u
}

// AddBudgetAllocation adds value to the "budget_allocation" field.
func (_u *WorkflowNodeUpdate) AddBudgetAllocation(v int) *WorkflowNodeUpdate {
	_u.mutation.AddBudgetAllocation(v)
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *WorkflowNodeUpdate) SetDependencies(v []string) *WorkflowNodeUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *WorkflowNodeUpdate) AppendDependencies(v []string) *WorkflowNodeUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *WorkflowNodeUpdate) ClearDependencies() *WorkflowNodeUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetExecutionStatus sets the "execution_status" field.
func (_u *WorkflowNodeUpdate) SetExecutionStatus(v workflownode.ExecutionStatus) *WorkflowNodeUpdate {
	_u.mutation.SetExecutionStatus(v)
	return _u
}

// SetNillableExecutionStatus sets the "execution_status" field if the given value is not nil.
func (_u *WorkflowNodeUpdate) SetNillableExecutionStatus(v *workflownode.ExecutionStatus) *WorkflowNodeUpdate {
	if v != nil {
		_u.SetExecutionStatus(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *WorkflowNodeUpdate) SetAgentID(v string) *WorkflowNodeUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *WorkflowNodeUpdate) SetNillableAgentID(v *string) *WorkflowNodeUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *WorkflowNodeUpdate) ClearAgentID() *WorkflowNodeUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetResult sets the "result" field.
func (_u *WorkflowNodeUpdate) SetResult(v string) *WorkflowNodeUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *WorkflowNodeUpdate) SetNillableResult(v *string) *WorkflowNodeUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *WorkflowNodeUpdate) ClearResult() *WorkflowNodeUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetPosition sets the "position" field.
func (_u *WorkflowNodeUpdate) SetPosition(v int) *WorkflowNodeUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *WorkflowNodeUpdate) SetNillablePosition(v *int) *WorkflowNodeUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *WorkflowNodeUpdate) AddPosition(v int) *WorkflowNodeUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowNodeUpdate) SetErrorMessage(v string) *WorkflowNodeUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowNodeUpdate) SetNillableErrorMessage(v *string) *WorkflowNodeUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowNodeUpdate) ClearErrorMessage() *WorkflowNodeUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowNodeUpdate) SetUpdatedAt(v time.Time) *WorkflowNodeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkflowNodeMutation object of the builder.
func (_u *WorkflowNodeUpdate) Mutation() *WorkflowNodeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowNodeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowNodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowNodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowNodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowNodeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflownode.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowNodeUpdate) check() error {
	if v, ok := _u.mutation.BudgetAllocation(); ok {
		if err := workflownode.BudgetAllocationValidator(v); err != nil {
			return &ValidationError{Name: "budget_allocation", err: fmt.Errorf(`ent: validator failed for field "WorkflowNode.budget_allocation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExecutionStatus(); ok {
		if err := workflownode.ExecutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "execution_status", err: fmt.Errorf(`ent: validator failed for field "WorkflowNode.execution_status": %w`, err)}
		}
	}
	if _u.mutation.GraphCleared() && len(_u.mutation.GraphIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowNode.graph"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *WorkflowNodeUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *WorkflowNodeUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *WorkflowNodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflownode.Table, workflownode.Columns, sqlgraph.NewFieldSpec(workflownode.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(workflownode.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(workflownode.FieldTaskDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.BudgetAllocation(); ok {
		_spec.SetField(workflownode.FieldBudgetAllocation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBudgetAllocation(); ok {
		_spec.AddField(workflownode.FieldBudgetAllocation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(workflownode.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflownode.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(workflownode.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutionStatus(); ok {
		_spec.SetField(workflownode.FieldExecutionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(workflownode.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(workflownode.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(workflownode.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(workflownode.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(workflownode.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(workflownode.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflownode.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflownode.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflownode.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflownode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowNodeUpdateOne is the builder for updating a single WorkflowNode entity.
type WorkflowNodeUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *WorkflowNodeMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetRole sets the "role" field.
func (_u *WorkflowNodeUpdateOne) SetRole(v string) *WorkflowNodeUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *WorkflowNodeUpdateOne) SetNillableRole(v *string) *WorkflowNodeUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *WorkflowNodeUpdateOne) SetTaskDescription(v string) *WorkflowNodeUpdateOne {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *WorkflowNodeUpdateOne) SetNillableTaskDescription(v *string) *WorkflowNodeUpdateOne {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// SetBudgetAllocation sets the "budget_allocation" field.
func (_u *WorkflowNodeUpdateOne) SetBudgetAllocation(v int) *WorkflowNodeUpdateOne {
	_u.mutation.ResetBudgetAllocation()
	_u.mutation.SetBudgetAllocation(v)
	return _u
}

// SetNillableBudgetAllocation sets the "budget_allocation" field if the given value is not nil.
func (_u *WorkflowNodeUpdateOne) SetNillableBudgetAllocation(v *int) *WorkflowNodeUpdateOne {
	if v != nil {
		_u.SetBudgetAllocation(*v)
	}
	return _u
}

// AddBudgetAllocation adds value to the "budget_allocation" field.
func (_u *WorkflowNodeUpdateOne) AddBudgetAllocation(v int) *WorkflowNodeUpdateOne {
	_u.mutation.AddBudgetAllocation(v)
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *WorkflowNodeUpdateOne) SetDependencies(v []string) *WorkflowNodeUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *WorkflowNodeUpdateOne) AppendDependencies(v []string) *WorkflowNodeUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *WorkflowNodeUpdateOne) ClearDependencies() *WorkflowNodeUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetExecutionStatus sets the "execution_status" field.
func (_u *WorkflowNodeUpdateOne) SetExecutionStatus(v workflownode.ExecutionStatus) *WorkflowNodeUpdateOne {
	_u.mutation.SetExecutionStatus(v)
	return _u
}

// SetNillableExecutionStatus sets the "execution_status" field if the given value is not nil.
func (_u *WorkflowNodeUpdateOne) SetNillableExecutionStatus(v *workflownode.ExecutionStatus) *WorkflowNodeUpdateOne {
	if v != nil {
		_u.SetExecutionStatus(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *WorkflowNodeUpdateOne) SetAgentID(v string) *WorkflowNodeUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *WorkflowNodeUpdateOne) SetNillableAgentID(v *string) *WorkflowNodeUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *WorkflowNodeUpdateOne) ClearAgentID() *WorkflowNodeUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetResult sets the "result" field.
func (_u *WorkflowNodeUpdateOne) SetResult(v string) *WorkflowNodeUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *WorkflowNodeUpdateOne) SetNillableResult(v *string) *WorkflowNodeUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *WorkflowNodeUpdateOne) ClearResult() *WorkflowNodeUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetPosition sets the "position" field.
func (_u *WorkflowNodeUpdateOne) SetPosition(v int) *WorkflowNodeUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *WorkflowNodeUpdateOne) SetNillablePosition(v *int) *WorkflowNodeUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *WorkflowNodeUpdateOne) AddPosition(v int) *WorkflowNodeUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowNodeUpdateOne) SetErrorMessage(v string) *WorkflowNodeUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowNodeUpdateOne) SetNillableErrorMessage(v *string) *WorkflowNodeUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowNodeUpdateOne) ClearErrorMessage() *WorkflowNodeUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowNodeUpdateOne) SetUpdatedAt(v time.Time) *WorkflowNodeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkflowNodeMutation object of the builder.
func (_u *WorkflowNodeUpdateOne) Mutation() *WorkflowNodeMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowNodeUpdate builder.
func (_u *WorkflowNodeUpdateOne) Where(ps ...predicate.WorkflowNode) *WorkflowNodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowNodeUpdateOne) Select(field string, fields ...string) *WorkflowNodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowNode entity.
func (_u *WorkflowNodeUpdateOne) Save(ctx context.Context) (*WorkflowNode, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowNodeUpdateOne) SaveX(ctx context.Context) *WorkflowNode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowNodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowNodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowNodeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflownode.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowNodeUpdateOne) check() error {
	if v, ok := _u.mutation.BudgetAllocation(); ok {
		if err := workflownode.BudgetAllocationValidator(v); err != nil {
			return &ValidationError{Name: "budget_allocation", err: fmt.Errorf(`ent: validator failed for field "WorkflowNode.budget_allocation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExecutionStatus(); ok {
		if err := workflownode.ExecutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "execution_status", err: fmt.Errorf(`ent: validator failed for field "WorkflowNode.execution_status": %w`, err)}
		}
	}
	if _u.mutation.GraphCleared() && len(_u.mutation.GraphIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowNode.graph"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *WorkflowNodeUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *WorkflowNodeUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *WorkflowNodeUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowNode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflownode.Table, workflownode.Columns, sqlgraph.NewFieldSpec(workflownode.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowNode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflownode.FieldID)
		for _, f := range fields {
			if !workflownode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflownode.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(workflownode.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(workflownode.FieldTaskDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.BudgetAllocation(); ok {
		_spec.SetField(workflownode.FieldBudgetAllocation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBudgetAllocation(); ok {
		_spec.AddField(workflownode.FieldBudgetAllocation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(workflownode.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflownode.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(workflownode.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutionStatus(); ok {
		_spec.SetField(workflownode.FieldExecutionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(workflownode.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(workflownode.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(workflownode.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(workflownode.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(workflownode.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(workflownode.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflownode.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflownode.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflownode.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &WorkflowNode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflownode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
