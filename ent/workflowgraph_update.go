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
	"github.com/maestro-orch/maestro/ent/workflowgraph"
	"github.com/maestro-orch/maestro/ent/workflownode"
)

// WorkflowGraphUpdate is the builder for updating WorkflowGraph entities.
type WorkflowGraphUpdate struct {
	config
	hooks     []Hook
	mutation  *WorkflowGraphMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the WorkflowGraphUpdate builder.
func (_u *WorkflowGraphUpdate) Where(ps ...predicate.WorkflowGraph) *WorkflowGraphUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRootAgentID sets the "root_agent_id" field.
func (_u *WorkflowGraphUpdate) SetRootAgentID(v string) *WorkflowGraphUpdate {
	_u.mutation.SetRootAgentID(v)
	return _u
}

// SetNillableRootAgentID sets the "root_agent_id" field if the given value is not nil.
func (_u *WorkflowGraphUpdate) SetNillableRootAgentID(v *string) *WorkflowGraphUpdate {
	if v != nil {
		_u.SetRootAgentID(*v)
	}
	return _u
}

// ClearRootAgentID clears the value of the "root_agent_id" field.
func (_u *WorkflowGraphUpdate) ClearRootAgentID() *WorkflowGraphUpdate {
	_u.mutation.ClearRootAgentID()
	return _u
}

// SetTask sets the "task" field.
func (_u *WorkflowGraphUpdate) SetTask(v string) *WorkflowGraphUpdate {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *WorkflowGraphUpdate) SetNillableTask(v *string) *WorkflowGraphUpdate {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// ClearTask clears the value of the "task" field.
func (_u *WorkflowGraphUpdate) ClearTask() *WorkflowGraphUpdate {
	_u.mutation.ClearTask()
	return _u
}

// SetTotalBudget sets the "total_budget" field.
func (_u *WorkflowGraphUpdate) SetTotalBudget(v int) *WorkflowGraphUpdate {
	_u.mutation.ResetTotalBudget()
	_u.mutation.SetTotalBudget(v)
	return _u
}

// SetNillableTotalBudget sets the "total_budget" field if the given value is not nil.
func (_u *WorkflowGraphUpdate) SetNillableTotalBudget(v *int) *WorkflowGraphUpdate {
	if v != nil {
		_u.SetTotalBudget(*v)
	}
	return _u
}

// AddTotalBudget adds value to the "total_budget" field.
func (_u *WorkflowGraphUpdate) AddTotalBudget(v int) *WorkflowGraphUpdate {
	_u.mutation.AddTotalBudget(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowGraphUpdate) SetStatus(v workflowgraph.Status) *WorkflowGraphUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowGraphUpdate) SetNillableStatus(v *workflowgraph.Status) *WorkflowGraphUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *WorkflowGraphUpdate) SetValidationStatus(v workflowgraph.ValidationStatus) *WorkflowGraphUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *WorkflowGraphUpdate) SetNillableValidationStatus(v *workflowgraph.ValidationStatus) *WorkflowGraphUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetValidationErrors sets the "validation_errors" field.
func (_u *WorkflowGraphUpdate) SetValidationErrors(v []string) *WorkflowGraphUpdate {
	_u.mutation.SetValidationErrors(v)
	return _u
}

// AppendValidationErrors appends value to the "validation_errors" field.
func (_u *WorkflowGraphUpdate) AppendValidationErrors(v []string) *WorkflowGraphUpdate {
	_u.mutation.AppendValidationErrors(v)
	return _u
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (_u *WorkflowGraphUpdate) ClearValidationErrors() *WorkflowGraphUpdate {
	_u.mutation.ClearValidationErrors()
	return _u
}

// SetTerminationReason sets the "termination_reason" field.
func (_u *WorkflowGraphUpdate) SetTerminationReason(v string) *WorkflowGraphUpdate {
	_u.mutation.SetTerminationReason(v)
	return _u
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_u *WorkflowGraphUpdate) SetNillableTerminationReason(v *string) *WorkflowGraphUpdate {
	if v != nil {
		_u.SetTerminationReason(*v)
	}
	return _u
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (_u *WorkflowGraphUpdate) ClearTerminationReason() *WorkflowGraphUpdate {
	_u.mutation.ClearTerminationReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowGraphUpdate) SetUpdatedAt(v time.Time) *WorkflowGraphUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddNodeIDs adds the "nodes" edge to the WorkflowNode entity by IDs.
func (_u *WorkflowGraphUpdate) AddNodeIDs(ids ...string) *WorkflowGraphUpdate {
	_u.mutation.AddNodeIDs(ids...)
	return _u
}

// AddNodes adds the "nodes" edges to the WorkflowNode entity.
func (_u *WorkflowGraphUpdate) AddNodes(v ...*WorkflowNode) *WorkflowGraphUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNodeIDs(ids...)
}

// Mutation returns the WorkflowGraphMutation object of the builder.
func (_u *WorkflowGraphUpdate) Mutation() *WorkflowGraphMutation {
	return _u.mutation
}

// ClearNodes clears all "nodes" edges to the WorkflowNode entity.
func (_u *WorkflowGraphUpdate) ClearNodes() *WorkflowGraphUpdate {
	_u.mutation.ClearNodes()
	return _u
}

// RemoveNodeIDs removes the "nodes" edge to WorkflowNode entities by IDs.
func (_u *WorkflowGraphUpdate) RemoveNodeIDs(ids ...string) *WorkflowGraphUpdate {
	_u.mutation.RemoveNodeIDs(ids...)
	return _u
}

// RemoveNodes removes "nodes" edges to WorkflowNode entities.
func (_u *WorkflowGraphUpdate) RemoveNodes(v ...*WorkflowNode) *WorkflowGraphUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNodeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowGraphUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowGraphUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowGraphUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowGraphUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowGraphUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowgraph.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowGraphUpdate) check() error {
	if v, ok := _u.mutation.TotalBudget(); ok {
		if err := workflowgraph.TotalBudgetValidator(v); err != nil {
			return &ValidationError{Name: "total_budget", err: fmt.Errorf(`ent: validator failed for field "WorkflowGraph.total_budget": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowgraph.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowGraph.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := workflowgraph.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "WorkflowGraph.validation_status": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *WorkflowGraphUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *WorkflowGraphUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *WorkflowGraphUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowgraph.Table, workflowgraph.Columns, sqlgraph.NewFieldSpec(workflowgraph.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(workflowgraph.FieldTemplateID, field.TypeString)
	}
	if value, ok := _u.mutation.RootAgentID(); ok {
		_spec.SetField(workflowgraph.FieldRootAgentID, field.TypeString, value)
	}
	if _u.mutation.RootAgentIDCleared() {
		_spec.ClearField(workflowgraph.FieldRootAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(workflowgraph.FieldTask, field.TypeString, value)
	}
	if _u.mutation.TaskCleared() {
		_spec.ClearField(workflowgraph.FieldTask, field.TypeString)
	}
	if value, ok := _u.mutation.TotalBudget(); ok {
		_spec.SetField(workflowgraph.FieldTotalBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalBudget(); ok {
		_spec.AddField(workflowgraph.FieldTotalBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowgraph.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(workflowgraph.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ValidationErrors(); ok {
		_spec.SetField(workflowgraph.FieldValidationErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowgraph.FieldValidationErrors, value)
		})
	}
	if _u.mutation.ValidationErrorsCleared() {
		_spec.ClearField(workflowgraph.FieldValidationErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.TerminationReason(); ok {
		_spec.SetField(workflowgraph.FieldTerminationReason, field.TypeString, value)
	}
	if _u.mutation.TerminationReasonCleared() {
		_spec.ClearField(workflowgraph.FieldTerminationReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowgraph.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNodesIDs(); len(nodes) > 0 && !_u.mutation.NodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowgraph.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowGraphUpdateOne is the builder for updating a single WorkflowGraph entity.
type WorkflowGraphUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *WorkflowGraphMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetRootAgentID sets the "root_agent_id" field.
func (_u *WorkflowGraphUpdateOne) SetRootAgentID(v string) *WorkflowGraphUpdateOne {
	_u.mutation.SetRootAgentID(v)
	return _u
}

// SetNillableRootAgentID sets the "root_agent_id" field if the given value is not nil.
func (_u *WorkflowGraphUpdateOne) SetNillableRootAgentID(v *string) *WorkflowGraphUpdateOne {
	if v != nil {
		_u.SetRootAgentID(*v)
	}
	return _u
}

// ClearRootAgentID clears the value of the "root_agent_id" field.
func (_u *WorkflowGraphUpdateOne) ClearRootAgentID() *WorkflowGraphUpdateOne {
	_u.mutation.ClearRootAgentID()
	return _u
}

// SetTask sets the "task" field.
func (_u *WorkflowGraphUpdateOne) SetTask(v string) *WorkflowGraphUpdateOne {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *WorkflowGraphUpdateOne) SetNillableTask(v *string) *WorkflowGraphUpdateOne {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// ClearTask clears the value of the "task" field.
func (_u *WorkflowGraphUpdateOne) ClearTask() *WorkflowGraphUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// SetTotalBudget sets the "total_budget" field.
func (_u *WorkflowGraphUpdateOne) SetTotalBudget(v int) *WorkflowGraphUpdateOne {
	_u.mutation.ResetTotalBudget()
	_u.mutation.SetTotalBudget(v)
	return _u
}

// SetNillableTotalBudget sets the "total_budget" field if the given value is not nil.
func (_u *WorkflowGraphUpdateOne) SetNillableTotalBudget(v *int) *WorkflowGraphUpdateOne {
	if v != nil {
		_u.SetTotalBudget(*v)
	}
	return _u
}

// AddTotalBudget adds value to the "total_budget" field.
func (_u *WorkflowGraphUpdateOne) AddTotalBudget(v int) *WorkflowGraphUpdateOne {
	_u.mutation.AddTotalBudget(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowGraphUpdateOne) SetStatus(v workflowgraph.Status) *WorkflowGraphUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowGraphUpdateOne) SetNillableStatus(v *workflowgraph.Status) *WorkflowGraphUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *WorkflowGraphUpdateOne) SetValidationStatus(v workflowgraph.ValidationStatus) *WorkflowGraphUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *WorkflowGraphUpdateOne) SetNillableValidationStatus(v *workflowgraph.ValidationStatus) *WorkflowGraphUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetValidationErrors sets the "validation_errors" field.
func (_u *WorkflowGraphUpdateOne) SetValidationErrors(v []string) *WorkflowGraphUpdateOne {
	_u.mutation.SetValidationErrors(v)
	return _u
}

// AppendValidationErrors appends value to the "validation_errors" field.
func (_u *WorkflowGraphUpdateOne) AppendValidationErrors(v []string) *WorkflowGraphUpdateOne {
	_u.mutation.AppendValidationErrors(v)
	return _u
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (_u *WorkflowGraphUpdateOne) ClearValidationErrors() *WorkflowGraphUpdateOne {
	_u.mutation.ClearValidationErrors()
	return _u
}

// SetTerminationReason sets the "termination_reason" field.
func (_u *WorkflowGraphUpdateOne) SetTerminationReason(v string) *WorkflowGraphUpdateOne {
	_u.mutation.SetTerminationReason(v)
	return _u
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_u *WorkflowGraphUpdateOne) SetNillableTerminationReason(v *string) *WorkflowGraphUpdateOne {
	if v != nil {
		_u.SetTerminationReason(*v)
	}
	return _u
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (_u *WorkflowGraphUpdateOne) ClearTerminationReason() *WorkflowGraphUpdateOne {
	_u.mutation.ClearTerminationReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowGraphUpdateOne) SetUpdatedAt(v time.Time) *WorkflowGraphUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddNodeIDs adds the "nodes" edge to the WorkflowNode entity by IDs.
func (_u *WorkflowGraphUpdateOne) AddNodeIDs(ids ...string) *WorkflowGraphUpdateOne {
	_u.mutation.AddNodeIDs(ids...)
	return _u
}

// AddNodes adds the "nodes" edges to the WorkflowNode entity.
func (_u *WorkflowGraphUpdateOne) AddNodes(v ...*WorkflowNode) *WorkflowGraphUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNodeIDs(ids...)
}

// Mutation returns the WorkflowGraphMutation object of the builder.
func (_u *WorkflowGraphUpdateOne) Mutation() *WorkflowGraphMutation {
	return _u.mutation
}

// ClearNodes clears all "nodes" edges to the WorkflowNode entity.
func (_u *WorkflowGraphUpdateOne) ClearNodes() *WorkflowGraphUpdateOne {
	_u.mutation.ClearNodes()
	return _u
}

// RemoveNodeIDs removes the "nodes" edge to WorkflowNode entities by IDs.
func (_u *WorkflowGraphUpdateOne) RemoveNodeIDs(ids ...string) *WorkflowGraphUpdateOne {
	_u.mutation.RemoveNodeIDs(ids...)
	return _u
}

// RemoveNodes removes "nodes" edges to WorkflowNode entities.
func (_u *WorkflowGraphUpdateOne) RemoveNodes(v ...*WorkflowNode) *WorkflowGraphUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNodeIDs(ids...)
}

// Where appends a list predicates to the WorkflowGraphUpdate builder.
func (_u *WorkflowGraphUpdateOne) Where(ps ...predicate.WorkflowGraph) *WorkflowGraphUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowGraphUpdateOne) Select(field string, fields ...string) *WorkflowGraphUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowGraph entity.
func (_u *WorkflowGraphUpdateOne) Save(ctx context.Context) (*WorkflowGraph, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowGraphUpdateOne) SaveX(ctx context.Context) *WorkflowGraph {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowGraphUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowGraphUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowGraphUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowgraph.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowGraphUpdateOne) check() error {
	if v, ok := _u.mutation.TotalBudget(); ok {
		if err := workflowgraph.TotalBudgetValidator(v); err != nil {
			return &ValidationError{Name: "total_budget", err: fmt.Errorf(`ent: validator failed for field "WorkflowGraph.total_budget": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowgraph.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowGraph.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := workflowgraph.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "WorkflowGraph.validation_status": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *WorkflowGraphUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *WorkflowGraphUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *WorkflowGraphUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowGraph, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowgraph.Table, workflowgraph.Columns, sqlgraph.NewFieldSpec(workflowgraph.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowGraph.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowgraph.FieldID)
		for _, f := range fields {
			if !workflowgraph.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowgraph.FieldID {
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
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(workflowgraph.FieldTemplateID, field.TypeString)
	}
	if value, ok := _u.mutation.RootAgentID(); ok {
		_spec.SetField(workflowgraph.FieldRootAgentID, field.TypeString, value)
	}
	if _u.mutation.RootAgentIDCleared() {
		_spec.ClearField(workflowgraph.FieldRootAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(workflowgraph.FieldTask, field.TypeString, value)
	}
	if _u.mutation.TaskCleared() {
		_spec.ClearField(workflowgraph.FieldTask, field.TypeString)
	}
	if value, ok := _u.mutation.TotalBudget(); ok {
		_spec.SetField(workflowgraph.FieldTotalBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalBudget(); ok {
		_spec.AddField(workflowgraph.FieldTotalBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowgraph.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(workflowgraph.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ValidationErrors(); ok {
		_spec.SetField(workflowgraph.FieldValidationErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowgraph.FieldValidationErrors, value)
		})
	}
	if _u.mutation.ValidationErrorsCleared() {
		_spec.ClearField(workflowgraph.FieldValidationErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.TerminationReason(); ok {
		_spec.SetField(workflowgraph.FieldTerminationReason, field.TypeString, value)
	}
	if _u.mutation.TerminationReasonCleared() {
		_spec.ClearField(workflowgraph.FieldTerminationReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowgraph.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNodesIDs(); len(nodes) > 0 && !_u.mutation.NodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &WorkflowGraph{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowgraph.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
