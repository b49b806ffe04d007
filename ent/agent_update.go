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
	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/budget"
	"github.com/maestro-orch/maestro/ent/hierarchy"
	"github.com/maestro-orch/maestro/ent/predicate"
	"github.com/maestro-orch/maestro/ent/workspace"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks     []Hook
	mutation  *AgentMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentUpdate) SetRole(v string) *AgentUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableRole(v *string) *AgentUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *AgentUpdate) SetTaskDescription(v string) *AgentUpdate {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTaskDescription(v *string) *AgentUpdate {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v agent.Status) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *agent.Status) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDepthLevel sets the "depth_level" field.
func (_u *AgentUpdate) SetDepthLevel(v int) *AgentUpdate {
	_u.mutation.ResetDepthLevel()
	_u.mutation.SetDepthLevel(v)
	return _u
}

// SetNillableDepthLevel sets the "depth_level" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableDepthLevel(v *int) *AgentUpdate {
	if v != nil {
		_u.SetDepthLevel(*v)
	}
	return _u
}

// AddDepthLevel adds value to the "depth_level" field.
func (_u *AgentUpdate) AddDepthLevel(v int) *AgentUpdate {
	_u.mutation.AddDepthLevel(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *AgentUpdate) SetResult(v string) *AgentUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableResult(v *string) *AgentUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AgentUpdate) ClearResult() *AgentUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentUpdate) SetErrorMessage(v string) *AgentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableErrorMessage(v *string) *AgentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentUpdate) ClearErrorMessage() *AgentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentUpdate) SetCompletedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCompletedAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentUpdate) ClearCompletedAt() *AgentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetBudgetID sets the "budget" edge to the Budget entity by ID.
func (_u *AgentUpdate) SetBudgetID(id int) *AgentUpdate {
	_u.mutation.SetBudgetID(id)
	return _u
}

// SetNillableBudgetID sets the "budget" edge to the Budget entity by ID if the given value is not nil.
func (_u *AgentUpdate) SetNillableBudgetID(id *int) *AgentUpdate {
	if id != nil {
		_u = _u.SetBudgetID(*id)
	}
	return _u
}

// SetBudget sets the "budget" edge to the Budget entity.
func (_u *AgentUpdate) SetBudget(v *Budget) *AgentUpdate {
	return _u.SetBudgetID(v.ID)
}

// SetWorkspaceID sets the "workspace" edge to the Workspace entity by ID.
func (_u *AgentUpdate) SetWorkspaceID(id int) *AgentUpdate {
	_u.mutation.SetWorkspaceID(id)
	return _u
}

// SetNillableWorkspaceID sets the "workspace" edge to the Workspace entity by ID if the given value is not nil.
func (_u *AgentUpdate) SetNillableWorkspaceID(id *int) *AgentUpdate {
	if id != nil {
		_u = _u.SetWorkspaceID(*id)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *AgentUpdate) SetWorkspace(v *Workspace) *AgentUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// AddChildEdgeIDs adds the "child_edges" edge to the Hierarchy entity by IDs.
func (_u *AgentUpdate) AddChildEdgeIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddChildEdgeIDs(ids...)
	return _u
}

// AddChildEdges adds the "child_edges" edges to the Hierarchy entity.
func (_u *AgentUpdate) AddChildEdges(v ...*Hierarchy) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildEdgeIDs(ids...)
}

// AddParentEdgeIDs adds the "parent_edges" edge to the Hierarchy entity by IDs.
func (_u *AgentUpdate) AddParentEdgeIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddParentEdgeIDs(ids...)
	return _u
}

// AddParentEdges adds the "parent_edges" edges to the Hierarchy entity.
func (_u *AgentUpdate) AddParentEdges(v ...*Hierarchy) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParentEdgeIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearBudget clears the "budget" edge to the Budget entity.
func (_u *AgentUpdate) ClearBudget() *AgentUpdate {
	_u.mutation.ClearBudget()
	return _u
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *AgentUpdate) ClearWorkspace() *AgentUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// ClearChildEdges clears all "child_edges" edges to the Hierarchy entity.
func (_u *AgentUpdate) ClearChildEdges() *AgentUpdate {
	_u.mutation.ClearChildEdges()
	return _u
}

// RemoveChildEdgeIDs removes the "child_edges" edge to Hierarchy entities by IDs.
func (_u *AgentUpdate) RemoveChildEdgeIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveChildEdgeIDs(ids...)
	return _u
}

// RemoveChildEdges removes "child_edges" edges to Hierarchy entities.
func (_u *AgentUpdate) RemoveChildEdges(v ...*Hierarchy) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildEdgeIDs(ids...)
}

// ClearParentEdges clears all "parent_edges" edges to the Hierarchy entity.
func (_u *AgentUpdate) ClearParentEdges() *AgentUpdate {
	_u.mutation.ClearParentEdges()
	return _u
}

// RemoveParentEdgeIDs removes the "parent_edges" edge to Hierarchy entities by IDs.
func (_u *AgentUpdate) RemoveParentEdgeIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveParentEdgeIDs(ids...)
	return _u
}

// RemoveParentEdges removes "parent_edges" edges to Hierarchy entities.
func (_u *AgentUpdate) RemoveParentEdges(v ...*Hierarchy) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParentEdgeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *AgentUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *AgentUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(agent.FieldTaskDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DepthLevel(); ok {
		_spec.SetField(agent.FieldDepthLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepthLevel(); ok {
		_spec.AddField(agent.FieldDepthLevel, field.TypeInt, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(agent.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(agent.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(agent.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agent.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agent.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agent.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.BudgetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   agent.BudgetTable,
			Columns: []string{agent.BudgetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budget.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BudgetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   agent.BudgetTable,
			Columns: []string{agent.BudgetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budget.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   agent.WorkspaceTable,
			Columns: []string{agent.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   agent.WorkspaceTable,
			Columns: []string{agent.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildEdgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ChildEdgesTable,
			Columns: []string{agent.ChildEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildEdgesIDs(); len(nodes) > 0 && !_u.mutation.ChildEdgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ChildEdgesTable,
			Columns: []string{agent.ChildEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildEdgesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ChildEdgesTable,
			Columns: []string{agent.ChildEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParentEdgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ParentEdgesTable,
			Columns: []string{agent.ParentEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParentEdgesIDs(); len(nodes) > 0 && !_u.mutation.ParentEdgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ParentEdgesTable,
			Columns: []string{agent.ParentEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentEdgesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ParentEdgesTable,
			Columns: []string{agent.ParentEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt),
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
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *AgentMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetRole sets the "role" field.
func (_u *AgentUpdateOne) SetRole(v string) *AgentUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableRole(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *AgentUpdateOne) SetTaskDescription(v string) *AgentUpdateOne {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTaskDescription(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v agent.Status) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *agent.Status) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDepthLevel sets the "depth_level" field.
func (_u *AgentUpdateOne) SetDepthLevel(v int) *AgentUpdateOne {
	_u.mutation.ResetDepthLevel()
	_u.mutation.SetDepthLevel(v)
	return _u
}

// SetNillableDepthLevel sets the "depth_level" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableDepthLevel(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetDepthLevel(*v)
	}
	return _u
}

// AddDepthLevel adds value to the "depth_level" field.
func (_u *AgentUpdateOne) AddDepthLevel(v int) *AgentUpdateOne {
	_u.mutation.AddDepthLevel(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *AgentUpdateOne) SetResult(v string) *AgentUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableResult(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AgentUpdateOne) ClearResult() *AgentUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentUpdateOne) SetErrorMessage(v string) *AgentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableErrorMessage(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentUpdateOne) ClearErrorMessage() *AgentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentUpdateOne) SetCompletedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentUpdateOne) ClearCompletedAt() *AgentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetBudgetID sets the "budget" edge to the Budget entity by ID.
func (_u *AgentUpdateOne) SetBudgetID(id int) *AgentUpdateOne {
	_u.mutation.SetBudgetID(id)
	return _u
}

// SetNillableBudgetID sets the "budget" edge to the Budget entity by ID if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableBudgetID(id *int) *AgentUpdateOne {
	if id != nil {
		_u = _u.SetBudgetID(*id)
	}
	return _u
}

// SetBudget sets the "budget" edge to the Budget entity.
func (_u *AgentUpdateOne) SetBudget(v *Budget) *AgentUpdateOne {
	return _u.SetBudgetID(v.ID)
}

// SetWorkspaceID sets the "workspace" edge to the Workspace entity by ID.
func (_u *AgentUpdateOne) SetWorkspaceID(id int) *AgentUpdateOne {
	_u.mutation.SetWorkspaceID(id)
	return _u
}

// SetNillableWorkspaceID sets the "workspace" edge to the Workspace entity by ID if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableWorkspaceID(id *int) *AgentUpdateOne {
	if id != nil {
		_u = _u.SetWorkspaceID(*id)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *AgentUpdateOne) SetWorkspace(v *Workspace) *AgentUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// AddChildEdgeIDs adds the "child_edges" edge to the Hierarchy entity by IDs.
func (_u *AgentUpdateOne) AddChildEdgeIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddChildEdgeIDs(ids...)
	return _u
}

// AddChildEdges adds the "child_edges" edges to the Hierarchy entity.
func (_u *AgentUpdateOne) AddChildEdges(v ...*Hierarchy) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildEdgeIDs(ids...)
}

// AddParentEdgeIDs adds the "parent_edges" edge to the Hierarchy entity by IDs.
func (_u *AgentUpdateOne) AddParentEdgeIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddParentEdgeIDs(ids...)
	return _u
}

// AddParentEdges adds the "parent_edges" edges to the Hierarchy entity.
func (_u *AgentUpdateOne) AddParentEdges(v ...*Hierarchy) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParentEdgeIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearBudget clears the "budget" edge to the Budget entity.
func (_u *AgentUpdateOne) ClearBudget() *AgentUpdateOne {
	_u.mutation.ClearBudget()
	return _u
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *AgentUpdateOne) ClearWorkspace() *AgentUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// ClearChildEdges clears all "child_edges" edges to the Hierarchy entity.
func (_u *AgentUpdateOne) ClearChildEdges() *AgentUpdateOne {
	_u.mutation.ClearChildEdges()
	return _u
}

// RemoveChildEdgeIDs removes the "child_edges" edge to Hierarchy entities by IDs.
func (_u *AgentUpdateOne) RemoveChildEdgeIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveChildEdgeIDs(ids...)
	return _u
}

// RemoveChildEdges removes "child_edges" edges to Hierarchy entities.
func (_u *AgentUpdateOne) RemoveChildEdges(v ...*Hierarchy) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildEdgeIDs(ids...)
}

// ClearParentEdges clears all "parent_edges" edges to the Hierarchy entity.
func (_u *AgentUpdateOne) ClearParentEdges() *AgentUpdateOne {
	_u.mutation.ClearParentEdges()
	return _u
}

// RemoveParentEdgeIDs removes the "parent_edges" edge to Hierarchy entities by IDs.
func (_u *AgentUpdateOne) RemoveParentEdgeIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveParentEdgeIDs(ids...)
	return _u
}

// RemoveParentEdges removes "parent_edges" edges to Hierarchy entities.
func (_u *AgentUpdateOne) RemoveParentEdges(v ...*Hierarchy) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParentEdgeIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *AgentUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *AgentUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
		_spec.SetField(agent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(agent.FieldTaskDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DepthLevel(); ok {
		_spec.SetField(agent.FieldDepthLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepthLevel(); ok {
		_spec.AddField(agent.FieldDepthLevel, field.TypeInt, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(agent.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(agent.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(agent.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agent.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agent.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agent.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.BudgetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   agent.BudgetTable,
			Columns: []string{agent.BudgetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budget.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BudgetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   agent.BudgetTable,
			Columns: []string{agent.BudgetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(budget.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   agent.WorkspaceTable,
			Columns: []string{agent.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   agent.WorkspaceTable,
			Columns: []string{agent.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildEdgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ChildEdgesTable,
			Columns: []string{agent.ChildEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildEdgesIDs(); len(nodes) > 0 && !_u.mutation.ChildEdgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ChildEdgesTable,
			Columns: []string{agent.ChildEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildEdgesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ChildEdgesTable,
			Columns: []string{agent.ChildEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParentEdgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ParentEdgesTable,
			Columns: []string{agent.ParentEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParentEdgesIDs(); len(nodes) > 0 && !_u.mutation.ParentEdgesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ParentEdgesTable,
			Columns: []string{agent.ParentEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentEdgesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ParentEdgesTable,
			Columns: []string{agent.ParentEdgesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
