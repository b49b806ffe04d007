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
	"github.com/maestro-orch/maestro/ent/workflowtemplate"
	"github.com/maestro-orch/maestro/pkg/models"
)

// WorkflowTemplateUpdate is the builder for updating WorkflowTemplate entities.
type WorkflowTemplateUpdate struct {
	config
	hooks     []Hook
	mutation  *WorkflowTemplateMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the WorkflowTemplateUpdate builder.
func (_u *WorkflowTemplateUpdate) Where(ps ...predicate.WorkflowTemplate) *WorkflowTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowTemplateUpdate) SetName(v string) *WorkflowTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowTemplateUpdate) SetNillableName(v *string) *WorkflowTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNodeTemplates sets the "node_templates" field.
func (_u *WorkflowTemplateUpdate) SetNodeTemplates(v []models.NodeTemplate) *WorkflowTemplateUpdate {
	_u.mutation.SetNodeTemplates(v)
	return _u
}

// AppendNodeTemplates appends value to the "node_templates" field.
func (_u *WorkflowTemplateUpdate) AppendNodeTemplates(v []models.NodeTemplate) *WorkflowTemplateUpdate {
	_u.mutation.AppendNodeTemplates(v)
	return _u
}

// SetEdgePatterns sets the "edge_patterns" field.
func (_u *WorkflowTemplateUpdate) SetEdgePatterns(v []models.EdgePattern) *WorkflowTemplateUpdate {
	_u.mutation.SetEdgePatterns(v)
	return _u
}

// AppendEdgePatterns appends value to the "edge_patterns" field.
func (_u *WorkflowTemplateUpdate) AppendEdgePatterns(v []models.EdgePattern) *WorkflowTemplateUpdate {
	_u.mutation.AppendEdgePatterns(v)
	return _u
}

// ClearEdgePatterns clears the value of the "edge_patterns" field.
func (_u *WorkflowTemplateUpdate) ClearEdgePatterns() *WorkflowTemplateUpdate {
	_u.mutation.ClearEdgePatterns()
	return _u
}

// SetMinBudget sets the "min_budget" field.
func (_u *WorkflowTemplateUpdate) SetMinBudget(v int) *WorkflowTemplateUpdate {
	_u.mutation.ResetMinBudget()
	_u.mutation.SetMinBudget(v)
	return _u
}

// SetNillableMinBudget sets the "min_budget" field if the given value is not nil.
func (_u *WorkflowTemplateUpdate) SetNillableMinBudget(v *int) *WorkflowTemplateUpdate {
	if v != nil {
		_u.SetMinBudget(*v)
	}
	return _u
}

// AddMinBudget adds value to the "min_budget" field.
func (_u *WorkflowTemplateUpdate) AddMinBudget(v int) *WorkflowTemplateUpdate {
	_u.mutation.AddMinBudget(v)
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *WorkflowTemplateUpdate) SetUsageCount(v int) *WorkflowTemplateUpdate {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *WorkflowTemplateUpdate) SetNillableUsageCount(v *int) *WorkflowTemplateUpdate {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *WorkflowTemplateUpdate) AddUsageCount(v int) *WorkflowTemplateUpdate {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowTemplateUpdate) SetUpdatedAt(v time.Time) *WorkflowTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkflowTemplateMutation object of the builder.
func (_u *WorkflowTemplateUpdate) Mutation() *WorkflowTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowTemplateUpdate) check() error {
	if v, ok := _u.mutation.MinBudget(); ok {
		if err := workflowtemplate.MinBudgetValidator(v); err != nil {
			return &ValidationError{Name: "min_budget", err: fmt.Errorf(`ent: validator failed for field "WorkflowTemplate.min_budget": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsageCount(); ok {
		if err := workflowtemplate.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "WorkflowTemplate.usage_count": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *WorkflowTemplateUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *WorkflowTemplateUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *WorkflowTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowtemplate.Table, workflowtemplate.Columns, sqlgraph.NewFieldSpec(workflowtemplate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflowtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeTemplates(); ok {
		_spec.SetField(workflowtemplate.FieldNodeTemplates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNodeTemplates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowtemplate.FieldNodeTemplates, value)
		})
	}
	if value, ok := _u.mutation.EdgePatterns(); ok {
		_spec.SetField(workflowtemplate.FieldEdgePatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEdgePatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowtemplate.FieldEdgePatterns, value)
		})
	}
	if _u.mutation.EdgePatternsCleared() {
		_spec.ClearField(workflowtemplate.FieldEdgePatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.MinBudget(); ok {
		_spec.SetField(workflowtemplate.FieldMinBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinBudget(); ok {
		_spec.AddField(workflowtemplate.FieldMinBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(workflowtemplate.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(workflowtemplate.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowTemplateUpdateOne is the builder for updating a single WorkflowTemplate entity.
type WorkflowTemplateUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *WorkflowTemplateMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetName sets the "name" field.
func (_u *WorkflowTemplateUpdateOne) SetName(v string) *WorkflowTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowTemplateUpdateOne) SetNillableName(v *string) *WorkflowTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNodeTemplates sets the "node_templates" field.
func (_u *WorkflowTemplateUpdateOne) SetNodeTemplates(v []models.NodeTemplate) *WorkflowTemplateUpdateOne {
	_u.mutation.SetNodeTemplates(v)
	return _u
}

// AppendNodeTemplates appends value to the "node_templates" field.
func (_u *WorkflowTemplateUpdateOne) AppendNodeTemplates(v []models.NodeTemplate) *WorkflowTemplateUpdateOne {
	_u.mutation.AppendNodeTemplates(v)
	return _u
}

// SetEdgePatterns sets the "edge_patterns" field.
func (_u *WorkflowTemplateUpdateOne) SetEdgePatterns(v []models.EdgePattern) *WorkflowTemplateUpdateOne {
	_u.mutation.SetEdgePatterns(v)
	return _u
}

// AppendEdgePatterns appends value to the "edge_patterns" field.
func (_u *WorkflowTemplateUpdateOne) AppendEdgePatterns(v []models.EdgePattern) *WorkflowTemplateUpdateOne {
	_u.mutation.AppendEdgePatterns(v)
	return _u
}

// ClearEdgePatterns clears the value of the "edge_patterns" field.
func (_u *WorkflowTemplateUpdateOne) ClearEdgePatterns() *WorkflowTemplateUpdateOne {
	_u.mutation.ClearEdgePatterns()
	return _u
}

// SetMinBudget sets the "min_budget" field.
func (_u *WorkflowTemplateUpdateOne) SetMinBudget(v int) *WorkflowTemplateUpdateOne {
	_u.mutation.ResetMinBudget()
	_u.mutation.SetMinBudget(v)
	return _u
}

// SetNillableMinBudget sets the "min_budget" field if the given value is not nil.
func (_u *WorkflowTemplateUpdateOne) SetNillableMinBudget(v *int) *WorkflowTemplateUpdateOne {
	if v != nil {
		_u.SetMinBudget(*v)
	}
	return _u
}

// AddMinBudget adds value to the "min_budget" field.
func (_u *WorkflowTemplateUpdateOne) AddMinBudget(v int) *WorkflowTemplateUpdateOne {
	_u.mutation.AddMinBudget(v)
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *WorkflowTemplateUpdateOne) SetUsageCount(v int) *WorkflowTemplateUpdateOne {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *WorkflowTemplateUpdateOne) SetNillableUsageCount(v *int) *WorkflowTemplateUpdateOne {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *WorkflowTemplateUpdateOne) AddUsageCount(v int) *WorkflowTemplateUpdateOne {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowTemplateUpdateOne) SetUpdatedAt(v time.Time) *WorkflowTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkflowTemplateMutation object of the builder.
func (_u *WorkflowTemplateUpdateOne) Mutation() *WorkflowTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowTemplateUpdate builder.
func (_u *WorkflowTemplateUpdateOne) Where(ps ...predicate.WorkflowTemplate) *WorkflowTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowTemplateUpdateOne) Select(field string, fields ...string) *WorkflowTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowTemplate entity.
func (_u *WorkflowTemplateUpdateOne) Save(ctx context.Context) (*WorkflowTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowTemplateUpdateOne) SaveX(ctx context.Context) *WorkflowTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.MinBudget(); ok {
		if err := workflowtemplate.MinBudgetValidator(v); err != nil {
			return &ValidationError{Name: "min_budget", err: fmt.Errorf(`ent: validator failed for field "WorkflowTemplate.min_budget": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsageCount(); ok {
		if err := workflowtemplate.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "WorkflowTemplate.usage_count": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *WorkflowTemplateUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *WorkflowTemplateUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *WorkflowTemplateUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowtemplate.Table, workflowtemplate.Columns, sqlgraph.NewFieldSpec(workflowtemplate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowtemplate.FieldID)
		for _, f := range fields {
			if !workflowtemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowtemplate.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflowtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeTemplates(); ok {
		_spec.SetField(workflowtemplate.FieldNodeTemplates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNodeTemplates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowtemplate.FieldNodeTemplates, value)
		})
	}
	if value, ok := _u.mutation.EdgePatterns(); ok {
		_spec.SetField(workflowtemplate.FieldEdgePatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEdgePatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowtemplate.FieldEdgePatterns, value)
		})
	}
	if _u.mutation.EdgePatternsCleared() {
		_spec.ClearField(workflowtemplate.FieldEdgePatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.MinBudget(); ok {
		_spec.SetField(workflowtemplate.FieldMinBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinBudget(); ok {
		_spec.AddField(workflowtemplate.FieldMinBudget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(workflowtemplate.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(workflowtemplate.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &WorkflowTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
