// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-orch/maestro/ent/workflowtemplate"
	"github.com/maestro-orch/maestro/pkg/models"
)

// WorkflowTemplateCreate is the builder for creating a WorkflowTemplate entity.
type WorkflowTemplateCreate struct {
	config
	mutation *WorkflowTemplateMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *WorkflowTemplateCreate) SetName(v string) *WorkflowTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNodeTemplates sets the "node_templates" field.
func (_c *WorkflowTemplateCreate) SetNodeTemplates(v []models.NodeTemplate) *WorkflowTemplateCreate {
	_c.mutation.SetNodeTemplates(v)
	return _c
}

// SetEdgePatterns sets the "edge_patterns" field.
func (_c *WorkflowTemplateCreate) SetEdgePatterns(v []models.EdgePattern) *WorkflowTemplateCreate {
	_c.mutation.SetEdgePatterns(v)
	return _c
}

// SetMinBudget sets the "min_budget" field.
func (_c *WorkflowTemplateCreate) SetMinBudget(v int) *WorkflowTemplateCreate {
	_c.mutation.SetMinBudget(v)
	return _c
}

// SetNillableMinBudget sets the "min_budget" field if the given value is not nil.
func (_c *WorkflowTemplateCreate) SetNillableMinBudget(v *int) *WorkflowTemplateCreate {
	if v != nil {
		_c.SetMinBudget(*v)
	}
	return _c
}

// SetUsageCount sets the "usage_count" field.
func (_c *WorkflowTemplateCreate) SetUsageCount(v int) *WorkflowTemplateCreate {
	_c.mutation.SetUsageCount(v)
	return _c
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_c *WorkflowTemplateCreate) SetNillableUsageCount(v *int) *WorkflowTemplateCreate {
	if v != nil {
		_c.SetUsageCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowTemplateCreate) SetCreatedAt(v time.Time) *WorkflowTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowTemplateCreate) SetNillableCreatedAt(v *time.Time) *WorkflowTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowTemplateCreate) SetUpdatedAt(v time.Time) *WorkflowTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowTemplateCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowTemplateCreate) SetID(v string) *WorkflowTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WorkflowTemplateMutation object of the builder.
func (_c *WorkflowTemplateCreate) Mutation() *WorkflowTemplateMutation {
	return _c.mutation
}

// Save creates the WorkflowTemplate in the database.
func (_c *WorkflowTemplateCreate) Save(ctx context.Context) (*WorkflowTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowTemplateCreate) SaveX(ctx context.Context) *WorkflowTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowTemplateCreate) defaults() {
	if _, ok := _c.mutation.MinBudget(); !ok {
		v := workflowtemplate.DefaultMinBudget
		_c.mutation.SetMinBudget(v)
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		v := workflowtemplate.DefaultUsageCount
		_c.mutation.SetUsageCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowtemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflowtemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowTemplateCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "WorkflowTemplate.name"`)}
	}
	if _, ok := _c.mutation.NodeTemplates(); !ok {
		return &ValidationError{Name: "node_templates", err: errors.New(`ent: missing required field "WorkflowTemplate.node_templates"`)}
	}
	if _, ok := _c.mutation.MinBudget(); !ok {
		return &ValidationError{Name: "min_budget", err: errors.New(`ent: missing required field "WorkflowTemplate.min_budget"`)}
	}
	if v, ok := _c.mutation.MinBudget(); ok {
		if err := workflowtemplate.MinBudgetValidator(v); err != nil {
			return &ValidationError{Name: "min_budget", err: fmt.Errorf(`ent: validator failed for field "WorkflowTemplate.min_budget": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "WorkflowTemplate.usage_count"`)}
	}
	if v, ok := _c.mutation.UsageCount(); ok {
		if err := workflowtemplate.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "WorkflowTemplate.usage_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowTemplate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowTemplate.updated_at"`)}
	}
	return nil
}

func (_c *WorkflowTemplateCreate) sqlSave(ctx context.Context) (*WorkflowTemplate, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowTemplate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowTemplateCreate) createSpec() (*WorkflowTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowtemplate.Table, sqlgraph.NewFieldSpec(workflowtemplate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(workflowtemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.NodeTemplates(); ok {
		_spec.SetField(workflowtemplate.FieldNodeTemplates, field.TypeJSON, value)
		_node.NodeTemplates = value
	}
	if value, ok := _c.mutation.EdgePatterns(); ok {
		_spec.SetField(workflowtemplate.FieldEdgePatterns, field.TypeJSON, value)
		_node.EdgePatterns = value
	}
	if value, ok := _c.mutation.MinBudget(); ok {
		_spec.SetField(workflowtemplate.FieldMinBudget, field.TypeInt, value)
		_node.MinBudget = value
	}
	if value, ok := _c.mutation.UsageCount(); ok {
		_spec.SetField(workflowtemplate.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowtemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowtemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WorkflowTemplateCreateBulk is the builder for creating many WorkflowTemplate entities in bulk.
type WorkflowTemplateCreateBulk struct {
	config
	err      error
	builders []*WorkflowTemplateCreate
}

// Save creates the WorkflowTemplate entities in the database.
func (_c *WorkflowTemplateCreateBulk) Save(ctx context.Context) ([]*WorkflowTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowTemplateMutation)
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
func (_c *WorkflowTemplateCreateBulk) SaveX(ctx context.Context) []*WorkflowTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
