// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-orch/maestro/ent/workflowtemplate"
	"github.com/maestro-orch/maestro/pkg/models"
)

// WorkflowTemplate is the model entity for the WorkflowTemplate schema.
type WorkflowTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// NodeTemplates holds the value of the "node_templates" field.
	NodeTemplates []models.NodeTemplate `json:"node_templates,omitempty"`
	// EdgePatterns holds the value of the "edge_patterns" field.
	EdgePatterns []models.EdgePattern `json:"edge_patterns,omitempty"`
	// MinBudget holds the value of the "min_budget" field.
	MinBudget int `json:"min_budget,omitempty"`
	// UsageCount holds the value of the "usage_count" field.
	UsageCount int `json:"usage_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowtemplate.FieldNodeTemplates, workflowtemplate.FieldEdgePatterns:
			values[i] = new([]byte)
		case workflowtemplate.FieldMinBudget, workflowtemplate.FieldUsageCount:
			values[i] = new(sql.NullInt64)
		case workflowtemplate.FieldID, workflowtemplate.FieldName:
			values[i] = new(sql.NullString)
		case workflowtemplate.FieldCreatedAt, workflowtemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowTemplate fields.
func (_m *WorkflowTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowtemplate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflowtemplate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case workflowtemplate.FieldNodeTemplates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field node_templates", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NodeTemplates); err != nil {
					return fmt.Errorf("unmarshal field node_templates: %w", err)
				}
			}
		case workflowtemplate.FieldEdgePatterns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field edge_patterns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EdgePatterns); err != nil {
					return fmt.Errorf("unmarshal field edge_patterns: %w", err)
				}
			}
		case workflowtemplate.FieldMinBudget:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_budget", values[i])
			} else if value.Valid {
				_m.MinBudget = int(value.Int64)
			}
		case workflowtemplate.FieldUsageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field usage_count", values[i])
			} else if value.Valid {
				_m.UsageCount = int(value.Int64)
			}
		case workflowtemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflowtemplate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WorkflowTemplate.
// Note that you need to call WorkflowTemplate.Unwrap() before calling this method if this WorkflowTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowTemplate) Update() *WorkflowTemplateUpdateOne {
	return NewWorkflowTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowTemplate) Unwrap() *WorkflowTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("node_templates=")
	builder.WriteString(fmt.Sprintf("%v", _m.NodeTemplates))
	builder.WriteString(", ")
	builder.WriteString("edge_patterns=")
	builder.WriteString(fmt.Sprintf("%v", _m.EdgePatterns))
	builder.WriteString(", ")
	builder.WriteString("min_budget=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinBudget))
	builder.WriteString(", ")
	builder.WriteString("usage_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsageCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowTemplates is a parsable slice of WorkflowTemplate.
type WorkflowTemplates []*WorkflowTemplate
