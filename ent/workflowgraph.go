// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-orch/maestro/ent/workflowgraph"
)

// WorkflowGraph is the model entity for the WorkflowGraph schema.
type WorkflowGraph struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TemplateID holds the value of the "template_id" field.
	TemplateID *string `json:"template_id,omitempty"`
	// Workflow agent whose budget backs every node
	RootAgentID *string `json:"root_agent_id,omitempty"`
	// Caller-supplied task substituted into node templates
	Task string `json:"task,omitempty"`
	// TotalBudget holds the value of the "total_budget" field.
	TotalBudget int `json:"total_budget,omitempty"`
	// Status holds the value of the "status" field.
	Status workflowgraph.Status `json:"status,omitempty"`
	// ValidationStatus holds the value of the "validation_status" field.
	ValidationStatus workflowgraph.ValidationStatus `json:"validation_status,omitempty"`
	// ValidationErrors holds the value of the "validation_errors" field.
	ValidationErrors []string `json:"validation_errors,omitempty"`
	// TerminationReason holds the value of the "termination_reason" field.
	TerminationReason *string `json:"termination_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowGraphQuery when eager-loading is set.
	Edges        WorkflowGraphEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowGraphEdges holds the relations/edges for other nodes in the graph.
type WorkflowGraphEdges struct {
	// Nodes holds the value of the nodes edge.
	Nodes []*WorkflowNode `json:"nodes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// NodesOrErr returns the Nodes value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowGraphEdges) NodesOrErr() ([]*WorkflowNode, error) {
	if e.loadedTypes[0] {
		return e.Nodes, nil
	}
	return nil, &NotLoadedError{edge: "nodes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowGraph) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowgraph.FieldValidationErrors:
			values[i] = new([]byte)
		case workflowgraph.FieldTotalBudget:
			values[i] = new(sql.NullInt64)
		case workflowgraph.FieldID, workflowgraph.FieldTemplateID, workflowgraph.FieldRootAgentID, workflowgraph.FieldTask, workflowgraph.FieldStatus, workflowgraph.FieldValidationStatus, workflowgraph.FieldTerminationReason:
			values[i] = new(sql.NullString)
		case workflowgraph.FieldCreatedAt, workflowgraph.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowGraph fields.
func (_m *WorkflowGraph) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowgraph.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflowgraph.FieldTemplateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value.Valid {
				_m.TemplateID = new(string)
				*_m.TemplateID = value.String
			}
		case workflowgraph.FieldRootAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field root_agent_id", values[i])
			} else if value.Valid {
				_m.RootAgentID = new(string)
				*_m.RootAgentID = value.String
			}
		case workflowgraph.FieldTask:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task", values[i])
			} else if value.Valid {
				_m.Task = value.String
			}
		case workflowgraph.FieldTotalBudget:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_budget", values[i])
			} else if value.Valid {
				_m.TotalBudget = int(value.Int64)
			}
		case workflowgraph.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workflowgraph.Status(value.String)
			}
		case workflowgraph.FieldValidationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_status", values[i])
			} else if value.Valid {
				_m.ValidationStatus = workflowgraph.ValidationStatus(value.String)
			}
		case workflowgraph.FieldValidationErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidationErrors); err != nil {
					return fmt.Errorf("unmarshal field validation_errors: %w", err)
				}
			}
		case workflowgraph.FieldTerminationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field termination_reason", values[i])
			} else if value.Valid {
				_m.TerminationReason = new(string)
				*_m.TerminationReason = value.String
			}
		case workflowgraph.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflowgraph.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowGraph.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowGraph) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNodes queries the "nodes" edge of the WorkflowGraph entity.
func (_m *WorkflowGraph) QueryNodes() *WorkflowNodeQuery {
	return NewWorkflowGraphClient(_m.config).QueryNodes(_m)
}

// Update returns a builder for updating this WorkflowGraph.
// Note that you need to call WorkflowGraph.Unwrap() before calling this method if this WorkflowGraph
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowGraph) Update() *WorkflowGraphUpdateOne {
	return NewWorkflowGraphClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowGraph entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowGraph) Unwrap() *WorkflowGraph {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowGraph is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowGraph) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowGraph(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.TemplateID; v != nil {
		builder.WriteString("template_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RootAgentID; v != nil {
		builder.WriteString("root_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("task=")
	builder.WriteString(_m.Task)
	builder.WriteString(", ")
	builder.WriteString("total_budget=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalBudget))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("validation_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationStatus))
	builder.WriteString(", ")
	builder.WriteString("validation_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationErrors))
	builder.WriteString(", ")
	if v := _m.TerminationReason; v != nil {
		builder.WriteString("termination_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowGraphs is a parsable slice of WorkflowGraph.
type WorkflowGraphs []*WorkflowGraph
