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
	"github.com/maestro-orch/maestro/ent/workflownode"
)

// WorkflowNode is the model entity for the WorkflowNode schema.
type WorkflowNode struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowGraphID holds the value of the "workflow_graph_id" field.
	WorkflowGraphID string `json:"workflow_graph_id,omitempty"`
	// Template node_id; dependency lists refer to these keys
	NodeKey string `json:"node_key,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// TaskDescription holds the value of the "task_description" field.
	TaskDescription string `json:"task_description,omitempty"`
	// BudgetAllocation holds the value of the "budget_allocation" field.
	BudgetAllocation int `json:"budget_allocation,omitempty"`
	// Dependencies holds the value of the "dependencies" field.
	Dependencies []string `json:"dependencies,omitempty"`
	// ExecutionStatus holds the value of the "execution_status" field.
	ExecutionStatus workflownode.ExecutionStatus `json:"execution_status,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID *string `json:"agent_id,omitempty"`
	// Result holds the value of the "result" field.
	Result *string `json:"result,omitempty"`
	// Display order from the template
	Position int `json:"position,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowNodeQuery when eager-loading is set.
	Edges        WorkflowNodeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowNodeEdges holds the relations/edges for other nodes in the graph.
type WorkflowNodeEdges struct {
	// Graph holds the value of the graph edge.
	Graph *WorkflowGraph `json:"graph,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GraphOrErr returns the Graph value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowNodeEdges) GraphOrErr() (*WorkflowGraph, error) {
	if e.Graph != nil {
		return e.Graph, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowgraph.Label}
	}
	return nil, &NotLoadedError{edge: "graph"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowNode) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflownode.FieldDependencies:
			values[i] = new([]byte)
		case workflownode.FieldBudgetAllocation, workflownode.FieldPosition:
			values[i] = new(sql.NullInt64)
		case workflownode.FieldID, workflownode.FieldWorkflowGraphID, workflownode.FieldNodeKey, workflownode.FieldRole, workflownode.FieldTaskDescription, workflownode.FieldExecutionStatus, workflownode.FieldAgentID, workflownode.FieldResult, workflownode.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case workflownode.FieldCreatedAt, workflownode.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowNode fields.
func (_m *WorkflowNode) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflownode.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflownode.FieldWorkflowGraphID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_graph_id", values[i])
			} else if value.Valid {
				_m.WorkflowGraphID = value.String
			}
		case workflownode.FieldNodeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_key", values[i])
			} else if value.Valid {
				_m.NodeKey = value.String
			}
		case workflownode.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case workflownode.FieldTaskDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_description", values[i])
			} else if value.Valid {
				_m.TaskDescription = value.String
			}
		case workflownode.FieldBudgetAllocation:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field budget_allocation", values[i])
			} else if value.Valid {
				_m.BudgetAllocation = int(value.Int64)
			}
		case workflownode.FieldDependencies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dependencies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dependencies); err != nil {
					return fmt.Errorf("unmarshal field dependencies: %w", err)
				}
			}
		case workflownode.FieldExecutionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_status", values[i])
			} else if value.Valid {
				_m.ExecutionStatus = workflownode.ExecutionStatus(value.String)
			}
		case workflownode.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(string)
				*_m.AgentID = value.String
			}
		case workflownode.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = new(string)
				*_m.Result = value.String
			}
		case workflownode.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case workflownode.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case workflownode.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflownode.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowNode.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowNode) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGraph queries the "graph" edge of the WorkflowNode entity.
func (_m *WorkflowNode) QueryGraph() *WorkflowGraphQuery {
	return NewWorkflowNodeClient(_m.config).QueryGraph(_m)
}

// Update returns a builder for updating this WorkflowNode.
// Note that you need to call WorkflowNode.Unwrap() before calling this method if this WorkflowNode
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowNode) Update() *WorkflowNodeUpdateOne {
	return NewWorkflowNodeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowNode entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowNode) Unwrap() *WorkflowNode {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowNode is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowNode) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowNode(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_graph_id=")
	builder.WriteString(_m.WorkflowGraphID)
	builder.WriteString(", ")
	builder.WriteString("node_key=")
	builder.WriteString(_m.NodeKey)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("task_description=")
	builder.WriteString(_m.TaskDescription)
	builder.WriteString(", ")
	builder.WriteString("budget_allocation=")
	builder.WriteString(fmt.Sprintf("%v", _m.BudgetAllocation))
	builder.WriteString(", ")
	builder.WriteString("dependencies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dependencies))
	builder.WriteString(", ")
	builder.WriteString("execution_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionStatus))
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Result; v != nil {
		builder.WriteString("result=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
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

// WorkflowNodes is a parsable slice of WorkflowNode.
type WorkflowNodes []*WorkflowNode
