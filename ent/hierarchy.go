// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/hierarchy"
)

// Hierarchy is the model entity for the Hierarchy schema.
type Hierarchy struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ParentID holds the value of the "parent_id" field.
	ParentID string `json:"parent_id,omitempty"`
	// ChildID holds the value of the "child_id" field.
	ChildID string `json:"child_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HierarchyQuery when eager-loading is set.
	Edges        HierarchyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HierarchyEdges holds the relations/edges for other nodes in the graph.
type HierarchyEdges struct {
	// Parent holds the value of the parent edge.
	Parent *Agent `json:"parent,omitempty"`
	// Child holds the value of the child edge.
	Child *Agent `json:"child,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HierarchyEdges) ParentOrErr() (*Agent, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildOrErr returns the Child value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HierarchyEdges) ChildOrErr() (*Agent, error) {
	if e.Child != nil {
		return e.Child, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "child"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Hierarchy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hierarchy.FieldID:
			values[i] = new(sql.NullInt64)
		case hierarchy.FieldParentID, hierarchy.FieldChildID:
			values[i] = new(sql.NullString)
		case hierarchy.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Hierarchy fields.
func (_m *Hierarchy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hierarchy.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case hierarchy.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = value.String
			}
		case hierarchy.FieldChildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value.Valid {
				_m.ChildID = value.String
			}
		case hierarchy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Hierarchy.
// This includes values selected through modifiers, order, etc.
func (_m *Hierarchy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParent queries the "parent" edge of the Hierarchy entity.
func (_m *Hierarchy) QueryParent() *AgentQuery {
	return NewHierarchyClient(_m.config).QueryParent(_m)
}

// QueryChild queries the "child" edge of the Hierarchy entity.
func (_m *Hierarchy) QueryChild() *AgentQuery {
	return NewHierarchyClient(_m.config).QueryChild(_m)
}

// Update returns a builder for updating this Hierarchy.
// Note that you need to call Hierarchy.Unwrap() before calling this method if this Hierarchy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Hierarchy) Update() *HierarchyUpdateOne {
	return NewHierarchyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Hierarchy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Hierarchy) Unwrap() *Hierarchy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Hierarchy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Hierarchy) String() string {
	var builder strings.Builder
	builder.WriteString("Hierarchy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("parent_id=")
	builder.WriteString(_m.ParentID)
	builder.WriteString(", ")
	builder.WriteString("child_id=")
	builder.WriteString(_m.ChildID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Hierarchies is a parsable slice of Hierarchy.
type Hierarchies []*Hierarchy
