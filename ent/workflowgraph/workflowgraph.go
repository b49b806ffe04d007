// Code generated by ent, DO NOT EDIT.

package workflowgraph

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflowgraph type in the database.
	Label = "workflow_graph"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTemplateID holds the string denoting the template_id field in the database.
	FieldTemplateID = "template_id"
	// FieldRootAgentID holds the string denoting the root_agent_id field in the database.
	FieldRootAgentID = "root_agent_id"
	// FieldTask holds the string denoting the task field in the database.
	FieldTask = "task"
	// FieldTotalBudget holds the string denoting the total_budget field in the database.
	FieldTotalBudget = "total_budget"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldValidationStatus holds the string denoting the validation_status field in the database.
	FieldValidationStatus = "validation_status"
	// FieldValidationErrors holds the string denoting the validation_errors field in the database.
	FieldValidationErrors = "validation_errors"
	// FieldTerminationReason holds the string denoting the termination_reason field in the database.
	FieldTerminationReason = "termination_reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeNodes holds the string denoting the nodes edge name in mutations.
	EdgeNodes = "nodes"
	// Table holds the table name of the workflowgraph in the database.
	Table = "workflow_graphs"
	// NodesTable is the table that holds the nodes relation/edge.
	NodesTable = "workflow_nodes"
	// NodesInverseTable is the table name for the WorkflowNode entity.
	// It exists in this package in order to avoid circular dependency with the "workflownode" package.
	NodesInverseTable = "workflow_nodes"
	// NodesColumn is the table column denoting the nodes relation/edge.
	NodesColumn = "workflow_graph_id"
)

// Columns holds all SQL columns for workflowgraph fields.
var Columns = []string{
	FieldID,
	FieldTemplateID,
	FieldRootAgentID,
	FieldTask,
	FieldTotalBudget,
	FieldStatus,
	FieldValidationStatus,
	FieldValidationErrors,
	FieldTerminationReason,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTotalBudget holds the default value on creation for the "total_budget" field.
	DefaultTotalBudget int
	// TotalBudgetValidator is a validator for the "total_budget" field. It is called by the builders before save.
	TotalBudgetValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusActive     Status = "active"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusTerminated Status = "terminated"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusActive, StatusPaused, StatusCompleted, StatusFailed, StatusTerminated:
		return nil
	default:
		return fmt.Errorf("workflowgraph: invalid enum value for status field: %q", s)
	}
}

// ValidationStatus defines the type for the "validation_status" enum field.
type ValidationStatus string

// ValidationStatusPending is the default value of the ValidationStatus enum.
const DefaultValidationStatus = ValidationStatusPending

// ValidationStatus values.
const (
	ValidationStatusPending   ValidationStatus = "pending"
	ValidationStatusValidated ValidationStatus = "validated"
	ValidationStatusInvalid   ValidationStatus = "invalid"
)

func (vs ValidationStatus) String() string {
	return string(vs)
}

// ValidationStatusValidator is a validator for the "validation_status" field enum values. It is called by the builders before save.
func ValidationStatusValidator(vs ValidationStatus) error {
	switch vs {
	case ValidationStatusPending, ValidationStatusValidated, ValidationStatusInvalid:
		return nil
	default:
		return fmt.Errorf("workflowgraph: invalid enum value for validation_status field: %q", vs)
	}
}

// OrderOption defines the ordering options for the WorkflowGraph queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTemplateID orders the results by the template_id field.
func ByTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateID, opts...).ToFunc()
}

// ByRootAgentID orders the results by the root_agent_id field.
func ByRootAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRootAgentID, opts...).ToFunc()
}

// ByTask orders the results by the task field.
func ByTask(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTask, opts...).ToFunc()
}

// ByTotalBudget orders the results by the total_budget field.
func ByTotalBudget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalBudget, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByValidationStatus orders the results by the validation_status field.
func ByValidationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationStatus, opts...).ToFunc()
}

// ByTerminationReason orders the results by the termination_reason field.
func ByTerminationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminationReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByNodesCount orders the results by nodes count.
func ByNodesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNodesStep(), opts...)
	}
}

// ByNodes orders the results by nodes terms.
func ByNodes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNodesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newNodesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NodesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NodesTable, NodesColumn),
	)
}
