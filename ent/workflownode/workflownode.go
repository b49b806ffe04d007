// Code generated by ent, DO NOT EDIT.

package workflownode

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflownode type in the database.
	Label = "workflow_node"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWorkflowGraphID holds the string denoting the workflow_graph_id field in the database.
	FieldWorkflowGraphID = "workflow_graph_id"
	// FieldNodeKey holds the string denoting the node_key field in the database.
	FieldNodeKey = "node_key"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldTaskDescription holds the string denoting the task_description field in the database.
	FieldTaskDescription = "task_description"
	// FieldBudgetAllocation holds the string denoting the budget_allocation field in the database.
	FieldBudgetAllocation = "budget_allocation"
	// FieldDependencies holds the string denoting the dependencies field in the database.
	FieldDependencies = "dependencies"
	// FieldExecutionStatus holds the string denoting the execution_status field in the database.
	FieldExecutionStatus = "execution_status"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeGraph holds the string denoting the graph edge name in mutations.
	EdgeGraph = "graph"
	// Table holds the table name of the workflownode in the database.
	Table = "workflow_nodes"
	// GraphTable is the table that holds the graph relation/edge.
	GraphTable = "workflow_nodes"
	// GraphInverseTable is the table name for the WorkflowGraph entity.
	// It exists in this package in order to avoid circular dependency with the "workflowgraph" package.
	GraphInverseTable = "workflow_graphs"
	// GraphColumn is the table column denoting the graph relation/edge.
	GraphColumn = "workflow_graph_id"
)

// Columns holds all SQL columns for workflownode fields.
var Columns = []string{
	FieldID,
	FieldWorkflowGraphID,
	FieldNodeKey,
	FieldRole,
	FieldTaskDescription,
	FieldBudgetAllocation,
	FieldDependencies,
	FieldExecutionStatus,
	FieldAgentID,
	FieldResult,
	FieldPosition,
	FieldErrorMessage,
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
	// BudgetAllocationValidator is a validator for the "budget_allocation" field. It is called by the builders before save.
	BudgetAllocationValidator func(int) error
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ExecutionStatus defines the type for the "execution_status" enum field.
type ExecutionStatus string

// ExecutionStatusPending is the default value of the ExecutionStatus enum.
const DefaultExecutionStatus = ExecutionStatusPending

// ExecutionStatus values.
const (
	ExecutionStatusPending   ExecutionStatus = "pending"
	ExecutionStatusReady     ExecutionStatus = "ready"
	ExecutionStatusSpawning  ExecutionStatus = "spawning"
	ExecutionStatusExecuting ExecutionStatus = "executing"
	ExecutionStatusCompleted ExecutionStatus = "completed"
	ExecutionStatusFailed    ExecutionStatus = "failed"
	ExecutionStatusSkipped   ExecutionStatus = "skipped"
)

func (es ExecutionStatus) String() string {
	return string(es)
}

// ExecutionStatusValidator is a validator for the "execution_status" field enum values. It is called by the builders before save.
func ExecutionStatusValidator(es ExecutionStatus) error {
	switch es {
	case ExecutionStatusPending, ExecutionStatusReady, ExecutionStatusSpawning, ExecutionStatusExecuting, ExecutionStatusCompleted, ExecutionStatusFailed, ExecutionStatusSkipped:
		return nil
	default:
		return fmt.Errorf("workflownode: invalid enum value for execution_status field: %q", es)
	}
}

// OrderOption defines the ordering options for the WorkflowNode queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowGraphID orders the results by the workflow_graph_id field.
func ByWorkflowGraphID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowGraphID, opts...).ToFunc()
}

// ByNodeKey orders the results by the node_key field.
func ByNodeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeKey, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByTaskDescription orders the results by the task_description field.
func ByTaskDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskDescription, opts...).ToFunc()
}

// ByBudgetAllocation orders the results by the budget_allocation field.
func ByBudgetAllocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudgetAllocation, opts...).ToFunc()
}

// ByExecutionStatus orders the results by the execution_status field.
func ByExecutionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionStatus, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByGraphField orders the results by graph field.
func ByGraphField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGraphStep(), sql.OrderByField(field, opts...))
	}
}
func newGraphStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GraphInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GraphTable, GraphColumn),
	)
}
