// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldTaskDescription holds the string denoting the task_description field in the database.
	FieldTaskDescription = "task_description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDepthLevel holds the string denoting the depth_level field in the database.
	FieldDepthLevel = "depth_level"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeBudget holds the string denoting the budget edge name in mutations.
	EdgeBudget = "budget"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// EdgeChildEdges holds the string denoting the child_edges edge name in mutations.
	EdgeChildEdges = "child_edges"
	// EdgeParentEdges holds the string denoting the parent_edges edge name in mutations.
	EdgeParentEdges = "parent_edges"
	// Table holds the table name of the agent in the database.
	Table = "agents"
	// BudgetTable is the table that holds the budget relation/edge.
	BudgetTable = "budgets"
	// BudgetInverseTable is the table name for the Budget entity.
	// It exists in this package in order to avoid circular dependency with the "budget" package.
	BudgetInverseTable = "budgets"
	// BudgetColumn is the table column denoting the budget relation/edge.
	BudgetColumn = "agent_id"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "workspaces"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "agent_id"
	// ChildEdgesTable is the table that holds the child_edges relation/edge.
	ChildEdgesTable = "hierarchies"
	// ChildEdgesInverseTable is the table name for the Hierarchy entity.
	// It exists in this package in order to avoid circular dependency with the "hierarchy" package.
	ChildEdgesInverseTable = "hierarchies"
	// ChildEdgesColumn is the table column denoting the child_edges relation/edge.
	ChildEdgesColumn = "parent_id"
	// ParentEdgesTable is the table that holds the parent_edges relation/edge.
	ParentEdgesTable = "hierarchies"
	// ParentEdgesInverseTable is the table name for the Hierarchy entity.
	// It exists in this package in order to avoid circular dependency with the "hierarchy" package.
	ParentEdgesInverseTable = "hierarchies"
	// ParentEdgesColumn is the table column denoting the parent_edges relation/edge.
	ParentEdgesColumn = "child_id"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldRole,
	FieldTaskDescription,
	FieldStatus,
	FieldDepthLevel,
	FieldParentID,
	FieldResult,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
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
	// DefaultDepthLevel holds the default value on creation for the "depth_level" field.
	DefaultDepthLevel int
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
	StatusExecuting  Status = "executing"
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
	case StatusPending, StatusExecuting, StatusCompleted, StatusFailed, StatusTerminated:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByTaskDescription orders the results by the task_description field.
func ByTaskDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDepthLevel orders the results by the depth_level field.
func ByDepthLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepthLevel, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
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

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByBudgetField orders the results by budget field.
func ByBudgetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBudgetStep(), sql.OrderByField(field, opts...))
	}
}

// ByWorkspaceField orders the results by workspace field.
func ByWorkspaceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkspaceStep(), sql.OrderByField(field, opts...))
	}
}

// ByChildEdgesCount orders the results by child_edges count.
func ByChildEdgesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChildEdgesStep(), opts...)
	}
}

// ByChildEdges orders the results by child_edges terms.
func ByChildEdges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildEdgesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByParentEdgesCount orders the results by parent_edges count.
func ByParentEdgesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newParentEdgesStep(), opts...)
	}
}

// ByParentEdges orders the results by parent_edges terms.
func ByParentEdges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentEdgesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBudgetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BudgetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, BudgetTable, BudgetColumn),
	)
}
func newWorkspaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkspaceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, WorkspaceTable, WorkspaceColumn),
	)
}
func newChildEdgesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChildEdgesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChildEdgesTable, ChildEdgesColumn),
	)
}
func newParentEdgesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParentEdgesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ParentEdgesTable, ParentEdgesColumn),
	)
}
