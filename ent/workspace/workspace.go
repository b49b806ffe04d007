// Code generated by ent, DO NOT EDIT.

package workspace

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workspace type in the database.
	Label = "workspace"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldPath holds the string denoting the path field in the database.
	FieldPath = "path"
	// FieldBranchName holds the string denoting the branch_name field in the database.
	FieldBranchName = "branch_name"
	// FieldBaseCommit holds the string denoting the base_commit field in the database.
	FieldBaseCommit = "base_commit"
	// FieldIsolationStatus holds the string denoting the isolation_status field in the database.
	FieldIsolationStatus = "isolation_status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// Table holds the table name of the workspace in the database.
	Table = "workspaces"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "workspaces"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
)

// Columns holds all SQL columns for workspace fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldPath,
	FieldBranchName,
	FieldBaseCommit,
	FieldIsolationStatus,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// IsolationStatus defines the type for the "isolation_status" enum field.
type IsolationStatus string

// IsolationStatusActive is the default value of the IsolationStatus enum.
const DefaultIsolationStatus = IsolationStatusActive

// IsolationStatus values.
const (
	IsolationStatusActive    IsolationStatus = "active"
	IsolationStatusMerged    IsolationStatus = "merged"
	IsolationStatusAbandoned IsolationStatus = "abandoned"
	IsolationStatusCleanedUp IsolationStatus = "cleaned_up"
)

func (is IsolationStatus) String() string {
	return string(is)
}

// IsolationStatusValidator is a validator for the "isolation_status" field enum values. It is called by the builders before save.
func IsolationStatusValidator(is IsolationStatus) error {
	switch is {
	case IsolationStatusActive, IsolationStatusMerged, IsolationStatusAbandoned, IsolationStatusCleanedUp:
		return nil
	default:
		return fmt.Errorf("workspace: invalid enum value for isolation_status field: %q", is)
	}
}

// OrderOption defines the ordering options for the Workspace queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByPath orders the results by the path field.
func ByPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPath, opts...).ToFunc()
}

// ByBranchName orders the results by the branch_name field.
func ByBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchName, opts...).ToFunc()
}

// ByBaseCommit orders the results by the base_commit field.
func ByBaseCommit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseCommit, opts...).ToFunc()
}

// ByIsolationStatus orders the results by the isolation_status field.
func ByIsolationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsolationStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, AgentTable, AgentColumn),
	)
}
