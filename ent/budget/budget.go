// Code generated by ent, DO NOT EDIT.

package budget

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the budget type in the database.
	Label = "budget"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldAllocated holds the string denoting the allocated field in the database.
	FieldAllocated = "allocated"
	// FieldUsed holds the string denoting the used field in the database.
	FieldUsed = "used"
	// FieldReserved holds the string denoting the reserved field in the database.
	FieldReserved = "reserved"
	// FieldReclaimed holds the string denoting the reclaimed field in the database.
	FieldReclaimed = "reclaimed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// Table holds the table name of the budget in the database.
	Table = "budgets"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "budgets"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
)

// Columns holds all SQL columns for budget fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldAllocated,
	FieldUsed,
	FieldReserved,
	FieldReclaimed,
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
	// AllocatedValidator is a validator for the "allocated" field. It is called by the builders before save.
	AllocatedValidator func(int) error
	// DefaultUsed holds the default value on creation for the "used" field.
	DefaultUsed int
	// UsedValidator is a validator for the "used" field. It is called by the builders before save.
	UsedValidator func(int) error
	// DefaultReserved holds the default value on creation for the "reserved" field.
	DefaultReserved int
	// ReservedValidator is a validator for the "reserved" field. It is called by the builders before save.
	ReservedValidator func(int) error
	// DefaultReclaimed holds the default value on creation for the "reclaimed" field.
	DefaultReclaimed bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Budget queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByAllocated orders the results by the allocated field.
func ByAllocated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllocated, opts...).ToFunc()
}

// ByUsed orders the results by the used field.
func ByUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsed, opts...).ToFunc()
}

// ByReserved orders the results by the reserved field.
func ByReserved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReserved, opts...).ToFunc()
}

// ByReclaimed orders the results by the reclaimed field.
func ByReclaimed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReclaimed, opts...).ToFunc()
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
