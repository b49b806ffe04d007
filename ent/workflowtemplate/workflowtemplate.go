// Code generated by ent, DO NOT EDIT.

package workflowtemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the workflowtemplate type in the database.
	Label = "workflow_template"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldNodeTemplates holds the string denoting the node_templates field in the database.
	FieldNodeTemplates = "node_templates"
	// FieldEdgePatterns holds the string denoting the edge_patterns field in the database.
	FieldEdgePatterns = "edge_patterns"
	// FieldMinBudget holds the string denoting the min_budget field in the database.
	FieldMinBudget = "min_budget"
	// FieldUsageCount holds the string denoting the usage_count field in the database.
	FieldUsageCount = "usage_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the workflowtemplate in the database.
	Table = "workflow_templates"
)

// Columns holds all SQL columns for workflowtemplate fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldNodeTemplates,
	FieldEdgePatterns,
	FieldMinBudget,
	FieldUsageCount,
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
	// DefaultMinBudget holds the default value on creation for the "min_budget" field.
	DefaultMinBudget int
	// MinBudgetValidator is a validator for the "min_budget" field. It is called by the builders before save.
	MinBudgetValidator func(int) error
	// DefaultUsageCount holds the default value on creation for the "usage_count" field.
	DefaultUsageCount int
	// UsageCountValidator is a validator for the "usage_count" field. It is called by the builders before save.
	UsageCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the WorkflowTemplate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByMinBudget orders the results by the min_budget field.
func ByMinBudget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinBudget, opts...).ToFunc()
}

// ByUsageCount orders the results by the usage_count field.
func ByUsageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsageCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
