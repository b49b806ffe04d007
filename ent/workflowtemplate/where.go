// Code generated by ent, DO NOT EDIT.

package workflowtemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/maestro-orch/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldEQ(FieldName, v))
}

// MinBudget applies equality check predicate on the "min_budget" field. It's identical to MinBudgetEQ.
func MinBudget(v int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldEQ(FieldMinBudget, v))
}

// UsageCount applies equality check predicate on the "usage_count" field. It's identical to UsageCountEQ.
func UsageCount(v int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldEQ(FieldUsageCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldContainsFold(FieldName, v))
}

// EdgePatternsIsNil applies the IsNil predicate on the "edge_patterns" field.
func EdgePatternsIsNil() predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldIsNull(FieldEdgePatterns))
}

// EdgePatternsNotNil applies the NotNil predicate on the "edge_patterns" field.
func EdgePatternsNotNil() predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldNotNull(FieldEdgePatterns))
}

// MinBudgetEQ applies the EQ predicate on the "min_budget" field.
func MinBudgetEQ(v int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldEQ(FieldMinBudget, v))
}

// MinBudgetNEQ applies the NEQ predicate on the "min_budget" field.
func MinBudgetNEQ(v int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldNEQ(FieldMinBudget, v))
}

// MinBudgetIn applies the In predicate on the "min_budget" field.
func MinBudgetIn(vs ...int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldIn(FieldMinBudget, vs...))
}

// MinBudgetNotIn applies the NotIn predicate on the "min_budget" field.
func MinBudgetNotIn(vs ...int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldNotIn(FieldMinBudget, vs...))
}

// MinBudgetGT applies the GT predicate on the "min_budget" field.
func MinBudgetGT(v int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldGT(FieldMinBudget, v))
}

// MinBudgetGTE applies the GTE predicate on the "min_budget" field.
func MinBudgetGTE(v int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldGTE(FieldMinBudget, v))
}

// MinBudgetLT applies the LT predicate on the "min_budget" field.
func MinBudgetLT(v int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldLT(FieldMinBudget, v))
}

// MinBudgetLTE applies the LTE predicate on the "min_budget" field.
func MinBudgetLTE(v int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldLTE(FieldMinBudget, v))
}

// UsageCountEQ applies the EQ predicate on the "usage_count" field.
func UsageCountEQ(v int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldEQ(FieldUsageCount, v))
}

// UsageCountNEQ applies the NEQ predicate on the "usage_count" field.
func UsageCountNEQ(v int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldNEQ(FieldUsageCount, v))
}

// UsageCountIn applies the In predicate on the "usage_count" field.
func UsageCountIn(vs ...int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldIn(FieldUsageCount, vs...))
}

// UsageCountNotIn applies the NotIn predicate on the "usage_count" field.
func UsageCountNotIn(vs ...int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldNotIn(FieldUsageCount, vs...))
}

// UsageCountGT applies the GT predicate on the "usage_count" field.
func UsageCountGT(v int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldGT(FieldUsageCount, v))
}

// UsageCountGTE applies the GTE predicate on the "usage_count" field.
func UsageCountGTE(v int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldGTE(FieldUsageCount, v))
}

// UsageCountLT applies the LT predicate on the "usage_count" field.
func UsageCountLT(v int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldLT(FieldUsageCount, v))
}

// UsageCountLTE applies the LTE predicate on the "usage_count" field.
func UsageCountLTE(v int) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldLTE(FieldUsageCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowTemplate) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowTemplate) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowTemplate) predicate.WorkflowTemplate {
	return predicate.WorkflowTemplate(sql.NotPredicates(p))
}
