// Code generated by ent, DO NOT EDIT.

package workflowgraph

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-orch/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldContainsFold(FieldID, id))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldTemplateID, v))
}

// RootAgentID applies equality check predicate on the "root_agent_id" field. It's identical to RootAgentIDEQ.
func RootAgentID(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldRootAgentID, v))
}

// Task applies equality check predicate on the "task" field. It's identical to TaskEQ.
func Task(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldTask, v))
}

// TotalBudget applies equality check predicate on the "total_budget" field. It's identical to TotalBudgetEQ.
func TotalBudget(v int) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldTotalBudget, v))
}

// TerminationReason applies equality check predicate on the "termination_reason" field. It's identical to TerminationReasonEQ.
func TerminationReason(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldTerminationReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldUpdatedAt, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDContains applies the Contains predicate on the "template_id" field.
func TemplateIDContains(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldContains(FieldTemplateID, v))
}

// TemplateIDHasPrefix applies the HasPrefix predicate on the "template_id" field.
func TemplateIDHasPrefix(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldHasPrefix(FieldTemplateID, v))
}

// TemplateIDHasSuffix applies the HasSuffix predicate on the "template_id" field.
func TemplateIDHasSuffix(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldHasSuffix(FieldTemplateID, v))
}

// TemplateIDIsNil applies the IsNil predicate on the "template_id" field.
func TemplateIDIsNil() predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIsNull(FieldTemplateID))
}

// TemplateIDNotNil applies the NotNil predicate on the "template_id" field.
func TemplateIDNotNil() predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotNull(FieldTemplateID))
}

// TemplateIDEqualFold applies the EqualFold predicate on the "template_id" field.
func TemplateIDEqualFold(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEqualFold(FieldTemplateID, v))
}

// TemplateIDContainsFold applies the ContainsFold predicate on the "template_id" field.
func TemplateIDContainsFold(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldContainsFold(FieldTemplateID, v))
}

// RootAgentIDEQ applies the EQ predicate on the "root_agent_id" field.
func RootAgentIDEQ(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldRootAgentID, v))
}

// RootAgentIDNEQ applies the NEQ predicate on the "root_agent_id" field.
func RootAgentIDNEQ(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNEQ(FieldRootAgentID, v))
}

// RootAgentIDIn applies the In predicate on the "root_agent_id" field.
func RootAgentIDIn(vs ...string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIn(FieldRootAgentID, vs...))
}

// RootAgentIDNotIn applies the NotIn predicate on the "root_agent_id" field.
func RootAgentIDNotIn(vs ...string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotIn(FieldRootAgentID, vs...))
}

// RootAgentIDGT applies the GT predicate on the "root_agent_id" field.
func RootAgentIDGT(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGT(FieldRootAgentID, v))
}

// RootAgentIDGTE applies the GTE predicate on the "root_agent_id" field.
func RootAgentIDGTE(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGTE(FieldRootAgentID, v))
}

// RootAgentIDLT applies the LT predicate on the "root_agent_id" field.
func RootAgentIDLT(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLT(FieldRootAgentID, v))
}

// RootAgentIDLTE applies the LTE predicate on the "root_agent_id" field.
func RootAgentIDLTE(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLTE(FieldRootAgentID, v))
}

// RootAgentIDContains applies the Contains predicate on the "root_agent_id" field.
func RootAgentIDContains(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldContains(FieldRootAgentID, v))
}

// RootAgentIDHasPrefix applies the HasPrefix predicate on the "root_agent_id" field.
func RootAgentIDHasPrefix(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldHasPrefix(FieldRootAgentID, v))
}

// RootAgentIDHasSuffix applies the HasSuffix predicate on the "root_agent_id" field.
func RootAgentIDHasSuffix(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldHasSuffix(FieldRootAgentID, v))
}

// RootAgentIDIsNil applies the IsNil predicate on the "root_agent_id" field.
func RootAgentIDIsNil() predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIsNull(FieldRootAgentID))
}

// RootAgentIDNotNil applies the NotNil predicate on the "root_agent_id" field.
func RootAgentIDNotNil() predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotNull(FieldRootAgentID))
}

// RootAgentIDEqualFold applies the EqualFold predicate on the "root_agent_id" field.
func RootAgentIDEqualFold(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEqualFold(FieldRootAgentID, v))
}

// RootAgentIDContainsFold applies the ContainsFold predicate on the "root_agent_id" field.
func RootAgentIDContainsFold(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldContainsFold(FieldRootAgentID, v))
}

// TaskEQ applies the EQ predicate on the "task" field.
func TaskEQ(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldTask, v))
}

// TaskNEQ applies the NEQ predicate on the "task" field.
func TaskNEQ(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNEQ(FieldTask, v))
}

// TaskIn applies the In predicate on the "task" field.
func TaskIn(vs ...string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIn(FieldTask, vs...))
}

// TaskNotIn applies the NotIn predicate on the "task" field.
func TaskNotIn(vs ...string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotIn(FieldTask, vs...))
}

// TaskGT applies the GT predicate on the "task" field.
func TaskGT(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGT(FieldTask, v))
}

// TaskGTE applies the GTE predicate on the "task" field.
func TaskGTE(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGTE(FieldTask, v))
}

// TaskLT applies the LT predicate on the "task" field.
func TaskLT(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLT(FieldTask, v))
}

// TaskLTE applies the LTE predicate on the "task" field.
func TaskLTE(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLTE(FieldTask, v))
}

// TaskContains applies the Contains predicate on the "task" field.
func TaskContains(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldContains(FieldTask, v))
}

// TaskHasPrefix applies the HasPrefix predicate on the "task" field.
func TaskHasPrefix(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldHasPrefix(FieldTask, v))
}

// TaskHasSuffix applies the HasSuffix predicate on the "task" field.
func TaskHasSuffix(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldHasSuffix(FieldTask, v))
}

// TaskIsNil applies the IsNil predicate on the "task" field.
func TaskIsNil() predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIsNull(FieldTask))
}

// TaskNotNil applies the NotNil predicate on the "task" field.
func TaskNotNil() predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotNull(FieldTask))
}

// TaskEqualFold applies the EqualFold predicate on the "task" field.
func TaskEqualFold(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEqualFold(FieldTask, v))
}

// TaskContainsFold applies the ContainsFold predicate on the "task" field.
func TaskContainsFold(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldContainsFold(FieldTask, v))
}

// TotalBudgetEQ applies the EQ predicate on the "total_budget" field.
func TotalBudgetEQ(v int) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldTotalBudget, v))
}

// TotalBudgetNEQ applies the NEQ predicate on the "total_budget" field.
func TotalBudgetNEQ(v int) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNEQ(FieldTotalBudget, v))
}

// TotalBudgetIn applies the In predicate on the "total_budget" field.
func TotalBudgetIn(vs ...int) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIn(FieldTotalBudget, vs...))
}

// TotalBudgetNotIn applies the NotIn predicate on the "total_budget" field.
func TotalBudgetNotIn(vs ...int) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotIn(FieldTotalBudget, vs...))
}

// TotalBudgetGT applies the GT predicate on the "total_budget" field.
func TotalBudgetGT(v int) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGT(FieldTotalBudget, v))
}

// TotalBudgetGTE applies the GTE predicate on the "total_budget" field.
func TotalBudgetGTE(v int) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGTE(FieldTotalBudget, v))
}

// TotalBudgetLT applies the LT predicate on the "total_budget" field.
func TotalBudgetLT(v int) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLT(FieldTotalBudget, v))
}

// TotalBudgetLTE applies the LTE predicate on the "total_budget" field.
func TotalBudgetLTE(v int) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLTE(FieldTotalBudget, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotIn(FieldStatus, vs...))
}

// ValidationStatusEQ applies the EQ predicate on the "validation_status" field.
func ValidationStatusEQ(v ValidationStatus) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldValidationStatus, v))
}

// ValidationStatusNEQ applies the NEQ predicate on the "validation_status" field.
func ValidationStatusNEQ(v ValidationStatus) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNEQ(FieldValidationStatus, v))
}

// ValidationStatusIn applies the In predicate on the "validation_status" field.
func ValidationStatusIn(vs ...ValidationStatus) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIn(FieldValidationStatus, vs...))
}

// ValidationStatusNotIn applies the NotIn predicate on the "validation_status" field.
func ValidationStatusNotIn(vs ...ValidationStatus) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotIn(FieldValidationStatus, vs...))
}

// ValidationErrorsIsNil applies the IsNil predicate on the "validation_errors" field.
func ValidationErrorsIsNil() predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIsNull(FieldValidationErrors))
}

// ValidationErrorsNotNil applies the NotNil predicate on the "validation_errors" field.
func ValidationErrorsNotNil() predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotNull(FieldValidationErrors))
}

// TerminationReasonEQ applies the EQ predicate on the "termination_reason" field.
func TerminationReasonEQ(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldTerminationReason, v))
}

// TerminationReasonNEQ applies the NEQ predicate on the "termination_reason" field.
func TerminationReasonNEQ(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNEQ(FieldTerminationReason, v))
}

// TerminationReasonIn applies the In predicate on the "termination_reason" field.
func TerminationReasonIn(vs ...string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIn(FieldTerminationReason, vs...))
}

// TerminationReasonNotIn applies the NotIn predicate on the "termination_reason" field.
func TerminationReasonNotIn(vs ...string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotIn(FieldTerminationReason, vs...))
}

// TerminationReasonGT applies the GT predicate on the "termination_reason" field.
func TerminationReasonGT(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGT(FieldTerminationReason, v))
}

// TerminationReasonGTE applies the GTE predicate on the "termination_reason" field.
func TerminationReasonGTE(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGTE(FieldTerminationReason, v))
}

// TerminationReasonLT applies the LT predicate on the "termination_reason" field.
func TerminationReasonLT(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLT(FieldTerminationReason, v))
}

// TerminationReasonLTE applies the LTE predicate on the "termination_reason" field.
func TerminationReasonLTE(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLTE(FieldTerminationReason, v))
}

// TerminationReasonContains applies the Contains predicate on the "termination_reason" field.
func TerminationReasonContains(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldContains(FieldTerminationReason, v))
}

// TerminationReasonHasPrefix applies the HasPrefix predicate on the "termination_reason" field.
func TerminationReasonHasPrefix(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldHasPrefix(FieldTerminationReason, v))
}

// TerminationReasonHasSuffix applies the HasSuffix predicate on the "termination_reason" field.
func TerminationReasonHasSuffix(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldHasSuffix(FieldTerminationReason, v))
}

// TerminationReasonIsNil applies the IsNil predicate on the "termination_reason" field.
func TerminationReasonIsNil() predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIsNull(FieldTerminationReason))
}

// TerminationReasonNotNil applies the NotNil predicate on the "termination_reason" field.
func TerminationReasonNotNil() predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotNull(FieldTerminationReason))
}

// TerminationReasonEqualFold applies the EqualFold predicate on the "termination_reason" field.
func TerminationReasonEqualFold(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEqualFold(FieldTerminationReason, v))
}

// TerminationReasonContainsFold applies the ContainsFold predicate on the "termination_reason" field.
func TerminationReasonContainsFold(v string) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldContainsFold(FieldTerminationReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasNodes applies the HasEdge predicate on the "nodes" edge.
func HasNodes() predicate.WorkflowGraph {
	return predicate.WorkflowGraph(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NodesTable, NodesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNodesWith applies the HasEdge predicate on the "nodes" edge with a given conditions (other predicates).
func HasNodesWith(preds ...predicate.WorkflowNode) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(func(s *sql.Selector) {
		step := newNodesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowGraph) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowGraph) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowGraph) predicate.WorkflowGraph {
	return predicate.WorkflowGraph(sql.NotPredicates(p))
}
