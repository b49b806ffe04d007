// Code generated by ent, DO NOT EDIT.

package workflownode

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-orch/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContainsFold(FieldID, id))
}

// WorkflowGraphID applies equality check predicate on the "workflow_graph_id" field. It's identical to WorkflowGraphIDEQ.
func WorkflowGraphID(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldWorkflowGraphID, v))
}

// NodeKey applies equality check predicate on the "node_key" field. It's identical to NodeKeyEQ.
func NodeKey(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldNodeKey, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldRole, v))
}

// TaskDescription applies equality check predicate on the "task_description" field. It's identical to TaskDescriptionEQ.
func TaskDescription(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldTaskDescription, v))
}

// BudgetAllocation applies equality check predicate on the "budget_allocation" field. It's identical to BudgetAllocationEQ.
func BudgetAllocation(v int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldBudgetAllocation, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldAgentID, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldResult, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldPosition, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkflowGraphIDEQ applies the EQ predicate on the "workflow_graph_id" field.
func WorkflowGraphIDEQ(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldWorkflowGraphID, v))
}

// WorkflowGraphIDNEQ applies the NEQ predicate on the "workflow_graph_id" field.
func WorkflowGraphIDNEQ(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNEQ(FieldWorkflowGraphID, v))
}

// WorkflowGraphIDIn applies the In predicate on the "workflow_graph_id" field.
func WorkflowGraphIDIn(vs ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIn(FieldWorkflowGraphID, vs...))
}

// WorkflowGraphIDNotIn applies the NotIn predicate on the "workflow_graph_id" field.
func WorkflowGraphIDNotIn(vs ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotIn(FieldWorkflowGraphID, vs...))
}

// WorkflowGraphIDGT applies the GT predicate on the "workflow_graph_id" field.
func WorkflowGraphIDGT(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGT(FieldWorkflowGraphID, v))
}

// WorkflowGraphIDGTE applies the GTE predicate on the "workflow_graph_id" field.
func WorkflowGraphIDGTE(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGTE(FieldWorkflowGraphID, v))
}

// WorkflowGraphIDLT applies the LT predicate on the "workflow_graph_id" field.
func WorkflowGraphIDLT(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLT(FieldWorkflowGraphID, v))
}

// WorkflowGraphIDLTE applies the LTE predicate on the "workflow_graph_id" field.
func WorkflowGraphIDLTE(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLTE(FieldWorkflowGraphID, v))
}

// WorkflowGraphIDContains applies the Contains predicate on the "workflow_graph_id" field.
func WorkflowGraphIDContains(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContains(FieldWorkflowGraphID, v))
}

// WorkflowGraphIDHasPrefix applies the HasPrefix predicate on the "workflow_graph_id" field.
func WorkflowGraphIDHasPrefix(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldHasPrefix(FieldWorkflowGraphID, v))
}

// WorkflowGraphIDHasSuffix applies the HasSuffix predicate on the "workflow_graph_id" field.
func WorkflowGraphIDHasSuffix(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldHasSuffix(FieldWorkflowGraphID, v))
}

// WorkflowGraphIDEqualFold applies the EqualFold predicate on the "workflow_graph_id" field.
func WorkflowGraphIDEqualFold(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEqualFold(FieldWorkflowGraphID, v))
}

// WorkflowGraphIDContainsFold applies the ContainsFold predicate on the "workflow_graph_id" field.
func WorkflowGraphIDContainsFold(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContainsFold(FieldWorkflowGraphID, v))
}

// NodeKeyEQ applies the EQ predicate on the "node_key" field.
func NodeKeyEQ(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldNodeKey, v))
}

// NodeKeyNEQ applies the NEQ predicate on the "node_key" field.
func NodeKeyNEQ(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNEQ(FieldNodeKey, v))
}

// NodeKeyIn applies the In predicate on the "node_key" field.
func NodeKeyIn(vs ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIn(FieldNodeKey, vs...))
}

// NodeKeyNotIn applies the NotIn predicate on the "node_key" field.
func NodeKeyNotIn(vs ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotIn(FieldNodeKey, vs...))
}

// NodeKeyGT applies the GT predicate on the "node_key" field.
func NodeKeyGT(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGT(FieldNodeKey, v))
}

// NodeKeyGTE applies the GTE predicate on the "node_key" field.
func NodeKeyGTE(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGTE(FieldNodeKey, v))
}

// NodeKeyLT applies the LT predicate on the "node_key" field.
func NodeKeyLT(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLT(FieldNodeKey, v))
}

// NodeKeyLTE applies the LTE predicate on the "node_key" field.
func NodeKeyLTE(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLTE(FieldNodeKey, v))
}

// NodeKeyContains applies the Contains predicate on the "node_key" field.
func NodeKeyContains(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContains(FieldNodeKey, v))
}

// NodeKeyHasPrefix applies the HasPrefix predicate on the "node_key" field.
func NodeKeyHasPrefix(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldHasPrefix(FieldNodeKey, v))
}

// NodeKeyHasSuffix applies the HasSuffix predicate on the "node_key" field.
func NodeKeyHasSuffix(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldHasSuffix(FieldNodeKey, v))
}

// NodeKeyEqualFold applies the EqualFold predicate on the "node_key" field.
func NodeKeyEqualFold(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEqualFold(FieldNodeKey, v))
}

// NodeKeyContainsFold applies the ContainsFold predicate on the "node_key" field.
func NodeKeyContainsFold(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContainsFold(FieldNodeKey, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContainsFold(FieldRole, v))
}

// TaskDescriptionEQ applies the EQ predicate on the "task_description" field.
func TaskDescriptionEQ(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldTaskDescription, v))
}

// TaskDescriptionNEQ applies the NEQ predicate on the "task_description" field.
func TaskDescriptionNEQ(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNEQ(FieldTaskDescription, v))
}

// TaskDescriptionIn applies the In predicate on the "task_description" field.
func TaskDescriptionIn(vs ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIn(FieldTaskDescription, vs...))
}

// TaskDescriptionNotIn applies the NotIn predicate on the "task_description" field.
func TaskDescriptionNotIn(vs ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotIn(FieldTaskDescription, vs...))
}

// TaskDescriptionGT applies the GT predicate on the "task_description" field.
func TaskDescriptionGT(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGT(FieldTaskDescription, v))
}

// TaskDescriptionGTE applies the GTE predicate on the "task_description" field.
func TaskDescriptionGTE(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGTE(FieldTaskDescription, v))
}

// TaskDescriptionLT applies the LT predicate on the "task_description" field.
func TaskDescriptionLT(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLT(FieldTaskDescription, v))
}

// TaskDescriptionLTE applies the LTE predicate on the "task_description" field.
func TaskDescriptionLTE(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLTE(FieldTaskDescription, v))
}

// TaskDescriptionContains applies the Contains predicate on the "task_description" field.
func TaskDescriptionContains(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContains(FieldTaskDescription, v))
}

// TaskDescriptionHasPrefix applies the HasPrefix predicate on the "task_description" field.
func TaskDescriptionHasPrefix(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldHasPrefix(FieldTaskDescription, v))
}

// TaskDescriptionHasSuffix applies the HasSuffix predicate on the "task_description" field.
func TaskDescriptionHasSuffix(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldHasSuffix(FieldTaskDescription, v))
}

// TaskDescriptionEqualFold applies the EqualFold predicate on the "task_description" field.
func TaskDescriptionEqualFold(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEqualFold(FieldTaskDescription, v))
}

// TaskDescriptionContainsFold applies the ContainsFold predicate on the "task_description" field.
func TaskDescriptionContainsFold(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContainsFold(FieldTaskDescription, v))
}

// BudgetAllocationEQ applies the EQ predicate on the "budget_allocation" field.
func BudgetAllocationEQ(v int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldBudgetAllocation, v))
}

// BudgetAllocationNEQ applies the NEQ predicate on the "budget_allocation" field.
func BudgetAllocationNEQ(v int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNEQ(FieldBudgetAllocation, v))
}

// BudgetAllocationIn applies the In predicate on the "budget_allocation" field.
func BudgetAllocationIn(vs ...int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIn(FieldBudgetAllocation, vs...))
}

// BudgetAllocationNotIn applies the NotIn predicate on the "budget_allocation" field.
func BudgetAllocationNotIn(vs ...int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotIn(FieldBudgetAllocation, vs...))
}

// BudgetAllocationGT applies the GT predicate on the "budget_allocation" field.
func BudgetAllocationGT(v int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGT(FieldBudgetAllocation, v))
}

// BudgetAllocationGTE applies the GTE predicate on the "budget_allocation" field.
func BudgetAllocationGTE(v int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGTE(FieldBudgetAllocation, v))
}

// BudgetAllocationLT applies the LT predicate on the "budget_allocation" field.
func BudgetAllocationLT(v int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLT(FieldBudgetAllocation, v))
}

// BudgetAllocationLTE applies the LTE predicate on the "budget_allocation" field.
func BudgetAllocationLTE(v int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLTE(FieldBudgetAllocation, v))
}

// DependenciesIsNil applies the IsNil predicate on the "dependencies" field.
func DependenciesIsNil() predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIsNull(FieldDependencies))
}

// DependenciesNotNil applies the NotNil predicate on the "dependencies" field.
func DependenciesNotNil() predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotNull(FieldDependencies))
}

// ExecutionStatusEQ applies the EQ predicate on the "execution_status" field.
func ExecutionStatusEQ(v ExecutionStatus) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldExecutionStatus, v))
}

// ExecutionStatusNEQ applies the NEQ predicate on the "execution_status" field.
func ExecutionStatusNEQ(v ExecutionStatus) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNEQ(FieldExecutionStatus, v))
}

// ExecutionStatusIn applies the In predicate on the "execution_status" field.
func ExecutionStatusIn(vs ...ExecutionStatus) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIn(FieldExecutionStatus, vs...))
}

// ExecutionStatusNotIn applies the NotIn predicate on the "execution_status" field.
func ExecutionStatusNotIn(vs ...ExecutionStatus) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotIn(FieldExecutionStatus, vs...))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContainsFold(FieldAgentID, v))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldHasSuffix(FieldResult, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotNull(FieldResult))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContainsFold(FieldResult, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLTE(FieldPosition, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasGraph applies the HasEdge predicate on the "graph" edge.
func HasGraph() predicate.WorkflowNode {
	return predicate.WorkflowNode(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GraphTable, GraphColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGraphWith applies the HasEdge predicate on the "graph" edge with a given conditions (other predicates).
func HasGraphWith(preds ...predicate.WorkflowGraph) predicate.WorkflowNode {
	return predicate.WorkflowNode(func(s *sql.Selector) {
		step := newGraphStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowNode) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowNode) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowNode) predicate.WorkflowNode {
	return predicate.WorkflowNode(sql.NotPredicates(p))
}
