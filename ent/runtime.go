// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/ent/budget"
	"github.com/maestro-orch/maestro/ent/hierarchy"
	"github.com/maestro-orch/maestro/ent/message"
	"github.com/maestro-orch/maestro/ent/schema"
	"github.com/maestro-orch/maestro/ent/workflowgraph"
	"github.com/maestro-orch/maestro/ent/workflownode"
	"github.com/maestro-orch/maestro/ent/workflowtemplate"
	"github.com/maestro-orch/maestro/ent/workspace"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescDepthLevel is the schema descriptor for depth_level field.
	agentDescDepthLevel := agentFields[4].Descriptor()
	// agent.DefaultDepthLevel holds the default value on creation for the depth_level field.
	agent.DefaultDepthLevel = agentDescDepthLevel.Default.(int)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[8].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[9].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	budgetFields := schema.Budget{}.Fields()
	_ = budgetFields
	// budgetDescAllocated is the schema descriptor for allocated field.
	budgetDescAllocated := budgetFields[1].Descriptor()
	// budget.AllocatedValidator is a validator for the "allocated" field. It is called by the builders before save.
	budget.AllocatedValidator = budgetDescAllocated.Validators[0].(func(int) error)
	// budgetDescUsed is the schema descriptor for used field.
	budgetDescUsed := budgetFields[2].Descriptor()
	// budget.DefaultUsed holds the default value on creation for the used field.
	budget.DefaultUsed = budgetDescUsed.Default.(int)
	// budget.UsedValidator is a validator for the "used" field. It is called by the builders before save.
	budget.UsedValidator = budgetDescUsed.Validators[0].(func(int) error)
	// budgetDescReserved is the schema descriptor for reserved field.
	budgetDescReserved := budgetFields[3].Descriptor()
	// budget.DefaultReserved holds the default value on creation for the reserved field.
	budget.DefaultReserved = budgetDescReserved.Default.(int)
	// budget.ReservedValidator is a validator for the "reserved" field. It is called by the builders before save.
	budget.ReservedValidator = budgetDescReserved.Validators[0].(func(int) error)
	// budgetDescReclaimed is the schema descriptor for reclaimed field.
	budgetDescReclaimed := budgetFields[4].Descriptor()
	// budget.DefaultReclaimed holds the default value on creation for the reclaimed field.
	budget.DefaultReclaimed = budgetDescReclaimed.Default.(bool)
	// budgetDescCreatedAt is the schema descriptor for created_at field.
	budgetDescCreatedAt := budgetFields[5].Descriptor()
	// budget.DefaultCreatedAt holds the default value on creation for the created_at field.
	budget.DefaultCreatedAt = budgetDescCreatedAt.Default.(func() time.Time)
	// budgetDescUpdatedAt is the schema descriptor for updated_at field.
	budgetDescUpdatedAt := budgetFields[6].Descriptor()
	// budget.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	budget.DefaultUpdatedAt = budgetDescUpdatedAt.Default.(func() time.Time)
	// budget.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	budget.UpdateDefaultUpdatedAt = budgetDescUpdatedAt.UpdateDefault.(func() time.Time)
	hierarchyFields := schema.Hierarchy{}.Fields()
	_ = hierarchyFields
	// hierarchyDescCreatedAt is the schema descriptor for created_at field.
	hierarchyDescCreatedAt := hierarchyFields[2].Descriptor()
	// hierarchy.DefaultCreatedAt holds the default value on creation for the created_at field.
	hierarchy.DefaultCreatedAt = hierarchyDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescPriority is the schema descriptor for priority field.
	messageDescPriority := messageFields[3].Descriptor()
	// message.DefaultPriority holds the default value on creation for the priority field.
	message.DefaultPriority = messageDescPriority.Default.(int)
	// message.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	message.PriorityValidator = func() func(int) error {
		validators := messageDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[7].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	workflowgraphFields := schema.WorkflowGraph{}.Fields()
	_ = workflowgraphFields
	// workflowgraphDescTotalBudget is the schema descriptor for total_budget field.
	workflowgraphDescTotalBudget := workflowgraphFields[4].Descriptor()
	// workflowgraph.DefaultTotalBudget holds the default value on creation for the total_budget field.
	workflowgraph.DefaultTotalBudget = workflowgraphDescTotalBudget.Default.(int)
	// workflowgraph.TotalBudgetValidator is a validator for the "total_budget" field. It is called by the builders before save.
	workflowgraph.TotalBudgetValidator = workflowgraphDescTotalBudget.Validators[0].(func(int) error)
	// workflowgraphDescCreatedAt is the schema descriptor for created_at field.
	workflowgraphDescCreatedAt := workflowgraphFields[9].Descriptor()
	// workflowgraph.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowgraph.DefaultCreatedAt = workflowgraphDescCreatedAt.Default.(func() time.Time)
	// workflowgraphDescUpdatedAt is the schema descriptor for updated_at field.
	workflowgraphDescUpdatedAt := workflowgraphFields[10].Descriptor()
	// workflowgraph.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowgraph.DefaultUpdatedAt = workflowgraphDescUpdatedAt.Default.(func() time.Time)
	// workflowgraph.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowgraph.UpdateDefaultUpdatedAt = workflowgraphDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflownodeFields := schema.WorkflowNode{}.Fields()
	_ = workflownodeFields
	// workflownodeDescBudgetAllocation is the schema descriptor for budget_allocation field.
	workflownodeDescBudgetAllocation := workflownodeFields[5].Descriptor()
	// workflownode.BudgetAllocationValidator is a validator for the "budget_allocation" field. It is called by the builders before save.
	workflownode.BudgetAllocationValidator = workflownodeDescBudgetAllocation.Validators[0].(func(int) error)
	// workflownodeDescPosition is the schema descriptor for position field.
	workflownodeDescPosition := workflownodeFields[10].Descriptor()
	// workflownode.DefaultPosition holds the default value on creation for the position field.
	workflownode.DefaultPosition = workflownodeDescPosition.Default.(int)
	// workflownodeDescCreatedAt is the schema descriptor for created_at field.
	workflownodeDescCreatedAt := workflownodeFields[12].Descriptor()
	// workflownode.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflownode.DefaultCreatedAt = workflownodeDescCreatedAt.Default.(func() time.Time)
	// workflownodeDescUpdatedAt is the schema descriptor for updated_at field.
	workflownodeDescUpdatedAt := workflownodeFields[13].Descriptor()
	// workflownode.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflownode.DefaultUpdatedAt = workflownodeDescUpdatedAt.Default.(func() time.Time)
	// workflownode.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflownode.UpdateDefaultUpdatedAt = workflownodeDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowtemplateFields := schema.WorkflowTemplate{}.Fields()
	_ = workflowtemplateFields
	// workflowtemplateDescMinBudget is the schema descriptor for min_budget field.
	workflowtemplateDescMinBudget := workflowtemplateFields[4].Descriptor()
	// workflowtemplate.DefaultMinBudget holds the default value on creation for the min_budget field.
	workflowtemplate.DefaultMinBudget = workflowtemplateDescMinBudget.Default.(int)
	// workflowtemplate.MinBudgetValidator is a validator for the "min_budget" field. It is called by the builders before save.
	workflowtemplate.MinBudgetValidator = workflowtemplateDescMinBudget.Validators[0].(func(int) error)
	// workflowtemplateDescUsageCount is the schema descriptor for usage_count field.
	workflowtemplateDescUsageCount := workflowtemplateFields[5].Descriptor()
	// workflowtemplate.DefaultUsageCount holds the default value on creation for the usage_count field.
	workflowtemplate.DefaultUsageCount = workflowtemplateDescUsageCount.Default.(int)
	// workflowtemplate.UsageCountValidator is a validator for the "usage_count" field. It is called by the builders before save.
	workflowtemplate.UsageCountValidator = workflowtemplateDescUsageCount.Validators[0].(func(int) error)
	// workflowtemplateDescCreatedAt is the schema descriptor for created_at field.
	workflowtemplateDescCreatedAt := workflowtemplateFields[6].Descriptor()
	// workflowtemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowtemplate.DefaultCreatedAt = workflowtemplateDescCreatedAt.Default.(func() time.Time)
	// workflowtemplateDescUpdatedAt is the schema descriptor for updated_at field.
	workflowtemplateDescUpdatedAt := workflowtemplateFields[7].Descriptor()
	// workflowtemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowtemplate.DefaultUpdatedAt = workflowtemplateDescUpdatedAt.Default.(func() time.Time)
	// workflowtemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowtemplate.UpdateDefaultUpdatedAt = workflowtemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	workspaceFields := schema.Workspace{}.Fields()
	_ = workspaceFields
	// workspaceDescCreatedAt is the schema descriptor for created_at field.
	workspaceDescCreatedAt := workspaceFields[5].Descriptor()
	// workspace.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspace.DefaultCreatedAt = workspaceDescCreatedAt.Default.(func() time.Time)
	// workspaceDescUpdatedAt is the schema descriptor for updated_at field.
	workspaceDescUpdatedAt := workspaceFields[6].Descriptor()
	// workspace.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workspace.DefaultUpdatedAt = workspaceDescUpdatedAt.Default.(func() time.Time)
	// workspace.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workspace.UpdateDefaultUpdatedAt = workspaceDescUpdatedAt.UpdateDefault.(func() time.Time)
}
