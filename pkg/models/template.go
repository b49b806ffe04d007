// Package models defines request/response structures and the JSON-embedded
// types shared between the ent schemas and the service layer.
package models

// NodeTemplate is one position in a workflow template. BudgetPercentage is
// the share of the instantiated workflow's total budget this node receives;
// the percentages of a template must sum to exactly 100. Dependencies refer
// to sibling NodeIDs within the same template.
type NodeTemplate struct {
	NodeID           string   `json:"node_id" yaml:"node_id"`
	Role             string   `json:"role" yaml:"role"`
	TaskTemplate     string   `json:"task_template" yaml:"task_template"`
	BudgetPercentage int      `json:"budget_percentage" yaml:"budget_percentage"`
	Dependencies     []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// EdgePattern is a denormalized from→to pair derived from node dependencies.
// Stored alongside node_templates for cheap DAG introspection.
type EdgePattern struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// CreateTemplateRequest is the input for WorkflowTemplateService.Create.
type CreateTemplateRequest struct {
	Name      string         `json:"name"`
	Nodes     []NodeTemplate `json:"nodes"`
	MinBudget int            `json:"min_budget"`
}
