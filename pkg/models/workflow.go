package models

// WorkflowCoordinatorRole is the role of the agent that fronts a workflow
// graph. Coordinator agents hold the workflow budget and are driven by the
// engine, never claimed by execution workers.
const WorkflowCoordinatorRole = "workflow"

// WorkflowProgress reports per-status node counts for one workflow graph.
// PercentComplete is completed/total, 0 when the graph has no nodes.
type WorkflowProgress struct {
	GraphID         string         `json:"graph_id"`
	GraphStatus     string         `json:"graph_status"`
	TotalNodes      int            `json:"total_nodes"`
	StatusCounts    map[string]int `json:"status_counts"`
	PercentComplete float64        `json:"percent_complete"`
}

// ValidationResult is the outcome of WorkflowEngine.Validate.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}
