package models

import "time"

// SpawnRequest is the input for AgentService.Spawn.
// Budget of 0 means "use the configured default" for root agents; child
// agents must state an explicit positive budget so the parent reservation
// is deliberate.
type SpawnRequest struct {
	Role     string `json:"role"`
	Task     string `json:"task"`
	Budget   int    `json:"budget"`
	ParentID string `json:"parent_id,omitempty"`

	// AgentID pins the new agent's id. Used by the workflow engine, which
	// records the id on the node before the agent exists so an interrupted
	// spawn can be finished instead of repeated. Not settable over HTTP.
	AgentID string `json:"-"`
}

// BudgetSnapshot is the caller-facing view of one budget row.
type BudgetSnapshot struct {
	AgentID   string `json:"agent_id"`
	Allocated int    `json:"allocated"`
	Used      int    `json:"used"`
	Reserved  int    `json:"reserved"`
	Remaining int    `json:"remaining"`
	Reclaimed bool   `json:"reclaimed"`
}

// TreeNode is one agent in a hierarchy tree rendering.
type TreeNode struct {
	AgentID  string      `json:"agent_id"`
	Role     string      `json:"role"`
	Status   string      `json:"status"`
	Depth    int         `json:"depth"`
	Children []*TreeNode `json:"children,omitempty"`
}

// AgentFilters narrows ListAgents queries.
type AgentFilters struct {
	Status    string
	Role      string
	ParentID  string
	CreatedAt *time.Time // only agents created at or after this instant
	Limit     int
	Offset    int
}
