package api

import "encoding/json"

// SendMessageRequest is the body of POST /api/v1/messages. Payload is
// arbitrary JSON passed through to the recipient untouched.
type SendMessageRequest struct {
	SenderID    string          `json:"sender_id"`
	RecipientID string          `json:"recipient_id" binding:"required"`
	Payload     json.RawMessage `json:"payload" binding:"required"`
	Priority    int             `json:"priority"`
	ThreadID    string          `json:"thread_id"`
}

// FailMessageRequest is the optional body of POST /api/v1/messages/:id/failed.
type FailMessageRequest struct {
	Reason string `json:"reason"`
}

// TerminateRequest is the optional body of agent and workflow terminate calls.
type TerminateRequest struct {
	Reason string `json:"reason"`
}

// InstantiateRequest is the body of POST /api/v1/workflow-templates/:id/instantiate.
type InstantiateRequest struct {
	Task        string `json:"task" binding:"required"`
	TotalBudget int    `json:"total_budget" binding:"required"`
}
