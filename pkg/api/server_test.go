package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-orch/maestro/pkg/config"
	"github.com/maestro-orch/maestro/pkg/kernel"
	"github.com/maestro-orch/maestro/pkg/models"
	"github.com/maestro-orch/maestro/pkg/runner"
	testdb "github.com/maestro-orch/maestro/test/database"
)

// setupServer builds a server over a fresh database without starting the
// kernel's background loops; handlers are exercised directly.
func setupServer(t *testing.T) *Server {
	t.Helper()

	db := testdb.NewTestClient(t)
	cfg := config.Default()
	cfg.Kernel.DefaultBudget = 10_000

	k, err := kernel.New(cfg, db, runner.NewStubRunner(100), "test-pod")
	require.NoError(t, err)

	return NewServer(k)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func TestSpawnAndGetAgent(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/agents", models.SpawnRequest{
		Role: "researcher",
		Task: "survey the landscape",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[map[string]any](t, rec)
	agentID, _ := created["id"].(string)
	require.NotEmpty(t, agentID)
	assert.Equal(t, "pending", created["status"])

	rec = doJSON(t, s, http.MethodGet, "/api/v1/agents/"+agentID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Root with no explicit budget gets the configured default.
	rec = doJSON(t, s, http.MethodGet, "/api/v1/agents/"+agentID+"/budget", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	budget := decode[models.BudgetSnapshot](t, rec)
	assert.Equal(t, 10_000, budget.Allocated)
	assert.Equal(t, 10_000, budget.Remaining)
}

func TestSpawnValidation(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/agents", models.SpawnRequest{
		Task: "no role given",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAgentNotFound(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/agents/no-such-agent", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAgentsAndTree(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/agents", models.SpawnRequest{
		Role: "coordinator", Task: "root task",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rootID := decode[map[string]any](t, rec)["id"].(string)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/agents", models.SpawnRequest{
		Role: "worker", Task: "child task", Budget: 500, ParentID: rootID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	childID := decode[map[string]any](t, rec)["id"].(string)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/agents?role=worker", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[struct {
		Count int `json:"count"`
	}](t, rec)
	assert.Equal(t, 1, list.Count)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/agents?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/agents/"+rootID+"/tree", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tree := decode[models.TreeNode](t, rec)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, childID, tree.Children[0].AgentID)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/agents/"+childID+"/ancestors", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestTerminateAgent(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/agents", models.SpawnRequest{
		Role: "worker", Task: "doomed",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	agentID := decode[map[string]any](t, rec)["id"].(string)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/agents/"+agentID+"/terminate",
		TerminateRequest{Reason: "operator stop"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/agents/"+agentID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "terminated", decode[map[string]any](t, rec)["status"])
}

func TestMessageRoundTrip(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/agents", models.SpawnRequest{
		Role: "worker", Task: "recipient",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	recipientID := decode[map[string]any](t, rec)["id"].(string)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/messages", SendMessageRequest{
		RecipientID: recipientID,
		Payload:     json.RawMessage(`{"kind":"hint","text":"check the logs"}`),
		Priority:    5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Receiving hands the message over and marks it delivered.
	rec = doJSON(t, s, http.MethodGet, "/api/v1/agents/"+recipientID+"/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	inbox := decode[struct {
		Count    int `json:"count"`
		Messages []struct {
			ID int `json:"id"`
		} `json:"messages"`
	}](t, rec)
	require.Equal(t, 1, inbox.Count)
	msgID := inbox.Messages[0].ID

	rec = doJSON(t, s, http.MethodGet, "/api/v1/agents/"+recipientID+"/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[struct {
		Count int `json:"count"`
	}](t, rec).Count)

	rec = doJSON(t, s, http.MethodPost, fmt.Sprintf("/api/v1/messages/%d/processed", msgID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Terminal messages reject further transitions.
	rec = doJSON(t, s, http.MethodPost, fmt.Sprintf("/api/v1/messages/%d/failed", msgID),
		FailMessageRequest{Reason: "too late"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSendMessageToUnknownRecipient(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/messages", SendMessageRequest{
		RecipientID: "ghost",
		Payload:     json.RawMessage(`{}`),
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWorkflowLifecycleOverHTTP(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/workflow-templates", models.CreateTemplateRequest{
		Name: "two-step",
		Nodes: []models.NodeTemplate{
			{NodeID: "gather", Role: "researcher", TaskTemplate: "gather: {{task}}", BudgetPercentage: 60},
			{NodeID: "report", Role: "writer", TaskTemplate: "report: {{task}}", BudgetPercentage: 40, Dependencies: []string{"gather"}},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	templateID := decode[map[string]any](t, rec)["id"].(string)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/workflow-templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/workflow-templates/"+templateID+"/instantiate",
		InstantiateRequest{Task: "quarterly summary", TotalBudget: 2_000})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	graphID := decode[map[string]any](t, rec)["id"].(string)

	// Execute before validation is rejected.
	rec = doJSON(t, s, http.MethodPost, "/api/v1/workflows/"+graphID+"/execute", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/workflows/"+graphID+"/validate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[models.ValidationResult](t, rec).Valid)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/workflows/"+graphID+"/execute", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, s, http.MethodGet, "/api/v1/workflows/"+graphID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/workflows/"+graphID+"/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	progress := decode[models.WorkflowProgress](t, rec)
	assert.Equal(t, 2, progress.TotalNodes)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/workflows/"+graphID+"/pause", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, s, http.MethodPost, "/api/v1/workflows/"+graphID+"/resume", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/workflows/"+graphID+"/terminate",
		TerminateRequest{Reason: "abort"})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestWorkspaceRoutesDisabled(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/agents/any/workspace/diff", nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := setupServer(t)

	rec := doJSON(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	health := decode[HealthResponse](t, rec)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "healthy", health.Checks["database"].Status)

	rec = doJSON(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "maestro_agents")
}
