package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maestro-orch/maestro/ent"
	"github.com/maestro-orch/maestro/pkg/config"
	"github.com/maestro-orch/maestro/pkg/models"
	testdb "github.com/maestro-orch/maestro/test/database"
)

// testServices bundles the service layer wired against one test database.
type testServices struct {
	client    *ent.Client
	agents    *AgentService
	budgets   *BudgetService
	hierarchy *HierarchyService
	messages  *MessageService
	cfg       *config.KernelConfig
}

func setupTestServices(t *testing.T) *testServices {
	client := testdb.NewTestClient(t)
	cfg := config.DefaultKernelConfig()

	budgets := NewBudgetService(client.Client)
	hierarchy := NewHierarchyService(client.Client)
	agents := NewAgentService(client.Client, budgets, hierarchy, cfg)
	messages := NewMessageService(client.Client)

	return &testServices{
		client:    client.Client,
		agents:    agents,
		budgets:   budgets,
		hierarchy: hierarchy,
		messages:  messages,
		cfg:       cfg,
	}
}

// spawnChildReq builds a child SpawnRequest for tests that assert on the
// spawn error itself.
func spawnChildReq(parentID string, budget int) models.SpawnRequest {
	return models.SpawnRequest{
		Role:     "worker",
		Task:     "do a slice of the work",
		Budget:   budget,
		ParentID: parentID,
	}
}

// spawnRoot creates a root agent with the given budget.
func (ts *testServices) spawnRoot(t *testing.T, ctx context.Context, budget int) *ent.Agent {
	t.Helper()
	a, err := ts.agents.Spawn(ctx, models.SpawnRequest{
		Role:   "coordinator",
		Task:   "coordinate the work",
		Budget: budget,
	})
	require.NoError(t, err)
	return a
}

// spawnChild creates a child agent under parentID with the given budget.
func (ts *testServices) spawnChild(t *testing.T, ctx context.Context, parentID string, budget int) *ent.Agent {
	t.Helper()
	a, err := ts.agents.Spawn(ctx, models.SpawnRequest{
		Role:     "worker",
		Task:     "do a slice of the work",
		Budget:   budget,
		ParentID: parentID,
	})
	require.NoError(t, err)
	return a
}
