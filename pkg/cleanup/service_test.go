package cleanup

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entws "github.com/maestro-orch/maestro/ent/workspace"
	"github.com/maestro-orch/maestro/pkg/config"
	"github.com/maestro-orch/maestro/pkg/workspace"
	testdb "github.com/maestro-orch/maestro/test/database"
)

func TestServiceSweepsAbandonedWorkspaces(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	repo := t.TempDir()
	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = repo
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}
	run("init", "-b", "main")
	run("config", "user.email", "test@example.com")
	run("config", "user.name", "test")
	require.NoError(t, os.WriteFile(filepath.Join(repo, "README.md"), []byte("x\n"), 0o644))
	run("add", ".")
	run("commit", "-m", "initial")

	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := &config.WorkspaceConfig{
		RepoRoot:        repo,
		WorktreesDir:    filepath.Join(t.TempDir(), "wt"),
		RetentionDays:   0, // everything non-active is immediately expired
		CleanupInterval: 50 * time.Millisecond,
	}

	mgr, err := workspace.NewManager(client.Client, *cfg)
	require.NoError(t, err)

	agentID := uuid.New().String()
	_, err = client.Agent.Create().
		SetID(agentID).
		SetRole("worker").
		SetTaskDescription("t").
		Save(ctx)
	require.NoError(t, err)

	path, err := mgr.Create(ctx, agentID)
	require.NoError(t, err)
	require.NoError(t, mgr.Abandon(ctx, agentID))

	svc := NewService(cfg, mgr)
	svc.Start(ctx)
	defer svc.Stop()

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		ws, err := mgr.Get(ctx, agentID)
		require.NoError(t, err)
		if ws.IsolationStatus == entws.IsolationStatusCleanedUp {
			assert.NoDirExists(t, path)
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("workspace was never cleaned up")
}

func TestServiceStartStopAreIdempotent(t *testing.T) {
	svc := &Service{config: &config.WorkspaceConfig{CleanupInterval: time.Hour, RetentionDays: 1}}

	// Stop before Start is a no-op.
	svc.Stop()
}
