package workspace

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

	"github.com/maestro-orch/maestro/ent"
	entws "github.com/maestro-orch/maestro/ent/workspace"
	"github.com/maestro-orch/maestro/pkg/config"
	testdb "github.com/maestro-orch/maestro/test/database"
)

// initTestRepo creates a git repository with one commit and returns its path.
func initTestRepo(t *testing.T) string {
	t.Helper()
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
	require.NoError(t, os.WriteFile(filepath.Join(repo, "README.md"), []byte("hello\n"), 0o644))
	run("add", ".")
	run("commit", "-m", "initial commit")

	return repo
}

func setupManager(t *testing.T) (*Manager, *ent.Client) {
	repo := initTestRepo(t)
	client := testdb.NewTestClient(t)

	mgr, err := NewManager(client.Client, config.WorkspaceConfig{
		RepoRoot:     repo,
		WorktreesDir: filepath.Join(t.TempDir(), "worktrees"),
	})
	require.NoError(t, err)
	return mgr, client.Client
}

// createAgent inserts a bare agent row to satisfy the workspace FK.
func createAgent(t *testing.T, client *ent.Client) string {
	return createAgentWithID(t, client, uuid.New().String())
}

func createAgentWithID(t *testing.T, client *ent.Client, id string) string {
	t.Helper()
	_, err := client.Agent.Create().
		SetID(id).
		SetRole("worker").
		SetTaskDescription("test task").
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func TestManagerCreateAndDiff(t *testing.T) {
	mgr, client := setupManager(t)
	ctx := context.Background()
	agentID := createAgent(t, client)

	path, err := mgr.Create(ctx, agentID)
	require.NoError(t, err)
	assert.DirExists(t, path)

	ws, err := mgr.Get(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, entws.IsolationStatusActive, ws.IsolationStatus)
	assert.NotEmpty(t, ws.BaseCommit)
	assert.Equal(t, "agent-"+agentID, ws.BranchName)

	// A clean worktree diffs empty.
	diff, err := mgr.Diff(ctx, agentID)
	require.NoError(t, err)
	assert.Empty(t, diff)

	// Changes in the worktree show up against the base commit, including
	// new files.
	require.NoError(t, os.WriteFile(filepath.Join(path, "notes.txt"), []byte("work\n"), 0o644))
	diff, err = mgr.Diff(ctx, agentID)
	require.NoError(t, err)
	assert.Contains(t, diff, "notes.txt")
}

func TestManagerCreateIsIsolatedPerAgent(t *testing.T) {
	mgr, client := setupManager(t)
	ctx := context.Background()

	a := createAgent(t, client)
	b := createAgent(t, client)

	pathA, err := mgr.Create(ctx, a)
	require.NoError(t, err)
	pathB, err := mgr.Create(ctx, b)
	require.NoError(t, err)
	assert.NotEqual(t, pathA, pathB)

	// A's edits are invisible in B's worktree.
	require.NoError(t, os.WriteFile(filepath.Join(pathA, "a.txt"), []byte("a\n"), 0o644))
	assert.NoFileExists(t, filepath.Join(pathB, "a.txt"))
}

func TestManagerCreateAgentsSharingIDPrefix(t *testing.T) {
	mgr, client := setupManager(t)
	ctx := context.Background()

	// Branch names carry the full agent id, so a common prefix must not
	// collide on the unique branch column.
	a := createAgentWithID(t, client, "aaaaaaaa-1111-4111-8111-111111111111")
	b := createAgentWithID(t, client, "aaaaaaaa-2222-4222-8222-222222222222")

	_, err := mgr.Create(ctx, a)
	require.NoError(t, err)
	_, err = mgr.Create(ctx, b)
	require.NoError(t, err)

	wsA, err := mgr.Get(ctx, a)
	require.NoError(t, err)
	wsB, err := mgr.Get(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, "agent-"+a, wsA.BranchName)
	assert.Equal(t, "agent-"+b, wsB.BranchName)
}

func TestManagerDestroy(t *testing.T) {
	mgr, client := setupManager(t)
	ctx := context.Background()
	agentID := createAgent(t, client)

	path, err := mgr.Create(ctx, agentID)
	require.NoError(t, err)

	require.NoError(t, mgr.Destroy(ctx, agentID))
	assert.NoDirExists(t, path)

	ws, err := mgr.Get(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, entws.IsolationStatusCleanedUp, ws.IsolationStatus)

	// Idempotent.
	assert.NoError(t, mgr.Destroy(ctx, agentID))
	// Unknown agent is a no-op, not an error.
	assert.NoError(t, mgr.Destroy(ctx, "ghost"))
}

func TestManagerAbandonAndCleanup(t *testing.T) {
	mgr, client := setupManager(t)
	ctx := context.Background()
	agentID := createAgent(t, client)

	path, err := mgr.Create(ctx, agentID)
	require.NoError(t, err)

	require.NoError(t, mgr.Abandon(ctx, agentID))
	// Abandon leaves the files in place for the retention window.
	assert.DirExists(t, path)

	// Nothing is old enough yet.
	cleaned, err := mgr.CleanupExpired(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, cleaned)

	// With the cutoff in the future the abandoned workspace is swept.
	cleaned, err = mgr.CleanupExpired(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, cleaned)
	assert.NoDirExists(t, path)
}

func TestManagerMerge(t *testing.T) {
	mgr, client := setupManager(t)
	ctx := context.Background()
	agentID := createAgent(t, client)

	path, err := mgr.Create(ctx, agentID)
	require.NoError(t, err)

	// Commit work on the agent branch.
	require.NoError(t, os.WriteFile(filepath.Join(path, "feature.txt"), []byte("done\n"), 0o644))
	for _, args := range [][]string{
		{"add", "."},
		{"-c", "user.email=test@example.com", "-c", "user.name=test", "commit", "-m", "agent work"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = path
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}

	require.NoError(t, mgr.Merge(ctx, agentID))

	ws, err := mgr.Get(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, entws.IsolationStatusMerged, ws.IsolationStatus)

	// Merging a non-active workspace is rejected.
	assert.Error(t, mgr.Merge(ctx, agentID))
}

func TestNewManagerValidation(t *testing.T) {
	client := testdb.NewTestClient(t)

	_, err := NewManager(client.Client, config.WorkspaceConfig{})
	assert.Error(t, err)

	_, err = NewManager(client.Client, config.WorkspaceConfig{RepoRoot: t.TempDir()})
	assert.Error(t, err)
}
