// Package workspace provisions isolated git worktrees for agents. Every
// agent gets its own branch and working directory off the shared repository,
// so concurrent agents never see each other's uncommitted changes.
package workspace

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/maestro-orch/maestro/ent"
	"github.com/maestro-orch/maestro/ent/workspace"
	"github.com/maestro-orch/maestro/pkg/config"
	"github.com/maestro-orch/maestro/pkg/services"
)

// Manager creates and tears down per-agent git worktrees and tracks them in
// the workspaces table. It satisfies the agent service's WorkspaceCreator.
type Manager struct {
	client *ent.Client
	cfg    config.WorkspaceConfig
}

// NewManager creates a workspace manager rooted at cfg.RepoRoot.
func NewManager(client *ent.Client, cfg config.WorkspaceConfig) (*Manager, error) {
	if cfg.RepoRoot == "" {
		return nil, fmt.Errorf("workspace repo_root is not configured")
	}
	if _, err := os.Stat(filepath.Join(cfg.RepoRoot, ".git")); err != nil {
		return nil, fmt.Errorf("repo_root %s is not a git repository: %w", cfg.RepoRoot, err)
	}
	if cfg.WorktreesDir == "" {
		cfg.WorktreesDir = filepath.Join(cfg.RepoRoot, ".worktrees")
	}
	if err := os.MkdirAll(cfg.WorktreesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create worktrees dir: %w", err)
	}
	return &Manager{client: client, cfg: cfg}, nil
}

// Create provisions a worktree for the agent on a fresh branch cut from the
// repository HEAD and records it with the HEAD commit as the diff base.
// Returns the worktree path.
func (m *Manager) Create(ctx context.Context, agentID string) (string, error) {
	branch := branchName(agentID)
	path := filepath.Join(m.cfg.WorktreesDir, agentID)

	baseCommit, err := m.git(ctx, m.cfg.RepoRoot, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if _, err := m.git(ctx, m.cfg.RepoRoot, "worktree", "add", "-b", branch, path, "HEAD"); err != nil {
		return "", fmt.Errorf("failed to add worktree: %w", err)
	}

	_, err = m.client.Workspace.Create().
		SetAgentID(agentID).
		SetPath(path).
		SetBranchName(branch).
		SetBaseCommit(baseCommit).
		Save(ctx)
	if err != nil {
		// Roll the worktree back so a failed insert leaves no stray
		// checkout behind.
		_, _ = m.git(ctx, m.cfg.RepoRoot, "worktree", "remove", "--force", path)
		_, _ = m.git(ctx, m.cfg.RepoRoot, "branch", "-D", branch)
		return "", fmt.Errorf("failed to record workspace: %w", err)
	}

	slog.Info("Workspace created", "agent_id", agentID, "path", path, "branch", branch)
	return path, nil
}

// Get returns the workspace row for an agent.
func (m *Manager) Get(ctx context.Context, agentID string) (*ent.Workspace, error) {
	ws, err := m.client.Workspace.Query().
		Where(workspace.AgentIDEQ(agentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: workspace for agent %s", services.ErrNotFound, agentID)
		}
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	return ws, nil
}

// Diff returns the agent's accumulated changes as a unified diff against the
// commit its worktree was cut from, including untracked files via the index.
func (m *Manager) Diff(ctx context.Context, agentID string) (string, error) {
	ws, err := m.Get(ctx, agentID)
	if err != nil {
		return "", err
	}

	if _, err := m.git(ctx, ws.Path, "add", "-A", "--intent-to-add"); err != nil {
		return "", fmt.Errorf("failed to stage untracked files: %w", err)
	}
	diff, err := m.git(ctx, ws.Path, "diff", ws.BaseCommit)
	if err != nil {
		return "", fmt.Errorf("failed to diff workspace: %w", err)
	}
	return diff, nil
}

// Merge fast-forwards the agent's committed work into the branch the
// repository HEAD is on, then marks the workspace merged.
func (m *Manager) Merge(ctx context.Context, agentID string) error {
	ws, err := m.Get(ctx, agentID)
	if err != nil {
		return err
	}
	if ws.IsolationStatus != workspace.IsolationStatusActive {
		return fmt.Errorf("%w: workspace for agent %s is %s, not active",
			services.ErrInvalidTransition, agentID, ws.IsolationStatus)
	}

	if _, err := m.git(ctx, m.cfg.RepoRoot, "merge", "--no-ff", "-m",
		fmt.Sprintf("Merge agent %s", agentID), ws.BranchName); err != nil {
		return fmt.Errorf("failed to merge branch %s: %w", ws.BranchName, err)
	}

	return m.setStatus(ctx, ws, workspace.IsolationStatusMerged)
}

// Abandon marks the workspace abandoned without touching the filesystem;
// the cleanup sweep removes the worktree later.
func (m *Manager) Abandon(ctx context.Context, agentID string) error {
	ws, err := m.Get(ctx, agentID)
	if err != nil {
		return err
	}
	if ws.IsolationStatus != workspace.IsolationStatusActive {
		return nil
	}
	return m.setStatus(ctx, ws, workspace.IsolationStatusAbandoned)
}

// Destroy removes the agent's worktree and branch and marks the workspace
// cleaned up. Safe to call on already-cleaned workspaces.
func (m *Manager) Destroy(ctx context.Context, agentID string) error {
	ws, err := m.client.Workspace.Query().
		Where(workspace.AgentIDEQ(agentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to load workspace: %w", err)
	}
	return m.destroy(ctx, ws)
}

func (m *Manager) destroy(ctx context.Context, ws *ent.Workspace) error {
	if ws.IsolationStatus == workspace.IsolationStatusCleanedUp {
		return nil
	}

	if _, err := m.git(ctx, m.cfg.RepoRoot, "worktree", "remove", "--force", ws.Path); err != nil {
		// The directory may already be gone; prune bookkeeping and
		// continue.
		slog.Warn("Worktree removal failed, pruning", "agent_id", ws.AgentID, "error", err)
		_, _ = m.git(ctx, m.cfg.RepoRoot, "worktree", "prune")
	}
	if ws.IsolationStatus != workspace.IsolationStatusMerged {
		_, _ = m.git(ctx, m.cfg.RepoRoot, "branch", "-D", ws.BranchName)
	}

	if err := m.setStatus(ctx, ws, workspace.IsolationStatusCleanedUp); err != nil {
		return err
	}
	slog.Info("Workspace destroyed", "agent_id", ws.AgentID, "path", ws.Path)
	return nil
}

// CleanupExpired destroys merged and abandoned workspaces older than the
// cutoff. Returns the number cleaned.
func (m *Manager) CleanupExpired(ctx context.Context, olderThan time.Time) (int, error) {
	expired, err := m.client.Workspace.Query().
		Where(
			workspace.IsolationStatusIn(
				workspace.IsolationStatusMerged,
				workspace.IsolationStatusAbandoned,
			),
			workspace.UpdatedAtLT(olderThan),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired workspaces: %w", err)
	}

	cleaned := 0
	for _, ws := range expired {
		if err := m.destroy(ctx, ws); err != nil {
			slog.Error("Workspace cleanup failed", "agent_id", ws.AgentID, "error", err)
			continue
		}
		cleaned++
	}
	return cleaned, nil
}

func (m *Manager) setStatus(ctx context.Context, ws *ent.Workspace, st workspace.IsolationStatus) error {
	if err := m.client.Workspace.UpdateOne(ws).
		SetIsolationStatus(st).
		SetUpdatedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update workspace status: %w", err)
	}
	return nil
}

// git runs one git command in dir and returns its trimmed stdout.
func (m *Manager) git(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// branchName derives the worktree branch name from the full agent ID, so
// distinct agents can never collide on the unique branch column.
func branchName(agentID string) string {
	return "agent-" + agentID
}
