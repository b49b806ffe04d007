package config

import "time"

// WorkspaceConfig controls git worktree isolation and retention.
type WorkspaceConfig struct {
	// RepoRoot is the git repository agents branch from. Empty disables
	// workspace isolation entirely (agents run with no workspace path).
	RepoRoot string `yaml:"repo_root"`

	// WorktreesDir is where per-agent worktrees are added. Defaults to
	// <RepoRoot>/.worktrees when empty.
	WorktreesDir string `yaml:"worktrees_dir"`

	// RetentionDays is how long non-active workspaces are kept before the
	// cleanup sweeper removes them.
	RetentionDays int `yaml:"retention_days"`

	// CleanupInterval is how often the workspace sweeper runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultWorkspaceConfig returns the built-in workspace defaults.
func DefaultWorkspaceConfig() *WorkspaceConfig {
	return &WorkspaceConfig{
		RetentionDays:   7,
		CleanupInterval: 1 * time.Hour,
	}
}
