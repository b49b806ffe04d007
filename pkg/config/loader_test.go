package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWithoutFile(t *testing.T) {
	cfg, err := Initialize(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Kernel.MaxDepth)
	assert.Equal(t, 5*time.Second, cfg.Kernel.PollInterval)
	assert.Equal(t, 16, cfg.Kernel.MaxConcurrentExecutions)
	assert.Equal(t, 30*time.Minute, cfg.Kernel.AgentTimeout)
	assert.Equal(t, 100_000, cfg.Kernel.DefaultBudget)
	assert.False(t, cfg.Kernel.ContinueOnFailure)
	assert.Equal(t, 7, cfg.Workspace.RetentionDays)
	assert.Equal(t, 0, cfg.Roles.Len())
}

func TestInitializeMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maestro.yaml")
	content := `
kernel:
  max_depth: 3
  max_concurrent_executions: 4
  continue_on_failure: true
workspace:
  repo_root: /srv/repo
roles:
  writer:
    model: opus
    max_output_tokens: 4096
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Initialize(path)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, 3, cfg.Kernel.MaxDepth)
	assert.Equal(t, 4, cfg.Kernel.MaxConcurrentExecutions)
	assert.True(t, cfg.Kernel.ContinueOnFailure)
	assert.Equal(t, "/srv/repo", cfg.Workspace.RepoRoot)

	// Defaults retained where the file is silent
	assert.Equal(t, 5*time.Second, cfg.Kernel.PollInterval)
	assert.Equal(t, 100_000, cfg.Kernel.DefaultBudget)

	role := cfg.Roles.Get("writer")
	assert.Equal(t, "opus", role.Model)
	assert.Equal(t, 4096, role.MaxOutputTokens)
}

func TestInitializeExpandsEnv(t *testing.T) {
	t.Setenv("MAESTRO_REPO", "/tmp/agents-repo")

	path := filepath.Join(t.TempDir(), "maestro.yaml")
	content := "workspace:\n  repo_root: {{.MAESTRO_REPO}}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/agents-repo", cfg.Workspace.RepoRoot)
}

func TestInitializeRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative max_depth", "kernel:\n  max_depth: -1\n"},
		{"zero workers", "kernel:\n  max_concurrent_executions: 0\n"},
		{"negative retention", "workspace:\n  retention_days: -2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "maestro.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Initialize(path)
			assert.Error(t, err)
		})
	}
}

func TestRoleRegistryFallback(t *testing.T) {
	reg := NewRoleRegistry(map[string]*RoleConfig{
		"reviewer": {Model: "sonnet"},
	})

	assert.Equal(t, "sonnet", reg.Get("reviewer").Model)

	// Unknown roles resolve to the zero-value fallback, never nil.
	fallback := reg.Get("unregistered")
	require.NotNil(t, fallback)
	assert.Empty(t, fallback.Model)

	require.NoError(t, reg.Register("planner", &RoleConfig{Model: "haiku"}))
	assert.Equal(t, "haiku", reg.Get("planner").Model)
	assert.Equal(t, []string{"planner", "reviewer"}, reg.Names())

	assert.Error(t, reg.Register("", &RoleConfig{}))
	assert.Error(t, reg.Register("x", nil))
}
