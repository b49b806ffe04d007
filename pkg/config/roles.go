package config

import (
	"fmt"
	"sort"
	"sync"
)

// RoleConfig is the runner-facing configuration for one agent role.
// Roles are data, not types: adding a role is a registry entry, not code.
type RoleConfig struct {
	// Model hints passed through to the task runner.
	Model       string  `yaml:"model,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`

	// MaxOutputTokens caps a single execution's output; 0 means the
	// runner's default.
	MaxOutputTokens int `yaml:"max_output_tokens,omitempty"`

	// SystemPrompt is prepended by the runner, opaque to the kernel.
	SystemPrompt string `yaml:"system_prompt,omitempty"`
}

// RoleRegistry resolves role tags to their configuration. Unknown roles
// resolve to the fallback config so spawning never fails on a missing
// registry entry.
type RoleRegistry struct {
	mu       sync.RWMutex
	roles    map[string]*RoleConfig
	fallback *RoleConfig
}

// NewRoleRegistry creates a registry over the given role map.
func NewRoleRegistry(roles map[string]*RoleConfig) *RoleRegistry {
	if roles == nil {
		roles = make(map[string]*RoleConfig)
	}
	return &RoleRegistry{
		roles:    roles,
		fallback: &RoleConfig{},
	}
}

// Get returns the configuration for a role, or the fallback when the role
// is not registered.
func (r *RoleRegistry) Get(role string) *RoleConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cfg, ok := r.roles[role]; ok {
		return cfg
	}
	return r.fallback
}

// Register adds or replaces a role at runtime.
func (r *RoleRegistry) Register(role string, cfg *RoleConfig) error {
	if role == "" {
		return fmt.Errorf("role name must not be empty")
	}
	if cfg == nil {
		return fmt.Errorf("role config must not be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles[role] = cfg
	return nil
}

// Names returns the registered role names, sorted.
func (r *RoleRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.roles))
	for name := range r.roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered roles.
func (r *RoleRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.roles)
}
