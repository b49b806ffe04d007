// Package config loads and validates kernel configuration: YAML file with
// environment expansion, merged over built-in defaults.
package config

// Config is the umbrella configuration object returned by Initialize and
// threaded through the kernel's components.
type Config struct {
	configPath string

	Kernel    *KernelConfig    `yaml:"kernel"`
	Workspace *WorkspaceConfig `yaml:"workspace"`

	// Roles maps role tags to runner configuration; built from the YAML
	// roles section plus runtime Register calls.
	Roles *RoleRegistry `yaml:"-"`
}

// ConfigPath returns the path the configuration was loaded from, empty when
// running on pure defaults.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Default returns a configuration of pure built-in defaults, primarily for
// tests and embedded use.
func Default() *Config {
	return &Config{
		Kernel:    DefaultKernelConfig(),
		Workspace: DefaultWorkspaceConfig(),
		Roles:     NewRoleRegistry(nil),
	}
}
