package config

import (
	"fmt"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the maestro.yaml layout. Roles are a plain map here
// and become a RoleRegistry after merging.
type fileConfig struct {
	Kernel    *KernelConfig          `yaml:"kernel"`
	Workspace *WorkspaceConfig       `yaml:"workspace"`
	Roles     map[string]*RoleConfig `yaml:"roles"`
}

// Initialize loads, merges, and validates configuration.
//
// Steps:
//  1. Read the YAML file (missing file is not an error — defaults apply)
//  2. Expand {{.ENV_VAR}} references
//  3. Merge file values over built-in defaults
//  4. Build the role registry
//  5. Validate the result
func Initialize(path string) (*Config, error) {
	log := slog.With("config_path", path)

	fc := &fileConfig{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			log.Info("No configuration file, using built-in defaults")
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			data = ExpandEnv(data)
			if err := yaml.Unmarshal(data, fc); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	kernel := DefaultKernelConfig()
	if fc.Kernel != nil {
		if err := mergo.Merge(kernel, fc.Kernel, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge kernel config: %w", err)
		}
	}

	workspace := DefaultWorkspaceConfig()
	if fc.Workspace != nil {
		if err := mergo.Merge(workspace, fc.Workspace, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge workspace config: %w", err)
		}
	}

	cfg := &Config{
		configPath: path,
		Kernel:     kernel,
		Workspace:  workspace,
		Roles:      NewRoleRegistry(fc.Roles),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized",
		"max_depth", kernel.MaxDepth,
		"poll_interval", kernel.PollInterval,
		"max_concurrent_executions", kernel.MaxConcurrentExecutions,
		"roles", cfg.Roles.Len())

	return cfg, nil
}

func validate(cfg *Config) error {
	k := cfg.Kernel
	if k.MaxDepth < 0 {
		return fmt.Errorf("kernel.max_depth must be >= 0, got %d", k.MaxDepth)
	}
	if k.PollInterval <= 0 {
		return fmt.Errorf("kernel.poll_interval must be positive, got %v", k.PollInterval)
	}
	if k.WorkerCount < 1 {
		return fmt.Errorf("kernel.worker_count must be >= 1, got %d", k.WorkerCount)
	}
	if k.MaxConcurrentExecutions < 1 {
		return fmt.Errorf("kernel.max_concurrent_executions must be >= 1, got %d", k.MaxConcurrentExecutions)
	}
	if k.AgentTimeout <= 0 {
		return fmt.Errorf("kernel.agent_timeout must be positive, got %v", k.AgentTimeout)
	}
	if k.DefaultBudget < 1 {
		return fmt.Errorf("kernel.default_budget must be >= 1, got %d", k.DefaultBudget)
	}
	if cfg.Workspace.RetentionDays < 0 {
		return fmt.Errorf("workspace.retention_days must be >= 0, got %d", cfg.Workspace.RetentionDays)
	}
	return nil
}
