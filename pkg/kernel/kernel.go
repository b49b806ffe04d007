// Package kernel is the composition root: it wires the database, domain
// services, workflow engine, worker pool, and background loops into one
// startable unit.
package kernel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/maestro-orch/maestro/pkg/cleanup"
	"github.com/maestro-orch/maestro/pkg/config"
	"github.com/maestro-orch/maestro/pkg/database"
	"github.com/maestro-orch/maestro/pkg/metrics"
	"github.com/maestro-orch/maestro/pkg/queue"
	"github.com/maestro-orch/maestro/pkg/runner"
	"github.com/maestro-orch/maestro/pkg/services"
	"github.com/maestro-orch/maestro/pkg/workflow"
	"github.com/maestro-orch/maestro/pkg/workspace"
)

// Kernel owns every long-lived component and their cross-wiring. The
// services are exported so callers (the HTTP API, tests) talk to the same
// instances the background loops use.
type Kernel struct {
	cfg      *config.Config
	db       *database.Client
	podID    string
	registry *prometheus.Registry

	Agents     *services.AgentService
	Budgets    *services.BudgetService
	Hierarchy  *services.HierarchyService
	Messages   *services.MessageService
	Templates  *workflow.TemplateService
	Workflows  *workflow.Engine
	Workspaces *workspace.Manager // nil when workspace isolation is disabled
	Pool       *queue.WorkerPool

	poller  *workflow.Poller
	sweeper *cleanup.Service

	started bool
}

// New wires a kernel from its dependencies. The runner executes agent
// tasks; podID identifies this process in logs and worker names.
func New(cfg *config.Config, db *database.Client, r runner.TaskRunner, podID string) (*Kernel, error) {
	budgets := services.NewBudgetService(db.Client)
	hierarchy := services.NewHierarchyService(db.Client)
	agents := services.NewAgentService(db.Client, budgets, hierarchy, cfg.Kernel)
	messages := services.NewMessageService(db.Client)

	var workspaces *workspace.Manager
	var sweeper *cleanup.Service
	if cfg.Workspace.RepoRoot != "" {
		var err error
		workspaces, err = workspace.NewManager(db.Client, *cfg.Workspace)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize workspace manager: %w", err)
		}
		agents.SetWorkspaceCreator(workspaces)
		sweeper = cleanup.NewService(cfg.Workspace, workspaces)
	}

	engine := workflow.NewEngine(db.Client, agents, cfg.Kernel)
	agents.SetCompletionNotifier(engine)

	templates, err := workflow.NewTemplateService(db.Client, agents)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize template service: %w", err)
	}

	pool := queue.NewWorkerPool(podID, db.Client, cfg.Kernel, agents, cfg.Roles, r)
	agents.SetExecutionCanceller(pool)

	// Each kernel gets its own registry so tests and embedded uses never
	// collide on global collector state.
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := metrics.NewCollector(db.Client).Register(registry); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return &Kernel{
		cfg:        cfg,
		db:         db,
		podID:      podID,
		registry:   registry,
		Agents:     agents,
		Budgets:    budgets,
		Hierarchy:  hierarchy,
		Messages:   messages,
		Templates:  templates,
		Workflows:  engine,
		Workspaces: workspaces,
		Pool:       pool,
		poller:     workflow.NewPoller(db.Client, engine, cfg.Kernel),
		sweeper:    sweeper,
	}, nil
}

// Config returns the configuration the kernel was built with.
func (k *Kernel) Config() *config.Config {
	return k.cfg
}

// DB returns the database client for health checks.
func (k *Kernel) DB() *database.Client {
	return k.db
}

// Registry returns the kernel's Prometheus registry.
func (k *Kernel) Registry() *prometheus.Registry {
	return k.registry
}

// Start recovers orphans from a previous run, then launches the worker
// pool, workflow poller, and retention sweeper.
func (k *Kernel) Start(ctx context.Context) error {
	if k.started {
		return nil
	}

	// One-time recovery before workers begin claiming: agents left
	// executing by a crashed process fail here, which reclaims budgets
	// and lets their workflows settle.
	if err := queue.CleanupStartupOrphans(ctx, k.Agents, k.db.Client, k.cfg.Kernel.OrphanThreshold); err != nil {
		slog.Error("Startup orphan recovery failed", "error", err)
		// Non-fatal — the periodic scan will retry.
	}

	if err := k.Pool.Start(ctx); err != nil {
		return fmt.Errorf("failed to start worker pool: %w", err)
	}
	k.poller.Start(ctx)
	if k.sweeper != nil {
		k.sweeper.Start(ctx)
	}

	k.started = true
	slog.Info("Kernel started",
		"pod_id", k.podID,
		"workers", k.cfg.Kernel.WorkerCount,
		"workspaces_enabled", k.Workspaces != nil)
	return nil
}

// Stop shuts the background loops down in reverse dependency order and
// waits for in-flight executions to settle or be cancelled.
func (k *Kernel) Stop() {
	if !k.started {
		return
	}
	if k.sweeper != nil {
		k.sweeper.Stop()
	}
	k.poller.Stop()
	k.Pool.Stop()
	k.started = false
	slog.Info("Kernel stopped", "pod_id", k.podID)
}
