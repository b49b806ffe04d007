// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/maestro-orch/maestro/pkg/config"
	"github.com/maestro-orch/maestro/pkg/workspace"
)

// Service periodically enforces workspace retention: merged and abandoned
// worktrees past the retention window are removed from disk and marked
// cleaned up. All operations are idempotent and safe to run from multiple
// pods.
type Service struct {
	config     *config.WorkspaceConfig
	workspaces *workspace.Manager

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.WorkspaceConfig, workspaces *workspace.Manager) *Service {
	return &Service{
		config:     cfg,
		workspaces: workspaces,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"retention_days", s.config.RetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweepWorkspaces(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepWorkspaces(ctx)
		}
	}
}

func (s *Service) sweepWorkspaces(_ context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.RetentionDays)
	count, err := s.workspaces.CleanupExpired(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: workspace cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up expired workspaces", "count", count)
	}
}
