package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maestro-orch/maestro/pkg/database"
	"github.com/maestro-orch/maestro/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /healthz. Only the kernel's own components are
// checked; the executor service is excluded so an unhealthy runner does not
// get this process restarted.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := healthStatusHealthy
	checks := make(map[string]HealthCheck)

	dbHealth, err := database.Health(ctx, s.kernel.DB().DB())
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	poolHealth := s.kernel.Pool.Health()
	if poolHealth != nil && !poolHealth.IsHealthy {
		if status == healthStatusHealthy {
			status = healthStatusDegraded
		}
		checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: poolHealth.DBError}
	} else {
		checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthResponse{
		Status:     status,
		Version:    version.GitCommit,
		Checks:     checks,
		Database:   dbHealth,
		WorkerPool: poolHealth,
	})
}
