// Package api exposes the kernel over HTTP: agent lifecycle, budgets,
// messaging, workflow templates and graphs, workspaces, and health.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maestro-orch/maestro/pkg/kernel"
)

// Server is the HTTP front of the kernel.
type Server struct {
	kernel     *kernel.Kernel
	engine     *gin.Engine
	httpServer *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(k *kernel.Kernel) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		kernel: k,
		engine: engine,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.healthHandler)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		s.kernel.Registry(), promhttp.HandlerOpts{})))

	v1 := s.engine.Group("/api/v1")

	agents := v1.Group("/agents")
	agents.POST("", s.spawnAgentHandler)
	agents.GET("", s.listAgentsHandler)
	agents.GET("/:id", s.getAgentHandler)
	agents.POST("/:id/terminate", s.terminateAgentHandler)
	agents.GET("/:id/tree", s.agentTreeHandler)
	agents.GET("/:id/children", s.agentChildrenHandler)
	agents.GET("/:id/ancestors", s.agentAncestorsHandler)
	agents.GET("/:id/budget", s.agentBudgetHandler)
	agents.GET("/:id/messages", s.receiveMessagesHandler)
	agents.GET("/:id/workspace", s.getWorkspaceHandler)
	agents.GET("/:id/workspace/diff", s.workspaceDiffHandler)
	agents.POST("/:id/workspace/merge", s.mergeWorkspaceHandler)
	agents.POST("/:id/workspace/abandon", s.abandonWorkspaceHandler)

	messages := v1.Group("/messages")
	messages.POST("", s.sendMessageHandler)
	messages.POST("/:id/processed", s.markProcessedHandler)
	messages.POST("/:id/failed", s.markFailedHandler)

	templates := v1.Group("/workflow-templates")
	templates.POST("", s.createTemplateHandler)
	templates.GET("", s.listTemplatesHandler)
	templates.GET("/:id", s.getTemplateHandler)
	templates.DELETE("/:id", s.deleteTemplateHandler)
	templates.POST("/:id/instantiate", s.instantiateTemplateHandler)

	workflows := v1.Group("/workflows")
	workflows.GET("/:id", s.getWorkflowHandler)
	workflows.GET("/:id/progress", s.workflowProgressHandler)
	workflows.POST("/:id/validate", s.validateWorkflowHandler)
	workflows.POST("/:id/execute", s.executeWorkflowHandler)
	workflows.POST("/:id/pause", s.pauseWorkflowHandler)
	workflows.POST("/:id/resume", s.resumeWorkflowHandler)
	workflows.POST("/:id/terminate", s.terminateWorkflowHandler)
}

// Handler returns the underlying http.Handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start begins serving on the given address. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
