package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getWorkflowHandler handles GET /api/v1/workflows/:id.
// Returns the graph row and its nodes in position order.
func (s *Server) getWorkflowHandler(c *gin.Context) {
	graphID := c.Param("id")

	graph, err := s.kernel.Workflows.Get(c.Request.Context(), graphID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	nodes, err := s.kernel.Workflows.Nodes(c.Request.Context(), graphID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"graph": graph, "nodes": nodes})
}

// workflowProgressHandler handles GET /api/v1/workflows/:id/progress.
func (s *Server) workflowProgressHandler(c *gin.Context) {
	progress, err := s.kernel.Workflows.Progress(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// validateWorkflowHandler handles POST /api/v1/workflows/:id/validate.
func (s *Server) validateWorkflowHandler(c *gin.Context) {
	result, err := s.kernel.Workflows.Validate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}

// executeWorkflowHandler handles POST /api/v1/workflows/:id/execute.
func (s *Server) executeWorkflowHandler(c *gin.Context) {
	graphID := c.Param("id")
	if err := s.kernel.Workflows.Execute(c.Request.Context(), graphID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"graph_id": graphID, "status": "active"})
}

// pauseWorkflowHandler handles POST /api/v1/workflows/:id/pause.
func (s *Server) pauseWorkflowHandler(c *gin.Context) {
	graphID := c.Param("id")
	if err := s.kernel.Workflows.Pause(c.Request.Context(), graphID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"graph_id": graphID, "status": "paused"})
}

// resumeWorkflowHandler handles POST /api/v1/workflows/:id/resume.
func (s *Server) resumeWorkflowHandler(c *gin.Context) {
	graphID := c.Param("id")
	if err := s.kernel.Workflows.Resume(c.Request.Context(), graphID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"graph_id": graphID, "status": "active"})
}

// terminateWorkflowHandler handles POST /api/v1/workflows/:id/terminate.
func (s *Server) terminateWorkflowHandler(c *gin.Context) {
	var req TerminateRequest
	_ = c.ShouldBindJSON(&req)

	graphID := c.Param("id")
	if err := s.kernel.Workflows.Terminate(c.Request.Context(), graphID, req.Reason); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"graph_id": graphID, "status": "terminated"})
}
