package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// workspacesEnabled guards workspace routes when isolation is disabled.
func (s *Server) workspacesEnabled(c *gin.Context) bool {
	if s.kernel.Workspaces == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "workspace isolation is disabled"})
		return false
	}
	return true
}

// getWorkspaceHandler handles GET /api/v1/agents/:id/workspace.
func (s *Server) getWorkspaceHandler(c *gin.Context) {
	if !s.workspacesEnabled(c) {
		return
	}
	ws, err := s.kernel.Workspaces.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ws)
}

// workspaceDiffHandler handles GET /api/v1/agents/:id/workspace/diff.
// Returns the agent's uncommitted and committed changes against the base
// commit its worktree branched from.
func (s *Server) workspaceDiffHandler(c *gin.Context) {
	if !s.workspacesEnabled(c) {
		return
	}
	diff, err := s.kernel.Workspaces.Diff(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agent_id": c.Param("id"), "diff": diff})
}

// mergeWorkspaceHandler handles POST /api/v1/agents/:id/workspace/merge.
func (s *Server) mergeWorkspaceHandler(c *gin.Context) {
	if !s.workspacesEnabled(c) {
		return
	}
	agentID := c.Param("id")
	if err := s.kernel.Workspaces.Merge(c.Request.Context(), agentID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agent_id": agentID, "status": "merged"})
}

// abandonWorkspaceHandler handles POST /api/v1/agents/:id/workspace/abandon.
func (s *Server) abandonWorkspaceHandler(c *gin.Context) {
	if !s.workspacesEnabled(c) {
		return
	}
	agentID := c.Param("id")
	if err := s.kernel.Workspaces.Abandon(c.Request.Context(), agentID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agent_id": agentID, "status": "abandoned"})
}
