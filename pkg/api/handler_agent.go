package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maestro-orch/maestro/ent/agent"
	"github.com/maestro-orch/maestro/pkg/models"
)

// spawnAgentHandler handles POST /api/v1/agents.
func (s *Server) spawnAgentHandler(c *gin.Context) {
	var req models.SpawnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := s.kernel.Agents.Spawn(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// getAgentHandler handles GET /api/v1/agents/:id.
func (s *Server) getAgentHandler(c *gin.Context) {
	a, err := s.kernel.Agents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// listAgentsHandler handles GET /api/v1/agents.
func (s *Server) listAgentsHandler(c *gin.Context) {
	filters := models.AgentFilters{
		Limit: 50,
	}

	if v := c.Query("status"); v != "" {
		if err := agent.StatusValidator(agent.Status(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
		filters.Status = v
	}
	filters.Role = c.Query("role")
	filters.ParentID = c.Query("parent_id")
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	agents, err := s.kernel.Agents.List(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents, "count": len(agents)})
}

// terminateAgentHandler handles POST /api/v1/agents/:id/terminate.
// Terminates the agent and its entire subtree, deepest first.
func (s *Server) terminateAgentHandler(c *gin.Context) {
	var req TerminateRequest
	// Body is optional; an empty reason is fine.
	_ = c.ShouldBindJSON(&req)

	agentID := c.Param("id")
	if err := s.kernel.Agents.Terminate(c.Request.Context(), agentID, req.Reason); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agent_id": agentID, "status": "terminated"})
}

// agentTreeHandler handles GET /api/v1/agents/:id/tree.
func (s *Server) agentTreeHandler(c *gin.Context) {
	tree, err := s.kernel.Agents.Tree(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

// agentChildrenHandler handles GET /api/v1/agents/:id/children.
func (s *Server) agentChildrenHandler(c *gin.Context) {
	children, err := s.kernel.Hierarchy.Children(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": children, "count": len(children)})
}

// agentAncestorsHandler handles GET /api/v1/agents/:id/ancestors.
// Ordered nearest first, root last.
func (s *Server) agentAncestorsHandler(c *gin.Context) {
	ancestors, err := s.kernel.Hierarchy.Ancestors(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": ancestors, "count": len(ancestors)})
}

// agentBudgetHandler handles GET /api/v1/agents/:id/budget.
func (s *Server) agentBudgetHandler(c *gin.Context) {
	b, err := s.kernel.Budgets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BudgetSnapshot{
		AgentID:   b.AgentID,
		Allocated: b.Allocated,
		Used:      b.Used,
		Reserved:  b.Reserved,
		Remaining: b.Allocated - b.Used - b.Reserved,
		Reclaimed: b.Reclaimed,
	})
}
