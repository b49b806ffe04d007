package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maestro-orch/maestro/pkg/models"
)

// createTemplateHandler handles POST /api/v1/workflow-templates.
func (s *Server) createTemplateHandler(c *gin.Context) {
	var req models.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tpl, err := s.kernel.Templates.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// listTemplatesHandler handles GET /api/v1/workflow-templates.
func (s *Server) listTemplatesHandler(c *gin.Context) {
	tpls, err := s.kernel.Templates.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": tpls, "count": len(tpls)})
}

// getTemplateHandler handles GET /api/v1/workflow-templates/:id.
func (s *Server) getTemplateHandler(c *gin.Context) {
	tpl, err := s.kernel.Templates.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// deleteTemplateHandler handles DELETE /api/v1/workflow-templates/:id.
func (s *Server) deleteTemplateHandler(c *gin.Context) {
	if err := s.kernel.Templates.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// instantiateTemplateHandler handles POST /api/v1/workflow-templates/:id/instantiate.
// Creates a workflow graph plus its coordinator agent; the graph stays
// pending until validated and executed.
func (s *Server) instantiateTemplateHandler(c *gin.Context) {
	var req InstantiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	graph, err := s.kernel.Templates.Instantiate(c.Request.Context(),
		c.Param("id"), req.Task, req.TotalBudget)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, graph)
}
