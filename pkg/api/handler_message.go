package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// sendMessageHandler handles POST /api/v1/messages.
func (s *Server) sendMessageHandler(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := s.kernel.Messages.Send(c.Request.Context(),
		req.SenderID, req.RecipientID, req.Payload, req.Priority, req.ThreadID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// receiveMessagesHandler handles GET /api/v1/agents/:id/messages.
// Returns pending messages in delivery order and marks them delivered:
// over HTTP the hand-off to the caller is the delivery.
func (s *Server) receiveMessagesHandler(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	msgs, err := s.kernel.Messages.Receive(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	for _, msg := range msgs {
		if err := s.kernel.Messages.MarkDelivered(c.Request.Context(), msg.ID); err != nil {
			respondServiceError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs, "count": len(msgs)})
}

// markProcessedHandler handles POST /api/v1/messages/:id/processed.
func (s *Server) markProcessedHandler(c *gin.Context) {
	msgID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message id must be an integer"})
		return
	}

	if err := s.kernel.Messages.MarkProcessed(c.Request.Context(), msgID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message_id": msgID, "status": "processed"})
}

// markFailedHandler handles POST /api/v1/messages/:id/failed.
func (s *Server) markFailedHandler(c *gin.Context) {
	msgID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message id must be an integer"})
		return
	}

	var req FailMessageRequest
	_ = c.ShouldBindJSON(&req)

	if err := s.kernel.Messages.MarkFailed(c.Request.Context(), msgID, req.Reason); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message_id": msgID, "status": "failed"})
}
