package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SendMessageRequest struct {
	SenderID   string `json:"senderId" binding:"required"`
	ReceiverID string `json:"receiverId" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

// SendMessage persists one chat message with a server-assigned timestamp.
// This is the durable path only; live delivery runs independently over the
// websocket relay and neither path depends on the other succeeding.
func (h *Handler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	senderID, err := primitive.ObjectIDFromHex(req.SenderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sender ID"})
		return
	}
	receiverID, err := primitive.ObjectIDFromHex(req.ReceiverID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receiver ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	msg, err := h.Messages.Insert(ctx, senderID, receiverID, req.Message)
	if err != nil {
		log.Error().Err(err).Msg("chat: message insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message sent successfully!",
		"data":    msg,
	})
}

// GetHistory returns the full conversation between the caller and the given
// counterparty, oldest first. Both participants see the identical list.
func (h *Handler) GetHistory(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	receiverID, err := primitive.ObjectIDFromHex(c.Param("receiverId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receiver ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	messages, err := h.Messages.History(ctx, callerID, receiverID)
	if err != nil {
		log.Error().Err(err).Msg("chat: history query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}
