package handler

import (
	"errors"
	"net/http"

	"pairgogo/backend/internal/messaging"
	"pairgogo/backend/internal/models"
	"pairgogo/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type sendMessageRequest struct {
	MatchID  uint   `json:"match_id" binding:"required"`
	SenderID uint   `json:"sender_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// SendMessage persists a chat message and fans it out to the match's live
// connections. Broadcast delivery never affects the response.
func (h *Handler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.Messaging.Send(req.MatchID, req.SenderID, req.Content)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}
	if errors.Is(err, messaging.ErrNotParticipant) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Sender is not a participant of the match"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}
	c.JSON(http.StatusOK, msg)
}

// ListMessages returns the recent message window for a match, oldest first.
func (h *Handler) ListMessages(c *gin.Context) {
	matchID, ok := parseUintParam(c, "match_id")
	if !ok {
		return
	}

	messages, err := h.Messaging.List(matchID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list messages"})
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	c.JSON(http.StatusOK, messages)
}

// MarkMessageRead flags a single message as read.
func (h *Handler) MarkMessageRead(c *gin.Context) {
	messageID, ok := parseUintParam(c, "message_id")
	if !ok {
		return
	}

	err := h.Messaging.MarkRead(messageID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark message read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
