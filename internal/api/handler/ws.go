package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pairgogo/backend/internal/chathub"
	"pairgogo/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeChatWS upgrades the connection and subscribes it to the match's
// broadcast channel. The optional user_id query parameter identifies the
// client for presence; with CHAT_ENFORCE_MEMBERSHIP it becomes mandatory
// and must belong to the match.
func (h *Handler) ServeChatWS(c *gin.Context) {
	matchID, ok := parseUintParam(c, "match_id")
	if !ok {
		return
	}
	userID := c.Query("user_id")

	if h.Cfg.EnforceMembership {
		uid, err := strconv.ParseUint(userID, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_id query parameter required"})
			return
		}
		match, err := h.Storage.GetMatchByID(matchID)
		if errors.Is(err, storage.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check match"})
			return
		}
		if !match.HasUser(uint(uid)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not a participant of this match"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := chathub.NewWebSocketClient(h.Hub, conn, matchID, userID)
	h.Hub.RegisterCh <- client
	client.Run()
}

// GetPresence returns the ids of users with at least one open chat
// connection on any instance sharing the Redis presence set.
func (h *Handler) GetPresence(c *gin.Context) {
	users, err := h.Storage.GetOnlineUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get presence"})
		return
	}
	if users == nil {
		users = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"online": users})
}
