package handler

import (
	"net/http"
	"strconv"

	"pairgogo/backend/internal/chathub"
	"pairgogo/backend/internal/config"
	"pairgogo/backend/internal/matching"
	"pairgogo/backend/internal/messaging"
	"pairgogo/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler bundles the services every route needs.
type Handler struct {
	Hub       *chathub.Hub
	Matching  *matching.Service
	Messaging *messaging.Service
	Storage   storage.Storage
	Cfg       *config.Config
}

func NewHandler(hub *chathub.Hub, m *matching.Service, msg *messaging.Service, s storage.Storage, cfg *config.Config) *Handler {
	return &Handler{
		Hub:       hub,
		Matching:  m,
		Messaging: msg,
		Storage:   s,
		Cfg:       cfg,
	}
}

// parseUintParam reads a numeric path parameter, answering 400 itself when
// the value is not a positive integer.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return uint(v), true
}
