package handler

import (
	"errors"
	"net/http"

	"pairgogo/backend/internal/matching"
	"pairgogo/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type swipeRequest struct {
	SwiperUserID uint   `json:"swiper_user_id" binding:"required"`
	TargetUserID uint   `json:"target_user_id" binding:"required"`
	Direction    string `json:"direction" binding:"required"`
}

// Swipe records a swipe and returns the match for the pair, or null for a
// left swipe. Repeat right swipes return the same match.
func (h *Handler) Swipe(c *gin.Context) {
	var req swipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.Matching.Swipe(req.SwiperUserID, req.TargetUserID, req.Direction)
	if errors.Is(err, matching.ErrInvalidDirection) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be 'right' or 'left'"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve swipe"})
		return
	}
	if match == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, match)
}

// ListMatches returns all matches involving a user, newest first.
func (h *Handler) ListMatches(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}

	matches, err := h.Matching.ListMatches(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list matches"})
		return
	}
	if matches == nil {
		matches = []models.Match{}
	}
	c.JSON(http.StatusOK, matches)
}
