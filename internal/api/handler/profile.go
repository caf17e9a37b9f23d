package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pairgogo/backend/internal/config"
	"pairgogo/backend/internal/models"
	"pairgogo/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type profileCreateRequest struct {
	UserID      uint     `json:"user_id" binding:"required"`
	DisplayName string   `json:"display_name" binding:"required"`
	Bio         string   `json:"bio"`
	HeightCm    *int     `json:"height_cm"`
	WeightKg    *int     `json:"weight_kg"`
	PhotoURL    string   `json:"photo_url"`
	Gender      string   `json:"gender" binding:"required"`
	Interests   []string `json:"interests"`
}

type profileUpdateRequest struct {
	DisplayName *string   `json:"display_name"`
	Bio         *string   `json:"bio"`
	HeightCm    *int      `json:"height_cm"`
	WeightKg    *int      `json:"weight_kg"`
	PhotoURL    *string   `json:"photo_url"`
	Gender      *string   `json:"gender"`
	Interests   *[]string `json:"interests"`
}

// CreateProfile creates the single profile for a user.
func (h *Handler) CreateProfile(c *gin.Context) {
	var req profileCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Storage.GetProfileByUserID(req.UserID); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile already exists for user"})
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check profile"})
		return
	}

	profile := &models.Profile{
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		HeightCm:    req.HeightCm,
		WeightKg:    req.WeightKg,
		PhotoURL:    req.PhotoURL,
		Gender:      req.Gender,
		Interests:   req.Interests,
	}
	if err := h.Storage.CreateProfile(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfile fetches a profile by the owning user id.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}

	profile, err := h.Storage.GetProfileByUserID(userID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile applies a partial patch to a profile's mutable fields.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.Storage.GetProfileByUserID(userID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get profile"})
		return
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.HeightCm != nil {
		profile.HeightCm = req.HeightCm
	}
	if req.WeightKg != nil {
		profile.WeightKg = req.WeightKg
	}
	if req.PhotoURL != nil {
		profile.PhotoURL = *req.PhotoURL
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.Interests != nil {
		profile.Interests = *req.Interests
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := h.Storage.SaveProfile(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteProfile removes a profile permanently.
func (h *Handler) DeleteProfile(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}

	err := h.Storage.DeleteProfileByUserID(userID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete profile"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DiscoverProfiles lists candidate profiles matching the optional range
// filters from the query string.
func (h *Handler) DiscoverProfiles(c *gin.Context) {
	filter := models.DiscoverFilter{Limit: config.DiscoverDefaultLimit}

	var bad bool
	filter.MinHeightCm = intQuery(c, "min_height_cm", &bad)
	filter.MaxHeightCm = intQuery(c, "max_height_cm", &bad)
	filter.MinWeightKg = intQuery(c, "min_weight_kg", &bad)
	filter.MaxWeightKg = intQuery(c, "max_weight_kg", &bad)
	if bad {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filter bounds must be integers"})
		return
	}

	if genders := c.Query("genders"); genders != "" {
		for _, g := range strings.Split(genders, ",") {
			if g = strings.TrimSpace(g); g != "" {
				filter.Genders = append(filter.Genders, g)
			}
		}
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		if limit > config.DiscoverMaxLimit {
			limit = config.DiscoverMaxLimit
		}
		filter.Limit = limit
	}

	profiles, err := h.Storage.DiscoverProfiles(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to discover profiles"})
		return
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}
	c.JSON(http.StatusOK, profiles)
}

// intQuery parses an optional integer query parameter, flagging bad input.
func intQuery(c *gin.Context, name string, bad *bool) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*bad = true
		return nil
	}
	return &v
}
