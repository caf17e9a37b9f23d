package handler

import (
	"errors"
	"net/http"

	"pairgogo/backend/internal/config"
	"pairgogo/backend/internal/models"
	"pairgogo/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// ListHeightCategories returns the preset height ranges.
func (h *Handler) ListHeightCategories(c *gin.Context) {
	categories, err := h.Storage.ListHeightCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list height categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListWeightCategories returns the preset weight ranges.
func (h *Handler) ListWeightCategories(c *gin.Context) {
	categories, err := h.Storage.ListWeightCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list weight categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListFilterPresets returns the most recently updated presets.
func (h *Handler) ListFilterPresets(c *gin.Context) {
	presets, err := h.Storage.ListFilterPresets(config.PresetPageLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list presets"})
		return
	}
	if presets == nil {
		presets = []models.FilterPreset{}
	}
	c.JSON(http.StatusOK, presets)
}

type filterPresetRequest struct {
	Name        string   `json:"name" binding:"required"`
	MinHeightCm *int     `json:"min_height_cm"`
	MaxHeightCm *int     `json:"max_height_cm"`
	MinWeightKg *int     `json:"min_weight_kg"`
	MaxWeightKg *int     `json:"max_weight_kg"`
	Genders     []string `json:"genders"`
	IsPublic    *bool    `json:"is_public"`
	OwnerID     *uint    `json:"owner_id"`
}

// CreateFilterPreset stores a new named filter preset.
func (h *Handler) CreateFilterPreset(c *gin.Context) {
	var req filterPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset := &models.FilterPreset{
		Name:        req.Name,
		MinHeightCm: req.MinHeightCm,
		MaxHeightCm: req.MaxHeightCm,
		MinWeightKg: req.MinWeightKg,
		MaxWeightKg: req.MaxWeightKg,
		Genders:     req.Genders,
		IsPublic:    true,
		OwnerID:     req.OwnerID,
	}
	if req.IsPublic != nil {
		preset.IsPublic = *req.IsPublic
	}

	if err := h.Storage.CreateFilterPreset(preset); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create preset"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetFilterSettings returns the user's current category-based filters.
func (h *Handler) GetFilterSettings(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}

	settings, err := h.Storage.GetFilterSettings(userID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Filter settings not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get filter settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

type filterSettingsRequest struct {
	HeightCategoryID *uint    `json:"height_category_id"`
	WeightCategoryID *uint    `json:"weight_category_id"`
	Genders          []string `json:"genders"`
}

// PutFilterSettings creates or replaces the user's filter settings.
func (h *Handler) PutFilterSettings(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}

	var req filterSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := &models.FilterSettings{
		UserID:           userID,
		HeightCategoryID: req.HeightCategoryID,
		WeightCategoryID: req.WeightCategoryID,
		Genders:          req.Genders,
	}
	if err := h.Storage.UpsertFilterSettings(settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save filter settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}
