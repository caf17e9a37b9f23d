package models

import (
	"time"

	"github.com/lib/pq"
)

// HeightCategory is a named preset height range. Nil bounds are open ended.
type HeightCategory struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	MinCm *int   `json:"min_cm"`
	MaxCm *int   `json:"max_cm"`
}

// WeightCategory is a named preset weight range. Nil bounds are open ended.
type WeightCategory struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	MinKg *int   `json:"min_kg"`
	MaxKg *int   `json:"max_kg"`
}

// FilterPreset is a shareable, named set of discovery criteria.
type FilterPreset struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	MinHeightCm *int           `json:"min_height_cm"`
	MaxHeightCm *int           `json:"max_height_cm"`
	MinWeightKg *int           `json:"min_weight_kg"`
	MaxWeightKg *int           `json:"max_weight_kg"`
	Genders     pq.StringArray `gorm:"type:text[]" json:"genders"`
	IsPublic    bool           `gorm:"default:true" json:"is_public"`
	OwnerID     *uint          `json:"owner_id"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
}

// FilterSettings stores a user's currently selected category-based filters.
// One row per user, upserted in place.
type FilterSettings struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	UserID           uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	HeightCategoryID *uint          `json:"height_category_id"`
	WeightCategoryID *uint          `json:"weight_category_id"`
	Genders          pq.StringArray `gorm:"type:text[]" json:"genders"`
	CreatedAt        time.Time      `json:"-"`
	UpdatedAt        time.Time      `json:"-"`
}
