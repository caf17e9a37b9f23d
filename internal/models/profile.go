package models

import (
	"time"

	"github.com/lib/pq"
)

// Profile holds the presentation and filter-relevant attributes of a user.
// Exactly one profile per user.
type Profile struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	DisplayName string         `gorm:"size:100;not null" json:"display_name"`
	Bio         string         `gorm:"type:text" json:"bio"`
	HeightCm    *int           `gorm:"index" json:"height_cm"`
	WeightKg    *int           `gorm:"index" json:"weight_kg"`
	PhotoURL    string         `gorm:"size:200" json:"photo_url"`
	Gender      string         `gorm:"size:32;index" json:"gender"`
	Interests   pq.StringArray `gorm:"type:text[]" json:"interests"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// DiscoverFilter carries the optional range criteria for profile discovery.
// Nil fields are not applied.
type DiscoverFilter struct {
	MinHeightCm *int
	MaxHeightCm *int
	MinWeightKg *int
	MaxWeightKg *int
	Genders     []string
	Limit       int
}
