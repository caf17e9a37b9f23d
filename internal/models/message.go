package models

import "time"

// Message is an immutable chat entry scoped to exactly one match. SentAt is
// assigned at insert time and is the authoritative ordering key. IsRead is
// the only field that may change after creation.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MatchID   uint      `gorm:"index;not null" json:"match_id"`
	SenderID  uint      `gorm:"index;not null" json:"sender_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	SentAt    time.Time `gorm:"index;not null" json:"sent_at"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
