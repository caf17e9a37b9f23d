package models

import "time"

// Match is an undirected pairing between two users. The pair is stored in
// canonical order (UserAID < UserBID) and the composite unique index
// guarantees at most one row per unordered pair.
type Match struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserAID   uint      `gorm:"uniqueIndex:uq_match_pair;index;not null" json:"user_a_id"`
	UserBID   uint      `gorm:"uniqueIndex:uq_match_pair;index;not null" json:"user_b_id"`
	MatchedAt time.Time `json:"matched_at"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CanonicalPair orders two user IDs so that the smaller one always lands in
// the user_a position, regardless of who swiped first.
func CanonicalPair(x, y uint) (a, b uint) {
	if x <= y {
		return x, y
	}
	return y, x
}

// HasUser reports whether the given user is a participant of the match.
func (m *Match) HasUser(userID uint) bool {
	return m.UserAID == userID || m.UserBID == userID
}

// OtherUserID returns the peer of the given participant. The second return
// value is false when the user is not part of the match.
func (m *Match) OtherUserID(userID uint) (uint, bool) {
	if m.UserAID == userID {
		return m.UserBID, true
	}
	if m.UserBID == userID {
		return m.UserAID, true
	}
	return 0, false
}
