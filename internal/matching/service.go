// Package matching turns swipe actions into canonical, deduplicated match
// records.
package matching

import (
	"errors"
	"log"
	"time"

	"pairgogo/backend/internal/metrics"
	"pairgogo/backend/internal/models"
	"pairgogo/backend/internal/storage"
)

// Swipe directions accepted by the resolver.
const (
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// ErrInvalidDirection is returned for any direction outside {left, right}.
var ErrInvalidDirection = errors.New("matching: direction must be 'left' or 'right'")

// Service resolves swipes against the match store.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new match resolver.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Swipe records a swipe action. A left swipe is not tracked and yields no
// match. A right swipe is treated as unconditionally mutual: the canonical
// pair is materialized immediately, and repeat swipes in either direction
// always resolve to the same row.
//
// The insert runs first and a duplicate-key failure falls back to fetching
// the existing row, so two concurrent right swipes on the same pair cannot
// create two matches or surface a conflict to either caller.
func (s *Service) Swipe(swiperID, targetID uint, direction string) (*models.Match, error) {
	if direction != DirectionLeft && direction != DirectionRight {
		return nil, ErrInvalidDirection
	}
	if direction == DirectionLeft {
		return nil, nil
	}

	a, b := models.CanonicalPair(swiperID, targetID)

	if existing, err := s.Storage.FindMatchByPair(a, b); err == nil {
		return existing, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	match := &models.Match{
		UserAID:   a,
		UserBID:   b,
		MatchedAt: time.Now().UTC(),
		IsActive:  true,
	}
	err := s.Storage.CreateMatch(match)
	if errors.Is(err, storage.ErrDuplicateMatch) {
		// Lost the race against a concurrent swipe on the same pair.
		return s.Storage.FindMatchByPair(a, b)
	}
	if err != nil {
		return nil, err
	}

	metrics.MatchesCreatedTotal.Inc()
	log.Printf("Match created: users (%d,%d) match=%d", a, b, match.ID)
	return match, nil
}

// ListMatches returns every match the user participates in, newest first.
func (s *Service) ListMatches(userID uint) ([]models.Match, error) {
	return s.Storage.ListMatchesForUser(userID)
}
