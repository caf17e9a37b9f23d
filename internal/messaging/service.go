// Package messaging is the append-only chat ledger for a match: it persists
// messages and hands them to the broadcast hub strictly after commit.
package messaging

import (
	"errors"
	"time"

	"pairgogo/backend/internal/config"
	"pairgogo/backend/internal/metrics"
	"pairgogo/backend/internal/models"
	"pairgogo/backend/internal/storage"
)

// ErrNotParticipant is returned when the membership guard is enabled and the
// sender is not part of the target match.
var ErrNotParticipant = errors.New("messaging: sender is not a participant of the match")

// Broadcaster is the capability the ledger invokes after a successful
// commit. The hub implements it; tests inject fakes.
type Broadcaster interface {
	BroadcastToMatch(matchID uint, event models.Event)
}

// Service appends and lists chat messages for a match.
type Service struct {
	Storage     storage.Storage
	Broadcaster Broadcaster

	// EnforceMembership rejects senders that are not participants of the
	// match. Off by default: the reference behavior accepts any sender id.
	EnforceMembership bool
}

// NewService creates a new message ledger.
func NewService(s storage.Storage, b Broadcaster) *Service {
	return &Service{Storage: s, Broadcaster: b}
}

// Send persists a message for an existing match and pushes exactly one
// "message" event to the match's channel. Listeners never see a message
// before it is durably committed; delivery failures never surface here.
func (s *Service) Send(matchID, senderID uint, content string) (*models.Message, error) {
	match, err := s.Storage.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}
	if s.EnforceMembership && !match.HasUser(senderID) {
		return nil, ErrNotParticipant
	}

	msg := &models.Message{
		MatchID:  matchID,
		SenderID: senderID,
		Content:  content,
		SentAt:   time.Now().UTC(),
		IsRead:   false,
	}
	if err := s.Storage.CreateMessage(msg); err != nil {
		return nil, err
	}
	metrics.MessagesTotal.Inc()

	if s.Broadcaster != nil {
		s.Broadcaster.BroadcastToMatch(matchID, models.NewMessageEvent(msg))
	}
	return msg, nil
}

// List returns the recent window of messages for a match, ascending by sent
// time, capped at the fixed page limit.
func (s *Service) List(matchID uint) ([]models.Message, error) {
	return s.Storage.ListMessages(matchID, config.MessagePageLimit)
}

// MarkRead flags a single message as read.
func (s *Service) MarkRead(messageID uint) error {
	return s.Storage.MarkMessageRead(messageID)
}
