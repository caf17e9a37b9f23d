// Package mocks provides a testify mock of storage.Storage shared by the
// service, hub and handler tests.
package mocks

import (
	"pairgogo/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// Storage is a mock implementation of storage.Storage.
type Storage struct {
	mock.Mock
}

// --- Users ---

func (m *Storage) GetOrCreateUser(username, email string) (*models.User, error) {
	args := m.Called(username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *Storage) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// --- Profiles ---

func (m *Storage) CreateProfile(p *models.Profile) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *Storage) GetProfileByUserID(userID uint) (*models.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *Storage) SaveProfile(p *models.Profile) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *Storage) DeleteProfileByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *Storage) DiscoverProfiles(f models.DiscoverFilter) ([]models.Profile, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

// --- Matches ---

func (m *Storage) CreateMatch(match *models.Match) error {
	args := m.Called(match)
	return args.Error(0)
}

func (m *Storage) FindMatchByPair(a, b uint) (*models.Match, error) {
	args := m.Called(a, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *Storage) GetMatchByID(id uint) (*models.Match, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *Storage) ListMatchesForUser(userID uint) ([]models.Match, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Match), args.Error(1)
}

// --- Messages ---

func (m *Storage) CreateMessage(msg *models.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *Storage) ListMessages(matchID uint, limit int) ([]models.Message, error) {
	args := m.Called(matchID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *Storage) MarkMessageRead(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// --- Categories and filters ---

func (m *Storage) ListHeightCategories() ([]models.HeightCategory, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HeightCategory), args.Error(1)
}

func (m *Storage) ListWeightCategories() ([]models.WeightCategory, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WeightCategory), args.Error(1)
}

func (m *Storage) ListFilterPresets(limit int) ([]models.FilterPreset, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FilterPreset), args.Error(1)
}

func (m *Storage) CreateFilterPreset(p *models.FilterPreset) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *Storage) GetFilterSettings(userID uint) (*models.FilterSettings, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FilterSettings), args.Error(1)
}

func (m *Storage) UpsertFilterSettings(s *models.FilterSettings) error {
	args := m.Called(s)
	return args.Error(0)
}

// --- Presence ---

func (m *Storage) AddOnlineUser(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *Storage) RemoveOnlineUser(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *Storage) GetOnlineUsers() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Event relay ---

func (m *Storage) PublishEvent(payload []byte) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *Storage) SubscribeEvents() *redis.PubSub {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*redis.PubSub)
}
