package storage

import (
	"context"
	"errors"
	"log"

	"pairgogo/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Sentinel errors surfaced by the storage layer. Callers check these with
// errors.Is instead of inspecting gorm internals.
var (
	// ErrNotFound signals that a referenced row does not exist.
	ErrNotFound = errors.New("storage: record not found")
	// ErrDuplicateMatch signals a unique-constraint hit on the canonical
	// (user_a_id, user_b_id) pair. The resolver recovers by re-fetching.
	ErrDuplicateMatch = errors.New("storage: match already exists for pair")
)

// Redis keys and channels.
const (
	presenceKey  = "presence:online"
	EventChannel = "chat:events"
)

type Storage interface {
	// Users
	GetOrCreateUser(username, email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)

	// Profiles
	CreateProfile(p *models.Profile) error
	GetProfileByUserID(userID uint) (*models.Profile, error)
	SaveProfile(p *models.Profile) error
	DeleteProfileByUserID(userID uint) error
	DiscoverProfiles(f models.DiscoverFilter) ([]models.Profile, error)

	// Matches
	CreateMatch(m *models.Match) error
	FindMatchByPair(a, b uint) (*models.Match, error)
	GetMatchByID(id uint) (*models.Match, error)
	ListMatchesForUser(userID uint) ([]models.Match, error)

	// Messages
	CreateMessage(msg *models.Message) error
	ListMessages(matchID uint, limit int) ([]models.Message, error)
	MarkMessageRead(id uint) error

	// Categories and filters
	ListHeightCategories() ([]models.HeightCategory, error)
	ListWeightCategories() ([]models.WeightCategory, error)
	ListFilterPresets(limit int) ([]models.FilterPreset, error)
	CreateFilterPreset(p *models.FilterPreset) error
	GetFilterSettings(userID uint) (*models.FilterSettings, error)
	UpsertFilterSettings(s *models.FilterSettings) error

	// Presence (Redis)
	AddOnlineUser(userID string) error
	RemoveOnlineUser(userID string) error
	GetOnlineUsers() ([]string, error)

	// Cross-instance event relay (Redis Pub/Sub)
	PublishEvent(payload []byte) error
	SubscribeEvents() *redis.PubSub
}

// Service is the single concrete Storage backed by PostgreSQL and Redis.
// Redis may be nil (e.g. in the seed CLI); Redis-backed methods then no-op.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// --- Users ---

// GetOrCreateUser looks a user up by username and creates the row on first
// login (mock auth keeps no credentials).
func (s *Service) GetOrCreateUser(username, email string) (*models.User, error) {
	var user models.User
	defaults := models.User{Username: username, Email: email, IsActive: true}

	result := s.DB.Where("username = ?", username).FirstOrCreate(&user, defaults)
	if result.Error != nil {
		log.Printf("ERROR: Failed to get or create user %s: %v", username, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("INFO: New user %s created (id=%d).", username, user.ID)
	}
	return &user, nil
}

func (s *Service) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// --- Profiles ---

func (s *Service) CreateProfile(p *models.Profile) error {
	return s.DB.Create(p).Error
}

func (s *Service) GetProfileByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (s *Service) SaveProfile(p *models.Profile) error {
	return s.DB.Save(p).Error
}

func (s *Service) DeleteProfileByUserID(userID uint) error {
	result := s.DB.Where("user_id = ?", userID).Delete(&models.Profile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DiscoverProfiles lists candidate profiles matching the optional range
// filters, newest updates first.
func (s *Service) DiscoverProfiles(f models.DiscoverFilter) ([]models.Profile, error) {
	q := s.DB.Model(&models.Profile{})
	if f.MinHeightCm != nil {
		q = q.Where("height_cm >= ?", *f.MinHeightCm)
	}
	if f.MaxHeightCm != nil {
		q = q.Where("height_cm <= ?", *f.MaxHeightCm)
	}
	if f.MinWeightKg != nil {
		q = q.Where("weight_kg >= ?", *f.MinWeightKg)
	}
	if f.MaxWeightKg != nil {
		q = q.Where("weight_kg <= ?", *f.MaxWeightKg)
	}
	if len(f.Genders) > 0 {
		q = q.Where("gender IN ?", f.Genders)
	}

	var profiles []models.Profile
	if err := q.Order("updated_at DESC").Limit(f.Limit).Find(&profiles).Error; err != nil {
		log.Printf("ERROR: Failed to discover profiles: %v", err)
		return nil, err
	}
	return profiles, nil
}

// --- Matches ---

// CreateMatch inserts the canonical pair row. A unique-constraint violation
// on (user_a_id, user_b_id) comes back as ErrDuplicateMatch so the resolver
// can fall back to fetching the existing row.
func (s *Service) CreateMatch(m *models.Match) error {
	if err := s.DB.Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateMatch
		}
		log.Printf("ERROR: Failed to create match (%d,%d): %v", m.UserAID, m.UserBID, err)
		return err
	}
	return nil
}

func (s *Service) FindMatchByPair(a, b uint) (*models.Match, error) {
	var match models.Match
	err := s.DB.Where("user_a_id = ? AND user_b_id = ?", a, b).First(&match).Error
	if err != nil {
		return nil, translate(err)
	}
	return &match, nil
}

func (s *Service) GetMatchByID(id uint) (*models.Match, error) {
	var match models.Match
	if err := s.DB.First(&match, id).Error; err != nil {
		return nil, translate(err)
	}
	return &match, nil
}

// ListMatchesForUser returns every match the user participates in, newest
// first.
func (s *Service) ListMatchesForUser(userID uint) ([]models.Match, error) {
	var matches []models.Match
	err := s.DB.Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("matched_at DESC").
		Find(&matches).Error
	if err != nil {
		log.Printf("ERROR: Failed to list matches for user %d: %v", userID, err)
		return nil, err
	}
	return matches, nil
}

// --- Messages ---

func (s *Service) CreateMessage(msg *models.Message) error {
	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("ERROR: Failed to save message for match %d: %v", msg.MatchID, err)
		return err
	}
	return nil
}

// ListMessages returns the recent window of messages for a match, oldest
// first. The id tiebreak keeps the order stable when sent_at collides.
func (s *Service) ListMessages(matchID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := s.DB.Where("match_id = ?", matchID).
		Order("sent_at ASC, id ASC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		log.Printf("ERROR: Failed to get messages for match %d: %v", matchID, err)
		return nil, err
	}
	return messages, nil
}

// MarkMessageRead flips is_read, the only mutable message field.
func (s *Service) MarkMessageRead(id uint) error {
	result := s.DB.Model(&models.Message{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Categories and filters ---

func (s *Service) ListHeightCategories() ([]models.HeightCategory, error) {
	var categories []models.HeightCategory
	err := s.DB.Order("min_cm ASC NULLS FIRST").Find(&categories).Error
	return categories, err
}

func (s *Service) ListWeightCategories() ([]models.WeightCategory, error) {
	var categories []models.WeightCategory
	err := s.DB.Order("min_kg ASC NULLS FIRST").Find(&categories).Error
	return categories, err
}

func (s *Service) ListFilterPresets(limit int) ([]models.FilterPreset, error) {
	var presets []models.FilterPreset
	err := s.DB.Order("updated_at DESC").Limit(limit).Find(&presets).Error
	return presets, err
}

func (s *Service) CreateFilterPreset(p *models.FilterPreset) error {
	return s.DB.Create(p).Error
}

func (s *Service) GetFilterSettings(userID uint) (*models.FilterSettings, error) {
	var settings models.FilterSettings
	if err := s.DB.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}

// UpsertFilterSettings creates or replaces the single settings row per user.
func (s *Service) UpsertFilterSettings(settings *models.FilterSettings) error {
	var existing models.FilterSettings
	err := s.DB.Where("user_id = ?", settings.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.DB.Create(settings).Error
	}
	if err != nil {
		return err
	}
	settings.ID = existing.ID
	settings.CreatedAt = existing.CreatedAt
	return s.DB.Save(settings).Error
}

// --- Presence (Redis) ---

func (s *Service) AddOnlineUser(userID string) error {
	if s.Redis == nil {
		return nil
	}
	return s.Redis.SAdd(s.Ctx, presenceKey, userID).Err()
}

func (s *Service) RemoveOnlineUser(userID string) error {
	if s.Redis == nil {
		return nil
	}
	return s.Redis.SRem(s.Ctx, presenceKey, userID).Err()
}

func (s *Service) GetOnlineUsers() ([]string, error) {
	if s.Redis == nil {
		return nil, nil
	}
	return s.Redis.SMembers(s.Ctx, presenceKey).Result()
}

// --- Cross-instance event relay ---

// PublishEvent pushes a broadcast envelope to the shared Redis channel so
// hubs on other instances can replay it.
func (s *Service) PublishEvent(payload []byte) error {
	if s.Redis == nil {
		return nil
	}
	return s.Redis.Publish(s.Ctx, EventChannel, payload).Err()
}

func (s *Service) SubscribeEvents() *redis.PubSub {
	if s.Redis == nil {
		return nil
	}
	return s.Redis.Subscribe(s.Ctx, EventChannel)
}

// translate maps gorm's not-found sentinel onto the storage one.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
