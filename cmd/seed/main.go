// Seed CLI: inserts the preset height/weight categories, the default filter
// presets, and (with -demo) a handful of demo users with profiles.
//
// Usage: seed [-demo]
package main

import (
	"errors"
	"flag"
	"log"

	"pairgogo/backend/internal/config"
	"pairgogo/backend/internal/models"
	"pairgogo/backend/internal/storage"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

var heightPresets = []models.HeightCategory{
	{Name: "Shortest", MinCm: nil, MaxCm: intPtr(150)},
	{Name: "Short", MinCm: intPtr(151), MaxCm: intPtr(165)},
	{Name: "Average", MinCm: intPtr(166), MaxCm: intPtr(180)},
	{Name: "Tall", MinCm: intPtr(181), MaxCm: intPtr(195)},
	{Name: "Tallest", MinCm: intPtr(196), MaxCm: nil},
}

var weightPresets = []models.WeightCategory{
	{Name: "Lightest", MinKg: nil, MaxKg: intPtr(50)},
	{Name: "Light", MinKg: intPtr(51), MaxKg: intPtr(65)},
	{Name: "Average", MinKg: intPtr(66), MaxKg: intPtr(80)},
	{Name: "Heavy", MinKg: intPtr(81), MaxKg: intPtr(100)},
	{Name: "Heaviest", MinKg: intPtr(101), MaxKg: nil},
}

var filterPresets = []models.FilterPreset{
	{Name: "Short & Light", MaxHeightCm: intPtr(165), MaxWeightKg: intPtr(60), Genders: []string{"female"}, IsPublic: true},
	{Name: "Tall", MinHeightCm: intPtr(180), Genders: []string{}, IsPublic: true},
}

type demoUser struct {
	username string
	email    string
	profile  models.Profile
}

var demoUsers = []demoUser{
	{"alice", "alice@example.com", models.Profile{DisplayName: "Alice", Bio: "Traveler & foodie.", HeightCm: intPtr(165), WeightKg: intPtr(58), Gender: "female", Interests: []string{"travel", "food"}}},
	{"bob", "bob@example.com", models.Profile{DisplayName: "Bob", Bio: "Hiking and tech.", HeightCm: intPtr(178), WeightKg: intPtr(76), Gender: "male", Interests: []string{"hiking", "coding"}}},
	{"carol", "carol@example.com", models.Profile{DisplayName: "Carol", Bio: "Art & coffee dates.", HeightCm: intPtr(170), WeightKg: intPtr(65), Gender: "female", Interests: []string{"art", "coffee"}}},
}

func main() {
	demo := flag.Bool("demo", false, "also create demo users with profiles")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Match{},
		&models.Message{},
		&models.HeightCategory{},
		&models.WeightCategory{},
		&models.FilterPreset{},
		&models.FilterSettings{},
	)
	if err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	s := storage.NewStorageService(db, nil) // no Redis needed for seeding

	for _, hc := range heightPresets {
		if err := firstOrCreateByName(db, &models.HeightCategory{}, hc.Name, &hc); err != nil {
			log.Fatalf("failed to seed height category %s: %v", hc.Name, err)
		}
	}
	for _, wc := range weightPresets {
		if err := firstOrCreateByName(db, &models.WeightCategory{}, wc.Name, &wc); err != nil {
			log.Fatalf("failed to seed weight category %s: %v", wc.Name, err)
		}
	}
	log.Println("Seeded height and weight categories.")

	for _, fp := range filterPresets {
		if err := firstOrCreateByName(db, &models.FilterPreset{}, fp.Name, &fp); err != nil {
			log.Fatalf("failed to seed filter preset %s: %v", fp.Name, err)
		}
	}
	log.Println("Seeded filter presets.")

	if *demo {
		for _, du := range demoUsers {
			user, err := s.GetOrCreateUser(du.username, du.email)
			if err != nil {
				log.Fatalf("failed to seed user %s: %v", du.username, err)
			}
			if _, err := s.GetProfileByUserID(user.ID); err == nil {
				continue
			} else if !errors.Is(err, storage.ErrNotFound) {
				log.Fatalf("failed to check profile for %s: %v", du.username, err)
			}
			profile := du.profile
			profile.UserID = user.ID
			if err := s.CreateProfile(&profile); err != nil {
				log.Fatalf("failed to seed profile for %s: %v", du.username, err)
			}
		}
		log.Println("Seeded demo users and profiles.")
	}

	log.Println("Seed complete.")
}

// firstOrCreateByName inserts the row only when no row with the same name
// exists yet, keeping reruns idempotent.
func firstOrCreateByName(db *gorm.DB, probe interface{}, name string, row interface{}) error {
	err := db.Where("name = ?", name).First(probe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(row).Error
	}
	return err
}
