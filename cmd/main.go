package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"pairgogo/backend/internal/api/handler"
	"pairgogo/backend/internal/chathub"
	"pairgogo/backend/internal/config"
	"pairgogo/backend/internal/matching"
	"pairgogo/backend/internal/messaging"
	"pairgogo/backend/internal/metrics"
	"pairgogo/backend/internal/models"
	"pairgogo/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	// TranslateError maps the unique-constraint violation on the match pair
	// to gorm.ErrDuplicatedKey, which the resolver relies on.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
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
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting PairGoGo Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	hub := chathub.NewHub(s)
	matcher := matching.NewService(s)
	ledger := messaging.NewService(s, hub)
	ledger.EnforceMembership = cfg.EnforceMembership

	go hub.Run()
	defer hub.Stop()

	r := gin.Default()
	h := handler.NewHandler(hub, matcher, ledger, s, cfg)

	r.POST("/auth/login", h.Login)

	r.POST("/profiles", h.CreateProfile)
	r.GET("/profiles", h.DiscoverProfiles)
	r.GET("/profiles/:user_id", h.GetProfile)
	r.PUT("/profiles/:user_id", h.UpdateProfile)
	r.DELETE("/profiles/:user_id", h.DeleteProfile)

	r.GET("/categories/height", h.ListHeightCategories)
	r.GET("/categories/weight", h.ListWeightCategories)
	r.GET("/filters/presets", h.ListFilterPresets)
	r.POST("/filters/presets", h.CreateFilterPreset)
	r.GET("/filters/settings/:user_id", h.GetFilterSettings)
	r.PUT("/filters/settings/:user_id", h.PutFilterSettings)

	r.POST("/swipe", h.Swipe)
	r.GET("/matches/:user_id", h.ListMatches)

	r.POST("/messages", h.SendMessage)
	r.GET("/messages/:match_id", h.ListMessages)
	r.POST("/messages/:message_id/read", h.MarkMessageRead)

	r.GET("/presence", h.GetPresence)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/ws/chat/:match_id", h.ServeChatWS)

	server := &http.Server{
		Addr:           ":" + cfg.APIPort,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
