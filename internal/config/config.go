package config

import (
	"fmt"
	"os"
)

// Domain limits.
const (
	// MessagePageLimit caps a single message-history fetch. There is no
	// cursor pagination; clients get a fixed recent window.
	MessagePageLimit = 200

	// PresetPageLimit caps the filter-preset listing.
	PresetPageLimit = 100

	// Discovery limits for GET /profiles.
	DiscoverDefaultLimit = 20
	DiscoverMaxLimit     = 100
)

// Config holds everything read from the environment. Load it once in main
// after godotenv has populated the process env.
type Config struct {
	DatabaseDSN       string
	RedisAddr         string
	RedisPassword     string
	APIPort           string
	JWTSecret         string
	EnforceMembership bool
}

// Load reads configuration from environment variables, applying the same
// defaults the local docker-compose setup uses.
func Load() *Config {
	return &Config{
		DatabaseDSN:       buildDatabaseDSN(),
		RedisAddr:         getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		APIPort:           getenv("API_PORT", "8080"),
		JWTSecret:         getenv("JWT_SECRET", "dev-secret-change-me"),
		EnforceMembership: os.Getenv("CHAT_ENFORCE_MEMBERSHIP") == "true",
	}
}

// buildDatabaseDSN prefers a full DATABASE_URL and otherwise assembles a
// keyword DSN from the discrete PG* variables.
func buildDatabaseDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getenv("PGHOST", "localhost"),
		getenv("PGUSER", "appuser"),
		getenv("PGPASSWORD", "dbuser123"),
		getenv("PGDATABASE", "pairgogodb"),
		getenv("PGPORT", "5432"),
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
