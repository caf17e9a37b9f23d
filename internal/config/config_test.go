package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "PGHOST", "PGUSER", "PGPASSWORD", "PGDATABASE", "PGPORT",
		"REDIS_ADDR", "REDIS_PASSWORD", "API_PORT", "JWT_SECRET", "CHAT_ENFORCE_MEMBERSHIP",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "host=localhost user=appuser password=dbuser123 dbname=pairgogodb port=5432 sslmode=disable", cfg.DatabaseDSN)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "8080", cfg.APIPort)
	assert.False(t, cfg.EnforceMembership)
}

func TestLoadPrefersDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/pairgogo")
	t.Setenv("PGHOST", "ignored-host")

	cfg := Load()

	assert.Equal(t, "postgres://u:p@db:5432/pairgogo", cfg.DatabaseDSN)
}

func TestLoadMembershipFlag(t *testing.T) {
	t.Setenv("CHAT_ENFORCE_MEMBERSHIP", "true")
	assert.True(t, Load().EnforceMembership)

	t.Setenv("CHAT_ENFORCE_MEMBERSHIP", "yes")
	assert.False(t, Load().EnforceMembership)
}
