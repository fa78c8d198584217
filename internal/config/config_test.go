package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_BACKEND", "MONGO_DB", "REDIS_URI", "STATUS_CACHE_TTL", "FETCH_LIMIT", "PROFILE_WINDOW"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageMongo, cfg.StorageBackend)
	assert.Equal(t, "mindhealth", cfg.MongoDB)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.StatusCacheTTL)
	assert.Equal(t, 12, cfg.FetchLimit)
	assert.Equal(t, 8, cfg.ProfileWindow)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("REDIS_URI", "redis://cache:6379")
	t.Setenv("STATUS_CACHE_TTL", "30s")
	t.Setenv("FETCH_LIMIT", "20")
	t.Setenv("PROFILE_WINDOW", "5")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.StorageBackend)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.StatusCacheTTL)
	assert.Equal(t, 20, cfg.FetchLimit)
	assert.Equal(t, 5, cfg.ProfileWindow)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("STATUS_CACHE_TTL", "soon")
	t.Setenv("FETCH_LIMIT", "-3")
	t.Setenv("PROFILE_WINDOW", "eight")

	cfg := Load()

	assert.Equal(t, 10*time.Minute, cfg.StatusCacheTTL)
	assert.Equal(t, 12, cfg.FetchLimit)
	assert.Equal(t, 8, cfg.ProfileWindow)
}
