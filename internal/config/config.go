package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"mindhealth/internal/observability"
)

type StorageBackend string

const (
	StorageMongo  StorageBackend = "mongo"
	StorageSQLite StorageBackend = "sqlite"
)

// Config is the process configuration, read once at startup.
type Config struct {
	Port     string
	LogLevel string

	StorageBackend StorageBackend
	MongoURI       string
	MongoDB        string
	SQLitePath     string

	RedisAddr      string
	StatusCacheTTL time.Duration

	JWTSecret string

	// FetchLimit is how many assessments are read per dashboard
	FetchLimit int
	// ProfileWindow is how many of them are folded into the profile
	ProfileWindow int
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		observability.Logger().Warn("invalid integer env, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		observability.Logger().Warn("invalid duration env, using default", "key", key, "value", v, "default", def.String())
		return def
	}
	return d
}

// Load reads all env vars and builds the config
func Load() *Config {
	backend := StorageMongo
	if strings.EqualFold(getEnv("STORAGE_BACKEND", "mongo"), "sqlite") {
		backend = StorageSQLite
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StorageBackend: backend,
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "mindhealth"),
		SQLitePath:     getEnv("SQLITE_PATH", "mindhealth.db"),

		RedisAddr:      RedisAddr(getEnv("REDIS_URI", "localhost:6379")),
		StatusCacheTTL: getDurationEnv("STATUS_CACHE_TTL", 10*time.Minute),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-in-production"),

		FetchLimit:    getIntEnv("FETCH_LIMIT", 12),
		ProfileWindow: getIntEnv("PROFILE_WINDOW", 8),
	}
}

// RedisAddr strips a redis:// prefix so the value can be used as Options.Addr.
func RedisAddr(uri string) string {
	return strings.TrimPrefix(uri, "redis://")
}
