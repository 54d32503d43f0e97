// Package config loads service configuration from environment variables.
package config

import (
	"os"
	"time"
)

// Store backend selectors.
const (
	StoreLocal = "local"
	StoreRedis = "redis"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port string

	// Store selects the persistence backend: "local" for the embedded
	// sqlite database, "redis" for the networked real-time store.
	Store         string
	DBPath        string
	RedisAddr     string
	RedisPassword string

	JWTSecret string
	TokenTTL  time.Duration
	TokenPath string
}

// Load reads the configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "8080"),
		Store:         getenv("STORE", StoreLocal),
		DBPath:        getenv("DB_PATH", "./data/registry.db"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		JWTSecret:     getenv("JWT_SECRET", ""),
		TokenTTL:      getduration("TOKEN_TTL", 30*24*time.Hour),
		TokenPath:     getenv("TOKEN_PATH", "./data/session.token"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
