package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds service configuration, populated from the environment
type Config struct {
	Host string `env:"HOST" envDefault:""`
	Port int    `env:"PORT" envDefault:"8080"`

	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	// RedisURL is required when StorageType is "redis"
	RedisURL string `env:"REDIS_URL"`

	// SessionSecret signs session tokens. Required outside of tests.
	SessionSecret string `env:"SESSION_SECRET"`
	// SessionTTL bounds how long an issued session stays valid
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	// SessionCookie is the cookie name carrying the session token
	SessionCookie string `env:"SESSION_COOKIE" envDefault:"gs_session"`

	// SeedAdmin bootstraps an admin account on startup, "username:password".
	// Ignored when the username already exists.
	SeedAdmin string `env:"SEED_ADMIN"`
}

// Load parses configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
