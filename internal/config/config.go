// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	Addr         string        `env:"ADDR" envDefault:":8080"`
	DBPath       string        `env:"DB_PATH" envDefault:"data/everafter.db"`
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
	MediaDir     string        `env:"MEDIA_DIR" envDefault:"data/media"`
	MediaBaseURL string        `env:"MEDIA_BASE_URL" envDefault:"/media"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads a .env file if present and then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
