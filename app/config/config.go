package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the process needs at startup.
type Config struct {
	Port     string        `env:"PORT" envDefault:"8080"`
	DBPath   string        `env:"DB_PATH" envDefault:"data/badger"`
	Secret   string        `env:"SECRET"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"72h"`
}

// Load reads configuration from the environment. The signing secret has no
// default; starting without one is a hard error.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Secret == "" {
		return Config{}, fmt.Errorf("SECRET is required")
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
