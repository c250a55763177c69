// meta/meta.go
package meta

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// MAX_ACTIONS bounds the number of actions a session accepts.
const MAX_ACTIONS = 1000

// HISTORY_CAPACITY is the initial capacity of a session's update history.
const HISTORY_CAPACITY = 64

// Config is read from the environment.
type Config struct {
	Scenario   int    `env:"WOODLAND_SCENARIO" envDefault:"0"`
	Seed       uint64 `env:"WOODLAND_SEED" envDefault:"0"`
	LogLevel   string `env:"WOODLAND_LOG_LEVEL" envDefault:"info"`
	BoardPath  string `env:"WOODLAND_BOARD"`
	MaxActions int    `env:"WOODLAND_MAX_ACTIONS"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{MaxActions: MAX_ACTIONS}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxActions <= 0 {
		return Config{}, fmt.Errorf("WOODLAND_MAX_ACTIONS must be positive, got %d", cfg.MaxActions)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level returns the zerolog level named by LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
