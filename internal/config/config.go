// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings for the key tooling.
type Config struct {
	// DataDir overrides the platform data directory for the key store.
	DataDir string `env:"LIGHTHOUSE_DATA_DIR"`
	// VerifyKeys enables the key drift check on startup.
	VerifyKeys bool `env:"LIGHTHOUSE_VERIFY_KEYS" envDefault:"true"`
	// DiagramSquare is the side of one square in rendered diagrams, in pixels.
	DiagramSquare int `env:"LIGHTHOUSE_DIAGRAM_SQUARE" envDefault:"48"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DiagramSquare <= 0 {
		return Config{}, fmt.Errorf("%w: LIGHTHOUSE_DIAGRAM_SQUARE must be positive, got %d", ErrInvalidConfig, cfg.DiagramSquare)
	}
	return cfg, nil
}
