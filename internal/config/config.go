// Package config loads runtime settings from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Identifier schemes accepted by IDScheme.
const (
	IDSchemeSequence = "sequence"
	IDSchemeUUID     = "uuid"
)

// Config holds all runtime settings. Every field has a sensible default so
// the binary runs with no environment at all.
type Config struct {
	// DataFile is where Save Data writes and Load Data reads the JSON
	// snapshot.
	DataFile string `env:"EVENTDESK_DATA_FILE" envDefault:"event_system_data.json"`

	// Seed populates a fresh store with demonstration events on startup.
	Seed bool `env:"EVENTDESK_SEED" envDefault:"true"`

	// SeedFile optionally points at a YAML fixture that replaces the
	// built-in demonstration data.
	SeedFile string `env:"EVENTDESK_SEED_FILE"`

	// IDScheme selects how identifiers are generated: "sequence"
	// (EVT0001, ATT0001, ...) or "uuid".
	IDScheme string `env:"EVENTDESK_ID_SCHEME" envDefault:"sequence"`

	LogLevel  string `env:"EVENTDESK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"EVENTDESK_LOG_FORMAT" envDefault:"text"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.IDScheme != IDSchemeSequence && cfg.IDScheme != IDSchemeUUID {
		return Config{}, fmt.Errorf("unknown id scheme %q", cfg.IDScheme)
	}
	return cfg, nil
}
