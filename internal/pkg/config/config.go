// Package config loads process configuration from SHOP_-prefixed
// environment variables.
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds everything the demo binary reads from its environment.
type Config struct {
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// PrettyLogs switches to the human-readable console writer.
	PrettyLogs bool `envconfig:"PRETTY_LOGS" default:"true"`

	// CatalogPath points at a YAML catalog file; empty means the built-in
	// catalog.
	CatalogPath string `envconfig:"CATALOG_PATH" default:""`
}

// Load reads the SHOP_* environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("shop", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	return cfg, nil
}
