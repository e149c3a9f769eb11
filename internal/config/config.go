// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. TIMELINE_LOG_LEVEL.
const Prefix = "TIMELINE"

// Config holds all configuration values for the exporter.
// Values are populated by Load from environment variables.
type Config struct {
	// OutputDir is where the CSV and KML files are written. Defaults to ".".
	OutputDir string `envconfig:"OUTPUT_DIR" default:"."`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat selects the slog handler: "text" (default) or "json".
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads configuration from environment variables and returns a Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("config.Load: %s_LOG_FORMAT must be text or json, got %q", Prefix, cfg.LogFormat)
	}
	return cfg, nil
}
