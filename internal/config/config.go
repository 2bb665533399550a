// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and LINEUP_ env vars.
// - External errors must be wrapped via this package's error kinds.
package config

import (
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// WorkerCount bounds concurrent activity evaluations in RecommendAll.
	WorkerCount int `koanf:"worker_count"`

	// MaxRosterSize caps the number of hero records accepted per request.
	MaxRosterSize int `koanf:"max_roster_size"`

	// ActivitiesFile optionally extends the built-in activity table.
	ActivitiesFile string `koanf:"activities_file"`

	// CatalogFile optionally replaces the built-in hero catalog.
	CatalogFile string `koanf:"catalog_file"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		LogFormat:     "text",
		Addr:          ":9080",
		WorkerCount:   runtime.NumCPU(),
		MaxRosterSize: 200,
	}
}
