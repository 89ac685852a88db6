// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// go-note-keeper client. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds presentation-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local key-value store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds presentation-level settings.
type App struct {
	// Labels selects the language of the row action labels ("en" or "es").
	// Env: APP_LABELS
	Labels string `env:"LABELS"`
}

// Storage groups the configuration of the local note store.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`

	// Key is the fixed key the whole note collection is stored under.
	// Env: STORAGE_KEY
	Key string `env:"KEY"`
}

// DB holds connection settings for the SQLite key-value store.
type DB struct {
	// DSN is the SQLite data source name, usually a file path
	// (e.g. "notes.db"). ":memory:" keeps notes in process memory only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds log output settings.
type Log struct {
	// File is the path of the JSON log file. Empty means a "logs" file next
	// to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
