// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the vault
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds configuration for the local SQLite-backed key-value store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto holds cryptographic policy overrides, such as the file-size
	// gate enforced by the file-encryption component.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the vault's local persistence
// backend.
type Storage struct {
	// DB holds the local SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the filesystem path to the SQLite database file
	// (e.g. "./vault.db"). The special value ":memory:" opens a private,
	// non-persistent in-memory database, though NewConnectSQLite still
	// creates an empty file of that name in the working directory first.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Crypto holds cryptographic policy overrides for the vault core.
type Crypto struct {
	// MaxFileSizeBytes overrides [crypto.MaxFileSize] when non-zero. Lets
	// operators raise or lower the file-encryption size gate without a
	// rebuild.
	// Env: CRYPTO_MAX_FILE_SIZE_BYTES
	MaxFileSizeBytes int64 `env:"MAX_FILE_SIZE_BYTES"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
