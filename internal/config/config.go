// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session-level settings such as the auto-lock timeout.
	App App `envPrefix:"APP_"`

	// Crypto selects the AEAD algorithm and the Argon2id cost parameters.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Storage holds the data directory and the user directory database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings of the best-effort favicon fetcher.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds session-level configuration.
type App struct {
	// AutoLockTimeout is the idle duration after which an unlocked vault is
	// saved and locked (e.g. "15m").
	// Env: APP_AUTO_LOCK_TIMEOUT
	AutoLockTimeout time.Duration `env:"AUTO_LOCK_TIMEOUT"`

	// LogFile is where the interactive shell writes its logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Crypto holds the parameters of the key derivation and field cipher.
type Crypto struct {
	// Cipher is the AEAD algorithm: "aes-256-gcm" or "xchacha20-poly1305".
	// Env: CRYPTO_CIPHER
	Cipher string `env:"CIPHER"`

	// ArgonTime is the Argon2id iteration count.
	// Env: CRYPTO_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`

	// ArgonMemory is the Argon2id memory cost in KiB.
	// Env: CRYPTO_ARGON_MEMORY
	ArgonMemory uint32 `env:"ARGON_MEMORY"`

	// ArgonThreads is the Argon2id parallelism.
	// Env: CRYPTO_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DataDir holds the per-account salt and vault files.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// DB holds the user directory database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite user directory.
type DB struct {
	// DSN is the path of the SQLite database file.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration of the favicon fetcher.
type Adapter struct {
	// FaviconTimeout bounds a single favicon request (e.g. "5s").
	// Env: ADAPTER_FAVICON_TIMEOUT
	FaviconTimeout time.Duration `env:"FAVICON_TIMEOUT"`

	// FaviconMaxBytes is the largest icon that is accepted.
	// Env: ADAPTER_FAVICON_MAX_BYTES
	FaviconMaxBytes int `env:"FAVICON_MAX_BYTES"`

	// FaviconDisabled turns favicon fetching off entirely.
	// Env: ADAPTER_FAVICON_DISABLED
	FaviconDisabled bool `env:"FAVICON_DISABLED"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a populated *StructuredConfig or an error if any source fails to
// load or a value that was set is invalid.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
