// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the device
// synchronization client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Sync holds the synchronization server endpoint, activation credential
	// and the timing parameters of the background workers.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds the local SQLite database and the inbox directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the path of the JSON log file. Empty selects a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Sync holds synchronization settings.
type Sync struct {
	// ServerURL is the base URL of the synchronization server
	// (e.g. "https://sync.example.com").
	// Env: SYNC_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// Email identifies the account of this device.
	// Env: SYNC_EMAIL
	Email string `env:"EMAIL"`

	// DeviceKey is a one-shot activation credential. When set it is moved
	// into the OS secret store at startup and never persisted anywhere else.
	// Env: SYNC_DEVICE_KEY
	DeviceKey string `env:"DEVICE_KEY"`

	// KeyringService is the service namespace used for secret store entries.
	// Env: SYNC_KEYRING_SERVICE
	KeyringService string `env:"KEYRING_SERVICE"`

	// RequestTimeout bounds every non-streaming request (e.g. "15s").
	// Env: SYNC_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReconnectDelay is the fixed pause between event stream reconnects.
	// Env: SYNC_RECONNECT_DELAY
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY"`

	// LivenessTimeout is the longest silence tolerated on the event stream
	// before the connection is considered dead.
	// Env: SYNC_LIVENESS_TIMEOUT
	LivenessTimeout time.Duration `env:"LIVENESS_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// InboxDir is where opened shares are written on request.
	// Env: STORAGE_INBOX_DIR
	InboxDir string `env:"INBOX_DIR"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (earlier sources win for non-zero
// fields, later sources only fill the gaps):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a populated *StructuredConfig or an error if any source fails to
// load.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
