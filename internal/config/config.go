// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// ledger sync daemon. It aggregates all sub-configurations and is
// populated by merging values from defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application name (which drives every on-disk folder
	// name) and version.
	App App `envPrefix:"APP_"`

	// Storage locates the local ledger database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote locates the shared folder mirrored by the cloud-sync client.
	Remote Remote `envPrefix:"REMOTE_"`

	// Server holds the listen address of the loopback control API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the control CLI's HTTP client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds scheduler and file watcher settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the log file destination and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application identity settings.
type App struct {
	// Name is the application name. The shared-folder data directory is
	// "<Name>_Data" and the local data directory is "<user config dir>/<Name>".
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds the location of the local ledger database.
type Storage struct {
	// DataDir is the per-user data directory. The ledger database, the
	// local sync config and the local-only sync tier live under it.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// DBFileName is the ledger database file name inside DataDir.
	// Env: STORAGE_DB_FILE
	DBFileName string `env:"DB_FILE"`
}

// DBPath returns the absolute path of the local ledger database.
func (s Storage) DBPath() string {
	return filepath.Join(s.DataDir, s.DBFileName)
}

// Remote locates the shared folder.
type Remote struct {
	// Root is the default shared-folder root (for example ~/OneDrive).
	// A remote_root override persisted in the sync config takes precedence.
	// Env: REMOTE_ROOT
	Root string `env:"ROOT"`

	// Platform selects the clock-skew policy used to interpret file mtimes
	// in the shared folder ("windows" trusts mtimes only within a tolerance).
	// Defaults to runtime.GOOS.
	// Env: REMOTE_PLATFORM
	Platform string `env:"PLATFORM"`
}

// Server holds network settings for the loopback control API.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8765").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds settings of the control CLI's HTTP client.
type Adapter struct {
	// HTTPAddress is the control API address the CLI talks to.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// A manual sync copies the whole database, so keep it generous.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// TickPeriod is how often the scheduler checks whether a cycle is due.
	// Env: WORKERS_TICK_PERIOD
	TickPeriod time.Duration `env:"TICK_PERIOD"`

	// FailureThreshold is the number of consecutive failed scheduled cycles
	// after which auto sync disables itself.
	// Env: WORKERS_FAILURE_THRESHOLD
	FailureThreshold uint32 `env:"FAILURE_THRESHOLD"`

	// WatchDebounce is the quiet period the database watcher waits for
	// before reporting a change.
	// Env: WORKERS_WATCH_DEBOUNCE
	WatchDebounce time.Duration `env:"WATCH_DEBOUNCE"`
}

// Log holds logging settings.
type Log struct {
	// File is the rotating log file path. Empty means stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
