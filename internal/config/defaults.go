package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Default values applied before any other configuration source.
const (
	DefaultAppName          = "LedgerBook"
	DefaultDBFileName       = "ledgerbook.db"
	DefaultHTTPAddress      = "127.0.0.1:8765"
	DefaultShutdownTimeout  = 5 * time.Second
	DefaultRequestTimeout   = 2 * time.Minute
	DefaultTickPeriod       = 60 * time.Second
	DefaultFailureThreshold = 5
	DefaultWatchDebounce    = 2 * time.Second
	DefaultLogLevel         = "info"

	defaultRemoteFolder = "OneDrive"
)

// defaultConfig returns the built-in defaults. Directories that cannot be
// resolved on this machine are left empty and reported by validation.
func defaultConfig() *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{Name: DefaultAppName},
		Storage: Storage{
			DBFileName: DefaultDBFileName,
		},
		Remote: Remote{Platform: runtime.GOOS},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			TickPeriod:       DefaultTickPeriod,
			FailureThreshold: DefaultFailureThreshold,
			WatchDebounce:    DefaultWatchDebounce,
		},
		Log: Log{Level: DefaultLogLevel},
	}

	if dir, err := os.UserConfigDir(); err == nil {
		cfg.Storage.DataDir = filepath.Join(dir, DefaultAppName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.Remote.Root = filepath.Join(home, defaultRemoteFolder)
	}

	return cfg
}
