// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Defaults applied to a [SyncConfig] created on first run.
const (
	DefaultSyncIntervalMinutes uint64 = 5
)

// SyncConfig holds user-facing sync settings. It is persisted as
// sync_config.json, in the shared folder first and locally as a fallback.
type SyncConfig struct {
	// AutoSyncEnabled turns the periodic scheduler and the data-changed hook on.
	AutoSyncEnabled bool `json:"auto_sync_enabled"`

	// SyncIntervalMinutes is the minimum time between two scheduled cycles.
	// Must be at least 1.
	SyncIntervalMinutes uint64 `json:"sync_interval_minutes"`

	// RemoteRoot overrides the shared-folder root detected at startup.
	RemoteRoot *string `json:"remote_root,omitempty"`

	// FallbackToLocal enables the local-only backup tier when the shared
	// folder cannot be reached.
	FallbackToLocal bool `json:"fallback_to_local"`
}

// DefaultSyncConfig returns the configuration used when none was persisted yet.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		AutoSyncEnabled:     true,
		SyncIntervalMinutes: DefaultSyncIntervalMinutes,
		FallbackToLocal:     true,
	}
}

// Interval returns SyncIntervalMinutes as a duration, treating 0 as 1 minute.
func (c SyncConfig) Interval() time.Duration {
	if c.SyncIntervalMinutes == 0 {
		return time.Minute
	}
	return time.Duration(c.SyncIntervalMinutes) * time.Minute
}

// ErrorType is the machine-readable tag stored in [SyncStatus.ErrorType].
type ErrorType string

const (
	ErrorTypeRemoteUnavailable ErrorType = "remote_unavailable"
	ErrorTypeFileSystem        ErrorType = "file_system"
	ErrorTypeDatabase          ErrorType = "database"
	ErrorTypeConfiguration     ErrorType = "configuration"
	ErrorTypeTimeout           ErrorType = "timeout"
	ErrorTypeSyncFailed        ErrorType = "sync_failed"
	ErrorTypeCircuitOpen       ErrorType = "circuit_open"
)

// SyncStatus is the process-wide view of the sync engine. Callers always get
// a copy; the live value is owned by the status tracker.
type SyncStatus struct {
	IsEnabled       bool       `json:"is_enabled"`
	LastSync        *time.Time `json:"last_sync,omitempty"`
	SyncInProgress  bool       `json:"sync_in_progress"`
	ErrorMessage    *string    `json:"error_message,omitempty"`
	ErrorType       *ErrorType `json:"error_type,omitempty"`
	RemoteAvailable bool       `json:"remote_available"`
	RetryCount      uint32     `json:"retry_count"`
	LastErrorTime   *time.Time `json:"last_error_time,omitempty"`
}
