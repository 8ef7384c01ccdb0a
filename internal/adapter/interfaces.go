// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the sync daemon's loopback
// control API.
//
// The primary abstraction is [DaemonAdapter], which hides the HTTP transport
// from ledgersyncctl. Error responses are decoded by mapHTTPError back into
// the service sentinel errors, so callers can use [errors.Is] with
// service.ErrSyncInProgress, service.ErrLocalIsNewer and friends exactly as
// the daemon does. A daemon that cannot be reached yields
// [ErrDaemonUnavailable].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DaemonAdapter defines communication with a running sync daemon.
type DaemonAdapter interface {
	// Status returns the current sync status. It never blocks on a running
	// sync.
	Status(ctx context.Context) (models.SyncStatus, error)

	// Config returns the stored sync configuration.
	Config(ctx context.Context) (models.SyncConfig, error)

	// UpdateConfig stores cfg and returns what the daemon now uses.
	UpdateConfig(ctx context.Context, cfg models.SyncConfig) (models.SyncConfig, error)

	// ManualSync publishes the local ledger now.
	ManualSync(ctx context.Context) (models.CycleResult, error)

	// LoadFromRemote replaces the local ledger with the latest snapshot.
	// Skipped transfers come back as service.ErrNoRemoteData or
	// service.ErrLocalIsNewer.
	LoadFromRemote(ctx context.Context) (models.CycleResult, error)

	// StartAutoSync and StopAutoSync return the status after the change.
	StartAutoSync(ctx context.Context) (models.SyncStatus, error)
	StopAutoSync(ctx context.Context) (models.SyncStatus, error)

	// NotifyDataChanged tells the daemon that the ledger was written.
	NotifyDataChanged(ctx context.Context) error

	CreateBackup(ctx context.Context) (models.BackupInfo, error)
	ListBackups(ctx context.Context) ([]models.BackupInfo, error)
	RestoreBackup(ctx context.Context, timestamp string) error
	DeleteBackup(ctx context.Context, timestamp string) error

	// Version returns the daemon build information.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
