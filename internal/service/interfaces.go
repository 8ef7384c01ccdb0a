package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledger-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Prober answers whether the shared folder can currently be written to.
type Prober interface {
	// Probe writes and removes a marker file inside the application folder
	// under root. Any I/O error means "unavailable".
	Probe(ctx context.Context, root string) bool
}

// ConflictResolver decides the direction of a sync from file metadata and,
// as a tiebreak, from the ledger row counts.
type ConflictResolver interface {
	// ShouldPullRemote reports whether the snapshot in target must replace
	// localDB. A false result comes with ErrNoRemoteData or ErrLocalIsNewer
	// when one of those explains the decision.
	ShouldPullRemote(ctx context.Context, localDB string, target models.SnapshotTarget) (bool, error)

	// ShouldPushLocal reports whether localDB must be published to target.
	// It returns true when target holds no snapshot yet and
	// ErrRemoteIsNewer when the snapshot is newer than localDB.
	ShouldPushLocal(ctx context.Context, localDB string, target models.SnapshotTarget) (bool, error)

	// RemoteModified returns the effective modification time of the
	// snapshot in target, or ErrNoRemoteData when the pair is incomplete.
	RemoteModified(ctx context.Context, target models.SnapshotTarget) (time.Time, error)
}

// Copier moves whole database files between the live ledger and a snapshot.
type Copier interface {
	// ReplaceLocalWith overwrites localDB with snapshotDB behind a safety
	// backup. On any failure localDB is restored byte for byte.
	ReplaceLocalWith(ctx context.Context, localDB, snapshotDB string, modTime time.Time) error

	// PushLocalTo publishes localDB to target and writes its sidecar.
	PushLocalTo(ctx context.Context, localDB string, target models.SnapshotTarget) (models.SyncMetadata, error)
}

// SyncEngine runs the sync algorithms without any status bookkeeping.
type SyncEngine interface {
	// RunCycle is the automatic cycle: pull if newer, then push if needed.
	RunCycle(ctx context.Context, cfg models.SyncConfig) (models.CycleResult, error)

	// PushOnly publishes the local ledger unconditionally.
	PushOnly(ctx context.Context, cfg models.SyncConfig) (models.CycleResult, error)

	// Pull replaces the local ledger with the snapshot when the resolver
	// allows it. Control outcomes are returned as errors.
	Pull(ctx context.Context, cfg models.SyncConfig) (models.CycleResult, error)

	// IsRemoteAvailable probes the shared root selected by cfg.
	IsRemoteAvailable(ctx context.Context, cfg models.SyncConfig) bool
}

// SyncManager owns the sync status and configuration of the process and
// exposes every externally visible sync operation.
type SyncManager interface {
	// Initialize probes the shared folder, loads the configuration, tries one
	// pull and starts the scheduler when auto sync is enabled. Subsequent
	// calls are no-ops.
	Initialize(ctx context.Context)

	// GetSyncStatus returns a snapshot of the status. It never waits for a
	// running sync.
	GetSyncStatus(ctx context.Context) models.SyncStatus

	GetSyncConfig(ctx context.Context) models.SyncConfig

	// UpdateSyncConfig validates and stores cfg. A failed save is logged
	// and the in-memory value is still updated.
	UpdateSyncConfig(ctx context.Context, cfg models.SyncConfig) (models.SyncConfig, error)

	// ManualSync publishes the local ledger now, skipping the pull step.
	ManualSync(ctx context.Context) (models.CycleResult, error)

	// LoadFromRemote replaces the local ledger with the latest snapshot.
	LoadFromRemote(ctx context.Context) (models.CycleResult, error)

	StartAutoSync(ctx context.Context) error
	StopAutoSync(ctx context.Context) error

	// NotifyDataChanged is the hook called after the ledger was written.
	NotifyDataChanged(ctx context.Context) error

	// RunExclusive runs fn while no sync can start. It fails with
	// ErrSyncInProgress when a sync is already running.
	RunExclusive(ctx context.Context, fn func(ctx context.Context) error) error

	// Close stops the scheduler and waits for it.
	Close()
}

// Scheduler runs a function on a fixed tick in one background goroutine.
type Scheduler interface {
	// Start launches the worker. It is a no-op when already running.
	Start(ctx context.Context)
	// Stop cancels the worker and blocks until it exits.
	Stop()
	Running() bool
}

// BackupService manages the timestamped backup history in the shared folder.
type BackupService interface {
	Create(ctx context.Context) (models.BackupInfo, error)
	List(ctx context.Context) ([]models.BackupInfo, error)
	Restore(ctx context.Context, timestamp string) error
	Delete(ctx context.Context, timestamp string) error
}

// AttachmentMirror copies the attachment folder next to the ledger.
type AttachmentMirror interface {
	// Push copies missing or newer local files into the shared folder.
	Push(ctx context.Context, root string) (int, error)
	// Pull copies missing or newer shared files into the local folder.
	Pull(ctx context.Context, root string) (int, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}
