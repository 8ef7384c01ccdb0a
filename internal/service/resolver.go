package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// StaleLocalThreshold is how much newer the local ledger may be than the
// snapshot before its mtime stops being trusted on its own. A restored or
// copied-in file can carry a fresh mtime while holding older data.
const StaleLocalThreshold = 24 * time.Hour

type conflictResolver struct {
	inspector store.LedgerInspector
	metadata  store.MetadataRepository
	skew      ClockSkewPolicy

	logger *logger.Logger
}

// NewConflictResolver builds a [ConflictResolver] reading sidecars through
// metadata and row counts through inspector.
func NewConflictResolver(inspector store.LedgerInspector, metadata store.MetadataRepository, skew ClockSkewPolicy, log *logger.Logger) ConflictResolver {
	return &conflictResolver{
		inspector: inspector,
		metadata:  metadata,
		skew:      skew,
		logger:    log,
	}
}

func (r *conflictResolver) RemoteModified(ctx context.Context, target models.SnapshotTarget) (time.Time, error) {
	fileModified, err := utils.ModTime(target.DB)
	if err != nil {
		if utils.IsNotExist(err) {
			return time.Time{}, ErrNoRemoteData
		}
		return time.Time{}, fmt.Errorf("%w: stat snapshot: %w", ErrFileSystem, err)
	}

	meta, err := r.metadata.Read(ctx, target.Metadata)
	if err != nil {
		if errors.Is(err, store.ErrMetadataNotFound) {
			return time.Time{}, ErrNoRemoteData
		}
		return time.Time{}, fmt.Errorf("%w: %w", ErrFileSystem, err)
	}

	return r.skew.EffectiveRemoteTime(meta.ModifiedAt(), fileModified), nil
}

// ShouldPullRemote compares whole seconds:
//   - remote newer: pull.
//   - equal, or local newer by more than StaleLocalThreshold: pull only when
//     the snapshot holds strictly more transactions.
//   - otherwise: ErrLocalIsNewer.
func (r *conflictResolver) ShouldPullRemote(ctx context.Context, localDB string, target models.SnapshotTarget) (bool, error) {
	remote, err := r.RemoteModified(ctx, target)
	if err != nil {
		return false, err
	}

	localModified, err := utils.ModTime(localDB)
	if err != nil {
		return false, fmt.Errorf("%w: stat local database: %w", ErrFileSystem, err)
	}

	remoteSecs, localSecs := remote.Unix(), localModified.Unix()

	switch {
	case remoteSecs > localSecs:
		return true, nil
	case remoteSecs == localSecs, localSecs-remoteSecs > int64(StaleLocalThreshold/time.Second):
		if r.remoteHasMoreTransactions(ctx, localDB, target.DB) {
			return true, nil
		}
	}

	return false, ErrLocalIsNewer
}

func (r *conflictResolver) ShouldPushLocal(ctx context.Context, localDB string, target models.SnapshotTarget) (bool, error) {
	remote, err := r.RemoteModified(ctx, target)
	if errors.Is(err, ErrNoRemoteData) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	localModified, err := utils.ModTime(localDB)
	if err != nil {
		return false, fmt.Errorf("%w: stat local database: %w", ErrFileSystem, err)
	}

	remoteSecs, localSecs := remote.Unix(), localModified.Unix()

	switch {
	case localSecs > remoteSecs:
		return true, nil
	case remoteSecs > localSecs:
		return false, ErrRemoteIsNewer
	default:
		return false, nil
	}
}

// remoteHasMoreTransactions treats an unreadable count as zero.
func (r *conflictResolver) remoteHasMoreTransactions(ctx context.Context, localDB, remoteDB string) bool {
	remoteCount := r.countOrZero(ctx, remoteDB)
	localCount := r.countOrZero(ctx, localDB)

	r.logger.Debug().
		Str("func", "conflictResolver.remoteHasMoreTransactions").
		Int64("remote_count", remoteCount).
		Int64("local_count", localCount).
		Msg("comparing transaction counts")

	return remoteCount > localCount
}

func (r *conflictResolver) countOrZero(ctx context.Context, dbPath string) int64 {
	count, err := r.inspector.CountTransactions(ctx, dbPath)
	if err != nil {
		r.logger.Warn().Err(err).
			Str("func", "conflictResolver.countOrZero").
			Str("db", dbPath).
			Msg("cannot count transactions, assuming 0")
		return 0
	}
	return count
}
