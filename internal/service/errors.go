package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/models"
)

var (
	ErrRemoteUnavailable = errors.New("remote folder is not available")
	ErrFileSystem        = errors.New("file system error")
	ErrDatabase          = errors.New("database error")
	ErrConfiguration     = errors.New("configuration error")
	// ErrTimeout is reserved; no engine operation enforces a deadline yet.
	ErrTimeout = errors.New("operation timed out")

	ErrSchemaVerificationFailed = errors.New("schema verification failed")
	ErrInvalidSyncInterval      = errors.New("sync interval must be at least 1 minute")

	ErrSyncInProgress = errors.New("sync already in progress")

	ErrBackupNotFound         = errors.New("backup file not found")
	ErrInvalidBackupTimestamp = errors.New("invalid backup timestamp")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// Control outcomes. They explain why nothing was copied and are never
// recorded as sync failures.
var (
	ErrNoRemoteData  = errors.New("no sync data found")
	ErrLocalIsNewer  = errors.New("local database is newer or same age")
	ErrRemoteIsNewer = errors.New("remote database is newer")
)

// SyncFailedError is returned when a push failed on the shared folder and on
// the local fallback tier.
type SyncFailedError struct {
	Remote error
	Local  error
}

func (e *SyncFailedError) Error() string {
	return fmt.Sprintf("Both remote and local sync failed. Remote: %v, Local: %v", e.Remote, e.Local)
}

func (e *SyncFailedError) Unwrap() []error {
	return []error{e.Remote, e.Local}
}

// IsControlOutcome reports whether err only explains a skipped transfer.
func IsControlOutcome(err error) bool {
	return errors.Is(err, ErrNoRemoteData) ||
		errors.Is(err, ErrLocalIsNewer) ||
		errors.Is(err, ErrRemoteIsNewer)
}

// ErrorTypeOf maps err to the tag stored in [models.SyncStatus.ErrorType].
func ErrorTypeOf(err error) models.ErrorType {
	var syncFailed *SyncFailedError

	switch {
	case errors.As(err, &syncFailed):
		return models.ErrorTypeSyncFailed
	case errors.Is(err, ErrRemoteUnavailable):
		return models.ErrorTypeRemoteUnavailable
	case errors.Is(err, ErrDatabase),
		errors.Is(err, ErrSchemaVerificationFailed),
		errors.Is(err, store.ErrMissingTables):
		return models.ErrorTypeDatabase
	case errors.Is(err, ErrConfiguration):
		return models.ErrorTypeConfiguration
	case errors.Is(err, ErrTimeout):
		return models.ErrorTypeTimeout
	case errors.Is(err, ErrFileSystem):
		return models.ErrorTypeFileSystem
	default:
		return models.ErrorTypeSyncFailed
	}
}
