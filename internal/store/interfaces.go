package store

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LedgerInspector opens ledger database files read-only and answers the
// questions the sync engine asks about them.
type LedgerInspector interface {
	// CountTransactions returns the row count of the primary ledger table.
	CountTransactions(ctx context.Context, dbPath string) (int64, error)
	// VerifySchema fails with ErrMissingTables unless every required table
	// exists in the database at dbPath.
	VerifySchema(ctx context.Context, dbPath string) error
}

// MetadataRepository reads and writes snapshot metadata sidecars.
type MetadataRepository interface {
	// Read returns ErrMetadataNotFound when the sidecar does not exist.
	Read(ctx context.Context, path string) (models.SyncMetadata, error)
	// Write replaces the sidecar atomically.
	Write(ctx context.Context, path string, meta models.SyncMetadata) error
}

// SyncConfigRepository persists [models.SyncConfig] in two tiers: the shared
// folder first, the local data directory second.
type SyncConfigRepository interface {
	// Load returns the remote config, else the local one, else defaults.
	Load(ctx context.Context) models.SyncConfig
	// Save writes the remote copy, falling back to the local one.
	Save(ctx context.Context, cfg models.SyncConfig) error
}
