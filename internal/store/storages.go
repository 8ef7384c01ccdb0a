package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
)

// Storages groups every repository the service layer needs.
type Storages struct {
	Layout               Layout
	LedgerInspector      LedgerInspector
	MetadataRepository   MetadataRepository
	SyncConfigRepository SyncConfigRepository
}

// NewStorages initialises the storage layer:
//  1. Creates the local ledger database if it does not exist yet and runs
//     pending schema migrations.
//  2. Builds the repositories over the resolved on-disk [Layout].
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	layout := NewLayout(cfg)

	if err := EnsureLedger(ctx, layout.LocalDB(), log); err != nil {
		return nil, fmt.Errorf("ledger database error: %w", err)
	}

	return &Storages{
		Layout:               layout,
		LedgerInspector:      NewLedgerInspector(log),
		MetadataRepository:   NewMetadataRepository(log),
		SyncConfigRepository: NewSyncConfigRepository(layout.RemoteConfigPath(), layout.LocalConfigPath(), log),
	}, nil
}
