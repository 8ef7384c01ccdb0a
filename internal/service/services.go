package service

import (
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/models"
)

type Services struct {
	SyncManager    SyncManager
	BackupService  BackupService
	AppInfoService AppInfoService
}

// NewServices wires the sync engine over storages. The returned manager is
// not initialized yet.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	layout := storages.Layout

	prober := NewProber(layout, logger)
	resolver := NewConflictResolver(storages.LedgerInspector, storages.MetadataRepository, NewClockSkewPolicy(cfg.Remote.Platform), logger)
	copier := NewCopier(layout, storages.LedgerInspector, storages.MetadataRepository, logger)
	engine := NewSyncEngine(layout, prober, resolver, copier, NewAttachmentMirror(layout, logger), logger)
	manager := NewSyncManager(engine, storages.SyncConfigRepository, layout, cfg.Workers, logger)

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		SyncManager:    manager,
		BackupService:  NewBackupService(layout, manager, prober, storages.LedgerInspector, copier, logger),
		AppInfoService: appInfo,
	}, nil
}
