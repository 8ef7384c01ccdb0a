package workers

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
)

// syncWorker runs the startup sequence of the sync manager. The manager
// owns its scheduler, so stopping the worker closes the manager.
type syncWorker struct {
	manager service.SyncManager

	logger *logger.Logger
}

func newSyncWorker(manager service.SyncManager, logger *logger.Logger) *syncWorker {
	return &syncWorker{manager: manager, logger: logger}
}

func (s *syncWorker) Run(ctx context.Context) {
	s.manager.Initialize(ctx)

	status := s.manager.GetSyncStatus(ctx)
	s.logger.Info().
		Str("func", "syncWorker.Run").
		Bool("auto_sync", status.IsEnabled).
		Bool("remote_available", status.RemoteAvailable).
		Msg("sync manager initialized")
}

func (s *syncWorker) Stop() {
	s.manager.Close()
	s.logger.Info().Str("func", "syncWorker.Stop").Msg("sync manager closed")
}
