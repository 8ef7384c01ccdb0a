package workers

import (
	"context"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/watcher"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the daemon workers in start order: the sync worker
// first, so the startup pull finishes before the watcher can report the
// pulled file as a local change.
func NewWorkers(services *service.Services, localDB string, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		newSyncWorker(services.SyncManager, logger),
		watcher.NewDBWatcher(localDB, cfg.WatchDebounce, services.SyncManager, logger),
	}}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
