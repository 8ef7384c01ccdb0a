// Package watcher reports changes of the local ledger database file to the
// sync manager.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
)

// DefaultDebounce is used when a watcher is built with a non-positive
// debounce.
const DefaultDebounce = 2 * time.Second

// Notifier receives the settled change. service.SyncManager implements it.
type Notifier interface {
	NotifyDataChanged(ctx context.Context) error
}

// DBWatcher watches the directory of the ledger file and calls the notifier
// once the file has stopped changing for the debounce period.
//
// The directory is watched instead of the file so that a replaced file
// (rename over the old one) keeps being observed.
type DBWatcher struct {
	path     string
	debounce time.Duration
	notifier Notifier

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool

	logger *logger.Logger
}

func NewDBWatcher(path string, debounce time.Duration, notifier Notifier, log *logger.Logger) *DBWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &DBWatcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		notifier: notifier,
		logger:   log,
	}
}

// Run starts the watcher and logs a failure to start. It returns
// immediately.
func (w *DBWatcher) Run(ctx context.Context) {
	if err := w.Start(ctx); err != nil {
		w.logger.Err(err).Str("func", "DBWatcher.Run").Str("path", w.path).Msg("database watcher not started")
		return
	}
	w.logger.Info().Str("func", "DBWatcher.Run").Str("path", w.path).Dur("debounce", w.debounce).Msg("watching local database")
}

// Start adds the ledger directory to a new fsnotify watcher and starts the
// event loop. Starting a running watcher is a no-op.
func (w *DBWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err = fw.Add(filepath.Dir(w.path)); err != nil {
		_ = fw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.running = true
	w.wg.Add(1)

	go w.loop(loopCtx, fw)
	return nil
}

// Stop ends the event loop and waits for a notification in flight. Safe to
// call on a stopped watcher.
func (w *DBWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *DBWatcher) loop(ctx context.Context, fw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()
	defer fw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	// pending is nil while no change is waiting to settle
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			timer.Reset(w.debounce)
			pending = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Str("func", "DBWatcher.loop").Msg("fsnotify error")

		case <-pending:
			pending = nil
			if w.notify(ctx) {
				timer.Reset(w.debounce)
				pending = timer.C
			}
		}
	}
}

// relevant keeps writes and creations of the ledger file itself.
func (w *DBWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// notify reports whether the change must be reported again later because a
// sync was running.
func (w *DBWatcher) notify(ctx context.Context) bool {
	err := w.notifier.NotifyDataChanged(ctx)
	switch {
	case err == nil:
		return false
	case errors.Is(err, service.ErrSyncInProgress):
		w.logger.Debug().Str("func", "DBWatcher.notify").Msg("sync in progress, change will be reported again")
		return true
	default:
		w.logger.Warn().Err(err).Str("func", "DBWatcher.notify").Msg("data-changed sync failed")
		return false
	}
}
