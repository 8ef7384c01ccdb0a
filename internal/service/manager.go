package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// Values stored under utils.TriggerCtxKey.
const (
	TriggerStartup     = "startup"
	TriggerScheduler   = "scheduler"
	TriggerManual      = "manual"
	TriggerDataChanged = "data_changed"
	TriggerPull        = "pull"
)

type manager struct {
	engine  SyncEngine
	configs store.SyncConfigRepository
	layout  store.Layout

	tracker   *statusTracker
	scheduler Scheduler
	threshold uint32
	now       func() time.Time

	initMu      sync.Mutex
	initialized bool

	cfgMu sync.RWMutex
	cfg   models.SyncConfig

	logger *logger.Logger
}

// NewSyncManager builds the [SyncManager]. Nothing is probed or loaded until
// Initialize (or the first GetSyncStatus) runs.
func NewSyncManager(engine SyncEngine, configs store.SyncConfigRepository, layout store.Layout, workers config.Workers, log *logger.Logger) SyncManager {
	m := &manager{
		engine:    engine,
		configs:   configs,
		layout:    layout,
		tracker:   newStatusTracker(),
		threshold: workers.FailureThreshold,
		now:       time.Now,
		cfg:       models.DefaultSyncConfig(),
		logger:    log,
	}
	m.scheduler = NewScheduler(m.runScheduledCycle, workers.TickPeriod)
	return m
}

func (m *manager) Initialize(ctx context.Context) {
	m.initMu.Lock()
	defer m.initMu.Unlock()

	if m.initialized {
		return
	}
	m.initialized = true

	ctx = utils.WithTrigger(ctx, TriggerStartup)

	cfg := m.configs.Load(ctx)
	m.setConfig(cfg)

	available := m.engine.IsRemoteAvailable(ctx, cfg)
	m.tracker.SetRemoteAvailable(available)

	m.logger.Info().
		Str("func", "manager.Initialize").
		Bool("remote_available", available).
		Bool("auto_sync", cfg.AutoSyncEnabled).
		Uint64("interval_minutes", cfg.SyncIntervalMinutes).
		Msg("initializing sync")

	if available {
		m.startupPull(ctx, cfg)
	}

	m.applyEnabled(ctx, cfg, available)
}

// startupPull loads a newer snapshot once. When the shared folder has no
// snapshot yet and auto sync is on, the local ledger is published instead.
func (m *manager) startupPull(ctx context.Context, cfg models.SyncConfig) {
	if !m.tracker.TryBegin() {
		return
	}

	result, err := m.engine.Pull(ctx, cfg)
	switch {
	case err == nil:
		m.tracker.Succeed(m.now(), result)
		m.logger.Info().Str("func", "manager.startupPull").Msg("loaded latest snapshot on startup")
	case errors.Is(err, ErrNoRemoteData) && cfg.AutoSyncEnabled:
		m.tracker.Abort()
		m.logger.Info().Str("func", "manager.startupPull").Msg("no snapshot yet, publishing local database")
		_, _ = m.manualSync(ctx)
	case IsControlOutcome(err):
		m.tracker.Abort()
		m.logger.Debug().Err(err).Str("func", "manager.startupPull").Msg("startup pull skipped")
	default:
		m.tracker.Abort()
		m.logger.Warn().Err(err).Str("func", "manager.startupPull").Msg("startup pull failed")
	}
}

// GetSyncStatus re-probes the shared folder while it is marked unavailable,
// so auto sync resumes once the folder is back.
func (m *manager) GetSyncStatus(ctx context.Context) models.SyncStatus {
	m.Initialize(ctx)

	if status := m.tracker.Snapshot(); !status.RemoteAvailable && !status.SyncInProgress {
		cfg := m.config()
		if available := m.engine.IsRemoteAvailable(ctx, cfg); available {
			m.tracker.SetRemoteAvailable(true)
			m.applyEnabled(ctx, cfg, true)
		}
	}

	return m.tracker.Snapshot()
}

func (m *manager) GetSyncConfig(ctx context.Context) models.SyncConfig {
	m.Initialize(ctx)
	return m.config()
}

func (m *manager) UpdateSyncConfig(ctx context.Context, cfg models.SyncConfig) (models.SyncConfig, error) {
	m.Initialize(ctx)

	if cfg.SyncIntervalMinutes < 1 {
		return m.config(), fmt.Errorf("%w: %w", ErrConfiguration, ErrInvalidSyncInterval)
	}

	m.save(ctx, cfg)
	m.setConfig(cfg)

	available := m.engine.IsRemoteAvailable(ctx, cfg)
	m.tracker.SetRemoteAvailable(available)
	m.applyEnabled(ctx, cfg, available)

	return cfg, nil
}

func (m *manager) ManualSync(ctx context.Context) (models.CycleResult, error) {
	m.Initialize(ctx)
	return m.manualSync(utils.WithTrigger(ctx, TriggerManual))
}

// manualSync never trips the breaker, but a failure still counts in
// retry_count.
func (m *manager) manualSync(ctx context.Context) (models.CycleResult, error) {
	if !m.tracker.TryBegin() {
		return models.CycleResult{}, ErrSyncInProgress
	}

	result, err := m.engine.PushOnly(ctx, m.config())
	if err != nil {
		m.tracker.Fail(m.now(), err, result, false, m.threshold)
		m.logger.Err(err).Str("func", "manager.manualSync").Msg("manual sync failed")
		return result, err
	}

	m.tracker.Succeed(m.now(), result)
	m.logger.Info().Str("func", "manager.manualSync").Str("tier", string(result.Tier)).Msg("manual sync completed")
	return result, nil
}

func (m *manager) LoadFromRemote(ctx context.Context) (models.CycleResult, error) {
	m.Initialize(ctx)
	ctx = utils.WithTrigger(ctx, TriggerPull)

	if !m.tracker.TryBegin() {
		return models.CycleResult{}, ErrSyncInProgress
	}

	result, err := m.engine.Pull(ctx, m.config())
	switch {
	case err == nil:
		m.tracker.Succeed(m.now(), result)
	case IsControlOutcome(err):
		m.tracker.Abort()
	default:
		m.tracker.Fail(m.now(), err, result, false, m.threshold)
		m.logger.Err(err).Str("func", "manager.LoadFromRemote").Msg("load from remote failed")
	}

	return result, err
}

// StartAutoSync turns auto sync on, persists it and closes the circuit
// breaker. It fails with ErrRemoteUnavailable when the shared folder is
// unreachable and the local fallback is off.
func (m *manager) StartAutoSync(ctx context.Context) error {
	m.Initialize(ctx)

	cfg := m.config()
	if !cfg.AutoSyncEnabled {
		cfg.AutoSyncEnabled = true
		m.save(ctx, cfg)
		m.setConfig(cfg)
	}

	available := m.engine.IsRemoteAvailable(ctx, cfg)
	m.tracker.SetRemoteAvailable(available)
	m.tracker.Reset(false)
	m.applyEnabled(ctx, cfg, available)

	if !available && !cfg.FallbackToLocal {
		return fmt.Errorf("%w: %s", ErrRemoteUnavailable, m.layout.RemoteRoot(cfg))
	}

	m.logger.Info().Str("func", "manager.StartAutoSync").Msg("auto sync started")
	return nil
}

func (m *manager) StopAutoSync(ctx context.Context) error {
	m.Initialize(ctx)

	cfg := m.config()
	if cfg.AutoSyncEnabled {
		cfg.AutoSyncEnabled = false
		m.save(ctx, cfg)
		m.setConfig(cfg)
	}

	m.tracker.SetEnabled(false)
	m.scheduler.Stop()

	m.logger.Info().Str("func", "manager.StopAutoSync").Msg("auto sync stopped")
	return nil
}

// NotifyDataChanged runs a manual sync when auto sync is enabled and the
// local ledger changed after the last transfer.
func (m *manager) NotifyDataChanged(ctx context.Context) error {
	m.Initialize(ctx)

	if !m.tracker.Snapshot().IsEnabled {
		return nil
	}

	modified, err := utils.ModTime(m.layout.LocalDB())
	if err == nil && !modified.After(m.tracker.LastTransfer()) {
		return nil
	}

	_, err = m.manualSync(utils.WithTrigger(ctx, TriggerDataChanged))
	return err
}

func (m *manager) RunExclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Initialize(ctx)

	if !m.tracker.TryBegin() {
		return ErrSyncInProgress
	}
	defer m.tracker.Abort()

	return fn(ctx)
}

func (m *manager) Close() {
	m.scheduler.Stop()
}

// runScheduledCycle is the scheduler tick: it runs a cycle when auto sync is
// enabled, the interval has elapsed since the last success and no other sync
// is running.
func (m *manager) runScheduledCycle(ctx context.Context) {
	ctx = utils.WithTrigger(ctx, TriggerScheduler)

	status := m.tracker.Snapshot()
	if !status.IsEnabled {
		return
	}

	cfg := m.config()
	if !cfg.AutoSyncEnabled {
		return
	}

	if status.LastSync != nil && m.now().Sub(*status.LastSync) < cfg.Interval() {
		return
	}

	if !m.tracker.TryBegin() {
		return
	}

	result, err := m.engine.RunCycle(ctx, cfg)
	if err != nil {
		if m.tracker.Fail(m.now(), err, result, true, m.threshold) {
			m.logger.Error().Err(err).Str("func", "manager.runScheduledCycle").Uint32("threshold", m.threshold).Msg(msgAutoSyncDisabled)
			return
		}
		m.logger.Warn().Err(err).Str("func", "manager.runScheduledCycle").Msg("scheduled sync failed")
		return
	}

	m.tracker.Succeed(m.now(), result)
	m.logger.Debug().
		Str("func", "manager.runScheduledCycle").
		Str("pull", string(result.Pull)).
		Str("push", string(result.Push)).
		Msg("scheduled sync completed")
}

// applyEnabled derives is_enabled from cfg and availability and starts or
// stops the scheduler to match. It must not be called from a tick.
func (m *manager) applyEnabled(ctx context.Context, cfg models.SyncConfig, available bool) {
	enabled := cfg.AutoSyncEnabled && (available || cfg.FallbackToLocal)
	m.tracker.SetEnabled(enabled)

	switch {
	case !enabled:
		m.scheduler.Stop()
	case !m.tracker.CircuitOpen():
		m.scheduler.Start(context.WithoutCancel(ctx))
	}
}

// save never fails the caller; the in-memory value stays authoritative.
func (m *manager) save(ctx context.Context, cfg models.SyncConfig) {
	if err := m.configs.Save(ctx, cfg); err != nil {
		m.logger.Err(err).Str("func", "manager.save").Msg("failed to persist sync config")
	}
}

func (m *manager) config() models.SyncConfig {
	m.cfgMu.RLock()
	defer m.cfgMu.RUnlock()
	return m.cfg
}

func (m *manager) setConfig(cfg models.SyncConfig) {
	m.cfgMu.Lock()
	defer m.cfgMu.Unlock()
	m.cfg = cfg
}
