package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

type syncEngine struct {
	layout   store.Layout
	prober   Prober
	resolver ConflictResolver
	copier   Copier
	mirror   AttachmentMirror

	logger *logger.Logger
}

// NewSyncEngine wires the sync algorithms. mirror may be nil, in which case
// attachments are not copied.
func NewSyncEngine(layout store.Layout, prober Prober, resolver ConflictResolver, copier Copier, mirror AttachmentMirror, log *logger.Logger) SyncEngine {
	return &syncEngine{
		layout:   layout,
		prober:   prober,
		resolver: resolver,
		copier:   copier,
		mirror:   mirror,
		logger:   log,
	}
}

func (e *syncEngine) IsRemoteAvailable(ctx context.Context, cfg models.SyncConfig) bool {
	return e.prober.Probe(ctx, e.layout.RemoteRoot(cfg))
}

// RunCycle pulls the snapshot when it is newer, then pushes when something
// was pulled or the local ledger is strictly newer than the snapshot.
//
// A failed pull does not stop the cycle; the cycle only fails on it when the
// push step has nothing to do. With the shared folder unreachable and
// cfg.FallbackToLocal set, only the push to the local tier is attempted.
func (e *syncEngine) RunCycle(ctx context.Context, cfg models.SyncConfig) (models.CycleResult, error) {
	log := e.cycleLogger(ctx)
	root := e.layout.RemoteRoot(cfg)
	localDB := e.layout.LocalDB()
	result := models.CycleResult{Pull: models.PullSkipped, Push: models.SkippedPush}

	if !e.prober.Probe(ctx, root) {
		remoteErr := fmt.Errorf("%w: %s", ErrRemoteUnavailable, root)
		if !cfg.FallbackToLocal {
			result.Push = models.PushFailed
			return result, remoteErr
		}

		result.Degraded = true
		result.Tier = models.TierLocal
		if !e.needsPush(ctx, localDB, e.layout.LocalTarget()) {
			log.Debug().Str("func", "syncEngine.RunCycle").Msg("local tier is up to date")
			return result, nil
		}
		return e.pushLocalTier(ctx, localDB, result, remoteErr)
	}

	target := e.layout.RemoteTarget(root)
	result.Tier = models.TierRemote

	pullErr := e.pullIfNewer(ctx, localDB, target, root, &result)

	if result.Pull != models.Pulled && !e.needsPush(ctx, localDB, target) {
		if pullErr != nil {
			return result, pullErr
		}
		log.Debug().Str("func", "syncEngine.RunCycle").Str("pull", string(result.Pull)).Msg("nothing to sync")
		return result, nil
	}

	return e.push(ctx, cfg, root, localDB, result)
}

// PushOnly publishes the local ledger without consulting the snapshot.
func (e *syncEngine) PushOnly(ctx context.Context, cfg models.SyncConfig) (models.CycleResult, error) {
	root := e.layout.RemoteRoot(cfg)
	localDB := e.layout.LocalDB()
	result := models.CycleResult{Pull: models.PullSkipped, Push: models.SkippedPush}

	if !e.prober.Probe(ctx, root) {
		remoteErr := fmt.Errorf("%w: %s", ErrRemoteUnavailable, root)
		if !cfg.FallbackToLocal {
			result.Push = models.PushFailed
			return result, remoteErr
		}
		result.Degraded = true
		return e.pushLocalTier(ctx, localDB, result, remoteErr)
	}

	return e.push(ctx, cfg, root, localDB, result)
}

// Pull replaces the local ledger with the newest snapshot the resolver
// accepts. The local tier is used when the shared folder is unreachable and
// cfg.FallbackToLocal is set.
func (e *syncEngine) Pull(ctx context.Context, cfg models.SyncConfig) (models.CycleResult, error) {
	root := e.layout.RemoteRoot(cfg)
	localDB := e.layout.LocalDB()
	result := models.CycleResult{Pull: models.PullSkipped, Push: models.SkippedPush}

	var target models.SnapshotTarget
	switch {
	case e.prober.Probe(ctx, root):
		target = e.layout.RemoteTarget(root)
	case cfg.FallbackToLocal:
		target = e.layout.LocalTarget()
		result.Degraded = true
	default:
		result.Pull = models.PullFailed
		return result, fmt.Errorf("%w: %s", ErrRemoteUnavailable, root)
	}
	result.Tier = target.Tier

	ok, err := e.resolver.ShouldPullRemote(ctx, localDB, target)
	switch {
	case IsControlOutcome(err):
		result.Pull = models.PullNoOp
		return result, err
	case err != nil:
		result.Pull = models.PullFailed
		result.PullError = err.Error()
		return result, err
	case !ok:
		result.Pull = models.PullNoOp
		return result, ErrLocalIsNewer
	}

	if err = e.replaceLocal(ctx, localDB, target); err != nil {
		result.Pull = models.PullFailed
		result.PullError = err.Error()
		return result, err
	}

	result.Pull = models.Pulled
	if target.Tier == models.TierRemote {
		e.mirrorPull(ctx, root)
	}
	return result, nil
}

// pullIfNewer records the pull outcome in result and returns the error of a
// failed pull. Control outcomes are not errors here.
func (e *syncEngine) pullIfNewer(ctx context.Context, localDB string, target models.SnapshotTarget, root string, result *models.CycleResult) error {
	log := e.cycleLogger(ctx)

	ok, err := e.resolver.ShouldPullRemote(ctx, localDB, target)
	switch {
	case IsControlOutcome(err), err == nil && !ok:
		result.Pull = models.PullNoOp
		return nil
	case err != nil:
		log.Warn().Err(err).Str("func", "syncEngine.pullIfNewer").Msg("pull check failed")
		result.Pull = models.PullFailed
		result.PullError = err.Error()
		return err
	}

	if err = e.replaceLocal(ctx, localDB, target); err != nil {
		log.Warn().Err(err).Str("func", "syncEngine.pullIfNewer").Msg("pull failed, local database kept")
		result.Pull = models.PullFailed
		result.PullError = err.Error()
		return err
	}

	log.Info().Str("func", "syncEngine.pullIfNewer").Msg("pulled newer snapshot")
	result.Pull = models.Pulled
	e.mirrorPull(ctx, root)
	return nil
}

func (e *syncEngine) replaceLocal(ctx context.Context, localDB string, target models.SnapshotTarget) error {
	modTime, err := e.resolver.RemoteModified(ctx, target)
	if err != nil {
		return err
	}
	return e.copier.ReplaceLocalWith(ctx, localDB, target.DB, modTime)
}

// needsPush treats an unexpected resolver error as "push" so a broken
// sidecar gets rewritten.
func (e *syncEngine) needsPush(ctx context.Context, localDB string, target models.SnapshotTarget) bool {
	ok, err := e.resolver.ShouldPushLocal(ctx, localDB, target)
	if err != nil && !IsControlOutcome(err) {
		e.cycleLogger(ctx).Warn().Err(err).Str("func", "syncEngine.needsPush").Msg("push check failed, pushing anyway")
		return true
	}
	return ok
}

// push publishes to the shared folder, falling back to the local tier.
func (e *syncEngine) push(ctx context.Context, cfg models.SyncConfig, root, localDB string, result models.CycleResult) (models.CycleResult, error) {
	log := e.cycleLogger(ctx)

	_, remoteErr := e.copier.PushLocalTo(ctx, localDB, e.layout.RemoteTarget(root))
	if remoteErr == nil {
		result.Push = models.Pushed
		result.Tier = models.TierRemote
		e.mirrorPush(ctx, root)
		return result, nil
	}

	log.Warn().Err(remoteErr).Str("func", "syncEngine.push").Msg("push to shared folder failed")

	if !cfg.FallbackToLocal {
		result.Push = models.PushFailed
		return result, remoteErr
	}

	result.Degraded = true
	return e.pushLocalTier(ctx, localDB, result, remoteErr)
}

func (e *syncEngine) pushLocalTier(ctx context.Context, localDB string, result models.CycleResult, remoteErr error) (models.CycleResult, error) {
	result.Tier = models.TierLocal

	if _, localErr := e.copier.PushLocalTo(ctx, localDB, e.layout.LocalTarget()); localErr != nil {
		result.Push = models.PushFailed
		return result, &SyncFailedError{Remote: remoteErr, Local: localErr}
	}

	e.cycleLogger(ctx).Info().Str("func", "syncEngine.pushLocalTier").Msg("local database saved to local tier")
	result.Push = models.Pushed
	return result, nil
}

func (e *syncEngine) mirrorPush(ctx context.Context, root string) {
	if e.mirror == nil {
		return
	}
	if n, err := e.mirror.Push(ctx, root); err != nil {
		e.cycleLogger(ctx).Warn().Err(err).Str("func", "syncEngine.mirrorPush").Msg("attachment mirroring failed")
	} else if n > 0 {
		e.cycleLogger(ctx).Info().Str("func", "syncEngine.mirrorPush").Int("files", n).Msg("attachments copied to shared folder")
	}
}

func (e *syncEngine) mirrorPull(ctx context.Context, root string) {
	if e.mirror == nil {
		return
	}
	if n, err := e.mirror.Pull(ctx, root); err != nil {
		e.cycleLogger(ctx).Warn().Err(err).Str("func", "syncEngine.mirrorPull").Msg("attachment mirroring failed")
	} else if n > 0 {
		e.cycleLogger(ctx).Info().Str("func", "syncEngine.mirrorPull").Int("files", n).Msg("attachments copied from shared folder")
	}
}

func (e *syncEngine) cycleLogger(ctx context.Context) *zerolog.Logger {
	l := e.logger.Logger
	if trigger, ok := utils.GetTriggerFromContext(ctx); ok {
		l = l.With().Str("trigger", trigger).Logger()
	}
	return &l
}

// isUnavailable reports whether a cycle failed only because the shared
// folder could not be reached.
func isUnavailable(err error) bool {
	var syncFailed *SyncFailedError
	if errors.As(err, &syncFailed) {
		return false
	}
	return errors.Is(err, ErrRemoteUnavailable)
}
