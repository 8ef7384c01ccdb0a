package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/mock"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/testutil"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

func defaultCfg() models.SyncConfig {
	return models.DefaultSyncConfig()
}

// ── RunCycle on real files ───────────────────────────────────────────────────

func TestRunCycle_EqualTimestampsPullsLargerLedger(t *testing.T) {
	env := newTestEnv(t)
	stamp := time.Unix(1_750_000_000, 0)
	env.newLocal(t, 10, stamp)
	env.publishRemote(t, 12, stamp)

	result, err := env.engine.RunCycle(context.Background(), defaultCfg())

	require.NoError(t, err)
	assert.Equal(t, models.Pulled, result.Pull)
	assert.Equal(t, models.Pushed, result.Push)
	assert.Equal(t, models.TierRemote, result.Tier)
	assert.False(t, result.Degraded)

	assert.Equal(t, int64(12), testutil.CountTransactions(t, env.localDB()))
	assert.Equal(t, digest(t, env.remote().DB), digest(t, env.localDB()))
	assert.GreaterOrEqual(t, env.readSidecar(t, env.remote()).LastModified, stamp.Unix())
}

func TestRunCycle_SecondRunCopiesNothing(t *testing.T) {
	env := newTestEnv(t)
	stamp := time.Unix(1_750_000_000, 0)
	env.newLocal(t, 10, stamp)
	env.publishRemote(t, 12, stamp)

	_, err := env.engine.RunCycle(context.Background(), defaultCfg())
	require.NoError(t, err)

	localDigest := digest(t, env.localDB())
	remoteDigest := digest(t, env.remote().DB)
	sidecar := testutil.ReadFile(t, env.remote().Metadata)

	result, err := env.engine.RunCycle(context.Background(), defaultCfg())

	require.NoError(t, err)
	assert.Equal(t, models.PullNoOp, result.Pull)
	assert.Equal(t, models.SkippedPush, result.Push)
	assert.Equal(t, localDigest, digest(t, env.localDB()))
	assert.Equal(t, remoteDigest, digest(t, env.remote().DB))
	assert.Equal(t, sidecar, testutil.ReadFile(t, env.remote().Metadata))
	assert.Empty(t, safetyBackups(t, env))
}

func TestRunCycle_FirstDevicePublishes(t *testing.T) {
	env := newTestEnv(t)
	env.newLocal(t, 5, time.Now().Add(-time.Minute))

	result, err := env.engine.RunCycle(context.Background(), defaultCfg())

	require.NoError(t, err)
	assert.Equal(t, models.PullNoOp, result.Pull)
	assert.Equal(t, models.Pushed, result.Push)
	assert.FileExists(t, env.remote().DB)
	assert.FileExists(t, env.remote().Metadata)
	assert.Equal(t, int64(5), testutil.CountTransactions(t, env.remote().DB))
}

func TestRunCycle_LocalNewerPushes(t *testing.T) {
	env := newTestEnv(t)
	base := time.Unix(1_750_000_000, 0)
	env.publishRemote(t, 3, base)
	env.newLocal(t, 4, base.Add(time.Hour))

	result, err := env.engine.RunCycle(context.Background(), defaultCfg())

	require.NoError(t, err)
	assert.Equal(t, models.PullNoOp, result.Pull)
	assert.Equal(t, models.Pushed, result.Push)
	assert.Equal(t, int64(4), testutil.CountTransactions(t, env.remote().DB))
}

func TestRunCycle_PullsNewerAndMirrorsAttachments(t *testing.T) {
	env := newTestEnv(t)
	base := time.Unix(1_750_000_000, 0)
	env.newLocal(t, 3, base)
	env.publishRemote(t, 8, base.Add(time.Hour))

	receipt := filepath.Join(env.layout.RemoteAttachmentsDir(env.root), "2025", "receipt.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(receipt), 0o755))
	require.NoError(t, os.WriteFile(receipt, []byte("png"), 0o644))

	result, err := env.engine.RunCycle(context.Background(), defaultCfg())

	require.NoError(t, err)
	assert.Equal(t, models.Pulled, result.Pull)
	assert.Equal(t, int64(8), testutil.CountTransactions(t, env.localDB()))
	assert.FileExists(t, filepath.Join(env.layout.LocalAttachmentsDir(), "2025", "receipt.png"))
}

func TestRunCycle_CorruptSnapshotKeepsLocal(t *testing.T) {
	env := newTestEnv(t)
	base := time.Unix(1_750_000_000, 0)
	env.newLocal(t, 3, base)

	target := env.remote()
	testutil.NewForeignSQLite(t, target.DB)
	testutil.SetModTime(t, target.DB, base.Add(time.Hour))
	require.NoError(t, env.metadata.Write(context.Background(), target.Metadata, models.SyncMetadata{
		LastModified: base.Add(time.Hour).Unix(),
		Version:      models.SyncMetadataVersion,
	}))

	before := testutil.ReadFile(t, env.localDB())

	result, err := env.engine.RunCycle(context.Background(), defaultCfg())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaVerificationFailed)
	assert.Equal(t, models.PullFailed, result.Pull)
	assert.Contains(t, result.PullError, "schema verification failed")
	assert.Equal(t, models.SkippedPush, result.Push)
	assert.Equal(t, before, testutil.ReadFile(t, env.localDB()))

	backups := safetyBackups(t, env)
	require.Len(t, backups, 1)
	assert.Equal(t, before, testutil.ReadFile(t, backups[0]))

	mtime, err := utils.ModTime(env.localDB())
	require.NoError(t, err)
	assert.Equal(t, base.Unix(), mtime.Unix(), "a failed pull must not make the local ledger look newer")
}

func TestRunCycle_UnavailableFallsBackToLocalTier(t *testing.T) {
	env := newTestEnv(t)
	env.newLocal(t, 2, time.Now().Add(-time.Minute))
	require.NoError(t, os.RemoveAll(env.root))

	result, err := env.engine.RunCycle(context.Background(), defaultCfg())

	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Equal(t, models.TierLocal, result.Tier)
	assert.Equal(t, models.Pushed, result.Push)
	assert.FileExists(t, env.layout.LocalTarget().DB)
	assert.FileExists(t, env.layout.LocalTarget().Metadata)
}

func TestRunCycle_UnavailableWithoutFallback(t *testing.T) {
	env := newTestEnv(t)
	env.newLocal(t, 2, time.Now())
	require.NoError(t, os.RemoveAll(env.root))

	cfg := defaultCfg()
	cfg.FallbackToLocal = false

	result, err := env.engine.RunCycle(context.Background(), cfg)

	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.Equal(t, models.PushFailed, result.Push)
	assert.NoFileExists(t, env.layout.LocalTarget().DB)
}

func TestRunCycle_RemoteRootOverride(t *testing.T) {
	env := newTestEnv(t)
	env.newLocal(t, 2, time.Now().Add(-time.Minute))

	other := t.TempDir()
	cfg := defaultCfg()
	cfg.RemoteRoot = &other

	_, err := env.engine.RunCycle(context.Background(), cfg)

	require.NoError(t, err)
	assert.FileExists(t, env.layout.RemoteTarget(other).DB)
	assert.NoFileExists(t, env.remote().DB)
}

// ── PushOnly / Pull on real files ────────────────────────────────────────────

func TestPushOnly_OverridesNewerRemote(t *testing.T) {
	env := newTestEnv(t)
	base := time.Unix(1_750_000_000, 0)
	env.newLocal(t, 10, base)
	env.publishRemote(t, 12, base.Add(time.Hour))

	result, err := env.engine.PushOnly(context.Background(), defaultCfg())

	require.NoError(t, err)
	assert.Equal(t, models.PullSkipped, result.Pull)
	assert.Equal(t, models.Pushed, result.Push)
	assert.Equal(t, int64(10), testutil.CountTransactions(t, env.localDB()))
	assert.Equal(t, int64(10), testutil.CountTransactions(t, env.remote().DB))
}

func TestRunCycle_PullsWhereManualWouldPush(t *testing.T) {
	env := newTestEnv(t)
	base := time.Unix(1_750_000_000, 0)
	env.newLocal(t, 10, base)
	env.publishRemote(t, 12, base.Add(time.Hour))

	_, err := env.engine.RunCycle(context.Background(), defaultCfg())

	require.NoError(t, err)
	assert.Equal(t, int64(12), testutil.CountTransactions(t, env.localDB()))
}

func TestPull_ControlOutcomes(t *testing.T) {
	t.Run("no remote data", func(t *testing.T) {
		env := newTestEnv(t)
		env.newLocal(t, 1, time.Now())

		result, err := env.engine.Pull(context.Background(), defaultCfg())

		assert.ErrorIs(t, err, ErrNoRemoteData)
		assert.Equal(t, models.PullNoOp, result.Pull)
	})

	t.Run("local newer", func(t *testing.T) {
		env := newTestEnv(t)
		base := time.Unix(1_750_000_000, 0)
		env.publishRemote(t, 1, base)
		env.newLocal(t, 1, base.Add(time.Minute))

		result, err := env.engine.Pull(context.Background(), defaultCfg())

		assert.ErrorIs(t, err, ErrLocalIsNewer)
		assert.Equal(t, models.PullNoOp, result.Pull)
	})
}

func TestPull_ReplacesLocal(t *testing.T) {
	env := newTestEnv(t)
	base := time.Unix(1_750_000_000, 0)
	env.newLocal(t, 1, base)
	env.publishRemote(t, 6, base.Add(time.Minute))

	result, err := env.engine.Pull(context.Background(), defaultCfg())

	require.NoError(t, err)
	assert.Equal(t, models.Pulled, result.Pull)
	assert.Equal(t, models.SkippedPush, result.Push)
	assert.Equal(t, int64(6), testutil.CountTransactions(t, env.localDB()))

	mtime, err := utils.ModTime(env.localDB())
	require.NoError(t, err)
	assert.Equal(t, base.Add(time.Minute).Unix(), mtime.Unix())
}

// ── two devices sharing one folder ───────────────────────────────────────────

func TestTwoDevices_ConvergeWithoutRestamping(t *testing.T) {
	deviceA := newTestEnv(t)
	deviceB := newTestEnv(t)
	// both devices see the same shared folder
	deviceB.root = deviceA.root
	deviceB.layout.DefaultRemoteRoot = deviceA.root
	deviceB.engine.layout.DefaultRemoteRoot = deviceA.root
	deviceB.copier.layout.DefaultRemoteRoot = deviceA.root

	deviceA.newLocal(t, 4, time.Now().Add(-time.Hour))
	deviceB.newLocal(t, 2, time.Now().Add(-2*time.Hour))

	_, err := deviceA.engine.RunCycle(context.Background(), defaultCfg())
	require.NoError(t, err)

	result, err := deviceB.engine.RunCycle(context.Background(), defaultCfg())
	require.NoError(t, err)
	assert.Equal(t, models.Pulled, result.Pull)
	assert.Equal(t, int64(4), testutil.CountTransactions(t, deviceB.localDB()))

	sidecar := testutil.ReadFile(t, deviceA.remote().Metadata)

	for _, device := range []*testEnv{deviceA, deviceB, deviceA} {
		result, err = device.engine.RunCycle(context.Background(), defaultCfg())
		require.NoError(t, err)
		assert.NotEqual(t, models.Pulled, result.Pull)
	}
	assert.Equal(t, sidecar, testutil.ReadFile(t, deviceA.remote().Metadata))
}

// ── RunCycle with mocks ──────────────────────────────────────────────────────

type engineMocks struct {
	prober   *mock.MockProber
	resolver *mock.MockConflictResolver
	copier   *mock.MockCopier
	mirror   *mock.MockAttachmentMirror
}

func newMockedEngine(t *testing.T, ctrl *gomock.Controller) (*syncEngine, engineMocks, store.Layout) {
	t.Helper()

	layout := store.Layout{
		AppName:           "LedgerBook",
		DataDir:           filepath.Join(t.TempDir(), "data"),
		DBFileName:        "ledgerbook.db",
		DefaultRemoteRoot: filepath.Join(t.TempDir(), "OneDrive"),
	}
	m := engineMocks{
		prober:   mock.NewMockProber(ctrl),
		resolver: mock.NewMockConflictResolver(ctrl),
		copier:   mock.NewMockCopier(ctrl),
		mirror:   mock.NewMockAttachmentMirror(ctrl),
	}
	e := NewSyncEngine(layout, m.prober, m.resolver, m.copier, m.mirror, logger.Nop()).(*syncEngine)
	return e, m, layout
}

func TestRunCycle_BothTiersFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m, layout := newMockedEngine(t, ctrl)
	root := layout.DefaultRemoteRoot

	m.prober.EXPECT().Probe(gomock.Any(), root).Return(true)
	m.resolver.EXPECT().ShouldPullRemote(gomock.Any(), layout.LocalDB(), layout.RemoteTarget(root)).Return(false, ErrNoRemoteData)
	m.resolver.EXPECT().ShouldPushLocal(gomock.Any(), layout.LocalDB(), layout.RemoteTarget(root)).Return(true, nil)
	m.copier.EXPECT().PushLocalTo(gomock.Any(), layout.LocalDB(), layout.RemoteTarget(root)).Return(models.SyncMetadata{}, errors.New("quota exceeded"))
	m.copier.EXPECT().PushLocalTo(gomock.Any(), layout.LocalDB(), layout.LocalTarget()).Return(models.SyncMetadata{}, errors.New("disk full"))

	result, err := e.RunCycle(context.Background(), defaultCfg())

	require.Error(t, err)
	assert.Equal(t, "Both remote and local sync failed. Remote: quota exceeded, Local: disk full", err.Error())
	assert.Equal(t, models.ErrorTypeSyncFailed, ErrorTypeOf(err))
	assert.Equal(t, models.PushFailed, result.Push)
}

func TestRunCycle_RemotePushFailsLocalTierSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m, layout := newMockedEngine(t, ctrl)
	root := layout.DefaultRemoteRoot

	m.prober.EXPECT().Probe(gomock.Any(), root).Return(true)
	m.resolver.EXPECT().ShouldPullRemote(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, ErrLocalIsNewer)
	m.resolver.EXPECT().ShouldPushLocal(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	m.copier.EXPECT().PushLocalTo(gomock.Any(), layout.LocalDB(), layout.RemoteTarget(root)).Return(models.SyncMetadata{}, errors.New("quota exceeded"))
	m.copier.EXPECT().PushLocalTo(gomock.Any(), layout.LocalDB(), layout.LocalTarget()).Return(models.SyncMetadata{LastModified: 1}, nil)

	result, err := e.RunCycle(context.Background(), defaultCfg())

	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Equal(t, models.TierLocal, result.Tier)
	assert.Equal(t, models.Pushed, result.Push)
}

func TestRunCycle_PullFailureWithNothingToPushFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m, _ := newMockedEngine(t, ctrl)
	pullErr := errors.New("permission denied")

	m.prober.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(true)
	m.resolver.EXPECT().ShouldPullRemote(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	m.resolver.EXPECT().RemoteModified(gomock.Any(), gomock.Any()).Return(time.Unix(100, 0), nil)
	m.copier.EXPECT().ReplaceLocalWith(gomock.Any(), gomock.Any(), gomock.Any(), time.Unix(100, 0)).Return(pullErr)
	m.resolver.EXPECT().ShouldPushLocal(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, ErrRemoteIsNewer)

	result, err := e.RunCycle(context.Background(), defaultCfg())

	assert.ErrorIs(t, err, pullErr)
	assert.Equal(t, models.PullFailed, result.Pull)
	assert.Equal(t, models.SkippedPush, result.Push)
}

func TestRunCycle_PushCheckErrorPushes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m, _ := newMockedEngine(t, ctrl)

	m.prober.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(true)
	m.resolver.EXPECT().ShouldPullRemote(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, ErrLocalIsNewer)
	m.resolver.EXPECT().ShouldPushLocal(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("sidecar corrupted"))
	m.copier.EXPECT().PushLocalTo(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.SyncMetadata{}, nil)
	m.mirror.EXPECT().Push(gomock.Any(), gomock.Any()).Return(0, nil)

	result, err := e.RunCycle(context.Background(), defaultCfg())

	require.NoError(t, err)
	assert.Equal(t, models.Pushed, result.Push)
}

func TestRunCycle_MirrorFailureDoesNotFailCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m, _ := newMockedEngine(t, ctrl)

	m.prober.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(true)
	m.resolver.EXPECT().ShouldPullRemote(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, ErrNoRemoteData)
	m.resolver.EXPECT().ShouldPushLocal(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	m.copier.EXPECT().PushLocalTo(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.SyncMetadata{}, nil)
	m.mirror.EXPECT().Push(gomock.Any(), gomock.Any()).Return(2, errors.New("one file locked"))

	result, err := e.RunCycle(utils.WithTrigger(context.Background(), TriggerScheduler), defaultCfg())

	require.NoError(t, err)
	assert.Equal(t, models.Pushed, result.Push)
}
