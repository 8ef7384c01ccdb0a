package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/models"
)

func TestSyncConfigRepository_LoadDefaults(t *testing.T) {
	dir := t.TempDir()
	repo := NewSyncConfigRepository(filepath.Join(dir, "remote", "sync_config.json"), filepath.Join(dir, "local", "sync_config.json"), logger.Nop())

	assert.Equal(t, models.DefaultSyncConfig(), repo.Load(context.Background()))
}

func TestSyncConfigRepository_SavePrefersRemote(t *testing.T) {
	dir := t.TempDir()
	remote := filepath.Join(dir, "remote", "sync_config.json")
	local := filepath.Join(dir, "local", "sync_config.json")
	repo := NewSyncConfigRepository(remote, local, logger.Nop())

	cfg := models.SyncConfig{AutoSyncEnabled: false, SyncIntervalMinutes: 15, FallbackToLocal: true}
	require.NoError(t, repo.Save(context.Background(), cfg))

	assert.FileExists(t, remote)
	assert.NoFileExists(t, local)
	assert.Equal(t, cfg, repo.Load(context.Background()))
}

func TestSyncConfigRepository_SaveFallsBackToLocal(t *testing.T) {
	dir := t.TempDir()
	// a regular file where the remote directory should be makes MkdirAll fail
	blocker := filepath.Join(dir, "remote")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	remote := filepath.Join(blocker, "sync_config.json")
	local := filepath.Join(dir, "local", "sync_config.json")
	repo := NewSyncConfigRepository(remote, local, logger.Nop())

	cfg := models.SyncConfig{AutoSyncEnabled: true, SyncIntervalMinutes: 30}
	require.NoError(t, repo.Save(context.Background(), cfg))

	assert.FileExists(t, local)
	assert.Equal(t, cfg, repo.Load(context.Background()))
}

func TestSyncConfigRepository_SaveBothFail(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	repo := NewSyncConfigRepository(filepath.Join(blocker, "a.json"), filepath.Join(blocker, "b.json"), logger.Nop())

	err := repo.Save(context.Background(), models.DefaultSyncConfig())
	assert.ErrorIs(t, err, ErrSyncConfigNotSaved)
}

func TestSyncConfigRepository_LoadRemoteBeforeLocal(t *testing.T) {
	dir := t.TempDir()
	remote := filepath.Join(dir, "remote.json")
	local := filepath.Join(dir, "local.json")
	require.NoError(t, os.WriteFile(remote, []byte(`{"auto_sync_enabled":false,"sync_interval_minutes":7,"fallback_to_local":false}`), 0o600))
	require.NoError(t, os.WriteFile(local, []byte(`{"auto_sync_enabled":true,"sync_interval_minutes":9,"fallback_to_local":true}`), 0o600))

	cfg := NewSyncConfigRepository(remote, local, logger.Nop()).Load(context.Background())
	assert.Equal(t, uint64(7), cfg.SyncIntervalMinutes)
	assert.False(t, cfg.AutoSyncEnabled)
}

func TestSyncConfigRepository_LoadSkipsCorruptRemote(t *testing.T) {
	dir := t.TempDir()
	remote := filepath.Join(dir, "remote.json")
	local := filepath.Join(dir, "local.json")
	require.NoError(t, os.WriteFile(remote, []byte(`{broken`), 0o600))
	require.NoError(t, os.WriteFile(local, []byte(`{"auto_sync_enabled":true,"sync_interval_minutes":9,"remote_root":"/mnt/box","fallback_to_local":true}`), 0o600))

	cfg := NewSyncConfigRepository(remote, local, logger.Nop()).Load(context.Background())
	assert.Equal(t, uint64(9), cfg.SyncIntervalMinutes)
	require.NotNil(t, cfg.RemoteRoot)
	assert.Equal(t, "/mnt/box", *cfg.RemoteRoot)
}
