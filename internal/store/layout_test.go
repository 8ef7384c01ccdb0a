package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/models"
)

func testLayout(t *testing.T) Layout {
	t.Helper()
	dir := t.TempDir()
	return NewLayout(&config.StructuredConfig{
		App:     config.App{Name: "LedgerBook"},
		Storage: config.Storage{DataDir: filepath.Join(dir, "data"), DBFileName: "ledgerbook.db"},
		Remote:  config.Remote{Root: filepath.Join(dir, "OneDrive")},
	})
}

func TestLayout_RemotePaths(t *testing.T) {
	l := testLayout(t)
	root := l.DefaultRemoteRoot

	target := l.RemoteTarget(root)
	assert.Equal(t, models.TierRemote, target.Tier)
	assert.Equal(t, filepath.Join(root, "LedgerBook_Data", "sync"), target.Dir)
	assert.Equal(t, filepath.Join(root, "LedgerBook_Data", "sync", "ledgerbook.db"), target.DB)
	assert.Equal(t, filepath.Join(root, "LedgerBook_Data", "sync", "sync_metadata.json"), target.Metadata)

	assert.Equal(t, filepath.Join(root, "LedgerBook_Data", "Backups"), l.BackupsDir(root))
	assert.Equal(t, filepath.Join(root, "LedgerBook_Data", "Attachments"), l.RemoteAttachmentsDir(root))
	assert.Equal(t, filepath.Join(root, "LedgerBook_Data", "sync_config.json"), l.RemoteConfigPath())
}

func TestLayout_LocalPaths(t *testing.T) {
	l := testLayout(t)

	target := l.LocalTarget()
	assert.Equal(t, models.TierLocal, target.Tier)
	assert.Equal(t, filepath.Join(l.DataDir, "sync_backup", "ledgerbook.db"), target.DB)
	assert.Equal(t, filepath.Join(l.DataDir, "sync_backup", "sync_metadata.json"), target.Metadata)
	assert.Equal(t, filepath.Join(l.DataDir, "ledgerbook.db"), l.LocalDB())
	assert.Equal(t, filepath.Join(l.DataDir, "sync_config.json"), l.LocalConfigPath())
	assert.Equal(t, filepath.Join(l.DataDir, "attachments"), l.LocalAttachmentsDir())
}

func TestLayout_RemoteRootOverride(t *testing.T) {
	l := testLayout(t)

	assert.Equal(t, l.DefaultRemoteRoot, l.RemoteRoot(models.DefaultSyncConfig()))

	override := "/mnt/dropbox"
	cfg := models.DefaultSyncConfig()
	cfg.RemoteRoot = &override
	assert.Equal(t, override, l.RemoteRoot(cfg))

	empty := ""
	cfg.RemoteRoot = &empty
	assert.Equal(t, l.DefaultRemoteRoot, l.RemoteRoot(cfg))
}

func TestLayout_SafetyBackupPath_Unique(t *testing.T) {
	l := testLayout(t)
	require.NoError(t, os.MkdirAll(l.DataDir, 0o755))
	now := time.Unix(1_700_000_000, 0)

	first := l.SafetyBackupPath(now)
	assert.Equal(t, l.LocalDB()+".backup_1700000000", first)

	require.NoError(t, os.WriteFile(first, nil, 0o600))
	second := l.SafetyBackupPath(now)
	assert.Equal(t, first+"_1", second)
}
