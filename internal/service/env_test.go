package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/testutil"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// testEnv is a device with a local data dir and a shared root, both under
// t.TempDir(), wired with the real store and service implementations.
type testEnv struct {
	layout    store.Layout
	root      string
	inspector store.LedgerInspector
	metadata  store.MetadataRepository
	copier    *copier
	resolver  ConflictResolver
	engine    *syncEngine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	root := filepath.Join(dir, "OneDrive")
	require.NoError(t, os.MkdirAll(root, 0o755))

	layout := store.Layout{
		AppName:           "LedgerBook",
		DataDir:           filepath.Join(dir, "data"),
		DBFileName:        "ledgerbook.db",
		DefaultRemoteRoot: root,
	}
	require.NoError(t, os.MkdirAll(layout.DataDir, 0o755))

	log := logger.Nop()
	inspector := store.NewLedgerInspector(log)
	metadata := store.NewMetadataRepository(log)
	c := NewCopier(layout, inspector, metadata, log).(*copier)
	resolver := NewConflictResolver(inspector, metadata, NewClockSkewPolicy("linux"), log)
	engine := NewSyncEngine(layout, NewProber(layout, log), resolver, c, NewAttachmentMirror(layout, log), log).(*syncEngine)

	return &testEnv{
		layout:    layout,
		root:      root,
		inspector: inspector,
		metadata:  metadata,
		copier:    c,
		resolver:  resolver,
		engine:    engine,
	}
}

func (e *testEnv) localDB() string {
	return e.layout.LocalDB()
}

func (e *testEnv) remote() models.SnapshotTarget {
	return e.layout.RemoteTarget(e.root)
}

// newLocal creates the local ledger with n transactions, modified at.
func (e *testEnv) newLocal(t *testing.T, n int, at time.Time) {
	t.Helper()
	testutil.NewLedger(t, e.localDB(), n)
	testutil.SetModTime(t, e.localDB(), at)
}

// publishRemote creates a snapshot with n transactions whose file mtime and
// sidecar are both at.
func (e *testEnv) publishRemote(t *testing.T, n int, at time.Time) {
	t.Helper()

	target := e.remote()
	testutil.NewLedger(t, target.DB, n)
	testutil.SetModTime(t, target.DB, at)

	info, err := os.Stat(target.DB)
	require.NoError(t, err)

	require.NoError(t, e.metadata.Write(context.Background(), target.Metadata, models.SyncMetadata{
		LastModified: at.Unix(),
		FileSize:     uint64(info.Size()),
		Version:      models.SyncMetadataVersion,
	}))
}

func (e *testEnv) readSidecar(t *testing.T, target models.SnapshotTarget) models.SyncMetadata {
	t.Helper()
	meta, err := e.metadata.Read(context.Background(), target.Metadata)
	require.NoError(t, err)
	return meta
}

func digest(t *testing.T, path string) string {
	t.Helper()
	sum, err := utils.FileDigest(path)
	require.NoError(t, err)
	return sum
}

func safetyBackups(t *testing.T, e *testEnv) []string {
	t.Helper()
	matches, err := filepath.Glob(e.localDB() + ".backup_*")
	require.NoError(t, err)
	return matches
}
