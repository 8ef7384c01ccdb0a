package store

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

// File and folder names of the on-disk layout.
const (
	SyncConfigFileName   = "sync_config.json"
	MetadataFileName     = "sync_metadata.json"
	remoteDataDirSuffix  = "_Data"
	remoteSyncDir        = "sync"
	remoteBackupsDir     = "Backups"
	remoteAttachmentsDir = "Attachments"
	localSyncBackupDir   = "sync_backup"
	localAttachmentsDir  = "attachments"
)

// Layout resolves every path the sync engine reads or writes.
//
// Under the shared root:
//
//	<root>/<App>_Data/sync_config.json
//	<root>/<App>_Data/sync/<db file>
//	<root>/<App>_Data/sync/sync_metadata.json
//	<root>/<App>_Data/Backups/
//	<root>/<App>_Data/Attachments/
//
// Under the local data directory:
//
//	<data dir>/<db file>
//	<data dir>/sync_config.json
//	<data dir>/sync_backup/<db file> (+ sync_metadata.json)
//	<data dir>/attachments/
type Layout struct {
	AppName           string
	DataDir           string
	DBFileName        string
	DefaultRemoteRoot string
}

// NewLayout builds a [Layout] from the process configuration.
func NewLayout(cfg *config.StructuredConfig) Layout {
	return Layout{
		AppName:           cfg.App.Name,
		DataDir:           cfg.Storage.DataDir,
		DBFileName:        cfg.Storage.DBFileName,
		DefaultRemoteRoot: cfg.Remote.Root,
	}
}

// LocalDB is the live ledger database.
func (l Layout) LocalDB() string {
	return filepath.Join(l.DataDir, l.DBFileName)
}

// RemoteRoot returns the override from cfg when set, else the default root.
func (l Layout) RemoteRoot(cfg models.SyncConfig) string {
	if cfg.RemoteRoot != nil && *cfg.RemoteRoot != "" {
		return *cfg.RemoteRoot
	}
	return l.DefaultRemoteRoot
}

// RemoteDataDir is the application folder inside the shared root.
func (l Layout) RemoteDataDir(root string) string {
	return filepath.Join(root, l.AppName+remoteDataDirSuffix)
}

// RemoteTarget is the snapshot pair inside the shared root.
func (l Layout) RemoteTarget(root string) models.SnapshotTarget {
	dir := filepath.Join(l.RemoteDataDir(root), remoteSyncDir)
	return models.SnapshotTarget{
		Tier:     models.TierRemote,
		Dir:      dir,
		DB:       filepath.Join(dir, l.DBFileName),
		Metadata: filepath.Join(dir, MetadataFileName),
	}
}

// LocalTarget is the snapshot pair of the local-only fallback tier.
func (l Layout) LocalTarget() models.SnapshotTarget {
	dir := filepath.Join(l.DataDir, localSyncBackupDir)
	return models.SnapshotTarget{
		Tier:     models.TierLocal,
		Dir:      dir,
		DB:       filepath.Join(dir, l.DBFileName),
		Metadata: filepath.Join(dir, MetadataFileName),
	}
}

// BackupsDir holds the timestamped backup history.
func (l Layout) BackupsDir(root string) string {
	return filepath.Join(l.RemoteDataDir(root), remoteBackupsDir)
}

// RemoteAttachmentsDir is the shared copy of the attachment folder.
func (l Layout) RemoteAttachmentsDir(root string) string {
	return filepath.Join(l.RemoteDataDir(root), remoteAttachmentsDir)
}

// LocalAttachmentsDir is the attachment folder of the live ledger.
func (l Layout) LocalAttachmentsDir() string {
	return filepath.Join(l.DataDir, localAttachmentsDir)
}

// RemoteConfigPath is the shared sync config. It always lives under the
// default root so that a remote_root override can be read back.
func (l Layout) RemoteConfigPath() string {
	return filepath.Join(l.RemoteDataDir(l.DefaultRemoteRoot), SyncConfigFileName)
}

// LocalConfigPath is the local fallback sync config.
func (l Layout) LocalConfigPath() string {
	return filepath.Join(l.DataDir, SyncConfigFileName)
}

// SafetyBackupPath returns an unused "<local db>.backup_<unix>" path.
func (l Layout) SafetyBackupPath(now time.Time) string {
	base := fmt.Sprintf("%s.backup_%d", l.LocalDB(), now.Unix())
	path := base
	for n := 1; utils.FileExists(path); n++ {
		path = fmt.Sprintf("%s_%d", base, n)
	}
	return path
}
