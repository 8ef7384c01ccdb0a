package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

const (
	restoreRetryInterval = 50 * time.Millisecond
	restoreMaxRetries    = 3
)

type copier struct {
	layout    store.Layout
	inspector store.LedgerInspector
	metadata  store.MetadataRepository

	copyFile func(src, dst string) (int64, error)
	now      func() time.Time

	logger *logger.Logger
}

// NewCopier returns the [Copier] used for every transfer touching the live
// ledger.
func NewCopier(layout store.Layout, inspector store.LedgerInspector, metadata store.MetadataRepository, log *logger.Logger) Copier {
	return &copier{
		layout:    layout,
		inspector: inspector,
		metadata:  metadata,
		copyFile:  utils.CopyFile,
		now:       time.Now,
		logger:    log,
	}
}

// ReplaceLocalWith runs backup, copy, verify and cleanup. Once the backup
// exists every failure copies it back over localDB and restores its mtime.
// The backup file is removed only after a successful replace.
func (c *copier) ReplaceLocalWith(ctx context.Context, localDB, snapshotDB string, modTime time.Time) error {
	log := c.logger.With().Str("local", localDB).Str("snapshot", snapshotDB).Logger()

	if !utils.FileExists(localDB) {
		return c.installFresh(ctx, localDB, snapshotDB, modTime)
	}

	if same, err := utils.SameContent(localDB, snapshotDB); err == nil && same {
		log.Debug().Str("func", "copier.ReplaceLocalWith").Msg("local database already matches snapshot")
		c.alignModTime(localDB, modTime)
		return nil
	}

	originalModTime, err := utils.ModTime(localDB)
	if err != nil {
		return fmt.Errorf("%w: stat local database: %w", ErrFileSystem, err)
	}

	backupPath := c.layout.SafetyBackupPath(c.now())
	if _, err = c.copyFile(localDB, backupPath); err != nil {
		_ = os.Remove(backupPath)
		return fmt.Errorf("%w: create safety backup: %w", ErrFileSystem, err)
	}

	if _, err = c.copyFile(snapshotDB, localDB); err != nil {
		c.rollback(ctx, localDB, backupPath, originalModTime)
		return fmt.Errorf("%w: copy snapshot: %w", ErrFileSystem, err)
	}

	if err = c.inspector.VerifySchema(ctx, localDB); err != nil {
		c.rollback(ctx, localDB, backupPath, originalModTime)
		return fmt.Errorf("%w: %w: %w", ErrDatabase, ErrSchemaVerificationFailed, err)
	}

	c.alignModTime(localDB, modTime)

	if err = os.Remove(backupPath); err != nil {
		log.Warn().Err(err).Str("func", "copier.ReplaceLocalWith").Str("backup", backupPath).Msg("failed to remove safety backup")
	}

	log.Info().Str("func", "copier.ReplaceLocalWith").Time("modified", modTime).Msg("local database replaced with snapshot")
	return nil
}

// installFresh handles a missing local ledger: there is nothing to back up,
// so a failed verification only removes the copied file.
func (c *copier) installFresh(ctx context.Context, localDB, snapshotDB string, modTime time.Time) error {
	if err := os.MkdirAll(c.layout.DataDir, 0o755); err != nil {
		return fmt.Errorf("%w: create data dir: %w", ErrFileSystem, err)
	}

	if _, err := c.copyFile(snapshotDB, localDB); err != nil {
		_ = os.Remove(localDB)
		return fmt.Errorf("%w: copy snapshot: %w", ErrFileSystem, err)
	}

	if err := c.inspector.VerifySchema(ctx, localDB); err != nil {
		_ = os.Remove(localDB)
		return fmt.Errorf("%w: %w: %w", ErrDatabase, ErrSchemaVerificationFailed, err)
	}

	c.alignModTime(localDB, modTime)
	return nil
}

func (c *copier) rollback(ctx context.Context, localDB, backupPath string, originalModTime time.Time) {
	op := func() error {
		_, err := c.copyFile(backupPath, localDB)
		return err
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(restoreRetryInterval), restoreMaxRetries)
	// the restore must run even when the caller's context is already done
	err := backoff.Retry(op, backoff.WithContext(policy, context.WithoutCancel(ctx)))
	if err != nil {
		c.logger.Error().Err(err).
			Str("func", "copier.rollback").
			Str("backup", backupPath).
			Msg("failed to restore local database; safety backup kept")
		return
	}

	if err = utils.SetModTime(localDB, originalModTime); err != nil {
		c.logger.Warn().Err(err).Str("func", "copier.rollback").Msg("failed to restore local modification time")
	}

	c.logger.Info().
		Str("func", "copier.rollback").
		Str("backup", backupPath).
		Msg("local database restored from safety backup; backup kept")
}

// PushLocalTo stamps the snapshot with max(now, local mtime). When the
// snapshot already holds the same bytes and its sidecar is not older than the
// local file, nothing is written.
func (c *copier) PushLocalTo(ctx context.Context, localDB string, target models.SnapshotTarget) (models.SyncMetadata, error) {
	log := c.logger.With().Str("tier", string(target.Tier)).Str("target", target.DB).Logger()

	if err := os.MkdirAll(target.Dir, 0o755); err != nil {
		return models.SyncMetadata{}, fmt.Errorf("%w: create sync dir: %w", ErrFileSystem, err)
	}

	localModified, err := utils.ModTime(localDB)
	if err != nil {
		return models.SyncMetadata{}, fmt.Errorf("%w: stat local database: %w", ErrFileSystem, err)
	}

	stamp := c.now().Truncate(time.Second)
	if lm := localModified.Truncate(time.Second); lm.After(stamp) {
		stamp = lm
	}

	if same, _ := utils.SameContent(localDB, target.DB); same {
		// same bytes with a current sidecar need no new stamp
		if existing, readErr := c.metadata.Read(ctx, target.Metadata); readErr == nil && existing.LastModified >= localModified.Unix() {
			log.Debug().Str("func", "copier.PushLocalTo").Msg("snapshot already matches local database")
			return existing, nil
		}
	} else if _, err = utils.CopyFileAtomic(localDB, target.DB); err != nil {
		return models.SyncMetadata{}, fmt.Errorf("%w: copy local database: %w", ErrFileSystem, err)
	}

	if err = utils.SetModTime(target.DB, stamp); err != nil {
		log.Warn().Err(err).Str("func", "copier.PushLocalTo").Msg("failed to set snapshot modification time")
	}

	info, err := os.Stat(target.DB)
	if err != nil {
		return models.SyncMetadata{}, fmt.Errorf("%w: stat snapshot: %w", ErrFileSystem, err)
	}

	meta := models.SyncMetadata{
		LastModified: stamp.Unix(),
		FileSize:     uint64(info.Size()),
		Version:      models.SyncMetadataVersion,
	}
	if err = c.metadata.Write(ctx, target.Metadata, meta); err != nil {
		return models.SyncMetadata{}, fmt.Errorf("%w: %w", ErrFileSystem, err)
	}

	// a write that landed during the copy keeps its newer mtime
	if current, statErr := utils.ModTime(localDB); statErr == nil && current.Equal(localModified) {
		c.alignModTime(localDB, stamp)
	}

	log.Info().Str("func", "copier.PushLocalTo").Int64("last_modified", meta.LastModified).Msg("local database published")
	return meta, nil
}

func (c *copier) alignModTime(path string, t time.Time) {
	if err := utils.SetModTime(path, t); err != nil {
		c.logger.Warn().Err(err).Str("func", "copier.alignModTime").Str("path", path).Msg("failed to set modification time")
	}
}
