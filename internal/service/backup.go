package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

const (
	// BackupTimestampLayout formats the timestamp part of a backup file name.
	BackupTimestampLayout = "20060102_150405"
	// BackupKeepCount is how many backups the history folder keeps.
	BackupKeepCount = 10

	backupNameInfix = "_backup_"
	backupExt       = ".db"
)

// SyncGuard gives the backup service the current sync config and lets it
// run work that must not overlap with a sync.
type SyncGuard interface {
	GetSyncConfig(ctx context.Context) models.SyncConfig
	RunExclusive(ctx context.Context, fn func(ctx context.Context) error) error
}

type backupService struct {
	layout    store.Layout
	guard     SyncGuard
	prober    Prober
	inspector store.LedgerInspector
	copier    Copier
	now       func() time.Time

	logger *logger.Logger
}

// NewBackupService keeps timestamped copies of the local ledger in the
// Backups folder of the shared root.
func NewBackupService(layout store.Layout, guard SyncGuard, prober Prober, inspector store.LedgerInspector, copier Copier, log *logger.Logger) BackupService {
	return &backupService{
		layout:    layout,
		guard:     guard,
		prober:    prober,
		inspector: inspector,
		copier:    copier,
		now:       time.Now,
		logger:    log,
	}
}

// Create verifies the local ledger, copies it into the history folder and
// prunes the history down to BackupKeepCount files. It runs while no sync can
// rewrite the local ledger.
func (s *backupService) Create(ctx context.Context) (models.BackupInfo, error) {
	root := s.layout.RemoteRoot(s.guard.GetSyncConfig(ctx))
	if !s.prober.Probe(ctx, root) {
		return models.BackupInfo{}, fmt.Errorf("%w: %s", ErrRemoteUnavailable, root)
	}

	var info models.BackupInfo
	err := s.guard.RunExclusive(ctx, func(ctx context.Context) error {
		var err error
		info, err = s.create(ctx, root)
		return err
	})
	if err != nil {
		return models.BackupInfo{}, err
	}

	s.logger.Info().Str("func", "backupService.Create").Str("file", info.FileName).Msg("backup created")
	return info, nil
}

func (s *backupService) create(ctx context.Context, root string) (models.BackupInfo, error) {
	localDB := s.layout.LocalDB()
	if err := s.inspector.VerifySchema(ctx, localDB); err != nil {
		return models.BackupInfo{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	dir := s.layout.BackupsDir(root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return models.BackupInfo{}, fmt.Errorf("%w: create backups dir: %w", ErrFileSystem, err)
	}

	createdAt := s.now().Truncate(time.Second)
	timestamp := createdAt.Format(BackupTimestampLayout)
	name := s.fileName(timestamp)

	n, err := utils.CopyFileAtomic(localDB, filepath.Join(dir, name))
	if err != nil {
		return models.BackupInfo{}, fmt.Errorf("%w: %w", ErrFileSystem, err)
	}

	s.prune(dir)

	return models.BackupInfo{
		Timestamp: timestamp,
		FileName:  name,
		FileSize:  uint64(n),
		CreatedAt: createdAt,
		Version:   models.SyncMetadataVersion,
	}, nil
}

// List returns the history newest first. A missing folder is an empty list.
func (s *backupService) List(ctx context.Context) ([]models.BackupInfo, error) {
	dir := s.layout.BackupsDir(s.layout.RemoteRoot(s.guard.GetSyncConfig(ctx)))

	backups, err := s.scan(dir)
	if err != nil {
		return nil, err
	}

	if len(backups) > BackupKeepCount {
		backups = backups[:BackupKeepCount]
	}
	return backups, nil
}

// Restore replaces the local ledger with the backup taken at timestamp. The
// restored file gets the current time as mtime so the next cycle publishes it.
func (s *backupService) Restore(ctx context.Context, timestamp string) error {
	path, err := s.pathFor(ctx, timestamp)
	if err != nil {
		return err
	}

	if !utils.FileExists(path) {
		return ErrBackupNotFound
	}

	err = s.guard.RunExclusive(ctx, func(ctx context.Context) error {
		return s.copier.ReplaceLocalWith(ctx, s.layout.LocalDB(), path, s.now())
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("func", "backupService.Restore").Str("timestamp", timestamp).Msg("backup restored")
	return nil
}

// Delete removes the backup taken at timestamp. Deleting a missing backup
// is not an error.
func (s *backupService) Delete(ctx context.Context, timestamp string) error {
	path, err := s.pathFor(ctx, timestamp)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !utils.IsNotExist(err) {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}
	return nil
}

func (s *backupService) pathFor(ctx context.Context, timestamp string) (string, error) {
	if _, err := time.Parse(BackupTimestampLayout, timestamp); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidBackupTimestamp, timestamp)
	}

	dir := s.layout.BackupsDir(s.layout.RemoteRoot(s.guard.GetSyncConfig(ctx)))
	return filepath.Join(dir, s.fileName(timestamp)), nil
}

func (s *backupService) prefix() string {
	return strings.ToLower(s.layout.AppName) + backupNameInfix
}

func (s *backupService) fileName(timestamp string) string {
	return s.prefix() + timestamp + backupExt
}

// scan lists the backups in dir sorted newest first. Files whose names do
// not carry a valid timestamp are ignored.
func (s *backupService) scan(dir string) ([]models.BackupInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if utils.IsNotExist(err) {
			return []models.BackupInfo{}, nil
		}
		return nil, fmt.Errorf("%w: read backups dir: %w", ErrFileSystem, err)
	}

	prefix := s.prefix()
	backups := make([]models.BackupInfo, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, backupExt) {
			continue
		}

		timestamp := strings.TrimSuffix(strings.TrimPrefix(name, prefix), backupExt)
		createdAt, err := time.ParseInLocation(BackupTimestampLayout, timestamp, time.Local)
		if err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, models.BackupInfo{
			Timestamp: timestamp,
			FileName:  name,
			FileSize:  uint64(info.Size()),
			CreatedAt: createdAt,
			Version:   models.SyncMetadataVersion,
		})
	}

	// the timestamp layout sorts lexicographically in time order
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp > backups[j].Timestamp
	})

	return backups, nil
}

func (s *backupService) prune(dir string) {
	backups, err := s.scan(dir)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "backupService.prune").Msg("cannot list backups")
		return
	}

	for _, b := range backups[min(len(backups), BackupKeepCount):] {
		if err = os.Remove(filepath.Join(dir, b.FileName)); err != nil {
			s.logger.Warn().Err(err).Str("func", "backupService.prune").Str("file", b.FileName).Msg("failed to remove old backup")
		}
	}
}
