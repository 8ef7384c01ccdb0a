package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/models"
)

type syncConfigRepository struct {
	remotePath string
	localPath  string
	logger     *logger.Logger
}

// NewSyncConfigRepository returns a [SyncConfigRepository] that keeps the
// config at remotePath, with localPath as fallback.
func NewSyncConfigRepository(remotePath, localPath string, log *logger.Logger) SyncConfigRepository {
	return &syncConfigRepository{
		remotePath: remotePath,
		localPath:  localPath,
		logger:     log,
	}
}

func (r *syncConfigRepository) Load(ctx context.Context) models.SyncConfig {
	for _, path := range []string{r.remotePath, r.localPath} {
		cfg, err := readSyncConfig(path)
		if err == nil {
			return cfg
		}
		if !errors.Is(err, os.ErrNotExist) {
			r.logger.Warn().Err(err).Str("func", "syncConfigRepository.Load").Str("path", path).Msg("ignoring unreadable sync config")
		}
	}

	return models.DefaultSyncConfig()
}

func (r *syncConfigRepository) Save(ctx context.Context, cfg models.SyncConfig) error {
	payload, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sync config: %w", err)
	}

	remoteErr := writeSyncConfig(r.remotePath, payload)
	if remoteErr == nil {
		return nil
	}
	r.logger.Warn().Err(remoteErr).Str("func", "syncConfigRepository.Save").Msg("saving sync config to shared folder failed, saving locally")

	if localErr := writeSyncConfig(r.localPath, payload); localErr != nil {
		r.logger.Err(localErr).Str("func", "syncConfigRepository.Save").Msg("saving sync config locally failed")
		return fmt.Errorf("%w: %w", ErrSyncConfigNotSaved, errors.Join(remoteErr, localErr))
	}

	return nil
}

func readSyncConfig(path string) (models.SyncConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.SyncConfig{}, err
	}

	var cfg models.SyncConfig
	if err = json.Unmarshal(data, &cfg); err != nil {
		return models.SyncConfig{}, fmt.Errorf("decode %s: %w", path, err)
	}

	return cfg, nil
}

func writeSyncConfig(path string, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}
