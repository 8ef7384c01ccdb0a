package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

type metadataRepository struct {
	logger *logger.Logger
}

// NewMetadataRepository returns a file-backed [MetadataRepository].
// Sidecars are pretty-printed JSON.
func NewMetadataRepository(log *logger.Logger) MetadataRepository {
	return &metadataRepository{logger: log}
}

func (r *metadataRepository) Read(ctx context.Context, path string) (models.SyncMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if utils.IsNotExist(err) {
			return models.SyncMetadata{}, ErrMetadataNotFound
		}
		r.logger.Err(err).Str("func", "metadataRepository.Read").Str("path", path).Msg("failed to read sync metadata")
		return models.SyncMetadata{}, fmt.Errorf("failed to read sync metadata: %w", err)
	}

	var meta models.SyncMetadata
	if err = json.Unmarshal(data, &meta); err != nil {
		r.logger.Err(err).Str("func", "metadataRepository.Read").Str("path", path).Msg("failed to decode sync metadata")
		return models.SyncMetadata{}, fmt.Errorf("%w: %w", ErrMetadataCorrupted, err)
	}

	return meta, nil
}

func (r *metadataRepository) Write(ctx context.Context, path string, meta models.SyncMetadata) error {
	payload, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sync metadata: %w", err)
	}

	if err = utils.WriteFileAtomic(path, payload, 0o644); err != nil {
		r.logger.Err(err).Str("func", "metadataRepository.Write").Str("path", path).Msg("failed to write sync metadata")
		return fmt.Errorf("failed to write sync metadata: %w", err)
	}

	return nil
}
