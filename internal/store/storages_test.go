package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
)

func TestNewStorages_CreatesLedger(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.StructuredConfig{
		App:     config.App{Name: "LedgerBook"},
		Storage: config.Storage{DataDir: filepath.Join(dir, "data"), DBFileName: "ledgerbook.db"},
		Remote:  config.Remote{Root: filepath.Join(dir, "cloud")},
	}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.FileExists(t, s.Layout.LocalDB())
	assert.NoError(t, s.LedgerInspector.VerifySchema(context.Background(), s.Layout.LocalDB()))

	count, err := s.LedgerInspector.CountTransactions(context.Background(), s.Layout.LocalDB())
	require.NoError(t, err)
	assert.Zero(t, count)
}
