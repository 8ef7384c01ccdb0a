package store

import (
	"database/sql"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/migrations"
)

// DB is an open ledger database connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded ledger schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
