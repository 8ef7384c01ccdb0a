package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/migrations"
)

// primaryLedgerTable is the table whose row count serves as the cardinality
// signal when two copies disagree on freshness.
const primaryLedgerTable = "transactions"

type ledgerInspector struct {
	open   func(ctx context.Context, path string) (*sql.DB, error)
	tables []string
	logger *logger.Logger
}

// NewLedgerInspector returns a [LedgerInspector] that opens files read-only.
func NewLedgerInspector(log *logger.Logger) LedgerInspector {
	return &ledgerInspector{
		open:   OpenReadOnly,
		tables: migrations.RequiredTables,
		logger: log,
	}
}

func (i *ledgerInspector) CountTransactions(ctx context.Context, dbPath string) (int64, error) {
	db, err := i.open(ctx, dbPath)
	if err != nil {
		i.logger.Err(err).Str("func", "ledgerInspector.CountTransactions").Str("path", dbPath).Msg("failed to open ledger")
		return 0, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}
	defer db.Close()

	query, args, err := sq.Select("COUNT(*)").From(primaryLedgerTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		i.logger.Err(err).Str("func", "ledgerInspector.CountTransactions").Str("path", dbPath).Msg("failed to count transactions")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

func (i *ledgerInspector) VerifySchema(ctx context.Context, dbPath string) error {
	db, err := i.open(ctx, dbPath)
	if err != nil {
		i.logger.Err(err).Str("func", "ledgerInspector.VerifySchema").Str("path", dbPath).Msg("failed to open ledger")
		return fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}
	defer db.Close()

	query, args, err := sq.Select("name").
		From("sqlite_master").
		Where(sq.Eq{"type": "table", "name": i.tables}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		i.logger.Err(err).Str("func", "ledgerInspector.VerifySchema").Str("path", dbPath).Msg("failed to list tables")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	found := make(map[string]struct{}, len(i.tables))
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		found[name] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	var missing []string
	for _, table := range i.tables {
		if _, ok := found[table]; !ok {
			missing = append(missing, table)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", ErrMissingTables, strings.Join(missing, ", "))
	}

	return nil
}
