// Package testutil builds real SQLite ledger files for tests.
package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-sync/migrations"
)

// NewLedger creates a migrated ledger at path holding one account and n
// transactions. Parent directories are created.
func NewLedger(t testing.TB, path string, n int) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	db := open(t, path)
	defer db.Close()

	require.NoError(t, migrations.Migrate(db))

	_, err := db.Exec(`INSERT INTO accounts (name, type, balance) VALUES ('Checking', 'checking', 0)`)
	require.NoError(t, err)

	insertTransactions(t, db, n)
}

// AddTransactions appends n transactions to the ledger at path.
func AddTransactions(t testing.TB, path string, n int) {
	t.Helper()

	db := open(t, path)
	defer db.Close()

	insertTransactions(t, db, n)
}

// CountTransactions returns the transactions row count of the ledger at path.
func CountTransactions(t testing.TB, path string) int64 {
	t.Helper()

	db := open(t, path)
	defer db.Close()

	var count int64
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM transactions`).Scan(&count))
	return count
}

// NewForeignSQLite creates a valid SQLite file at path that does not contain
// the ledger schema.
func NewForeignSQLite(t testing.TB, path string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	db := open(t, path)
	defer db.Close()

	_, err := db.Exec(`CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)`)
	require.NoError(t, err)
}

// SetModTime sets the mtime of path, failing the test on error.
func SetModTime(t testing.TB, path string, at time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, at, at))
}

// ReadFile returns the bytes of path, failing the test on error.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func open(t testing.TB, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	// one connection, so the file is fully released on Close
	db.SetMaxOpenConns(1)
	return db
}

func insertTransactions(t testing.TB, db *sql.DB, n int) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		_, err = tx.Exec(
			`INSERT INTO transactions (date, account_id, type, category, amount, payee) VALUES (?, 1, 'expense', 'Food', ?, ?)`,
			time.Date(2025, 1, 1+i%28, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			float64(10+i),
			fmt.Sprintf("payee-%d", i),
		)
		require.NoError(t, err)
	}
	require.NoError(t, tx.Commit())
}
