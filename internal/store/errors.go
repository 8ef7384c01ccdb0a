package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMetadataNotFound is returned when a snapshot's metadata sidecar does
	// not exist.
	ErrMetadataNotFound = errors.New("sync metadata not found")

	// ErrMetadataCorrupted is returned when a sidecar exists but cannot be
	// decoded.
	ErrMetadataCorrupted = errors.New("sync metadata is corrupted")

	// ErrMissingTables is returned when a ledger database lacks one or more
	// required tables.
	ErrMissingTables = errors.New("required tables are missing")

	// ErrSyncConfigNotSaved is returned when the sync config could be written
	// neither to the shared folder nor locally.
	ErrSyncConfigNotSaved = errors.New("sync config was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrOpeningDatabase is returned when a ledger file cannot be opened.
	ErrOpeningDatabase = errors.New("error opening database")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
