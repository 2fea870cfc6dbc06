package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSafeNotFound is returned when no active safe with the requested name
	// exists. Soft-deleted safes are reported as not found.
	ErrSafeNotFound = errors.New("safe was not found")

	// ErrSafeAlreadyExists is returned by CreateSafe when an active safe with
	// the same name is already stored.
	ErrSafeAlreadyExists = errors.New("safe already exists")

	// ErrInvalidSafeName is returned when a safe name is empty or cannot be
	// used as a file name (path separators, leading dot, too long).
	ErrInvalidSafeName = errors.New("invalid safe name")

	// ErrEmptySafe is returned when an empty envelope is passed for saving.
	ErrEmptySafe = errors.New("safe envelope is empty")

	// ErrUnknownDriver is returned when the configured SQL driver is neither
	// sqlite3 nor pgx.
	ErrUnknownDriver = errors.New("unknown database driver")

	// ErrNoStorageConfigured is returned when neither a database DSN nor a
	// safe directory is configured.
	ErrNoStorageConfigured = errors.New("no storage configured")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan safe row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan safe rows")
)
