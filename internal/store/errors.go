package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because the username is taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when the requested user record does not
	// exist.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrListIsFull is returned when a new id is added to a list that already
	// holds the maximum number of ids.
	ErrListIsFull = errors.New("list is full")

	// ErrStoreUnavailable is returned when the database cannot be reached or
	// the connection broke during the call.
	ErrStoreUnavailable = errors.New("store is unavailable")

	// ErrStoreTimeout is returned when a call did not finish within the
	// configured query timeout.
	ErrStoreTimeout = errors.New("store call timed out")

	// ErrUnsupportedDriver is returned when a connection is requested for a
	// driver the store does not know.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
