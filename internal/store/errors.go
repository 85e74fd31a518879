package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUsernameAlreadyExists is returned when the requested username is
	// already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrLocalSessionNotFound is returned by the client credential store
	// when neither the ephemeral nor the durable tier holds a session.
	// An unparsable durable session row is reported the same way: corrupt
	// persisted state is treated as absence, never surfaced.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrDraftNotFound is returned when no onboarding draft is stored or
	// the stored draft cannot be decoded.
	ErrDraftNotFound = errors.New("onboarding draft not found")

	// ErrTokenNotFound is returned when no bearer token is stored.
	ErrTokenNotFound = errors.New("token not found")

	// ErrNoPathWasFound is returned when the user has no active learning
	// path.
	ErrNoPathWasFound = errors.New("no learning path was found")

	// ErrNoProfileWasFound is returned when the user has no onboarding
	// profile row yet.
	ErrNoProfileWasFound = errors.New("no onboarding profile was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
