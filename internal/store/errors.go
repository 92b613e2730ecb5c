package store

import "errors"

// Sentinel errors returned by repository and file-storage methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same username already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup by username matches no
	// directory record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrVaultNotFound is returned when no vault blob has been written for an
	// account yet. It is the legitimate first-run state, not a failure.
	ErrVaultNotFound = errors.New("vault file not found")

	// ErrSaltNotFound is returned when no vault-key salt exists for an
	// account yet.
	ErrSaltNotFound = errors.New("vault salt not found")

	// ErrInvalidAccountID is returned when a non-positive account id is used
	// to derive file paths.
	ErrInvalidAccountID = errors.New("invalid account id")
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

	// ErrNilDB is returned when a nil connection is handed to the store.
	ErrNilDB = errors.New("db is nil")
)
