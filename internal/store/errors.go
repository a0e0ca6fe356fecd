package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create or update
	// a user fails because another account already uses the same email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTitleAlreadyExists is returned when an insert or update of a blog
	// post collides with another post's title. Title uniqueness is enforced
	// by the database's unique index, so concurrent writers cannot both
	// succeed.
	ErrTitleAlreadyExists = errors.New("title already exists")

	// ErrBlogNotFound is returned when a query or mutation targets a blog
	// post that does not exist or, for published-only reads, one that is
	// not in the published state.
	ErrBlogNotFound = errors.New("blog was not found")

	// ErrNothingToUpdate is returned when a partial blog update carries no
	// field changes at all.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan blog row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan blog rows")
)
