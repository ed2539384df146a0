package store

import "errors"

// Sentinel errors returned by [CollectionStorage] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrInvalidCollectionName is returned for names that are empty or
	// contain anything but letters, digits, '-' and '_'.
	ErrInvalidCollectionName = errors.New("invalid collection name")

	// ErrReadCollection is returned when the stored bytes of a collection
	// cannot be read.
	ErrReadCollection = errors.New("failed to read collection")

	// ErrWriteCollection is returned when a collection cannot be written.
	ErrWriteCollection = errors.New("failed to write collection")

	// ErrDecodeCollection is returned when the stored bytes of a collection
	// are not a valid serialization of the target.
	ErrDecodeCollection = errors.New("failed to decode collection")

	// ErrEncodeCollection is returned when a collection cannot be serialized.
	ErrEncodeCollection = errors.New("failed to encode collection")
)

// Low-level database operation errors. These are wrapped together with one
// of the collection errors above.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrUnsupportedDriver is returned for a database driver other than
	// sqlite3 and pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
