package models

import "errors"

// Structural errors returned by the collection types. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrPathConflict is returned when a path would turn an existing leaf
	// into a collection, or an existing collection into a leaf.
	ErrPathConflict = errors.New("path conflicts with an existing entry")

	// ErrEmptyPath is returned when an entry is stored under an empty path.
	ErrEmptyPath = errors.New("path must not be empty")
)
