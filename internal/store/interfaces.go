package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/collection_storage_mock.go -package=mock

// CollectionStorage loads and saves named collections wholesale.
//
// A collection is any value with a YAML representation. The vault keeps
// three of them (credentials, salts, hidden); every command loads all three
// and writes all three back.
type CollectionStorage interface {
	// Load decodes the collection called name into target. A collection
	// that was never saved, or was saved blank, leaves target untouched so
	// the caller's empty value stands.
	Load(ctx context.Context, name string, target any) error

	// Save replaces the collection called name with source. A failed save
	// never leaves a partially written collection behind.
	Save(ctx context.Context, name string, source any) error

	// Close releases the resources held by the storage.
	Close() error
}

// ErrorClassificator decides whether a failed database call is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
