package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// RetryConfig bounds how often a transient database failure is retried.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// DefaultRetryConfig returns the retry policy used by [NewSQLCollectionStorage].
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  50 * time.Millisecond,
		MaxDelay:   time.Second,
	}
}

// sqlCollectionStorage is the database-backed implementation of
// [CollectionStorage]. Every collection is one row of the collections table
// holding the same YAML document the file storage would write, so a store
// can move between backends by copying bodies.
type sqlCollectionStorage struct {
	*DB
	retry  RetryConfig
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLCollectionStorage constructs a [CollectionStorage] over db. The
// schema must already be migrated.
func NewSQLCollectionStorage(db *DB, logger *logger.Logger) CollectionStorage {
	return &sqlCollectionStorage{
		DB:     db,
		retry:  DefaultRetryConfig(),
		now:    time.Now,
		logger: logger,
	}
}

// Load implements [CollectionStorage].
func (s *sqlCollectionStorage) Load(ctx context.Context, name string, target any) error {
	log := logger.FromContext(ctx)

	if err := validateName(name); err != nil {
		return err
	}

	query, args, err := buildLoadCollectionQuery(s.dialect, name)
	if err != nil {
		return err
	}

	var body string
	err = s.withRetry(ctx, func() error {
		return s.DB.QueryRowContext(ctx, query, args...).Scan(&body)
	})
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("collection", name).Msg("collection row not found, using empty collection")
		return nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqlCollectionStorage.Load").
			Str("collection", name).
			Msg("failed to execute query for loading collection")
		return fmt.Errorf("%w %q: %w: %w", ErrReadCollection, name, ErrExecutingQuery, err)
	}

	return decodeCollection(name, []byte(body), target)
}

// Save implements [CollectionStorage]. The upsert is a single statement, so
// the previous body stays in place when it fails.
func (s *sqlCollectionStorage) Save(ctx context.Context, name string, source any) error {
	log := logger.FromContext(ctx)

	if err := validateName(name); err != nil {
		return err
	}

	body, err := encodeCollection(name, source)
	if err != nil {
		return err
	}

	query, args, err := buildSaveCollectionQuery(s.dialect, name, body, s.now())
	if err != nil {
		return err
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "sqlCollectionStorage.Save").
			Str("collection", name).
			Msg("failed to execute statement for saving collection")
		return fmt.Errorf("%w %q: %w: %w", ErrWriteCollection, name, ErrExecutingStatement, err)
	}

	return nil
}

// Close implements [CollectionStorage].
func (s *sqlCollectionStorage) Close() error {
	return s.DB.Close()
}

// withRetry runs fn until it succeeds, fails with an error the classifier
// does not consider transient, or the retry budget is spent. The delay
// doubles on every attempt up to MaxDelay.
func (s *sqlCollectionStorage) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = fn()
		if err == nil || !s.retryable(err) || attempt >= s.retry.MaxRetries {
			return err
		}

		delay := min(s.retry.BaseDelay*time.Duration(1<<attempt), s.retry.MaxDelay)
		s.logger.Warn().Err(err).Int("attempt", attempt+1).Dur("delay", delay).Msg("transient database error, retrying")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(delay):
		}
	}
}

func (s *sqlCollectionStorage) retryable(err error) bool {
	if s.errorClassificator == nil {
		return false
	}
	return s.errorClassificator.Classify(err) == Retryable
}
