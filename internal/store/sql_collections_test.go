// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	selectBodyQuery = regexp.QuoteMeta("SELECT body FROM collections WHERE name = $1")
	upsertQuery     = regexp.QuoteMeta("INSERT INTO collections (name,body,updated_at) VALUES ($1,$2,$3) ON CONFLICT (name) DO UPDATE")
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSQLStorage(t *testing.T) (*sqlCollectionStorage, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	l := logger.Nop()
	s := NewSQLCollectionStorage(&DB{
		DB:                 conn,
		dialect:            "pgx",
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             l,
	}, l).(*sqlCollectionStorage)
	s.now = func() time.Time { return fixedNow }
	s.retry = RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}

	return s, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ─── Load ─────────────────────────────────────────────────────────────────────

func TestSQLStorage_Load_Success(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery(selectBodyQuery).
		WithArgs("salts").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow("name: x\nitems:\n  - a\n"))

	var out sampleCollection
	require.NoError(t, s.Load(context.Background(), "salts", &out))
	assert.Equal(t, sampleCollection{Name: "x", Items: []string{"a"}}, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_Load_NoRowLeavesTargetEmpty(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery(selectBodyQuery).
		WithArgs("hidden").
		WillReturnError(sql.ErrNoRows)

	target := sampleCollection{Name: "default"}
	require.NoError(t, s.Load(context.Background(), "hidden", &target))
	assert.Equal(t, "default", target.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_Load_QueryError(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery(selectBodyQuery).
		WithArgs("salts").
		WillReturnError(errors.New("db network error"))

	err := s.Load(context.Background(), "salts", &sampleCollection{})
	assert.ErrorIs(t, err, ErrReadCollection)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_Load_CorruptBody(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery(selectBodyQuery).
		WithArgs("salts").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow("name: [oops\n"))

	err := s.Load(context.Background(), "salts", &sampleCollection{})
	assert.ErrorIs(t, err, ErrDecodeCollection)
}

func TestSQLStorage_Load_RetriesTransientErrors(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery(selectBodyQuery).
		WithArgs("salts").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery(selectBodyQuery).
		WithArgs("salts").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow("name: ok\n"))

	var out sampleCollection
	require.NoError(t, s.Load(context.Background(), "salts", &out))
	assert.Equal(t, "ok", out.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─── Save ─────────────────────────────────────────────────────────────────────

func TestSQLStorage_Save_Success(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectExec(upsertQuery).
		WithArgs("credentials", "name: x\nitems: []\n", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Save(context.Background(), "credentials", sampleCollection{Name: "x", Items: []string{}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_Save_NonRetryableError(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectExec(upsertQuery).
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	err := s.Save(context.Background(), "credentials", sampleCollection{})
	assert.ErrorIs(t, err, ErrWriteCollection)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet(), "a non-retryable error must not be retried")
}

func TestSQLStorage_Save_GivesUpAfterMaxRetries(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	for range s.retry.MaxRetries + 1 {
		mock.ExpectExec(upsertQuery).
			WillReturnError(pgError(pgerrcode.DeadlockDetected))
	}

	err := s.Save(context.Background(), "credentials", sampleCollection{})
	assert.ErrorIs(t, err, ErrWriteCollection)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_Save_StopsRetryingOnCancel(t *testing.T) {
	s, mock := newTestSQLStorage(t)
	s.retry = RetryConfig{MaxRetries: 5, BaseDelay: time.Hour, MaxDelay: time.Hour}

	mock.ExpectExec(upsertQuery).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := s.Save(ctx, "credentials", sampleCollection{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrWriteCollection)
}

func TestSQLStorage_InvalidName(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	assert.ErrorIs(t, s.Save(context.Background(), "x;drop", sampleCollection{}), ErrInvalidCollectionName)
	assert.ErrorIs(t, s.Load(context.Background(), "", &sampleCollection{}), ErrInvalidCollectionName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_Save_UnencodableSource(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	err := s.Save(context.Background(), "hidden", map[string]any{"ch": make(chan int)})

	assert.ErrorIs(t, err, ErrEncodeCollection)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_Close(t *testing.T) {
	s, mock := newTestSQLStorage(t)
	mock.ExpectClose()

	require.NoError(t, s.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
