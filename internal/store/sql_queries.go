package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	collectionsTable = "collections"

	upsertCollectionSuffix = "ON CONFLICT (name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at"
)

// placeholderFormat returns the bind variable style of dialect: $N for
// PostgreSQL, ? for SQLite.
func placeholderFormat(dialect string) sq.PlaceholderFormat {
	if dialect == "pgx" {
		return sq.Dollar
	}
	return sq.Question
}

// buildLoadCollectionQuery selects the body of one collection.
func buildLoadCollectionQuery(dialect, name string) (string, []any, error) {
	query, args, err := sq.Select("body").
		From(collectionsTable).
		Where(sq.Eq{"name": name}).
		PlaceholderFormat(placeholderFormat(dialect)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSaveCollectionQuery inserts a collection or replaces the body of an
// existing one.
func buildSaveCollectionQuery(dialect, name string, body []byte, now time.Time) (string, []any, error) {
	query, args, err := sq.Insert(collectionsTable).
		Columns("name", "body", "updated_at").
		Values(name, string(body), now.UTC()).
		Suffix(upsertCollectionSuffix).
		PlaceholderFormat(placeholderFormat(dialect)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
