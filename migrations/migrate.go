// Package migrations embeds the SQL schema of the database collection
// storage and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// dialects maps database/sql driver names to goose dialects.
var dialects = map[string]goose.Dialect{
	"sqlite3":  goose.DialectSQLite3,
	"pgx":      goose.DialectPostgres,
	"postgres": goose.DialectPostgres,
}

// Migrate applies every pending migration to db. driver is the
// database/sql driver name: "sqlite3" or "pgx".
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error setting dialect for db: unsupported driver %q", driver)
	}

	provider, err := goose.NewProvider(dialect, db, embedMigrations)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
