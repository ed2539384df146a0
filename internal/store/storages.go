package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// NewCollectionStorage initialises the storage layer selected by cfg:
//   - with cfg.DB.DSN set, it connects to the database named by
//     cfg.DB.Driver, runs pending migrations and returns the SQL storage;
//   - otherwise it returns the YAML file storage over cfg.Dir.
//
// The caller owns the result and must Close it.
func NewCollectionStorage(ctx context.Context, cfg config.Storage, logger *logger.Logger) (CollectionStorage, error) {
	if cfg.DB.DSN == "" {
		logger.Info().Str("dir", cfg.Dir).Msg("using file collection storage")
		return NewFileCollectionStorage(cfg.Dir, logger), nil
	}

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	case config.DriverSQLite, "":
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	logger.Info().Str("driver", cfg.DB.Driver).Msg("using database collection storage")
	return NewSQLCollectionStorage(db, logger), nil
}
