// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

const (
	// DefaultHTTPAddress is used when no server address is configured.
	DefaultHTTPAddress = "localhost:8080"
	// DefaultStoreDirName is the store directory created under the user's
	// home directory.
	DefaultStoreDirName = ".qass"
)

// applyDefaults fills the settings left empty by every source.
func (cfg *StructuredConfig) applyDefaults() error {
	if cfg.Storage.DB.DSN != "" && cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverSQLite
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("%w: resolve home directory: %w", ErrInvalidStorageConfigs, err)
		}
		cfg.Storage.Dir = filepath.Join(home, DefaultStoreDirName)
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = cfg.Server.HTTPAddress
	}

	return nil
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "", DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	threads := uint32(max(cfg.Crypto.ArgonThreads, 1))
	if cfg.Crypto.ArgonMemory != 0 && cfg.Crypto.ArgonMemory < 8*threads {
		return fmt.Errorf("%w: argon memory must be at least 8 KiB per thread", ErrInvalidCryptoConfigs)
	}

	return nil
}
