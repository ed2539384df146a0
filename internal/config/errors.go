package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, an unsupported database driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings (for
	// example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCryptoConfigs indicates Argon2id parameters that cannot be
	// used (for example, less memory than 8 KiB per thread).
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
)
