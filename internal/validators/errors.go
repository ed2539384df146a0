package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPath          = errors.New("invalid path")
	ErrInvalidRoot          = errors.New("invalid subtree root")
	ErrEmptyUsername        = errors.New("username is required")
	ErrEmptyPassword        = errors.New("password is required")
	ErrPasswordContainsNUL  = errors.New("password must not contain NUL bytes")
	ErrEmptyMasterPassword  = errors.New("master password is required")
	ErrEmptyCredentialsList = errors.New("credentials list cannot be empty")
)
