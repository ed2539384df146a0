// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldPath targets an entry path: non-empty '/'-separated segments,
	// none of them empty.
	FieldPath = "path"

	// FieldRoot targets a subtree root: a valid path or "/".
	FieldRoot = "root"

	// FieldUsername targets the username of a credential.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of a credential.
	FieldPassword = "password"

	// FieldMasterPassword targets a master password.
	FieldMasterPassword = "master_password"

	// FieldCredentials targets every credential of a batch.
	FieldCredentials = "credentials"
)

// CredentialValidator implements the Validator interface for vault input:
// credentials, batches of them, paths and master passwords.
//
// Strings are validated as paths by default; pass [FieldRoot] to accept a
// subtree root instead.
type CredentialValidator struct{}

// NewCredentialValidator constructs a new CredentialValidator and returns it
// as the Validator interface.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)

	case []models.Credential:
		return v.validateCredentials(ctx, value, fields...)

	case string:
		return v.validatePathString(ctx, value, fields...)

	case *crypto.Secret:
		return v.validateMasterPassword(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredential(_ context.Context, credential models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPath, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPath:
			if !isValidPath(credential.Path) {
				return fmt.Errorf("%w: %q", ErrInvalidPath, credential.Path)
			}
		case FieldUsername:
			if credential.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if len(credential.Password) == 0 {
				return ErrEmptyPassword
			}
			if bytes.IndexByte(credential.Password, 0) >= 0 {
				return ErrPasswordContainsNUL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validateCredentials(ctx context.Context, credentials []models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredentials}
	}

	for _, f := range fields {
		switch f {
		case FieldCredentials:
			if len(credentials) == 0 {
				return ErrEmptyCredentialsList
			}
			for i, credential := range credentials {
				if err := v.validateCredential(ctx, credential); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validatePathString(_ context.Context, path string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPath}
	}

	for _, f := range fields {
		switch f {
		case FieldPath:
			if !isValidPath(path) {
				return fmt.Errorf("%w: %q", ErrInvalidPath, path)
			}
		case FieldRoot:
			if path != utils.RootPath && !isValidPath(path) {
				return fmt.Errorf("%w: %q", ErrInvalidRoot, path)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validateMasterPassword(_ context.Context, password *crypto.Secret, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMasterPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldMasterPassword:
			if password.Len() == 0 {
				return ErrEmptyMasterPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidPath rejects empty paths and empty segments, which covers leading,
// trailing and doubled separators.
func isValidPath(path string) bool {
	if path == "" {
		return false
	}
	for segment := range strings.SplitSeq(path, models.PathSeparator) {
		if segment == "" {
			return false
		}
	}
	return true
}
