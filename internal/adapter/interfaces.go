// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the vault HTTP API.
//
// [VaultClient] hides the transport: HTTP statuses returned by the server
// are mapped back to the sentinel errors of the vault, crypto, service and
// models packages, so callers match them with [errors.Is] exactly as they
// would against a local service.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultClient talks to a running vault server. Master passwords stay owned
// by the caller.
type VaultClient interface {
	// Add stores a credential under its path, encrypting the password with
	// masterPassword on the server. The credential password is wiped
	// before Add returns.
	Add(ctx context.Context, credential models.Credential, masterPassword *crypto.Secret) error

	// Get returns the decrypted password stored at path. The caller must
	// Destroy the returned secret.
	Get(ctx context.Context, path string, masterPassword *crypto.Secret) (*crypto.Secret, error)

	// List returns every entry path in store order.
	List(ctx context.Context) ([]string, error)
}
