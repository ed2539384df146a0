// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_service_mock.go -package=mock

// VaultService runs one vault operation per call: the vault is loaded from
// storage, the operation runs and, when it changed anything, the vault is
// saved back. Master passwords stay owned by the caller.
type VaultService interface {
	Add(ctx context.Context, credential models.Credential, masterPassword *crypto.Secret) error
	AddMany(ctx context.Context, credentials []models.Credential, masterPassword *crypto.Secret) error
	Get(ctx context.Context, path string, masterPassword *crypto.Secret) (*crypto.Secret, error)

	Hide(ctx context.Context, root string, masterPassword *crypto.Secret) error
	Unhide(ctx context.Context, root string, masterPassword *crypto.Secret) error
	GetHidden(ctx context.Context, path string, unhidePassword, masterPassword *crypto.Secret) (*crypto.Secret, error)

	Import(ctx context.Context, rows []models.ImportRow, masterPassword *crypto.Secret) (int, error)
	List(ctx context.Context) ([]string, error)
	Sync(ctx context.Context, root string, masterPassword *crypto.Secret) (int, error)
	Unlock(ctx context.Context, root string, masterPassword *crypto.Secret) (int, error)
}
