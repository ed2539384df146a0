// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultService struct {
	storage store.CollectionStorage
	keys    crypto.KeyChain

	// mu serializes load → operation → save cycles within the process.
	mu sync.Mutex

	logger *logger.Logger
}

func NewVaultService(storage store.CollectionStorage, keys crypto.KeyChain, logger *logger.Logger) VaultService {
	return &vaultService{
		storage: storage,
		keys:    keys,
		logger:  logger,
	}
}

func (s *vaultService) Add(ctx context.Context, credential models.Credential, masterPassword *crypto.Secret) error {
	return s.update(ctx, func(v *vault.Vault) error {
		return v.Add(credential, masterPassword)
	})
}

func (s *vaultService) AddMany(ctx context.Context, credentials []models.Credential, masterPassword *crypto.Secret) error {
	return s.update(ctx, func(v *vault.Vault) error {
		return v.AddMany(credentials, masterPassword)
	})
}

func (s *vaultService) Get(ctx context.Context, path string, masterPassword *crypto.Secret) (*crypto.Secret, error) {
	var secret *crypto.Secret
	err := s.read(ctx, func(v *vault.Vault) error {
		var err error
		secret, err = v.Get(path, masterPassword)
		return err
	})
	return secret, err
}

func (s *vaultService) Hide(ctx context.Context, root string, masterPassword *crypto.Secret) error {
	return s.update(ctx, func(v *vault.Vault) error {
		return v.Hide(root, masterPassword)
	})
}

func (s *vaultService) Unhide(ctx context.Context, root string, masterPassword *crypto.Secret) error {
	return s.update(ctx, func(v *vault.Vault) error {
		return v.Unhide(root, masterPassword)
	})
}

func (s *vaultService) GetHidden(ctx context.Context, path string, unhidePassword, masterPassword *crypto.Secret) (*crypto.Secret, error) {
	var secret *crypto.Secret
	err := s.read(ctx, func(v *vault.Vault) error {
		var err error
		secret, err = v.GetHidden(path, unhidePassword, masterPassword)
		return err
	})
	return secret, err
}

func (s *vaultService) Import(ctx context.Context, rows []models.ImportRow, masterPassword *crypto.Secret) (int, error) {
	var imported int
	err := s.update(ctx, func(v *vault.Vault) error {
		var err error
		imported, err = v.Import(rows, masterPassword)
		return err
	})
	return imported, err
}

func (s *vaultService) List(ctx context.Context) ([]string, error) {
	var paths []string
	err := s.read(ctx, func(v *vault.Vault) error {
		paths = v.List()
		return nil
	})
	return paths, err
}

func (s *vaultService) Sync(ctx context.Context, root string, masterPassword *crypto.Secret) (int, error) {
	var synced int
	err := s.update(ctx, func(v *vault.Vault) error {
		var err error
		synced, err = v.Sync(root, masterPassword)
		return err
	})
	return synced, err
}

func (s *vaultService) Unlock(ctx context.Context, root string, masterPassword *crypto.Secret) (int, error) {
	var unlocked int
	err := s.update(ctx, func(v *vault.Vault) error {
		var err error
		unlocked, err = v.Unlock(root, masterPassword)
		return err
	})
	return unlocked, err
}

// read loads the vault and runs op on it without saving.
func (s *vaultService) read(ctx context.Context, op func(v *vault.Vault) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := vault.Load(ctx, s.storage, s.keys, s.logger)
	if err != nil {
		return err
	}
	return op(v)
}

// update loads the vault, runs op on it and saves it when op succeeds. A
// failed op leaves storage untouched.
func (s *vaultService) update(ctx context.Context, op func(v *vault.Vault) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)

	v, err := vault.Load(ctx, s.storage, s.keys, s.logger)
	if err != nil {
		log.Err(err).Str("func", "vaultService.update").Msg("error loading vault")
		return err
	}
	if err := op(v); err != nil {
		return err
	}
	if err := v.Save(ctx); err != nil {
		log.Err(err).Str("func", "vaultService.update").Msg("error saving vault")
		return err
	}
	return nil
}
