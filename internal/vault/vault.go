// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Names of the collections a vault is persisted as.
const (
	CredentialsCollection = "credentials"
	SaltsCollection       = "salts"
	HiddenCollection      = "hidden"
)

// Vault owns the entry map, the salt ledger and the hidden index. None of
// them is reachable from outside, so every mutation goes through an
// operation that keeps the collections consistent with each other.
type Vault struct {
	entries *models.EntryMap
	salts   *models.SaltLedger
	hidden  *models.HiddenIndex

	storage store.CollectionStorage
	keys    crypto.KeyChain
	logger  *logger.Logger
}

// New returns an empty vault persisted through storage.
func New(storage store.CollectionStorage, keys crypto.KeyChain, logger *logger.Logger) *Vault {
	return &Vault{
		entries: models.NewEntryMap(),
		salts:   models.NewSaltLedger(),
		hidden:  models.NewHiddenIndex(),
		storage: storage,
		keys:    keys,
		logger:  logger,
	}
}

// Load reads all three collections from storage. Missing collections load
// empty.
func Load(ctx context.Context, storage store.CollectionStorage, keys crypto.KeyChain, logger *logger.Logger) (*Vault, error) {
	v := New(storage, keys, logger)

	if err := storage.Load(ctx, CredentialsCollection, v.entries); err != nil {
		return nil, fmt.Errorf("load vault: %w", err)
	}
	if err := storage.Load(ctx, SaltsCollection, v.salts); err != nil {
		return nil, fmt.Errorf("load vault: %w", err)
	}
	if err := storage.Load(ctx, HiddenCollection, v.hidden); err != nil {
		return nil, fmt.Errorf("load vault: %w", err)
	}

	v.logger.Debug().
		Int("entries", v.entries.Len()).
		Int("salts", v.salts.Len()).
		Int("hidden", v.hidden.Len()).
		Msg("vault loaded")
	return v, nil
}

// Save writes all three collections back to storage.
func (v *Vault) Save(ctx context.Context) error {
	if err := v.storage.Save(ctx, CredentialsCollection, v.entries); err != nil {
		return fmt.Errorf("save vault: %w", err)
	}
	if err := v.storage.Save(ctx, SaltsCollection, v.salts); err != nil {
		return fmt.Errorf("save vault: %w", err)
	}
	if err := v.storage.Save(ctx, HiddenCollection, v.hidden); err != nil {
		return fmt.Errorf("save vault: %w", err)
	}
	return nil
}

// List returns the encrypted paths, in entry order. Plaintext entries and
// salt records without an entry are left out.
func (v *Vault) List() []string {
	paths := make([]string, 0, v.entries.Len())
	for path := range v.entries.All() {
		if v.salts.Has(path) {
			paths = append(paths, path)
		}
	}
	return paths
}

// HiddenRoots returns the roots of the hidden subtrees, in index order.
func (v *Vault) HiddenRoots() []string {
	return v.hidden.Roots()
}

// seal encrypts plaintext under a fresh salt and returns the base64
// ciphertext together with the record needed to open it.
func (v *Vault) seal(plaintext []byte, password *crypto.Secret) (string, models.SaltRecord, error) {
	salt, err := v.keys.GenerateSalt()
	if err != nil {
		return "", models.SaltRecord{}, err
	}

	var ciphertext, nonce []byte
	err = v.keys.WithKey(password, salt, func(key []byte) error {
		var encErr error
		nonce, ciphertext, encErr = crypto.Encrypt(plaintext, key)
		return encErr
	})
	if err != nil {
		return "", models.SaltRecord{}, err
	}

	return crypto.EncodeBase64(ciphertext), models.SaltRecord{
		Salt:  salt,
		Nonce: crypto.EncodeBase64(nonce),
	}, nil
}

// open decrypts a base64 ciphertext produced by seal.
func (v *Vault) open(ciphertext string, record models.SaltRecord, password *crypto.Secret) (*crypto.Secret, error) {
	rawCiphertext, err := crypto.DecodeBase64(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", err)
	}
	nonce, err := crypto.DecodeBase64(record.Nonce)
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}

	var plaintext *crypto.Secret
	err = v.keys.WithKey(password, record.Salt, func(key []byte) error {
		var decErr error
		plaintext, decErr = crypto.Decrypt(rawCiphertext, key, nonce)
		return decErr
	})
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}
