// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type Services struct {
	VaultService VaultService
}

// NewServices builds the validated vault service over storage, deriving
// keys with the Argon2id parameters from cfg.
func NewServices(storage store.CollectionStorage, cfg config.Crypto, logger *logger.Logger) *Services {
	keys := crypto.NewKeyChain(crypto.Params{
		Time:    cfg.ArgonTime,
		Memory:  cfg.ArgonMemory,
		Threads: cfg.ArgonThreads,
	})

	return &Services{
		VaultService: NewVaultValidationService().Wrap(NewVaultService(storage, keys, logger)),
	}
}
