// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the number of random bytes in a key-derivation salt.
	SaltSize = 16
	// KeySize is the length of a derived key: AES-256.
	KeySize = 32
)

// Params tunes Argon2id. Zero fields fall back to [DefaultParams].
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultParams returns the Argon2id defaults the store has always used:
// 2 passes over 19 MiB on a single lane. Changing them makes previously
// written records undecryptable.
func DefaultParams() Params {
	return Params{
		Time:    2,
		Memory:  19 * 1024,
		Threads: 1,
	}
}

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	params Params
}

// NewKeyChain constructs a [KeyChain] backed by Argon2id with params.
func NewKeyChain(params Params) KeyChain {
	defaults := DefaultParams()
	if params.Time == 0 {
		params.Time = defaults.Time
	}
	if params.Memory == 0 {
		params.Memory = defaults.Memory
	}
	if params.Threads == 0 {
		params.Threads = defaults.Threads
	}
	return &keyChain{params: params}
}

// GenerateSalt implements [KeyChain]. It reads [SaltSize] bytes from the OS
// CSPRNG.
func (k *keyChain) GenerateSalt() (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return EncodeBase64(salt), nil
}

// DeriveKey implements [KeyChain].
func (k *keyChain) DeriveKey(password *Secret, salt string) (*Secret, error) {
	rawSalt, err := DecodeBase64(salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	if len(rawSalt) == 0 {
		return nil, fmt.Errorf("decode salt: %w: empty salt", ErrEncoding)
	}

	key := argon2.IDKey(password.Bytes(), rawSalt, k.params.Time, k.params.Memory, k.params.Threads, KeySize)
	return NewSecret(key), nil
}

// WithKey implements [KeyChain].
func (k *keyChain) WithKey(password *Secret, salt string, fn func(key []byte) error) error {
	key, err := k.DeriveKey(password, salt)
	if err != nil {
		return err
	}
	defer key.Destroy()

	return fn(key.Bytes())
}
