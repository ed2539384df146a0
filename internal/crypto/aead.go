// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"unicode/utf8"
)

// MinPlaintextSize is the length short plaintexts are padded to with NUL
// bytes before sealing, so ciphertexts of short secrets do not reveal
// their exact length.
const MinPlaintextSize = 32

// NonceSize is the AES-GCM nonce length: 96 bits.
const NonceSize = 12

// Encrypt seals plaintext under key with AES-256-GCM and a fresh random
// nonce. The returned ciphertext carries the authentication tag.
//
// Plaintexts containing a NUL byte fail with [ErrEncoding]: [Decrypt] cuts
// the result at the first one to undo the padding.
func Encrypt(plaintext, key []byte) (nonce, ciphertext []byte, err error) {
	if bytes.IndexByte(plaintext, 0) >= 0 {
		return nil, nil, fmt.Errorf("%w: plaintext contains a NUL byte", ErrEncoding)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	padded := make([]byte, max(len(plaintext), MinPlaintextSize))
	copy(padded, plaintext)
	defer Wipe(padded)

	return nonce, gcm.Seal(nil, nonce, padded, nil), nil
}

// Decrypt opens ciphertext produced by [Encrypt] and returns the plaintext
// in locked memory, with the NUL padding removed.
//
// Fails with [ErrAuthentication] when the tag does not verify and with
// [ErrEncoding] when the nonce has the wrong size or the plaintext is not
// valid UTF-8.
func Decrypt(ciphertext, key, nonce []byte) (*Secret, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrEncoding, gcm.NonceSize(), len(nonce))
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	if i := bytes.IndexByte(plaintext, 0); i >= 0 {
		Wipe(plaintext[i:])
		plaintext = plaintext[:i]
	}
	if !utf8.Valid(plaintext) {
		Wipe(plaintext)
		return nil, fmt.Errorf("%w: plaintext is not valid UTF-8", ErrEncoding)
	}

	return NewSecret(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
