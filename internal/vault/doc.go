// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault implements the credential store: three collections
// (entries, salt records and hidden roots) loaded together, mutated
// together and saved together.
//
// A path present in both the entry map and the salt ledger is encrypted:
// its password field is the base64 ciphertext of the secret, sealed with a
// key derived from the master password and the path's own salt. A path
// present only in the entry map is plaintext. Hidden roots move whole
// subtrees out of both collections into a blob encrypted with a key of its
// own, so reading a hidden secret takes two passwords.
//
// A [Vault] is not safe for concurrent use. Callers load it, run one
// operation and save it back.
package vault
