// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "errors"

var (
	// ErrNotFound is returned when a path, or a hidden root, is not in the
	// vault.
	ErrNotFound = errors.New("not found")

	// ErrMissingSalt is returned when hiding a subtree that holds a
	// plaintext entry.
	ErrMissingSalt = errors.New("entry has no salt record")
)
