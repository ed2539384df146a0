// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault input before it reaches the store:
// entry paths, usernames, passwords and master passwords.
package validators

import "context"

// Validator validates value. fields narrows the check to the named fields,
// or tells a bare string which field it stands for.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
