// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the response messages of the vault HTTP API, so the
// server and its tests share one wording.
package app

const (
	// MsgInvalidJSON is returned when a request body is not valid JSON.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a request fails validation:
	// a malformed path, an empty password or a password containing NUL.
	MsgInvalidDataProvided = "invalid data provided"

	MsgInvalidEncoding = "stored value is not valid base64 or UTF-8"

	// MsgWrongMasterPassword is returned when decryption fails
	// authentication. A tampered record looks the same.
	MsgWrongMasterPassword = "wrong master password"

	MsgEntryNotFound = "entry not found"

	// MsgPathConflict is returned when a path would nest an entry under
	// another entry, or turn a collection into an entry.
	MsgPathConflict = "path conflicts with an existing entry"

	// MsgMissingSalt is returned when an entry that should be encrypted has
	// no salt record.
	MsgMissingSalt = "entry is not encrypted"

	MsgInternalServerError = "internal server error"
)
