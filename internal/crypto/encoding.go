// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
)

// Every binary value persisted by the store (salts, nonces, ciphertexts)
// uses URL-safe base64 without padding.
var encoding = base64.RawURLEncoding

// EncodeBase64 encodes b as URL-safe unpadded base64.
func EncodeBase64(b []byte) string {
	return encoding.EncodeToString(b)
}

// DecodeBase64 decodes URL-safe unpadded base64. Malformed input yields
// [ErrEncoding].
func DecodeBase64(s string) ([]byte, error) {
	b, err := encoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return b, nil
}
