package crypto

import "errors"

var (
	// ErrAuthentication is returned when an AEAD tag does not verify: the key
	// is wrong or the ciphertext was tampered with.
	ErrAuthentication = errors.New("authentication failed")

	// ErrEncoding is returned for malformed base64 input, a nonce of the wrong
	// size, or decrypted bytes that are not valid UTF-8.
	ErrEncoding = errors.New("invalid encoding")
)
