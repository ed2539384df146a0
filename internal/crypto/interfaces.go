package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain derives per-record encryption keys from a master password.
//
// Every encrypted value in the store carries its own salt, so the same
// password yields a different key for every record:
//
//	salt = GenerateSalt()
//	key  = DeriveKey(password, salt)
//	nonce, ciphertext = Encrypt(plaintext, key)
type KeyChain interface {
	// GenerateSalt returns 16 fresh random bytes as URL-safe unpadded base64.
	GenerateSalt() (string, error)

	// DeriveKey stretches password with salt into a 256-bit key held in
	// locked memory. The caller must Destroy the returned key. Fails with
	// [ErrEncoding] when salt is not valid base64.
	DeriveKey(password *Secret, salt string) (*Secret, error)

	// WithKey derives the key for (password, salt) and passes it to fn. The
	// key is wiped when fn returns, whatever the outcome.
	WithKey(password *Secret, salt string, fn func(key []byte) error) error
}
