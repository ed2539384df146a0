package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, KeySize)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "empty", plaintext: ""},
		{name: "short", plaintext: "hunter2"},
		{name: "exactly padding size", plaintext: "0123456789abcdef0123456789abcdef"},
		{name: "longer than padding", plaintext: "a considerably longer passphrase that exceeds thirty-two bytes"},
		{name: "unicode", plaintext: "пароль-密码-🔑"},
	}

	key := testKey(0x42)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nonce, ciphertext, err := Encrypt([]byte(tt.plaintext), key)
			require.NoError(t, err)
			assert.Len(t, nonce, NonceSize)

			got, err := Decrypt(ciphertext, key, nonce)
			require.NoError(t, err)
			defer got.Destroy()

			assert.Equal(t, tt.plaintext, got.Reveal())
		})
	}
}

func TestEncrypt_PadsShortPlaintexts(t *testing.T) {
	key := testKey(0x01)

	_, short, err := Encrypt([]byte("a"), key)
	require.NoError(t, err)
	_, longer, err := Encrypt([]byte("abcdefghij"), key)
	require.NoError(t, err)

	assert.Equal(t, len(short), len(longer), "short plaintexts must produce equally sized ciphertexts")
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	key := testKey(0x01)

	n1, c1, err := Encrypt([]byte("same"), key)
	require.NoError(t, err)
	n2, c2, err := Encrypt([]byte("same"), key)
	require.NoError(t, err)

	assert.NotEqual(t, n1, n2)
	assert.NotEqual(t, c1, c2)
}

func TestDecrypt_WrongKeyFailsAuthentication(t *testing.T) {
	nonce, ciphertext, err := Encrypt([]byte("secret"), testKey(0x01))
	require.NoError(t, err)

	got, err := Decrypt(ciphertext, testKey(0x02), nonce)
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Nil(t, got)
}

func TestDecrypt_TamperedCiphertextFailsAuthentication(t *testing.T) {
	key := testKey(0x01)
	nonce, ciphertext, err := Encrypt([]byte("secret"), key)
	require.NoError(t, err)

	ciphertext[0] ^= 0xFF

	_, err = Decrypt(ciphertext, key, nonce)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestDecrypt_TamperedNonceFailsAuthentication(t *testing.T) {
	key := testKey(0x01)
	nonce, ciphertext, err := Encrypt([]byte("secret"), key)
	require.NoError(t, err)

	nonce[len(nonce)-1] ^= 0x01

	_, err = Decrypt(ciphertext, key, nonce)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestDecrypt_BadNonceSize(t *testing.T) {
	key := testKey(0x01)
	_, ciphertext, err := Encrypt([]byte("secret"), key)
	require.NoError(t, err)

	_, err = Decrypt(ciphertext, key, []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestDecrypt_InvalidUTF8(t *testing.T) {
	key := testKey(0x01)
	nonce, ciphertext, err := Encrypt([]byte{0xff, 0xfe, 0xfd}, key)
	require.NoError(t, err)

	_, err = Decrypt(ciphertext, key, nonce)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestEncrypt_RejectsNUL(t *testing.T) {
	nonce, ciphertext, err := Encrypt([]byte("ab\x00cd"), testKey(0x01))
	assert.ErrorIs(t, err, ErrEncoding)
	assert.Nil(t, nonce)
	assert.Nil(t, ciphertext)
}

func TestDecrypt_InvalidKeySize(t *testing.T) {
	_, err := Decrypt([]byte("x"), []byte("short"), make([]byte, NonceSize))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAuthentication)
}

func TestEncryptDecrypt_WithDerivedKey(t *testing.T) {
	kc := NewKeyChain(fastParams)
	salt, err := kc.GenerateSalt()
	require.NoError(t, err)

	pw := NewSecretString("master")
	defer pw.Destroy()

	var nonce, ciphertext []byte
	require.NoError(t, kc.WithKey(pw, salt, func(key []byte) error {
		nonce, ciphertext, err = Encrypt([]byte("site-password"), key)
		return err
	}))

	require.NoError(t, kc.WithKey(pw, salt, func(key []byte) error {
		got, err := Decrypt(ciphertext, key, nonce)
		if err != nil {
			return err
		}
		defer got.Destroy()
		assert.Equal(t, "site-password", got.Reveal())
		return nil
	}))

	wrong := NewSecretString("not master")
	defer wrong.Destroy()
	err = kc.WithKey(wrong, salt, func(key []byte) error {
		_, err := Decrypt(ciphertext, key, nonce)
		return err
	})
	assert.ErrorIs(t, err, ErrAuthentication)
}
