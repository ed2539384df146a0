package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastParams keeps Argon2id cheap in tests.
var fastParams = Params{Time: 1, Memory: 64, Threads: 1}

func TestNewKeyChain_ZeroParamsFallBackToDefaults(t *testing.T) {
	kc := NewKeyChain(Params{}).(*keyChain)
	assert.Equal(t, DefaultParams(), kc.params)

	kc = NewKeyChain(Params{Time: 5}).(*keyChain)
	assert.Equal(t, Params{Time: 5, Memory: 19 * 1024, Threads: 1}, kc.params)
}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	kc := NewKeyChain(fastParams)

	s1, err := kc.GenerateSalt()
	require.NoError(t, err)
	s2, err := kc.GenerateSalt()
	require.NoError(t, err)

	raw, err := DecodeBase64(s1)
	require.NoError(t, err)
	assert.Len(t, raw, SaltSize)
	assert.NotContains(t, s1, "=", "salt must be unpadded")
	assert.NotEqual(t, s1, s2)
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	kc := NewKeyChain(fastParams)
	salt := EncodeBase64(bytes.Repeat([]byte{0xAB}, SaltSize))

	pw := NewSecretString("correct horse battery staple")
	defer pw.Destroy()

	k1, err := kc.DeriveKey(pw, salt)
	require.NoError(t, err)
	defer k1.Destroy()
	k2, err := kc.DeriveKey(pw, salt)
	require.NoError(t, err)
	defer k2.Destroy()

	assert.Equal(t, KeySize, k1.Len())
	assert.Equal(t, k1.Bytes(), k2.Bytes())
}

func TestDeriveKey_DifferentInputsProduceDifferentKeys(t *testing.T) {
	kc := NewKeyChain(fastParams)
	salt1 := EncodeBase64(bytes.Repeat([]byte{0x01}, SaltSize))
	salt2 := EncodeBase64(bytes.Repeat([]byte{0x02}, SaltSize))

	pw := NewSecretString("same password")
	defer pw.Destroy()
	other := NewSecretString("other password")
	defer other.Destroy()

	k1, err := kc.DeriveKey(pw, salt1)
	require.NoError(t, err)
	defer k1.Destroy()
	k2, err := kc.DeriveKey(pw, salt2)
	require.NoError(t, err)
	defer k2.Destroy()
	k3, err := kc.DeriveKey(other, salt1)
	require.NoError(t, err)
	defer k3.Destroy()

	assert.NotEqual(t, k1.Bytes(), k2.Bytes())
	assert.NotEqual(t, k1.Bytes(), k3.Bytes())
}

func TestDeriveKey_MalformedSalt(t *testing.T) {
	kc := NewKeyChain(fastParams)
	pw := NewSecretString("pw")
	defer pw.Destroy()

	tests := []struct {
		name string
		salt string
	}{
		{name: "not base64", salt: "not base64!!"},
		{name: "padded standard encoding", salt: "AAAAAAAAAAAAAAAAAAAAAA=="},
		{name: "empty", salt: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := kc.DeriveKey(pw, tt.salt)
			assert.ErrorIs(t, err, ErrEncoding)
			assert.Nil(t, key)
		})
	}
}

func TestWithKey_PassesDerivedKey(t *testing.T) {
	kc := NewKeyChain(fastParams)
	salt, err := kc.GenerateSalt()
	require.NoError(t, err)

	pw := NewSecretString("pw")
	defer pw.Destroy()

	want, err := kc.DeriveKey(pw, salt)
	require.NoError(t, err)
	defer want.Destroy()

	calls := 0
	err = kc.WithKey(pw, salt, func(key []byte) error {
		calls++
		assert.Equal(t, want.Bytes(), key)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithKey_PropagatesCallbackError(t *testing.T) {
	kc := NewKeyChain(fastParams)
	salt, err := kc.GenerateSalt()
	require.NoError(t, err)

	pw := NewSecretString("pw")
	defer pw.Destroy()

	err = kc.WithKey(pw, salt, func([]byte) error { return ErrAuthentication })
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestWithKey_MalformedSaltSkipsCallback(t *testing.T) {
	kc := NewKeyChain(fastParams)
	pw := NewSecretString("pw")
	defer pw.Destroy()

	called := false
	err := kc.WithKey(pw, "***", func([]byte) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrEncoding)
	assert.False(t, called)
}
