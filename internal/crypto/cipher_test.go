// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/rand"
	"errors"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	c := NewPasswordCipher()
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1 := c.DeriveKey("correct horse battery staple", salt)
	k2 := c.DeriveKey("correct horse battery staple", salt)

	assert.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	c := NewPasswordCipher()

	k1 := c.DeriveKey("same password", bytes.Repeat([]byte{0x01}, SaltSize))
	k2 := c.DeriveKey("same password", bytes.Repeat([]byte{0x02}, SaltSize))

	assert.NotEqual(t, k1, k2)
}

func TestDeriveKey_IterationsMatter(t *testing.T) {
	salt := bytes.Repeat([]byte{0x03}, SaltSize)

	k1 := NewPasswordCipher().DeriveKey("pw", salt)
	k2 := NewPasswordCipher(WithIterations(1000)).DeriveKey("pw", salt)

	assert.NotEqual(t, k1, k2)
}

func TestEncryptDecrypt_ValidEncryptThenDecrypt(t *testing.T) {
	c := NewPasswordCipher()

	sealed, err := c.Encrypt("master password", "value to encrypt")
	require.NoError(t, err)
	assert.NotEmpty(t, sealed.Ciphertext)
	assert.Len(t, sealed.IV, aes.BlockSize)
	assert.Len(t, sealed.Salt, SaltSize)

	decrypted, err := c.Decrypt("master password", sealed.IV, sealed.Salt, sealed.Ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "value to encrypt", decrypted)

	// a fresh instance decrypts the same material
	decrypted, err = NewPasswordCipher().Decrypt("master password", sealed.IV, sealed.Salt, sealed.Ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "value to encrypt", decrypted)
}

func TestEncryptDecrypt_RoundTripUnicode(t *testing.T) {
	c := NewPasswordCipher(WithIterations(1000))

	tests := []struct {
		name  string
		value string
	}{
		{name: "ascii", value: "hello"},
		{name: "cyrillic", value: "секретная заметка"},
		{name: "emoji outside BMP", value: "key 🔑 lock 🔒"},
		{name: "exact block of utf16", value: "12345678"},
		{name: "json", value: `[{"Id":"x","Name":"bank"}]`},
		{name: "single char", value: "x"},
		{name: "empty", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealed, err := c.Encrypt("pw", tt.value)
			require.NoError(t, err)
			assert.Zero(t, len(sealed.Ciphertext)%aes.BlockSize)

			got, err := c.Decrypt("pw", sealed.IV, sealed.Salt, sealed.Ciphertext)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestEncrypt_EncryptingTwiceGeneratesDifferentResult(t *testing.T) {
	c := NewPasswordCipher()

	s1, err := c.Encrypt("master password", "value to encrypt")
	require.NoError(t, err)
	s2, err := c.Encrypt("master password", "value to encrypt")
	require.NoError(t, err)

	assert.NotEqual(t, s1.Ciphertext, s2.Ciphertext)
	assert.NotEqual(t, s1.Salt, s2.Salt)
	assert.NotEqual(t, s1.IV, s2.IV)
}

func TestDecrypt_FailsWithWrongPassword(t *testing.T) {
	c := NewPasswordCipher()
	sealed, err := c.Encrypt("master password", "value to encrypt")
	require.NoError(t, err)

	_, err = c.Decrypt("not the master password", sealed.IV, sealed.Salt, sealed.Ciphertext)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecrypt_FailsWithWrongSalt(t *testing.T) {
	c := NewPasswordCipher()
	sealed, err := c.Encrypt("master password", "value to encrypt")
	require.NoError(t, err)

	_, err = c.Decrypt("master password", sealed.IV, randomBytes(t, len(sealed.Salt)), sealed.Ciphertext)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

// A wrong IV only corrupts the first CBC block, so decryption may succeed
// with garbage or fail; it must never return the original text.
func TestDecrypt_WrongIVDoesNotRecoverPlaintext(t *testing.T) {
	c := NewPasswordCipher()
	sealed, err := c.Encrypt("master password", "value to encrypt")
	require.NoError(t, err)

	got, err := c.Decrypt("master password", randomBytes(t, len(sealed.IV)), sealed.Salt, sealed.Ciphertext)
	if err != nil {
		assert.ErrorIs(t, err, ErrDecryptionFailed)
		return
	}
	assert.NotEqual(t, "value to encrypt", got)
}

func TestDecrypt_RejectsMalformedInput(t *testing.T) {
	c := NewPasswordCipher(WithIterations(1000))
	sealed, err := c.Encrypt("pw", "value")
	require.NoError(t, err)

	tests := []struct {
		name       string
		iv         []byte
		ciphertext []byte
	}{
		{name: "short iv", iv: sealed.IV[:8], ciphertext: sealed.Ciphertext},
		{name: "empty ciphertext", iv: sealed.IV, ciphertext: nil},
		{name: "truncated ciphertext", iv: sealed.IV, ciphertext: sealed.Ciphertext[:len(sealed.Ciphertext)-1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt("pw", tt.iv, sealed.Salt, tt.ciphertext)
			assert.ErrorIs(t, err, ErrDecryptionFailed)
		})
	}
}

func TestEncrypt_RandomSourceFailure(t *testing.T) {
	c := NewPasswordCipher(WithRandom(iotest.ErrReader(errors.New("no entropy"))))

	_, err := c.Encrypt("pw", "value")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRandomSource)
}

func TestCipher_ConcurrentUse(t *testing.T) {
	c := NewPasswordCipher(WithIterations(1000))

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value := string(rune('a'+i)) + " secret"
			password := string(rune('A'+i)) + " password"

			sealed, err := c.Encrypt(password, value)
			if err != nil {
				errs <- err
				return
			}
			got, err := c.Decrypt(password, sealed.IV, sealed.Salt, sealed.Ciphertext)
			if err != nil {
				errs <- err
				return
			}
			if got != value {
				errs <- errors.New("round trip mismatch for " + value)
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestPKCS7_Unpad(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    []byte
		wantErr bool
	}{
		{name: "full block of padding", input: bytes.Repeat([]byte{16}, 16), want: []byte{}},
		{name: "one byte pad", input: append(bytes.Repeat([]byte{'a'}, 15), 1), want: bytes.Repeat([]byte{'a'}, 15)},
		{name: "zero pad byte", input: append(bytes.Repeat([]byte{'a'}, 15), 0), wantErr: true},
		{name: "pad too large", input: append(bytes.Repeat([]byte{'a'}, 15), 17), wantErr: true},
		{name: "inconsistent pad", input: append(bytes.Repeat([]byte{'a'}, 14), 3, 2), wantErr: true},
		{name: "not block aligned", input: []byte{1, 1, 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pkcs7Unpad(tt.input, 16)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPadding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
