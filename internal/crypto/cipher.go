// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 iteration count used for every safe.
	DefaultIterations = 100_000

	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// SaltSize equals the key size.
	SaltSize = KeySize
)

// Sealed is the output of [Cipher.Encrypt].
type Sealed struct {
	Ciphertext []byte
	IV         []byte
	Salt       []byte
}

// passwordCipher is the private implementation of [Cipher].
type passwordCipher struct {
	iterations int
	random     io.Reader
}

// Option customises a [Cipher] built by NewPasswordCipher.
type Option func(*passwordCipher)

// WithIterations overrides the PBKDF2 iteration count. Values below 1 are
// ignored. Lower counts are only meant for tests.
func WithIterations(n int) Option {
	return func(c *passwordCipher) {
		if n > 0 {
			c.iterations = n
		}
	}
}

// WithRandom replaces the source of salts and IVs (crypto/rand by default).
func WithRandom(r io.Reader) Option {
	return func(c *passwordCipher) {
		if r != nil {
			c.random = r
		}
	}
}

// NewPasswordCipher constructs a [Cipher] using PBKDF2-HMAC-SHA512 with
// [DefaultIterations] and AES-256-CBC.
func NewPasswordCipher(opts ...Option) Cipher {
	c := &passwordCipher{
		iterations: DefaultIterations,
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DeriveKey implements [Cipher].
func (c *passwordCipher) DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, c.iterations, KeySize, sha512.New)
}

// Encrypt implements [Cipher]. Every call draws a fresh salt and IV and
// builds its own block cipher, so nothing is shared between calls.
func (c *passwordCipher) Encrypt(password, plaintext string) (Sealed, error) {
	salt, err := c.randomBytes(SaltSize)
	if err != nil {
		return Sealed{}, fmt.Errorf("generate salt: %w", err)
	}
	iv, err := c.randomBytes(aes.BlockSize)
	if err != nil {
		return Sealed{}, fmt.Errorf("generate iv: %w", err)
	}

	block, err := aes.NewCipher(c.DeriveKey(password, salt))
	if err != nil {
		return Sealed{}, fmt.Errorf("create cipher: %w", err)
	}

	encoded, err := encodeUTF16(plaintext)
	if err != nil {
		return Sealed{}, fmt.Errorf("encode plaintext: %w", err)
	}

	padded := pkcs7Pad(encoded, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return Sealed{Ciphertext: ciphertext, IV: iv, Salt: salt}, nil
}

// Decrypt implements [Cipher]. The salt may be of any length so that safes
// written with longer salts still open.
func (c *passwordCipher) Decrypt(password string, iv, salt, ciphertext []byte) (string, error) {
	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: iv must be %d bytes, got %d", ErrDecryptionFailed, aes.BlockSize, len(iv))
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a positive multiple of %d",
			ErrDecryptionFailed, len(ciphertext), aes.BlockSize)
	}

	block, err := aes.NewCipher(c.DeriveKey(password, salt))
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	unpadded, err := pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	// UTF-16 text is always an even number of bytes.
	if len(unpadded)%2 != 0 {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-16", ErrDecryptionFailed)
	}

	text, err := decodeUTF16(unpadded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return text, nil
}

func (c *passwordCipher) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(c.random, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return b, nil
}
