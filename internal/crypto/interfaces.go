package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher is the password-based symmetric encryption layer of a safe.
// It knows nothing about groups, envelopes or storage.
//
// Scheme:
//
//	Salt, IV = random(32), random(16)                 (fresh on every Encrypt)
//	Key      = PBKDF2-HMAC-SHA512(password, Salt, 100000 iterations, 32 bytes)
//	C        = AES-256-CBC(Key, IV, PKCS#7(UTF-16LE(plaintext)))
//
// There is no integrity tag. A wrong password or salt is detected through
// padding validation; a wrong IV only garbles the first block and may
// decrypt without error.
//
// Implementations keep no per-call state, so a single Cipher is safe for
// concurrent use.
type Cipher interface {
	// DeriveKey derives a 256-bit key from password and salt.
	// Deterministic for identical inputs.
	DeriveKey(password string, salt []byte) []byte

	// Encrypt encrypts plaintext under a key derived from password and a
	// freshly generated salt. The returned salt and IV must be stored
	// alongside the ciphertext.
	Encrypt(password, plaintext string) (Sealed, error)

	// Decrypt reverses Encrypt. Returns an error wrapping
	// [ErrDecryptionFailed] when the ciphertext cannot be decrypted, which
	// almost always means a wrong password or salt.
	Decrypt(password string, iv, salt, ciphertext []byte) (string, error)
}
