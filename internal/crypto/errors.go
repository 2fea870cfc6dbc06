package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned by Decrypt for every failure caused by
	// the key material or the ciphertext: wrong password, wrong salt,
	// malformed IV, truncated or corrupted ciphertext.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidPadding is wrapped together with ErrDecryptionFailed when the
	// PKCS#7 padding of the last block does not validate.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrRandomSource is returned when the random source cannot supply salt
	// or IV bytes.
	ErrRandomSource = errors.New("random source failure")
)
