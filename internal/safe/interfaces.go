// Package safe turns a list of groups into an encrypted, self-describing
// envelope and back.
//
// An envelope is a JSON object:
//
//	{"IV": "<base64>", "Salt": "<base64>", "EncryptedSafeGroups": "<base64>"}
//
// EncryptedSafeGroups is the ciphertext of the groups serialized as a JSON
// array. The codec never touches storage: callers supply the stream.
package safe

import (
	"context"
	"io"

	"github.com/MKhiriev/go-small-safe/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec reads and writes encrypted safes.
type Codec interface {
	// Write serializes groups, encrypts them under password with a fresh salt
	// and IV, and writes the envelope to w in a single Write call. A nil
	// slice is written as an empty list.
	Write(ctx context.Context, password string, groups []models.Group, w io.Writer) error

	// Read decodes an envelope from r and decrypts it with password.
	//
	// Errors:
	//   - [ErrInvalidSafe] for a null or incomplete envelope or payload;
	//   - [ErrMalformedSafe] for broken JSON at either layer;
	//   - crypto.ErrDecryptionFailed for a wrong password or salt.
	Read(ctx context.Context, password string, r io.Reader) ([]models.Group, error)
}
