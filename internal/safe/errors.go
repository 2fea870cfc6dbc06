package safe

import "errors"

var (
	// ErrInvalidSafe is returned when the stream holds well-formed JSON that
	// is not a readable safe: a null envelope, a missing IV, Salt or
	// EncryptedSafeGroups field, or a payload that does not decode into a
	// list of groups.
	ErrInvalidSafe = errors.New("cannot read a valid safe")

	// ErrMalformedSafe is returned when the envelope or the decrypted payload
	// is not valid JSON (syntax error, truncation, empty stream). The JSON
	// error is wrapped alongside it.
	ErrMalformedSafe = errors.New("malformed safe")
)
