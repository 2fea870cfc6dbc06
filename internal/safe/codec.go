// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package safe

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-small-safe/internal/crypto"
	"github.com/MKhiriev/go-small-safe/internal/logger"
	"github.com/MKhiriev/go-small-safe/models"
)

type codec struct {
	cipher crypto.Cipher
	logger *logger.Logger
}

// NewCodec returns a [Codec] that encrypts with c.
func NewCodec(c crypto.Cipher, log *logger.Logger) Codec {
	return &codec{cipher: c, logger: log}
}

func (c *codec) Write(ctx context.Context, password string, groups []models.Group, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if groups == nil {
		groups = []models.Group{}
	}

	payload, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("marshal groups: %w", err)
	}

	c.logger.Debug().Str("func", "codec.Write").Int("groups", len(groups)).Msg("encrypting safe")
	sealed, err := c.cipher.Encrypt(password, string(payload))
	if err != nil {
		return fmt.Errorf("encrypt groups: %w", err)
	}

	envelope, err := json.Marshal(models.SafeDb{
		IV:                  sealed.IV,
		Salt:                sealed.Salt,
		EncryptedSafeGroups: sealed.Ciphertext,
	})
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	if _, err = w.Write(envelope); err != nil {
		return fmt.Errorf("write safe: %w", err)
	}
	c.logger.Debug().Str("func", "codec.Write").Int("bytes", len(envelope)).Msg("safe encrypted")
	return nil
}

func (c *codec) Read(ctx context.Context, password string, r io.Reader) ([]models.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var envelope *models.SafeDb
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return nil, classifyJSONError("decode envelope", err)
	}
	if !envelope.IsComplete() {
		return nil, ErrInvalidSafe
	}

	plaintext, err := c.cipher.Decrypt(password, envelope.IV, envelope.Salt, envelope.EncryptedSafeGroups)
	if err != nil {
		c.logger.Debug().Err(err).Str("func", "codec.Read").Msg("cannot decrypt safe")
		return nil, fmt.Errorf("decrypt safe: %w", err)
	}

	var groups []models.Group
	if err = json.Unmarshal([]byte(plaintext), &groups); err != nil {
		return nil, classifyJSONError("decode groups", err)
	}
	if groups == nil {
		return nil, ErrInvalidSafe
	}

	return groups, nil
}

// classifyJSONError maps a decoding error onto the safe error taxonomy.
// Anything else (typically a failing reader) is wrapped as is.
func classifyJSONError(op string, err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		base64Err base64.CorruptInputError
	)

	switch {
	case errors.As(err, &typeErr):
		return fmt.Errorf("%w: %s: %w", ErrInvalidSafe, op, err)
	case errors.As(err, &syntaxErr),
		errors.As(err, &base64Err),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %s: %w", ErrMalformedSafe, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
