// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-small-safe/internal/crypto"
	"github.com/MKhiriev/go-small-safe/internal/dictionary"
	"github.com/MKhiriev/go-small-safe/internal/generator"
	"github.com/MKhiriev/go-small-safe/internal/safe"
	"github.com/MKhiriev/go-small-safe/internal/service"
	"github.com/MKhiriev/go-small-safe/internal/store"
)

// HumanizeError turns a command failure into a one-line message for the
// terminal. Unknown errors are printed as is.
func HumanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return "wrong master password, or the safe is damaged"
	case errors.Is(err, safe.ErrMalformedSafe):
		return "the safe file is corrupted: " + err.Error()
	case errors.Is(err, safe.ErrInvalidSafe):
		return "the safe is incomplete: " + err.Error()
	case errors.Is(err, service.ErrNoSafe):
		return "safe not found, create it with \"init\""
	case errors.Is(err, store.ErrSafeAlreadyExists):
		return "a safe with this name already exists"
	case errors.Is(err, store.ErrInvalidSafeName):
		return "invalid safe name: use letters, digits, '.', '_' or '-'"
	case errors.Is(err, dictionary.ErrResourceMissing):
		return "word dictionary not found: " + err.Error()
	case errors.Is(err, generator.ErrCorpusTooSmall):
		return "word dictionary is not installed: run \"go generate ./internal/dictionary\" or set -dict-dir"
	case errors.Is(err, generator.ErrNoEligibleWords):
		return "no dictionary word fits the length limits, raise the maximum length"
	case errors.Is(err, ErrUserQuit):
		return "cancelled"
	}

	return err.Error()
}
