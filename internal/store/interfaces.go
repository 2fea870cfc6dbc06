package store

import (
	"context"

	"github.com/MKhiriev/go-small-safe/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SafeRepository persists encrypted safe envelopes keyed by safe name. It
// stores opaque bytes and never sees a password or plaintext.
type SafeRepository interface {
	// CreateSafe stores a new safe. Returns [ErrSafeAlreadyExists] if an
	// active safe with the same name exists.
	CreateSafe(ctx context.Context, name string, envelope []byte) error

	// GetSafe returns the active safe with the given name or [ErrSafeNotFound].
	GetSafe(ctx context.Context, name string) (models.SafeAccount, error)

	// UpdateSafe replaces the envelope of an active safe. Returns
	// [ErrSafeNotFound] when nothing was updated.
	UpdateSafe(ctx context.Context, name string, envelope []byte) error

	// DeleteSafe soft-deletes an active safe. Returns [ErrSafeNotFound] when
	// there is nothing to delete.
	DeleteSafe(ctx context.Context, name string) error

	// ListSafes returns the names of all active safes in ascending order.
	ListSafes(ctx context.Context) ([]string, error)
}

// ErrorClassificator maps driver errors onto retry decisions and well-known
// constraint failures.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}
