package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-small-safe/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the group or entry identifier.
	FieldID = "id"

	// FieldName targets the user-visible name. Required for groups only.
	FieldName = "name"

	// FieldValue targets the secret value of an entry.
	FieldValue = "value"

	// FieldTimestamps checks that UpdatedAt does not precede CreatedAt.
	FieldTimestamps = "timestamps"

	// FieldEntries validates every entry of a group with the default entry fields.
	FieldEntries = "entries"

	// FieldPassword targets the master password of a safe.
	FieldPassword = "password"

	// FieldQuery targets a search query.
	FieldQuery = "query"
)

// SafeValidator implements [Validator] for the contents of a safe:
// models.Group, models.Entry, models.FindRequest and models.SafeCredentials,
// in value or pointer form.
type SafeValidator struct{}

// NewSafeValidator returns a [Validator] for safe contents.
func NewSafeValidator() Validator {
	return &SafeValidator{}
}

func (v *SafeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Group:
		return v.validateGroup(ctx, value, fields...)
	case *models.Group:
		return v.validateGroup(ctx, *value, fields...)

	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		return v.validateEntry(ctx, *value, fields...)

	case models.SafeCredentials:
		return v.validateCredentials(value, fields...)
	case *models.SafeCredentials:
		return v.validateCredentials(*value, fields...)

	case models.FindRequest:
		return v.validateFindRequest(value, fields...)
	case *models.FindRequest:
		return v.validateFindRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateGroup validates a single group.
//
// Default fields: ID, Name, Timestamps, Entries.
func (v *SafeValidator) validateGroup(ctx context.Context, group models.Group, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldTimestamps, FieldEntries}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if group.ID == uuid.Nil {
				return ErrInvalidID
			}
		case FieldName:
			if strings.TrimSpace(group.Name) == "" {
				return ErrEmptyName
			}
		case FieldTimestamps:
			if group.UpdatedAt.Before(group.CreatedAt) {
				return ErrInvalidDates
			}
		case FieldEntries:
			if group.Entries == nil {
				return ErrNilEntries
			}
			for i, entry := range group.Entries {
				if err := v.validateEntry(ctx, entry); err != nil {
					return fmt.Errorf("validation error at entry %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEntry validates a single entry. Entry names may be empty.
//
// Default fields: ID, Value, Timestamps.
func (v *SafeValidator) validateEntry(_ context.Context, entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldValue, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if entry.ID == uuid.Nil {
				return ErrInvalidID
			}
		case FieldValue:
			if entry.Value == "" {
				return ErrEmptyValue
			}
		case FieldTimestamps:
			if entry.UpdatedAt.Before(entry.CreatedAt) {
				return ErrInvalidDates
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SafeValidator) validateCredentials(creds models.SafeCredentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(creds.Name) == "" {
				return ErrEmptyName
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SafeValidator) validateFindRequest(req models.FindRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuery}
	}

	for _, f := range fields {
		switch f {
		case FieldQuery:
			if strings.TrimSpace(req.Query) == "" {
				return ErrEmptyQuery
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
