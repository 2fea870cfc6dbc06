// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-small-safe/models"
)

func validEntry() models.Entry {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return models.Entry{
		ID:        uuid.New(),
		Name:      "mail",
		Value:     "hunter2",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func validGroup() models.Group {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return models.Group{
		ID:              uuid.New(),
		Name:            "Personal",
		Entries:         []models.Entry{validEntry()},
		EntriesHistory:  []models.Entry{},
		PreserveHistory: true,
		CreatedAt:       now,
		UpdatedAt:       now.Add(time.Minute),
	}
}

func TestSafeValidator_Group(t *testing.T) {
	v := NewSafeValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(g *models.Group)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Group) {}},
		{name: "nil id", mutate: func(g *models.Group) { g.ID = uuid.Nil }, wantErr: ErrInvalidID},
		{name: "blank name", mutate: func(g *models.Group) { g.Name = "  \t" }, wantErr: ErrEmptyName},
		{name: "updated before created", mutate: func(g *models.Group) { g.UpdatedAt = g.CreatedAt.Add(-time.Second) }, wantErr: ErrInvalidDates},
		{name: "nil entries", mutate: func(g *models.Group) { g.Entries = nil }, wantErr: ErrNilEntries},
		{name: "invalid nested entry", mutate: func(g *models.Group) { g.Entries[0].Value = "" }, wantErr: ErrEmptyValue},
		{name: "scoped to name ignores id", mutate: func(g *models.Group) { g.ID = uuid.Nil }, fields: []string{FieldName}},
		{name: "unknown field", mutate: func(*models.Group) {}, fields: []string{"colour"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGroup()
			tt.mutate(&g)

			err := v.Validate(ctx, g, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			assert.ErrorIs(t, v.Validate(ctx, &g, tt.fields...), tt.wantErr, "pointer form")
		})
	}
}

func TestSafeValidator_Entry(t *testing.T) {
	v := NewSafeValidator()
	ctx := context.Background()

	e := validEntry()
	require.NoError(t, v.Validate(ctx, e))

	e.Name = ""
	assert.NoError(t, v.Validate(ctx, e), "entry names are optional")

	e.Value = ""
	assert.ErrorIs(t, v.Validate(ctx, &e), ErrEmptyValue)
	assert.NoError(t, v.Validate(ctx, e, FieldID), "value not in scope")

	e = validEntry()
	e.ID = uuid.Nil
	assert.ErrorIs(t, v.Validate(ctx, e), ErrInvalidID)
}

func TestSafeValidator_Credentials(t *testing.T) {
	v := NewSafeValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SafeCredentials{Name: "default", Password: "p"}))
	assert.ErrorIs(t, v.Validate(ctx, models.SafeCredentials{Name: " ", Password: "p"}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, &models.SafeCredentials{Name: "default"}), ErrEmptyPassword)
	assert.NoError(t, v.Validate(ctx, models.SafeCredentials{Name: "default"}, FieldName))
}

func TestSafeValidator_FindRequest(t *testing.T) {
	v := NewSafeValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.FindRequest{Query: "mail"}))
	assert.ErrorIs(t, v.Validate(ctx, models.FindRequest{Query: "   "}), ErrEmptyQuery)
	assert.ErrorIs(t, v.Validate(ctx, &models.FindRequest{}), ErrEmptyQuery)
}

func TestSafeValidator_UnsupportedType(t *testing.T) {
	v := NewSafeValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.SafeAccount{}), ErrUnsupportedType)
}
