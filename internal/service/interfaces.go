package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-small-safe/models"
)

// SafeReadWriteService moves whole safes between the codec and a repository.
type SafeReadWriteService interface {
	// CreateSafe stores a new safe holding no groups.
	CreateSafe(ctx context.Context, creds models.SafeCredentials) error

	// ReadGroups loads and decrypts every group of the safe, tombstones included.
	ReadGroups(ctx context.Context, creds models.SafeCredentials) ([]models.Group, error)

	// TryReadGroups is ReadGroups that logs the failure and reports false
	// instead of returning it.
	TryReadGroups(ctx context.Context, creds models.SafeCredentials) ([]models.Group, bool)

	// WriteGroups encrypts groups with a fresh salt and IV and replaces the
	// stored safe.
	WriteGroups(ctx context.Context, creds models.SafeCredentials, groups []models.Group) error

	// ChangeMasterPassword re-encrypts the safe under newPassword.
	ChangeMasterPassword(ctx context.Context, creds models.SafeCredentials, newPassword string) error

	// DeleteSafe soft-deletes the safe after checking the password opens it.
	DeleteSafe(ctx context.Context, creds models.SafeCredentials) error

	ListSafes(ctx context.Context) ([]string, error)
}

// GroupService edits the groups and entries of one safe. Every mutating call
// is a read-modify-write of the whole safe.
type GroupService interface {
	ListGroups(ctx context.Context, creds models.SafeCredentials) ([]models.Group, error)
	AddGroup(ctx context.Context, creds models.SafeCredentials, name string) (models.Group, error)
	DeleteGroup(ctx context.Context, creds models.SafeCredentials, groupID uuid.UUID) error

	// MoveGroup places the group right after prevID, or first when prevID is nil.
	MoveGroup(ctx context.Context, creds models.SafeCredentials, groupID uuid.UUID, prevID *uuid.UUID) error

	ListEntries(ctx context.Context, creds models.SafeCredentials, groupID uuid.UUID) ([]models.Entry, error)
	AddEntry(ctx context.Context, creds models.SafeCredentials, groupID uuid.UUID, name, value string) (models.Entry, error)
	UpdateEntry(ctx context.Context, creds models.SafeCredentials, groupID, entryID uuid.UUID, value string) (models.Entry, error)
	DeleteEntry(ctx context.Context, creds models.SafeCredentials, groupID, entryID uuid.UUID) error
	MoveEntry(ctx context.Context, creds models.SafeCredentials, groupID, entryID uuid.UUID, prevID *uuid.UUID) error

	// SortEntries orders the entries of the group and all groups of the safe
	// by name, ignoring case.
	SortEntries(ctx context.Context, creds models.SafeCredentials, groupID uuid.UUID) error

	// EntryHistory returns earlier snapshots of one entry, oldest first.
	EntryHistory(ctx context.Context, creds models.SafeCredentials, groupID, entryID uuid.UUID) ([]models.Entry, error)
	PurgeEntryHistory(ctx context.Context, creds models.SafeCredentials, groupID, entryID uuid.UUID) error

	Find(ctx context.Context, creds models.SafeCredentials, req models.FindRequest) (models.FindResult, error)
	GetEntryValue(ctx context.Context, creds models.SafeCredentials, groupID, entryID uuid.UUID) (string, error)
}
