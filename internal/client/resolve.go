package client

import (
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-small-safe/internal/service"
	"github.com/MKhiriev/go-small-safe/models"
)

// findGroup resolves ref, an id or a case-insensitive name, among active
// groups. Group names are unique, so a name match is unambiguous.
func findGroup(groups []models.Group, ref string) (models.Group, error) {
	if id, err := uuid.Parse(ref); err == nil {
		for _, g := range groups {
			if g.ID == id {
				return g, nil
			}
		}
	}

	for _, g := range groups {
		if strings.EqualFold(g.Name, strings.TrimSpace(ref)) {
			return g, nil
		}
	}

	return models.Group{}, service.ErrGroupNotFound
}

// findEntry resolves ref, an id or a case-insensitive name, among the
// active entries of group. Entry names may repeat; a repeated name is
// rejected with [ErrAmbiguousEntry].
func findEntry(group models.Group, ref string) (models.Entry, error) {
	entries := group.ActiveEntries()

	if id, err := uuid.Parse(ref); err == nil {
		for _, e := range entries {
			if e.ID == id {
				return e, nil
			}
		}
	}

	var (
		found   models.Entry
		matches int
	)
	for _, e := range entries {
		if strings.EqualFold(e.Name, strings.TrimSpace(ref)) {
			found = e
			matches++
		}
	}

	switch matches {
	case 0:
		return models.Entry{}, service.ErrEntryNotFound
	case 1:
		return found, nil
	default:
		return models.Entry{}, ErrAmbiguousEntry
	}
}
