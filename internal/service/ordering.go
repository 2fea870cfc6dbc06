package service

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-small-safe/models"
)

// moveAfter returns a new slice where the item with key id directly follows
// the item with key prevID. A nil prevID moves it to the front; a prevID that
// is not present moves it to the back. Items keep their relative order
// otherwise.
func moveAfter[T any](items []T, key func(T) uuid.UUID, id uuid.UUID, prevID *uuid.UUID) []T {
	idx := slices.IndexFunc(items, func(item T) bool { return key(item) == id })
	if idx < 0 {
		return items
	}
	moving := items[idx]

	out := make([]T, 0, len(items))
	placed := false
	for i, item := range items {
		if i == idx {
			continue
		}
		if !placed && prevID == nil {
			out = append(out, moving)
			placed = true
		}
		out = append(out, item)
		if !placed && prevID != nil && key(item) == *prevID {
			out = append(out, moving)
			placed = true
		}
	}
	if !placed {
		out = append(out, moving)
	}

	return out
}

func groupKey(g models.Group) uuid.UUID { return g.ID }
func entryKey(e models.Entry) uuid.UUID { return e.ID }

func compareNames(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func sortGroupsByName(groups []models.Group) {
	slices.SortStableFunc(groups, func(a, b models.Group) int { return compareNames(a.Name, b.Name) })
}

func sortEntriesByName(entries []models.Entry) {
	slices.SortStableFunc(entries, func(a, b models.Entry) int { return compareNames(a.Name, b.Name) })
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
