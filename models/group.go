// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Group is a named collection of secret entries inside a safe.
//
// Groups are tombstoned rather than removed: once DeletedAt is set the group
// stays in the serialized payload but is skipped by listing and search.
type Group struct {
	// ID uniquely identifies the group inside the safe.
	ID uuid.UUID `json:"Id"`

	// Name is the user-visible group name. Unique (case-insensitive) among
	// active groups.
	Name string `json:"Name"`

	// Entries holds the current entries in display order.
	Entries []Entry `json:"Entries"`

	// EntriesHistory is an append-only list of earlier entry snapshots,
	// populated on edit when PreserveHistory is true.
	EntriesHistory []Entry `json:"EntriesHistory"`

	// PreserveHistory controls whether UpdateEntry snapshots the previous value.
	PreserveHistory bool `json:"PreserveHistory"`

	CreatedAt time.Time  `json:"CreatedTimestamp"`
	UpdatedAt time.Time  `json:"UpdatedTimestamp"`
	DeletedAt *time.Time `json:"DeletedTimestamp,omitempty"`
}

// IsActive reports whether the group has not been tombstoned.
func (g Group) IsActive() bool {
	return g.DeletedAt == nil
}

// ActiveEntries returns the entries of g that have not been tombstoned,
// preserving their order.
func (g Group) ActiveEntries() []Entry {
	active := make([]Entry, 0, len(g.Entries))
	for _, e := range g.Entries {
		if e.IsActive() {
			active = append(active, e)
		}
	}
	return active
}

// FindEntry returns the index of the entry with the given id, or -1.
func (g Group) FindEntry(id uuid.UUID) int {
	for i, e := range g.Entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// ActiveGroups filters out tombstoned groups, preserving order.
func ActiveGroups(groups []Group) []Group {
	active := make([]Group, 0, len(groups))
	for _, g := range groups {
		if g.IsActive() {
			active = append(active, g)
		}
	}
	return active
}
