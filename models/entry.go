// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single named secret. Value is plaintext once the safe has been
// decrypted; it is protected only by the whole-payload encryption of the
// surrounding safe.
type Entry struct {
	ID    uuid.UUID `json:"Id"`
	Name  string    `json:"Name"`
	Value string    `json:"Value"`

	CreatedAt time.Time  `json:"CreatedTimestamp"`
	UpdatedAt time.Time  `json:"UpdatedTimestamp"`
	DeletedAt *time.Time `json:"DeletedTimestamp,omitempty"`
}

// IsActive reports whether the entry has not been tombstoned.
func (e Entry) IsActive() bool {
	return e.DeletedAt == nil
}

// Snapshot returns a copy of e suitable for appending to a history list.
// The DeletedAt pointer is cloned so later tombstoning of the live entry
// never leaks into history.
func (e Entry) Snapshot() Entry {
	s := e
	if e.DeletedAt != nil {
		t := *e.DeletedAt
		s.DeletedAt = &t
	}
	return s
}
