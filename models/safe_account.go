// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SafeAccount is the storage record holding one encrypted safe.
type SafeAccount struct {
	// Name identifies the safe in its storage backend.
	Name string `json:"name"`

	// EncryptedSafeDb is the serialized [SafeDb] envelope exactly as produced
	// by the safe codec. The store never interprets it.
	EncryptedSafeDb []byte `json:"encrypted_safe_db"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the SafeAccount model.
func (s SafeAccount) TableName() string {
	return "safes"
}
