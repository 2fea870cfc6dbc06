// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SafeDb is the persisted envelope of a safe: the key-derivation salt, the
// CBC initialisation vector and the encrypted JSON array of groups.
//
// Field names are part of the on-disk format and must not change. Byte slices
// are serialized by encoding/json as standard base64 strings.
type SafeDb struct {
	IV                  []byte `json:"IV"`
	Salt                []byte `json:"Salt"`
	EncryptedSafeGroups []byte `json:"EncryptedSafeGroups"`
}

// IsComplete reports whether all three envelope fields are present.
// A missing, null or empty field makes the envelope unreadable.
func (s *SafeDb) IsComplete() bool {
	return s != nil &&
		len(s.IV) > 0 &&
		len(s.Salt) > 0 &&
		len(s.EncryptedSafeGroups) > 0
}
