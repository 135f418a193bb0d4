// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ItemType defines the semantic type of a VaultItem. It is the closed enum
// that the schema validator (internal/validators) checks against; any value
// outside this set fails validation with ErrInvalidItemType, which Unlock
// reports as VaultCorrupted.
type ItemType string

const (
	// ItemTypePassword is a username/password credential.
	ItemTypePassword ItemType = "password"

	// ItemTypeNote is a free-form secure note.
	ItemTypeNote ItemType = "note"

	// ItemTypeSecret is an arbitrary opaque secret string (API key, seed
	// phrase, etc.) that doesn't fit the password or note shape.
	ItemTypeSecret ItemType = "secret"

	// ItemTypeFile is a reference to an encrypted file blob stored
	// separately in the files KV namespace. Content is always empty for
	// this type; FileID/FileName/FileSize/MimeType are populated instead.
	ItemTypeFile ItemType = "file"
)

// IsValid reports whether t is one of the closed set of item types.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypePassword, ItemTypeNote, ItemTypeSecret, ItemTypeFile:
		return true
	default:
		return false
	}
}
