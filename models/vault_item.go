// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultItem is one record inside a decrypted VaultDocument. Exactly one of
// the "content" shape (Content, URL, Username) or the "file" shape (FileID,
// FileName, FileSize, MimeType) is meaningful, selected by Type.
type VaultItem struct {
	// ID is a UUID (v7, time-ordered) identifying this item within the
	// vault. Assigned once at creation and never reused.
	ID string `json:"id"`

	// Type selects the item's semantic shape. Must be one of the closed
	// ItemType enum; any other value fails schema validation.
	Type ItemType `json:"type"`

	// Title is the user-visible display name of the item.
	Title string `json:"title"`

	// Content is the item's plaintext secret body (password, note text,
	// arbitrary secret string). Always empty for ItemTypeFile.
	Content string `json:"content"`

	// URL is an optional associated resource (e.g. login page) for
	// password items.
	URL *string `json:"url,omitempty"`

	// Username is an optional associated login identifier for password
	// items.
	Username *string `json:"username,omitempty"`

	// FileID references the encrypted blob stored under this key in the
	// files KV namespace. Populated only for ItemTypeFile.
	FileID *string `json:"fileId,omitempty"`

	// FileName is the original file name. Populated only for
	// ItemTypeFile.
	FileName *string `json:"fileName,omitempty"`

	// FileSize is the original (plaintext) file size in bytes. Populated
	// only for ItemTypeFile.
	FileSize *int64 `json:"fileSize,omitempty"`

	// MimeType is the file's content type, falling back to
	// "application/octet-stream" when unknown. Populated only for
	// ItemTypeFile.
	MimeType *string `json:"mimeType,omitempty"`

	// CreatedAt is the timestamp the item was first added.
	CreatedAt time.Time `json:"createdAt"`

	// ModifiedAt is the timestamp of the item's last mutation.
	ModifiedAt time.Time `json:"modifiedAt"`
}
