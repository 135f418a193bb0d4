// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FileMetadata describes an encrypted file blob. It travels alongside the
// ciphertext (itself stored separately, keyed by FileID, in the files KV
// namespace) and is never persisted on its own — the fields it carries are
// folded into the owning VaultItem.
type FileMetadata struct {
	FileName     string `json:"fileName"`
	MimeType     string `json:"mimeType"`
	OriginalSize int64  `json:"originalSize"`
	Version      int    `json:"version"`
}

// DefaultMimeType is substituted when the caller supplies an empty MIME
// type for a file item, per spec.md §4.4.
const DefaultMimeType = "application/octet-stream"
