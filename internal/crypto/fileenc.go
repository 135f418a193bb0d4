// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/passwordless-vault/models"
)

// MaxFileSize is the policy size gate of spec.md §4.4 — 100 MiB by default.
// It is not a cryptographic limit (AES-GCM's own safety bound under a
// 96-bit nonce is far larger); it exists to keep a single in-memory buffer
// bounded since this module does no streaming encryption (spec.md §1
// Non-goals). A package-level var, not a const, so cmd/vault can apply
// config.Crypto.MaxFileSizeBytes at startup without threading the limit
// through every call site.
var MaxFileSize int64 = 100 * 1024 * 1024

// ErrFileTooLarge is returned by [EncryptFile] when the input exceeds
// [MaxFileSize].
type ErrFileTooLarge struct {
	Size  int64
	Limit int64
}

func (e ErrFileTooLarge) Error() string {
	return fmt.Sprintf("crypto: file size %d exceeds limit %d", e.Size, e.Limit)
}

// EncryptFile encrypts content as a single buffer under dek and returns the
// ciphertext blob (nonce ‖ ciphertext‖tag, suitable for storing verbatim —
// not base64-encoded — in the files KV namespace) plus the metadata record
// to fold into the owning VaultItem. An empty mimeType falls back to
// [models.DefaultMimeType].
func EncryptFile(dek Key, content []byte, fileName, mimeType string) ([]byte, models.FileMetadata, error) {
	if int64(len(content)) > MaxFileSize {
		return nil, models.FileMetadata{}, ErrFileTooLarge{Size: int64(len(content)), Limit: MaxFileSize}
	}

	if mimeType == "" {
		mimeType = models.DefaultMimeType
	}

	blob, err := Encrypt(dek, content, nil)
	if err != nil {
		return nil, models.FileMetadata{}, fmt.Errorf("encrypt file: %w", err)
	}

	meta := models.FileMetadata{
		FileName:     fileName,
		MimeType:     mimeType,
		OriginalSize: int64(len(content)),
		Version:      1,
	}

	return blob, meta, nil
}

// DecryptFile reverses [EncryptFile], returning the plaintext bytes. The
// caller is responsible for pairing blob with the FileMetadata that was
// produced alongside it (filename/MIME are not re-derived from ciphertext).
func DecryptFile(dek Key, blob []byte) ([]byte, error) {
	plaintext, err := Decrypt(dek, blob, nil)
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}
