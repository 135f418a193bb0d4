// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VaultDocument is the full plaintext vault content. It is the sole
// structure encrypted as a single JSON blob under the DEK (see
// internal/crypto.EncryptJSON) and stored, base64-encoded, as the
// "encrypted-vault" KV record.
//
// Version is monotonically non-decreasing across the vault's lifetime. It
// exists so a future format change can be detected and migrated; nothing in
// this module bumps it past 1.
type VaultDocument struct {
	Version uint32      `json:"version"`
	Items   []VaultItem `json:"items"`
}

// NewEmptyVaultDocument returns the VaultDocument written at setup time:
// version 1, no items.
func NewEmptyVaultDocument() VaultDocument {
	return VaultDocument{Version: 1, Items: []VaultItem{}}
}
