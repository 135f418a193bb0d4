// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the vault state machine and public API
// (spec.md §4.7, component C8): the orchestration layer that drives the
// authenticator, the crypto envelope, the schema validator, and
// persistence to provide setup/unlock/lock and vault-item CRUD over a
// single owned VaultService instance. No process-wide globals — the
// in-memory DEK and decrypted document live on the VaultService value
// itself, and callers are responsible for serialising their own
// concurrent calls (spec.md §5).
package service

import (
	"context"

	"github.com/MKhiriev/passwordless-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_service_mock.go -package=mock

// VaultService is the public boundary described by spec.md §4.7. Every
// method below may return one of the sentinel/typed errors in errors.go,
// or one of internal/client's authenticator errors passed through
// unchanged (AuthCancelled → client.ErrUserCancelled, AuthTimeout →
// client.ErrAuthTimeout, PrfNotSupported → client.ErrPrfNotSupported,
// PrfNotEnabled → client.ErrPrfNotEnabled), or a DecryptionFailed from
// internal/crypto.
type VaultService interface {
	// Initialize inspects persistence and returns the resulting state:
	// Uninitialised if no vault record exists, Locked if one does. Never
	// calls the authenticator. Safe to call repeatedly; does not mutate
	// in-memory state beyond State().
	Initialize(ctx context.Context) (State, error)

	// Setup is legal only from Uninitialised. Enrolls the first
	// credential, generates the DEK, wraps it, writes the empty vault,
	// and transitions to Unlocked. Returns ErrAlreadyInitialised from any
	// other state.
	Setup(ctx context.Context, userName, passkeyName string) error

	// Unlock is legal from Locked. Returns ErrNoCredentials if zero
	// credentials are enrolled. Authenticates with any stored credential,
	// recovers the DEK, decrypts and validates the vault, and
	// transitions to Unlocked. From Unlocked it is a no-op returning nil;
	// from Uninitialised it returns ErrNotInitialised.
	Unlock(ctx context.Context) error

	// Lock drops the in-memory DEK and decrypted document and
	// transitions to Locked. Idempotent; a no-op from Uninitialised or
	// already-Locked.
	Lock(ctx context.Context) error

	// State reports the service's current lifecycle state.
	State() State

	// AddPasskey is legal only from Unlocked. Enrolls a new credential
	// and wraps the current in-memory DEK under its KEK — it never
	// generates a new DEK.
	AddPasskey(ctx context.Context, passkeyName string) error

	// RemovePasskey is legal in any state. Returns ErrPasskeyNotFound if
	// id is unknown, ErrLastPasskey if id names the only remaining
	// credential.
	RemovePasskey(ctx context.Context, credentialID string) error

	// ListCredentials returns the enrolled credentials in storage order.
	// Legal in any state.
	ListCredentials(ctx context.Context) ([]models.Credential, error)

	// AddVaultItem is legal only from Unlocked. item.Type must not be
	// ItemTypeFile — use AddFileItem for file items. Assigns a fresh ID
	// and timestamps, appends it to the in-memory document, and
	// persists. Returns the assigned item.
	AddVaultItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// UpdateVaultItem is legal only from Unlocked. Replaces the item
	// with the given ID's mutable fields, bumps ModifiedAt, and
	// persists. Returns ErrItemNotFound if id is unknown.
	UpdateVaultItem(ctx context.Context, id string, item models.VaultItem) (models.VaultItem, error)

	// DeleteVaultItem is legal only from Unlocked. Removes the item and
	// persists; if it was a file item, also deletes its file blob.
	// Returns ErrItemNotFound if id is unknown.
	DeleteVaultItem(ctx context.Context, id string) error

	// AddFileItem is legal only from Unlocked. Size-gates content,
	// allocates a fresh file ID, encrypts and stores the blob, appends a
	// file-type VaultItem, and persists. Returns the assigned item.
	AddFileItem(ctx context.Context, content []byte, fileName, mimeType, title string) (models.VaultItem, error)

	// GetDecryptedFile is legal only from Unlocked. Returns the
	// plaintext bytes, file name, and MIME type for the file item named
	// by id. Returns ErrItemNotFound if id is unknown, ErrItemNotAFile
	// if it is not a file item.
	GetDecryptedFile(ctx context.Context, id string) (content []byte, fileName string, mimeType string, err error)

	// Search is legal only from Unlocked. Returns every item whose
	// title, content, URL, username, or file name contains query,
	// case-insensitively.
	Search(ctx context.Context, query string) ([]models.VaultItem, error)

	// ListItems is legal only from Unlocked. Returns every item in the
	// current document, in document order.
	ListItems(ctx context.Context) ([]models.VaultItem, error)

	// Reset is legal only from Unlocked. Wipes both KV namespaces and
	// transitions to Uninitialised.
	Reset(ctx context.Context) error
}
