// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Flat error taxonomy at the VaultService boundary (spec.md §7). Callers
// distinguish failures with errors.Is/errors.As against these values and
// the VaultCorrupted/StorageError types below — never by parsing message
// text.
var (
	// ErrNoCredentials is returned by Unlock when zero credentials are
	// enrolled.
	ErrNoCredentials = errors.New("service: no credentials enrolled")

	// ErrLastPasskey is returned by RemovePasskey when removing the
	// requested credential would leave fewer than one enrolled.
	ErrLastPasskey = errors.New("service: cannot remove the last passkey")

	// ErrPasskeyNotFound is returned by RemovePasskey when id does not
	// match any enrolled credential.
	ErrPasskeyNotFound = errors.New("service: passkey not found")

	// ErrVaultLocked is returned by any mutating or read operation that
	// requires the Unlocked state while the vault is Locked or
	// Uninitialised.
	ErrVaultLocked = errors.New("service: vault is locked")

	// ErrAlreadyInitialised is returned by Setup when the vault already
	// exists in persistence.
	ErrAlreadyInitialised = errors.New("service: vault is already initialised")

	// ErrNotInitialised is returned by Unlock when no vault record
	// exists yet.
	ErrNotInitialised = errors.New("service: vault is not initialised")

	// ErrItemNotFound is returned when an operation references a
	// VaultItem id that does not exist in the current document.
	ErrItemNotFound = errors.New("service: vault item not found")

	// ErrItemNotAFile is returned by GetDecryptedFile when the
	// referenced item is not of type file.
	ErrItemNotAFile = errors.New("service: vault item is not a file")
)

// VaultCorrupted reports a structural or semantic invariant failure
// discovered *after* successful decryption (spec.md §4.6) — distinct from
// DecryptionFailed because the ciphertext was genuine but what it
// contained was not a valid vault document. Reason names what failed but
// must never include decrypted secret content.
type VaultCorrupted struct {
	Reason string
}

func (e VaultCorrupted) Error() string {
	return fmt.Sprintf("service: vault corrupted: %s", e.Reason)
}

// StorageError wraps a failure surfaced by the KVStore/PersistenceAdapter
// capability, passed through unchanged (spec.md §7).
type StorageError struct {
	Cause error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("service: storage error: %v", e.Cause)
}

func (e StorageError) Unwrap() error {
	return e.Cause
}

func storageErr(err error) error {
	if err == nil {
		return nil
	}
	return StorageError{Cause: err}
}
