// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/passwordless-vault/internal/client"
	"github.com/MKhiriev/passwordless-vault/internal/crypto"
	"github.com/MKhiriev/passwordless-vault/internal/logger"
	"github.com/MKhiriev/passwordless-vault/internal/store"
	"github.com/MKhiriev/passwordless-vault/internal/utils"
	"github.com/MKhiriev/passwordless-vault/internal/validators"
	"github.com/MKhiriev/passwordless-vault/models"
)

// vaultService is the sole implementation of [VaultService]. One instance
// owns exactly one vault: the in-memory DEK and decrypted document below
// are its private state, never shared, never held by any other component
// (spec.md §3 "Ownership").
type vaultService struct {
	persistence   *store.PersistenceAdapter
	authenticator client.AuthenticatorClient
	validator     validators.Validator
	uuids         *utils.UUIDGenerator
	logger        *logger.Logger

	state State

	// dek and document are populated only while state == Unlocked. Lock
	// clears both.
	dek      crypto.Key
	document *models.VaultDocument
}

// NewVaultService constructs a [VaultService] in state [Uninitialised].
// Callers must call [VaultService.Initialize] before anything else to
// discover the vault's real state.
func NewVaultService(
	persistence *store.PersistenceAdapter,
	authenticator client.AuthenticatorClient,
	validator validators.Validator,
	uuids *utils.UUIDGenerator,
	log *logger.Logger,
) VaultService {
	return &vaultService{
		persistence:   persistence,
		authenticator: authenticator,
		validator:     validator,
		uuids:         uuids,
		logger:        log,
		state:         Uninitialised,
	}
}

// Initialize implements [VaultService].
func (s *vaultService) Initialize(ctx context.Context) (State, error) {
	exists, err := s.persistence.VaultExists(ctx)
	if err != nil {
		return s.state, storageErr(err)
	}

	if exists {
		s.state = Locked
	} else {
		s.state = Uninitialised
	}
	s.dek = crypto.Key{}
	s.document = nil

	s.logger.Debug().Str("func", "Initialize").Str("state", s.state.String()).Msg("vault state resolved")
	return s.state, nil
}

// State implements [VaultService].
func (s *vaultService) State() State {
	return s.state
}

// Lock implements [VaultService].
func (s *vaultService) Lock(ctx context.Context) error {
	// best-effort zeroisation: overwrite the DEK's backing storage before
	// dropping the reference. Key has no raw-byte setter of its own, so
	// the zero value (which carries no usage tag and fails any future
	// requireUsage check) stands in for "destroyed".
	s.dek = crypto.Key{}
	s.document = nil

	if s.state == Unlocked {
		s.state = Locked
	}
	s.logger.Debug().Str("func", "Lock").Str("state", s.state.String()).Msg("vault locked")
	return nil
}

// ListCredentials implements [VaultService].
func (s *vaultService) ListCredentials(ctx context.Context) ([]models.Credential, error) {
	creds, err := s.persistence.LoadCredentials(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	return creds, nil
}

// requireUnlocked is the guard every item/file/search operation opens
// with.
func (s *vaultService) requireUnlocked() error {
	if s.state != Unlocked {
		return ErrVaultLocked
	}
	return nil
}

// saveVaultData re-encrypts the in-memory document under the DEK, writes
// the ciphertext, and updates metadata — the shared tail of every mutating
// vault-item operation (spec.md §4.7).
func (s *vaultService) saveVaultData(ctx context.Context) error {
	encrypted, err := crypto.EncryptJSON(s.dek, s.document)
	if err != nil {
		return fmt.Errorf("service: encrypt vault document: %w", err)
	}
	if err := s.persistence.SaveEncryptedVault(ctx, encrypted); err != nil {
		return storageErr(err)
	}

	meta, err := s.persistence.LoadVaultMetadata(ctx)
	if err != nil {
		return storageErr(err)
	}
	meta.ModifiedAt = nowUTC()
	meta.ItemCount = len(s.document.Items)

	if err := s.persistence.SaveVaultMetadata(ctx, meta); err != nil {
		return storageErr(err)
	}
	return nil
}

// findItemIndex returns the index of the item with the given id in the
// in-memory document, or -1 if absent.
func (s *vaultService) findItemIndex(id string) int {
	for i := range s.document.Items {
		if s.document.Items[i].ID == id {
			return i
		}
	}
	return -1
}
