// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/passwordless-vault/internal/crypto"
	"github.com/MKhiriev/passwordless-vault/models"
)

// Setup implements [VaultService].
//
// Write order follows spec.md §4.7's atomicity rule exactly: credentials,
// then wrapped DEKs, then the encrypted vault, then metadata last — so
// vault_exists() (which checks ciphertext + metadata) only reports true
// once every other record is already durable.
func (s *vaultService) Setup(ctx context.Context, userName, passkeyName string) error {
	if s.state != Uninitialised {
		return ErrAlreadyInitialised
	}

	cred, prfOutput, err := s.authenticator.CreateCredential(ctx, userName, passkeyName)
	if err != nil {
		return err
	}

	kek, err := crypto.DeriveKey(prfOutput[:], crypto.LabelKEK, cred.PRFSalt, crypto.UsageWrap)
	if err != nil {
		return fmt.Errorf("service: derive kek: %w", err)
	}

	dek, err := crypto.GenerateDEK()
	if err != nil {
		return fmt.Errorf("service: generate dek: %w", err)
	}

	wrappedKey, err := crypto.WrapDEK(dek, kek)
	if err != nil {
		return fmt.Errorf("service: wrap dek: %w", err)
	}

	document := models.NewEmptyVaultDocument()

	encrypted, err := crypto.EncryptJSON(dek, document)
	if err != nil {
		return fmt.Errorf("service: encrypt vault document: %w", err)
	}

	now := nowUTC()
	meta := models.VaultMetadata{
		Version:    document.Version,
		CreatedAt:  now,
		ModifiedAt: now,
		ItemCount:  len(document.Items),
	}
	wrappedDEK := models.WrappedDEK{
		CredentialID: cred.ID,
		WrappedKey:   wrappedKey,
		CreatedAt:    now,
		PRFSalt:      cred.PRFSalt,
	}

	if err := s.persistence.SaveCredentials(ctx, []models.Credential{cred}); err != nil {
		return storageErr(err)
	}
	if err := s.persistence.SaveWrappedDEKs(ctx, []models.WrappedDEK{wrappedDEK}); err != nil {
		return storageErr(err)
	}
	if err := s.persistence.SaveEncryptedVault(ctx, encrypted); err != nil {
		return storageErr(err)
	}
	if err := s.persistence.SaveVaultMetadata(ctx, meta); err != nil {
		return storageErr(err)
	}

	s.dek = dek
	s.document = &document
	s.state = Unlocked

	s.logger.Info().Str("func", "Setup").Str("credentialId", cred.ID).Msg("vault initialised")
	return nil
}
