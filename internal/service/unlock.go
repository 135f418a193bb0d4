// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/passwordless-vault/internal/crypto"
	"github.com/MKhiriev/passwordless-vault/models"
)

// Unlock implements [VaultService].
func (s *vaultService) Unlock(ctx context.Context) error {
	if s.state != Locked {
		if s.state == Unlocked {
			return nil
		}
		return ErrNotInitialised
	}

	creds, err := s.persistence.LoadCredentials(ctx)
	if err != nil {
		return storageErr(err)
	}
	if len(creds) == 0 {
		return ErrNoCredentials
	}

	usedID, prfOutput, err := s.authenticator.AuthenticateAny(ctx, creds)
	if err != nil {
		return err
	}

	var usedCred *models.Credential
	for i := range creds {
		if creds[i].ID == usedID {
			usedCred = &creds[i]
			break
		}
	}
	if usedCred == nil {
		return VaultCorrupted{Reason: "authenticator returned a credential id not present in the credentials list"}
	}

	wrappedDEKs, err := s.persistence.LoadWrappedDEKs(ctx)
	if err != nil {
		return storageErr(err)
	}
	var wrapped *models.WrappedDEK
	for i := range wrappedDEKs {
		if wrappedDEKs[i].CredentialID == usedID {
			wrapped = &wrappedDEKs[i]
			break
		}
	}
	if wrapped == nil {
		return VaultCorrupted{Reason: "no wrapped DEK found for the authenticated credential"}
	}

	kek, err := crypto.DeriveKey(prfOutput[:], crypto.LabelKEK, usedCred.PRFSalt, crypto.UsageWrap)
	if err != nil {
		return fmt.Errorf("service: derive kek: %w", err)
	}

	dek, err := crypto.UnwrapDEK(wrapped.WrappedKey, kek)
	if err != nil {
		// crypto.ErrWrapOpaque surfaces as-is — unwrap failure here means
		// a corrupted wrapped-dek record, not a decryption oracle concern
		// (the DEK itself is never attacker-supplied), but the opacity
		// policy is identical so no translation is needed.
		return err
	}

	encryptedVault, err := s.persistence.LoadEncryptedVault(ctx)
	if err != nil {
		return storageErr(err)
	}

	var document models.VaultDocument
	if err := crypto.DecryptJSON(dek, encryptedVault, &document); err != nil {
		return err
	}

	if err := s.validator.Validate(ctx, document); err != nil {
		return VaultCorrupted{Reason: err.Error()}
	}

	usedCred.LastUsedAt = nowUTC()
	for i := range creds {
		if creds[i].ID == usedID {
			creds[i] = *usedCred
			break
		}
	}
	if err := s.persistence.SaveCredentials(ctx, creds); err != nil {
		return storageErr(err)
	}

	s.dek = dek
	s.document = &document
	s.state = Unlocked

	s.logger.Info().Str("func", "Unlock").Str("credentialId", usedID).Msg("vault unlocked")
	return nil
}
