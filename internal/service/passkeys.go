// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/passwordless-vault/internal/crypto"
	"github.com/MKhiriev/passwordless-vault/models"
)

// AddPasskey implements [VaultService].
func (s *vaultService) AddPasskey(ctx context.Context, passkeyName string) error {
	if err := s.requireUnlocked(); err != nil {
		return err
	}

	cred, prfOutput, err := s.authenticator.CreateCredential(ctx, "", passkeyName)
	if err != nil {
		return err
	}

	kek, err := crypto.DeriveKey(prfOutput[:], crypto.LabelKEK, cred.PRFSalt, crypto.UsageWrap)
	if err != nil {
		return fmt.Errorf("service: derive kek: %w", err)
	}

	// wrap the CURRENT in-memory DEK — AddPasskey never generates a new
	// one (spec.md §4.7).
	wrappedKey, err := crypto.WrapDEK(s.dek, kek)
	if err != nil {
		return fmt.Errorf("service: wrap dek: %w", err)
	}

	creds, err := s.persistence.LoadCredentials(ctx)
	if err != nil {
		return storageErr(err)
	}
	wrappedDEKs, err := s.persistence.LoadWrappedDEKs(ctx)
	if err != nil {
		return storageErr(err)
	}

	creds = append(creds, cred)
	wrappedDEKs = append(wrappedDEKs, models.WrappedDEK{
		CredentialID: cred.ID,
		WrappedKey:   wrappedKey,
		CreatedAt:    nowUTC(),
		PRFSalt:      cred.PRFSalt,
	})

	if err := s.persistence.SaveCredentials(ctx, creds); err != nil {
		return storageErr(err)
	}
	if err := s.persistence.SaveWrappedDEKs(ctx, wrappedDEKs); err != nil {
		return storageErr(err)
	}

	s.logger.Info().Str("func", "AddPasskey").Str("credentialId", cred.ID).Msg("passkey enrolled")
	return nil
}

// RemovePasskey implements [VaultService].
func (s *vaultService) RemovePasskey(ctx context.Context, credentialID string) error {
	creds, err := s.persistence.LoadCredentials(ctx)
	if err != nil {
		return storageErr(err)
	}

	idx := -1
	for i := range creds {
		if creds[i].ID == credentialID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrPasskeyNotFound
	}
	if len(creds) <= 1 {
		return ErrLastPasskey
	}

	wrappedDEKs, err := s.persistence.LoadWrappedDEKs(ctx)
	if err != nil {
		return storageErr(err)
	}

	creds = append(creds[:idx], creds[idx+1:]...)

	filteredDEKs := wrappedDEKs[:0]
	for _, wdek := range wrappedDEKs {
		if wdek.CredentialID != credentialID {
			filteredDEKs = append(filteredDEKs, wdek)
		}
	}

	if err := s.persistence.SaveCredentials(ctx, creds); err != nil {
		return storageErr(err)
	}
	if err := s.persistence.SaveWrappedDEKs(ctx, filteredDEKs); err != nil {
		return storageErr(err)
	}

	s.logger.Info().Str("func", "RemovePasskey").Str("credentialId", credentialID).Msg("passkey removed")
	return nil
}
