// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/passwordless-vault/internal/crypto"
)

// Reset implements [VaultService]. Legal only from Unlocked — an
// intentional guard against accidentally destroying a vault nobody has
// proven possession of (spec.md §4.7).
func (s *vaultService) Reset(ctx context.Context) error {
	if err := s.requireUnlocked(); err != nil {
		return err
	}

	if err := s.persistence.ClearAllFiles(ctx); err != nil {
		return storageErr(err)
	}
	if err := s.persistence.ClearAllVaultData(ctx); err != nil {
		return storageErr(err)
	}

	s.dek = crypto.Key{}
	s.document = nil
	s.state = Uninitialised

	s.logger.Info().Str("func", "Reset").Msg("vault reset")
	return nil
}
