// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/passwordless-vault/models"
)

// AddVaultItem implements [VaultService].
func (s *vaultService) AddVaultItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	if err := s.requireUnlocked(); err != nil {
		return models.VaultItem{}, err
	}

	now := nowUTC()
	item.ID = s.uuids.Generate()
	item.CreatedAt = now
	item.ModifiedAt = now

	if err := s.validator.Validate(ctx, item); err != nil {
		return models.VaultItem{}, err
	}

	s.document.Items = append(s.document.Items, item)

	if err := s.saveVaultData(ctx); err != nil {
		return models.VaultItem{}, err
	}

	s.logger.Info().Str("func", "AddVaultItem").Str("itemId", item.ID).Msg("vault item added")
	return item, nil
}

// UpdateVaultItem implements [VaultService].
func (s *vaultService) UpdateVaultItem(ctx context.Context, id string, item models.VaultItem) (models.VaultItem, error) {
	if err := s.requireUnlocked(); err != nil {
		return models.VaultItem{}, err
	}

	idx := s.findItemIndex(id)
	if idx == -1 {
		return models.VaultItem{}, ErrItemNotFound
	}

	existing := s.document.Items[idx]
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	item.ModifiedAt = nowUTC()

	if err := s.validator.Validate(ctx, item); err != nil {
		return models.VaultItem{}, err
	}

	s.document.Items[idx] = item

	if err := s.saveVaultData(ctx); err != nil {
		return models.VaultItem{}, err
	}

	s.logger.Info().Str("func", "UpdateVaultItem").Str("itemId", id).Msg("vault item updated")
	return item, nil
}

// DeleteVaultItem implements [VaultService].
func (s *vaultService) DeleteVaultItem(ctx context.Context, id string) error {
	if err := s.requireUnlocked(); err != nil {
		return err
	}

	idx := s.findItemIndex(id)
	if idx == -1 {
		return ErrItemNotFound
	}

	removed := s.document.Items[idx]
	s.document.Items = append(s.document.Items[:idx], s.document.Items[idx+1:]...)

	if err := s.saveVaultData(ctx); err != nil {
		return err
	}

	if removed.Type == models.ItemTypeFile && removed.FileID != nil {
		if err := s.persistence.DeleteFileBlob(ctx, *removed.FileID); err != nil {
			return storageErr(err)
		}
	}

	s.logger.Info().Str("func", "DeleteVaultItem").Str("itemId", id).Msg("vault item deleted")
	return nil
}

// ListItems implements [VaultService].
func (s *vaultService) ListItems(ctx context.Context) ([]models.VaultItem, error) {
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	items := make([]models.VaultItem, len(s.document.Items))
	copy(items, s.document.Items)
	return items, nil
}

// Search implements [VaultService]. Matching is case-insensitive substring
// over title/content/url/username/fileName, entirely in memory.
func (s *vaultService) Search(ctx context.Context, query string) ([]models.VaultItem, error) {
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var results []models.VaultItem
	for _, item := range s.document.Items {
		if itemMatches(item, needle) {
			results = append(results, item)
		}
	}
	return results, nil
}

func itemMatches(item models.VaultItem, lowerNeedle string) bool {
	fields := []string{item.Title, item.Content}
	if item.URL != nil {
		fields = append(fields, *item.URL)
	}
	if item.Username != nil {
		fields = append(fields, *item.Username)
	}
	if item.FileName != nil {
		fields = append(fields, *item.FileName)
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), lowerNeedle) {
			return true
		}
	}
	return false
}
