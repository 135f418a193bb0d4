// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/passwordless-vault/internal/crypto"
	"github.com/MKhiriev/passwordless-vault/models"
)

// AddFileItem implements [VaultService].
func (s *vaultService) AddFileItem(ctx context.Context, content []byte, fileName, mimeType, title string) (models.VaultItem, error) {
	if err := s.requireUnlocked(); err != nil {
		return models.VaultItem{}, err
	}

	blob, meta, err := crypto.EncryptFile(s.dek, content, fileName, mimeType)
	if err != nil {
		return models.VaultItem{}, err
	}

	fileID := s.uuids.Generate()
	if err := s.persistence.SaveFileBlob(ctx, fileID, blob); err != nil {
		return models.VaultItem{}, storageErr(err)
	}

	now := nowUTC()
	size := meta.OriginalSize
	item := models.VaultItem{
		ID:         s.uuids.Generate(),
		Type:       models.ItemTypeFile,
		Title:      title,
		FileID:     &fileID,
		FileName:   &meta.FileName,
		FileSize:   &size,
		MimeType:   &meta.MimeType,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if err := s.validator.Validate(ctx, item); err != nil {
		// the blob was already written; an invalid item here means a
		// caller-constructed title/type combination was rejected, which
		// leaves an orphaned blob. Clean it up before surfacing the error.
		_ = s.persistence.DeleteFileBlob(ctx, fileID)
		return models.VaultItem{}, err
	}

	s.document.Items = append(s.document.Items, item)

	if err := s.saveVaultData(ctx); err != nil {
		return models.VaultItem{}, err
	}

	s.logger.Info().Str("func", "AddFileItem").Str("itemId", item.ID).Str("fileId", fileID).Msg("file item added")
	return item, nil
}

// GetDecryptedFile implements [VaultService].
func (s *vaultService) GetDecryptedFile(ctx context.Context, id string) ([]byte, string, string, error) {
	if err := s.requireUnlocked(); err != nil {
		return nil, "", "", err
	}

	idx := s.findItemIndex(id)
	if idx == -1 {
		return nil, "", "", ErrItemNotFound
	}
	item := s.document.Items[idx]
	if item.Type != models.ItemTypeFile || item.FileID == nil {
		return nil, "", "", ErrItemNotAFile
	}

	blob, err := s.persistence.LoadFileBlob(ctx, *item.FileID)
	if err != nil {
		return nil, "", "", storageErr(err)
	}

	content, err := crypto.DecryptFile(s.dek, blob)
	if err != nil {
		return nil, "", "", err
	}

	fileName := ""
	if item.FileName != nil {
		fileName = *item.FileName
	}
	mimeType := ""
	if item.MimeType != nil {
		mimeType = *item.MimeType
	}

	return content, fileName, mimeType, nil
}
