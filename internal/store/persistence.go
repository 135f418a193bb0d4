// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/passwordless-vault/internal/logger"
	"github.com/MKhiriev/passwordless-vault/models"
)

// Namespaces used by the PersistenceAdapter, per spec.md §4.5.
const (
	NamespaceVault = "vault"
	NamespaceFiles = "files"
)

// Keys within NamespaceVault, per spec.md §4.5.
const (
	KeyEncryptedVault     = "encrypted-vault"
	KeyVaultMetadata      = "vault-metadata"
	KeyPasskeyCredentials = "passkey-credentials"
	KeyWrappedDEKs        = "wrapped-deks"
)

// fileBlobKeyPrefix is the prefix every file-blob key in NamespaceFiles
// carries, per spec.md §4.5's "file-blobs:{fileId}" key shape.
const fileBlobKeyPrefix = "file-blobs:"

// fileBlobKey returns the NamespaceFiles key under which the encrypted
// blob for fileID is stored.
func fileBlobKey(fileID string) string {
	return fileBlobKeyPrefix + fileID
}

// PersistenceAdapter is the typed vault-record layer built on top of
// [KVStore] (spec.md §4.5, component C6). It knows the vault's record
// shapes and the namespace/key table but performs no cryptography of its
// own — "encrypted-vault" and each WrappedDEK's wrappedKey arrive already
// encrypted from internal/crypto, and this layer stores them verbatim.
type PersistenceAdapter struct {
	kv     KVStore
	logger *logger.Logger
}

// NewPersistenceAdapter constructs a [PersistenceAdapter] over kv.
func NewPersistenceAdapter(kv KVStore, log *logger.Logger) *PersistenceAdapter {
	return &PersistenceAdapter{kv: kv, logger: log}
}

// VaultExists reports whether both the encrypted vault document and its
// metadata record are present, per spec.md §4.5.
func (p *PersistenceAdapter) VaultExists(ctx context.Context) (bool, error) {
	_, hasVault, err := p.kv.Get(ctx, NamespaceVault, KeyEncryptedVault)
	if err != nil {
		return false, err
	}
	_, hasMetadata, err := p.kv.Get(ctx, NamespaceVault, KeyVaultMetadata)
	if err != nil {
		return false, err
	}
	return hasVault && hasMetadata, nil
}

// SaveEncryptedVault persists the already-encrypted vault document string
// (the base64 form produced by internal/crypto.EncryptJSON) under
// "encrypted-vault".
func (p *PersistenceAdapter) SaveEncryptedVault(ctx context.Context, encryptedVaultB64 string) error {
	return p.kv.Set(ctx, NamespaceVault, KeyEncryptedVault, []byte(encryptedVaultB64))
}

// LoadEncryptedVault returns the stored encrypted vault document string, or
// [ErrKeyNotFound] if no vault has been created yet.
func (p *PersistenceAdapter) LoadEncryptedVault(ctx context.Context) (string, error) {
	value, ok, err := p.kv.Get(ctx, NamespaceVault, KeyEncryptedVault)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrKeyNotFound
	}
	return string(value), nil
}

// SaveVaultMetadata persists meta as JSON under "vault-metadata".
func (p *PersistenceAdapter) SaveVaultMetadata(ctx context.Context, meta models.VaultMetadata) error {
	raw, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("store: marshal vault metadata: %w", err)
	}
	return p.kv.Set(ctx, NamespaceVault, KeyVaultMetadata, raw)
}

// LoadVaultMetadata returns the stored vault metadata, or [ErrKeyNotFound]
// if no vault has been created yet.
func (p *PersistenceAdapter) LoadVaultMetadata(ctx context.Context) (models.VaultMetadata, error) {
	var meta models.VaultMetadata
	value, ok, err := p.kv.Get(ctx, NamespaceVault, KeyVaultMetadata)
	if err != nil {
		return meta, err
	}
	if !ok {
		return meta, ErrKeyNotFound
	}
	if err := json.Unmarshal(value, &meta); err != nil {
		return meta, fmt.Errorf("store: unmarshal vault metadata: %w", err)
	}
	return meta, nil
}

// SaveCredentials persists creds as an ordered JSON array under
// "passkey-credentials".
func (p *PersistenceAdapter) SaveCredentials(ctx context.Context, creds []models.Credential) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("store: marshal credentials: %w", err)
	}
	return p.kv.Set(ctx, NamespaceVault, KeyPasskeyCredentials, raw)
}

// LoadCredentials returns the stored credential list. A never-initialised
// vault returns an empty slice, not an error, since "no credentials yet"
// is the normal state before setup completes.
func (p *PersistenceAdapter) LoadCredentials(ctx context.Context) ([]models.Credential, error) {
	value, ok, err := p.kv.Get(ctx, NamespaceVault, KeyPasskeyCredentials)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Credential{}, nil
	}
	var creds []models.Credential
	if err := json.Unmarshal(value, &creds); err != nil {
		return nil, fmt.Errorf("store: unmarshal credentials: %w", err)
	}
	return creds, nil
}

// SaveWrappedDEKs persists deks as an ordered JSON array under
// "wrapped-deks".
func (p *PersistenceAdapter) SaveWrappedDEKs(ctx context.Context, deks []models.WrappedDEK) error {
	raw, err := json.Marshal(deks)
	if err != nil {
		return fmt.Errorf("store: marshal wrapped deks: %w", err)
	}
	return p.kv.Set(ctx, NamespaceVault, KeyWrappedDEKs, raw)
}

// LoadWrappedDEKs returns the stored wrapped-DEK list. A never-initialised
// vault returns an empty slice, not an error.
func (p *PersistenceAdapter) LoadWrappedDEKs(ctx context.Context) ([]models.WrappedDEK, error) {
	value, ok, err := p.kv.Get(ctx, NamespaceVault, KeyWrappedDEKs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.WrappedDEK{}, nil
	}
	var deks []models.WrappedDEK
	if err := json.Unmarshal(value, &deks); err != nil {
		return nil, fmt.Errorf("store: unmarshal wrapped deks: %w", err)
	}
	return deks, nil
}

// SaveFileBlob persists the already-encrypted blob for fileID under
// NamespaceFiles.
func (p *PersistenceAdapter) SaveFileBlob(ctx context.Context, fileID string, blob []byte) error {
	return p.kv.Set(ctx, NamespaceFiles, fileBlobKey(fileID), blob)
}

// LoadFileBlob returns the encrypted blob for fileID, or [ErrKeyNotFound]
// if it does not exist.
func (p *PersistenceAdapter) LoadFileBlob(ctx context.Context, fileID string) ([]byte, error) {
	value, ok, err := p.kv.Get(ctx, NamespaceFiles, fileBlobKey(fileID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

// DeleteFileBlob removes the encrypted blob for fileID. Deleting a blob
// that does not exist is not an error.
func (p *PersistenceAdapter) DeleteFileBlob(ctx context.Context, fileID string) error {
	return p.kv.Delete(ctx, NamespaceFiles, fileBlobKey(fileID))
}

// ClearAllVaultData deletes the four vault-namespace keys, per spec.md
// §4.5. It does not touch NamespaceFiles — callers that also want file
// blobs gone call [PersistenceAdapter.ClearAllFiles].
func (p *PersistenceAdapter) ClearAllVaultData(ctx context.Context) error {
	for _, key := range []string{KeyEncryptedVault, KeyVaultMetadata, KeyPasskeyCredentials, KeyWrappedDEKs} {
		if err := p.kv.Delete(ctx, NamespaceVault, key); err != nil {
			return err
		}
	}
	return nil
}

// ClearAllFiles enumerates and deletes every "file-blobs:*" key, per
// spec.md §4.5.
func (p *PersistenceAdapter) ClearAllFiles(ctx context.Context) error {
	keys, err := p.kv.ListKeys(ctx, NamespaceFiles, fileBlobKeyPrefix)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if !strings.HasPrefix(key, fileBlobKeyPrefix) {
			continue
		}
		if err := p.kv.Delete(ctx, NamespaceFiles, key); err != nil {
			return err
		}
	}
	return nil
}
