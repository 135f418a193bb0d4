// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/passwordless-vault/internal/logger"
	"github.com/MKhiriev/passwordless-vault/models"
)

func newTestPersistenceAdapter(t *testing.T) *PersistenceAdapter {
	t.Helper()
	return NewPersistenceAdapter(newTestKVStore(t), logger.Nop())
}

func TestPersistenceAdapter_VaultExistsFalseBeforeSetup(t *testing.T) {
	p := newTestPersistenceAdapter(t)
	ctx := t.Context()

	exists, err := p.VaultExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPersistenceAdapter_VaultExistsRequiresBothCiphertextAndMetadata(t *testing.T) {
	p := newTestPersistenceAdapter(t)
	ctx := t.Context()

	require.NoError(t, p.SaveEncryptedVault(ctx, "ciphertext-only"))
	exists, err := p.VaultExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists, "ciphertext alone should not count as an existing vault")

	require.NoError(t, p.SaveVaultMetadata(ctx, models.VaultMetadata{Version: 1}))
	exists, err = p.VaultExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPersistenceAdapter_EncryptedVaultRoundTrips(t *testing.T) {
	p := newTestPersistenceAdapter(t)
	ctx := t.Context()

	require.NoError(t, p.SaveEncryptedVault(ctx, "ZmFrZS1jaXBoZXJ0ZXh0"))

	got, err := p.LoadEncryptedVault(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ZmFrZS1jaXBoZXJ0ZXh0", got)
}

func TestPersistenceAdapter_LoadEncryptedVaultMissingReturnsErrKeyNotFound(t *testing.T) {
	p := newTestPersistenceAdapter(t)
	ctx := t.Context()

	_, err := p.LoadEncryptedVault(ctx)
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestPersistenceAdapter_VaultMetadataRoundTrips(t *testing.T) {
	p := newTestPersistenceAdapter(t)
	ctx := t.Context()

	now := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	meta := models.VaultMetadata{Version: 1, CreatedAt: now, ModifiedAt: now, ItemCount: 3}
	require.NoError(t, p.SaveVaultMetadata(ctx, meta))

	got, err := p.LoadVaultMetadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, meta.Version, got.Version)
	assert.Equal(t, meta.ItemCount, got.ItemCount)
	assert.True(t, meta.CreatedAt.Equal(got.CreatedAt))
}

func TestPersistenceAdapter_CredentialsRoundTripAndDefaultEmpty(t *testing.T) {
	p := newTestPersistenceAdapter(t)
	ctx := t.Context()

	empty, err := p.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	creds := []models.Credential{
		{ID: "cred-1", Name: "Laptop", PRFSalt: "salt-1"},
		{ID: "cred-2", Name: "Phone", PRFSalt: "salt-2"},
	}
	require.NoError(t, p.SaveCredentials(ctx, creds))

	got, err := p.LoadCredentials(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "cred-1", got[0].ID)
	assert.Equal(t, "cred-2", got[1].ID)
}

func TestPersistenceAdapter_WrappedDEKsRoundTripAndDefaultEmpty(t *testing.T) {
	p := newTestPersistenceAdapter(t)
	ctx := t.Context()

	empty, err := p.LoadWrappedDEKs(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	deks := []models.WrappedDEK{
		{CredentialID: "cred-1", WrappedKey: "wrapped-1", PRFSalt: "salt-1"},
	}
	require.NoError(t, p.SaveWrappedDEKs(ctx, deks))

	got, err := p.LoadWrappedDEKs(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "wrapped-1", got[0].WrappedKey)
}

func TestPersistenceAdapter_FileBlobRoundTrips(t *testing.T) {
	p := newTestPersistenceAdapter(t)
	ctx := t.Context()

	blob := []byte{0x01, 0x02, 0x03}
	require.NoError(t, p.SaveFileBlob(ctx, "file-1", blob))

	got, err := p.LoadFileBlob(ctx, "file-1")
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestPersistenceAdapter_LoadFileBlobMissingReturnsErrKeyNotFound(t *testing.T) {
	p := newTestPersistenceAdapter(t)
	ctx := t.Context()

	_, err := p.LoadFileBlob(ctx, "never-existed")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestPersistenceAdapter_DeleteFileBlobRemovesIt(t *testing.T) {
	p := newTestPersistenceAdapter(t)
	ctx := t.Context()

	require.NoError(t, p.SaveFileBlob(ctx, "file-1", []byte("data")))
	require.NoError(t, p.DeleteFileBlob(ctx, "file-1"))

	_, err := p.LoadFileBlob(ctx, "file-1")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestPersistenceAdapter_ClearAllVaultDataRemovesExactlyTheFourKeys(t *testing.T) {
	p := newTestPersistenceAdapter(t)
	ctx := t.Context()

	require.NoError(t, p.SaveEncryptedVault(ctx, "ciphertext"))
	require.NoError(t, p.SaveVaultMetadata(ctx, models.VaultMetadata{Version: 1}))
	require.NoError(t, p.SaveCredentials(ctx, []models.Credential{{ID: "cred-1"}}))
	require.NoError(t, p.SaveWrappedDEKs(ctx, []models.WrappedDEK{{CredentialID: "cred-1"}}))
	require.NoError(t, p.SaveFileBlob(ctx, "file-1", []byte("data")))

	require.NoError(t, p.ClearAllVaultData(ctx))

	exists, err := p.VaultExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	creds, err := p.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.Empty(t, creds)

	// file blobs are untouched by ClearAllVaultData
	blob, err := p.LoadFileBlob(ctx, "file-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), blob)
}

func TestPersistenceAdapter_ClearAllFilesRemovesEveryBlobButLeavesVaultIntact(t *testing.T) {
	p := newTestPersistenceAdapter(t)
	ctx := t.Context()

	require.NoError(t, p.SaveEncryptedVault(ctx, "ciphertext"))
	require.NoError(t, p.SaveVaultMetadata(ctx, models.VaultMetadata{Version: 1}))
	require.NoError(t, p.SaveFileBlob(ctx, "file-1", []byte("a")))
	require.NoError(t, p.SaveFileBlob(ctx, "file-2", []byte("b")))

	require.NoError(t, p.ClearAllFiles(ctx))

	_, err := p.LoadFileBlob(ctx, "file-1")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
	_, err = p.LoadFileBlob(ctx, "file-2")
	assert.True(t, errors.Is(err, ErrKeyNotFound))

	exists, err := p.VaultExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}
