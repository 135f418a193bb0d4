// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/passwordless-vault/models"
)

func TestInitialize_UninitialisedWhenNoVault(t *testing.T) {
	h := newTestHarness(t)
	state, err := h.svc.Initialize(t.Context())
	require.NoError(t, err)
	assert.Equal(t, Uninitialised, state)
}

func TestSetup_FailsWhenAlreadyInitialised(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	err := h.svc.Setup(ctx, "alice", "Key2")
	assert.ErrorIs(t, err, ErrAlreadyInitialised)
}

func TestUnlock_FailsWhenUninitialised(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()

	_, err := h.svc.Initialize(ctx)
	require.NoError(t, err)

	err = h.svc.Unlock(ctx)
	assert.ErrorIs(t, err, ErrNotInitialised)
}

func TestUnlock_IdempotentWhenAlreadyUnlocked(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	require.NoError(t, h.svc.Unlock(ctx))
	assert.Equal(t, Unlocked, h.svc.State())
}

func TestMutatingOps_FailWhenLocked(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)
	require.NoError(t, h.svc.Lock(ctx))

	_, err := h.svc.AddVaultItem(ctx, models.VaultItem{Type: models.ItemTypeNote, Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, err = h.svc.ListItems(ctx)
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, err = h.svc.Search(ctx, "x")
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, err = h.svc.AddFileItem(ctx, []byte("x"), "f", "text/plain", "F")
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, _, _, err = h.svc.GetDecryptedFile(ctx, "anything")
	assert.ErrorIs(t, err, ErrVaultLocked)

	err = h.svc.AddPasskey(ctx, "Key2")
	assert.ErrorIs(t, err, ErrVaultLocked)

	err = h.svc.Reset(ctx)
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestMutatingOps_FailWhenUninitialised(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	_, err := h.svc.Initialize(ctx)
	require.NoError(t, err)

	_, err = h.svc.AddVaultItem(ctx, models.VaultItem{Type: models.ItemTypeNote, Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestLock_IsIdempotent(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	require.NoError(t, h.svc.Lock(ctx))
	assert.Equal(t, Locked, h.svc.State())
	require.NoError(t, h.svc.Lock(ctx))
	assert.Equal(t, Locked, h.svc.State())
}

func TestListCredentials_CallableInAnyState(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()

	creds, err := h.svc.ListCredentials(ctx)
	require.NoError(t, err)
	assert.Empty(t, creds)

	setupUnlockedVault(t, h)
	creds, err = h.svc.ListCredentials(ctx)
	require.NoError(t, err)
	assert.Len(t, creds, 1)

	require.NoError(t, h.svc.Lock(ctx))
	creds, err = h.svc.ListCredentials(ctx)
	require.NoError(t, err)
	assert.Len(t, creds, 1)
}

func TestRemovePasskey_NotFound(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	err := h.svc.RemovePasskey(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrPasskeyNotFound)
}

func TestItemNotFound(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	_, err := h.svc.UpdateVaultItem(ctx, "missing", models.VaultItem{Type: models.ItemTypeNote, Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrItemNotFound)

	err = h.svc.DeleteVaultItem(ctx, "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, _, _, err = h.svc.GetDecryptedFile(ctx, "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestGetDecryptedFile_ItemNotAFile(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	item, err := h.svc.AddVaultItem(ctx, models.VaultItem{Type: models.ItemTypeNote, Title: "x", Content: "y"})
	require.NoError(t, err)

	_, _, _, err = h.svc.GetDecryptedFile(ctx, item.ID)
	assert.ErrorIs(t, err, ErrItemNotAFile)
}

func TestDeleteVaultItem_RemovesFileBlob(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	item, err := h.svc.AddFileItem(ctx, []byte("hello"), "f.txt", "text/plain", "F")
	require.NoError(t, err)

	require.NoError(t, h.svc.DeleteVaultItem(ctx, item.ID))

	items, err := h.svc.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = h.store.LoadFileBlob(ctx, *item.FileID)
	assert.Error(t, err)
}

func TestSearch_MatchesTitleAndContentCaseInsensitively(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	_, err := h.svc.AddVaultItem(ctx, models.VaultItem{Type: models.ItemTypePassword, Title: "GitHub Login", Content: "hunter2"})
	require.NoError(t, err)
	_, err = h.svc.AddVaultItem(ctx, models.VaultItem{Type: models.ItemTypeNote, Title: "Grocery list", Content: "milk, eggs"})
	require.NoError(t, err)

	results, err := h.svc.Search(ctx, "github")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "GitHub Login", results[0].Title)

	results, err = h.svc.Search(ctx, "eggs")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Grocery list", results[0].Title)

	results, err = h.svc.Search(ctx, "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestReset_ReturnsVaultToUninitialised(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	_, err := h.svc.AddVaultItem(ctx, models.VaultItem{Type: models.ItemTypeNote, Title: "x", Content: "y"})
	require.NoError(t, err)

	require.NoError(t, h.svc.Reset(ctx))
	assert.Equal(t, Uninitialised, h.svc.State())

	exists, err := h.store.VaultExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	state, err := h.svc.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, Uninitialised, state)
}

func TestMultiplePasskeys_WrappedDEKCountInvariant(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	require.NoError(t, h.svc.AddPasskey(ctx, "Key2"))
	require.NoError(t, h.svc.AddPasskey(ctx, "Key3"))

	wrappedDEKs, err := h.store.LoadWrappedDEKs(ctx)
	require.NoError(t, err)
	require.Len(t, wrappedDEKs, 3)

	creds, err := h.svc.ListCredentials(ctx)
	require.NoError(t, err)
	require.Len(t, creds, 3)
}
