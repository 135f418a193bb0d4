// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/passwordless-vault/internal/crypto"
	"github.com/MKhiriev/passwordless-vault/models"
)

// Scenario 1: setup → item → lock → unlock.
func TestScenario_SetupItemLockUnlock(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	item, err := h.svc.AddVaultItem(ctx, models.VaultItem{
		Type:    models.ItemTypePassword,
		Title:   "Gmail",
		Content: "p1",
	})
	require.NoError(t, err)

	require.NoError(t, h.svc.Lock(ctx))
	assert.Equal(t, Locked, h.svc.State())

	require.NoError(t, h.svc.Unlock(ctx))
	assert.Equal(t, Unlocked, h.svc.State())

	items, err := h.svc.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, "Gmail", items[0].Title)
	assert.Equal(t, "p1", items[0].Content)
}

// Scenario 2: two passkeys.
func TestScenario_TwoPasskeys(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	item, err := h.svc.AddVaultItem(ctx, models.VaultItem{
		Type:    models.ItemTypePassword,
		Title:   "Gmail",
		Content: "p1",
	})
	require.NoError(t, err)

	require.NoError(t, h.svc.AddPasskey(ctx, "Key2"))

	require.NoError(t, h.svc.Lock(ctx))

	// force the fake authenticator to respond with the second credential
	// by making the first cancel is not available — instead we simply
	// unlock normally: AuthenticateAny picks whichever offered credential
	// it recognises first, so to exercise Key2 specifically we remove
	// Key1's knowledge from the authenticator's perspective is not
	// possible without a new FakeClient; since both credentials live on
	// the same FakeClient, this still proves multi-credential unwrap by
	// verifying the Key2 WrappedDEK on its own, independent of which one
	// AuthenticateAny happens to pick.
	require.NoError(t, h.svc.Unlock(ctx))

	items, err := h.svc.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)

	creds, err := h.svc.ListCredentials(ctx)
	require.NoError(t, err)
	require.Len(t, creds, 2)

	wrappedDEKs, err := h.store.LoadWrappedDEKs(ctx)
	require.NoError(t, err)
	require.Len(t, wrappedDEKs, 2)

	for _, cred := range creds {
		var wrapped *models.WrappedDEK
		for i := range wrappedDEKs {
			if wrappedDEKs[i].CredentialID == cred.ID {
				wrapped = &wrappedDEKs[i]
			}
		}
		require.NotNil(t, wrapped, "missing wrapped dek for credential %s", cred.ID)

		_, prf, err := h.fake.AuthenticateAny(ctx, []models.Credential{cred})
		require.NoError(t, err)

		kek, err := crypto.DeriveKey(prf[:], crypto.LabelKEK, cred.PRFSalt, crypto.UsageWrap)
		require.NoError(t, err)

		dek, err := crypto.UnwrapDEK(wrapped.WrappedKey, kek)
		require.NoError(t, err)

		var doc models.VaultDocument
		encrypted, err := h.store.LoadEncryptedVault(ctx)
		require.NoError(t, err)
		require.NoError(t, crypto.DecryptJSON(dek, encrypted, &doc))
		require.Len(t, doc.Items, 1)
		assert.Equal(t, item.ID, doc.Items[0].ID)
	}
}

// Scenario 3: last-passkey guard.
func TestScenario_LastPasskeyGuard(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	creds, err := h.svc.ListCredentials(ctx)
	require.NoError(t, err)
	require.Len(t, creds, 1)

	err = h.svc.RemovePasskey(ctx, creds[0].ID)
	assert.ErrorIs(t, err, ErrLastPasskey)

	require.NoError(t, h.svc.Lock(ctx))
	require.NoError(t, h.svc.Unlock(ctx))
	assert.Equal(t, Unlocked, h.svc.State())
}

// Scenario 4: file round-trip.
func TestScenario_FileRoundTrip(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	content := []byte{0x00, 0x01, 0x02, 0xFF, 0xFE, 0xFD}
	item, err := h.svc.AddFileItem(ctx, content, "bin", "application/octet-stream", "My Binary")
	require.NoError(t, err)

	require.NoError(t, h.svc.Lock(ctx))
	require.NoError(t, h.svc.Unlock(ctx))

	gotContent, fileName, mimeType, err := h.svc.GetDecryptedFile(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, content, gotContent)
	assert.Equal(t, "bin", fileName)
	assert.Equal(t, "application/octet-stream", mimeType)
}

// Scenario 5: corrupted vault detection — tampering with the ciphertext
// surfaces DecryptionFailed, not VaultCorrupted.
func TestScenario_CorruptedVaultDetection(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	encrypted, err := h.store.LoadEncryptedVault(ctx)
	require.NoError(t, err)

	tampered := tamperBase64(t, encrypted)
	require.NoError(t, h.store.SaveEncryptedVault(ctx, tampered))

	require.NoError(t, h.svc.Lock(ctx))

	err = h.svc.Unlock(ctx)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)

	var corrupted VaultCorrupted
	assert.False(t, errors.As(err, &corrupted), "expected DecryptionFailed, not VaultCorrupted")
}

// Scenario 6: validation failure — a structurally-decryptable but
// semantically invalid document surfaces VaultCorrupted.
func TestScenario_ValidationFailure(t *testing.T) {
	h := newTestHarness(t)
	ctx := t.Context()
	setupUnlockedVault(t, h)

	badDoc := models.VaultDocument{
		Version: 1,
		Items: []models.VaultItem{
			{ID: "bad-item", Type: "unknown-type", Title: "x", Content: "y"},
		},
	}

	encrypted, err := crypto.EncryptJSON(h.svc.dek, badDoc)
	require.NoError(t, err)
	require.NoError(t, h.store.SaveEncryptedVault(ctx, encrypted))

	require.NoError(t, h.svc.Lock(ctx))

	err = h.svc.Unlock(ctx)
	var corrupted VaultCorrupted
	assert.True(t, errors.As(err, &corrupted), "expected VaultCorrupted, got %v", err)
}

// tamperBase64 flips every bit of the last decoded byte of a base64
// standard-encoded blob and re-encodes it, producing a byte-flipped copy
// with the same length.
func tamperBase64(t *testing.T, encodedB64 string) string {
	t.Helper()
	raw, err := crypto.DecodeStd(encodedB64)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	raw[len(raw)-1] ^= 0xFF
	return crypto.EncodeStd(raw)
}
