// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/passwordless-vault/models"
)

func TestFakeClient_CreateCredential_PopulatesFields(t *testing.T) {
	fc := NewFakeClient()
	ctx := t.Context()

	cred, prf, err := fc.CreateCredential(ctx, "alice", "Laptop")
	require.NoError(t, err)

	assert.NotEmpty(t, cred.ID)
	assert.NotEmpty(t, cred.RawID)
	assert.Equal(t, "Laptop", cred.Name)
	assert.True(t, strings.HasPrefix(cred.PRFSalt, prfSaltPrefix))
	assert.NotEqual(t, [32]byte{}, prf)
}

func TestFakeClient_CreateCredential_DistinctCredentialsGetDistinctSalts(t *testing.T) {
	fc := NewFakeClient()
	ctx := t.Context()

	c1, _, err := fc.CreateCredential(ctx, "alice", "Laptop")
	require.NoError(t, err)
	c2, _, err := fc.CreateCredential(ctx, "alice", "Phone")
	require.NoError(t, err)

	assert.NotEqual(t, c1.ID, c2.ID)
	assert.NotEqual(t, c1.PRFSalt, c2.PRFSalt)
}

func TestFakeClient_CreateCredential_FailsWhenPRFUnsupported(t *testing.T) {
	fc := NewFakeClient()
	fc.SupportsPRF = false
	ctx := t.Context()

	_, _, err := fc.CreateCredential(ctx, "alice", "Laptop")
	assert.ErrorIs(t, err, ErrPrfNotSupported)
}

func TestFakeClient_AuthenticateAny_ReturnsSamePRFAsCreation(t *testing.T) {
	fc := NewFakeClient()
	ctx := t.Context()

	cred, createPRF, err := fc.CreateCredential(ctx, "alice", "Laptop")
	require.NoError(t, err)

	credID, authPRF, err := fc.AuthenticateAny(ctx, []models.Credential{cred})
	require.NoError(t, err)

	assert.Equal(t, cred.ID, credID)
	assert.Equal(t, createPRF, authPRF)
}

func TestFakeClient_AuthenticateAny_PicksOneOfMultipleOffered(t *testing.T) {
	fc := NewFakeClient()
	ctx := t.Context()

	c1, _, err := fc.CreateCredential(ctx, "alice", "Laptop")
	require.NoError(t, err)
	c2, _, err := fc.CreateCredential(ctx, "alice", "Phone")
	require.NoError(t, err)

	credID, _, err := fc.AuthenticateAny(ctx, []models.Credential{c1, c2})
	require.NoError(t, err)
	assert.Contains(t, []string{c1.ID, c2.ID}, credID)
}

func TestFakeClient_AuthenticateAny_NoMatchingCredential(t *testing.T) {
	fc := NewFakeClient()
	ctx := t.Context()

	unknown := models.Credential{ID: "never-registered", RawID: []byte("x"), PRFSalt: prfSaltPrefix + "y"}

	_, _, err := fc.AuthenticateAny(ctx, []models.Credential{unknown})
	assert.ErrorIs(t, err, ErrNoMatchingCredential)
}

func TestFakeClient_AuthenticateAny_UserCancelled(t *testing.T) {
	fc := NewFakeClient()
	ctx := t.Context()

	cred, _, err := fc.CreateCredential(ctx, "alice", "Laptop")
	require.NoError(t, err)

	fc.NextAuthenticateCancelled = true
	_, _, err = fc.AuthenticateAny(ctx, []models.Credential{cred})
	assert.ErrorIs(t, err, ErrUserCancelled)

	// the toggle resets itself after firing once
	_, _, err = fc.AuthenticateAny(ctx, []models.Credential{cred})
	assert.NoError(t, err)
}

func TestFakeClient_TwoFakeClients_HaveIndependentDeviceSecrets(t *testing.T) {
	a := NewFakeClient()
	b := NewFakeClient()
	ctx := t.Context()

	cred, prfA, err := a.CreateCredential(ctx, "alice", "Laptop")
	require.NoError(t, err)

	prfB := b.evaluatePRF(cred.RawID, cred.PRFSalt)
	assert.NotEqual(t, prfA, prfB)
}
