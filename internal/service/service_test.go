// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	authclient "github.com/MKhiriev/passwordless-vault/internal/client"
	"github.com/MKhiriev/passwordless-vault/internal/config"
	"github.com/MKhiriev/passwordless-vault/internal/logger"
	"github.com/MKhiriev/passwordless-vault/internal/store"
	"github.com/MKhiriev/passwordless-vault/internal/utils"
	"github.com/MKhiriev/passwordless-vault/internal/validators"
)

// testHarness bundles a VaultService built on real components (real
// temp-file SQLite persistence, the deterministic FakeClient
// authenticator, the real schema validator) so tests exercise the actual
// wiring rather than mocks, matching this module's ambient testing
// convention (see migrations/migrate_test.go, internal/store).
type testHarness struct {
	svc   *vaultService
	fake  *authclient.FakeClient
	store *store.PersistenceAdapter
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "vault-test.db")
	db, err := store.NewConnectSQLite(t.Context(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	kv := store.NewSQLiteKVStore(db, logger.Nop())
	persistence := store.NewPersistenceAdapter(kv, logger.Nop())
	fake := authclient.NewFakeClient()
	validator := validators.NewVaultItemValidator()
	uuids := utils.NewUUIDGenerator()

	svc := NewVaultService(persistence, fake, validator, uuids, logger.Nop()).(*vaultService)

	return &testHarness{svc: svc, fake: fake, store: persistence}
}

func setupUnlockedVault(t *testing.T, h *testHarness) {
	t.Helper()
	state, err := h.svc.Initialize(t.Context())
	require.NoError(t, err)
	require.Equal(t, Uninitialised, state)
	require.NoError(t, h.svc.Setup(t.Context(), "alice", "Key1"))
}
