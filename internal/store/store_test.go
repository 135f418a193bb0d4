// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/passwordless-vault/internal/config"
	"github.com/MKhiriev/passwordless-vault/internal/logger"
)

// newTestDB opens a real temp-file SQLite database, migrates it, and
// returns a ready-to-use *DB. Using a real database file (rather than a
// mock driver) exercises the actual SQL this package issues.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "vault-test.db")

	db, err := NewConnectSQLite(t.Context(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func newTestKVStore(t *testing.T) KVStore {
	t.Helper()
	return NewSQLiteKVStore(newTestDB(t), logger.Nop())
}
