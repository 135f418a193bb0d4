// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/passwordless-vault/internal/logger"
)

//go:generate mockgen -source=kvstore.go -destination=../mock/kv_store_mock.go -package=mock

// KVStore is the opaque byte-blob persistence capability vault components
// are built on (spec.md §6.2). It knows nothing about vault semantics —
// encryption, validation, and key naming are the callers' concern
// ([PersistenceAdapter] is the typed layer built on top of it).
//
// Every method is namespace-scoped; the same key in different namespaces
// names unrelated records. The two namespaces in use are "vault" and
// "files".
type KVStore interface {
	// Get returns the value stored at (namespace, key). The second return
	// value is false, with a nil error, when the key does not exist —
	// absence is not a failure condition.
	Get(ctx context.Context, namespace, key string) ([]byte, bool, error)

	// Set writes value at (namespace, key), replacing any existing value.
	Set(ctx context.Context, namespace, key string, value []byte) error

	// Delete removes (namespace, key). It is a no-op, not an error, if the
	// key does not exist.
	Delete(ctx context.Context, namespace, key string) error

	// ListKeys returns every key in namespace whose name begins with
	// prefix, in no particular order. An empty prefix lists every key in
	// the namespace.
	ListKeys(ctx context.Context, namespace, prefix string) ([]string, error)
}

// SQLiteKVStore is the [KVStore] implementation backed by the single
// generic kv_store table created by migrations/sqlite/0001_create_kv_store.sql.
// It is deliberately schema-less beyond (namespace, key, value) so it can
// serve both the "vault" and "files" namespaces without migration churn as
// vault record shapes evolve.
type SQLiteKVStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteKVStore constructs a [SQLiteKVStore] over an already-connected
// and migrated [DB].
func NewSQLiteKVStore(db *DB, log *logger.Logger) *SQLiteKVStore {
	return &SQLiteKVStore{db: db, logger: log}
}

const (
	queryKVGet       = `SELECT value FROM kv_store WHERE namespace = ? AND key = ?`
	queryKVUpsert    = `INSERT INTO kv_store (namespace, key, value, updated_at) VALUES (?, ?, ?, ?)
	                     ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	queryKVDelete    = `DELETE FROM kv_store WHERE namespace = ? AND key = ?`
	queryKVListKeys  = `SELECT key FROM kv_store WHERE namespace = ? AND key LIKE ? ESCAPE '\'`
)

// Get implements [KVStore].
func (s *SQLiteKVStore) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	log := logger.FromContext(ctx)

	row := s.db.QueryRowContext(ctx, queryKVGet, namespace, key)

	var value []byte
	err := row.Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "SQLiteKVStore.Get").Str("namespace", namespace).Str("key", key).Msg("error reading kv record")
		return nil, false, fmt.Errorf("store: get %s/%s: %w", namespace, key, err)
	}
	return value, true, nil
}

// Set implements [KVStore].
func (s *SQLiteKVStore) Set(ctx context.Context, namespace, key string, value []byte) error {
	log := logger.FromContext(ctx)

	_, err := s.db.ExecContext(ctx, queryKVUpsert, namespace, key, value, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		log.Err(err).Str("func", "SQLiteKVStore.Set").Str("namespace", namespace).Str("key", key).Msg("error writing kv record")
		return fmt.Errorf("store: set %s/%s: %w", namespace, key, err)
	}
	return nil
}

// Delete implements [KVStore].
func (s *SQLiteKVStore) Delete(ctx context.Context, namespace, key string) error {
	log := logger.FromContext(ctx)

	_, err := s.db.ExecContext(ctx, queryKVDelete, namespace, key)
	if err != nil {
		log.Err(err).Str("func", "SQLiteKVStore.Delete").Str("namespace", namespace).Str("key", key).Msg("error deleting kv record")
		return fmt.Errorf("store: delete %s/%s: %w", namespace, key, err)
	}
	return nil
}

// ListKeys implements [KVStore].
func (s *SQLiteKVStore) ListKeys(ctx context.Context, namespace, prefix string) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := s.db.QueryContext(ctx, queryKVListKeys, namespace, likePrefixPattern(prefix))
	if err != nil {
		log.Err(err).Str("func", "SQLiteKVStore.ListKeys").Str("namespace", namespace).Str("prefix", prefix).Msg("error listing kv keys")
		return nil, fmt.Errorf("store: list keys %s/%s*: %w", namespace, prefix, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			log.Err(err).Str("func", "SQLiteKVStore.ListKeys").Msg("error scanning kv key")
			return nil, fmt.Errorf("store: scan key: %w", err)
		}
		// SQLite's LIKE ignores ASCII case; keep only exact-case prefix matches.
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list keys %s/%s*: %w", namespace, prefix, err)
	}
	return keys, nil
}

// likePrefixPattern escapes SQL LIKE metacharacters in prefix and appends
// the wildcard so ListKeys matches only on literal prefixes.
func likePrefixPattern(prefix string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	return escaped + "%"
}
