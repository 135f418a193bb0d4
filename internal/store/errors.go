// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrKeyNotFound is returned by PersistenceAdapter accessors when the
// requested record does not exist in its namespace. KVStore.Get reports
// absence through its bool return instead, since "not found" is a routine
// outcome there, not a failure; ErrKeyNotFound only surfaces once an
// accessor needs to convert that into an error for a caller that requires
// the record to exist.
var ErrKeyNotFound = errors.New("store: key not found")
