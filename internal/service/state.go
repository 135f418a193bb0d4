// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// State is one of the three vault lifecycle states from spec.md §4.7.
type State int

const (
	// Uninitialised means no vault record exists in persistence yet.
	Uninitialised State = iota

	// Locked means a vault record exists but its DEK has not been
	// recovered in this process.
	Locked

	// Unlocked means the DEK is held in memory and the decrypted
	// VaultDocument is available.
	Unlocked
)

// String renders the state name for logging; never used for
// equality comparisons.
func (s State) String() string {
	switch s {
	case Uninitialised:
		return "uninitialised"
	case Locked:
		return "locked"
	case Unlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}
