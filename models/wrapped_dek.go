// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// WrappedDEK is the single logical DEK, encrypted under one credential's
// KEK. Persisted under the "wrapped-deks" key as an ordered list — one
// entry per enrolled Credential, all unwrapping to the same DEK bytes.
type WrappedDEK struct {
	CredentialID string `json:"credentialId"`

	// WrappedKey is base64(nonce(12) || AES-GCM(raw DEK bytes)), per
	// spec.md §6.3. Opaque without the matching KEK.
	WrappedKey string `json:"wrappedKey"`

	CreatedAt time.Time `json:"createdAt"`

	// PRFSalt duplicates the owning Credential's salt. Unlock derives the
	// KEK from the matched Credential's own PRFSalt; this copy is not read
	// or compared against it.
	PRFSalt string `json:"prfSalt"`
}
