// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthenticatorType tags whether an enrolled credential lives on the
// device itself or is reachable cross-platform (security key, phone).
type AuthenticatorType string

const (
	AuthenticatorPlatform     AuthenticatorType = "platform"
	AuthenticatorCrossPlatform AuthenticatorType = "cross-platform"
)

// Credential describes one enrolled authenticator. It is persisted under
// the "passkey-credentials" key and never contains secret material — PRFSalt
// is not a secret, it only provides domain separation between credentials
// (see internal/crypto.DeriveKey and the PRF evaluation it feeds).
type Credential struct {
	// ID is the base64url (no padding) display form of the credential,
	// per spec.md §6.4. Used for equality/lookup and shown to the user.
	ID string `json:"id"`

	// RawID is the raw credential identifier bytes, the form the
	// authenticator client uses to build its allow-list when requesting
	// an assertion.
	RawID []byte `json:"rawId"`

	// Name is the user-assigned display name for this passkey
	// (e.g. "MacBook Touch ID", "YubiKey 5").
	Name string `json:"name"`

	CreatedAt  time.Time `json:"createdAt"`
	LastUsedAt time.Time `json:"lastUsedAt"`

	// PRFSalt is a per-credential domain-separation string, format
	// "passwordless-encryption-v1-" + base64url(16 random bytes). It is
	// used verbatim both as the PRF evaluation input (§6.1) and as the
	// HKDF salt (§4.1) when deriving this credential's KEK. Unique per
	// credential by construction.
	PRFSalt string `json:"prfSalt"`

	AuthenticatorType AuthenticatorType `json:"authenticatorType"`
}
