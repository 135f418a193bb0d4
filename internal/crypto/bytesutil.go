// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side cryptography core of the
// passwordless vault: key derivation, authenticated encryption, DEK
// envelope management, single-shot file encryption, and uniform password
// generation. It has no knowledge of persistence, the authenticator, or the
// UI — its sole responsibility is key material and ciphertexts.
//
// # Key hierarchy
//
//  1. DEK (data-encryption key) — a random 256-bit AES key generated once
//     at vault setup. It encrypts the vault document and every file blob.
//  2. KEK(c) (key-encryption key) — derived via HKDF-SHA256 from credential
//     c's PRF output and c's PRFSalt. It wraps (AES-GCM encrypts) the DEK.
//     Transient: never persisted, exists only during wrap/unwrap.
//
// See [DeriveKey], [GenerateDEK], [WrapDEK], [UnwrapDEK].
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
)

// RandomBytes returns n cryptographically random bytes read from the OS
// CSPRNG. Used for salts, nonces, and the DEK/KEK themselves.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// ConstantTimeEqual reports whether a and b are equal using a constant-time
// comparison, so that timing does not leak how many leading bytes matched.
func ConstantTimeEqual(a, b []byte) bool {
	return len(a) == len(b) && subtle.ConstantTimeCompare(a, b) == 1
}

// EncodeStd base64-encodes b with standard (padded) encoding — the form
// used for the encrypted vault document and wrapped DEK blobs.
func EncodeStd(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeStd decodes a standard (padded) base64 string produced by
// [EncodeStd].
func DecodeStd(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return b, nil
}

// EncodeRawURL base64url-encodes b without padding — the form used for
// Credential.ID and Credential.RawID per spec.md §6.4.
func EncodeRawURL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeRawURL decodes a base64url (no padding) string produced by
// [EncodeRawURL].
func DecodeRawURL(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode base64url: %w", err)
	}
	return b, nil
}
