// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"sync"
	"time"

	"github.com/MKhiriev/passwordless-vault/internal/crypto"
	"github.com/MKhiriev/passwordless-vault/models"
)

// prfSaltPrefix is the domain-separation prefix every generated PRFSalt
// carries, per spec.md §6.1.
const prfSaltPrefix = "passwordless-encryption-v1-"

// FakeClient is a deterministic, in-memory [AuthenticatorClient] standing
// in for a real hardware authenticator bridge. It models the WebAuthn PRF
// extension as an HMAC-SHA256 keyed by a per-device secret that never
// leaves the FakeClient: PRF(credential, salt) = HMAC(deviceSecret,
// rawID ‖ salt). This reproduces the property the real extension
// guarantees — the same credential asked with the same salt always
// evaluates to the same 32-byte output, and no two distinct credentials
// collide — without requiring real hardware or a browser.
//
// It also tracks which credentials it "knows about" so AuthenticateAny can
// report [ErrNoMatchingCredential], and tests can drive PrfNotSupported
// (CreateCredential) and UserCancelled (AuthenticateAny) scenarios via the
// toggles below.
type FakeClient struct {
	mu sync.Mutex

	deviceSecret []byte

	// SupportsPRF, when false, makes CreateCredential fail with
	// [ErrPrfNotSupported]. Defaults to true.
	SupportsPRF bool

	// NextAuthenticateCancelled, when true, makes the next call to
	// AuthenticateAny fail with [ErrUserCancelled] and reset itself to
	// false. Lets tests script a single cancelled prompt.
	NextAuthenticateCancelled bool

	known map[string]models.Credential // by Credential.ID
}

// NewFakeClient returns a ready-to-use [FakeClient] with PRF support
// enabled.
func NewFakeClient() *FakeClient {
	secret, err := crypto.RandomBytes(32)
	if err != nil {
		// crypto/rand failure means the OS CSPRNG is unusable; nothing
		// downstream of this client could proceed correctly either.
		panic("client: failed to seed fake device secret: " + err.Error())
	}
	return &FakeClient{
		deviceSecret: secret,
		SupportsPRF:  true,
		known:        make(map[string]models.Credential),
	}
}

// CreateCredential implements [AuthenticatorClient].
func (f *FakeClient) CreateCredential(ctx context.Context, userName, passkeyName string) (models.Credential, [32]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.SupportsPRF {
		return models.Credential{}, [32]byte{}, ErrPrfNotSupported
	}

	rawID, err := crypto.RandomBytes(32)
	if err != nil {
		return models.Credential{}, [32]byte{}, err
	}
	saltBytes, err := crypto.RandomBytes(16)
	if err != nil {
		return models.Credential{}, [32]byte{}, err
	}

	cred := models.Credential{
		ID:                crypto.EncodeRawURL(rawID),
		RawID:             rawID,
		Name:              passkeyName,
		CreatedAt:         time.Now().UTC(),
		LastUsedAt:        time.Now().UTC(),
		PRFSalt:           prfSaltPrefix + crypto.EncodeRawURL(saltBytes),
		AuthenticatorType: models.AuthenticatorPlatform,
	}

	f.known[cred.ID] = cred

	return cred, f.evaluatePRF(cred.RawID, cred.PRFSalt), nil
}

// AuthenticateAny implements [AuthenticatorClient].
func (f *FakeClient) AuthenticateAny(ctx context.Context, credentials []models.Credential) (string, [32]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.NextAuthenticateCancelled {
		f.NextAuthenticateCancelled = false
		return "", [32]byte{}, ErrUserCancelled
	}

	for _, offered := range credentials {
		known, ok := f.known[offered.ID]
		if !ok {
			continue
		}
		return known.ID, f.evaluatePRF(known.RawID, known.PRFSalt), nil
	}

	return "", [32]byte{}, ErrNoMatchingCredential
}

// evaluatePRF simulates the authenticator's PRF evaluation for one
// credential/salt pair.
func (f *FakeClient) evaluatePRF(rawID []byte, prfSalt string) [32]byte {
	mac := hmac.New(sha256.New, f.deviceSecret)
	mac.Write(rawID)
	mac.Write([]byte(prfSalt))
	var out [32]byte
	copy(out[:], mac.Sum(nil))
	return out
}
