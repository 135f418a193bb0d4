// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/passwordless-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/authenticator_client_mock.go -package=mock

// AuthenticatorClient is the sole capability the vault core uses to talk
// to hardware authenticators. It has no knowledge of persistence or vault
// semantics — its job is registering and questioning passkeys.
type AuthenticatorClient interface {
	// CreateCredential registers a new passkey with the PRF extension
	// enabled and immediately performs a PRF evaluation, returning both
	// the new Credential (with a freshly generated PRFSalt) and the raw
	// 32-byte PRF output the caller derives a KEK from.
	//
	// Returns [ErrPrfNotSupported] if the authenticator cannot evaluate
	// PRF, or [ErrAuthTimeout] if it does not respond in time.
	CreateCredential(ctx context.Context, userName, passkeyName string) (models.Credential, [32]byte, error)

	// AuthenticateAny asks the authenticator to perform one assertion
	// allowing any of the given credentials, requesting PRF evaluation
	// with each credential's stored PRFSalt as input. It returns the ID
	// of whichever credential the authenticator used and that
	// credential's PRF output.
	//
	// Returns [ErrPrfNotEnabled] if the response carries no PRF result,
	// [ErrUserCancelled] if the user declined, or [ErrAuthTimeout] if the
	// authenticator does not respond in time.
	AuthenticateAny(ctx context.Context, credentials []models.Credential) (credentialID string, prfOutput [32]byte, err error)
}
