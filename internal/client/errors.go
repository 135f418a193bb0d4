// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// Authenticator-level failures, per spec.md §6.1/§7. These are the only
// errors an [AuthenticatorClient] implementation is expected to return;
// anything else propagates as-is and internal/service treats it as an
// opaque transport failure.
var (
	// ErrPrfNotSupported is returned by CreateCredential when the
	// authenticator cannot evaluate the PRF extension at all.
	ErrPrfNotSupported = errors.New("client: authenticator does not support the PRF extension")

	// ErrPrfNotEnabled is returned by AuthenticateAny when the assertion
	// succeeded but carried no PRF result (e.g. the credential was
	// registered without PRF).
	ErrPrfNotEnabled = errors.New("client: assertion response carried no PRF output")

	// ErrUserCancelled is returned by AuthenticateAny when the user
	// declined or dismissed the authenticator prompt.
	ErrUserCancelled = errors.New("client: user cancelled the authenticator prompt")

	// ErrAuthTimeout is returned by either operation when the
	// authenticator does not respond within its own enforced timeout.
	ErrAuthTimeout = errors.New("client: authenticator operation timed out")

	// ErrNoMatchingCredential is returned by AuthenticateAny when none of
	// the offered credentials are present on the authenticator actually
	// asked to respond (a FakeClient-only condition; real WebAuthn
	// authenticators simply fail the assertion, surfaced as
	// ErrUserCancelled).
	ErrNoMatchingCredential = errors.New("client: no matching credential available")
)
