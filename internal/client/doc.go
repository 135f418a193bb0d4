// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client defines the authenticator capability the vault core is
// built against (spec.md §6.1). It deliberately does not wrap a concrete
// WebAuthn relying-party library: those libraries implement the *server*
// side of a network challenge-response with a browser, which has no
// counterpart in a local, single-process vault. AuthenticatorClient
// captures only the two operations the core actually calls; a production
// binary wires it to a real platform authenticator bridge, and FakeClient
// stands in for tests and the CLI demo.
package client
