// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KDFLabel is an HKDF "info" string. These three labels are part of the
// on-disk contract (spec.md §4.1, §6.3) — byte-exact, ASCII, and must never
// change without a vault format-version bump.
type KDFLabel string

const (
	// LabelKEK derives key-wrapping keys (KEK(c)) from a credential's PRF
	// output. This is the only label exercised by the envelope path today.
	LabelKEK KDFLabel = "Passwordless Encryption KEK V1"

	// LabelDEK is reserved for a future single-key mode that derives the
	// DEK directly from PRF output instead of generating and wrapping it.
	// Not used by the envelope path.
	LabelDEK KDFLabel = "Passwordless Encryption DEK V1"

	// LabelAuth is reserved for a future authenticated-metadata / MAC
	// feature. Deliberately unused — see DESIGN.md Open Questions.
	LabelAuth KDFLabel = "Passwordless Encryption Auth V1"
)

// Usage tags a derived Key with the single operation family it may be used
// for, so that passing a key to the wrong primitive is a construction-time
// mistake the type system catches rather than a runtime hope.
type Usage int

const (
	// UsageData marks a key usable only with [Encrypt]/[Decrypt] (payload
	// AEAD — vault document, file blobs).
	UsageData Usage = iota + 1

	// UsageWrap marks a key usable only with [WrapDEK]/[UnwrapDEK]
	// (DEK envelope AEAD).
	UsageWrap
)

// ErrKeyUsageMismatch is returned when a Key derived for one usage is
// presented to a primitive that requires the other.
var ErrKeyUsageMismatch = errors.New("crypto: key usage mismatch")

// Key is a derived 256-bit AES key tagged with its single permitted usage.
// The zero value is not a valid key; only [DeriveKey], [GenerateDEK] and
// [UnwrapDEK] construct one. Key never round-trips through JSON or a String method —
// printing a Key prints only its usage, never its bytes.
type Key struct {
	usage Usage
	raw   [32]byte
}

// Bytes returns the raw 32 key bytes. It exists for the handful of call
// sites inside this package (aead.go, envelope.go, fileenc.go) that must
// hand the key to crypto/aes; callers outside this package only ever see a
// Key passed by value into DeriveKey/WrapDEK/UnwrapDEK/Encrypt/Decrypt and
// have no reason to call Bytes directly.
func (k Key) Bytes() []byte {
	return k.raw[:]
}

// Usage reports the key's permitted operation family.
func (k Key) Usage() Usage {
	return k.usage
}

// String never exposes key material, only the usage tag, so that an
// accidental %v in a log statement cannot leak a key.
func (k Key) String() string {
	switch k.usage {
	case UsageData:
		return "crypto.Key{usage:data}"
	case UsageWrap:
		return "crypto.Key{usage:wrap}"
	default:
		return "crypto.Key{usage:unset}"
	}
}

func (k Key) requireUsage(want Usage) error {
	if k.usage != want {
		return fmt.Errorf("%w: have %v, want %v", ErrKeyUsageMismatch, k.usage, want)
	}
	return nil
}

// DeriveKey runs HKDF-SHA256 over ikm (the authenticator's raw PRF output
// in production; 32 bytes) with info=UTF-8(label) and salt=UTF-8(salt), and
// returns the first 32 expanded bytes as a [Key] tagged with usage.
//
// Derivation is deterministic: the same (ikm, label, salt) always yields
// the same key, which is exactly what lets the same authenticator
// evaluation recover the same KEK on every unlock.
func DeriveKey(ikm []byte, label KDFLabel, salt string, usage Usage) (Key, error) {
	if usage != UsageData && usage != UsageWrap {
		return Key{}, fmt.Errorf("crypto: invalid key usage %v", usage)
	}

	reader := hkdf.New(sha256.New, ikm, []byte(salt), []byte(label))

	var out [32]byte
	if _, err := io.ReadFull(reader, out[:]); err != nil {
		return Key{}, fmt.Errorf("hkdf expand: %w", err)
	}

	return Key{usage: usage, raw: out}, nil
}
