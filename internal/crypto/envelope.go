// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// GenerateDEK returns a fresh random 256-bit [Key] tagged [UsageData] — the
// long-lived data-encryption key that encrypts the vault document and
// every file blob for the lifetime of this vault. Exactly one logical DEK
// ever exists per vault; rotation rewraps it under new KEKs, it is never
// regenerated (spec.md §3).
func GenerateDEK() (Key, error) {
	raw, err := RandomBytes(32)
	if err != nil {
		return Key{}, fmt.Errorf("generate dek: %w", err)
	}
	var k Key
	k.usage = UsageData
	copy(k.raw[:], raw)
	return k, nil
}

func wrapGCM(kek Key) (cipher.AEAD, error) {
	if err := kek.requireUsage(UsageWrap); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(kek.Bytes())
	if err != nil {
		return nil, fmt.Errorf("new aes cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// WrapDEK AES-256-GCM-encrypts dek's raw bytes under kek (which must carry
// [UsageWrap]) and returns base64(nonce(12) ‖ ciphertext‖tag) — the
// on-disk WrappedDEK.wrappedKey form (spec.md §6.3). A fresh random nonce
// is used on every call.
func WrapDEK(dek, kek Key) (string, error) {
	gcm, err := wrapGCM(kek)
	if err != nil {
		return "", err
	}

	nonce, err := RandomBytes(nonceSize)
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, dek.Bytes(), nil)
	blob := append(nonce, sealed...)
	return EncodeStd(blob), nil
}

// ErrWrapOpaque is returned by [UnwrapDEK] for every failure mode — bad
// MAC, wrong KEK, truncated or malformed input — without distinguishing
// between them, for the same oracle-prevention reason as
// [ErrDecryptionFailed].
var ErrWrapOpaque = fmt.Errorf("crypto: unwrap failed")

// UnwrapDEK reverses [WrapDEK]: it decodes wrappedKeyB64, opens it under
// kek, and returns the recovered DEK as a [Key] tagged [UsageData] — the
// same tag [GenerateDEK] gives, so it encrypts/decrypts vault data and can
// be passed straight back to [WrapDEK] under another KEK.
func UnwrapDEK(wrappedKeyB64 string, kek Key) (Key, error) {
	gcm, err := wrapGCM(kek)
	if err != nil {
		return Key{}, err
	}

	blob, err := DecodeStd(wrappedKeyB64)
	if err != nil {
		return Key{}, ErrWrapOpaque
	}
	if len(blob) < nonceSize {
		return Key{}, ErrWrapOpaque
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	raw, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return Key{}, ErrWrapOpaque
	}
	if len(raw) != 32 {
		return Key{}, ErrWrapOpaque
	}

	var k Key
	k.usage = UsageData
	copy(k.raw[:], raw)
	return k, nil
}

// RotateWrapper unwraps wrappedKeyB64 under oldKEK and rewraps the
// recovered DEK under newKEK. It is atomic at this component's boundary:
// on any failure it returns an error and the empty string, never a
// partially-formed blob.
func RotateWrapper(wrappedKeyB64 string, oldKEK, newKEK Key) (string, error) {
	dek, err := UnwrapDEK(wrappedKeyB64, oldKEK)
	if err != nil {
		return "", err
	}
	return WrapDEK(dek, newKEK)
}
