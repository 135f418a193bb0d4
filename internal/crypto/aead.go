// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"
	"errors"
	"fmt"
)

// nonceSize is the AES-GCM nonce length spec.md fixes at 96 bits.
const nonceSize = 12

// ErrDecryptionFailed is the single opaque error returned by [Decrypt] for
// every failure mode (wrong key, tampered ciphertext, truncated input).
// Distinguishing those cases in the return value would hand an attacker an
// oracle; spec.md §4.2 requires they be indistinguishable.
var ErrDecryptionFailed = errors.New("crypto: decryption failed")

func gcmFor(key Key) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("new aes cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return gcm, nil
}

// Encrypt AES-256-GCM-encrypts plaintext under key (which must carry
// [UsageData]) with a fresh random 96-bit nonce and optional associated
// data. The returned blob is nonce ‖ ciphertext‖tag, with no length prefix
// — encryption is the only nonce source, so nonce reuse under the same key
// cannot happen by construction.
func Encrypt(key Key, plaintext, associatedData []byte) ([]byte, error) {
	if err := key.requireUsage(UsageData); err != nil {
		return nil, err
	}

	gcm, err := gcmFor(key)
	if err != nil {
		return nil, err
	}

	nonce, err := RandomBytes(nonceSize)
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, associatedData)
	return append(nonce, ciphertext...), nil
}

// Decrypt reverses [Encrypt]. associatedData must match whatever was passed
// to Encrypt, or decryption fails. Any failure — wrong key, tampered bytes,
// a blob shorter than the nonce — surfaces as [ErrDecryptionFailed] and
// nothing else.
func Decrypt(key Key, blob, associatedData []byte) ([]byte, error) {
	if err := key.requireUsage(UsageData); err != nil {
		return nil, err
	}

	gcm, err := gcmFor(key)
	if err != nil {
		return nil, err
	}

	if len(blob) < nonceSize {
		return nil, ErrDecryptionFailed
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, associatedData)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// EncryptJSON serialises v to JSON, encrypts it with [Encrypt], and
// base64-encodes the result — the on-disk representation of the vault
// document (spec.md §6.3).
func EncryptJSON(key Key, v any) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal json: %w", err)
	}

	blob, err := Encrypt(key, plaintext, nil)
	if err != nil {
		return "", err
	}

	return EncodeStd(blob), nil
}

// DecryptJSON reverses [EncryptJSON]: base64-decodes encryptedB64,
// decrypts it, and unmarshals the resulting JSON into target (which must be
// a non-nil pointer). A malformed base64 envelope is reported as
// [ErrDecryptionFailed], matching the opacity policy of [Decrypt].
func DecryptJSON(key Key, encryptedB64 string, target any) error {
	blob, err := DecodeStd(encryptedB64)
	if err != nil {
		return ErrDecryptionFailed
	}

	plaintext, err := Decrypt(key, blob, nil)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}
	return nil
}
