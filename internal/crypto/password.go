// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// passwordAlphabet is the 86-character set GeneratePassword draws from:
// lowercase, uppercase, digits, and a fixed punctuation set.
const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!@#$%^&*()-_=+[]{}:,.<>?"

// passwordRejectionCeiling is the largest multiple of len(passwordAlphabet)
// (86) that fits in a byte: 86*2 = 172. Any drawn byte >= this value is
// rejected and redrawn so that the accepted byte%86 is exactly uniform —
// modulo-biased generation (skipping the reject step) is forbidden by
// spec.md §4.8.
const passwordRejectionCeiling = 172

// GeneratePassword returns a uniformly random password of length n drawn
// from the 86-character alphabet via rejection sampling over CSPRNG bytes.
func GeneratePassword(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("crypto: password length must be positive, got %d", n)
	}

	out := make([]byte, 0, n)
	for len(out) < n {
		// Draw more than needed up front so the common case needs only
		// one RandomBytes call despite the rejection step.
		candidates, err := RandomBytes(n - len(out) + 8)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}

		for _, b := range candidates {
			if len(out) == n {
				break
			}
			if b >= passwordRejectionCeiling {
				continue
			}
			out = append(out, passwordAlphabet[int(b)%len(passwordAlphabet)])
		}
	}

	return string(out), nil
}
