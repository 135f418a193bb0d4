// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// defaultDSN is used when no source supplies a database path. Kept as a
// package default rather than a flag/env default value so that it only
// applies once all three sources have been merged.
const defaultDSN = "./vault.db"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, applying defaults
// for fields that were left unset by every source.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}

	if cfg.Crypto.MaxFileSizeBytes < 0 {
		return ErrInvalidCryptoConfigs
	}

	return nil
}
