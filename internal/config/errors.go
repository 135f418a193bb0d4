package config

import "errors"

// ErrInvalidCryptoConfigs indicates invalid cryptographic policy settings
// (for example, a negative MaxFileSizeBytes override).
var ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
