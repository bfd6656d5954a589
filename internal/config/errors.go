package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete.
var (
	// ErrInvalidServerConfigs indicates missing or malformed HTTP server
	// settings (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates missing DynamoDB settings
	// (for example, an empty table or index name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCryptoConfigs indicates missing crypto key material
	// (for example, an empty master key).
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
)
