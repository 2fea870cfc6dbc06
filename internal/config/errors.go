package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCryptoConfigs indicates an iteration count below the
	// accepted minimum.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidGeneratorConfigs indicates negative lengths or a minimum
	// above a positive maximum.
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or no storage
	// backend at all.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSafeConfigs indicates a missing safe name.
	ErrInvalidSafeConfigs = errors.New("invalid safe configuration")
	// ErrInvalidClipboardConfigs indicates a negative clear delay.
	ErrInvalidClipboardConfigs = errors.New("invalid clipboard configuration")
)
