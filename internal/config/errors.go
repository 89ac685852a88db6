package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or empty store key).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid presentation settings
	// (for example, an unknown label language).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
