package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid session settings
	// (for example, a non-positive auto-lock timeout).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCryptoConfigs indicates an unknown cipher or unusable
	// Argon2id parameters.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid favicon fetcher settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
