package vault

import "errors"

var (
	// ErrLocked is returned when an operation needs the master key but the
	// vault is locked (no key was supplied).
	ErrLocked = errors.New("vault is locked")

	// ErrNotFound is returned when no entry with the requested id exists.
	ErrNotFound = errors.New("entry not found")

	// ErrInvalidEntry is returned when an entry is added without a service
	// name.
	ErrInvalidEntry = errors.New("invalid entry: service is required")

	// ErrCorruptVault is returned by the codec when a decrypted vault
	// document cannot be interpreted at all.
	ErrCorruptVault = errors.New("vault document is corrupt")
)
