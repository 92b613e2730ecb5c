package service

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers an unknown user, a wrong master password
	// and a failed key derivation alike.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserAlreadyExists  = errors.New("user already exists")

	ErrAlreadyUnlocked  = errors.New("vault is already unlocked")
	ErrUnlockSuperseded = errors.New("unlock superseded by a newer request")

	// ErrSave wraps any failure to persist the vault. When it is returned by
	// Lock or Logout the session was purged anyway and unsaved changes are
	// lost.
	ErrSave = errors.New("vault could not be saved")
)

// Re-exported so callers of the session need only this package.
var (
	ErrLocked         = vault.ErrLocked
	ErrNotFound       = vault.ErrNotFound
	ErrAuthentication = crypto.ErrAuthentication
	ErrKeyDerivation  = crypto.ErrKeyDerivation
)
