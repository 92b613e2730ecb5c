package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the local authentication directory. It is consumed by
// the session as an external collaborator and holds no vault content.
type UserRepository interface {
	// Lookup returns the record for username or [ErrNoUserWasFound].
	Lookup(ctx context.Context, username string) (models.User, error)

	// Create stores a new record and returns the assigned account id, or
	// [ErrLoginAlreadyExists].
	Create(ctx context.Context, username, verifier string) (int64, error)

	// Exists reports whether username is registered.
	Exists(ctx context.Context, username string) (bool, error)
}

// VaultFileStorage persists the per-account vault salt and encrypted vault
// blob. It never interprets the bytes it stores.
type VaultFileStorage interface {
	// ReadSalt returns the vault-key salt or [ErrSaltNotFound].
	ReadSalt(ctx context.Context, accountID int64) ([]byte, error)

	// WriteSalt atomically persists the vault-key salt.
	WriteSalt(ctx context.Context, accountID int64, salt []byte) error

	// ReadBlob returns the encrypted vault blob or [ErrVaultNotFound].
	ReadBlob(ctx context.Context, accountID int64) ([]byte, error)

	// WriteBlob atomically replaces the encrypted vault blob. A crash during
	// the write leaves the previous blob intact.
	WriteBlob(ctx context.Context, accountID int64, blob []byte) error

	// BlobExists probes for the vault blob without reading it.
	BlobExists(ctx context.Context, accountID int64) (bool, error)
}
