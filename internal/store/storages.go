package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages groups the persistence collaborators of the vault into a single
// value that can be passed to the service layer.
type Storages struct {
	// UserRepository is the SQLite-backed local user directory.
	UserRepository UserRepository

	// VaultFileStorage holds per-account salts and sealed vault blobs.
	VaultFileStorage VaultFileStorage

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens the SQLite user directory at cfg.DB.DSN, creating the database
//     file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Roots the vault file storage at cfg.DataDir.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		VaultFileStorage: NewVaultFileStorage(cfg.DataDir, logger),
		db:               db,
	}, nil
}

// Close releases the user directory connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
