package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type keyService struct {
	files   store.VaultFileStorage
	deriver crypto.KeyDeriver
	logger  *logger.Logger
}

// NewKeyService creates a KeyService that keeps salts next to the vault
// blobs in files.
func NewKeyService(files store.VaultFileStorage, deriver crypto.KeyDeriver, logger *logger.Logger) KeyService {
	return &keyService{
		files:   files,
		deriver: deriver,
		logger:  logger,
	}
}

func (k *keyService) EnsureSalt(ctx context.Context, accountID int64) ([]byte, error) {
	log := logger.FromContextOr(ctx, k.logger)

	salt, err := k.files.ReadSalt(ctx, accountID)
	if err == nil {
		return salt, nil
	}
	if !errors.Is(err, store.ErrSaltNotFound) {
		return nil, fmt.Errorf("read salt: %w", err)
	}

	salt, err = crypto.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	if err = k.files.WriteSalt(ctx, accountID, salt); err != nil {
		return nil, fmt.Errorf("write salt: %w", err)
	}

	log.Info().Str("func", "*keyService.EnsureSalt").Int64("account_id", accountID).Msg("created vault salt")
	return salt, nil
}

func (k *keyService) UnlockKey(ctx context.Context, accountID int64, password string) (*crypto.MasterKey, error) {
	salt, err := k.EnsureSalt(ctx, accountID)
	if err != nil {
		return nil, err
	}

	type derived struct {
		key *crypto.MasterKey
		err error
	}
	done := make(chan derived, 1)

	go func() {
		key, err := k.deriver.Derive(password, salt)
		done <- derived{key: key, err: err}
	}()

	select {
	case res := <-done:
		return res.key, res.err
	case <-ctx.Done():
		go func() {
			if res := <-done; res.key != nil {
				res.key.Destroy()
			}
		}()
		return nil, ctx.Err()
	}
}
