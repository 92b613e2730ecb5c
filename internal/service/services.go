package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
)

type Services struct {
	KeyService     KeyService
	FaviconService FaviconService
	SessionService SessionService
}

// NewServices wires the session and its collaborators. fetcher may be nil
// when favicons are disabled.
func NewServices(storages *store.Storages, fetcher adapter.FaviconFetcher, cfg config.VaultConfig, logger *logger.Logger) (*Services, error) {
	cipher, err := crypto.NewCipher(cfg.Crypto.Cipher)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	params := crypto.KDFParams{
		Time:    cfg.Crypto.ArgonTime,
		Memory:  cfg.Crypto.ArgonMemory,
		Threads: cfg.Crypto.ArgonThreads,
	}
	if err = params.Validate(); err != nil {
		return nil, err
	}

	keySvc := NewKeyService(storages.VaultFileStorage, crypto.NewKeyDeriver(params), logger)
	faviconSvc := NewFaviconService(fetcher, logger)

	session := NewSession(
		storages.UserRepository,
		crypto.NewVerifier(params, logger),
		keySvc,
		vault.NewContainer(cipher, storages.VaultFileStorage, logger),
		vault.NewCodec(logger),
		cipher,
		faviconSvc,
		cfg.App.AutoLockTimeout,
		logger,
	)

	return &Services{
		KeyService:     keySvc,
		FaviconService: faviconSvc,
		SessionService: session,
	}, nil
}
