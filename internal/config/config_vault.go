package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default values applied by [GetVaultConfig] to unset fields.
const (
	DefaultAutoLockTimeout = 15 * time.Minute
	DefaultCipher          = "aes-256-gcm"
	DefaultArgonTime       = 1
	DefaultArgonMemory     = 64 * 1024
	DefaultArgonThreads    = 4
	DefaultFaviconTimeout  = 5 * time.Second
	DefaultFaviconMaxBytes = 256 << 10

	appDirName  = "go-pass-vault"
	dbFileName  = "users.db"
	logFileName = "vault.log"
)

// VaultConfig is the runtime configuration of the vault assembled from
// [StructuredConfig] with every default filled in.
type VaultConfig struct {
	// App contains session settings.
	App App
	// Crypto contains cipher and key derivation settings.
	Crypto Crypto
	// Storage contains file and database locations.
	Storage Storage
	// Adapter contains favicon fetcher settings.
	Adapter Adapter
}

// GetVaultConfig builds and validates the runtime config view from the
// merged structured configuration.
func GetVaultConfig() (*VaultConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewVaultConfig(cfg)
}

// NewVaultConfig applies defaults to cfg and validates the result.
func NewVaultConfig(cfg *StructuredConfig) (*VaultConfig, error) {
	vaultCfg := &VaultConfig{
		App:     cfg.App,
		Crypto:  cfg.Crypto,
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
	}
	if err := vaultCfg.applyDefaults(); err != nil {
		return nil, err
	}

	return vaultCfg, vaultCfg.validate()
}

func (cfg *VaultConfig) applyDefaults() error {
	if cfg.App.AutoLockTimeout == 0 {
		cfg.App.AutoLockTimeout = DefaultAutoLockTimeout
	}
	if cfg.Crypto.Cipher == "" {
		cfg.Crypto.Cipher = DefaultCipher
	}
	if cfg.Crypto.ArgonTime == 0 {
		cfg.Crypto.ArgonTime = DefaultArgonTime
	}
	if cfg.Crypto.ArgonMemory == 0 {
		cfg.Crypto.ArgonMemory = DefaultArgonMemory
	}
	if cfg.Crypto.ArgonThreads == 0 {
		cfg.Crypto.ArgonThreads = DefaultArgonThreads
	}
	if cfg.Adapter.FaviconTimeout == 0 {
		cfg.Adapter.FaviconTimeout = DefaultFaviconTimeout
	}
	if cfg.Adapter.FaviconMaxBytes == 0 {
		cfg.Adapter.FaviconMaxBytes = DefaultFaviconMaxBytes
	}

	if cfg.Storage.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("%w: no data dir and no user config dir: %w", ErrInvalidStorageConfigs, err)
		}
		cfg.Storage.DataDir = filepath.Join(base, appDirName)
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(cfg.Storage.DataDir, dbFileName)
	}
	if cfg.App.LogFile == "" {
		cfg.App.LogFile = filepath.Join(cfg.Storage.DataDir, logFileName)
	}

	return nil
}
