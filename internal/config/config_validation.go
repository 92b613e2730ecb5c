// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

const (
	cipherAESGCM            = "aes-256-gcm"
	cipherXChaCha20Poly1305 = "xchacha20-poly1305"
)

// validate checks the values that were explicitly set in a merged
// [StructuredConfig]. Unset fields are left for [VaultConfig] defaults.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AutoLockTimeout < 0 {
		return fmt.Errorf("%w: negative auto-lock timeout", ErrInvalidAppConfigs)
	}
	if cfg.Crypto.Cipher != "" && !knownCipher(cfg.Crypto.Cipher) {
		return fmt.Errorf("%w: unknown cipher %q", ErrInvalidCryptoConfigs, cfg.Crypto.Cipher)
	}
	if cfg.Adapter.FaviconTimeout < 0 || cfg.Adapter.FaviconMaxBytes < 0 {
		return fmt.Errorf("%w: negative favicon limits", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *VaultConfig) validate() error {
	if cfg.App.AutoLockTimeout <= 0 {
		return fmt.Errorf("%w: auto-lock timeout must be positive", ErrInvalidAppConfigs)
	}

	if !knownCipher(cfg.Crypto.Cipher) {
		return fmt.Errorf("%w: unknown cipher %q", ErrInvalidCryptoConfigs, cfg.Crypto.Cipher)
	}
	if cfg.Crypto.ArgonTime == 0 || cfg.Crypto.ArgonThreads == 0 {
		return fmt.Errorf("%w: argon time and threads must be positive", ErrInvalidCryptoConfigs)
	}
	if cfg.Crypto.ArgonMemory < 8*uint32(cfg.Crypto.ArgonThreads) {
		return fmt.Errorf("%w: argon memory must be at least 8 KiB per thread", ErrInvalidCryptoConfigs)
	}

	if cfg.Storage.DataDir == "" {
		return fmt.Errorf("%w: empty data dir", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return fmt.Errorf("%w: user directory needs a database file", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.FaviconTimeout <= 0 || cfg.Adapter.FaviconMaxBytes <= 0 {
		return fmt.Errorf("%w: favicon timeout and size limit must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}

func knownCipher(name string) bool {
	return name == cipherAESGCM || name == cipherXChaCha20Poly1305
}
