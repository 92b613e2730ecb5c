// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// AlgorithmAESGCM is AES-256-GCM with a 16-byte nonce.
	AlgorithmAESGCM = "aes-256-gcm"

	// AlgorithmXChaCha20Poly1305 is XChaCha20-Poly1305 with a 24-byte nonce.
	AlgorithmXChaCha20Poly1305 = "xchacha20-poly1305"

	// TagLen is the authentication tag length of both supported AEADs.
	TagLen = 16

	// gcmNonceLen widens the GCM nonce from the standard 12 bytes to 16.
	gcmNonceLen = 16
)

// aeadCipher is the private implementation of [Cipher]. It is stateless:
// the AEAD is rebuilt from the borrowed key on every call so no key schedule
// outlives the call.
type aeadCipher struct {
	algorithm string
	nonceLen  int
	newAEAD   func(key []byte) (cipher.AEAD, error)
}

// NewCipher returns the [Cipher] for the given algorithm name. An empty name
// selects [AlgorithmAESGCM].
func NewCipher(algorithm string) (Cipher, error) {
	switch algorithm {
	case "", AlgorithmAESGCM:
		return NewAESGCMCipher(), nil
	case AlgorithmXChaCha20Poly1305:
		return NewXChaCha20Poly1305Cipher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// NewAESGCMCipher constructs an AES-256-GCM [Cipher] with 16-byte random
// nonces.
func NewAESGCMCipher() Cipher {
	return &aeadCipher{
		algorithm: AlgorithmAESGCM,
		nonceLen:  gcmNonceLen,
		newAEAD: func(key []byte) (cipher.AEAD, error) {
			block, err := aes.NewCipher(key)
			if err != nil {
				return nil, err
			}
			return cipher.NewGCMWithNonceSize(block, gcmNonceLen)
		},
	}
}

// NewXChaCha20Poly1305Cipher constructs an XChaCha20-Poly1305 [Cipher] with
// 24-byte random nonces.
func NewXChaCha20Poly1305Cipher() Cipher {
	return &aeadCipher{
		algorithm: AlgorithmXChaCha20Poly1305,
		nonceLen:  chacha20poly1305.NonceSizeX,
		newAEAD:   chacha20poly1305.NewX,
	}
}

// NonceSize implements [Cipher].
func (c *aeadCipher) NonceSize() int {
	return c.nonceLen
}

// Algorithm implements [Cipher].
func (c *aeadCipher) Algorithm() string {
	return c.algorithm
}

// Encrypt implements [Cipher].
func (c *aeadCipher) Encrypt(plaintext string, key []byte) (models.CipherText, error) {
	return c.seal([]byte(plaintext), key)
}

// Decrypt implements [Cipher].
func (c *aeadCipher) Decrypt(envelope models.CipherText, key []byte) (string, error) {
	plain, err := c.open(envelope, key)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// EncryptBuffer implements [Cipher].
func (c *aeadCipher) EncryptBuffer(plaintext, key []byte) (models.CipherText, error) {
	return c.seal(plaintext, key)
}

// DecryptBuffer implements [Cipher].
func (c *aeadCipher) DecryptBuffer(envelope models.CipherText, key []byte) ([]byte, error) {
	return c.open(envelope, key)
}

func (c *aeadCipher) seal(plaintext, key []byte) (models.CipherText, error) {
	aead, err := c.aead(key)
	if err != nil {
		return models.CipherText{}, err
	}

	nonce, err := randomBytes(c.nonceLen)
	if err != nil {
		return models.CipherText{}, fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends the tag to the ciphertext; split it out so the envelope
	// keeps the three parts separate.
	sealed := aead.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - aead.Overhead()

	return models.CipherText{
		Nonce:      nonce,
		Ciphertext: sealed[:split:split],
		Tag:        sealed[split:],
	}, nil
}

func (c *aeadCipher) open(envelope models.CipherText, key []byte) ([]byte, error) {
	aead, err := c.aead(key)
	if err != nil {
		return nil, err
	}

	if len(envelope.Nonce) != c.nonceLen {
		return nil, fmt.Errorf("%w: malformed nonce", ErrAuthentication)
	}
	if len(envelope.Tag) != aead.Overhead() {
		return nil, fmt.Errorf("%w: malformed tag", ErrAuthentication)
	}

	sealed := make([]byte, 0, len(envelope.Ciphertext)+len(envelope.Tag))
	sealed = append(sealed, envelope.Ciphertext...)
	sealed = append(sealed, envelope.Tag...)

	plain, err := aead.Open(nil, envelope.Nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plain, nil
}

func (c *aeadCipher) aead(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(key), KeyLen)
	}
	aead, err := c.newAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", c.algorithm, err)
	}
	return aead, nil
}
