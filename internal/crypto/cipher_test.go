// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func allCiphers() map[string]Cipher {
	return map[string]Cipher{
		AlgorithmAESGCM:            NewAESGCMCipher(),
		AlgorithmXChaCha20Poly1305: NewXChaCha20Poly1305Cipher(),
	}
}

func TestCipher_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x2A}, KeyLen)
	inputs := []string{
		"",
		"p@ss",
		"embedded\x00null\x00bytes",
		"unicode: пароль 密码 🔐",
		string(bytes.Repeat([]byte("long"), 4096)),
	}

	for name, c := range allCiphers() {
		t.Run(name, func(t *testing.T) {
			for _, in := range inputs {
				env, err := c.Encrypt(in, key)
				require.NoError(t, err)

				assert.Len(t, env.Nonce, c.NonceSize())
				assert.Len(t, env.Tag, TagLen)
				assert.Len(t, env.Ciphertext, len(in))

				out, err := c.Decrypt(env, key)
				require.NoError(t, err)
				assert.Equal(t, in, out)
			}
		})
	}
}

func TestCipher_WrongKeyRejected(t *testing.T) {
	key1 := bytes.Repeat([]byte{0x01}, KeyLen)
	key2 := bytes.Repeat([]byte{0x02}, KeyLen)

	for name, c := range allCiphers() {
		t.Run(name, func(t *testing.T) {
			env, err := c.Encrypt("secret", key1)
			require.NoError(t, err)

			out, err := c.Decrypt(env, key2)
			require.ErrorIs(t, err, ErrAuthentication)
			assert.Empty(t, out)
		})
	}
}

func TestCipher_NonceUniqueness(t *testing.T) {
	key := bytes.Repeat([]byte{0x2A}, KeyLen)

	for name, c := range allCiphers() {
		t.Run(name, func(t *testing.T) {
			e1, err := c.Encrypt("same plaintext", key)
			require.NoError(t, err)
			e2, err := c.Encrypt("same plaintext", key)
			require.NoError(t, err)

			assert.NotEqual(t, e1.Nonce, e2.Nonce, "expected different nonces for two encryptions")
			assert.NotEqual(t, e1.Ciphertext, e2.Ciphertext)
		})
	}
}

func TestCipher_TamperDetected(t *testing.T) {
	key := bytes.Repeat([]byte{0x2A}, KeyLen)

	tamper := map[string]func(env *models.CipherText){
		"flip ciphertext bit": func(env *models.CipherText) { env.Ciphertext[0] ^= 0x01 },
		"flip tag bit":        func(env *models.CipherText) { env.Tag[3] ^= 0x80 },
		"flip nonce bit":      func(env *models.CipherText) { env.Nonce[0] ^= 0x01 },
		"truncate tag":        func(env *models.CipherText) { env.Tag = env.Tag[:8] },
		"drop nonce":          func(env *models.CipherText) { env.Nonce = nil },
	}

	for name, c := range allCiphers() {
		for what, mutate := range tamper {
			t.Run(name+"/"+what, func(t *testing.T) {
				env, err := c.Encrypt("attack at dawn", key)
				require.NoError(t, err)

				mutate(&env)

				_, err = c.Decrypt(env, key)
				require.ErrorIs(t, err, ErrAuthentication)
			})
		}
	}
}

func TestCipher_BufferRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x33}, KeyLen)
	payload := []byte(`{"format_version":2,"entries":[]}`)

	for name, c := range allCiphers() {
		t.Run(name, func(t *testing.T) {
			env, err := c.EncryptBuffer(payload, key)
			require.NoError(t, err)

			out, err := c.DecryptBuffer(env, key)
			require.NoError(t, err)
			assert.Equal(t, payload, out)
		})
	}
}

func TestCipher_InvalidKeyLength(t *testing.T) {
	c := NewAESGCMCipher()

	_, err := c.Encrypt("x", []byte("short"))
	require.ErrorIs(t, err, ErrInvalidKey)

	_, err = c.Decrypt(models.CipherText{}, nil)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestCipher_ErrorDoesNotLeakKey(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	other := []byte("fedcba9876543210fedcba9876543210")
	c := NewAESGCMCipher()

	env, err := c.Encrypt("x", key)
	require.NoError(t, err)

	_, err = c.Decrypt(env, other)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), string(other))
	assert.NotContains(t, err.Error(), string(key))
}

func TestNewCipher(t *testing.T) {
	c, err := NewCipher("")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmAESGCM, c.Algorithm())
	assert.Equal(t, 16, c.NonceSize())

	c, err = NewCipher(AlgorithmXChaCha20Poly1305)
	require.NoError(t, err)
	assert.Equal(t, AlgorithmXChaCha20Poly1305, c.Algorithm())
	assert.Equal(t, 24, c.NonceSize())

	_, err = NewCipher("rot13")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}
