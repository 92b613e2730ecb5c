package vault

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

func newTestContainer(t *testing.T, c crypto.Cipher) (*Container, string) {
	t.Helper()
	dir := t.TempDir()
	files := store.NewVaultFileStorage(dir, logger.Nop())
	return NewContainer(c, files, logger.Nop()), dir
}

func TestContainer_SealLayout(t *testing.T) {
	for _, c := range []crypto.Cipher{crypto.NewAESGCMCipher(), crypto.NewXChaCha20Poly1305Cipher()} {
		t.Run(c.Algorithm(), func(t *testing.T) {
			container, _ := newTestContainer(t, c)
			plain := []byte(`{"format_version":2}`)

			blob, err := container.Seal(plain, testKey(1))
			require.NoError(t, err)
			assert.Len(t, blob, c.NonceSize()+crypto.TagLen+len(plain))

			got, err := container.Open(blob, testKey(1))
			require.NoError(t, err)
			assert.Equal(t, plain, got)
		})
	}
}

func TestContainer_OpenRejects(t *testing.T) {
	container, _ := newTestContainer(t, crypto.NewAESGCMCipher())
	blob, err := container.Seal([]byte("vault"), testKey(1))
	require.NoError(t, err)

	tests := []struct {
		name string
		blob []byte
		key  []byte
	}{
		{name: "wrong key", blob: blob, key: testKey(2)},
		{name: "truncated", blob: blob[:10], key: testKey(1)},
		{name: "empty", blob: nil, key: testKey(1)},
		{name: "flipped ciphertext bit", blob: flip(blob, len(blob)-1), key: testKey(1)},
		{name: "flipped tag bit", blob: flip(blob, container.cipher.NonceSize()), key: testKey(1)},
		{name: "flipped nonce bit", blob: flip(blob, 0), key: testKey(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := container.Open(tt.blob, tt.key)
			assert.ErrorIs(t, err, crypto.ErrAuthentication)
		})
	}
}

func flip(b []byte, i int) []byte {
	out := append([]byte(nil), b...)
	out[i] ^= 0x01
	return out
}

func TestContainer_SaveLoad(t *testing.T) {
	ctx := context.Background()
	container, dir := newTestContainer(t, crypto.NewAESGCMCipher())

	exists, err := container.Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = container.Load(ctx, 1, testKey(1))
	assert.ErrorIs(t, err, store.ErrVaultNotFound)
	assert.NotErrorIs(t, err, crypto.ErrAuthentication)

	blob, err := container.Save(ctx, 1, []byte("doc"), testKey(1))
	require.NoError(t, err)

	onDisk, err := os.ReadFile(filepath.Join(dir, "1.vault.encrypted"))
	require.NoError(t, err)
	assert.Equal(t, blob, onDisk)

	exists, err = container.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := container.Load(ctx, 1, testKey(1))
	require.NoError(t, err)
	assert.Equal(t, []byte("doc"), got)

	_, err = container.Load(ctx, 1, testKey(9))
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestContainer_VaultRoundTrip(t *testing.T) {
	ctx := context.Background()
	key := testKey(5)
	c := crypto.NewAESGCMCipher()
	container, _ := newTestContainer(t, c)
	codec := NewCodec(logger.Nop())

	original := populatedStore(t, key)
	doc, err := codec.Serialize(original)
	require.NoError(t, err)
	_, err = container.Save(ctx, 3, doc, key)
	require.NoError(t, err)

	loaded, err := container.Load(ctx, 3, key)
	require.NoError(t, err)
	restored, err := codec.Deserialize(loaded, c)
	require.NoError(t, err)

	assert.Equal(t, original.GetAll(), restored.GetAll())
	for _, e := range restored.GetAll() {
		want, _ := original.DecryptSecret(key, e.ID)
		got, err := restored.DecryptSecret(key, e.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
