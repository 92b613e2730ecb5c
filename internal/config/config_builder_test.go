package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesWin verifies that a non-zero field of a later
// source overrides the same field of an earlier one, while zero fields keep
// earlier values.
func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{AutoLockTimeout: time.Minute}, Storage: Storage{DataDir: "/env"}},
		&StructuredConfig{Storage: Storage{DataDir: "/flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.App.AutoLockTimeout)
	assert.Equal(t, "/flags", cfg.Storage.DataDir)
}

func TestBuild_RejectsUnknownCipher(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Crypto: Crypto{Cipher: "rot13"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidCryptoConfigs)
}

// ── withEnv / withFlagSet ────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_DATA_DIR": "/from-env"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/from-env", b.configs[0].Storage.DataDir)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"CRYPTO_ARGON_TIME": "many"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlagSet_OverridesEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_DATA_DIR": "/from-env", "CRYPTO_CIPHER": "aes-256-gcm"})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlagSet(newTestFlagSet(), []string{"-d", "/from-flags"}).
		build()
	require.NoError(t, err)
	assert.Equal(t, "/from-flags", cfg.Storage.DataDir)
	assert.Equal(t, "aes-256-gcm", cfg.Crypto.Cipher)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"data_dir": "/from-json"},
		"app":     map[string]any{"auto_lock_timeout": "2m"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path, Storage: Storage{DataDir: "/from-env"}})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "/from-json", cfg.Storage.DataDir)
	assert.Equal(t, 2*time.Minute, cfg.App.AutoLockTimeout)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"storage": map[string]any{"data_dir": "/first"}})
	second := writeTempJSONConfig(t, map[string]any{"storage": map[string]any{"data_dir": "/second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "/second", b.configs[2].Storage.DataDir)
}
