package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"auto_lock_timeout": "20m",
			"log_file": "/var/log/vault.log"
		},
		"crypto": {
			"cipher": "aes-256-gcm",
			"argon_time": 2,
			"argon_memory": 32768,
			"argon_threads": 2
		},
		"storage": {
			"data_dir": "/var/lib/vault",
			"db": { "dsn": "/var/lib/vault/users.db" }
		},
		"adapter": {
			"favicon_timeout": "1s",
			"favicon_max_bytes": 1024,
			"favicon_disabled": true
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 20*time.Minute, cfg.App.AutoLockTimeout)
	assert.Equal(t, "/var/log/vault.log", cfg.App.LogFile)

	assert.Equal(t, "aes-256-gcm", cfg.Crypto.Cipher)
	assert.Equal(t, uint32(2), cfg.Crypto.ArgonTime)
	assert.Equal(t, uint32(32768), cfg.Crypto.ArgonMemory)
	assert.Equal(t, uint8(2), cfg.Crypto.ArgonThreads)

	assert.Equal(t, "/var/lib/vault", cfg.Storage.DataDir)
	assert.Equal(t, "/var/lib/vault/users.db", cfg.Storage.DB.DSN)

	assert.Equal(t, time.Second, cfg.Adapter.FaviconTimeout)
	assert.Equal(t, 1024, cfg.Adapter.FaviconMaxBytes)
	assert.True(t, cfg.Adapter.FaviconDisabled)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": `), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad_duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": {"auto_lock_timeout": "ten minutes"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_JSONForms(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"90s"`)))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	out, err := Duration(time.Minute).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(out))
}
