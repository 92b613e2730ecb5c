package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		AutoLockTimeout Duration `json:"auto_lock_timeout"`
		LogFile         string   `json:"log_file"`
	} `json:"app,omitempty"`

	Crypto struct {
		Cipher       string `json:"cipher"`
		ArgonTime    uint32 `json:"argon_time"`
		ArgonMemory  uint32 `json:"argon_memory"`
		ArgonThreads uint8  `json:"argon_threads"`
	} `json:"crypto,omitempty"`

	Storage struct {
		DataDir string `json:"data_dir"`
		DB      struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		FaviconTimeout  Duration `json:"favicon_timeout"`
		FaviconMaxBytes int      `json:"favicon_max_bytes"`
		FaviconDisabled bool     `json:"favicon_disabled"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AutoLockTimeout: time.Duration(jsonCfg.App.AutoLockTimeout),
			LogFile:         jsonCfg.App.LogFile,
		},
		Crypto: Crypto{
			Cipher:       jsonCfg.Crypto.Cipher,
			ArgonTime:    jsonCfg.Crypto.ArgonTime,
			ArgonMemory:  jsonCfg.Crypto.ArgonMemory,
			ArgonThreads: jsonCfg.Crypto.ArgonThreads,
		},
		Storage: Storage{
			DataDir: jsonCfg.Storage.DataDir,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			FaviconTimeout:  time.Duration(jsonCfg.Adapter.FaviconTimeout),
			FaviconMaxBytes: jsonCfg.Adapter.FaviconMaxBytes,
			FaviconDisabled: jsonCfg.Adapter.FaviconDisabled,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
