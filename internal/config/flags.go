package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-d/-data-dir directory of salt and vault files
//	-db user directory database file
//	-c/-config json file path with configs
//	-auto-lock idle duration before the vault locks itself (e.g., "15m")
//	-log-file log file path
//	-cipher aead algorithm (aes-256-gcm | xchacha20-poly1305)
//	-argon-time argon2id iterations
//	-argon-memory argon2id memory in KiB
//	-argon-threads argon2id parallelism
//	-favicon-timeout favicon request timeout (e.g., "5s")
//	-no-favicons disable favicon fetching
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var dataDir string
	var databaseDSN string
	var jsonConfigPath string
	var autoLock time.Duration
	var logFile string
	var cipherName string
	var argonTime, argonMemory, argonThreads uint
	var faviconTimeout time.Duration
	var noFavicons bool

	fs.StringVar(&dataDir, "d", "", "Data directory")
	fs.StringVar(&dataDir, "data-dir", "", "Data directory (alias)")
	fs.StringVar(&databaseDSN, "db", "", "User directory database file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&autoLock, "auto-lock", 0, "Auto-lock idle timeout (e.g., 15m)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&cipherName, "cipher", "", "AEAD algorithm")
	fs.UintVar(&argonTime, "argon-time", 0, "Argon2id iterations")
	fs.UintVar(&argonMemory, "argon-memory", 0, "Argon2id memory in KiB")
	fs.UintVar(&argonThreads, "argon-threads", 0, "Argon2id parallelism")
	fs.DurationVar(&faviconTimeout, "favicon-timeout", 0, "Favicon request timeout (e.g., 5s)")
	fs.BoolVar(&noFavicons, "no-favicons", false, "Disable favicon fetching")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if argonThreads > 255 {
		return nil, fmt.Errorf("%w: argon threads must fit in a byte", ErrInvalidCryptoConfigs)
	}

	return &StructuredConfig{
		App: App{
			AutoLockTimeout: autoLock,
			LogFile:         logFile,
		},
		Crypto: Crypto{
			Cipher:       cipherName,
			ArgonTime:    uint32(argonTime),
			ArgonMemory:  uint32(argonMemory),
			ArgonThreads: uint8(argonThreads),
		},
		Storage: Storage{
			DataDir: dataDir,
			DB:      DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			FaviconTimeout:  faviconTimeout,
			FaviconDisabled: noFavicons,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
