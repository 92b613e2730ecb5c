// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	saltFileSuffix  = ".salt"
	vaultFileSuffix = ".vault.encrypted"

	dataDirPerm  fs.FileMode = 0o700
	dataFilePerm fs.FileMode = 0o600
)

// vaultFileStorage is the filesystem implementation of [VaultFileStorage].
// Every account owns two files under dir:
//
//	<account_id>.salt             plaintext vault-key salt
//	<account_id>.vault.encrypted  sealed vault blob
//
// Both are replaced atomically on write, so readers observe either the old
// or the new content and never a torn file.
type vaultFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewVaultFileStorage constructs a [VaultFileStorage] rooted at dir. The
// directory is created lazily on the first write.
func NewVaultFileStorage(dir string, logger *logger.Logger) VaultFileStorage {
	logger.Debug().Str("dir", dir).Msg("creating vault file storage")
	return &vaultFileStorage{
		dir:    dir,
		logger: logger,
	}
}

func (v *vaultFileStorage) ReadSalt(ctx context.Context, accountID int64) ([]byte, error) {
	data, err := v.read(ctx, accountID, saltFileSuffix)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSaltNotFound
	}
	return data, err
}

func (v *vaultFileStorage) WriteSalt(ctx context.Context, accountID int64, salt []byte) error {
	return v.write(ctx, accountID, saltFileSuffix, salt)
}

func (v *vaultFileStorage) ReadBlob(ctx context.Context, accountID int64) ([]byte, error) {
	data, err := v.read(ctx, accountID, vaultFileSuffix)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrVaultNotFound
	}
	return data, err
}

func (v *vaultFileStorage) WriteBlob(ctx context.Context, accountID int64, blob []byte) error {
	return v.write(ctx, accountID, vaultFileSuffix, blob)
}

func (v *vaultFileStorage) BlobExists(ctx context.Context, accountID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	path, err := v.path(accountID, vaultFileSuffix)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat vault file: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

func (v *vaultFileStorage) path(accountID int64, suffix string) (string, error) {
	if accountID <= 0 {
		return "", ErrInvalidAccountID
	}
	return filepath.Join(v.dir, strconv.FormatInt(accountID, 10)+suffix), nil
}

func (v *vaultFileStorage) read(ctx context.Context, accountID int64, suffix string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := v.path(accountID, suffix)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fs.ErrNotExist
		}
		v.logger.Err(err).Str("func", "*vaultFileStorage.read").Int64("account_id", accountID).Msg("error reading vault file")
		return nil, fmt.Errorf("read %s file: %w", suffix, err)
	}
	return data, nil
}

func (v *vaultFileStorage) write(ctx context.Context, accountID int64, suffix string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := v.path(accountID, suffix)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(v.dir, dataDirPerm); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err = writeFileAtomic(path, data); err != nil {
		v.logger.Err(err).Str("func", "*vaultFileStorage.write").Int64("account_id", accountID).Msg("error writing vault file")
		return err
	}
	return nil
}

// writeFileAtomic writes data to a temp file next to path, fsyncs it,
// restricts it to the owner and renames it over path. The parent directory
// is synced afterwards so the rename itself survives a crash.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Chmod(dataFilePerm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return syncDir(dir)
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open data dir: %w", err)
	}
	defer d.Close()

	// some filesystems refuse fsync on directories
	if err = d.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return fmt.Errorf("sync data dir: %w", err)
	}
	return nil
}
