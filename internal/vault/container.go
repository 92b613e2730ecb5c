package vault

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Container seals a serialized vault into one blob laid out as
//
//	[nonce][tag][ciphertext]
//
// with a fixed-width nonce (the cipher's NonceSize) and a 16-byte tag, and
// persists it per account.
type Container struct {
	cipher crypto.Cipher
	files  store.VaultFileStorage
	logger *logger.Logger
}

// NewContainer constructs a [Container] writing through files.
func NewContainer(cipher crypto.Cipher, files store.VaultFileStorage, logger *logger.Logger) *Container {
	return &Container{
		cipher: cipher,
		files:  files,
		logger: logger,
	}
}

// Seal encrypts plaintext under key and returns the blob.
func (c *Container) Seal(plaintext, key []byte) ([]byte, error) {
	envelope, err := c.cipher.EncryptBuffer(plaintext, key)
	if err != nil {
		return nil, fmt.Errorf("seal vault: %w", err)
	}

	blob := make([]byte, 0, len(envelope.Nonce)+len(envelope.Tag)+len(envelope.Ciphertext))
	blob = append(blob, envelope.Nonce...)
	blob = append(blob, envelope.Tag...)
	blob = append(blob, envelope.Ciphertext...)
	return blob, nil
}

// Open is the inverse of Seal. A blob too short to hold a nonce and a tag
// is reported as [crypto.ErrAuthentication], like any other tampering.
func (c *Container) Open(blob, key []byte) ([]byte, error) {
	nonceLen := c.cipher.NonceSize()
	if len(blob) < nonceLen+crypto.TagLen {
		return nil, fmt.Errorf("open vault: %w: blob truncated", crypto.ErrAuthentication)
	}

	envelope := models.CipherText{
		Nonce:      blob[:nonceLen],
		Tag:        blob[nonceLen : nonceLen+crypto.TagLen],
		Ciphertext: blob[nonceLen+crypto.TagLen:],
	}
	plaintext, err := c.cipher.DecryptBuffer(envelope, key)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}
	return plaintext, nil
}

// Save seals plaintext and atomically replaces the account's vault file.
// The written blob is returned.
func (c *Container) Save(ctx context.Context, accountID int64, plaintext, key []byte) ([]byte, error) {
	blob, err := c.Seal(plaintext, key)
	if err != nil {
		return nil, err
	}

	if err = c.files.WriteBlob(ctx, accountID, blob); err != nil {
		c.logger.Err(err).Str("func", "*Container.Save").Int64("account_id", accountID).Msg("error writing vault blob")
		return nil, fmt.Errorf("write vault: %w", err)
	}

	c.logger.Debug().Str("func", "*Container.Save").Int64("account_id", accountID).Int("bytes", len(blob)).Msg("vault saved")
	return blob, nil
}

// Load reads and opens the account's vault. A vault that was never saved
// yields [store.ErrVaultNotFound], which is distinct from the
// [crypto.ErrAuthentication] of a wrong key or a damaged file.
func (c *Container) Load(ctx context.Context, accountID int64, key []byte) ([]byte, error) {
	blob, err := c.files.ReadBlob(ctx, accountID)
	if err != nil {
		return nil, err
	}

	plaintext, err := c.Open(blob, key)
	if err != nil {
		c.logger.Warn().Str("func", "*Container.Load").Int64("account_id", accountID).Msg("vault blob failed to authenticate")
		return nil, err
	}
	return plaintext, nil
}

// Exists reports whether a vault blob has been written for the account. It
// does not read or decrypt the blob.
func (c *Container) Exists(ctx context.Context, accountID int64) (bool, error) {
	return c.files.BlobExists(ctx, accountID)
}
