package crypto

import "github.com/MKhiriev/go-pass-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a master password and a per-account salt into the vault
// master key.
//
// Derivation is deterministic: the same password and salt always produce
// the same key. It is deliberately slow and memory-hungry (Argon2id), so
// callers must not run it while holding locks that other requests wait on.
type KeyDeriver interface {
	// Derive returns exactly KeyLen bytes wrapped in a [MasterKey].
	// Invalid parameters or a short salt yield [ErrKeyDerivation].
	Derive(password string, salt []byte) (*MasterKey, error)
}

// Cipher is the field cipher: an AEAD primitive that encrypts either one
// secret value or a whole serialized vault with a fresh random nonce per
// call. The key is only borrowed for the duration of the call.
type Cipher interface {
	// Encrypt seals a single secret value.
	Encrypt(plaintext string, key []byte) (models.CipherText, error)

	// Decrypt opens an envelope produced by Encrypt. A tag mismatch is
	// reported as [ErrAuthentication], never as garbage plaintext.
	Decrypt(envelope models.CipherText, key []byte) (string, error)

	// EncryptBuffer seals an arbitrary byte buffer under one nonce and tag.
	EncryptBuffer(plaintext, key []byte) (models.CipherText, error)

	// DecryptBuffer opens an envelope produced by EncryptBuffer.
	DecryptBuffer(envelope models.CipherText, key []byte) ([]byte, error)

	// NonceSize is the length of the nonce this cipher generates.
	NonceSize() int

	// Algorithm is the configuration name of the AEAD construction.
	Algorithm() string
}

// Verifier produces and checks the credential verifier stored in the user
// directory. It is independent from the vault key: it uses its own salt and
// can never be reversed into the master key.
type Verifier interface {
	// Hash returns an encoded verifier for password with a fresh salt.
	Hash(password string) (string, error)

	// Verify reports whether candidate matches the stored verifier. A
	// malformed stored value is logged and reported as a mismatch.
	Verify(stored, candidate string) bool
}
