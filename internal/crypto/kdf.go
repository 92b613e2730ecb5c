// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// KeyLen is the length of the vault master key in bytes (256 bits).
	// Argon2id is asked for exactly this many bytes, so no padding or
	// truncation is ever applied to its output.
	KeyLen = 32

	// SaltLen is the length of freshly generated salts in bytes.
	SaltLen = 16

	// MinSaltLen is the shortest salt Derive accepts.
	MinSaltLen = 8
)

// KDFParams are the Argon2id tuning parameters.
type KDFParams struct {
	// Time is the number of passes over memory.
	Time uint32

	// Memory is the memory cost in KiB.
	Memory uint32

	// Threads is the degree of parallelism.
	Threads uint8
}

// DefaultKDFParams returns the Argon2id parameters recommended by OWASP
// (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Time:    1,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
	}
}

// Validate reports whether argon2 can run with p. Argon2 requires at least
// 8 KiB of memory per lane.
func (p KDFParams) Validate() error {
	if p.Time == 0 {
		return fmt.Errorf("%w: time cost must be positive", ErrKeyDerivation)
	}
	if p.Threads == 0 {
		return fmt.Errorf("%w: parallelism must be positive", ErrKeyDerivation)
	}
	if p.Memory < 8*uint32(p.Threads) {
		return fmt.Errorf("%w: memory cost must be at least %d KiB", ErrKeyDerivation, 8*uint32(p.Threads))
	}
	return nil
}

// argon2Deriver is the private implementation of [KeyDeriver].
type argon2Deriver struct {
	params KDFParams
}

// NewKeyDeriver constructs a [KeyDeriver] using Argon2id with params.
// Parameters are validated on every call to Derive rather than here, so a
// misconfigured deployment fails the unlock attempt instead of silently
// deriving with different values.
func NewKeyDeriver(params KDFParams) KeyDeriver {
	return &argon2Deriver{params: params}
}

// Derive implements [KeyDeriver]. It derives a 256-bit master key from
// password and salt and moves it straight into a [MasterKey], wiping the
// intermediate slice.
func (d *argon2Deriver) Derive(password string, salt []byte) (*MasterKey, error) {
	if err := d.params.Validate(); err != nil {
		return nil, err
	}
	if len(salt) < MinSaltLen {
		return nil, fmt.Errorf("%w: salt must be at least %d bytes", ErrKeyDerivation, MinSaltLen)
	}

	raw := argon2.IDKey(
		[]byte(password),
		salt,
		d.params.Time,
		d.params.Memory,
		d.params.Threads,
		KeyLen,
	)
	if len(raw) != KeyLen {
		return nil, fmt.Errorf("%w: unexpected key length %d", ErrKeyDerivation, len(raw))
	}

	return NewMasterKey(raw)
}

// GenerateSalt reads SaltLen random bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	return randomBytes(SaltLen)
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return b, nil
}
