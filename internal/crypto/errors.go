// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the cryptographic primitives. Callers should
// match them with [errors.Is]. None of them ever carries key material.
var (
	// ErrAuthentication is returned when an AEAD envelope does not verify:
	// the key is wrong, or the nonce, tag or ciphertext were modified or
	// truncated.
	ErrAuthentication = errors.New("authentication failed")

	// ErrKeyDerivation is returned when the key derivation function cannot
	// run, for example because of invalid Argon2id parameters or a short
	// salt. It is fatal to the unlock attempt.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrInvalidKey is returned when a key of the wrong length is supplied.
	ErrInvalidKey = errors.New("invalid key length")

	// ErrUnknownAlgorithm is returned by [NewCipher] for an unsupported
	// AEAD algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown cipher algorithm")

	// ErrRandomSource is returned when the OS CSPRNG cannot be read.
	ErrRandomSource = errors.New("random source failure")
)
