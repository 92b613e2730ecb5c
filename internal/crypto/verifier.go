// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	verifierPrefix  = "argon2id"
	verifierHashLen = 32

	// Upper bounds accepted when decoding a stored verifier.
	maxVerifierMemory  = 1024 * 1024 // 1 GiB in KiB
	maxVerifierTime    = 64
	maxVerifierThreads = 64
)

// argon2Verifier is the private implementation of [Verifier].
//
// Encoded format (PHC string):
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt b64>$<hash b64>
type argon2Verifier struct {
	params KDFParams
	logger *logger.Logger
}

// NewVerifier constructs a [Verifier] that hashes with params. Verification
// always uses the parameters encoded in the stored value, so params can be
// raised later without invalidating existing accounts.
func NewVerifier(params KDFParams, log *logger.Logger) Verifier {
	return &argon2Verifier{params: params, logger: log}
}

// Hash implements [Verifier].
func (v *argon2Verifier) Hash(password string) (string, error) {
	if err := v.params.Validate(); err != nil {
		return "", err
	}

	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}

	sum := argon2.IDKey([]byte(password), salt, v.params.Time, v.params.Memory, v.params.Threads, verifierHashLen)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		verifierPrefix,
		argon2.Version,
		v.params.Memory,
		v.params.Time,
		v.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(sum),
	), nil
}

// Verify implements [Verifier]. It never panics: every decoding problem is
// logged and reported as a mismatch.
func (v *argon2Verifier) Verify(stored, candidate string) bool {
	params, salt, want, err := decodeVerifier(stored)
	if err != nil {
		v.logger.Warn().Err(err).
			Str("func", "argon2Verifier.Verify").
			Msg("malformed stored verifier, rejecting")
		return false
	}

	got := argon2.IDKey([]byte(candidate), salt, params.Time, params.Memory, params.Threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}

func decodeVerifier(encoded string) (KDFParams, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return KDFParams{}, nil, nil, fmt.Errorf("unexpected verifier layout")
	}
	if parts[1] != verifierPrefix {
		return KDFParams{}, nil, nil, fmt.Errorf("unsupported verifier algorithm %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return KDFParams{}, nil, nil, fmt.Errorf("parse verifier version: %w", err)
	}
	if version != argon2.Version {
		return KDFParams{}, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	var (
		memory, time uint32
		threads      uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return KDFParams{}, nil, nil, fmt.Errorf("parse verifier params: %w", err)
	}
	params := KDFParams{Time: time, Memory: memory, Threads: threads}
	if err := params.Validate(); err != nil {
		return KDFParams{}, nil, nil, err
	}
	if memory > maxVerifierMemory || time > maxVerifierTime || threads > maxVerifierThreads {
		return KDFParams{}, nil, nil, fmt.Errorf("verifier params out of range")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) < MinSaltLen {
		return KDFParams{}, nil, nil, fmt.Errorf("invalid verifier salt")
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(hash) == 0 {
		return KDFParams{}, nil, nil, fmt.Errorf("invalid verifier hash")
	}

	return params, salt, hash, nil
}
