package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testKDFParams keeps Argon2id cheap enough for unit tests.
var testKDFParams = KDFParams{Time: 1, Memory: 1024, Threads: 1}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltLen {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltLen)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDerive_DeterministicForSameInputs(t *testing.T) {
	kdu := NewKeyDeriver(testKDFParams)

	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, SaltLen)

	k1, err := kdu.Derive(password, salt)
	require.NoError(t, err)
	defer k1.Destroy()
	k2, err := kdu.Derive(password, salt)
	require.NoError(t, err)
	defer k2.Destroy()

	assert.Len(t, k1.Bytes(), KeyLen)
	assert.Equal(t, k1.Bytes(), k2.Bytes())
}

func TestDerive_DifferentSaltProducesDifferentKey(t *testing.T) {
	kdu := NewKeyDeriver(testKDFParams)

	k1, err := kdu.Derive("same password", bytes.Repeat([]byte{0x01}, SaltLen))
	require.NoError(t, err)
	defer k1.Destroy()
	k2, err := kdu.Derive("same password", bytes.Repeat([]byte{0x02}, SaltLen))
	require.NoError(t, err)
	defer k2.Destroy()

	assert.NotEqual(t, k1.Bytes(), k2.Bytes())
}

func TestDerive_NoCollisionsAcrossSample(t *testing.T) {
	kdu := NewKeyDeriver(testKDFParams)
	salt := bytes.Repeat([]byte{0x07}, SaltLen)

	seen := make(map[string]string)
	for i := 0; i < 16; i++ {
		password := fmt.Sprintf("password-%d", i)
		key, err := kdu.Derive(password, salt)
		require.NoError(t, err)

		fingerprint := string(key.Bytes())
		key.Destroy()

		if prev, ok := seen[fingerprint]; ok {
			t.Fatalf("collision between %q and %q", prev, password)
		}
		seen[fingerprint] = password
	}
}

func TestDerive_InvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		params KDFParams
		salt   []byte
	}{
		{name: "zero time", params: KDFParams{Time: 0, Memory: 1024, Threads: 1}, salt: make([]byte, SaltLen)},
		{name: "zero threads", params: KDFParams{Time: 1, Memory: 1024, Threads: 0}, salt: make([]byte, SaltLen)},
		{name: "memory below lane minimum", params: KDFParams{Time: 1, Memory: 15, Threads: 2}, salt: make([]byte, SaltLen)},
		{name: "short salt", params: testKDFParams, salt: []byte{1, 2, 3}},
		{name: "nil salt", params: testKDFParams, salt: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewKeyDeriver(tt.params).Derive("pw", tt.salt)
			require.Error(t, err)
			assert.Nil(t, key)
			assert.True(t, errors.Is(err, ErrKeyDerivation), "expected ErrKeyDerivation, got %v", err)
		})
	}
}

func TestDefaultKDFParams_Valid(t *testing.T) {
	p := DefaultKDFParams()
	require.NoError(t, p.Validate())
	assert.Equal(t, uint32(64*1024), p.Memory)
}
