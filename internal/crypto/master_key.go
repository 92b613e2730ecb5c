// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
)

// MasterKey holds the derived vault key in guarded memory.
//
// The key is owned by exactly one session generation. Other components only
// borrow it through [MasterKey.Bytes] for the duration of a single call and
// must not keep the returned slice. Destroy wipes the bytes; afterwards
// Bytes returns nil.
type MasterKey struct {
	mu  sync.RWMutex
	buf *memguard.LockedBuffer
}

// NewMasterKey moves raw into guarded memory. raw is wiped by the call and
// must not be used afterwards.
func NewMasterKey(raw []byte) (*MasterKey, error) {
	if len(raw) != KeyLen {
		memguard.WipeBytes(raw)
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(raw), KeyLen)
	}
	buf := memguard.NewBufferFromBytes(raw)
	buf.Freeze()
	return &MasterKey{buf: buf}, nil
}

// Bytes returns a borrowed view of the key, or nil if the key was
// destroyed.
func (k *MasterKey) Bytes() []byte {
	if k == nil {
		return nil
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.buf == nil || !k.buf.IsAlive() {
		return nil
	}
	return k.buf.Bytes()
}

// Alive reports whether the key still holds material.
func (k *MasterKey) Alive() bool {
	return len(k.Bytes()) == KeyLen
}

// Destroy wipes the key. It is safe to call more than once and on a nil
// receiver.
func (k *MasterKey) Destroy() {
	if k == nil {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.buf != nil {
		k.buf.Destroy()
		k.buf = nil
	}
}
