// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntryID is the vault-unique identifier of a secret entry.
// Ids are assigned from a monotonic counter starting at 1 and are never
// reused, even after the entry they belonged to has been deleted.
type EntryID int64

// CipherText is the authenticated envelope produced by a single AEAD
// encryption call. The nonce is fresh random bytes on every call.
type CipherText struct {
	// Nonce is the per-encryption random nonce.
	Nonce []byte `json:"nonce"`

	// Ciphertext is the encrypted payload without the authentication tag.
	Ciphertext []byte `json:"ciphertext"`

	// Tag is the AEAD authentication tag (16 bytes).
	Tag []byte `json:"tag"`
}

// IsZero reports whether the envelope carries no data at all.
func (c CipherText) IsZero() bool {
	return len(c.Nonce) == 0 && len(c.Ciphertext) == 0 && len(c.Tag) == 0
}

// Clone returns a deep copy of the envelope.
func (c CipherText) Clone() CipherText {
	return CipherText{
		Nonce:      cloneBytes(c.Nonce),
		Ciphertext: cloneBytes(c.Ciphertext),
		Tag:        cloneBytes(c.Tag),
	}
}

// Entry is a single credential held in the vault.
//
// Secret is always an encrypted envelope. The plaintext secret only exists
// for the duration of one encrypt-for-store or decrypt-for-display call.
type Entry struct {
	ID          EntryID
	Service     string
	Username    string
	Secret      CipherText
	URL         *string
	Group       string
	Notes       *string
	Strength    Strength
	IsFavorited bool
	Favicon     []byte
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns a deep copy of the entry so callers never share slices or
// pointers with the working store.
func (e Entry) Clone() Entry {
	out := e
	out.Secret = e.Secret.Clone()
	out.URL = cloneString(e.URL)
	out.Notes = cloneString(e.Notes)
	out.Favicon = cloneBytes(e.Favicon)
	return out
}

// View returns the display projection of the entry, which omits the
// encrypted secret envelope.
func (e Entry) View() EntryView {
	return EntryView{
		ID:          e.ID,
		Service:     e.Service,
		Username:    e.Username,
		URL:         cloneString(e.URL),
		Group:       e.Group,
		Notes:       cloneString(e.Notes),
		Strength:    e.Strength,
		IsFavorited: e.IsFavorited,
		Favicon:     cloneBytes(e.Favicon),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// EntryView is what the UI layer receives when listing entries. Secrets
// must be requested explicitly, one entry at a time.
type EntryView struct {
	ID          EntryID
	Service     string
	Username    string
	URL         *string
	Group       string
	Notes       *string
	Strength    Strength
	IsFavorited bool
	Favicon     []byte
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EntryFields carries the non-secret fields of a new entry.
//
// CreatedAt and UpdatedAt are normally left zero and stamped by the store.
// Import sets them to carry the original timestamps over.
type EntryFields struct {
	Service     string
	Username    string
	URL         *string
	Group       string
	Notes       *string
	Strength    Strength
	IsFavorited bool
	Favicon     []byte
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EntryPatch describes a partial update. Nil fields are left untouched.
// Setting URL or Notes to a pointer to the empty string clears the value.
type EntryPatch struct {
	Service     *string
	Username    *string
	URL         *string
	Group       *string
	Notes       *string
	Strength    *Strength
	IsFavorited *bool
	Favicon     []byte
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.Service == nil && p.Username == nil && p.URL == nil && p.Group == nil &&
		p.Notes == nil && p.Strength == nil && p.IsFavorited == nil && p.Favicon == nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
