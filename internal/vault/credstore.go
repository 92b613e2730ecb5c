// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// CredStore is the in-memory working copy of a vault, keyed by entry id.
//
// Returned entries are deep copies; callers can never mutate the store
// through them. Operations that need the master key take it as a borrowed
// argument and fail with [ErrLocked] when it is empty.
type CredStore struct {
	mu       sync.RWMutex
	cipher   crypto.Cipher
	nextID   models.EntryID
	entries  map[models.EntryID]*models.Entry
	favicons map[string]models.Favicon
	now      func() time.Time
}

// NewCredStore returns an empty store whose secrets are sealed with c.
func NewCredStore(c crypto.Cipher) *CredStore {
	return &CredStore{
		cipher:   c,
		nextID:   1,
		entries:  make(map[models.EntryID]*models.Entry),
		favicons: make(map[string]models.Favicon),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Add encrypts secret under key and stores a new entry built from fields.
// The returned id is taken from a monotonic counter and never reused.
func (s *CredStore) Add(key []byte, fields models.EntryFields, secret string) (models.EntryID, error) {
	if len(key) == 0 {
		return 0, ErrLocked
	}
	if strings.TrimSpace(fields.Service) == "" {
		return 0, ErrInvalidEntry
	}

	envelope, err := s.cipher.Encrypt(secret, key)
	if err != nil {
		return 0, fmt.Errorf("encrypt secret: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt, updatedAt := fields.CreatedAt, fields.UpdatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	id := s.nextID
	s.nextID++

	entry := models.Entry{
		ID:          id,
		Service:     fields.Service,
		Username:    fields.Username,
		Secret:      envelope,
		URL:         fields.URL,
		Group:       fields.Group,
		Notes:       fields.Notes,
		Strength:    fields.Strength,
		IsFavorited: fields.IsFavorited,
		Favicon:     fields.Favicon,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}.Clone()
	s.entries[id] = &entry

	return id, nil
}

// GetAll returns every entry sorted by id. Secrets stay encrypted.
func (s *CredStore) GetAll() []models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(*models.Entry) bool { return true })
}

// Get returns a copy of one entry.
func (s *CredStore) Get(id models.EntryID) (models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return models.Entry{}, ErrNotFound
	}
	return entry.Clone(), nil
}

// DecryptSecret opens the secret of one entry with key.
func (s *CredStore) DecryptSecret(key []byte, id models.EntryID) (string, error) {
	if len(key) == 0 {
		return "", ErrLocked
	}

	s.mu.RLock()
	entry, ok := s.entries[id]
	var envelope models.CipherText
	if ok {
		envelope = entry.Secret.Clone()
	}
	s.mu.RUnlock()

	if !ok {
		return "", ErrNotFound
	}

	plain, err := s.cipher.Decrypt(envelope, key)
	if err != nil {
		return "", fmt.Errorf("decrypt secret of entry %d: %w", id, err)
	}
	return plain, nil
}

// Update applies patch to the entry and, when newSecret is not nil,
// replaces its secret with a fresh envelope. Fields left nil in the patch
// are preserved. It reports whether anything changed.
func (s *CredStore) Update(key []byte, id models.EntryID, patch models.EntryPatch, newSecret *string) (bool, error) {
	if newSecret != nil && len(key) == 0 {
		return false, ErrLocked
	}

	// encrypt before taking the write lock so a cipher failure leaves the
	// entry untouched
	var envelope models.CipherText
	if newSecret != nil {
		var err error
		envelope, err = s.cipher.Encrypt(*newSecret, key)
		if err != nil {
			return false, fmt.Errorf("encrypt secret: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return false, ErrNotFound
	}
	if patch.IsEmpty() && newSecret == nil {
		return false, nil
	}

	if patch.Service != nil {
		if strings.TrimSpace(*patch.Service) == "" {
			return false, ErrInvalidEntry
		}
		entry.Service = *patch.Service
	}
	if patch.Username != nil {
		entry.Username = *patch.Username
	}
	if patch.URL != nil {
		entry.URL = optional(*patch.URL)
	}
	if patch.Group != nil {
		entry.Group = *patch.Group
	}
	if patch.Notes != nil {
		entry.Notes = optional(*patch.Notes)
	}
	if patch.Strength != nil {
		entry.Strength = *patch.Strength
	}
	if patch.IsFavorited != nil {
		entry.IsFavorited = *patch.IsFavorited
	}
	if patch.Favicon != nil {
		entry.Favicon = cloneOrNil(patch.Favicon)
	}
	if newSecret != nil {
		wipe(entry.Secret)
		entry.Secret = envelope
	}
	entry.UpdatedAt = s.now()

	return true, nil
}

// Delete removes the entry. It returns false if no such entry exists, so a
// second delete of the same id reports not-found.
func (s *CredStore) Delete(id models.EntryID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return false
	}
	wipe(entry.Secret)
	delete(s.entries, id)
	return true
}

// Search returns entries whose service, username or url contains query,
// compared case-insensitively. A blank query matches everything.
func (s *CredStore) Search(query string) []models.Entry {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	if q == "" {
		return s.collect(func(*models.Entry) bool { return true })
	}
	return s.collect(func(e *models.Entry) bool {
		if strings.Contains(strings.ToLower(e.Service), q) ||
			strings.Contains(strings.ToLower(e.Username), q) {
			return true
		}
		return e.URL != nil && strings.Contains(strings.ToLower(*e.URL), q)
	})
}

// ToggleFavorite flips the favorite flag and returns its new value.
func (s *CredStore) ToggleFavorite(id models.EntryID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return false, ErrNotFound
	}
	entry.IsFavorited = !entry.IsFavorited
	entry.UpdatedAt = s.now()
	return entry.IsFavorited, nil
}

// PutFavicon caches icon data for url, replacing any previous value.
func (s *CredStore) PutFavicon(url string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.favicons[url] = models.Favicon{URL: url, Data: cloneOrNil(data), UpdatedAt: s.now()}
}

// Favicon returns the cached icon for url.
func (s *CredStore) Favicon(url string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.favicons[url]
	if !ok {
		return nil, false
	}
	return cloneOrNil(f.Data), true
}

// AttachFavicon sets the icon shown for one entry.
func (s *CredStore) AttachFavicon(id models.EntryID, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return ErrNotFound
	}
	entry.Favicon = cloneOrNil(data)
	entry.UpdatedAt = s.now()
	return nil
}

// Len returns the number of entries.
func (s *CredStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// NextID returns the id the next Add will assign.
func (s *CredStore) NextID() models.EntryID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}

// Clear drops every entry and cached favicon and overwrites the envelope
// bytes it held.
func (s *CredStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.entries {
		wipe(entry.Secret)
		delete(s.entries, id)
	}
	clear(s.favicons)
	s.nextID = 1
}

// collect returns sorted copies of the entries matched by keep.
// The caller must hold s.mu.
func (s *CredStore) collect(keep func(*models.Entry) bool) []models.Entry {
	out := make([]models.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if keep(e) {
			out = append(out, e.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// optional maps the empty string to an absent value.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func cloneOrNil(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func wipe(c models.CipherText) {
	clear(c.Nonce)
	clear(c.Ciphertext)
	clear(c.Tag)
}
