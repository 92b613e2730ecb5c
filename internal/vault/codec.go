package vault

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// FormatVersion is the document version written by [Codec.Serialize].
//
// Version 1 documents kept entries in an "items" object keyed by id and
// named the secret envelope "password". They are still accepted.
const FormatVersion = 2

// Codec converts a [CredStore] to and from the plaintext vault document.
// It never decrypts anything: envelopes travel as opaque bytes.
type Codec struct {
	logger *logger.Logger
}

// NewCodec constructs a [Codec].
func NewCodec(logger *logger.Logger) *Codec {
	return &Codec{logger: logger}
}

type vaultDocument struct {
	FormatVersion int                    `json:"format_version"`
	NextID        int64                  `json:"next_id"`
	Entries       []entryRecord          `json:"entries"`
	Favicons      []faviconRecord        `json:"favicons"`
	Items         map[string]entryRecord `json:"items,omitempty"`
}

type entryRecord struct {
	ID          int64           `json:"id"`
	Service     string          `json:"service"`
	Username    string          `json:"username"`
	Secret      *envelopeRecord `json:"secret,omitempty"`
	Password    *envelopeRecord `json:"password,omitempty"`
	URL         *string         `json:"url,omitempty"`
	Group       string          `json:"group"`
	Notes       *string         `json:"notes,omitempty"`
	Strength    strengthField   `json:"strength"`
	IsFavorited bool            `json:"is_favorited"`
	Favicon     []byte          `json:"favicon,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type envelopeRecord struct {
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
	Tag        []byte `json:"tag"`
}

type faviconRecord struct {
	URL       string    `json:"url"`
	Data      []byte    `json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

// strengthField is written as a name and read from either a name or the
// numeric level older documents stored. Anything unknown is weak.
type strengthField models.Strength

func (s strengthField) MarshalJSON() ([]byte, error) {
	return json.Marshal(models.Strength(s).String())
}

func (s *strengthField) UnmarshalJSON(data []byte) error {
	*s = strengthField(models.StrengthWeak)

	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, _ := models.ParseStrength(name)
		*s = strengthField(parsed)
		return nil
	}

	var level int
	if err := json.Unmarshal(data, &level); err == nil {
		if level >= int(models.StrengthWeak) && level <= int(models.StrengthStrong) {
			*s = strengthField(level)
		}
	}
	return nil
}

// Serialize encodes every entry and cached favicon. Entries are ordered by
// id and favicons by url so equal stores produce equal bytes.
func (c *Codec) Serialize(store *CredStore) ([]byte, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	doc := vaultDocument{
		FormatVersion: FormatVersion,
		NextID:        int64(store.nextID),
		Entries:       make([]entryRecord, 0, len(store.entries)),
		Favicons:      make([]faviconRecord, 0, len(store.favicons)),
	}
	for _, e := range store.entries {
		doc.Entries = append(doc.Entries, toRecord(e))
	}
	for _, f := range store.favicons {
		doc.Favicons = append(doc.Favicons, faviconRecord{URL: f.URL, Data: f.Data, UpdatedAt: f.UpdatedAt})
	}

	sort.Slice(doc.Entries, func(i, j int) bool { return doc.Entries[i].ID < doc.Entries[j].ID })
	sort.Slice(doc.Favicons, func(i, j int) bool { return doc.Favicons[i].URL < doc.Favicons[j].URL })

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode vault document: %w", err)
	}
	return data, nil
}

// Deserialize rebuilds a store from a document produced by Serialize or by
// an older version. Unknown fields are ignored and missing ones take their
// zero defaults. Unparseable input, duplicate ids and non-positive ids fail
// with [ErrCorruptVault].
func (c *Codec) Deserialize(data []byte, cipher crypto.Cipher) (*CredStore, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrCorruptVault)
	}

	var doc vaultDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptVault, err)
	}

	records := doc.Entries
	if len(doc.Items) > 0 {
		legacy, err := legacyRecords(doc.Items)
		if err != nil {
			return nil, err
		}
		records = append(records, legacy...)
		c.logger.Info().
			Str("func", "*Codec.Deserialize").
			Int("format_version", doc.FormatVersion).
			Int("items", len(doc.Items)).
			Msg("read legacy vault items")
	}
	if doc.FormatVersion > FormatVersion {
		c.logger.Warn().
			Str("func", "*Codec.Deserialize").
			Int("format_version", doc.FormatVersion).
			Msg("vault written by a newer version, unknown fields are dropped")
	}

	store := NewCredStore(cipher)
	var maxID models.EntryID
	for _, r := range records {
		if r.ID <= 0 {
			return nil, fmt.Errorf("%w: invalid entry id %d", ErrCorruptVault, r.ID)
		}
		id := models.EntryID(r.ID)
		if _, dup := store.entries[id]; dup {
			return nil, fmt.Errorf("%w: duplicate entry id %d", ErrCorruptVault, r.ID)
		}
		entry := fromRecord(r)
		store.entries[id] = &entry
		if id > maxID {
			maxID = id
		}
	}
	for _, f := range doc.Favicons {
		if f.URL == "" {
			continue
		}
		store.favicons[f.URL] = models.Favicon{URL: f.URL, Data: f.Data, UpdatedAt: f.UpdatedAt}
	}

	store.nextID = max(models.EntryID(doc.NextID), maxID+1, 1)

	return store, nil
}

func legacyRecords(items map[string]entryRecord) ([]entryRecord, error) {
	out := make([]entryRecord, 0, len(items))
	for key, r := range items {
		if r.ID == 0 {
			id, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid item key %q", ErrCorruptVault, key)
			}
			r.ID = id
		}
		out = append(out, r)
	}
	return out, nil
}

func toRecord(e *models.Entry) entryRecord {
	return entryRecord{
		ID:       int64(e.ID),
		Service:  e.Service,
		Username: e.Username,
		Secret: &envelopeRecord{
			Nonce:      e.Secret.Nonce,
			Ciphertext: e.Secret.Ciphertext,
			Tag:        e.Secret.Tag,
		},
		URL:         e.URL,
		Group:       e.Group,
		Notes:       e.Notes,
		Strength:    strengthField(e.Strength),
		IsFavorited: e.IsFavorited,
		Favicon:     e.Favicon,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func fromRecord(r entryRecord) models.Entry {
	env := r.Secret
	if env == nil {
		env = r.Password
	}

	entry := models.Entry{
		ID:          models.EntryID(r.ID),
		Service:     r.Service,
		Username:    r.Username,
		URL:         r.URL,
		Group:       r.Group,
		Notes:       r.Notes,
		Strength:    models.Strength(r.Strength),
		IsFavorited: r.IsFavorited,
		Favicon:     r.Favicon,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if env != nil {
		entry.Secret = models.CipherText{Nonce: env.Nonce, Ciphertext: env.Ciphertext, Tag: env.Tag}
	}
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = entry.CreatedAt
	}
	return entry
}
