// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package interchange defines the plaintext record format used to import
// entries into a vault and export them out of it.
//
// Every record is validated before it may reach the working store, and
// documents with unknown fields are rejected instead of being guessed at.
// Exported documents contain plaintext secrets.
package interchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// DocumentFormat identifies an export document.
	DocumentFormat = "go-pass-vault-export"

	// DocumentVersion is the current export document version.
	DocumentVersion = 1
)

var (
	// ErrInvalidRecord is returned when a record fails validation.
	ErrInvalidRecord = errors.New("invalid interchange record")

	// ErrInvalidDocument is returned when an import document cannot be
	// decoded or is not an export document.
	ErrInvalidDocument = errors.New("invalid interchange document")
)

// Record is one entry in plaintext form.
type Record struct {
	Service  string `json:"service" validate:"required,max=256"`
	Username string `json:"username" validate:"max=256"`
	Password string `json:"password" validate:"max=4096"`
	URL      string `json:"url,omitempty" validate:"max=2048"`
	Group    string `json:"group,omitempty" validate:"max=128"`
	Notes    string `json:"notes,omitempty" validate:"max=65536"`
	Strength string `json:"strength,omitempty" validate:"omitempty,oneof=weak medium strong"`
	Favorite bool   `json:"favorite,omitempty"`

	// Favicon is the cached icon, base64 encoded in the document.
	Favicon   []byte    `json:"favicon,omitempty" validate:"max=1048576"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

type document struct {
	Format  string   `json:"format"`
	Version int      `json:"version"`
	Records []Record `json:"records"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks every record and reports the first invalid one by index.
// Surrounding whitespace of Service is ignored for the required check.
func Validate(records []Record) error {
	v := recordValidator()
	for i := range records {
		r := records[i]
		r.Service = strings.TrimSpace(r.Service)
		if err := v.Struct(r); err != nil {
			return fmt.Errorf("%w: record %d: %w", ErrInvalidRecord, i, err)
		}
	}
	return nil
}

// FromEntry builds a record from an entry and its decrypted secret.
func FromEntry(e models.Entry, secret string) Record {
	r := Record{
		Service:  e.Service,
		Username: e.Username,
		Password: secret,
		Group:    e.Group,
		Strength: e.Strength.String(),
		Favorite: e.IsFavorited,

		Favicon:   cloneBytes(e.Favicon),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.URL != nil {
		r.URL = *e.URL
	}
	if e.Notes != nil {
		r.Notes = *e.Notes
	}
	return r
}

// Fields converts a validated record to the non-secret fields of a new
// entry. The secret is r.Password.
func (r Record) Fields() models.EntryFields {
	strength, _ := models.ParseStrength(r.Strength)

	fields := models.EntryFields{
		Service:     strings.TrimSpace(r.Service),
		Username:    r.Username,
		Group:       r.Group,
		Strength:    strength,
		IsFavorited: r.Favorite,
		Favicon:     cloneBytes(r.Favicon),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.URL != "" {
		url := r.URL
		fields.URL = &url
	}
	if r.Notes != "" {
		notes := r.Notes
		fields.Notes = &notes
	}
	return fields
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// Encode writes records as an export document.
func Encode(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Format: DocumentFormat, Version: DocumentVersion, Records: records}); err != nil {
		return fmt.Errorf("encode interchange document: %w", err)
	}
	return nil
}

// Decode reads an export document and validates its records.
func Decode(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if doc.Format != DocumentFormat {
		return nil, fmt.Errorf("%w: unexpected format %q", ErrInvalidDocument, doc.Format)
	}
	if doc.Version < 1 || doc.Version > DocumentVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidDocument, doc.Version)
	}

	if err := Validate(doc.Records); err != nil {
		return nil, err
	}
	return doc.Records, nil
}
