package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/interchange"
	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService is the call surface the UI layer drives. Every entry
// operation fails with [ErrLocked] unless the session is unlocked, and
// every successful one resets the auto-lock timer.
type SessionService interface {
	// Register adds a user to the directory and creates its vault salt. It
	// does not unlock anything.
	Register(ctx context.Context, username, password string) (int64, error)

	// Unlock verifies the password, derives the master key and loads the
	// vault.
	Unlock(ctx context.Context, username, password string) (models.SessionHandle, error)

	// Lock saves the vault and purges the key and the working store. The
	// purge happens even when the save fails.
	Lock(ctx context.Context) error

	// Logout is Lock followed by forgetting the identified user.
	Logout(ctx context.Context) error

	// Save persists the vault without locking it.
	Save(ctx context.Context) error

	ListEntries(ctx context.Context) ([]models.EntryView, error)
	Search(ctx context.Context, query string) ([]models.EntryView, error)
	RevealSecret(ctx context.Context, id models.EntryID) (string, error)
	CreateEntry(ctx context.Context, fields models.EntryFields, secret string) (models.EntryID, error)
	UpdateEntry(ctx context.Context, id models.EntryID, patch models.EntryPatch, newSecret *string) error
	DeleteEntry(ctx context.Context, id models.EntryID) error
	ToggleFavorite(ctx context.Context, id models.EntryID) (bool, error)

	// ExportEntries decrypts every entry into an interchange record.
	ExportEntries(ctx context.Context) ([]interchange.Record, error)

	// ImportEntries validates all records and adds them as new entries. No
	// entry is added unless every record is valid.
	ImportEntries(ctx context.Context, records []interchange.Record) (int, error)

	State() models.SessionState
	Username() string

	// Close logs out and waits for background work to finish.
	Close(ctx context.Context) error
}

// KeyService owns the vault-key salt of each account and derives master
// keys from it.
type KeyService interface {
	// EnsureSalt returns the account's salt, creating and persisting a new
	// random one if none exists yet.
	EnsureSalt(ctx context.Context, accountID int64) ([]byte, error)

	// UnlockKey derives the master key for the account off the calling
	// goroutine. It returns ctx.Err() if ctx ends first; the abandoned key
	// is destroyed when it arrives.
	UnlockKey(ctx context.Context, accountID int64, password string) (*crypto.MasterKey, error)
}

// FaviconService fetches website icons for entries.
type FaviconService interface {
	// FetchBestEffort returns the icon for url, or false on any failure.
	// Failures are logged and never returned.
	FetchBestEffort(ctx context.Context, url string) ([]byte, bool)
}

// AutoLockJob fires its callback after a period without activity.
type AutoLockJob interface {
	// Start (re)arms the timer with the given idle duration.
	Start(idle time.Duration)

	// Touch records activity and pushes the deadline back.
	Touch()

	// Stop disarms the timer. A callback that was already due is discarded.
	Stop()
}
