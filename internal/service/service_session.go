// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/interchange"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Session is the lock state machine. It exclusively owns the master key
// and the working store; one mutex guards both together with the state so
// that a save on lock can never interleave with an entry mutation.
//
// Password verification and key derivation run without the mutex held.
// Each unlock attempt takes a generation number, and a result whose
// generation is no longer current is destroyed instead of committed.
type Session struct {
	users     store.UserRepository
	verifier  crypto.Verifier
	keys      KeyService
	container *vault.Container
	codec     *vault.Codec
	cipher    crypto.Cipher
	favicons  FaviconService
	autoLock  AutoLockJob
	idle      time.Duration
	logger    *logger.Logger

	mu         sync.Mutex
	state      models.SessionState
	user       models.User
	key        *crypto.MasterKey
	store      *vault.CredStore
	storeEpoch uint64
	generation uint64
	unlockFrom models.SessionState

	// lastActivity is the time of the latest operation on the unlocked
	// store. The auto-lock fire re-checks it under mu.
	lastActivity time.Time

	bgCtx    context.Context
	bgCancel context.CancelFunc
	bg       sync.WaitGroup
}

// NewSession creates a logged-out session. idle is the auto-lock timeout;
// zero disables auto-lock.
func NewSession(
	users store.UserRepository,
	verifier crypto.Verifier,
	keys KeyService,
	container *vault.Container,
	codec *vault.Codec,
	cipher crypto.Cipher,
	favicons FaviconService,
	idle time.Duration,
	logger *logger.Logger,
) *Session {
	bgCtx, bgCancel := context.WithCancel(context.Background())
	s := &Session{
		users:     users,
		verifier:  verifier,
		keys:      keys,
		container: container,
		codec:     codec,
		cipher:    cipher,
		favicons:  favicons,
		idle:      idle,
		logger:    logger,
		state:     models.SessionLoggedOut,
		bgCtx:     logger.WithContext(bgCtx),
		bgCancel:  bgCancel,
	}
	s.autoLock = NewAutoLockJob(s.autoLockFired)
	return s
}

// ── Authentication ───────────────────────────────────────────────────────────

// Register implements SessionService.
func (s *Session) Register(ctx context.Context, username, password string) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return 0, fmt.Errorf("%w: username and password are required", ErrInvalidDataProvided)
	}

	exists, err := s.users.Exists(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("check user: %w", err)
	}
	if exists {
		return 0, ErrUserAlreadyExists
	}

	verifier, err := s.verifier.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	accountID, err := s.users.Create(ctx, username, verifier)
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		return 0, ErrUserAlreadyExists
	}
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	if _, err = s.keys.EnsureSalt(ctx, accountID); err != nil {
		return 0, err
	}

	s.log(ctx).Info().Str("func", "*Session.Register").Int64("account_id", accountID).Msg("user registered")
	return accountID, nil
}

// Unlock implements SessionService.
func (s *Session) Unlock(ctx context.Context, username, password string) (models.SessionHandle, error) {
	s.mu.Lock()
	if s.state == models.SessionUnlocked {
		s.mu.Unlock()
		return models.SessionHandle{}, ErrAlreadyUnlocked
	}
	if s.state != models.SessionUnlocking {
		s.unlockFrom = s.state
	}
	s.generation++
	gen := s.generation
	s.state = models.SessionUnlocking
	s.mu.Unlock()

	user, key, credStore, err := s.openVault(ctx, strings.TrimSpace(username), password)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		key.Destroy()
		if credStore != nil {
			credStore.Clear()
		}
		return models.SessionHandle{}, ErrUnlockSuperseded
	}
	if err != nil {
		s.state = s.unlockFrom
		return models.SessionHandle{}, err
	}

	s.user = user
	s.key = key
	s.store = credStore
	s.storeEpoch++
	s.state = models.SessionUnlocked
	s.lastActivity = time.Now()
	s.autoLock.Start(s.idle)

	s.log(ctx).Info().Str("func", "*Session.Unlock").Int64("account_id", user.AccountID).Int("entries", credStore.Len()).Msg("vault unlocked")
	return models.SessionHandle{AccountID: user.AccountID, Username: user.Username}, nil
}

// openVault authenticates the user, derives the key and loads the vault.
// It runs without the session mutex. On error no key is returned.
func (s *Session) openVault(ctx context.Context, username, password string) (models.User, *crypto.MasterKey, *vault.CredStore, error) {
	log := s.log(ctx).With().Str("func", "*Session.openVault").Logger()

	user, err := s.users.Lookup(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Msg("unlock for unknown user")
		return models.User{}, nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, nil, nil, fmt.Errorf("lookup user: %w", err)
	}

	if !s.verifier.Verify(user.Verifier, password) {
		log.Info().Int64("account_id", user.AccountID).Msg("wrong master password")
		return models.User{}, nil, nil, ErrInvalidCredentials
	}
	if err = ctx.Err(); err != nil {
		return models.User{}, nil, nil, err
	}

	key, err := s.keys.UnlockKey(ctx, user.AccountID, password)
	if err != nil {
		if errors.Is(err, crypto.ErrKeyDerivation) {
			log.Error().Err(err).Int64("account_id", user.AccountID).Msg("key derivation failed")
			return models.User{}, nil, nil, errors.Join(ErrInvalidCredentials, err)
		}
		return models.User{}, nil, nil, err
	}

	plaintext, err := s.container.Load(ctx, user.AccountID, key.Bytes())
	if errors.Is(err, store.ErrVaultNotFound) {
		log.Info().Int64("account_id", user.AccountID).Msg("no vault yet, starting empty")
		return user, key, vault.NewCredStore(s.cipher), nil
	}
	if err != nil {
		key.Destroy()
		log.Error().Err(err).Int64("account_id", user.AccountID).Msg("vault load failed")
		return models.User{}, nil, nil, err
	}

	credStore, err := s.codec.Deserialize(plaintext, s.cipher)
	clear(plaintext)
	if err != nil {
		key.Destroy()
		return models.User{}, nil, nil, err
	}
	return user, key, credStore, nil
}

// Lock implements SessionService.
func (s *Session) Lock(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case models.SessionUnlocked:
		return s.lockLocked(ctx)
	case models.SessionUnlocking:
		s.generation++
		s.state = s.unlockFrom
	}
	return nil
}

// Logout implements SessionService.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	switch s.state {
	case models.SessionUnlocked:
		err = s.lockLocked(ctx)
	case models.SessionUnlocking:
		s.generation++
	}

	s.user = models.User{}
	s.state = models.SessionLoggedOut
	return err
}

// Save implements SessionService.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.SessionUnlocked {
		return ErrLocked
	}
	s.touchLocked()
	return s.saveLocked(ctx)
}

// lockLocked saves and then purges regardless of the save outcome. The
// caller holds s.mu.
func (s *Session) lockLocked(ctx context.Context) error {
	saveErr := s.saveLocked(ctx)
	if saveErr != nil {
		s.log(ctx).Error().Err(saveErr).Str("func", "*Session.lockLocked").Int64("account_id", s.user.AccountID).
			Msg("vault was not saved before lock, unsaved changes are lost")
	}

	s.purgeLocked()
	s.state = models.SessionLocked
	s.log(ctx).Info().Str("func", "*Session.lockLocked").Int64("account_id", s.user.AccountID).Msg("vault locked")
	return saveErr
}

func (s *Session) saveLocked(ctx context.Context) error {
	plaintext, err := s.codec.Serialize(s.store)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	defer clear(plaintext)

	if _, err = s.container.Save(ctx, s.user.AccountID, plaintext, s.key.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}

func (s *Session) purgeLocked() {
	s.autoLock.Stop()
	s.key.Destroy()
	s.key = nil
	if s.store != nil {
		s.store.Clear()
		s.store = nil
	}
	s.storeEpoch++
}

func (s *Session) autoLockFired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.SessionUnlocked {
		return
	}
	if time.Since(s.lastActivity) < s.idle {
		// an operation ran while the timer was firing
		s.autoLock.Start(s.idle)
		return
	}
	s.logger.Info().Str("func", "*Session.autoLockFired").Int64("account_id", s.user.AccountID).Msg("idle timeout, locking vault")
	_ = s.lockLocked(s.bgCtx)
}

// ── Entries ──────────────────────────────────────────────────────────────────

// unlocked returns the store and key when the session is unlocked and
// records activity. The caller holds s.mu.
func (s *Session) unlocked() (*vault.CredStore, []byte, error) {
	if s.state != models.SessionUnlocked {
		return nil, nil, ErrLocked
	}
	s.touchLocked()
	return s.store, s.key.Bytes(), nil
}

// touchLocked records activity on the unlocked store. The caller holds s.mu.
func (s *Session) touchLocked() {
	s.lastActivity = time.Now()
	s.autoLock.Touch()
}

// ListEntries implements SessionService.
func (s *Session) ListEntries(_ context.Context) ([]models.EntryView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credStore, _, err := s.unlocked()
	if err != nil {
		return nil, err
	}
	return views(credStore.GetAll()), nil
}

// Search implements SessionService.
func (s *Session) Search(_ context.Context, query string) ([]models.EntryView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credStore, _, err := s.unlocked()
	if err != nil {
		return nil, err
	}
	return views(credStore.Search(query)), nil
}

// RevealSecret implements SessionService.
func (s *Session) RevealSecret(_ context.Context, id models.EntryID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credStore, key, err := s.unlocked()
	if err != nil {
		return "", err
	}
	return credStore.DecryptSecret(key, id)
}

// CreateEntry implements SessionService. When the entry has a url whose
// icon is not cached yet, the icon is fetched in the background and
// attached later; a failed fetch never fails the create.
func (s *Session) CreateEntry(_ context.Context, fields models.EntryFields, secret string) (models.EntryID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credStore, key, err := s.unlocked()
	if err != nil {
		return 0, err
	}

	url := faviconKey(fields.URL)
	cached := false
	if url != "" && fields.Favicon == nil {
		fields.Favicon, cached = credStore.Favicon(url)
	}

	id, err := credStore.Add(key, fields, secret)
	if err != nil {
		return 0, err
	}

	if url != "" && !cached && fields.Favicon == nil {
		s.fetchFaviconLocked(id, url)
	}
	return id, nil
}

// UpdateEntry implements SessionService.
func (s *Session) UpdateEntry(_ context.Context, id models.EntryID, patch models.EntryPatch, newSecret *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	credStore, key, err := s.unlocked()
	if err != nil {
		return err
	}
	if _, err = credStore.Update(key, id, patch, newSecret); err != nil {
		return err
	}

	if url := faviconKey(patch.URL); url != "" && patch.Favicon == nil {
		if data, ok := credStore.Favicon(url); ok {
			return credStore.AttachFavicon(id, data)
		}
		s.fetchFaviconLocked(id, url)
	}
	return nil
}

// DeleteEntry implements SessionService.
func (s *Session) DeleteEntry(_ context.Context, id models.EntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	credStore, _, err := s.unlocked()
	if err != nil {
		return err
	}
	if !credStore.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// ToggleFavorite implements SessionService.
func (s *Session) ToggleFavorite(_ context.Context, id models.EntryID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credStore, _, err := s.unlocked()
	if err != nil {
		return false, err
	}
	return credStore.ToggleFavorite(id)
}

// fetchFaviconLocked starts a background fetch for the entry's icon. The
// result is applied only if the same working store is still loaded. The
// caller holds s.mu.
func (s *Session) fetchFaviconLocked(id models.EntryID, url string) {
	if s.favicons == nil {
		return
	}
	epoch := s.storeEpoch

	s.bg.Add(1)
	go func() {
		defer s.bg.Done()

		data, ok := s.favicons.FetchBestEffort(s.bgCtx, url)
		if !ok {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.state != models.SessionUnlocked || s.storeEpoch != epoch {
			return
		}
		s.store.PutFavicon(url, data)
		if err := s.store.AttachFavicon(id, data); err != nil {
			s.logger.Debug().Err(err).Str("func", "*Session.fetchFaviconLocked").Int64("entry_id", int64(id)).Msg("entry gone before favicon arrived")
		}
	}()
}

// ── Interchange ──────────────────────────────────────────────────────────────

// ExportEntries implements SessionService.
func (s *Session) ExportEntries(_ context.Context) ([]interchange.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credStore, key, err := s.unlocked()
	if err != nil {
		return nil, err
	}

	entries := credStore.GetAll()
	records := make([]interchange.Record, 0, len(entries))
	for _, e := range entries {
		secret, err := credStore.DecryptSecret(key, e.ID)
		if err != nil {
			return nil, err
		}
		records = append(records, interchange.FromEntry(e, secret))
	}
	return records, nil
}

// ImportEntries implements SessionService. Entries added before a failure
// are removed again.
func (s *Session) ImportEntries(ctx context.Context, records []interchange.Record) (int, error) {
	if err := interchange.Validate(records); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	credStore, key, err := s.unlocked()
	if err != nil {
		return 0, err
	}

	added := make([]models.EntryID, 0, len(records))
	for _, r := range records {
		id, err := credStore.Add(key, r.Fields(), r.Password)
		if err != nil {
			for _, a := range added {
				credStore.Delete(a)
			}
			return 0, fmt.Errorf("import %q: %w", r.Service, err)
		}
		added = append(added, id)
	}

	s.log(ctx).Info().Str("func", "*Session.ImportEntries").Int("entries", len(added)).Msg("entries imported")
	return len(added), nil
}

// ── State ────────────────────────────────────────────────────────────────────

// State implements SessionService.
func (s *Session) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Username implements SessionService. It is empty while logged out.
func (s *Session) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Username
}

// Close implements SessionService.
func (s *Session) Close(ctx context.Context) error {
	err := s.Logout(ctx)
	s.bgCancel()
	s.bg.Wait()
	s.autoLock.Stop()
	return err
}

// log returns the command-scoped logger carried by ctx, if any.
func (s *Session) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, s.logger)
}

func views(entries []models.Entry) []models.EntryView {
	out := make([]models.EntryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.View())
	}
	return out
}

func faviconKey(url *string) string {
	if url == nil {
		return ""
	}
	return strings.TrimSpace(*url)
}
