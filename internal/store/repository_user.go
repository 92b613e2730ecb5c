package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// maxBusyRetries bounds how often a statement is re-run after SQLITE_BUSY.
const maxBusyRetries = 3

// busyBackoff is the pause between two attempts of a busy statement.
var busyBackoff = 50 * time.Millisecond

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles account registration and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new directory record and returns the assigned account id.
//
// Error handling:
//   - UNIQUE constraint on username → [ErrLoginAlreadyExists].
//   - SQLITE_BUSY / SQLITE_LOCKED → retried up to [maxBusyRetries] times.
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) Create(ctx context.Context, username, verifier string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(username, verifier)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error building query")
		return 0, err
	}

	var (
		accountID int64
		createdAt time.Time
	)
	err = r.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&accountID, &createdAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Str("username", username).Msg("error inserting user")
		if isUniqueViolation(err) {
			return 0, ErrLoginAlreadyExists
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "*userRepository.Create").Int64("account_id", accountID).Msg("user created")
	return accountID, nil
}

// Lookup retrieves the directory record for username.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) Lookup(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLookupUserQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Lookup").Msg("error building query")
		return models.User{}, err
	}

	var user models.User
	err = r.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&user.AccountID, &user.Username, &user.Verifier, &user.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Lookup").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// Exists reports whether a record with the given username is present.
func (r *userRepository) Exists(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserExistsQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Exists").Msg("error building query")
		return false, err
	}

	var count int64
	err = r.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Exists").Msg("error counting users")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// withRetry runs fn again while the classifier reports the failure as
// transient and the context is alive.
func (r *userRepository) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < maxBusyRetries; attempt++ {
		err = fn()
		if err == nil || r.db.errorClassificator == nil || r.db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(busyBackoff):
		}
	}
	return err
}
