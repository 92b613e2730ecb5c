package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, errorClassificator: NewSQLiteErrorClassifier(), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"account_id", "created_at"}).AddRow(7, time.Now())
	mock.ExpectQuery(`INSERT INTO users \(username,verifier\) VALUES \(\?,\?\) RETURNING account_id, created_at`).
		WithArgs("alice", "$argon2id$stub").
		WillReturnRows(rows)

	id, err := repo.Create(context.Background(), "alice", "$argon2id$stub")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	_, err := repo.Create(context.Background(), "alice", "v")
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestCreate_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Create(context.Background(), "alice", "v")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestCreate_RetriesWhenBusy(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	prev := busyBackoff
	busyBackoff = time.Millisecond
	t.Cleanup(func() { busyBackoff = prev })

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "created_at"}).AddRow(1, time.Now()))

	id, err := repo.Create(context.Background(), "bob", "v")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_GivesUpAfterMaxRetries(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	prev := busyBackoff
	busyBackoff = time.Millisecond
	t.Cleanup(func() { busyBackoff = prev })

	for i := 0; i < maxBusyRetries; i++ {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	}

	_, err := repo.Create(context.Background(), "bob", "v")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookup_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"account_id", "username", "verifier", "created_at"}).
		AddRow(3, "alice", "$argon2id$stub", now)
	mock.ExpectQuery(`SELECT account_id, username, verifier, created_at FROM users WHERE username = \? LIMIT 1`).
		WithArgs("alice").
		WillReturnRows(rows)

	user, err := repo.Lookup(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.AccountID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "$argon2id$stub", user.Verifier)
	assert.True(t, user.CreatedAt.Equal(now))
}

func TestLookup_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "username", "verifier", "created_at"}))

	_, err := repo.Lookup(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestLookup_DBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Lookup(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestExists(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "present", count: 1, want: true},
		{name: "absent", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			mock.ExpectQuery(`SELECT COUNT\(1\) FROM users WHERE username = \?`).
				WithArgs("alice").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := repo.Exists(context.Background(), "alice")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExists_DBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("boom"))

	_, err := repo.Exists(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
