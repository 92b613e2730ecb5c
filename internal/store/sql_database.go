package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// DB wraps the SQLite connection of the user directory together with the
// error classifier used to decide whether a failed statement is retried.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
