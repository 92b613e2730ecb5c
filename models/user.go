package models

import "time"

// User is a record of the local authentication directory. It is not vault
// content: it only lets the session tell whether a master password is
// correct and which per-account vault files to open.
type User struct {
	// AccountID is the stable identifier assigned by the directory. Vault
	// file names are derived from it.
	AccountID int64

	// Username is unique within the directory.
	Username string

	// Verifier is an encoded Argon2id hash of the master password. It embeds
	// its own random salt, independent of the vault-key salt, and is a
	// one-way check only.
	Verifier string

	// CreatedAt is when the account was registered.
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
