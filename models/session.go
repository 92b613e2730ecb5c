package models

// SessionHandle identifies the account a successful unlock opened.
type SessionHandle struct {
	AccountID int64
	Username  string
}

// SessionState is the lifecycle state of a vault session.
type SessionState int

const (
	// SessionLoggedOut means no user is identified.
	SessionLoggedOut SessionState = iota
	// SessionUnlocking means a password was submitted and the master key is
	// being derived.
	SessionUnlocking
	// SessionUnlocked means the master key is held and the working store is
	// populated.
	SessionUnlocked
	// SessionLocked means the user is identified but the key and the working
	// store have been purged.
	SessionLocked
)

func (s SessionState) String() string {
	switch s {
	case SessionUnlocking:
		return "unlocking"
	case SessionUnlocked:
		return "unlocked"
	case SessionLocked:
		return "locked"
	default:
		return "logged out"
	}
}
