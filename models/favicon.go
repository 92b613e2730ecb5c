package models

import "time"

// Favicon is a cached website icon. It is not sensitive and carries no
// confidentiality guarantee, it just lives in the same working store.
type Favicon struct {
	URL       string
	Data      []byte
	UpdatedAt time.Time
}
