package models

import "time"

// BlacklistToken is a revoked token. Any token present here is rejected by
// the auth gate even before its embedded expiry passes.
type BlacklistToken struct {
	ID        int64     `json:"id"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"` // embedded token expiry, used for pruning
	CreatedAt time.Time `json:"created_at"`
}
