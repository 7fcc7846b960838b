package models

import "time"

// PasswordReset is a single-use reset token mailed to a job seeker. A row
// is spent the moment UsedAt is set; expired rows are simply never honored.
type PasswordReset struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	Token     string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
