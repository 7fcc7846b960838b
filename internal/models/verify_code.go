package models

import "time"

// VerifyCode is one pending email verification attempt. A fresh record is
// created per send; validity is computed at read time from CreatedAt.
type VerifyCode struct {
	ID             int64     `json:"id"`
	BusinessID     int       `json:"business_id"`
	Email          string    `json:"email"`
	Code           string    `json:"-"`
	SessionID      string    `json:"session_id"`
	FailedAttempts int       `json:"failed_attempts"`
	CreatedAt      time.Time `json:"created_at"`
}

// VerifyBlock is a temporary cooldown on a contact address. There is no
// delete: a block simply stops matching once its window has passed.
type VerifyBlock struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	WindowMinutes int       `json:"delta"`
	CreatedAt     time.Time `json:"created_at"`
}

type SendVerifyRequest struct {
	Type string `json:"type" binding:"required,oneof=email"`
}

type ConfirmCodeRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Code      string `json:"code" binding:"required"`
}
