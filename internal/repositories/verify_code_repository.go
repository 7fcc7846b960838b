package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"jobport/internal/models"
)

type VerifyCodeRepository interface {
	Create(businessID int, email, code, sessionID string) (*models.VerifyCode, error)
	GetValid(sessionID, email string, freshness time.Duration) (*models.VerifyCode, error)
	IncrementFailedAttempts(id int64) (int, error)
	Delete(id int64) error
}

type verifyCodeRepository struct {
	DB *sql.DB
}

func NewVerifyCodeRepository(db *sql.DB) VerifyCodeRepository {
	return &verifyCodeRepository{DB: db}
}

// Create inserts a fresh verification record (every send is a new row,
// attempts start at zero). Session ids are unique across all rows.
func (r *verifyCodeRepository) Create(businessID int, email, code, sessionID string) (*models.VerifyCode, error) {
	const q = `
		INSERT INTO verify_codes (business_id, email, code, session_id, failed_attempts)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING id, created_at
	`
	v := &models.VerifyCode{
		BusinessID: businessID,
		Email:      email,
		Code:       code,
		SessionID:  sessionID,
	}
	if err := r.DB.QueryRow(q, businessID, email, code, sessionID).Scan(&v.ID, &v.CreatedAt); err != nil {
		return nil, fmt.Errorf("verify_code create: %w", err)
	}
	return v, nil
}

// GetValid returns the record matching (session_id, email) that is still
// inside the freshness window, or nil. Staleness is computed at read time;
// expired rows are simply never returned.
func (r *verifyCodeRepository) GetValid(sessionID, email string, freshness time.Duration) (*models.VerifyCode, error) {
	const q = `
		SELECT id, business_id, email, code, session_id, failed_attempts, created_at
		FROM verify_codes
		WHERE session_id = $1 AND email = $2 AND created_at >= $3
		ORDER BY created_at DESC
		LIMIT 1
	`
	cutoff := time.Now().Add(-freshness)
	row := r.DB.QueryRow(q, sessionID, email, cutoff)
	var v models.VerifyCode
	if err := row.Scan(&v.ID, &v.BusinessID, &v.Email, &v.Code, &v.SessionID, &v.FailedAttempts, &v.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("verify_code get valid: %w", err)
	}
	return &v, nil
}

// IncrementFailedAttempts adds one failed try and returns the new counter.
// Single statement, so the counter cannot be lost between read and write.
func (r *verifyCodeRepository) IncrementFailedAttempts(id int64) (int, error) {
	const q = `
		UPDATE verify_codes
		SET failed_attempts = failed_attempts + 1
		WHERE id = $1
		RETURNING failed_attempts
	`
	var attempts int
	if err := r.DB.QueryRow(q, id).Scan(&attempts); err != nil {
		return 0, fmt.Errorf("verify_code increment attempts: %w", err)
	}
	return attempts, nil
}

func (r *verifyCodeRepository) Delete(id int64) error {
	if _, err := r.DB.Exec(`DELETE FROM verify_codes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("verify_code delete: %w", err)
	}
	return nil
}
