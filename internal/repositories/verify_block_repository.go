package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"jobport/internal/models"
)

type VerifyBlockRepository interface {
	FindActive(email string, window time.Duration) (*models.VerifyBlock, error)
	Create(email string, windowMinutes int) error
}

type verifyBlockRepository struct {
	DB *sql.DB
}

func NewVerifyBlockRepository(db *sql.DB) VerifyBlockRepository {
	return &verifyBlockRepository{DB: db}
}

// FindActive returns the newest block for the email whose window has not
// passed yet, or nil. Stale blocks are left in place; only the time check
// decides whether one counts.
func (r *verifyBlockRepository) FindActive(email string, window time.Duration) (*models.VerifyBlock, error) {
	const q = `
		SELECT id, email, delta, created_at
		FROM verify_code_blocks
		WHERE email = $1 AND created_at >= $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	cutoff := time.Now().Add(-window)
	row := r.DB.QueryRow(q, email, cutoff)
	var b models.VerifyBlock
	if err := row.Scan(&b.ID, &b.Email, &b.WindowMinutes, &b.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("verify_block find active: %w", err)
	}
	return &b, nil
}

func (r *verifyBlockRepository) Create(email string, windowMinutes int) error {
	const q = `
		INSERT INTO verify_code_blocks (email, delta)
		VALUES ($1, $2)
	`
	if _, err := r.DB.Exec(q, email, windowMinutes); err != nil {
		return fmt.Errorf("verify_block create: %w", err)
	}
	return nil
}
