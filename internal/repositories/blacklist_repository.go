package repositories

import (
	"database/sql"
	"fmt"
	"time"
)

type BlacklistRepository interface {
	Create(token string, expiresAt time.Time) error
	Exists(token string) (bool, error)
	DeleteExpired(now time.Time) (int64, error)
}

type blacklistRepository struct {
	DB *sql.DB
}

func NewBlacklistRepository(db *sql.DB) BlacklistRepository {
	return &blacklistRepository{DB: db}
}

// Create records a revoked token. Inserting the same token twice is a no-op
// so logout stays idempotent.
func (r *blacklistRepository) Create(token string, expiresAt time.Time) error {
	const q = `
		INSERT INTO token_blacklist (token, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (token) DO NOTHING
	`
	if _, err := r.DB.Exec(q, token, expiresAt); err != nil {
		return fmt.Errorf("blacklist create: %w", err)
	}
	return nil
}

func (r *blacklistRepository) Exists(token string) (bool, error) {
	const q = `SELECT 1 FROM token_blacklist WHERE token = $1`
	var one int
	if err := r.DB.QueryRow(q, token).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("blacklist exists: %w", err)
	}
	return true, nil
}

// DeleteExpired prunes rows whose embedded token expiry has passed; such
// tokens are rejected by expiry anyway, so the row carries no information.
func (r *blacklistRepository) DeleteExpired(now time.Time) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM token_blacklist WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("blacklist delete expired: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
