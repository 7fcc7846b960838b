package repositories

import (
	"database/sql"
	"fmt"

	"jobport/internal/models"
)

type CampaignRepository interface {
	Create(c *models.Campaign) error
	GetByID(id int) (*models.Campaign, error)
	Update(c *models.Campaign) error
	Delete(id int) error
	List(filter models.CampaignFilter) ([]*models.Campaign, error)
}

type campaignRepository struct {
	DB *sql.DB
}

func NewCampaignRepository(db *sql.DB) CampaignRepository {
	return &campaignRepository{DB: db}
}

func (r *campaignRepository) Create(c *models.Campaign) error {
	const q = `
		INSERT INTO campaigns (business_id, title, is_flash, status, optimal_score)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(q, c.BusinessID, c.Title, c.IsFlash, c.Status, c.OptimalScore).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("campaign create: %w", err)
	}
	return nil
}

func (r *campaignRepository) GetByID(id int) (*models.Campaign, error) {
	const q = `
		SELECT id, business_id, title, is_flash, status, optimal_score, created_at, updated_at
		FROM campaigns WHERE id = $1
	`
	var c models.Campaign
	err := r.DB.QueryRow(q, id).Scan(&c.ID, &c.BusinessID, &c.Title, &c.IsFlash,
		&c.Status, &c.OptimalScore, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("campaign get by id: %w", err)
	}
	return &c, nil
}

func (r *campaignRepository) Update(c *models.Campaign) error {
	const q = `
		UPDATE campaigns
		SET title=$1, status=$2, optimal_score=$3, updated_at=NOW()
		WHERE id=$4
	`
	if _, err := r.DB.Exec(q, c.Title, c.Status, c.OptimalScore, c.ID); err != nil {
		return fmt.Errorf("campaign update: %w", err)
	}
	return nil
}

func (r *campaignRepository) Delete(id int) error {
	if _, err := r.DB.Exec(`DELETE FROM campaigns WHERE id = $1`, id); err != nil {
		return fmt.Errorf("campaign delete: %w", err)
	}
	return nil
}

func (r *campaignRepository) List(filter models.CampaignFilter) ([]*models.Campaign, error) {
	q := `
		SELECT id, business_id, title, is_flash, status, optimal_score, created_at, updated_at
		FROM campaigns
		WHERE ($1 = 0 OR business_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY id DESC
		LIMIT $3 OFFSET $4
	`
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.DB.Query(q, filter.BusinessID, filter.Status, limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("campaign list: %w", err)
	}
	defer rows.Close()

	var out []*models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Title, &c.IsFlash,
			&c.Status, &c.OptimalScore, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("campaign list scan: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
