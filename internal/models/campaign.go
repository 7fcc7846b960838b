package models

import "time"

const (
	CampaignStatusOpen   = "open"
	CampaignStatusClosed = "closed"
)

type Campaign struct {
	ID           int       `json:"id"`
	BusinessID   int       `json:"business_id"`
	Title        string    `json:"title"`
	IsFlash      bool      `json:"is_flash"`
	Status       string    `json:"status"`
	OptimalScore int       `json:"optimal_score"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateCampaignRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	IsFlash bool   `json:"is_flash"`
}

type UpdateCampaignRequest struct {
	Title        *string `json:"title"`
	Status       *string `json:"status"`
	OptimalScore *int    `json:"optimal_score"`
}

type CampaignFilter struct {
	BusinessID int
	Status     string
	Limit      int
	Offset     int
}
