package models

import "time"

type Company struct {
	ID          int       `json:"id"`
	BusinessID  int       `json:"business_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Type        string    `json:"type"`
	Website     string    `json:"website,omitempty"`
	Address     string    `json:"address,omitempty"`
	Scale       string    `json:"scale,omitempty"`
	TaxCode     string    `json:"tax_code,omitempty"`
	FieldIDs    []int     `json:"field_ids,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Type        string `json:"type"`
	Website     string `json:"website"`
	Address     string `json:"address"`
	Scale       string `json:"scale"`
	TaxCode     string `json:"tax_code"`
	FieldIDs    []int  `json:"field_ids"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Type        *string `json:"type"`
	Website     *string `json:"website"`
	Address     *string `json:"address"`
	Scale       *string `json:"scale"`
	TaxCode     *string `json:"tax_code"`
	FieldIDs    []int   `json:"field_ids"`
}
