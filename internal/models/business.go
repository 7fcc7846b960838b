package models

import "time"

// Business is a manager account that owns a company, campaigns and jobs.
// Email verification state is owned by the verify service.
type Business struct {
	ID           int    `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	PhoneNumber  string `json:"phone_number"`
	Gender       string `json:"gender"`
	CompanyName  string `json:"company_name"`
	WorkPosition string `json:"work_position"`
	WorkLocation string `json:"work_location,omitempty"`
	ProvinceID   int    `json:"province_id"`
	DistrictID   *int   `json:"district_id,omitempty"`
	Role         string `json:"role"`
	IsActive     bool   `json:"is_active"`

	IsVerifiedEmail   bool `json:"is_verified_email"`
	IsVerifiedPhone   bool `json:"is_verified_phone"`
	IsVerifiedCompany bool `json:"is_verified_company"`

	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type RegisterBusinessRequest struct {
	FullName     string `json:"full_name" binding:"required,min=3,max=50"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8,max=50"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	Gender       string `json:"gender"`
	CompanyName  string `json:"company_name" binding:"required"`
	WorkPosition string `json:"work_position" binding:"required"`
	WorkLocation string `json:"work_location"`
	ProvinceID   int    `json:"province_id" binding:"required"`
	DistrictID   *int   `json:"district_id"`
}

type UpdateBusinessRequest struct {
	FullName     *string `json:"full_name"`
	PhoneNumber  *string `json:"phone_number"`
	Gender       *string `json:"gender"`
	CompanyName  *string `json:"company_name"`
	WorkPosition *string `json:"work_position"`
	WorkLocation *string `json:"work_location"`
	ProvinceID   *int    `json:"province_id"`
	DistrictID   *int    `json:"district_id"`
}
