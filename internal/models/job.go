package models

import "time"

const (
	JobStatusPending   = "pending"
	JobStatusPublished = "published"
	JobStatusRejected  = "rejected"
	JobStatusExpired   = "expired"
)

const (
	SalaryTypeVND        = "vnd"
	SalaryTypeUSD        = "usd"
	SalaryTypeNegotiable = "deal"
)

const (
	JobTypeFullTime = "full_time"
	JobTypePartTime = "part_time"
)

type Job struct {
	ID                 int       `json:"id"`
	BusinessID         int       `json:"business_id"`
	CampaignID         int       `json:"campaign_id"`
	Title              string    `json:"title"`
	Description        string    `json:"job_description"`
	Requirement        string    `json:"job_requirement"`
	Benefit            string    `json:"job_benefit"`
	Location           string    `json:"job_location"`
	MinSalary          int       `json:"min_salary"`
	MaxSalary          int       `json:"max_salary"`
	SalaryType         string    `json:"salary_type"`
	Quantity           int       `json:"quantity"`
	FullNameContact    string    `json:"full_name_contact"`
	PhoneNumberContact string    `json:"phone_number_contact"`
	EmailContact       string    `json:"email_contact"`
	EmploymentType     string    `json:"employment_type"`
	GenderRequirement  string    `json:"gender_requirement"`
	Deadline           time.Time `json:"deadline"`
	Status             string    `json:"status"`
	CategoryIDs        []int     `json:"category_ids,omitempty"`
	SkillIDs           []int     `json:"skill_ids,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type CreateJobRequest struct {
	CampaignID         int    `json:"campaign_id" binding:"required"`
	Title              string `json:"title" binding:"required,max=255"`
	Description        string `json:"job_description" binding:"required,max=500"`
	Requirement        string `json:"job_requirement" binding:"required,max=500"`
	Benefit            string `json:"job_benefit" binding:"required,max=500"`
	Location           string `json:"job_location" binding:"required,max=255"`
	MinSalary          int    `json:"min_salary"`
	MaxSalary          int    `json:"max_salary"`
	SalaryType         string `json:"salary_type"`
	Quantity           int    `json:"quantity"`
	FullNameContact    string `json:"full_name_contact" binding:"required,max=50"`
	PhoneNumberContact string `json:"phone_number_contact" binding:"required,max=10"`
	EmailContact       string `json:"email_contact" binding:"required,email"`
	EmploymentType     string `json:"employment_type"`
	GenderRequirement  string `json:"gender_requirement"`
	Deadline           string `json:"deadline" binding:"required"` // YYYY-MM-DD
	CategoryIDs        []int  `json:"category_ids"`
	SkillIDs           []int  `json:"skill_ids"`
}

type UpdateJobRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"job_description"`
	Requirement *string `json:"job_requirement"`
	Benefit     *string `json:"job_benefit"`
	Location    *string `json:"job_location"`
	MinSalary   *int    `json:"min_salary"`
	MaxSalary   *int    `json:"max_salary"`
	Quantity    *int    `json:"quantity"`
	Deadline    *string `json:"deadline"`
}

type JobFilter struct {
	BusinessID int
	CampaignID int
	Status     string
	Limit      int
	Offset     int
}
