package services

import (
	"errors"
	"time"

	"jobport/internal/models"
	"jobport/internal/repositories"
)

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrCampaignHasJob  = errors.New("campaign already has a job")
	ErrInvalidDeadline = errors.New("invalid deadline")
	ErrBadTransition   = errors.New("invalid status transition")
)

type JobService interface {
	Create(businessID int, req models.CreateJobRequest) (*models.Job, error)
	GetByID(id int) (*models.Job, error)
	Update(businessID, id int, req models.UpdateJobRequest) (*models.Job, error)
	Delete(businessID, id int) error
	List(filter models.JobFilter) ([]*models.Job, error)
	// Approve moves a pending job to published or rejected (admin only;
	// enforced at the route level).
	Approve(id int, approve bool) (*models.Job, error)
}

type jobService struct {
	repo      repositories.JobRepository
	campaigns repositories.CampaignRepository
}

func NewJobService(repo repositories.JobRepository, campaigns repositories.CampaignRepository) JobService {
	return &jobService{repo: repo, campaigns: campaigns}
}

func (s *jobService) Create(businessID int, req models.CreateJobRequest) (*models.Job, error) {
	campaign, err := s.campaigns.GetByID(req.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	if campaign.BusinessID != businessID {
		return nil, ErrNotOwner
	}
	existing, err := s.repo.GetByCampaignID(req.CampaignID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCampaignHasJob
	}

	deadline, err := time.Parse("2006-01-02", req.Deadline)
	if err != nil || deadline.Before(time.Now()) {
		return nil, ErrInvalidDeadline
	}

	salaryType := req.SalaryType
	if salaryType == "" {
		salaryType = models.SalaryTypeVND
	}
	employmentType := req.EmploymentType
	if employmentType == "" {
		employmentType = models.JobTypeFullTime
	}
	gender := req.GenderRequirement
	if gender == "" {
		gender = "other"
	}
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	j := &models.Job{
		BusinessID:         businessID,
		CampaignID:         req.CampaignID,
		Title:              req.Title,
		Description:        req.Description,
		Requirement:        req.Requirement,
		Benefit:            req.Benefit,
		Location:           req.Location,
		MinSalary:          req.MinSalary,
		MaxSalary:          req.MaxSalary,
		SalaryType:         salaryType,
		Quantity:           quantity,
		FullNameContact:    req.FullNameContact,
		PhoneNumberContact: req.PhoneNumberContact,
		EmailContact:       req.EmailContact,
		EmploymentType:     employmentType,
		GenderRequirement:  gender,
		Deadline:           deadline,
		Status:             models.JobStatusPending,
		CategoryIDs:        req.CategoryIDs,
		SkillIDs:           req.SkillIDs,
	}
	if err := s.repo.Create(j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *jobService) GetByID(id int) (*models.Job, error) {
	j, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, ErrJobNotFound
	}
	return j, nil
}

func (s *jobService) Update(businessID, id int, req models.UpdateJobRequest) (*models.Job, error) {
	j, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, ErrJobNotFound
	}
	if j.BusinessID != businessID {
		return nil, ErrNotOwner
	}

	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Requirement != nil {
		j.Requirement = *req.Requirement
	}
	if req.Benefit != nil {
		j.Benefit = *req.Benefit
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.MinSalary != nil {
		j.MinSalary = *req.MinSalary
	}
	if req.MaxSalary != nil {
		j.MaxSalary = *req.MaxSalary
	}
	if req.Quantity != nil {
		j.Quantity = *req.Quantity
	}
	if req.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return nil, ErrInvalidDeadline
		}
		j.Deadline = deadline
	}
	if err := s.repo.Update(j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *jobService) Delete(businessID, id int) error {
	j, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if j == nil {
		return ErrJobNotFound
	}
	if j.BusinessID != businessID {
		return ErrNotOwner
	}
	return s.repo.Delete(id)
}

func (s *jobService) List(filter models.JobFilter) ([]*models.Job, error) {
	return s.repo.List(filter)
}

func (s *jobService) Approve(id int, approve bool) (*models.Job, error) {
	j, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, ErrJobNotFound
	}
	if j.Status != models.JobStatusPending {
		return nil, ErrBadTransition
	}
	status := models.JobStatusRejected
	if approve {
		status = models.JobStatusPublished
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	j.Status = status
	return j, nil
}
