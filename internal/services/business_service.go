package services

import (
	"log"
	"strings"

	"jobport/internal/authz"
	"jobport/internal/models"
	"jobport/internal/repositories"
)

type BusinessService interface {
	Register(req models.RegisterBusinessRequest) (*models.Business, error)
	GetByID(id int) (*models.Business, error)
	Update(id int, req models.UpdateBusinessRequest) (*models.Business, error)
	Delete(id int) error
	List(limit, offset int) ([]*models.Business, error)
	GetCount() (int, error)
	// Approve sets or clears the company-verified flag (admin only; enforced
	// at the route level).
	Approve(id int, approve bool) (*models.Business, error)
}

type businessService struct {
	repo      repositories.BusinessRepository
	locations repositories.LocationRepository
	auth      AuthService
}

func NewBusinessService(repo repositories.BusinessRepository, locations repositories.LocationRepository, auth AuthService) BusinessService {
	return &businessService{repo: repo, locations: locations, auth: auth}
}

func (s *businessService) Register(req models.RegisterBusinessRequest) (*models.Business, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	// province/district must exist before the account is created
	province, err := s.locations.GetProvince(req.ProvinceID)
	if err != nil {
		return nil, err
	}
	if province == nil {
		return nil, ErrProvinceNotFound
	}
	if req.DistrictID != nil {
		district, err := s.locations.GetDistrict(*req.DistrictID)
		if err != nil {
			return nil, err
		}
		if district == nil {
			return nil, ErrDistrictNotFound
		}
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	b := &models.Business{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		Gender:       req.Gender,
		CompanyName:  strings.TrimSpace(req.CompanyName),
		WorkPosition: req.WorkPosition,
		WorkLocation: req.WorkLocation,
		ProvinceID:   req.ProvinceID,
		DistrictID:   req.DistrictID,
		Role:         authz.RoleBusiness,
		IsActive:     true,
	}
	if err := s.repo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *businessService) GetByID(id int) (*models.Business, error) {
	b, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBusinessNotFound
	}
	return b, nil
}

func (s *businessService) Update(id int, req models.UpdateBusinessRequest) (*models.Business, error) {
	b, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBusinessNotFound
	}
	if req.FullName != nil {
		b.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.PhoneNumber != nil {
		b.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.Gender != nil {
		b.Gender = *req.Gender
	}
	if req.CompanyName != nil {
		b.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.WorkPosition != nil {
		b.WorkPosition = *req.WorkPosition
	}
	if req.WorkLocation != nil {
		b.WorkLocation = *req.WorkLocation
	}
	if req.ProvinceID != nil {
		province, err := s.locations.GetProvince(*req.ProvinceID)
		if err != nil {
			return nil, err
		}
		if province == nil {
			return nil, ErrProvinceNotFound
		}
		b.ProvinceID = *req.ProvinceID
	}
	if req.DistrictID != nil {
		district, err := s.locations.GetDistrict(*req.DistrictID)
		if err != nil {
			return nil, err
		}
		if district == nil {
			return nil, ErrDistrictNotFound
		}
		b.DistrictID = req.DistrictID
	}
	if err := s.repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *businessService) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *businessService) List(limit, offset int) ([]*models.Business, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.List(limit, offset)
}

func (s *businessService) GetCount() (int, error) {
	return s.repo.GetCount()
}

func (s *businessService) Approve(id int, approve bool) (*models.Business, error) {
	b, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBusinessNotFound
	}
	if err := s.repo.SetVerifiedCompany(id, approve); err != nil {
		return nil, err
	}
	b.IsVerifiedCompany = approve
	log.Printf("[business][approve] business_id=%d approved=%t", id, approve)
	return b, nil
}
