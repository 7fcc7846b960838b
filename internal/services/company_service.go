package services

import (
	"errors"
	"strings"

	"jobport/internal/models"
	"jobport/internal/repositories"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrCompanyExists   = errors.New("business already has a company")
	ErrNotOwner        = errors.New("resource does not belong to this business")
)

type CompanyService interface {
	Create(businessID int, req models.CreateCompanyRequest) (*models.Company, error)
	GetByID(id int) (*models.Company, error)
	GetOwn(businessID int) (*models.Company, error)
	Update(businessID, id int, req models.UpdateCompanyRequest) (*models.Company, error)
	Delete(businessID, id int) error
	List(limit, offset int) ([]*models.Company, error)
}

type companyService struct {
	repo repositories.CompanyRepository
}

func NewCompanyService(repo repositories.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

// Create: one company per business account.
func (s *companyService) Create(businessID int, req models.CreateCompanyRequest) (*models.Company, error) {
	existing, err := s.repo.GetByBusinessID(businessID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCompanyExists
	}

	c := &models.Company{
		BusinessID:  businessID,
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(strings.ToLower(req.Email)),
		PhoneNumber: req.PhoneNumber,
		Type:        req.Type,
		Website:     req.Website,
		Address:     req.Address,
		Scale:       req.Scale,
		TaxCode:     req.TaxCode,
		FieldIDs:    req.FieldIDs,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *companyService) GetByID(id int) (*models.Company, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCompanyNotFound
	}
	return c, nil
}

func (s *companyService) GetOwn(businessID int) (*models.Company, error) {
	c, err := s.repo.GetByBusinessID(businessID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCompanyNotFound
	}
	return c, nil
}

func (s *companyService) Update(businessID, id int, req models.UpdateCompanyRequest) (*models.Company, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCompanyNotFound
	}
	if c.BusinessID != businessID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		c.Email = strings.TrimSpace(strings.ToLower(*req.Email))
	}
	if req.PhoneNumber != nil {
		c.PhoneNumber = *req.PhoneNumber
	}
	if req.Type != nil {
		c.Type = *req.Type
	}
	if req.Website != nil {
		c.Website = *req.Website
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.Scale != nil {
		c.Scale = *req.Scale
	}
	if req.TaxCode != nil {
		c.TaxCode = *req.TaxCode
	}
	if req.FieldIDs != nil {
		c.FieldIDs = req.FieldIDs
	}
	if err := s.repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *companyService) Delete(businessID, id int) error {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCompanyNotFound
	}
	if c.BusinessID != businessID {
		return ErrNotOwner
	}
	return s.repo.Delete(id)
}

func (s *companyService) List(limit, offset int) ([]*models.Company, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.List(limit, offset)
}
