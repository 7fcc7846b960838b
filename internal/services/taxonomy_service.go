package services

import (
	"errors"

	"jobport/internal/models"
	"jobport/internal/repositories"
)

var (
	ErrProvinceNotFound = errors.New("province not found")
	ErrDistrictNotFound = errors.New("district not found")
)

// TaxonomyService exposes the reference data: locations, job categories,
// company fields and skills. Reads are public; creates are admin-only
// (enforced at the route level).
type TaxonomyService interface {
	ListProvinces() ([]*models.Province, error)
	ListDistricts(provinceID int) ([]*models.District, error)
	ListCategories() ([]*models.Category, error)
	CreateCategory(req models.CreateNamedRequest) (*models.Category, error)
	ListFields() ([]*models.Field, error)
	CreateField(req models.CreateNamedRequest) (*models.Field, error)
	ListSkills() ([]*models.Skill, error)
	CreateSkill(req models.CreateNamedRequest) (*models.Skill, error)
}

type taxonomyService struct {
	locations repositories.LocationRepository
	catalog   repositories.CatalogRepository
}

func NewTaxonomyService(locations repositories.LocationRepository, catalog repositories.CatalogRepository) TaxonomyService {
	return &taxonomyService{locations: locations, catalog: catalog}
}

func (s *taxonomyService) ListProvinces() ([]*models.Province, error) {
	return s.locations.ListProvinces()
}

func (s *taxonomyService) ListDistricts(provinceID int) ([]*models.District, error) {
	return s.locations.ListDistricts(provinceID)
}

func (s *taxonomyService) ListCategories() ([]*models.Category, error) {
	return s.catalog.ListCategories()
}

func (s *taxonomyService) CreateCategory(req models.CreateNamedRequest) (*models.Category, error) {
	c := &models.Category{Name: req.Name, Slug: req.Slug}
	if err := s.catalog.CreateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *taxonomyService) ListFields() ([]*models.Field, error) {
	return s.catalog.ListFields()
}

func (s *taxonomyService) CreateField(req models.CreateNamedRequest) (*models.Field, error) {
	f := &models.Field{Name: req.Name, Slug: req.Slug}
	if err := s.catalog.CreateField(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *taxonomyService) ListSkills() ([]*models.Skill, error) {
	return s.catalog.ListSkills()
}

func (s *taxonomyService) CreateSkill(req models.CreateNamedRequest) (*models.Skill, error) {
	sk := &models.Skill{Name: req.Name, Slug: req.Slug}
	if err := s.catalog.CreateSkill(sk); err != nil {
		return nil, err
	}
	return sk, nil
}
