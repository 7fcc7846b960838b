package services

import (
	"errors"

	"jobport/internal/models"
	"jobport/internal/repositories"
)

var ErrCampaignNotFound = errors.New("campaign not found")

type CampaignService interface {
	Create(businessID int, req models.CreateCampaignRequest) (*models.Campaign, error)
	GetByID(businessID, id int) (*models.Campaign, error)
	Update(businessID, id int, req models.UpdateCampaignRequest) (*models.Campaign, error)
	Delete(businessID, id int) error
	List(filter models.CampaignFilter) ([]*models.Campaign, error)
}

type campaignService struct {
	repo repositories.CampaignRepository
}

func NewCampaignService(repo repositories.CampaignRepository) CampaignService {
	return &campaignService{repo: repo}
}

func (s *campaignService) Create(businessID int, req models.CreateCampaignRequest) (*models.Campaign, error) {
	c := &models.Campaign{
		BusinessID: businessID,
		Title:      req.Title,
		IsFlash:    req.IsFlash,
		Status:     models.CampaignStatusOpen,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *campaignService) getOwned(businessID, id int) (*models.Campaign, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCampaignNotFound
	}
	if c.BusinessID != businessID {
		return nil, ErrNotOwner
	}
	return c, nil
}

func (s *campaignService) GetByID(businessID, id int) (*models.Campaign, error) {
	return s.getOwned(businessID, id)
}

func (s *campaignService) Update(businessID, id int, req models.UpdateCampaignRequest) (*models.Campaign, error) {
	c, err := s.getOwned(businessID, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		c.Title = *req.Title
	}
	if req.Status != nil {
		if *req.Status != models.CampaignStatusOpen && *req.Status != models.CampaignStatusClosed {
			return nil, errors.New("invalid status")
		}
		c.Status = *req.Status
	}
	if req.OptimalScore != nil {
		c.OptimalScore = *req.OptimalScore
	}
	if err := s.repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *campaignService) Delete(businessID, id int) error {
	if _, err := s.getOwned(businessID, id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *campaignService) List(filter models.CampaignFilter) ([]*models.Campaign, error) {
	return s.repo.List(filter)
}
