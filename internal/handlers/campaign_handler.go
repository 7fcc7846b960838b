package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobport/internal/models"
	"jobport/internal/services"
)

type CampaignHandler struct {
	campaigns services.CampaignService
}

func NewCampaignHandler(campaigns services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

// @Summary      Create campaign
// @Tags         Campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.CreateCampaignRequest  true  "Campaign data"
// @Success      201      {object}  models.Campaign
// @Failure      400      {object}  map[string]string
// @Router       /campaigns [post]
func (h *CampaignHandler) Create(c *gin.Context) {
	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	businessID, _ := getIntFromCtx(c, "account_id")

	campaign, err := h.campaigns.Create(businessID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// @Summary      Get campaign
// @Tags         Campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Campaign ID"
// @Success      200  {object}  models.Campaign
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/{id} [get]
func (h *CampaignHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	businessID, _ := getIntFromCtx(c, "account_id")

	campaign, err := h.campaigns.GetByID(businessID, id)
	if err != nil {
		campaignError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// @Summary      List own campaigns
// @Tags         Campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "open or closed"
// @Param        limit   query     int     false  "Page size"
// @Param        offset  query     int     false  "Offset"
// @Success      200     {array}   models.Campaign
// @Router       /campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	businessID, _ := getIntFromCtx(c, "account_id")
	filter := models.CampaignFilter{
		BusinessID: businessID,
		Status:     c.Query("status"),
		Limit:      queryInt(c, "limit", 10),
		Offset:     queryInt(c, "offset", 0),
	}
	list, err := h.campaigns.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Update campaign
// @Tags         Campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                           true  "Campaign ID"
// @Param        request  body      models.UpdateCampaignRequest  true  "Fields to change"
// @Success      200      {object}  models.Campaign
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /campaigns/{id} [put]
func (h *CampaignHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req models.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	businessID, _ := getIntFromCtx(c, "account_id")

	campaign, err := h.campaigns.Update(businessID, id, req)
	if err != nil {
		campaignError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// @Summary      Delete campaign
// @Tags         Campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Campaign ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	businessID, _ := getIntFromCtx(c, "account_id")

	if err := h.campaigns.Delete(businessID, id); err != nil {
		campaignError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted"})
}

func campaignError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCampaignNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
