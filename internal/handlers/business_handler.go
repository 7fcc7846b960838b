package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobport/internal/models"
	"jobport/internal/services"
)

type BusinessHandler struct {
	businesses services.BusinessService
}

func NewBusinessHandler(businesses services.BusinessService) *BusinessHandler {
	return &BusinessHandler{businesses: businesses}
}

// @Summary      Register business
// @Description  Creates a recruiter account. Province and district must exist.
// @Tags         Business
// @Accept       json
// @Produce      json
// @Param        request  body      models.RegisterBusinessRequest  true  "Account data"
// @Success      201      {object}  models.Business
// @Failure      400      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /business/register [post]
func (h *BusinessHandler) Register(c *gin.Context) {
	var req models.RegisterBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.businesses.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		case errors.Is(err, services.ErrProvinceNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Province not found"})
		case errors.Is(err, services.ErrDistrictNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "District not found"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	log.Printf("[business][register] created business_id=%d", b.ID)
	c.JSON(http.StatusCreated, b)
}

// @Summary      Own business profile
// @Tags         Business
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Business
// @Failure      404  {object}  map[string]string
// @Router       /business/me [get]
func (h *BusinessHandler) GetMe(c *gin.Context) {
	id, _ := getIntFromCtx(c, "account_id")
	b, err := h.businesses.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      Update own business profile
// @Tags         Business
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.UpdateBusinessRequest  true  "Fields to change"
// @Success      200      {object}  models.Business
// @Failure      400      {object}  map[string]string
// @Router       /business/me [put]
func (h *BusinessHandler) UpdateMe(c *gin.Context) {
	var req models.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, _ := getIntFromCtx(c, "account_id")

	b, err := h.businesses.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		case errors.Is(err, services.ErrProvinceNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Province not found"})
		case errors.Is(err, services.ErrDistrictNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "District not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      List businesses (admin)
// @Tags         Business
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size"
// @Param        offset  query     int  false  "Offset"
// @Success      200     {array}   models.Business
// @Router       /business [get]
func (h *BusinessHandler) List(c *gin.Context) {
	limit := queryInt(c, "limit", 10)
	offset := queryInt(c, "offset", 0)
	list, err := h.businesses.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Business count (admin)
// @Tags         Business
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int
// @Router       /business/count [get]
func (h *BusinessHandler) GetCount(c *gin.Context) {
	count, err := h.businesses.GetCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// @Summary      Approve or reject business (admin)
// @Description  Sets or clears the company-verified flag on a business account
// @Tags         Business
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int     true  "Business ID"
// @Param        request  body      object  true  "Decision"
// @Success      200      {object}  models.Business
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /admin/business/{id}/approve [post]
func (h *BusinessHandler) Approve(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req struct {
		Approve *bool `json:"approve" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.businesses.Approve(id, *req.Approve)
	if err != nil {
		if errors.Is(err, services.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "approval failed"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      Delete business (admin)
// @Tags         Business
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Business ID"
// @Success      200  {object}  map[string]string
// @Router       /business/{id} [delete]
func (h *BusinessHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.businesses.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business deleted"})
}
