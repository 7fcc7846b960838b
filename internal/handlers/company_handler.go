package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobport/internal/models"
	"jobport/internal/services"
)

type CompanyHandler struct {
	companies services.CompanyService
}

func NewCompanyHandler(companies services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// @Summary      Create company
// @Description  Creates the company profile for the authenticated business. One company per account.
// @Tags         Companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.CreateCompanyRequest  true  "Company data"
// @Success      201      {object}  models.Company
// @Failure      400      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req models.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	businessID, _ := getIntFromCtx(c, "account_id")

	company, err := h.companies.Create(businessID, req)
	if err != nil {
		if errors.Is(err, services.ErrCompanyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Business already has a company"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, company)
}

// @Summary      Own company
// @Tags         Companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Company
// @Failure      404  {object}  map[string]string
// @Router       /companies/me [get]
func (h *CompanyHandler) GetOwn(c *gin.Context) {
	businessID, _ := getIntFromCtx(c, "account_id")
	company, err := h.companies.GetOwn(businessID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}
	c.JSON(http.StatusOK, company)
}

// @Summary      Get company by id
// @Tags         Companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  models.Company
// @Failure      404  {object}  map[string]string
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	company, err := h.companies.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}
	c.JSON(http.StatusOK, company)
}

// @Summary      List companies
// @Tags         Companies
// @Produce      json
// @Param        limit   query     int  false  "Page size"
// @Param        offset  query     int  false  "Offset"
// @Success      200     {array}   models.Company
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	limit := queryInt(c, "limit", 10)
	offset := queryInt(c, "offset", 0)
	list, err := h.companies.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Update company
// @Tags         Companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                          true  "Company ID"
// @Param        request  body      models.UpdateCompanyRequest  true  "Fields to change"
// @Success      200      {object}  models.Company
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /companies/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req models.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	businessID, _ := getIntFromCtx(c, "account_id")

	company, err := h.companies.Update(businessID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		case errors.Is(err, services.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		}
		return
	}
	c.JSON(http.StatusOK, company)
}

// @Summary      Delete company
// @Tags         Companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	businessID, _ := getIntFromCtx(c, "account_id")

	if err := h.companies.Delete(businessID, id); err != nil {
		switch {
		case errors.Is(err, services.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		case errors.Is(err, services.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}
