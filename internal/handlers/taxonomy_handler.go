package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobport/internal/models"
	"jobport/internal/services"
)

type TaxonomyHandler struct {
	taxonomy services.TaxonomyService
}

func NewTaxonomyHandler(taxonomy services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomy: taxonomy}
}

// @Summary      List provinces
// @Tags         Taxonomy
// @Produce      json
// @Success      200  {array}  models.Province
// @Router       /provinces [get]
func (h *TaxonomyHandler) ListProvinces(c *gin.Context) {
	list, err := h.taxonomy.ListProvinces()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      List districts of a province
// @Tags         Taxonomy
// @Produce      json
// @Param        id   path     int  true  "Province ID"
// @Success      200  {array}  models.District
// @Router       /provinces/{id}/districts [get]
func (h *TaxonomyHandler) ListDistricts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	list, err := h.taxonomy.ListDistricts(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      List job categories
// @Tags         Taxonomy
// @Produce      json
// @Success      200  {array}  models.Category
// @Router       /categories [get]
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	list, err := h.taxonomy.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Create job category (admin)
// @Tags         Taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.CreateNamedRequest  true  "Name and slug"
// @Success      201      {object}  models.Category
// @Router       /categories [post]
func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req models.CreateNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := h.taxonomy.CreateCategory(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// @Summary      List company fields
// @Tags         Taxonomy
// @Produce      json
// @Success      200  {array}  models.Field
// @Router       /fields [get]
func (h *TaxonomyHandler) ListFields(c *gin.Context) {
	list, err := h.taxonomy.ListFields()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Create company field (admin)
// @Tags         Taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.CreateNamedRequest  true  "Name and slug"
// @Success      201      {object}  models.Field
// @Router       /fields [post]
func (h *TaxonomyHandler) CreateField(c *gin.Context) {
	var req models.CreateNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f, err := h.taxonomy.CreateField(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, f)
}

// @Summary      List skills
// @Tags         Taxonomy
// @Produce      json
// @Success      200  {array}  models.Skill
// @Router       /skills [get]
func (h *TaxonomyHandler) ListSkills(c *gin.Context) {
	list, err := h.taxonomy.ListSkills()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Create skill (admin)
// @Tags         Taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.CreateNamedRequest  true  "Name and slug"
// @Success      201      {object}  models.Skill
// @Router       /skills [post]
func (h *TaxonomyHandler) CreateSkill(c *gin.Context) {
	var req models.CreateNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.taxonomy.CreateSkill(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, s)
}
