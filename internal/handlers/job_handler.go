package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobport/internal/models"
	"jobport/internal/pdf"
	"jobport/internal/services"
)

type JobHandler struct {
	jobs      services.JobService
	companies services.CompanyService
	pdfGen    pdf.Generator
}

func NewJobHandler(jobs services.JobService, companies services.CompanyService, pdfGen pdf.Generator) *JobHandler {
	return &JobHandler{jobs: jobs, companies: companies, pdfGen: pdfGen}
}

// @Summary      Create job
// @Description  Creates a pending job under one of the caller's campaigns. A campaign holds at most one job.
// @Tags         Jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.CreateJobRequest  true  "Job data"
// @Success      201      {object}  models.Job
// @Failure      400      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	businessID, _ := getIntFromCtx(c, "account_id")

	job, err := h.jobs.Create(businessID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		case errors.Is(err, services.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		case errors.Is(err, services.ErrCampaignHasJob):
			c.JSON(http.StatusConflict, gin.H{"error": "Campaign already has a job"})
		case errors.Is(err, services.ErrInvalidDeadline):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Deadline must be a future YYYY-MM-DD date"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, job)
}

// @Summary      Get job
// @Tags         Jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  models.Job
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	job, err := h.jobs.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// @Summary      List jobs
// @Description  Public listing shows published jobs only
// @Tags         Jobs
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Param        limit   query     int     false  "Page size"
// @Param        offset  query     int     false  "Offset"
// @Success      200     {array}   models.Job
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := models.JobFilter{
		Status: c.DefaultQuery("status", models.JobStatusPublished),
		Limit:  queryInt(c, "limit", 10),
		Offset: queryInt(c, "offset", 0),
	}
	list, err := h.jobs.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      List own jobs
// @Tags         Jobs
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        limit   query     int     false  "Page size"
// @Param        offset  query     int     false  "Offset"
// @Success      200     {array}   models.Job
// @Router       /jobs/mine [get]
func (h *JobHandler) ListOwn(c *gin.Context) {
	businessID, _ := getIntFromCtx(c, "account_id")
	filter := models.JobFilter{
		BusinessID: businessID,
		Status:     c.Query("status"),
		Limit:      queryInt(c, "limit", 10),
		Offset:     queryInt(c, "offset", 0),
	}
	list, err := h.jobs.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Update job
// @Tags         Jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                      true  "Job ID"
// @Param        request  body      models.UpdateJobRequest  true  "Fields to change"
// @Success      200      {object}  models.Job
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req models.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	businessID, _ := getIntFromCtx(c, "account_id")

	job, err := h.jobs.Update(businessID, id, req)
	if err != nil {
		jobError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// @Summary      Delete job
// @Tags         Jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	businessID, _ := getIntFromCtx(c, "account_id")

	if err := h.jobs.Delete(businessID, id); err != nil {
		jobError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// @Summary      Approve or reject job (admin)
// @Description  Moves a pending job to published or rejected
// @Tags         Jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int     true  "Job ID"
// @Param        request  body      object  true  "Decision"
// @Success      200      {object}  models.Job
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /jobs/{id}/approve [post]
func (h *JobHandler) Approve(c *gin.Context) {
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

	job, err := h.jobs.Approve(id, *req.Approve)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		case errors.Is(err, services.ErrBadTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Job is not pending"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "approval failed"})
		}
		return
	}
	c.JSON(http.StatusOK, job)
}

// @Summary      Export job as PDF
// @Tags         Jobs
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  int  true  "Job ID"
// @Success      200  {file}  binary
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id}/export [get]
func (h *JobHandler) ExportPDF(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	businessID, _ := getIntFromCtx(c, "account_id")

	job, err := h.jobs.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	if job.BusinessID != businessID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	companyName := ""
	if company, err := h.companies.GetOwn(businessID); err == nil {
		companyName = company.Name
	}

	data := pdf.JobSummaryData{
		JobID:          job.ID,
		Title:          job.Title,
		CompanyName:    companyName,
		Location:       job.Location,
		MinSalary:      job.MinSalary,
		MaxSalary:      job.MaxSalary,
		SalaryType:     job.SalaryType,
		Quantity:       job.Quantity,
		EmploymentType: job.EmploymentType,
		Description:    job.Description,
		Requirement:    job.Requirement,
		Benefit:        job.Benefit,
		ContactName:    job.FullNameContact,
		ContactEmail:   job.EmailContact,
		ContactPhone:   job.PhoneNumberContact,
		Deadline:       job.Deadline,
		CreatedAt:      job.CreatedAt,
	}
	out, err := h.pdfGen.GenerateJobSummary(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pdf generation failed"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="job_%d.pdf"`, job.ID))
	c.Data(http.StatusOK, "application/pdf", out)
}

func jobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, services.ErrInvalidDeadline):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Deadline must be a future YYYY-MM-DD date"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
