package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/app/services"
	"github.com/yigit/alumnet/internal/middleware"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
)

// JobController handles job postings
type JobController struct {
	jobService services.JobService
	logger     zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService, logger zerolog.Logger) *JobController {
	return &JobController{
		jobService: jobService,
		logger:     logger,
	}
}

// ListActive lists active postings
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param job_type query string false "Job type" Enums(full-time, part-time, internship, contract)
// @Param company query string false "Company"
// @Param location query string false "Location"
// @Success 200 {object} dto.APIResponse{data=[]models.JobListing}
// @Failure 400 {object} dto.ErrorResponse "Invalid job type"
// @Router /jobs [get]
func (c *JobController) ListActive(ctx *gin.Context) {
	filter := models.JobFilter{
		JobType:  models.JobType(strings.TrimSpace(ctx.Query("job_type"))),
		Company:  strings.TrimSpace(ctx.Query("company")),
		Location: strings.TrimSpace(ctx.Query("location")),
	}
	if filter.JobType != "" && !filter.JobType.IsValid() {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid job type"))
		return
	}

	jobs, err := c.jobService.ListActive(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(jobs, ""))
}

// Search finds active postings by title, company or description
// @Summary Search jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search text"
// @Success 200 {object} dto.APIResponse{data=[]models.JobListing}
// @Failure 400 {object} dto.ErrorResponse "Search query is required"
// @Router /jobs/search [get]
func (c *JobController) Search(ctx *gin.Context) {
	jobs, err := c.jobService.Search(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(jobs, ""))
}

// GetByID returns one posting with its poster
// @Summary Get job
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=models.JobListing}
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (c *JobController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "job")
	if !ok {
		return
	}

	job, err := c.jobService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(job, ""))
}

// ListMine lists the caller's postings, active or not
// @Summary My jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.JobPosting}
// @Failure 403 {object} dto.ErrorResponse "Alumni only"
// @Router /jobs/my/jobs [get]
func (c *JobController) ListMine(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}

	jobs, err := c.jobService.ListMine(ctx.Request.Context(), principal.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(jobs, ""))
}

// Create posts a job
// @Summary Create job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.JobPostingRequest true "Job posting"
// @Success 201 {object} dto.APIResponse{data=models.JobPosting}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Approved alumni only"
// @Router /jobs [post]
func (c *JobController) Create(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}

	var req dto.JobPostingRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	job, err := c.jobService.Create(ctx.Request.Context(), principal.UserID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(job, "Job posted successfully"))
}

// Update replaces a posting owned by the caller
// @Summary Update job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.JobPostingRequest true "Job posting"
// @Success 200 {object} dto.APIResponse{data=models.JobPosting}
// @Failure 403 {object} dto.ErrorResponse "Not authorized to modify this job"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [put]
func (c *JobController) Update(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", "job")
	if !ok {
		return
	}

	var req dto.JobPostingRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	job, err := c.jobService.Update(ctx.Request.Context(), principal.UserID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(job, "Job updated successfully"))
}

// ToggleActive flips the active flag of a posting owned by the caller
// @Summary Toggle job status
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.JobStatusResponse}
// @Failure 403 {object} dto.ErrorResponse "Not authorized to modify this job"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id}/toggle [patch]
func (c *JobController) ToggleActive(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", "job")
	if !ok {
		return
	}

	active, err := c.jobService.ToggleActive(ctx.Request.Context(), principal.UserID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.JobStatusResponse{IsActive: active}, ""))
}

// Delete removes a posting. Owners and admins may delete.
// @Summary Delete job
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Not authorized to delete this job"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [delete]
func (c *JobController) Delete(ctx *gin.Context) {
	principal, ok := caller(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", "job")
	if !ok {
		return
	}

	if err := c.jobService.Delete(ctx.Request.Context(), principal.UserID, principal.Role, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("jobID", id).Int64("deletedBy", principal.UserID).Msg("Job deleted")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Job deleted successfully"}, ""))
}

// Stats counts postings by activity
// @Summary Job statistics
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.JobStats}
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /jobs/admin/stats [get]
func (c *JobController) Stats(ctx *gin.Context) {
	stats, err := c.jobService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}
