package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/zedhire/zedhire/internal/app/models"
	"github.com/zedhire/zedhire/internal/app/models/dto"
	"github.com/zedhire/zedhire/internal/app/services"
	"github.com/zedhire/zedhire/internal/middleware"
	"github.com/zedhire/zedhire/internal/pkg/helpers"
)

// JobController handles job posting operations
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

// parseIDParam parses a path parameter as an int64 ID
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid "+name+" parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// viewerFromContext reads the optional authenticated viewer from the context.
// Public endpoints run without the auth middleware, so both values may be absent.
func viewerFromContext(ctx *gin.Context) (int64, models.RoleType) {
	var viewerID int64
	var viewerRole models.RoleType

	if v, exists := ctx.Get("userID"); exists {
		if id, ok := v.(int64); ok {
			viewerID = id
		}
	}
	if v, exists := ctx.Get("role"); exists {
		if role, ok := v.(string); ok {
			viewerRole = models.RoleType(role)
		}
	}

	return viewerID, viewerRole
}

// ListJobs returns the public job board
// @Summary List published jobs
// @Description Returns published jobs from approved recruiters, filterable by title, location and job type
// @Tags jobs
// @Produce json
// @Param q query string false "Title search term"
// @Param location query string false "Location filter"
// @Param jobType query string false "Job type filter"
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.JobListResponse} "Job listings"
// @Router /jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	var filter dto.JobFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	jobs, err := c.jobService.ListPublicJobs(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: jobs})
}

// GetJob returns a single job with its screening questions
// @Summary Get job details
// @Description Returns a job with screening questions. Unpublished jobs are only visible to their owner and admins.
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.JobDetailResponse} "Job details"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	viewerID, viewerRole := viewerFromContext(ctx)

	job, err := c.jobService.GetJob(ctx.Request.Context(), jobID, viewerID, viewerRole)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: job})
}

// CreateJob creates a job posting
// @Summary Create a job posting
// @Description Creates a job with optional screening questions. New jobs default to drafted status.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job details"
// @Success 201 {object} dto.APIResponse{data=dto.JobDetailResponse} "Job created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Not a recruiter"
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.jobService.CreateJob(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: job})
}

// UpdateJob updates a job posting
// @Summary Update a job posting
// @Description Updates a job's content. Only the owning recruiter or an admin may edit.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.UpdateJobRequest true "Updated job details"
// @Success 200 {object} dto.APIResponse{data=dto.JobDetailResponse} "Job updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Not the job owner"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [put]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.jobService.UpdateJob(ctx.Request.Context(), jobID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: job})
}

// UpdateJobStatus changes a job's lifecycle status
// @Summary Update job status
// @Description Moves a job between drafted, published and closed
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.UpdateJobStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 403 {object} dto.ErrorResponse "Not the job owner"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id}/status [patch]
func (c *JobController) UpdateJobStatus(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.jobService.UpdateJobStatus(ctx.Request.Context(), jobID, userID, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Job status updated"}})
}

// DeleteJob closes a job posting
// @Summary Close a job posting
// @Description Closes the job instead of deleting it so existing applications are preserved
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Job closed"
// @Failure 403 {object} dto.ErrorResponse "Not the job owner"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.jobService.CloseJob(ctx.Request.Context(), jobID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Job closed"}})
}

// ListMyJobs returns the authenticated recruiter's jobs
// @Summary List own job postings
// @Description Returns the recruiter's jobs in every status, newest first
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.JobListResponse} "Own jobs"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /recruiters/me/jobs [get]
func (c *JobController) ListMyJobs(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	page, pageSize := helpers.ParsePaginationParams(ctx)

	jobs, err := c.jobService.ListMyJobs(ctx.Request.Context(), userID, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: jobs})
}
