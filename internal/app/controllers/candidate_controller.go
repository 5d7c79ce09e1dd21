package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/zedhire/zedhire/internal/app/models/dto"
	"github.com/zedhire/zedhire/internal/app/services"
	"github.com/zedhire/zedhire/internal/middleware"
	"github.com/zedhire/zedhire/internal/pkg/helpers"
)

// CandidateController handles candidate profile, application and saved job operations
type CandidateController struct {
	candidateService   services.CandidateService
	applicationService services.ApplicationService
	logger             zerolog.Logger
}

// NewCandidateController creates a new CandidateController
func NewCandidateController(
	candidateService services.CandidateService,
	applicationService services.ApplicationService,
	logger zerolog.Logger,
) *CandidateController {
	return &CandidateController{
		candidateService:   candidateService,
		applicationService: applicationService,
		logger:             logger,
	}
}

// GetProfile returns the candidate's own profile
// @Summary Get own candidate profile
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CandidateProfileResponse} "Candidate profile"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /candidates/me [get]
func (c *CandidateController) GetProfile(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.candidateService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// UpdateProfile updates the candidate's own profile
// @Summary Update own candidate profile
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateCandidateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.CandidateProfileResponse} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /candidates/me [put]
func (c *CandidateController) UpdateProfile(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCandidateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.candidateService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// UploadResume uploads the candidate's resume
// @Summary Upload resume
// @Description Accepts a PDF up to 5 MB. Replaces any previously uploaded resume.
// @Tags candidates
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume file (PDF)"
// @Success 200 {object} dto.APIResponse{data=dto.ResumeUploadResponse} "Resume stored"
// @Failure 400 {object} dto.ErrorResponse "File too large or not a PDF"
// @Router /candidates/me/resume [post]
func (c *CandidateController) UploadResume(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Resume file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.candidateService.UploadResume(ctx.Request.Context(), userID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// GetStats returns the candidate dashboard summary
// @Summary Get candidate dashboard stats
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CandidateStatsResponse} "Dashboard summary"
// @Router /candidates/me/stats [get]
func (c *CandidateController) GetStats(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	stats, err := c.candidateService.GetStats(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats})
}

// Apply submits an application to a job
// @Summary Apply to a job
// @Description Submits an application with optional screening answers. Requires an uploaded resume.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.ApplyRequest false "Screening answers keyed by question ID"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application submitted"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Failure 422 {object} dto.ErrorResponse "Resume missing or job not open"
// @Router /jobs/{id}/apply [post]
func (c *CandidateController) Apply(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// The body is optional; jobs without questions accept an empty payload
	req := dto.ApplyRequest{}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			errorDetail := dto.HandleValidationError(err)
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
	}

	application, err := c.applicationService.Apply(ctx.Request.Context(), userID, jobID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: application})
}

// GetApplication returns a single application with its screening answers
// @Summary Get an application
// @Description Returns an application with its screening answers. Visible to the owning candidate and the job's recruiter.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationDetailResponse} "Application"
// @Failure 403 {object} dto.ErrorResponse "Not the candidate or the job's recruiter"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id} [get]
func (c *CandidateController) GetApplication(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	applicationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	application, err := c.applicationService.GetApplication(ctx.Request.Context(), applicationID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: application})
}

// ListMyApplications returns the candidate's applications
// @Summary List own applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationListResponse} "Applications"
// @Router /candidates/me/applications [get]
func (c *CandidateController) ListMyApplications(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	page, pageSize := helpers.ParsePaginationParams(ctx)

	apps, err := c.applicationService.ListMyApplications(ctx.Request.Context(), userID, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: apps})
}

// SaveJob bookmarks a job
// @Summary Save a job
// @Description Bookmarks a job for later. Saving the same job twice is a no-op.
// @Tags saved-jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Job saved"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id}/save [post]
func (c *CandidateController) SaveJob(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.applicationService.SaveJob(ctx.Request.Context(), userID, jobID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Job saved"}})
}

// UnsaveJob removes a bookmark
// @Summary Unsave a job
// @Tags saved-jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Job unsaved"
// @Router /jobs/{id}/save [delete]
func (c *CandidateController) UnsaveJob(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.applicationService.UnsaveJob(ctx.Request.Context(), userID, jobID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Job unsaved"}})
}

// ListSavedJobs returns the candidate's saved jobs
// @Summary List saved jobs
// @Tags saved-jobs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.SavedJobListResponse} "Saved jobs"
// @Router /candidates/me/saved-jobs [get]
func (c *CandidateController) ListSavedJobs(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	page, pageSize := helpers.ParsePaginationParams(ctx)

	saved, err := c.applicationService.ListSavedJobs(ctx.Request.Context(), userID, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: saved})
}
