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

// RecruiterController handles recruiter profile and applicant triage operations
type RecruiterController struct {
	recruiterService   services.RecruiterService
	applicationService services.ApplicationService
	logger             zerolog.Logger
}

// NewRecruiterController creates a new RecruiterController
func NewRecruiterController(
	recruiterService services.RecruiterService,
	applicationService services.ApplicationService,
	logger zerolog.Logger,
) *RecruiterController {
	return &RecruiterController{
		recruiterService:   recruiterService,
		applicationService: applicationService,
		logger:             logger,
	}
}

// GetProfile returns the recruiter's own profile
// @Summary Get own recruiter profile
// @Tags recruiters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RecruiterProfileResponse} "Recruiter profile"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /recruiters/me [get]
func (c *RecruiterController) GetProfile(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.recruiterService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// UpdateProfile updates the recruiter's own profile
// @Summary Update own recruiter profile
// @Description Updates company details. Approval and suspension flags are admin-only.
// @Tags recruiters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateRecruiterProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.RecruiterProfileResponse} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /recruiters/me [put]
func (c *RecruiterController) UpdateProfile(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateRecruiterProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.recruiterService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// GetStats returns the recruiter dashboard summary
// @Summary Get recruiter dashboard stats
// @Tags recruiters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RecruiterStatsResponse} "Dashboard summary"
// @Router /recruiters/me/stats [get]
func (c *RecruiterController) GetStats(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	stats, err := c.recruiterService.GetStats(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats})
}

// ListApplicants returns the applications for one of the recruiter's jobs
// @Summary List applicants for a job
// @Description Returns applications with candidate details and screening answers. Owner or admin only.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse "Applicants with pagination"
// @Failure 403 {object} dto.ErrorResponse "Not the job owner"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id}/applications [get]
func (c *RecruiterController) ListApplicants(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	page, pageSize := helpers.ParsePaginationParams(ctx)

	applicants, pagination, err := c.applicationService.ListApplicants(ctx.Request.Context(), jobID, userID, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{
		"applications": applicants,
		"pagination":   pagination,
	}})
}

// UpdateApplicationStatus moves an application through the triage workflow
// @Summary Update application status
// @Description Moves an application between pending, shortlisted, rejected and hired. Hired and rejected are terminal.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Status updated"
// @Failure 403 {object} dto.ErrorResponse "Not the job owner"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid status transition"
// @Router /applications/{id}/status [patch]
func (c *RecruiterController) UpdateApplicationStatus(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		return
	}

	applicationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.applicationService.UpdateStatus(ctx.Request.Context(), applicationID, userID, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Application status updated"}})
}
