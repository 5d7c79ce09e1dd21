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

// AdminController handles admin operations
type AdminController struct {
	adminService services.AdminService
	jobService   services.JobService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, jobService services.JobService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		jobService:   jobService,
		logger:       logger,
	}
}

// ListPendingRecruiters returns the recruiter approval queue
// @Summary List pending recruiters
// @Description Returns recruiters awaiting approval, oldest signup first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse "Pending recruiters with pagination"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/recruiters/pending [get]
func (c *AdminController) ListPendingRecruiters(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	pending, pagination, err := c.adminService.ListPendingRecruiters(ctx.Request.Context(), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{
		"recruiters": pending,
		"pagination": pagination,
	}})
}

// ApproveRecruiter approves a pending recruiter
// @Summary Approve a recruiter
// @Description Approves a recruiter and notifies them by email. Their published jobs become publicly visible.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recruiter user ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Recruiter approved"
// @Failure 404 {object} dto.ErrorResponse "Recruiter not found"
// @Router /admin/recruiters/{id}/approve [post]
func (c *AdminController) ApproveRecruiter(ctx *gin.Context) {
	recruiterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.ApproveRecruiter(ctx.Request.Context(), recruiterID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Recruiter approved"}})
}

// RejectRecruiter rejects a pending recruiter
// @Summary Reject a recruiter
// @Description Rejects a recruiter and notifies them by email. Their listings stay hidden.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recruiter user ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Recruiter rejected"
// @Failure 404 {object} dto.ErrorResponse "Recruiter not found"
// @Router /admin/recruiters/{id}/reject [post]
func (c *AdminController) RejectRecruiter(ctx *gin.Context) {
	recruiterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.RejectRecruiter(ctx.Request.Context(), recruiterID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Recruiter rejected"}})
}

// SuspendRecruiter suspends a recruiter
// @Summary Suspend a recruiter
// @Description Suspends a recruiter, hiding all their listings from the public board
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recruiter user ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Suspension updated"
// @Failure 404 {object} dto.ErrorResponse "Recruiter not found"
// @Router /admin/recruiters/{id}/suspend [post]
func (c *AdminController) SuspendRecruiter(ctx *gin.Context) {
	recruiterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.SuspendRecruiter(ctx.Request.Context(), recruiterID, true); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Recruiter suspended"}})
}

// UnsuspendRecruiter lifts a recruiter's suspension
// @Summary Unsuspend a recruiter
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recruiter user ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Suspension lifted"
// @Failure 404 {object} dto.ErrorResponse "Recruiter not found"
// @Router /admin/recruiters/{id}/suspend [delete]
func (c *AdminController) UnsuspendRecruiter(ctx *gin.Context) {
	recruiterID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.SuspendRecruiter(ctx.Request.Context(), recruiterID, false); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Recruiter suspension lifted"}})
}

// CreateJob creates a job on behalf of a recruiter
// @Summary Create a job for a recruiter
// @Description Creates a job posting owned by the given recruiter
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AdminCreateJobRequest true "Job details with target recruiter"
// @Success 201 {object} dto.APIResponse{data=dto.JobDetailResponse} "Job created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or target is not a recruiter"
// @Failure 404 {object} dto.ErrorResponse "Recruiter not found"
// @Router /admin/jobs [post]
func (c *AdminController) CreateJob(ctx *gin.Context) {
	var req dto.AdminCreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.jobService.AdminCreateJob(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: job})
}

// GetStats returns the admin dashboard counters
// @Summary Get platform stats
// @Description Returns aggregate user, job, application and pending recruiter counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AdminStatsResponse} "Platform stats"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.adminService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats})
}
