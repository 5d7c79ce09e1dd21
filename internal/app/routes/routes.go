package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/zedhire/zedhire/internal/app/controllers"
	"github.com/zedhire/zedhire/internal/app/models"
	"github.com/zedhire/zedhire/internal/app/models/dto"
	"github.com/zedhire/zedhire/internal/middleware"
	"github.com/zedhire/zedhire/internal/pkg/notify"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	jobController *controllers.JobController,
	candidateController *controllers.CandidateController,
	recruiterController *controllers.RecruiterController,
	adminController *controllers.AdminController,
	notifyHub *notify.Hub,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Public job board ---
	// Optional auth lets owners and admins see their own unpublished jobs
	jobs := v1.Group("/jobs")
	jobs.Use(authMiddleware.OptionalJWTAuth())
	{
		jobs.GET("", jobController.ListJobs)
		jobs.GET("/:id", jobController.GetJob)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.GetMe)

		// Visible to the owning candidate and the job's recruiter; the
		// service enforces access, so no role gate here
		authenticated.GET("/applications/:id", candidateController.GetApplication)

		// Candidate routes
		candidates := authenticated.Group("")
		candidates.Use(authMiddleware.RoleRequired(string(models.RoleCandidate)))
		{
			candidates.GET("/candidates/me", candidateController.GetProfile)
			candidates.PUT("/candidates/me", candidateController.UpdateProfile)
			candidates.POST("/candidates/me/resume", candidateController.UploadResume)
			candidates.GET("/candidates/me/stats", candidateController.GetStats)
			candidates.GET("/candidates/me/applications", candidateController.ListMyApplications)
			candidates.GET("/candidates/me/saved-jobs", candidateController.ListSavedJobs)

			candidates.POST("/jobs/:id/apply", candidateController.Apply)
			candidates.POST("/jobs/:id/save", candidateController.SaveJob)
			candidates.DELETE("/jobs/:id/save", candidateController.UnsaveJob)
		}

		// Recruiter profile and dashboard routes. Admins have no recruiter
		// profile, so these stay recruiter-only.
		recruiters := authenticated.Group("")
		recruiters.Use(authMiddleware.RoleRequired(string(models.RoleRecruiter)))
		{
			recruiters.GET("/recruiters/me", recruiterController.GetProfile)
			recruiters.PUT("/recruiters/me", recruiterController.UpdateProfile)
			recruiters.GET("/recruiters/me/stats", recruiterController.GetStats)
			recruiters.GET("/recruiters/me/events", notifyHub.HandleConnection)
		}

		// Job management routes (admins may manage jobs on recruiters' behalf)
		jobManagement := authenticated.Group("")
		jobManagement.Use(authMiddleware.RoleRequired(string(models.RoleRecruiter), string(models.RoleAdmin)))
		{
			jobManagement.GET("/recruiters/me/jobs", jobController.ListMyJobs)

			jobManagement.POST("/jobs", jobController.CreateJob)
			jobManagement.PUT("/jobs/:id", jobController.UpdateJob)
			jobManagement.PATCH("/jobs/:id/status", jobController.UpdateJobStatus)
			jobManagement.DELETE("/jobs/:id", jobController.DeleteJob)
			jobManagement.GET("/jobs/:id/applications", recruiterController.ListApplicants)

			jobManagement.PATCH("/applications/:id/status", recruiterController.UpdateApplicationStatus)
		}

		// Admin routes
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.GET("/recruiters/pending", adminController.ListPendingRecruiters)
			admin.POST("/recruiters/:id/approve", adminController.ApproveRecruiter)
			admin.POST("/recruiters/:id/reject", adminController.RejectRecruiter)
			admin.POST("/recruiters/:id/suspend", adminController.SuspendRecruiter)
			admin.DELETE("/recruiters/:id/suspend", adminController.UnsuspendRecruiter)
			admin.POST("/jobs", adminController.CreateJob)
			admin.GET("/stats", adminController.GetStats)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go
}
