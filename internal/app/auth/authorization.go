package auth

import (
	"context"
	"errors"

	"github.com/zedhire/zedhire/internal/app/models"
	"github.com/zedhire/zedhire/internal/app/repositories"
	"github.com/zedhire/zedhire/internal/pkg/apperrors"
	"github.com/zedhire/zedhire/internal/pkg/logger"
)

// AuthorizationService handles authorization operations
type AuthorizationService struct {
	userRepo repositories.IUserRepository
	jobRepo  repositories.IJobRepository
	appRepo  repositories.IApplicationRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo repositories.IUserRepository, jobRepo repositories.IJobRepository, appRepo repositories.IApplicationRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		appRepo:  appRepo,
	}
}

// IsAdmin checks if the user has the admin role
func (s *AuthorizationService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting user by ID in IsAdmin")
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}

// IsJobOwner checks if the user owns the given job
func (s *AuthorizationService) IsJobOwner(ctx context.Context, jobID, userID int64) (bool, error) {
	job, err := s.jobRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return false, err
	}
	return job.RecruiterID == userID, nil
}

// ValidateJobOwnership validates that the user owns the job. Admins pass
// the check so they can manage listings on a recruiter's behalf.
func (s *AuthorizationService) ValidateJobOwnership(ctx context.Context, jobID, userID int64) error {
	isOwner, err := s.IsJobOwner(ctx, jobID, userID)
	if err != nil {
		return err
	}
	if isOwner {
		return nil
	}

	isAdmin, err := s.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if isAdmin {
		return nil
	}

	return apperrors.ErrPermissionDenied
}

// ValidateApplicationAccess validates that the user may act on an application.
// The owning candidate and the recruiter who owns the job both qualify.
func (s *AuthorizationService) ValidateApplicationAccess(ctx context.Context, applicationID, userID int64) error {
	app, err := s.appRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return err
	}

	if app.CandidateID == userID {
		return nil
	}

	return s.ValidateJobOwnership(ctx, app.JobID, userID)
}

// ValidateApplicationDecision validates that the user may change the status of
// an application. Only the recruiter owning the job (or an admin) qualifies.
func (s *AuthorizationService) ValidateApplicationDecision(ctx context.Context, applicationID, userID int64) (*models.Application, error) {
	app, err := s.appRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if err := s.ValidateJobOwnership(ctx, app.JobID, userID); err != nil {
		return nil, err
	}

	return app, nil
}
