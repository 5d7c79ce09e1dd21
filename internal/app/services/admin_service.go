package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/zedhire/zedhire/internal/app/models/dto"
	"github.com/zedhire/zedhire/internal/app/repositories"
	"github.com/zedhire/zedhire/internal/pkg/email"
	"github.com/zedhire/zedhire/internal/pkg/helpers"
)

// AdminService handles admin operations
type AdminService interface {
	ListPendingRecruiters(ctx context.Context, page, pageSize int) ([]dto.PendingRecruiterResponse, dto.PaginationInfo, error)
	ApproveRecruiter(ctx context.Context, recruiterID int64) error
	RejectRecruiter(ctx context.Context, recruiterID int64) error
	SuspendRecruiter(ctx context.Context, recruiterID int64, suspended bool) error
	GetStats(ctx context.Context) (*dto.AdminStatsResponse, error)
}

type adminService struct {
	recruiterRepo repositories.IRecruiterRepository
	userRepo      repositories.IUserRepository
	jobRepo       repositories.IJobRepository
	appRepo       repositories.IApplicationRepository
	tokenRepo     repositories.ITokenRepository
	emailService  email.EmailService
	logger        zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	recruiterRepo repositories.IRecruiterRepository,
	userRepo repositories.IUserRepository,
	jobRepo repositories.IJobRepository,
	appRepo repositories.IApplicationRepository,
	tokenRepo repositories.ITokenRepository,
	emailService email.EmailService,
	logger zerolog.Logger,
) AdminService {
	return &adminService{
		recruiterRepo: recruiterRepo,
		userRepo:      userRepo,
		jobRepo:       jobRepo,
		appRepo:       appRepo,
		tokenRepo:     tokenRepo,
		emailService:  emailService,
		logger:        logger,
	}
}

// ListPendingRecruiters returns the approval queue, oldest signup first
func (s *adminService) ListPendingRecruiters(ctx context.Context, page, pageSize int) ([]dto.PendingRecruiterResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	profiles, totalCount, err := s.recruiterRepo.GetPendingProfiles(ctx, offset, uint64(limit))
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	resp := make([]dto.PendingRecruiterResponse, 0, len(profiles))
	for _, p := range profiles {
		entry := dto.PendingRecruiterResponse{
			UserID:         p.UserID,
			CompanyName:    p.CompanyName,
			CompanyWebsite: p.CompanyWebsite,
			CreatedAt:      p.CreatedAt,
		}
		if p.User != nil {
			entry.FullName = p.User.FullName
			entry.Email = p.User.Email
		}
		resp = append(resp, entry)
	}

	return resp, helpers.NewPaginationInfo(totalCount, page, limit), nil
}

// ApproveRecruiter approves a recruiter, making their published jobs visible.
// The notification email is best-effort and never fails the approval.
func (s *adminService) ApproveRecruiter(ctx context.Context, recruiterID int64) error {
	profile, err := s.recruiterRepo.GetProfileByUserID(ctx, recruiterID)
	if err != nil {
		return err
	}

	if err := s.recruiterRepo.SetApproval(ctx, recruiterID, true); err != nil {
		return err
	}

	s.logger.Info().Int64("recruiterID", recruiterID).Str("companyName", profile.CompanyName).Msg("Recruiter approved")

	if profile.User != nil {
		if err := s.emailService.SendRecruiterApprovedEmail(profile.User.Email, profile.User.FullName, profile.CompanyName); err != nil {
			s.logger.Warn().Err(err).Int64("recruiterID", recruiterID).Msg("Failed to send approval email")
		}
	}

	return nil
}

// RejectRecruiter rejects a pending recruiter. The profile stays unapproved
// and is suspended so it leaves the pending queue and their listings remain
// hidden. An admin can lift the suspension to reconsider later.
func (s *adminService) RejectRecruiter(ctx context.Context, recruiterID int64) error {
	profile, err := s.recruiterRepo.GetProfileByUserID(ctx, recruiterID)
	if err != nil {
		return err
	}

	if err := s.recruiterRepo.SetApproval(ctx, recruiterID, false); err != nil {
		return err
	}
	if err := s.recruiterRepo.SetSuspended(ctx, recruiterID, true); err != nil {
		return err
	}

	s.logger.Info().Int64("recruiterID", recruiterID).Str("companyName", profile.CompanyName).Msg("Recruiter rejected")

	if profile.User != nil {
		if err := s.emailService.SendRecruiterRejectedEmail(profile.User.Email, profile.User.FullName, profile.CompanyName); err != nil {
			s.logger.Warn().Err(err).Int64("recruiterID", recruiterID).Msg("Failed to send rejection email")
		}
	}

	return nil
}

// SuspendRecruiter toggles a recruiter's suspension. Suspended recruiters
// keep their account but their listings disappear from the public board.
func (s *adminService) SuspendRecruiter(ctx context.Context, recruiterID int64, suspended bool) error {
	if _, err := s.recruiterRepo.GetProfileByUserID(ctx, recruiterID); err != nil {
		return err
	}

	if err := s.recruiterRepo.SetSuspended(ctx, recruiterID, suspended); err != nil {
		return err
	}

	// Suspension also ends the recruiter's sessions; access tokens lapse on
	// their own, refresh tokens are revoked here
	if suspended {
		if err := s.tokenRepo.RevokeAllUserTokens(ctx, recruiterID); err != nil {
			s.logger.Warn().Err(err).Int64("recruiterID", recruiterID).Msg("Failed to revoke suspended recruiter's tokens")
		}
	}

	s.logger.Info().Int64("recruiterID", recruiterID).Bool("suspended", suspended).Msg("Recruiter suspension updated")
	return nil
}

// GetStats returns the aggregate counts for the admin dashboard
func (s *adminService) GetStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	userCount, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	jobCount, err := s.jobRepo.CountJobs(ctx)
	if err != nil {
		return nil, err
	}

	applicationCount, err := s.appRepo.CountApplications(ctx)
	if err != nil {
		return nil, err
	}

	pendingCount, err := s.recruiterRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		UserCount:             userCount,
		JobCount:              jobCount,
		ApplicationCount:      applicationCount,
		PendingRecruiterCount: pendingCount,
	}, nil
}
