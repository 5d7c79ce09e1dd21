package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/zedhire/zedhire/internal/app/models/dto"
	"github.com/zedhire/zedhire/internal/app/repositories"
)

// RecruiterService handles recruiter profile operations
type RecruiterService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.RecruiterProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateRecruiterProfileRequest) (*dto.RecruiterProfileResponse, error)
	GetStats(ctx context.Context, userID int64) (*dto.RecruiterStatsResponse, error)
}

type recruiterService struct {
	recruiterRepo repositories.IRecruiterRepository
	userRepo      repositories.IUserRepository
	jobRepo       repositories.IJobRepository
	appRepo       repositories.IApplicationRepository
	logger        zerolog.Logger
}

// NewRecruiterService creates a new RecruiterService
func NewRecruiterService(
	recruiterRepo repositories.IRecruiterRepository,
	userRepo repositories.IUserRepository,
	jobRepo repositories.IJobRepository,
	appRepo repositories.IApplicationRepository,
	logger zerolog.Logger,
) RecruiterService {
	return &recruiterService{
		recruiterRepo: recruiterRepo,
		userRepo:      userRepo,
		jobRepo:       jobRepo,
		appRepo:       appRepo,
		logger:        logger,
	}
}

// GetProfile returns a recruiter's profile
func (s *recruiterService) GetProfile(ctx context.Context, userID int64) (*dto.RecruiterProfileResponse, error) {
	profile, err := s.recruiterRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapRecruiterProfile(profile), nil
}

// UpdateProfile updates a recruiter's company details. Approval and
// suspension flags can only be changed through the admin endpoints.
func (s *recruiterService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateRecruiterProfileRequest) (*dto.RecruiterProfileResponse, error) {
	profile, err := s.recruiterRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.CompanyName = strings.TrimSpace(req.CompanyName)
	profile.CompanyWebsite = req.CompanyWebsite

	if err := s.recruiterRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.FullName); name != "" && (profile.User == nil || name != profile.User.FullName) {
		if err := s.userRepo.UpdateFullName(ctx, userID, name); err != nil {
			return nil, err
		}
		if profile.User != nil {
			profile.User.FullName = name
		}
	}

	return mapRecruiterProfile(profile), nil
}

// GetStats returns the recruiter dashboard summary
func (s *recruiterService) GetStats(ctx context.Context, userID int64) (*dto.RecruiterStatsResponse, error) {
	profile, err := s.recruiterRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobCount, publishedCount, err := s.jobRepo.CountJobsByRecruiter(ctx, userID)
	if err != nil {
		return nil, err
	}

	applicationCount, err := s.appRepo.CountByRecruiter(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.RecruiterStatsResponse{
		JobCount:         jobCount,
		PublishedCount:   publishedCount,
		ApplicationCount: applicationCount,
		IsApproved:       profile.IsApproved,
	}, nil
}
