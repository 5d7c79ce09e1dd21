package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"
	"github.com/zedhire/zedhire/internal/app/models/dto"
	"github.com/zedhire/zedhire/internal/app/repositories"
	"github.com/zedhire/zedhire/internal/pkg/filestorage"
)

// CandidateService handles candidate profile operations
type CandidateService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.CandidateProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error)
	UploadResume(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*dto.ResumeUploadResponse, error)
	GetStats(ctx context.Context, userID int64) (*dto.CandidateStatsResponse, error)
}

type candidateService struct {
	candidateRepo repositories.ICandidateRepository
	userRepo      repositories.IUserRepository
	appRepo       repositories.IApplicationRepository
	savedJobRepo  repositories.ISavedJobRepository
	fileStorage   *filestorage.LocalStorage
	logger        zerolog.Logger
}

// NewCandidateService creates a new CandidateService
func NewCandidateService(
	candidateRepo repositories.ICandidateRepository,
	userRepo repositories.IUserRepository,
	appRepo repositories.IApplicationRepository,
	savedJobRepo repositories.ISavedJobRepository,
	fileStorage *filestorage.LocalStorage,
	logger zerolog.Logger,
) CandidateService {
	return &candidateService{
		candidateRepo: candidateRepo,
		userRepo:      userRepo,
		appRepo:       appRepo,
		savedJobRepo:  savedJobRepo,
		fileStorage:   fileStorage,
		logger:        logger,
	}
}

// GetProfile returns a candidate's profile
func (s *candidateService) GetProfile(ctx context.Context, userID int64) (*dto.CandidateProfileResponse, error) {
	profile, err := s.candidateRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapCandidateProfile(profile), nil
}

// UpdateProfile updates a candidate's own profile fields
func (s *candidateService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error) {
	profile, err := s.candidateRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Skills != nil {
		profile.Skills = req.Skills
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Location != nil {
		profile.Location = req.Location
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.LinkedinURL != nil {
		profile.LinkedinURL = req.LinkedinURL
	}
	if req.Education != nil {
		profile.Education = req.Education
	}
	if req.WorkHistory != nil {
		profile.WorkHistory = req.WorkHistory
	}

	if err := s.candidateRepo.UpdateProfile(ctx, profile); err != nil {
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

	return mapCandidateProfile(profile), nil
}

// UploadResume validates and stores a resume file, then records its URL on
// the candidate profile. A previously stored resume file is removed.
func (s *candidateService) UploadResume(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*dto.ResumeUploadResponse, error) {
	if err := filestorage.ValidateResume(fileHeader); err != nil {
		return nil, err
	}

	profile, err := s.candidateRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resumeURL, err := s.fileStorage.SaveFileWithPath(fileHeader, filestorage.ResumeSubPath)
	if err != nil {
		return nil, err
	}

	if err := s.candidateRepo.UpdateResumeURL(ctx, userID, resumeURL); err != nil {
		// Remove the orphaned file so storage stays consistent
		_ = s.fileStorage.DeleteFile(resumeURL)
		return nil, err
	}

	if profile.ResumeURL != nil && *profile.ResumeURL != "" {
		if err := s.fileStorage.DeleteFile(*profile.ResumeURL); err != nil {
			s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to delete previous resume file")
		}
	}

	s.logger.Info().Int64("userID", userID).Msg("Resume uploaded")

	return &dto.ResumeUploadResponse{ResumeURL: resumeURL}, nil
}

// GetStats returns the candidate dashboard summary
func (s *candidateService) GetStats(ctx context.Context, userID int64) (*dto.CandidateStatsResponse, error) {
	profile, err := s.candidateRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applicationCount, err := s.appRepo.CountByCandidate(ctx, userID)
	if err != nil {
		return nil, err
	}

	savedJobCount, err := s.savedJobRepo.CountByCandidate(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.CandidateStatsResponse{
		ApplicationCount:  applicationCount,
		SavedJobCount:     savedJobCount,
		ProfileCompletion: profile.CompletionPercentage(),
	}, nil
}
