package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/zedhire/zedhire/internal/app/auth"
	"github.com/zedhire/zedhire/internal/app/models"
	"github.com/zedhire/zedhire/internal/app/models/dto"
	"github.com/zedhire/zedhire/internal/app/repositories"
	"github.com/zedhire/zedhire/internal/pkg/apperrors"
	"github.com/zedhire/zedhire/internal/pkg/helpers"
)

// JobService handles job posting operations
type JobService interface {
	ListPublicJobs(ctx context.Context, filter *dto.JobFilterRequest) (*dto.JobListResponse, error)
	GetJob(ctx context.Context, jobID, viewerID int64, viewerRole models.RoleType) (*dto.JobDetailResponse, error)
	CreateJob(ctx context.Context, recruiterID int64, req *dto.CreateJobRequest) (*dto.JobDetailResponse, error)
	AdminCreateJob(ctx context.Context, req *dto.AdminCreateJobRequest) (*dto.JobDetailResponse, error)
	UpdateJob(ctx context.Context, jobID, userID int64, req *dto.UpdateJobRequest) (*dto.JobDetailResponse, error)
	UpdateJobStatus(ctx context.Context, jobID, userID int64, status models.JobStatus) error
	CloseJob(ctx context.Context, jobID, userID int64) error
	ListMyJobs(ctx context.Context, recruiterID int64, page, pageSize int) (*dto.JobListResponse, error)
}

type jobService struct {
	jobRepo       repositories.IJobRepository
	recruiterRepo repositories.IRecruiterRepository
	userRepo      repositories.IUserRepository
	authzService  *auth.AuthorizationService
	logger        zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(
	jobRepo repositories.IJobRepository,
	recruiterRepo repositories.IRecruiterRepository,
	userRepo repositories.IUserRepository,
	authzService *auth.AuthorizationService,
	logger zerolog.Logger,
) JobService {
	return &jobService{
		jobRepo:       jobRepo,
		recruiterRepo: recruiterRepo,
		userRepo:      userRepo,
		authzService:  authzService,
		logger:        logger,
	}
}

// ListPublicJobs returns the public job board: published jobs from approved,
// non-suspended recruiters only
func (s *jobService) ListPublicJobs(ctx context.Context, filter *dto.JobFilterRequest) (*dto.JobListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	repoFilter := repositories.JobFilter{
		Query:    filter.Query,
		Location: filter.Location,
		JobType:  filter.JobType,
	}

	jobs, companies, totalCount, err := s.jobRepo.ListPublicJobs(ctx, repoFilter, offset, uint64(limit))
	if err != nil {
		return nil, err
	}

	resp := &dto.JobListResponse{
		Jobs:       make([]dto.JobResponse, 0, len(jobs)),
		Pagination: helpers.NewPaginationInfo(totalCount, filter.Page, limit),
	}
	for _, job := range jobs {
		resp.Jobs = append(resp.Jobs, mapJob(job, companies[job.ID]))
	}

	return resp, nil
}

// GetJob returns a job with its screening questions. Anonymous viewers and
// candidates only see publicly visible jobs; the owning recruiter and admins
// see the job regardless of status.
func (s *jobService) GetJob(ctx context.Context, jobID, viewerID int64, viewerRole models.RoleType) (*dto.JobDetailResponse, error) {
	job, companyName, err := s.jobRepo.GetJobWithCompany(ctx, jobID)
	if err != nil {
		return nil, err
	}

	isOwner := viewerID != 0 && job.RecruiterID == viewerID
	isAdmin := viewerRole == models.RoleAdmin

	if !isOwner && !isAdmin {
		visible, err := s.isPubliclyVisible(ctx, job)
		if err != nil {
			return nil, err
		}
		if !visible {
			// Hidden jobs are indistinguishable from missing ones
			return nil, apperrors.ErrJobNotFound
		}
	}

	questions, err := s.jobRepo.GetQuestionsByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	return &dto.JobDetailResponse{
		JobResponse: mapJob(job, companyName),
		Questions:   mapQuestions(questions),
	}, nil
}

// CreateJob creates a job posting for a recruiter. Unapproved recruiters can
// create and publish jobs; their listings stay hidden until approval.
func (s *jobService) CreateJob(ctx context.Context, recruiterID int64, req *dto.CreateJobRequest) (*dto.JobDetailResponse, error) {
	if _, err := s.recruiterRepo.GetProfileByUserID(ctx, recruiterID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.JobStatusDrafted
	}
	if !status.Valid() {
		return nil, apperrors.ErrInvalidJobStatus
	}

	job := &models.Job{
		RecruiterID:  recruiterID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		JobType:      req.JobType,
		SalaryRange:  req.SalaryRange,
		Industry:     req.Industry,
		Status:       status,
	}

	questions := make([]*models.ScreeningQuestion, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, &models.ScreeningQuestion{
			QuestionText: q.QuestionText,
			IsRequired:   q.IsRequired,
		})
	}

	jobID, err := s.jobRepo.CreateJob(ctx, job, questions)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("jobID", jobID).Int64("recruiterID", recruiterID).Str("status", string(status)).Msg("Job created")

	return s.getOwnJobDetail(ctx, jobID)
}

// AdminCreateJob creates a job on behalf of a recruiter
func (s *jobService) AdminCreateJob(ctx context.Context, req *dto.AdminCreateJobRequest) (*dto.JobDetailResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, req.RecruiterID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleRecruiter {
		return nil, apperrors.NewBadRequestError("target user is not a recruiter")
	}

	return s.CreateJob(ctx, req.RecruiterID, &req.CreateJobRequest)
}

// UpdateJob updates a job's content. Only the owner or an admin may edit.
func (s *jobService) UpdateJob(ctx context.Context, jobID, userID int64, req *dto.UpdateJobRequest) (*dto.JobDetailResponse, error) {
	if err := s.authzService.ValidateJobOwnership(ctx, jobID, userID); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.Location = req.Location
	job.JobType = req.JobType
	job.SalaryRange = req.SalaryRange
	job.Industry = req.Industry

	if err := s.jobRepo.UpdateJob(ctx, job); err != nil {
		return nil, err
	}

	// A nil Questions slice means "leave as is"; non-nil replaces the set.
	// Answers tied to the old questions are removed with them.
	if req.Questions != nil {
		questions := make([]*models.ScreeningQuestion, 0, len(req.Questions))
		for _, q := range req.Questions {
			questions = append(questions, &models.ScreeningQuestion{
				QuestionText: q.QuestionText,
				IsRequired:   q.IsRequired,
			})
		}
		if err := s.jobRepo.ReplaceQuestions(ctx, jobID, questions); err != nil {
			return nil, err
		}
	}

	return s.getOwnJobDetail(ctx, jobID)
}

// UpdateJobStatus moves a job between drafted, published and closed
func (s *jobService) UpdateJobStatus(ctx context.Context, jobID, userID int64, status models.JobStatus) error {
	if !status.Valid() {
		return apperrors.ErrInvalidJobStatus
	}

	if err := s.authzService.ValidateJobOwnership(ctx, jobID, userID); err != nil {
		return err
	}

	return s.jobRepo.UpdateJobStatus(ctx, jobID, status)
}

// CloseJob closes a job posting. Deleting keeps the row so existing
// applications stay intact.
func (s *jobService) CloseJob(ctx context.Context, jobID, userID int64) error {
	if err := s.authzService.ValidateJobOwnership(ctx, jobID, userID); err != nil {
		return err
	}

	if err := s.jobRepo.UpdateJobStatus(ctx, jobID, models.JobStatusClosed); err != nil {
		return err
	}

	s.logger.Info().Int64("jobID", jobID).Int64("userID", userID).Msg("Job closed")
	return nil
}

// ListMyJobs returns a recruiter's own jobs in every status
func (s *jobService) ListMyJobs(ctx context.Context, recruiterID int64, page, pageSize int) (*dto.JobListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	jobs, totalCount, err := s.jobRepo.ListJobsByRecruiter(ctx, recruiterID, offset, uint64(limit))
	if err != nil {
		return nil, err
	}

	resp := &dto.JobListResponse{
		Jobs:       make([]dto.JobResponse, 0, len(jobs)),
		Pagination: helpers.NewPaginationInfo(totalCount, page, limit),
	}
	for _, job := range jobs {
		resp.Jobs = append(resp.Jobs, mapJob(job, ""))
	}

	return resp, nil
}

// isPubliclyVisible applies the job board visibility rule
func (s *jobService) isPubliclyVisible(ctx context.Context, job *models.Job) (bool, error) {
	if job.Status != models.JobStatusPublished {
		return false, nil
	}

	profile, err := s.recruiterRepo.GetProfileByUserID(ctx, job.RecruiterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecruiterProfileNotFound) {
			return false, nil
		}
		return false, err
	}

	return profile.CanPublish(), nil
}

func (s *jobService) getOwnJobDetail(ctx context.Context, jobID int64) (*dto.JobDetailResponse, error) {
	job, companyName, err := s.jobRepo.GetJobWithCompany(ctx, jobID)
	if err != nil {
		return nil, err
	}

	questions, err := s.jobRepo.GetQuestionsByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	return &dto.JobDetailResponse{
		JobResponse: mapJob(job, companyName),
		Questions:   mapQuestions(questions),
	}, nil
}
