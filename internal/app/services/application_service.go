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
	"github.com/zedhire/zedhire/internal/pkg/notify"
)

// ApplicationService handles job applications and saved jobs
type ApplicationService interface {
	Apply(ctx context.Context, candidateID, jobID int64, req *dto.ApplyRequest) (*dto.ApplicationResponse, error)
	GetApplication(ctx context.Context, applicationID, userID int64) (*dto.ApplicationDetailResponse, error)
	ListMyApplications(ctx context.Context, candidateID int64, page, pageSize int) (*dto.ApplicationListResponse, error)
	ListApplicants(ctx context.Context, jobID, userID int64, page, pageSize int) ([]dto.ApplicantResponse, dto.PaginationInfo, error)
	UpdateStatus(ctx context.Context, applicationID, userID int64, status models.ApplicationStatus) error
	SaveJob(ctx context.Context, candidateID, jobID int64) error
	UnsaveJob(ctx context.Context, candidateID, jobID int64) error
	ListSavedJobs(ctx context.Context, candidateID int64, page, pageSize int) (*dto.SavedJobListResponse, error)
}

type applicationService struct {
	appRepo       repositories.IApplicationRepository
	jobRepo       repositories.IJobRepository
	candidateRepo repositories.ICandidateRepository
	recruiterRepo repositories.IRecruiterRepository
	savedJobRepo  repositories.ISavedJobRepository
	userRepo      repositories.IUserRepository
	authzService  *auth.AuthorizationService
	notifyHub     *notify.Hub
	logger        zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	appRepo repositories.IApplicationRepository,
	jobRepo repositories.IJobRepository,
	candidateRepo repositories.ICandidateRepository,
	recruiterRepo repositories.IRecruiterRepository,
	savedJobRepo repositories.ISavedJobRepository,
	userRepo repositories.IUserRepository,
	authzService *auth.AuthorizationService,
	notifyHub *notify.Hub,
	logger zerolog.Logger,
) ApplicationService {
	return &applicationService{
		appRepo:       appRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		recruiterRepo: recruiterRepo,
		savedJobRepo:  savedJobRepo,
		userRepo:      userRepo,
		authzService:  authzService,
		notifyHub:     notifyHub,
		logger:        logger,
	}
}

// Apply submits an application. Preconditions are checked in order: the job
// must be open for applications, the candidate must have a resume on file,
// and the candidate must not have applied before.
func (s *applicationService) Apply(ctx context.Context, candidateID, jobID int64, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	job, companyName, err := s.jobRepo.GetJobWithCompany(ctx, jobID)
	if err != nil {
		return nil, err
	}

	open, err := s.isOpenForApplications(ctx, job)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, apperrors.ErrJobNotPublished
	}

	profile, err := s.candidateRepo.GetProfileByUserID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if !profile.HasResume() {
		return nil, apperrors.ErrResumeRequired
	}

	applied, err := s.appRepo.HasApplied(ctx, candidateID, jobID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, apperrors.ErrAlreadyApplied
	}

	// Answers are matched to the job's questions; unknown question IDs are
	// dropped and unanswered questions are stored empty
	questions, err := s.jobRepo.GetQuestionsByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	answers := make([]*models.ApplicationAnswer, 0, len(questions))
	for _, q := range questions {
		answers = append(answers, &models.ApplicationAnswer{
			QuestionID: q.ID,
			AnswerText: req.Answers[q.ID],
		})
	}

	app := &models.Application{
		JobID:       jobID,
		CandidateID: candidateID,
	}
	applicationID, err := s.appRepo.CreateApplication(ctx, app, answers)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("applicationID", applicationID).
		Int64("jobID", jobID).
		Int64("candidateID", candidateID).
		Msg("Application submitted")

	s.notifyHub.Publish(&notify.Event{
		Type:          notify.EventApplicationCreated,
		RecruiterID:   job.RecruiterID,
		JobID:         jobID,
		JobTitle:      job.Title,
		ApplicationID: applicationID,
		CandidateName: profile.User.FullName,
	})

	created, err := s.appRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	return &dto.ApplicationResponse{
		ID:          created.ID,
		JobID:       jobID,
		JobTitle:    job.Title,
		CompanyName: companyName,
		Status:      created.Status,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// GetApplication returns a single application with its screening answers.
// Only the owning candidate and the job's recruiter (or an admin) may view it.
func (s *applicationService) GetApplication(ctx context.Context, applicationID, userID int64) (*dto.ApplicationDetailResponse, error) {
	if err := s.authzService.ValidateApplicationAccess(ctx, applicationID, userID); err != nil {
		return nil, err
	}

	app, err := s.appRepo.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	job, companyName, err := s.jobRepo.GetJobWithCompany(ctx, app.JobID)
	if err != nil {
		return nil, err
	}

	answersByApp, err := s.appRepo.GetAnswersByApplicationIDs(ctx, []int64{applicationID})
	if err != nil {
		return nil, err
	}

	resp := &dto.ApplicationDetailResponse{
		ApplicationResponse: dto.ApplicationResponse{
			ID:          app.ID,
			JobID:       app.JobID,
			JobTitle:    job.Title,
			CompanyName: companyName,
			Status:      app.Status,
			CreatedAt:   app.CreatedAt,
		},
		Answers: make([]dto.AnswerResponse, 0),
	}
	for _, ans := range answersByApp[applicationID] {
		resp.Answers = append(resp.Answers, dto.AnswerResponse{
			QuestionID:   ans.QuestionID,
			QuestionText: ans.QuestionText,
			AnswerText:   ans.AnswerText,
		})
	}

	return resp, nil
}

// ListMyApplications returns a candidate's applications, newest first
func (s *applicationService) ListMyApplications(ctx context.Context, candidateID int64, page, pageSize int) (*dto.ApplicationListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	apps, totalCount, err := s.appRepo.ListByCandidate(ctx, candidateID, offset, uint64(limit))
	if err != nil {
		return nil, err
	}

	resp := &dto.ApplicationListResponse{
		Applications: make([]dto.ApplicationResponse, 0, len(apps)),
		Pagination:   helpers.NewPaginationInfo(totalCount, page, limit),
	}
	for _, app := range apps {
		resp.Applications = append(resp.Applications, dto.ApplicationResponse{
			ID:          app.ID,
			JobID:       app.JobID,
			JobTitle:    app.JobTitle,
			CompanyName: app.CompanyName,
			Status:      app.Status,
			CreatedAt:   app.CreatedAt,
		})
	}

	return resp, nil
}

// ListApplicants returns the applications for a job with screening answers.
// Only the job owner or an admin may view them.
func (s *applicationService) ListApplicants(ctx context.Context, jobID, userID int64, page, pageSize int) ([]dto.ApplicantResponse, dto.PaginationInfo, error) {
	if err := s.authzService.ValidateJobOwnership(ctx, jobID, userID); err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	applicants, totalCount, err := s.appRepo.ListByJob(ctx, jobID, offset, uint64(limit))
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	applicationIDs := make([]int64, 0, len(applicants))
	for _, a := range applicants {
		applicationIDs = append(applicationIDs, a.ID)
	}

	answersByApp, err := s.appRepo.GetAnswersByApplicationIDs(ctx, applicationIDs)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	resp := make([]dto.ApplicantResponse, 0, len(applicants))
	for _, a := range applicants {
		applicant := dto.ApplicantResponse{
			ID:            a.ID,
			JobID:         a.JobID,
			CandidateID:   a.CandidateID,
			CandidateName: a.CandidateName,
			Email:         a.CandidateEmail,
			ResumeURL:     a.ResumeURL,
			Status:        a.Status,
			CreatedAt:     a.CreatedAt,
			Answers:       make([]dto.AnswerResponse, 0),
		}
		for _, ans := range answersByApp[a.ID] {
			applicant.Answers = append(applicant.Answers, dto.AnswerResponse{
				QuestionID:   ans.QuestionID,
				QuestionText: ans.QuestionText,
				AnswerText:   ans.AnswerText,
			})
		}
		resp = append(resp, applicant)
	}

	return resp, helpers.NewPaginationInfo(totalCount, page, limit), nil
}

// UpdateStatus moves an application through the triage workflow. Transitions
// are restricted: pending can be shortlisted or rejected, shortlisted can be
// rejected or hired, and hired and rejected are terminal.
func (s *applicationService) UpdateStatus(ctx context.Context, applicationID, userID int64, status models.ApplicationStatus) error {
	if !status.Valid() {
		return apperrors.ErrInvalidStatusChange
	}

	app, err := s.authzService.ValidateApplicationDecision(ctx, applicationID, userID)
	if err != nil {
		return err
	}

	if !app.Status.CanTransitionTo(status) {
		return apperrors.ErrInvalidStatusChange
	}

	if err := s.appRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return err
	}

	s.logger.Info().
		Int64("applicationID", applicationID).
		Str("from", string(app.Status)).
		Str("to", string(status)).
		Msg("Application status updated")

	return nil
}

// SaveJob bookmarks a publicly visible job for a candidate. Idempotent.
func (s *applicationService) SaveJob(ctx context.Context, candidateID, jobID int64) error {
	job, err := s.jobRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return err
	}

	open, err := s.isOpenForApplications(ctx, job)
	if err != nil {
		return err
	}
	if !open {
		return apperrors.ErrJobNotFound
	}

	return s.savedJobRepo.SaveJob(ctx, candidateID, jobID)
}

// UnsaveJob removes a bookmark. Idempotent.
func (s *applicationService) UnsaveJob(ctx context.Context, candidateID, jobID int64) error {
	return s.savedJobRepo.UnsaveJob(ctx, candidateID, jobID)
}

// ListSavedJobs returns a candidate's bookmarked jobs, newest bookmark first
func (s *applicationService) ListSavedJobs(ctx context.Context, candidateID int64, page, pageSize int) (*dto.SavedJobListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	saved, totalCount, err := s.savedJobRepo.ListByCandidate(ctx, candidateID, offset, uint64(limit))
	if err != nil {
		return nil, err
	}

	resp := &dto.SavedJobListResponse{
		Jobs:       make([]dto.JobResponse, 0, len(saved)),
		Pagination: helpers.NewPaginationInfo(totalCount, page, limit),
	}
	for _, sj := range saved {
		resp.Jobs = append(resp.Jobs, mapJob(&sj.Job, sj.CompanyName))
	}

	return resp, nil
}

// isOpenForApplications checks that a job is published and its recruiter is
// approved and not suspended
func (s *applicationService) isOpenForApplications(ctx context.Context, job *models.Job) (bool, error) {
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
