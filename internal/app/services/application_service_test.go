package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/zedhire/zedhire/internal/app/models"
	"github.com/zedhire/zedhire/internal/app/models/dto"
	"github.com/zedhire/zedhire/internal/app/repositories"
	"github.com/zedhire/zedhire/internal/pkg/apperrors"
	"github.com/zedhire/zedhire/internal/pkg/notify"
)

// Stubs embed the repository interfaces so only the methods a test path
// touches need an implementation.

type stubJobRepo struct {
	repositories.IJobRepository
	job       *models.Job
	company   string
	questions []*models.ScreeningQuestion
}

func (s *stubJobRepo) GetJobWithCompany(ctx context.Context, id int64) (*models.Job, string, error) {
	if s.job == nil || s.job.ID != id {
		return nil, "", apperrors.ErrJobNotFound
	}
	return s.job, s.company, nil
}

func (s *stubJobRepo) GetQuestionsByJobID(ctx context.Context, jobID int64) ([]*models.ScreeningQuestion, error) {
	return s.questions, nil
}

type stubCandidateRepo struct {
	repositories.ICandidateRepository
	profile *models.CandidateProfile
}

func (s *stubCandidateRepo) GetProfileByUserID(ctx context.Context, userID int64) (*models.CandidateProfile, error) {
	if s.profile == nil || s.profile.UserID != userID {
		return nil, apperrors.ErrCandidateProfileNotFound
	}
	return s.profile, nil
}

type stubRecruiterRepo struct {
	repositories.IRecruiterRepository
	profile *models.RecruiterProfile
}

func (s *stubRecruiterRepo) GetProfileByUserID(ctx context.Context, userID int64) (*models.RecruiterProfile, error) {
	if s.profile == nil || s.profile.UserID != userID {
		return nil, apperrors.ErrRecruiterProfileNotFound
	}
	return s.profile, nil
}

type stubApplicationRepo struct {
	repositories.IApplicationRepository
	applied        bool
	created        *models.Application
	createdAnswers []*models.ApplicationAnswer
}

func (s *stubApplicationRepo) HasApplied(ctx context.Context, candidateID, jobID int64) (bool, error) {
	return s.applied, nil
}

func (s *stubApplicationRepo) CreateApplication(ctx context.Context, app *models.Application, answers []*models.ApplicationAnswer) (int64, error) {
	s.created = &models.Application{
		ID:          42,
		JobID:       app.JobID,
		CandidateID: app.CandidateID,
		Status:      models.ApplicationPending,
		CreatedAt:   time.Now(),
	}
	s.createdAnswers = answers
	return s.created.ID, nil
}

func (s *stubApplicationRepo) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	if s.created == nil || s.created.ID != id {
		return nil, apperrors.ErrApplicationNotFound
	}
	return s.created, nil
}

func newApplyFixture(jobStatus models.JobStatus, approved, suspended bool, resumeURL *string, applied bool) (ApplicationService, *stubApplicationRepo) {
	jobRepo := &stubJobRepo{
		job: &models.Job{
			ID:          10,
			RecruiterID: 2,
			Title:       "Backend Engineer",
			Status:      jobStatus,
		},
		company: "Acme",
		questions: []*models.ScreeningQuestion{
			{ID: 7, JobID: 10, QuestionText: "Years of Go?"},
			{ID: 9, JobID: 10, QuestionText: "Remote OK?"},
		},
	}
	candidateRepo := &stubCandidateRepo{
		profile: &models.CandidateProfile{
			UserID:    1,
			ResumeURL: resumeURL,
			User:      &models.User{ID: 1, FullName: "Jane Doe"},
		},
	}
	recruiterRepo := &stubRecruiterRepo{
		profile: &models.RecruiterProfile{
			UserID:      2,
			CompanyName: "Acme",
			IsApproved:  approved,
			IsSuspended: suspended,
		},
	}
	appRepo := &stubApplicationRepo{applied: applied}

	svc := NewApplicationService(
		appRepo, jobRepo, candidateRepo, recruiterRepo,
		nil, nil, nil,
		notify.NewHub(zerolog.Nop()),
		zerolog.Nop(),
	)
	return svc, appRepo
}

func strPtr(s string) *string { return &s }

func TestApplyPreconditions(t *testing.T) {
	tests := []struct {
		name      string
		jobStatus models.JobStatus
		approved  bool
		suspended bool
		resumeURL *string
		applied   bool
		wantErr   error
	}{
		{"drafted job", models.JobStatusDrafted, true, false, strPtr("/uploads/resumes/r.pdf"), false, apperrors.ErrJobNotPublished},
		{"closed job", models.JobStatusClosed, true, false, strPtr("/uploads/resumes/r.pdf"), false, apperrors.ErrJobNotPublished},
		{"unapproved recruiter", models.JobStatusPublished, false, false, strPtr("/uploads/resumes/r.pdf"), false, apperrors.ErrJobNotPublished},
		{"suspended recruiter", models.JobStatusPublished, true, true, strPtr("/uploads/resumes/r.pdf"), false, apperrors.ErrJobNotPublished},
		{"missing resume", models.JobStatusPublished, true, false, nil, false, apperrors.ErrResumeRequired},
		{"resume gate precedes duplicate check", models.JobStatusPublished, true, false, nil, true, apperrors.ErrResumeRequired},
		{"duplicate application", models.JobStatusPublished, true, false, strPtr("/uploads/resumes/r.pdf"), true, apperrors.ErrAlreadyApplied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, appRepo := newApplyFixture(tt.jobStatus, tt.approved, tt.suspended, tt.resumeURL, tt.applied)

			_, err := svc.Apply(context.Background(), 1, 10, &dto.ApplyRequest{})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Apply() error = %v, want %v", err, tt.wantErr)
			}
			if appRepo.created != nil {
				t.Fatal("Apply() created an application despite a failed precondition")
			}
		})
	}
}

func TestApplyUnknownJobIsNotFound(t *testing.T) {
	svc, _ := newApplyFixture(models.JobStatusPublished, true, false, strPtr("/uploads/resumes/r.pdf"), false)

	_, err := svc.Apply(context.Background(), 1, 999, &dto.ApplyRequest{})
	if !errors.Is(err, apperrors.ErrJobNotFound) {
		t.Fatalf("Apply() error = %v, want %v", err, apperrors.ErrJobNotFound)
	}
}

func TestApplyStoresAnswersForEveryQuestion(t *testing.T) {
	svc, appRepo := newApplyFixture(models.JobStatusPublished, true, false, strPtr("/uploads/resumes/r.pdf"), false)

	// Question 9 is unanswered and question 12 does not belong to the job
	req := &dto.ApplyRequest{Answers: map[int64]string{7: "Five", 12: "dropped"}}

	resp, err := svc.Apply(context.Background(), 1, 10, req)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if resp.Status != models.ApplicationPending {
		t.Errorf("Status = %q, want %q", resp.Status, models.ApplicationPending)
	}
	if resp.JobTitle != "Backend Engineer" || resp.CompanyName != "Acme" {
		t.Errorf("job info = %q/%q, want Backend Engineer/Acme", resp.JobTitle, resp.CompanyName)
	}

	if len(appRepo.createdAnswers) != 2 {
		t.Fatalf("stored %d answers, want 2", len(appRepo.createdAnswers))
	}
	got := map[int64]string{}
	for _, a := range appRepo.createdAnswers {
		got[a.QuestionID] = a.AnswerText
	}
	if got[7] != "Five" {
		t.Errorf("answer for question 7 = %q, want %q", got[7], "Five")
	}
	if text, ok := got[9]; !ok || text != "" {
		t.Errorf("unanswered question 9 = %q (present=%v), want empty answer stored", text, ok)
	}
	if _, ok := got[12]; ok {
		t.Error("answer for unknown question 12 was stored, want dropped")
	}
}
