package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zedhire/zedhire/internal/app/models"
	"github.com/zedhire/zedhire/internal/pkg/apperrors"
	"github.com/zedhire/zedhire/internal/pkg/dberrors"
	"github.com/zedhire/zedhire/internal/pkg/logger"
)

// ApplicationWithJob is an application row joined with its job summary
type ApplicationWithJob struct {
	models.Application
	JobTitle    string
	CompanyName string
}

// ApplicantRow is an application row joined with the candidate's identity
type ApplicantRow struct {
	models.Application
	CandidateName  string
	CandidateEmail string
	ResumeURL      *string
}

// AnswerWithQuestion is a screening answer joined with its question text
type AnswerWithQuestion struct {
	ApplicationID int64
	QuestionID    int64
	QuestionText  string
	AnswerText    string
}

// IApplicationRepository defines the interface for application database operations
type IApplicationRepository interface {
	CreateApplication(ctx context.Context, app *models.Application, answers []*models.ApplicationAnswer) (int64, error)
	GetApplicationByID(ctx context.Context, id int64) (*models.Application, error)
	HasApplied(ctx context.Context, candidateID, jobID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
	ListByCandidate(ctx context.Context, candidateID int64, offset, limit uint64) ([]*ApplicationWithJob, int64, error)
	ListByJob(ctx context.Context, jobID int64, offset, limit uint64) ([]*ApplicantRow, int64, error)
	GetAnswersByApplicationIDs(ctx context.Context, applicationIDs []int64) (map[int64][]*AnswerWithQuestion, error)
	CountByCandidate(ctx context.Context, candidateID int64) (int64, error)
	CountByRecruiter(ctx context.Context, recruiterID int64) (int64, error)
	CountApplications(ctx context.Context) (int64, error)
}

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateApplication inserts an application and its screening answers. The
// application row is the primary write; answer rows are best-effort, a
// failed answer insert is logged and the application stands.
func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *models.Application, answers []*models.ApplicationAnswer) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO applications (job_id, candidate_id, status)
		VALUES ($1, $2, $3)
		RETURNING id`,
		app.JobID, app.CandidateID, models.ApplicationPending).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_candidate_job_key") {
			return 0, apperrors.ErrAlreadyApplied
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("jobID", app.JobID).Int64("candidateID", app.CandidateID).Msg("Error creating application")
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	for _, a := range answers {
		_, err := r.db.Exec(ctx, `
			INSERT INTO application_answers (application_id, question_id, answer_text)
			VALUES ($1, $2, $3)`,
			id, a.QuestionID, a.AnswerText)
		if err != nil {
			logger.Warn().Err(err).
				Int64("applicationID", id).
				Int64("questionID", a.QuestionID).
				Msg("Failed to store screening answer")
		}
	}

	return id, nil
}

// GetApplicationByID retrieves an application by ID
func (r *ApplicationRepository) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	sql, args, err := r.sb.Select("id", "job_id", "candidate_id", "status", "created_at", "updated_at").
		From("applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	app := &models.Application{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.Status, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error scanning application row")
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return app, nil
}

// HasApplied checks whether a candidate already applied to a job
func (r *ApplicationRepository) HasApplied(ctx context.Context, candidateID, jobID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM applications WHERE candidate_id = $1 AND job_id = $2)`,
		candidateID, jobID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking application: %w", err)
	}
	return exists, nil
}

// UpdateStatus moves an application to a new status
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	sql, args, err := r.sb.Update("applications").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update application status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// ListByCandidate returns a candidate's applications with job summaries, newest first
func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID int64, offset, limit uint64) ([]*ApplicationWithJob, int64, error) {
	totalCount, err := r.CountByCandidate(ctx, candidateID)
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := r.sb.Select(
		"a.id", "a.job_id", "a.candidate_id", "a.status", "a.created_at", "a.updated_at",
		"j.title", "rp.company_name").
		From("applications a").
		Join("jobs j ON j.id = a.job_id").
		Join("recruiter_profiles rp ON rp.user_id = j.recruiter_id").
		Where(squirrel.Eq{"a.candidate_id": candidateID}).
		OrderBy("a.created_at DESC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build candidate applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying candidate applications: %w", err)
	}
	defer rows.Close()

	var apps []*ApplicationWithJob
	for rows.Next() {
		app := &ApplicationWithJob{}
		err := rows.Scan(
			&app.ID, &app.JobID, &app.CandidateID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
			&app.JobTitle, &app.CompanyName)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating application rows: %w", err)
	}

	return apps, totalCount, nil
}

// ListByJob returns the applicants for a job, oldest application first
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID int64, offset, limit uint64) ([]*ApplicantRow, int64, error) {
	var totalCount int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting job applications: %w", err)
	}

	sql, args, err := r.sb.Select(
		"a.id", "a.job_id", "a.candidate_id", "a.status", "a.created_at", "a.updated_at",
		"u.full_name", "u.email", "cp.resume_url").
		From("applications a").
		Join("users u ON u.id = a.candidate_id").
		Join("candidate_profiles cp ON cp.user_id = a.candidate_id").
		Where(squirrel.Eq{"a.job_id": jobID}).
		OrderBy("a.created_at ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build job applicants query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying job applicants: %w", err)
	}
	defer rows.Close()

	var applicants []*ApplicantRow
	for rows.Next() {
		row := &ApplicantRow{}
		err := rows.Scan(
			&row.ID, &row.JobID, &row.CandidateID, &row.Status, &row.CreatedAt, &row.UpdatedAt,
			&row.CandidateName, &row.CandidateEmail, &row.ResumeURL)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning applicant row: %w", err)
		}
		applicants = append(applicants, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating applicant rows: %w", err)
	}

	return applicants, totalCount, nil
}

// GetAnswersByApplicationIDs loads screening answers for a set of applications,
// grouped by application ID
func (r *ApplicationRepository) GetAnswersByApplicationIDs(ctx context.Context, applicationIDs []int64) (map[int64][]*AnswerWithQuestion, error) {
	answers := make(map[int64][]*AnswerWithQuestion)
	if len(applicationIDs) == 0 {
		return answers, nil
	}

	sql, args, err := r.sb.Select(
		"aa.application_id", "aa.question_id", "jq.question_text", "aa.answer_text").
		From("application_answers aa").
		Join("job_questions jq ON jq.id = aa.question_id").
		Where(squirrel.Eq{"aa.application_id": applicationIDs}).
		OrderBy("aa.question_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build answers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying application answers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a := &AnswerWithQuestion{}
		if err := rows.Scan(&a.ApplicationID, &a.QuestionID, &a.QuestionText, &a.AnswerText); err != nil {
			return nil, fmt.Errorf("error scanning answer row: %w", err)
		}
		answers[a.ApplicationID] = append(answers[a.ApplicationID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating answer rows: %w", err)
	}

	return answers, nil
}

// CountByCandidate returns the number of applications submitted by a candidate
func (r *ApplicationRepository) CountByCandidate(ctx context.Context, candidateID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE candidate_id = $1`, candidateID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting candidate applications: %w", err)
	}
	return count, nil
}

// CountByRecruiter returns the number of applications across a recruiter's jobs
func (r *ApplicationRepository) CountByRecruiter(ctx context.Context, recruiterID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.recruiter_id = $1`,
		recruiterID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting recruiter applications: %w", err)
	}
	return count, nil
}

// CountApplications returns the total number of applications
func (r *ApplicationRepository) CountApplications(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}
	return count, nil
}
