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
	"github.com/zedhire/zedhire/internal/pkg/logger"
)

// JobFilter holds the optional filters for public job listings
type JobFilter struct {
	Query    string
	Location string
	JobType  string
}

// IJobRepository defines the interface for job database operations
type IJobRepository interface {
	CreateJob(ctx context.Context, job *models.Job, questions []*models.ScreeningQuestion) (int64, error)
	GetJobByID(ctx context.Context, id int64) (*models.Job, error)
	GetJobWithCompany(ctx context.Context, id int64) (*models.Job, string, error)
	UpdateJob(ctx context.Context, job *models.Job) error
	UpdateJobStatus(ctx context.Context, id int64, status models.JobStatus) error
	ListPublicJobs(ctx context.Context, filter JobFilter, offset, limit uint64) ([]*models.Job, map[int64]string, int64, error)
	ListJobsByRecruiter(ctx context.Context, recruiterID int64, offset, limit uint64) ([]*models.Job, int64, error)
	GetQuestionsByJobID(ctx context.Context, jobID int64) ([]*models.ScreeningQuestion, error)
	ReplaceQuestions(ctx context.Context, jobID int64, questions []*models.ScreeningQuestion) error
	CountJobs(ctx context.Context) (int64, error)
	CountJobsByRecruiter(ctx context.Context, recruiterID int64) (int64, int64, error)
}

// JobRepository handles job database operations
type JobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var jobColumns = []string{
	"id", "recruiter_id", "title", "description", "requirements", "location",
	"job_type", "salary_range", "industry", "status", "created_at", "updated_at",
}

func scanJob(row pgx.Row) (*models.Job, error) {
	job := &models.Job{}
	err := row.Scan(
		&job.ID, &job.RecruiterID, &job.Title, &job.Description, &job.Requirements,
		&job.Location, &job.JobType, &job.SalaryRange, &job.Industry, &job.Status,
		&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// CreateJob inserts a job and its screening questions in one transaction
func (r *JobRepository) CreateJob(ctx context.Context, job *models.Job, questions []*models.ScreeningQuestion) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO jobs (recruiter_id, title, description, requirements, location, job_type, salary_range, industry, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		job.RecruiterID, job.Title, job.Description, job.Requirements, job.Location,
		job.JobType, job.SalaryRange, job.Industry, job.Status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating job: %w", err)
	}

	for _, q := range questions {
		_, err := tx.Exec(ctx, `
			INSERT INTO job_questions (job_id, question_text, is_required)
			VALUES ($1, $2, $3)`,
			id, q.QuestionText, q.IsRequired)
		if err != nil {
			return 0, fmt.Errorf("error creating screening question: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// GetJobByID retrieves a job by ID
func (r *JobRepository) GetJobByID(ctx context.Context, id int64) (*models.Job, error) {
	sql, args, err := r.sb.Select(jobColumns...).
		From("jobs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get job query: %w", err)
	}

	job, err := scanJob(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("jobID", id).Msg("Error scanning job row")
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}

	return job, nil
}

// GetJobWithCompany retrieves a job together with the recruiter's company name
func (r *JobRepository) GetJobWithCompany(ctx context.Context, id int64) (*models.Job, string, error) {
	sql, args, err := r.sb.Select(
		"j.id", "j.recruiter_id", "j.title", "j.description", "j.requirements", "j.location",
		"j.job_type", "j.salary_range", "j.industry", "j.status", "j.created_at", "j.updated_at",
		"rp.company_name").
		From("jobs j").
		Join("recruiter_profiles rp ON rp.user_id = j.recruiter_id").
		Where(squirrel.Eq{"j.id": id}).
		ToSql()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build get job query: %w", err)
	}

	job := &models.Job{}
	var companyName string
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&job.ID, &job.RecruiterID, &job.Title, &job.Description, &job.Requirements,
		&job.Location, &job.JobType, &job.SalaryRange, &job.Industry, &job.Status,
		&job.CreatedAt, &job.UpdatedAt, &companyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("jobID", id).Msg("Error scanning job row")
		return nil, "", fmt.Errorf("error retrieving job: %w", err)
	}

	return job, companyName, nil
}

// UpdateJob updates the editable fields of a job
func (r *JobRepository) UpdateJob(ctx context.Context, job *models.Job) error {
	sql, args, err := r.sb.Update("jobs").
		Set("title", job.Title).
		Set("description", job.Description).
		Set("requirements", job.Requirements).
		Set("location", job.Location).
		Set("job_type", job.JobType).
		Set("salary_range", job.SalaryRange).
		Set("industry", job.Industry).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": job.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update job query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", job.ID).Msg("Error executing update job query")
		return fmt.Errorf("error updating job: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// UpdateJobStatus moves a job to a new lifecycle status
func (r *JobRepository) UpdateJobStatus(ctx context.Context, id int64, status models.JobStatus) error {
	sql, args, err := r.sb.Update("jobs").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update job status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating job status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// ListPublicJobs returns published jobs from approved, non-suspended recruiters.
// The returned map carries company names keyed by job ID.
func (r *JobRepository) ListPublicJobs(ctx context.Context, filter JobFilter, offset, limit uint64) ([]*models.Job, map[int64]string, int64, error) {
	conditions := squirrel.And{
		squirrel.Eq{"j.status": models.JobStatusPublished},
		squirrel.Eq{"rp.is_approved": true},
		squirrel.Eq{"rp.is_suspended": false},
	}
	if filter.Query != "" {
		conditions = append(conditions, squirrel.ILike{"j.title": "%" + filter.Query + "%"})
	}
	if filter.Location != "" {
		conditions = append(conditions, squirrel.ILike{"j.location": "%" + filter.Location + "%"})
	}
	if filter.JobType != "" {
		conditions = append(conditions, squirrel.Eq{"j.job_type": filter.JobType})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("jobs j").
		Join("recruiter_profiles rp ON rp.user_id = j.recruiter_id").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to build count jobs query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, nil, 0, fmt.Errorf("error counting jobs: %w", err)
	}

	sql, args, err := r.sb.Select(
		"j.id", "j.recruiter_id", "j.title", "j.description", "j.requirements", "j.location",
		"j.job_type", "j.salary_range", "j.industry", "j.status", "j.created_at", "j.updated_at",
		"rp.company_name").
		From("jobs j").
		Join("recruiter_profiles rp ON rp.user_id = j.recruiter_id").
		Where(conditions).
		OrderBy("j.created_at DESC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to build list jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("error querying jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	companies := make(map[int64]string)
	for rows.Next() {
		job := &models.Job{}
		var companyName string
		err := rows.Scan(
			&job.ID, &job.RecruiterID, &job.Title, &job.Description, &job.Requirements,
			&job.Location, &job.JobType, &job.SalaryRange, &job.Industry, &job.Status,
			&job.CreatedAt, &job.UpdatedAt, &companyName)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
		companies[job.ID] = companyName
	}
	if err := rows.Err(); err != nil {
		return nil, nil, 0, fmt.Errorf("error iterating job rows: %w", err)
	}

	return jobs, companies, totalCount, nil
}

// ListJobsByRecruiter returns every job owned by a recruiter, newest first
func (r *JobRepository) ListJobsByRecruiter(ctx context.Context, recruiterID int64, offset, limit uint64) ([]*models.Job, int64, error) {
	var totalCount int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE recruiter_id = $1`, recruiterID).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting recruiter jobs: %w", err)
	}

	sql, args, err := r.sb.Select(jobColumns...).
		From("jobs").
		Where(squirrel.Eq{"recruiter_id": recruiterID}).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build recruiter jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying recruiter jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating job rows: %w", err)
	}

	return jobs, totalCount, nil
}

// GetQuestionsByJobID retrieves the screening questions attached to a job
func (r *JobRepository) GetQuestionsByJobID(ctx context.Context, jobID int64) ([]*models.ScreeningQuestion, error) {
	sql, args, err := r.sb.Select("id", "job_id", "question_text", "is_required").
		From("job_questions").
		Where(squirrel.Eq{"job_id": jobID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build questions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying screening questions: %w", err)
	}
	defer rows.Close()

	var questions []*models.ScreeningQuestion
	for rows.Next() {
		q := &models.ScreeningQuestion{}
		if err := rows.Scan(&q.ID, &q.JobID, &q.QuestionText, &q.IsRequired); err != nil {
			return nil, fmt.Errorf("error scanning screening question row: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating screening question rows: %w", err)
	}

	return questions, nil
}

// ReplaceQuestions swaps the screening questions of a job atomically.
// Existing answers are removed with the old questions via cascade.
func (r *JobRepository) ReplaceQuestions(ctx context.Context, jobID int64, questions []*models.ScreeningQuestion) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM job_questions WHERE job_id = $1`, jobID); err != nil {
		return fmt.Errorf("error deleting screening questions: %w", err)
	}

	for _, q := range questions {
		_, err := tx.Exec(ctx, `
			INSERT INTO job_questions (job_id, question_text, is_required)
			VALUES ($1, $2, $3)`,
			jobID, q.QuestionText, q.IsRequired)
		if err != nil {
			return fmt.Errorf("error creating screening question: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CountJobs returns the total number of jobs
func (r *JobRepository) CountJobs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting jobs: %w", err)
	}
	return count, nil
}

// CountJobsByRecruiter returns total and published job counts for a recruiter
func (r *JobRepository) CountJobsByRecruiter(ctx context.Context, recruiterID int64) (int64, int64, error) {
	var total, published int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'published')
		FROM jobs
		WHERE recruiter_id = $1`,
		recruiterID).Scan(&total, &published)
	if err != nil {
		return 0, 0, fmt.Errorf("error counting recruiter jobs: %w", err)
	}
	return total, published, nil
}
