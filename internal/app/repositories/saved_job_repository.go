package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zedhire/zedhire/internal/app/models"
	"github.com/zedhire/zedhire/internal/pkg/apperrors"
	"github.com/zedhire/zedhire/internal/pkg/dberrors"
	"github.com/zedhire/zedhire/internal/pkg/logger"
)

// SavedJobWithJob is a saved job row joined with its job summary
type SavedJobWithJob struct {
	models.SavedJob
	Job         models.Job
	CompanyName string
}

// ISavedJobRepository defines the interface for saved job operations
type ISavedJobRepository interface {
	SaveJob(ctx context.Context, candidateID, jobID int64) error
	UnsaveJob(ctx context.Context, candidateID, jobID int64) error
	IsSaved(ctx context.Context, candidateID, jobID int64) (bool, error)
	ListByCandidate(ctx context.Context, candidateID int64, offset, limit uint64) ([]*SavedJobWithJob, int64, error)
	CountByCandidate(ctx context.Context, candidateID int64) (int64, error)
}

// SavedJobRepository handles saved job database operations
type SavedJobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSavedJobRepository creates a new SavedJobRepository
func NewSavedJobRepository(db *pgxpool.Pool) *SavedJobRepository {
	return &SavedJobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// SaveJob bookmarks a job for a candidate. Saving twice is a no-op.
func (r *SavedJobRepository) SaveJob(ctx context.Context, candidateID, jobID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO saved_jobs (candidate_id, job_id)
		VALUES ($1, $2)`,
		candidateID, jobID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "saved_jobs_candidate_job_key") {
			logger.Debug().Int64("candidateID", candidateID).Int64("jobID", jobID).Msg("Job already saved")
			return nil
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrJobNotFound
		}
		return fmt.Errorf("error saving job: %w", err)
	}
	return nil
}

// UnsaveJob removes a bookmark. Removing a missing bookmark is a no-op.
func (r *SavedJobRepository) UnsaveJob(ctx context.Context, candidateID, jobID int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM saved_jobs WHERE candidate_id = $1 AND job_id = $2`,
		candidateID, jobID)
	if err != nil {
		return fmt.Errorf("error unsaving job: %w", err)
	}
	return nil
}

// IsSaved checks whether a candidate has bookmarked a job
func (r *SavedJobRepository) IsSaved(ctx context.Context, candidateID, jobID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE candidate_id = $1 AND job_id = $2)`,
		candidateID, jobID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking saved job: %w", err)
	}
	return exists, nil
}

// ListByCandidate returns a candidate's saved jobs, newest bookmark first
func (r *SavedJobRepository) ListByCandidate(ctx context.Context, candidateID int64, offset, limit uint64) ([]*SavedJobWithJob, int64, error) {
	totalCount, err := r.CountByCandidate(ctx, candidateID)
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := r.sb.Select(
		"sj.id", "sj.candidate_id", "sj.job_id", "sj.created_at",
		"j.id", "j.recruiter_id", "j.title", "j.description", "j.requirements", "j.location",
		"j.job_type", "j.salary_range", "j.industry", "j.status", "j.created_at", "j.updated_at",
		"rp.company_name").
		From("saved_jobs sj").
		Join("jobs j ON j.id = sj.job_id").
		Join("recruiter_profiles rp ON rp.user_id = j.recruiter_id").
		Where(squirrel.Eq{"sj.candidate_id": candidateID}).
		OrderBy("sj.created_at DESC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build saved jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying saved jobs: %w", err)
	}
	defer rows.Close()

	var saved []*SavedJobWithJob
	for rows.Next() {
		s := &SavedJobWithJob{}
		err := rows.Scan(
			&s.ID, &s.CandidateID, &s.JobID, &s.CreatedAt,
			&s.Job.ID, &s.Job.RecruiterID, &s.Job.Title, &s.Job.Description, &s.Job.Requirements,
			&s.Job.Location, &s.Job.JobType, &s.Job.SalaryRange, &s.Job.Industry, &s.Job.Status,
			&s.Job.CreatedAt, &s.Job.UpdatedAt, &s.CompanyName)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning saved job row: %w", err)
		}
		saved = append(saved, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating saved job rows: %w", err)
	}

	return saved, totalCount, nil
}

// CountByCandidate returns the number of jobs a candidate has saved
func (r *SavedJobRepository) CountByCandidate(ctx context.Context, candidateID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM saved_jobs WHERE candidate_id = $1`, candidateID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting saved jobs: %w", err)
	}
	return count, nil
}
