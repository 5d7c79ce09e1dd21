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

// ICandidateRepository defines the interface for candidate profile operations
type ICandidateRepository interface {
	CreateProfileTx(ctx context.Context, tx pgx.Tx, userID int64) error
	GetProfileByUserID(ctx context.Context, userID int64) (*models.CandidateProfile, error)
	UpdateProfile(ctx context.Context, profile *models.CandidateProfile) error
	UpdateResumeURL(ctx context.Context, userID int64, resumeURL string) error
}

// CandidateRepository handles candidate profile database operations
type CandidateRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCandidateRepository creates a new CandidateRepository
func NewCandidateRepository(db *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateProfileTx creates an empty candidate profile within a transaction.
// Called during registration together with the user row.
func (r *CandidateRepository) CreateProfileTx(ctx context.Context, tx pgx.Tx, userID int64) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO candidate_profiles (user_id)
		VALUES ($1)`,
		userID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating candidate profile: %w", err)
	}
	return nil
}

// GetProfileByUserID retrieves a candidate profile together with its user row
func (r *CandidateRepository) GetProfileByUserID(ctx context.Context, userID int64) (*models.CandidateProfile, error) {
	sql, args, err := r.sb.Select(
		"cp.user_id", "cp.skills", "cp.resume_url", "cp.bio", "cp.location",
		"cp.phone_number", "cp.linkedin_url", "cp.education", "cp.work_history",
		"cp.created_at", "cp.updated_at",
		"u.id", "u.email", "u.full_name", "u.role").
		From("candidate_profiles cp").
		Join("users u ON u.id = cp.user_id").
		Where(squirrel.Eq{"cp.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get candidate profile query: %w", err)
	}

	profile := &models.CandidateProfile{User: &models.User{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.UserID, &profile.Skills, &profile.ResumeURL, &profile.Bio, &profile.Location,
		&profile.PhoneNumber, &profile.LinkedinURL, &profile.Education, &profile.WorkHistory,
		&profile.CreatedAt, &profile.UpdatedAt,
		&profile.User.ID, &profile.User.Email, &profile.User.FullName, &profile.User.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCandidateProfileNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning candidate profile row")
		return nil, fmt.Errorf("error retrieving candidate profile: %w", err)
	}

	return profile, nil
}

// UpdateProfile updates the mutable fields of a candidate profile
func (r *CandidateRepository) UpdateProfile(ctx context.Context, profile *models.CandidateProfile) error {
	sql, args, err := r.sb.Update("candidate_profiles").
		Set("skills", profile.Skills).
		Set("bio", profile.Bio).
		Set("location", profile.Location).
		Set("phone_number", profile.PhoneNumber).
		Set("linkedin_url", profile.LinkedinURL).
		Set("education", profile.Education).
		Set("work_history", profile.WorkHistory).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"user_id": profile.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update candidate profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", profile.UserID).Msg("Error executing update candidate profile query")
		return fmt.Errorf("error updating candidate profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCandidateProfileNotFound
	}

	return nil
}

// UpdateResumeURL sets the stored resume location for a candidate
func (r *CandidateRepository) UpdateResumeURL(ctx context.Context, userID int64, resumeURL string) error {
	sql, args, err := r.sb.Update("candidate_profiles").
		Set("resume_url", resumeURL).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update resume query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating resume: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCandidateProfileNotFound
	}

	return nil
}
