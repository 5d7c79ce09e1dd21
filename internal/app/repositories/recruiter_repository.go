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

// IRecruiterRepository defines the interface for recruiter profile operations
type IRecruiterRepository interface {
	CreateProfileTx(ctx context.Context, tx pgx.Tx, userID int64, companyName string, companyWebsite *string) error
	GetProfileByUserID(ctx context.Context, userID int64) (*models.RecruiterProfile, error)
	UpdateProfile(ctx context.Context, profile *models.RecruiterProfile) error
	SetApproval(ctx context.Context, userID int64, approved bool) error
	SetSuspended(ctx context.Context, userID int64, suspended bool) error
	GetPendingProfiles(ctx context.Context, offset, limit uint64) ([]*models.RecruiterProfile, int64, error)
	CountPending(ctx context.Context) (int64, error)
}

// RecruiterRepository handles recruiter profile database operations
type RecruiterRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRecruiterRepository creates a new RecruiterRepository
func NewRecruiterRepository(db *pgxpool.Pool) *RecruiterRepository {
	return &RecruiterRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateProfileTx creates a recruiter profile within a transaction.
// New recruiters start unapproved and wait in the admin queue.
func (r *RecruiterRepository) CreateProfileTx(ctx context.Context, tx pgx.Tx, userID int64, companyName string, companyWebsite *string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO recruiter_profiles (user_id, company_name, company_website)
		VALUES ($1, $2, $3)`,
		userID, companyName, companyWebsite)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating recruiter profile: %w", err)
	}
	return nil
}

// GetProfileByUserID retrieves a recruiter profile together with its user row
func (r *RecruiterRepository) GetProfileByUserID(ctx context.Context, userID int64) (*models.RecruiterProfile, error) {
	sql, args, err := r.sb.Select(
		"rp.user_id", "rp.company_name", "rp.company_website",
		"rp.is_approved", "rp.is_suspended", "rp.created_at", "rp.updated_at",
		"u.id", "u.email", "u.full_name", "u.role").
		From("recruiter_profiles rp").
		Join("users u ON u.id = rp.user_id").
		Where(squirrel.Eq{"rp.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get recruiter profile query: %w", err)
	}

	profile := &models.RecruiterProfile{User: &models.User{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.UserID, &profile.CompanyName, &profile.CompanyWebsite,
		&profile.IsApproved, &profile.IsSuspended, &profile.CreatedAt, &profile.UpdatedAt,
		&profile.User.ID, &profile.User.Email, &profile.User.FullName, &profile.User.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecruiterProfileNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning recruiter profile row")
		return nil, fmt.Errorf("error retrieving recruiter profile: %w", err)
	}

	return profile, nil
}

// UpdateProfile updates the company fields of a recruiter profile
func (r *RecruiterRepository) UpdateProfile(ctx context.Context, profile *models.RecruiterProfile) error {
	sql, args, err := r.sb.Update("recruiter_profiles").
		Set("company_name", profile.CompanyName).
		Set("company_website", profile.CompanyWebsite).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"user_id": profile.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update recruiter profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", profile.UserID).Msg("Error executing update recruiter profile query")
		return fmt.Errorf("error updating recruiter profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRecruiterProfileNotFound
	}

	return nil
}

// SetApproval sets the approval flag on a recruiter profile
func (r *RecruiterRepository) SetApproval(ctx context.Context, userID int64, approved bool) error {
	return r.setFlag(ctx, userID, "is_approved", approved)
}

// SetSuspended sets the suspension flag on a recruiter profile
func (r *RecruiterRepository) SetSuspended(ctx context.Context, userID int64, suspended bool) error {
	return r.setFlag(ctx, userID, "is_suspended", suspended)
}

func (r *RecruiterRepository) setFlag(ctx context.Context, userID int64, column string, value bool) error {
	sql, args, err := r.sb.Update("recruiter_profiles").
		Set(column, value).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update recruiter flag query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating recruiter flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRecruiterProfileNotFound
	}

	return nil
}

// GetPendingProfiles retrieves recruiter profiles awaiting approval, oldest first
func (r *RecruiterRepository) GetPendingProfiles(ctx context.Context, offset, limit uint64) ([]*models.RecruiterProfile, int64, error) {
	totalCount, err := r.CountPending(ctx)
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := r.sb.Select(
		"rp.user_id", "rp.company_name", "rp.company_website",
		"rp.is_approved", "rp.is_suspended", "rp.created_at", "rp.updated_at",
		"u.id", "u.email", "u.full_name", "u.role").
		From("recruiter_profiles rp").
		Join("users u ON u.id = rp.user_id").
		Where(squirrel.Eq{"rp.is_approved": false, "rp.is_suspended": false}).
		OrderBy("rp.created_at ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build pending recruiters query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying pending recruiters: %w", err)
	}
	defer rows.Close()

	var profiles []*models.RecruiterProfile
	for rows.Next() {
		profile := &models.RecruiterProfile{User: &models.User{}}
		err := rows.Scan(
			&profile.UserID, &profile.CompanyName, &profile.CompanyWebsite,
			&profile.IsApproved, &profile.IsSuspended, &profile.CreatedAt, &profile.UpdatedAt,
			&profile.User.ID, &profile.User.Email, &profile.User.FullName, &profile.User.Role)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning pending recruiter row: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating pending recruiter rows: %w", err)
	}

	return profiles, totalCount, nil
}

// CountPending returns the number of recruiters awaiting approval
func (r *RecruiterRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM recruiter_profiles
		WHERE is_approved = FALSE AND is_suspended = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting pending recruiters: %w", err)
	}
	return count, nil
}
