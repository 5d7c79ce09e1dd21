package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/zedhire/zedhire/internal/app/models"
	"github.com/zedhire/zedhire/internal/app/models/dto"
	"github.com/zedhire/zedhire/internal/app/repositories"
	"github.com/zedhire/zedhire/internal/db"
	"github.com/zedhire/zedhire/internal/pkg/apperrors"
	"github.com/zedhire/zedhire/internal/pkg/auth"
	"github.com/zedhire/zedhire/internal/pkg/validation"
)

// AuthService handles authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetMe(ctx context.Context, userID int64) (*dto.MeResponse, error)
}

type authService struct {
	database      *db.PostgresDB
	userRepo      repositories.IUserRepository
	tokenRepo     repositories.ITokenRepository
	candidateRepo repositories.ICandidateRepository
	recruiterRepo repositories.IRecruiterRepository
	jwtService    *auth.JWTService
	logger        zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	database *db.PostgresDB,
	userRepo repositories.IUserRepository,
	tokenRepo repositories.ITokenRepository,
	candidateRepo repositories.ICandidateRepository,
	recruiterRepo repositories.IRecruiterRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		database:      database,
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		candidateRepo: candidateRepo,
		recruiterRepo: recruiterRepo,
		jwtService:    jwtService,
		logger:        logger,
	}
}

// Register creates a new account and its role profile atomically. The role is
// fixed at signup; admin accounts are seeded, never self-registered.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validation.ValidEmail(email) {
		return nil, apperrors.NewValidationError("invalid email format")
	}
	if !validation.ValidPassword(req.Password) {
		return nil, apperrors.NewValidationError("password must be at least 8 characters and contain a letter and a digit")
	}
	if req.Role != models.RoleCandidate && req.Role != models.RoleRecruiter {
		return nil, apperrors.NewValidationError("role must be CANDIDATE or RECRUITER")
	}
	if req.Role == models.RoleRecruiter && strings.TrimSpace(req.CompanyName) == "" {
		return nil, apperrors.NewValidationError("company name is required for recruiters")
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: strings.TrimSpace(req.FullName),
		Role:     req.Role,
	}

	// User and profile rows are created in one transaction so a half
	// registered account can never exist
	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		userID, err := s.userRepo.CreateUserTx(ctx, tx, user)
		if err != nil {
			return err
		}
		user.ID = userID

		switch req.Role {
		case models.RoleCandidate:
			return s.candidateRepo.CreateProfileTx(ctx, tx, userID)
		case models.RoleRecruiter:
			var website *string
			if w := strings.TrimSpace(req.CompanyWebsite); w != "" {
				website = &w
			}
			return s.recruiterRepo.CreateProfileTx(ctx, tx, userID, strings.TrimSpace(req.CompanyName), website)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return s.generateTokenResponse(ctx, user)
}

// Login authenticates a user. Unknown email and wrong password produce the
// same error so the endpoint cannot be used to probe accounts.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login time")
	}

	return s.generateTokenResponse(ctx, user)
}

// RefreshToken rotates a refresh token and issues a new token pair
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, expiryDate, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if expiryDate.Before(time.Now()) {
		_ = s.tokenRepo.RevokeToken(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}

	// Revoke the old token so it cannot be replayed
	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Logout revokes the presented refresh token
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return apperrors.ErrTokenInvalid
	}

	err := s.tokenRepo.RevokeToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return err
	}
	return nil
}

// GetMe returns the current account with its role-specific profile attached
func (s *authService) GetMe(ctx context.Context, userID int64) (*dto.MeResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		// A token that outlived its account is an invalid session, not a
		// missing resource
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}

	resp := &dto.MeResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}

	switch user.Role {
	case models.RoleCandidate:
		profile, err := s.candidateRepo.GetProfileByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		resp.Candidate = mapCandidateProfile(profile)
	case models.RoleRecruiter:
		profile, err := s.recruiterRepo.GetProfileByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		resp.Recruiter = mapRecruiterProfile(profile)
	}

	return resp, nil
}

// generateTokenResponse creates and persists a token pair for a user
func (s *authService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		TokenType:        "Bearer",
	}, nil
}
