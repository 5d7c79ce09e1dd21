package dto

import "github.com/zedhire/zedhire/internal/app/models"

// RegisterRequest represents an account registration request.
// Role is chosen at signup and immutable afterwards; ADMIN cannot
// self-register.
type RegisterRequest struct {
	FullName string          `json:"fullName" binding:"required,min=2,max=100" example:"Jane Banda"`
	Email    string          `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string          `json:"password" binding:"required,min=8" example:"s3cretpass"`
	Role     models.RoleType `json:"role" binding:"required,oneof=CANDIDATE RECRUITER" example:"CANDIDATE"`

	// Recruiter-only, used to seed the recruiter profile
	CompanyName    string `json:"companyName,omitempty" example:"Acme Ltd"`
	CompanyWebsite string `json:"companyWebsite,omitempty" example:"https://acme.example"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"s3cretpass"`
}

// RefreshTokenRequest represents a refresh token rotation request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes a refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}

// MeResponse is the current account plus its role-specific profile.
type MeResponse struct {
	ID        int64                     `json:"id"`
	Email     string                    `json:"email"`
	FullName  string                    `json:"fullName"`
	Role      models.RoleType           `json:"role"`
	Candidate *CandidateProfileResponse `json:"candidate,omitempty"`
	Recruiter *RecruiterProfileResponse `json:"recruiter,omitempty"`
}
