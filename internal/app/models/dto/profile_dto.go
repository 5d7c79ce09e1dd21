package dto

// UpdateCandidateProfileRequest updates the candidate's own profile.
// A submitted resume URL is kept verbatim; uploads go through the
// dedicated resume endpoint.
type UpdateCandidateProfileRequest struct {
	FullName    string   `json:"fullName" binding:"omitempty,min=2,max=100"`
	Skills      []string `json:"skills" binding:"omitempty,dive,min=1,max=50"`
	Bio         *string  `json:"bio" binding:"omitempty,max=500"`
	Location    *string  `json:"location" binding:"omitempty,max=100"`
	PhoneNumber *string  `json:"phoneNumber" binding:"omitempty,max=30"`
	LinkedinURL *string  `json:"linkedinUrl" binding:"omitempty,url"`
	ResumeURL   *string  `json:"resumeUrl" binding:"omitempty,url"`
	Education   []string `json:"education" binding:"omitempty,dive,max=200"`
	WorkHistory []string `json:"workHistory" binding:"omitempty,dive,max=200"`
}

// UpdateRecruiterProfileRequest updates the recruiter's own profile.
// Approval and suspension flags are admin-only and not accepted here.
type UpdateRecruiterProfileRequest struct {
	FullName       string  `json:"fullName" binding:"omitempty,min=2,max=100"`
	CompanyName    string  `json:"companyName" binding:"required,min=2,max=100"`
	CompanyWebsite *string `json:"companyWebsite" binding:"omitempty,url"`
}

// CandidateProfileResponse is the candidate profile as returned to clients.
type CandidateProfileResponse struct {
	UserID      int64    `json:"userId"`
	FullName    string   `json:"fullName"`
	Email       string   `json:"email"`
	Skills      []string `json:"skills"`
	ResumeURL   *string  `json:"resumeUrl,omitempty"`
	Bio         *string  `json:"bio,omitempty"`
	Location    *string  `json:"location,omitempty"`
	PhoneNumber *string  `json:"phoneNumber,omitempty"`
	LinkedinURL *string  `json:"linkedinUrl,omitempty"`
	Education   []string `json:"education"`
	WorkHistory []string `json:"workHistory"`
}

// RecruiterProfileResponse is the recruiter profile as returned to clients.
type RecruiterProfileResponse struct {
	UserID         int64   `json:"userId"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	CompanyName    string  `json:"companyName"`
	CompanyWebsite *string `json:"companyWebsite,omitempty"`
	IsApproved     bool    `json:"isApproved"`
	IsSuspended    bool    `json:"isSuspended"`
}

// ResumeUploadResponse carries the public URL of an uploaded resume.
type ResumeUploadResponse struct {
	ResumeURL string `json:"resumeUrl"`
}

// CandidateStatsResponse is the candidate dashboard summary.
type CandidateStatsResponse struct {
	ApplicationCount  int64 `json:"applicationCount"`
	SavedJobCount     int64 `json:"savedJobCount"`
	ProfileCompletion int   `json:"profileCompletion" example:"80"`
}

// RecruiterStatsResponse is the recruiter dashboard summary.
type RecruiterStatsResponse struct {
	JobCount         int64 `json:"jobCount"`
	PublishedCount   int64 `json:"publishedCount"`
	ApplicationCount int64 `json:"applicationCount"`
	IsApproved       bool  `json:"isApproved"`
}
