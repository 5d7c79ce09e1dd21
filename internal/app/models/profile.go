package models

import "time"

// CandidateProfile is the 1:1 role extension of a CANDIDATE account.
type CandidateProfile struct {
	UserID      int64     `json:"userId" db:"user_id"`
	Skills      []string  `json:"skills" db:"skills"`
	ResumeURL   *string   `json:"resumeUrl,omitempty" db:"resume_url"`
	Bio         *string   `json:"bio,omitempty" db:"bio"`
	Location    *string   `json:"location,omitempty" db:"location"`
	PhoneNumber *string   `json:"phoneNumber,omitempty" db:"phone_number"`
	LinkedinURL *string   `json:"linkedinUrl,omitempty" db:"linkedin_url"`
	Education   []string  `json:"education" db:"education"`
	WorkHistory []string  `json:"workHistory" db:"work_history"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	User        *User     `json:"user,omitempty"` // Relation, no db tag
}

// HasResume reports whether the candidate has a usable resume reference on file.
// Applying to a job is gated on this.
func (p *CandidateProfile) HasResume() bool {
	return p != nil && p.ResumeURL != nil && *p.ResumeURL != ""
}

// CompletionPercentage computes a simple profile completion heuristic shown
// on the candidate dashboard. Base 20% for having an account.
func (p *CandidateProfile) CompletionPercentage() int {
	pct := 20
	if p == nil {
		return pct
	}
	if p.User != nil && p.User.FullName != "" {
		pct += 20
	}
	if len(p.Skills) > 0 {
		pct += 20
	}
	if p.HasResume() {
		pct += 20
	}
	if p.Location != nil && *p.Location != "" {
		pct += 10
	}
	if p.Bio != nil && *p.Bio != "" {
		pct += 10
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

// RecruiterProfile is the 1:1 role extension of a RECRUITER account.
// is_approved starts false; an admin flips it. Suspension keeps the flag
// false permanently and removes the recruiter from the pending queue.
type RecruiterProfile struct {
	UserID         int64     `json:"userId" db:"user_id"`
	CompanyName    string    `json:"companyName" db:"company_name"`
	CompanyWebsite *string   `json:"companyWebsite,omitempty" db:"company_website"`
	IsApproved     bool      `json:"isApproved" db:"is_approved"`
	IsSuspended    bool      `json:"isSuspended" db:"is_suspended"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
	User           *User     `json:"user,omitempty"` // Relation, no db tag
}

// CanPublish reports whether the recruiter's jobs may appear in public listings.
func (p *RecruiterProfile) CanPublish() bool {
	return p != nil && p.IsApproved && !p.IsSuspended
}
