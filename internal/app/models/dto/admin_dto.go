package dto

import "time"

// PendingRecruiterResponse is an entry in the admin approval queue.
type PendingRecruiterResponse struct {
	UserID         int64     `json:"userId"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	CompanyName    string    `json:"companyName"`
	CompanyWebsite *string   `json:"companyWebsite,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AdminStatsResponse holds the aggregate counts shown on the admin dashboard.
type AdminStatsResponse struct {
	UserCount             int64 `json:"userCount"`
	JobCount              int64 `json:"jobCount"`
	ApplicationCount      int64 `json:"applicationCount"`
	PendingRecruiterCount int64 `json:"pendingRecruiterCount"`
}
