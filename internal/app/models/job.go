package models

import "time"

// Job defines the job posting model based on the 'jobs' table.
// A job is owned by exactly one recruiter and is never hard-deleted;
// closing sets status to closed.
type Job struct {
	ID           int64     `json:"id" db:"id"`
	RecruiterID  int64     `json:"recruiterId" db:"recruiter_id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Requirements string    `json:"requirements" db:"requirements"`
	Location     string    `json:"location" db:"location"`
	JobType      string    `json:"jobType" db:"job_type"`
	SalaryRange  *string   `json:"salaryRange,omitempty" db:"salary_range"`
	Industry     *string   `json:"industry,omitempty" db:"industry"`
	Status       JobStatus `json:"status" db:"status"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// ScreeningQuestion is an optional per-job free-text question a candidate
// answers when applying. Questions are cascade-deleted with their job.
type ScreeningQuestion struct {
	ID           int64  `json:"id" db:"id"`
	JobID        int64  `json:"jobId" db:"job_id"`
	QuestionText string `json:"questionText" db:"question_text"`
	IsRequired   bool   `json:"isRequired" db:"is_required"`
}

// SavedJob links a candidate to a bookmarked job. At most one row per
// (candidate, job) pair; purely a bookmark with no workflow effect.
type SavedJob struct {
	ID          int64     `json:"id" db:"id"`
	CandidateID int64     `json:"candidateId" db:"candidate_id"`
	JobID       int64     `json:"jobId" db:"job_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
