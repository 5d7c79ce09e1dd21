package models

import "time"

// ApplicationStatus represents the triage status of an application
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

// Valid reports whether the status is one of the known application statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationShortlisted, ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

// CanTransitionTo reports whether a recruiter may move an application from
// the current status to the target status. Transitions are recruiter-initiated
// only: pending -> {shortlisted, rejected}, shortlisted -> {rejected, hired}.
// hired and rejected are terminal.
func (s ApplicationStatus) CanTransitionTo(target ApplicationStatus) bool {
	if s == target {
		return false
	}
	switch s {
	case ApplicationPending:
		return target == ApplicationShortlisted || target == ApplicationRejected
	case ApplicationShortlisted:
		return target == ApplicationRejected || target == ApplicationHired
	}
	return false
}

// Application links one candidate to one job. At most one row per
// (candidate, job) pair, enforced by a unique constraint.
type Application struct {
	ID          int64             `json:"id" db:"id"`
	JobID       int64             `json:"jobId" db:"job_id"`
	CandidateID int64             `json:"candidateId" db:"candidate_id"`
	Status      ApplicationStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`
}

// ApplicationAnswer stores a candidate's answer to one screening question.
// Answers exist only if the job had questions at apply time.
type ApplicationAnswer struct {
	ID            int64  `json:"id" db:"id"`
	ApplicationID int64  `json:"applicationId" db:"application_id"`
	QuestionID    int64  `json:"questionId" db:"question_id"`
	AnswerText    string `json:"answerText" db:"answer_text"`
}
