package dto

import (
	"time"

	"github.com/zedhire/zedhire/internal/app/models"
)

// ApplyRequest submits an application with optional screening answers.
// Answers are keyed by question ID; a missing answer is stored as "".
type ApplyRequest struct {
	Answers map[int64]string `json:"answers"`
}

// UpdateApplicationStatusRequest moves an application through the triage
// workflow. Only the owning recruiter may call it.
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=pending shortlisted rejected hired"`
}

// ApplicationResponse is an application as seen by its candidate.
type ApplicationResponse struct {
	ID          int64                    `json:"id"`
	JobID       int64                    `json:"jobId"`
	JobTitle    string                   `json:"jobTitle"`
	CompanyName string                   `json:"companyName,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"createdAt"`
}

// ApplicationDetailResponse is a single application with its screening
// answers, visible to the candidate and the job's recruiter.
type ApplicationDetailResponse struct {
	ApplicationResponse
	Answers []AnswerResponse `json:"answers"`
}

// ApplicantResponse is an application as seen by the job's recruiter.
type ApplicantResponse struct {
	ID            int64                    `json:"id"`
	JobID         int64                    `json:"jobId"`
	CandidateID   int64                    `json:"candidateId"`
	CandidateName string                   `json:"candidateName"`
	Email         string                   `json:"email"`
	ResumeURL     *string                  `json:"resumeUrl,omitempty"`
	Status        models.ApplicationStatus `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`
	Answers       []AnswerResponse         `json:"answers"`
}

// AnswerResponse pairs a screening question with the candidate's answer.
type AnswerResponse struct {
	QuestionID   int64  `json:"questionId"`
	QuestionText string `json:"questionText"`
	AnswerText   string `json:"answerText"`
}

// ApplicationListResponse is a paginated list of a candidate's applications.
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// SavedJobListResponse lists a candidate's bookmarked jobs.
type SavedJobListResponse struct {
	Jobs       []JobResponse  `json:"jobs"`
	Pagination PaginationInfo `json:"pagination"`
}
