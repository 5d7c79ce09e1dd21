package dto

import (
	"time"

	"github.com/zedhire/zedhire/internal/app/models"
)

// CreateJobRequest creates a job posting with optional screening questions.
type CreateJobRequest struct {
	Title        string                     `json:"title" binding:"required,min=3,max=150"`
	Description  string                     `json:"description" binding:"required,min=10"`
	Requirements string                     `json:"requirements" binding:"required,min=10"`
	Location     string                     `json:"location" binding:"required,max=100"`
	JobType      string                     `json:"jobType" binding:"required,oneof=full-time part-time contract internship remote"`
	SalaryRange  *string                    `json:"salaryRange" binding:"omitempty,max=100"`
	Industry     *string                    `json:"industry" binding:"omitempty,max=100"`
	Status       models.JobStatus           `json:"status" binding:"omitempty,oneof=published drafted closed"`
	Questions    []ScreeningQuestionRequest `json:"questions" binding:"omitempty,dive"`
}

// UpdateJobRequest updates an existing job posting. A nil Questions slice
// leaves the screening questions unchanged; a non-nil slice replaces them.
type UpdateJobRequest struct {
	Title        string                     `json:"title" binding:"required,min=3,max=150"`
	Description  string                     `json:"description" binding:"required,min=10"`
	Requirements string                     `json:"requirements" binding:"required,min=10"`
	Location     string                     `json:"location" binding:"required,max=100"`
	JobType      string                     `json:"jobType" binding:"required,oneof=full-time part-time contract internship remote"`
	SalaryRange  *string                    `json:"salaryRange" binding:"omitempty,max=100"`
	Industry     *string                    `json:"industry" binding:"omitempty,max=100"`
	Questions    []ScreeningQuestionRequest `json:"questions" binding:"omitempty,dive"`
}

// UpdateJobStatusRequest changes only the lifecycle status of a job.
type UpdateJobStatusRequest struct {
	Status models.JobStatus `json:"status" binding:"required,oneof=published drafted closed"`
}

// ScreeningQuestionRequest is a screening question supplied at job creation.
type ScreeningQuestionRequest struct {
	QuestionText string `json:"questionText" binding:"required,min=5,max=500"`
	IsRequired   bool   `json:"isRequired"`
}

// JobFilterRequest holds public listing filters.
type JobFilterRequest struct {
	Query    string `form:"q"`
	Location string `form:"location"`
	JobType  string `form:"jobType"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=10"`
}

// JobResponse is a job posting as returned to clients, including the
// owning recruiter's company name when joined.
type JobResponse struct {
	ID           int64            `json:"id"`
	RecruiterID  int64            `json:"recruiterId"`
	CompanyName  string           `json:"companyName,omitempty"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Requirements string           `json:"requirements"`
	Location     string           `json:"location"`
	JobType      string           `json:"jobType"`
	SalaryRange  *string          `json:"salaryRange,omitempty"`
	Industry     *string          `json:"industry,omitempty"`
	Status       models.JobStatus `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// JobDetailResponse adds screening questions to a job response.
type JobDetailResponse struct {
	JobResponse
	Questions []ScreeningQuestionResponse `json:"questions"`
}

// ScreeningQuestionResponse is a screening question as returned to clients.
type ScreeningQuestionResponse struct {
	ID           int64  `json:"id"`
	QuestionText string `json:"questionText"`
	IsRequired   bool   `json:"isRequired"`
}

// JobListResponse is a paginated list of jobs.
type JobListResponse struct {
	Jobs       []JobResponse  `json:"jobs"`
	Pagination PaginationInfo `json:"pagination"`
}

// AdminCreateJobRequest lets an admin create a job on behalf of a recruiter.
type AdminCreateJobRequest struct {
	RecruiterID int64 `json:"recruiterId" binding:"required,gt=0"`
	CreateJobRequest
}
