package models

// RoleType defines the account role type
type RoleType string

const (
	RoleCandidate RoleType = "CANDIDATE"
	RoleRecruiter RoleType = "RECRUITER"
	RoleAdmin     RoleType = "ADMIN"
)

// Valid reports whether the role is one of the known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// JobStatus represents the lifecycle status of a job posting
type JobStatus string

const (
	JobStatusPublished JobStatus = "published"
	JobStatusDrafted   JobStatus = "drafted"
	JobStatusClosed    JobStatus = "closed"
)

// Valid reports whether the status is one of the known job statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPublished, JobStatusDrafted, JobStatusClosed:
		return true
	}
	return false
}
