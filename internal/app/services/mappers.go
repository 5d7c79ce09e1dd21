package services

import (
	"github.com/zedhire/zedhire/internal/app/models"
	"github.com/zedhire/zedhire/internal/app/models/dto"
)

func mapCandidateProfile(profile *models.CandidateProfile) *dto.CandidateProfileResponse {
	resp := &dto.CandidateProfileResponse{
		UserID:      profile.UserID,
		Skills:      profile.Skills,
		ResumeURL:   profile.ResumeURL,
		Bio:         profile.Bio,
		Location:    profile.Location,
		PhoneNumber: profile.PhoneNumber,
		LinkedinURL: profile.LinkedinURL,
		Education:   profile.Education,
		WorkHistory: profile.WorkHistory,
	}
	if profile.User != nil {
		resp.FullName = profile.User.FullName
		resp.Email = profile.User.Email
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if resp.Education == nil {
		resp.Education = []string{}
	}
	if resp.WorkHistory == nil {
		resp.WorkHistory = []string{}
	}
	return resp
}

func mapRecruiterProfile(profile *models.RecruiterProfile) *dto.RecruiterProfileResponse {
	resp := &dto.RecruiterProfileResponse{
		UserID:         profile.UserID,
		CompanyName:    profile.CompanyName,
		CompanyWebsite: profile.CompanyWebsite,
		IsApproved:     profile.IsApproved,
		IsSuspended:    profile.IsSuspended,
	}
	if profile.User != nil {
		resp.FullName = profile.User.FullName
		resp.Email = profile.User.Email
	}
	return resp
}

func mapJob(job *models.Job, companyName string) dto.JobResponse {
	return dto.JobResponse{
		ID:           job.ID,
		RecruiterID:  job.RecruiterID,
		CompanyName:  companyName,
		Title:        job.Title,
		Description:  job.Description,
		Requirements: job.Requirements,
		Location:     job.Location,
		JobType:      job.JobType,
		SalaryRange:  job.SalaryRange,
		Industry:     job.Industry,
		Status:       job.Status,
		CreatedAt:    job.CreatedAt,
	}
}

func mapQuestions(questions []*models.ScreeningQuestion) []dto.ScreeningQuestionResponse {
	resp := make([]dto.ScreeningQuestionResponse, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, dto.ScreeningQuestionResponse{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			IsRequired:   q.IsRequired,
		})
	}
	return resp
}
