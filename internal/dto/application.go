package dto

import (
	"time"

	"revhire_backend/internal/models"
)

type SubmitApplicationRequest struct {
	JobPostingID string `json:"job_posting_id" validate:"required,uuid"`
}

// UpdateApplicationRequest fully replaces the application's mutable fields.
type UpdateApplicationRequest struct {
	JobPostingID string `json:"job_posting_id" validate:"required,uuid"`
	JobSeekerID  string `json:"job_seeker_id" validate:"required,uuid"`
	ResumeID     string `json:"resume_id" validate:"required,uuid"`
	Status       string `json:"status" validate:"required,oneof=Pending Shortlisted Rejected"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Shortlisted Rejected"`
}

type ApplicationResponse struct {
	ID           string    `json:"id"`
	JobPostingID string    `json:"job_posting_id"`
	JobSeekerID  string    `json:"job_seeker_id"`
	ResumeID     string    `json:"resume_id"`
	Status       string    `json:"status"`
	AppliedAt    time.Time `json:"applied_at"`
}

func ToApplicationResponse(a *models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:           a.ID,
		JobPostingID: a.JobPostingID,
		JobSeekerID:  a.JobSeekerID,
		ResumeID:     a.ResumeID,
		Status:       string(a.Status),
		AppliedAt:    a.AppliedAt,
	}
}

func ToApplicationResponses(apps []models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, ToApplicationResponse(&apps[i]))
	}
	return out
}
