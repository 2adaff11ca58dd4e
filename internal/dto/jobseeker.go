package dto

import (
	"time"

	"revhire_backend/internal/models"
)

type UpdateJobSeekerRequest struct {
	FullName   string `json:"full_name" validate:"required,min=2,max=100"`
	Phone      string `json:"phone" validate:"required,min=7,max=20"`
	WorkStatus string `json:"work_status" validate:"required,oneof=fresher experienced"`
	Promotions bool   `json:"promotions"`
}

type JobSeekerResponse struct {
	ID               string    `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	WorkStatus       string    `json:"work_status"`
	Promotions       bool      `json:"promotions"`
	RegistrationTime time.Time `json:"registration_time"`
}

func ToJobSeekerResponse(s *models.JobSeeker) JobSeekerResponse {
	return JobSeekerResponse{
		ID:               s.ID,
		FullName:         s.FullName,
		Email:            s.Email,
		Phone:            s.Phone,
		WorkStatus:       s.WorkStatus,
		Promotions:       s.Promotions,
		RegistrationTime: s.RegistrationTime,
	}
}
