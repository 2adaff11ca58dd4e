package dto

import (
	"time"

	"revhire_backend/internal/models"
)

type UpdateEmployerRequest struct {
	CompanyName  string `json:"company_name" validate:"required,min=2,max=150"`
	WebsiteURL   string `json:"website_url" validate:"omitempty,url"`
	IndustryType string `json:"industry_type" validate:"omitempty,max=100"`
	FullName     string `json:"full_name" validate:"required,min=2,max=100"`
	MobileNumber string `json:"mobile_number" validate:"omitempty,min=7,max=20"`
	Designation  string `json:"designation" validate:"omitempty,max=100"`
}

type EmployerResponse struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"company_name"`
	WebsiteURL   string    `json:"website_url,omitempty"`
	IndustryType string    `json:"industry_type,omitempty"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobile_number,omitempty"`
	Designation  string    `json:"designation,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToEmployerResponse(e *models.Employer) EmployerResponse {
	return EmployerResponse{
		ID:           e.ID,
		CompanyName:  e.CompanyName,
		WebsiteURL:   e.WebsiteURL,
		IndustryType: e.IndustryType,
		FullName:     e.FullName,
		Email:        e.Email,
		MobileNumber: e.MobileNumber,
		Designation:  e.Designation,
		CreatedAt:    e.CreatedAt,
	}
}
