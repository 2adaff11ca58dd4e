package dto

import "revhire_backend/internal/models"

// ResumeRequest is used for both create and full-replace update.
type ResumeRequest struct {
	Headline         string `json:"headline" validate:"required,max=200"`
	FirstName        string `json:"first_name" validate:"required,max=100"`
	MiddleName       string `json:"middle_name" validate:"omitempty,max=100"`
	LastName         string `json:"last_name" validate:"required,max=100"`
	Email            string `json:"email" validate:"required,email"`
	PhoneNumber      string `json:"phone_number" validate:"required,min=7,max=20"`
	DateOfBirth      string `json:"date_of_birth" validate:"required"`
	Languages        string `json:"languages"`
	LinkedinURL      string `json:"linkedin_url" validate:"omitempty,url"`
	PermanentAddress string `json:"permanent_address"`
	CurrentAddress   string `json:"current_address"`
	ProfilePhoto     string `json:"profile_photo"`

	Tenth          string `json:"tenth"`
	TenthYear      string `json:"tenth_year"`
	Twelfth        string `json:"twelfth"`
	TwelfthYear    string `json:"twelfth_year"`
	Graduation     string `json:"graduation"`
	GraduationYear string `json:"graduation_year"`
	PostGraduation string `json:"post_graduation"`
	PGStatus       string `json:"pg_status"`

	Skills                 string `json:"skills"`
	ProjectTitle           string `json:"project_title"`
	ProjectDescription     string `json:"project_description"`
	CertificateName        string `json:"certificate_name"`
	CertificateDescription string `json:"certificate_description"`

	CompanyName    string `json:"company_name"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
}

type ResumeResponse struct {
	ID          string `json:"id"`
	JobSeekerID string `json:"job_seeker_id"`

	Headline         string `json:"headline"`
	FirstName        string `json:"first_name"`
	MiddleName       string `json:"middle_name,omitempty"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number"`
	DateOfBirth      string `json:"date_of_birth"`
	Languages        string `json:"languages,omitempty"`
	LinkedinURL      string `json:"linkedin_url,omitempty"`
	PermanentAddress string `json:"permanent_address,omitempty"`
	CurrentAddress   string `json:"current_address,omitempty"`
	ProfilePhoto     string `json:"profile_photo,omitempty"`

	Tenth          string `json:"tenth,omitempty"`
	TenthYear      string `json:"tenth_year,omitempty"`
	Twelfth        string `json:"twelfth,omitempty"`
	TwelfthYear    string `json:"twelfth_year,omitempty"`
	Graduation     string `json:"graduation,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"`
	PostGraduation string `json:"post_graduation,omitempty"`
	PGStatus       string `json:"pg_status,omitempty"`

	Skills                 string `json:"skills,omitempty"`
	ProjectTitle           string `json:"project_title,omitempty"`
	ProjectDescription     string `json:"project_description,omitempty"`
	CertificateName        string `json:"certificate_name,omitempty"`
	CertificateDescription string `json:"certificate_description,omitempty"`

	CompanyName    string `json:"company_name,omitempty"`
	StartDate      string `json:"start_date,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
	JobTitle       string `json:"job_title,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
}

func (r *ResumeRequest) ToModel(jobSeekerID string) *models.Resume {
	return &models.Resume{
		JobSeekerID:            jobSeekerID,
		Headline:               r.Headline,
		FirstName:              r.FirstName,
		MiddleName:             r.MiddleName,
		LastName:               r.LastName,
		Email:                  r.Email,
		PhoneNumber:            r.PhoneNumber,
		DateOfBirth:            r.DateOfBirth,
		Languages:              r.Languages,
		LinkedinURL:            r.LinkedinURL,
		PermanentAddress:       r.PermanentAddress,
		CurrentAddress:         r.CurrentAddress,
		ProfilePhoto:           r.ProfilePhoto,
		Tenth:                  r.Tenth,
		TenthYear:              r.TenthYear,
		Twelfth:                r.Twelfth,
		TwelfthYear:            r.TwelfthYear,
		Graduation:             r.Graduation,
		GraduationYear:         r.GraduationYear,
		PostGraduation:         r.PostGraduation,
		PGStatus:               r.PGStatus,
		Skills:                 r.Skills,
		ProjectTitle:           r.ProjectTitle,
		ProjectDescription:     r.ProjectDescription,
		CertificateName:        r.CertificateName,
		CertificateDescription: r.CertificateDescription,
		CompanyName:            r.CompanyName,
		StartDate:              r.StartDate,
		EndDate:                r.EndDate,
		JobTitle:               r.JobTitle,
		JobDescription:         r.JobDescription,
	}
}

func ToResumeResponse(m *models.Resume) ResumeResponse {
	return ResumeResponse{
		ID:                     m.ID,
		JobSeekerID:            m.JobSeekerID,
		Headline:               m.Headline,
		FirstName:              m.FirstName,
		MiddleName:             m.MiddleName,
		LastName:               m.LastName,
		Email:                  m.Email,
		PhoneNumber:            m.PhoneNumber,
		DateOfBirth:            m.DateOfBirth,
		Languages:              m.Languages,
		LinkedinURL:            m.LinkedinURL,
		PermanentAddress:       m.PermanentAddress,
		CurrentAddress:         m.CurrentAddress,
		ProfilePhoto:           m.ProfilePhoto,
		Tenth:                  m.Tenth,
		TenthYear:              m.TenthYear,
		Twelfth:                m.Twelfth,
		TwelfthYear:            m.TwelfthYear,
		Graduation:             m.Graduation,
		GraduationYear:         m.GraduationYear,
		PostGraduation:         m.PostGraduation,
		PGStatus:               m.PGStatus,
		Skills:                 m.Skills,
		ProjectTitle:           m.ProjectTitle,
		ProjectDescription:     m.ProjectDescription,
		CertificateName:        m.CertificateName,
		CertificateDescription: m.CertificateDescription,
		CompanyName:            m.CompanyName,
		StartDate:              m.StartDate,
		EndDate:                m.EndDate,
		JobTitle:               m.JobTitle,
		JobDescription:         m.JobDescription,
	}
}

func ToResumeResponses(resumes []models.Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(resumes))
	for i := range resumes {
		out = append(out, ToResumeResponse(&resumes[i]))
	}
	return out
}
