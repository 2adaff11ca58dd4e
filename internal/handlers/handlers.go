package handlers

import "revhire_backend/internal/services"

// AppHandlers groups every route-registering handler.
type AppHandlers struct {
	Auth        *AuthHandler
	JobSeeker   *JobSeekerHandler
	Employer    *EmployerHandler
	JobPosting  *JobPostingHandler
	Application *ApplicationHandler
}

func NewAppHandlers(svc *services.Container) *AppHandlers {
	base := NewBaseHandler()

	return &AppHandlers{
		Auth:        NewAuthHandler(base, svc.Auth),
		JobSeeker:   NewJobSeekerHandler(base, svc.JobSeeker, svc.Resume, svc.Application),
		Employer:    NewEmployerHandler(base, svc.Employer),
		JobPosting:  NewJobPostingHandler(base, svc.JobPosting, svc.Application),
		Application: NewApplicationHandler(base, svc.Application),
	}
}
