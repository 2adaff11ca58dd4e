package services

import (
	"revhire_backend/internal/email"
	"revhire_backend/internal/repositories"

	"gorm.io/gorm"
)

// Container wires every service with its repositories so the handler layer
// only needs one dependency.
type Container struct {
	Auth        AuthService
	JobSeeker   JobSeekerService
	Employer    EmployerService
	Resume      ResumeService
	JobPosting  JobPostingService
	Application ApplicationService
}

func NewContainer(db *gorm.DB, emailSender email.Sender) *Container {
	jobSeekerRepo := repositories.NewJobSeekerRepository(db)
	employerRepo := repositories.NewEmployerRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	jobPostingRepo := repositories.NewJobPostingRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	return &Container{
		Auth:        NewAuthService(jobSeekerRepo, employerRepo, emailSender),
		JobSeeker:   NewJobSeekerService(jobSeekerRepo),
		Employer:    NewEmployerService(employerRepo),
		Resume:      NewResumeService(resumeRepo, jobSeekerRepo),
		JobPosting:  NewJobPostingService(jobPostingRepo, employerRepo, resumeRepo),
		Application: NewApplicationService(applicationRepo, jobPostingRepo, jobSeekerRepo, resumeRepo, emailSender),
	}
}
