package services

import (
	"errors"
	"fmt"

	"revhire_backend/internal/dto"
	"revhire_backend/internal/email"
	"revhire_backend/internal/logger"
	"revhire_backend/internal/models"
	"revhire_backend/internal/repositories"
	"revhire_backend/pkg/apperrors"
)

type ApplicationService interface {
	SubmitApplication(jobSeekerID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error)
	WithdrawApplication(jobSeekerID, applicationID string) (bool, error)
	UpdateApplication(employerID, id string, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error)
	GetApplication(id string) (*dto.ApplicationResponse, error)
	GetApplicationsByJobSeeker(jobSeekerID string) ([]dto.ApplicationResponse, error)
	GetApplicationsByJobPosting(employerID, jobPostingID string) ([]dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobPostingRepo  repositories.JobPostingRepository
	jobSeekerRepo   repositories.JobSeekerRepository
	resumeRepo      repositories.ResumeRepository
	emailSender     email.Sender
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobPostingRepo repositories.JobPostingRepository,
	jobSeekerRepo repositories.JobSeekerRepository,
	resumeRepo repositories.ResumeRepository,
	emailSender email.Sender,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobPostingRepo:  jobPostingRepo,
		jobSeekerRepo:   jobSeekerRepo,
		resumeRepo:      resumeRepo,
		emailSender:     emailSender,
	}
}

// SubmitApplication creates a Pending application after checking that the
// posting, the seeker and the seeker's resume all exist. The existence
// pre-check for a duplicate is a fast path; the storage-level unique index
// still catches concurrent submits.
func (s *ApplicationServiceImpl) SubmitApplication(jobSeekerID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	posting, err := s.jobPostingRepo.FindByID(req.JobPostingID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrJobPostingNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	seeker, err := s.jobSeekerRepo.FindByID(jobSeekerID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobSeekerNotFound) {
			return nil, apperrors.ErrJobSeekerNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	resume, err := s.resumeRepo.FindByJobSeekerID(jobSeekerID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.ErrResumeNotFound.WithDetails("a resume is required before applying")
		}
		return nil, apperrors.DatabaseError(err)
	}

	if _, err := s.applicationRepo.FindBySeekerAndPosting(jobSeekerID, req.JobPostingID); err == nil {
		return nil, apperrors.ErrDuplicateApplication
	} else if !errors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.DatabaseError(err)
	}

	application := &models.Application{
		JobPostingID: req.JobPostingID,
		JobSeekerID:  jobSeekerID,
		ResumeID:     resume.ID,
		Status:       models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.DatabaseError(err)
	}

	s.sendAsync(seeker.Email,
		"Application received",
		fmt.Sprintf("Thank you for applying %s", posting.CompanyName))

	resp := dto.ToApplicationResponse(application)
	return &resp, nil
}

// WithdrawApplication deletes the application matching both the id and the
// owning seeker. No match reports false without an error, so withdrawing an
// already-withdrawn application looks idempotent to the caller; only storage
// failures surface as errors.
func (s *ApplicationServiceImpl) WithdrawApplication(jobSeekerID, applicationID string) (bool, error) {
	if err := s.applicationRepo.Delete(jobSeekerID, applicationID); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return false, nil
		}
		return false, apperrors.DatabaseError(err)
	}
	return true, nil
}

// UpdateApplication replaces the application's fields wholesale. Only the
// employer who owns the application's posting may call it. A status change
// triggers a notification to the applicant.
func (s *ApplicationServiceImpl) UpdateApplication(employerID, id string, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error) {
	existing, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	posting, err := s.jobPostingRepo.FindByID(existing.JobPostingID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrJobPostingNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	if posting.EmployerID != employerID {
		return nil, apperrors.ErrForbidden
	}

	application := &models.Application{
		ID:           id,
		JobPostingID: req.JobPostingID,
		JobSeekerID:  req.JobSeekerID,
		ResumeID:     req.ResumeID,
		Status:       models.ApplicationStatus(req.Status),
	}

	if err := s.applicationRepo.Update(application); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if existing.Status != application.Status {
		s.notifyStatusChange(application)
	}

	return s.GetApplication(id)
}

func (s *ApplicationServiceImpl) GetApplication(id string) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	resp := dto.ToApplicationResponse(application)
	return &resp, nil
}

func (s *ApplicationServiceImpl) GetApplicationsByJobSeeker(jobSeekerID string) ([]dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.FindByJobSeekerID(jobSeekerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.ToApplicationResponses(applications), nil
}

func (s *ApplicationServiceImpl) GetApplicationsByJobPosting(employerID, jobPostingID string) ([]dto.ApplicationResponse, error) {
	posting, err := s.jobPostingRepo.FindByID(jobPostingID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrJobPostingNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	if posting.EmployerID != employerID {
		return nil, apperrors.ErrForbidden
	}

	applications, err := s.applicationRepo.FindByJobPostingID(jobPostingID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.ToApplicationResponses(applications), nil
}

func (s *ApplicationServiceImpl) notifyStatusChange(application *models.Application) {
	seeker, err := s.jobSeekerRepo.FindByID(application.JobSeekerID)
	if err != nil {
		logger.WithError(err).Error("Failed to load job seeker for status notification",
			"application_id", application.ID)
		return
	}

	posting, err := s.jobPostingRepo.FindByID(application.JobPostingID)
	if err != nil {
		logger.WithError(err).Error("Failed to load job posting for status notification",
			"application_id", application.ID)
		return
	}

	subject := fmt.Sprintf("Your application at %s", posting.CompanyName)
	body := fmt.Sprintf("The status of your application for %s at %s is now: %s",
		posting.JobTitle, posting.CompanyName, application.Status)

	s.sendAsync(seeker.Email, subject, body)
}

// Mail delivery stays off the request path.
func (s *ApplicationServiceImpl) sendAsync(to, subject, body string) {
	go func() {
		if err := s.emailSender.Send(to, subject, body); err != nil {
			logger.WithError(err).Error("Failed to send application email", "to", to)
		}
	}()
}
