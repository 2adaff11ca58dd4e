package services

import (
	"errors"

	"revhire_backend/internal/dto"
	"revhire_backend/internal/models"
	"revhire_backend/internal/repositories"
	"revhire_backend/pkg/apperrors"
)

type JobPostingService interface {
	CreateJobPosting(employerID string, req *dto.CreateJobPostingRequest) (*dto.JobPostingResponse, error)
	GetJobPosting(id string) (*dto.JobPostingResponse, error)
	GetJobPostingsByEmployer(employerID string) ([]dto.JobPostingResponse, error)
	GetAllJobPostings(page, size int) (*dto.JobPostingPageResponse, error)
	SearchJobs(req *dto.SearchJobsRequest) ([]dto.JobPostingResponse, error)
	UpdateJobPosting(employerID, id string, req *dto.UpdateJobPostingRequest) (*dto.JobPostingResponse, error)
	DeleteJobPosting(employerID, id string) error
	GetApplicantCount(id string) (int64, error)
	GetResumesForPosting(employerID, id string) ([]dto.ResumeResponse, error)
}

type JobPostingServiceImpl struct {
	jobPostingRepo repositories.JobPostingRepository
	employerRepo   repositories.EmployerRepository
	resumeRepo     repositories.ResumeRepository
}

func NewJobPostingService(
	jobPostingRepo repositories.JobPostingRepository,
	employerRepo repositories.EmployerRepository,
	resumeRepo repositories.ResumeRepository,
) JobPostingService {
	return &JobPostingServiceImpl{
		jobPostingRepo: jobPostingRepo,
		employerRepo:   employerRepo,
		resumeRepo:     resumeRepo,
	}
}

func (s *JobPostingServiceImpl) CreateJobPosting(employerID string, req *dto.CreateJobPostingRequest) (*dto.JobPostingResponse, error) {
	employer, err := s.employerRepo.FindByID(employerID)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrEmployerNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	openings := req.NumberOfOpenings
	if openings == 0 {
		openings = 1
	}

	posting := &models.JobPosting{
		EmployerID:               employerID,
		JobTitle:                 req.JobTitle,
		JobDescription:           req.JobDescription,
		RolesAndResponsibilities: req.RolesAndResponsibilities,
		CompanyName:              employer.CompanyName,
		Location:                 req.Location,
		EmploymentType:           req.EmploymentType,
		Salary:                   req.Salary,
		JobCategory:              req.JobCategory,
		Skills:                   dto.SkillsToJSON(req.Skills),
		Experience:               req.Experience,
		Education:                req.Education,
		NumberOfOpenings:         openings,
		LastDate:                 req.LastDate,
	}

	if err := s.jobPostingRepo.Create(posting); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := dto.ToJobPostingResponse(posting)
	return &resp, nil
}

func (s *JobPostingServiceImpl) GetJobPosting(id string) (*dto.JobPostingResponse, error) {
	posting, err := s.jobPostingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrJobPostingNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	resp := dto.ToJobPostingResponse(posting)
	return &resp, nil
}

func (s *JobPostingServiceImpl) GetJobPostingsByEmployer(employerID string) ([]dto.JobPostingResponse, error) {
	postings, err := s.jobPostingRepo.FindByEmployerID(employerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.ToJobPostingResponses(postings), nil
}

// GetAllJobPostings rejects non-positive page or size outright instead of
// silently clamping them.
func (s *JobPostingServiceImpl) GetAllJobPostings(page, size int) (*dto.JobPostingPageResponse, error) {
	if page <= 0 || size <= 0 {
		return nil, apperrors.NewBadRequestError("page and size must be positive")
	}

	postings, total, err := s.jobPostingRepo.FindAll(page, size)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.JobPostingPageResponse{
		Data:       dto.ToJobPostingResponses(postings),
		TotalCount: total,
	}, nil
}

func (s *JobPostingServiceImpl) SearchJobs(req *dto.SearchJobsRequest) ([]dto.JobPostingResponse, error) {
	postings, err := s.jobPostingRepo.Search(repositories.SearchFilter{
		JobTitle:   req.JobTitle,
		Location:   req.Location,
		Experience: req.Experience,
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.ToJobPostingResponses(postings), nil
}

func (s *JobPostingServiceImpl) UpdateJobPosting(employerID, id string, req *dto.UpdateJobPostingRequest) (*dto.JobPostingResponse, error) {
	existing, err := s.findOwnedPosting(employerID, id)
	if err != nil {
		return nil, err
	}

	openings := req.NumberOfOpenings
	if openings == 0 {
		openings = 1
	}

	posting := &models.JobPosting{
		ID:                       existing.ID,
		JobTitle:                 req.JobTitle,
		JobDescription:           req.JobDescription,
		RolesAndResponsibilities: req.RolesAndResponsibilities,
		CompanyName:              existing.CompanyName,
		Location:                 req.Location,
		EmploymentType:           req.EmploymentType,
		Salary:                   req.Salary,
		JobCategory:              req.JobCategory,
		Skills:                   dto.SkillsToJSON(req.Skills),
		Experience:               req.Experience,
		Education:                req.Education,
		NumberOfOpenings:         openings,
		LastDate:                 req.LastDate,
	}

	if err := s.jobPostingRepo.Update(posting); err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrJobPostingNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	return s.GetJobPosting(id)
}

// DeleteJobPosting removes the posting together with its applications. The
// repository runs both deletes in one transaction.
func (s *JobPostingServiceImpl) DeleteJobPosting(employerID, id string) error {
	if _, err := s.findOwnedPosting(employerID, id); err != nil {
		return err
	}

	if err := s.jobPostingRepo.DeleteWithApplications(id); err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return apperrors.ErrJobPostingNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *JobPostingServiceImpl) GetApplicantCount(id string) (int64, error) {
	if _, err := s.jobPostingRepo.FindByID(id); err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return 0, apperrors.ErrJobPostingNotFound
		}
		return 0, apperrors.DatabaseError(err)
	}

	count, err := s.jobPostingRepo.CountApplicants(id)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	return count, nil
}

// GetResumesForPosting lists the resumes of everyone who applied to the
// employer's posting.
func (s *JobPostingServiceImpl) GetResumesForPosting(employerID, id string) ([]dto.ResumeResponse, error) {
	if _, err := s.findOwnedPosting(employerID, id); err != nil {
		return nil, err
	}

	resumes, err := s.resumeRepo.FindByJobPostingID(id)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.ToResumeResponses(resumes), nil
}

// findOwnedPosting loads the posting and checks it belongs to the employer.
func (s *JobPostingServiceImpl) findOwnedPosting(employerID, id string) (*models.JobPosting, error) {
	posting, err := s.jobPostingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobPostingNotFound) {
			return nil, apperrors.ErrJobPostingNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	if posting.EmployerID != employerID {
		return nil, apperrors.ErrForbidden
	}
	return posting, nil
}
