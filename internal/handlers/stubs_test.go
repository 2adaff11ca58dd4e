package handlers

import (
	"revhire_backend/internal/dto"
	"revhire_backend/pkg/apperrors"
)

// Service stubs driven by function fields. A nil field means the endpoint
// under test should never reach that method.

type stubAuthService struct {
	registerJobSeekerFn func(req *dto.RegisterJobSeekerRequest) (*dto.JobSeekerResponse, error)
	loginJobSeekerFn    func(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

func (s *stubAuthService) RegisterJobSeeker(req *dto.RegisterJobSeekerRequest) (*dto.JobSeekerResponse, error) {
	return s.registerJobSeekerFn(req)
}

func (s *stubAuthService) RegisterEmployer(req *dto.RegisterEmployerRequest) (*dto.EmployerResponse, error) {
	panic("not stubbed")
}

func (s *stubAuthService) LoginJobSeeker(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginJobSeekerFn(req)
}

func (s *stubAuthService) LoginEmployer(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	panic("not stubbed")
}

func (s *stubAuthService) JobSeekerEmailExists(email string) (bool, error) { return false, nil }
func (s *stubAuthService) EmployerEmailExists(email string) (bool, error)  { return false, nil }

func (s *stubAuthService) ResetJobSeekerPassword(req *dto.ForgotPasswordRequest) error {
	panic("not stubbed")
}

func (s *stubAuthService) ResetEmployerPassword(req *dto.ForgotPasswordRequest) error {
	panic("not stubbed")
}

type stubJobPostingService struct {
	getAllFn func(page, size int) (*dto.JobPostingPageResponse, error)
	searchFn func(req *dto.SearchJobsRequest) ([]dto.JobPostingResponse, error)
	getFn    func(id string) (*dto.JobPostingResponse, error)
}

func (s *stubJobPostingService) CreateJobPosting(employerID string, req *dto.CreateJobPostingRequest) (*dto.JobPostingResponse, error) {
	panic("not stubbed")
}

func (s *stubJobPostingService) GetJobPosting(id string) (*dto.JobPostingResponse, error) {
	if s.getFn == nil {
		return nil, apperrors.ErrJobPostingNotFound
	}
	return s.getFn(id)
}

func (s *stubJobPostingService) GetJobPostingsByEmployer(employerID string) ([]dto.JobPostingResponse, error) {
	panic("not stubbed")
}

func (s *stubJobPostingService) GetAllJobPostings(page, size int) (*dto.JobPostingPageResponse, error) {
	return s.getAllFn(page, size)
}

func (s *stubJobPostingService) SearchJobs(req *dto.SearchJobsRequest) ([]dto.JobPostingResponse, error) {
	return s.searchFn(req)
}

func (s *stubJobPostingService) UpdateJobPosting(employerID, id string, req *dto.UpdateJobPostingRequest) (*dto.JobPostingResponse, error) {
	panic("not stubbed")
}

func (s *stubJobPostingService) DeleteJobPosting(employerID, id string) error {
	panic("not stubbed")
}

func (s *stubJobPostingService) GetApplicantCount(id string) (int64, error) {
	panic("not stubbed")
}

func (s *stubJobPostingService) GetResumesForPosting(employerID, id string) ([]dto.ResumeResponse, error) {
	panic("not stubbed")
}
