package services

import (
	"errors"

	"revhire_backend/internal/dto"
	"revhire_backend/internal/repositories"
	"revhire_backend/pkg/apperrors"
)

type ResumeService interface {
	CreateResume(jobSeekerID string, req *dto.ResumeRequest) (*dto.ResumeResponse, error)
	GetResume(jobSeekerID string) (*dto.ResumeResponse, error)
	UpdateResume(jobSeekerID string, req *dto.ResumeRequest) (*dto.ResumeResponse, error)
	DeleteResume(jobSeekerID string) error
	HasResume(jobSeekerID string) (bool, error)
}

type ResumeServiceImpl struct {
	resumeRepo    repositories.ResumeRepository
	jobSeekerRepo repositories.JobSeekerRepository
}

func NewResumeService(
	resumeRepo repositories.ResumeRepository,
	jobSeekerRepo repositories.JobSeekerRepository,
) ResumeService {
	return &ResumeServiceImpl{
		resumeRepo:    resumeRepo,
		jobSeekerRepo: jobSeekerRepo,
	}
}

func (s *ResumeServiceImpl) CreateResume(jobSeekerID string, req *dto.ResumeRequest) (*dto.ResumeResponse, error) {
	if _, err := s.jobSeekerRepo.FindByID(jobSeekerID); err != nil {
		if errors.Is(err, repositories.ErrJobSeekerNotFound) {
			return nil, apperrors.ErrJobSeekerNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	resume := req.ToModel(jobSeekerID)
	if err := s.resumeRepo.Create(resume); err != nil {
		if errors.Is(err, repositories.ErrResumeAlreadyExists) {
			return nil, apperrors.ErrResumeAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}

	resp := dto.ToResumeResponse(resume)
	return &resp, nil
}

func (s *ResumeServiceImpl) GetResume(jobSeekerID string) (*dto.ResumeResponse, error) {
	resume, err := s.resumeRepo.FindByJobSeekerID(jobSeekerID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.ErrResumeNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	resp := dto.ToResumeResponse(resume)
	return &resp, nil
}

func (s *ResumeServiceImpl) UpdateResume(jobSeekerID string, req *dto.ResumeRequest) (*dto.ResumeResponse, error) {
	resume := req.ToModel(jobSeekerID)
	if err := s.resumeRepo.Update(resume); err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.ErrResumeNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	return s.GetResume(jobSeekerID)
}

func (s *ResumeServiceImpl) DeleteResume(jobSeekerID string) error {
	if err := s.resumeRepo.Delete(jobSeekerID); err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return apperrors.ErrResumeNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

// HasResume backs the pre-application check on the frontend: a seeker
// without a resume cannot apply.
func (s *ResumeServiceImpl) HasResume(jobSeekerID string) (bool, error) {
	exists, err := s.resumeRepo.ExistsForJobSeeker(jobSeekerID)
	if err != nil {
		return false, apperrors.DatabaseError(err)
	}
	return exists, nil
}
