package services

import (
	"errors"

	"revhire_backend/internal/dto"
	"revhire_backend/internal/models"
	"revhire_backend/internal/repositories"
	"revhire_backend/pkg/apperrors"
)

type JobSeekerService interface {
	GetJobSeeker(id string) (*dto.JobSeekerResponse, error)
	UpdateJobSeeker(id string, req *dto.UpdateJobSeekerRequest) (*dto.JobSeekerResponse, error)
}

type JobSeekerServiceImpl struct {
	jobSeekerRepo repositories.JobSeekerRepository
}

func NewJobSeekerService(jobSeekerRepo repositories.JobSeekerRepository) JobSeekerService {
	return &JobSeekerServiceImpl{jobSeekerRepo: jobSeekerRepo}
}

func (s *JobSeekerServiceImpl) GetJobSeeker(id string) (*dto.JobSeekerResponse, error) {
	seeker, err := s.jobSeekerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobSeekerNotFound) {
			return nil, apperrors.ErrJobSeekerNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	resp := dto.ToJobSeekerResponse(seeker)
	return &resp, nil
}

func (s *JobSeekerServiceImpl) UpdateJobSeeker(id string, req *dto.UpdateJobSeekerRequest) (*dto.JobSeekerResponse, error) {
	seeker := &models.JobSeeker{
		ID:         id,
		FullName:   req.FullName,
		Phone:      req.Phone,
		WorkStatus: req.WorkStatus,
		Promotions: req.Promotions,
	}

	if err := s.jobSeekerRepo.Update(seeker); err != nil {
		if errors.Is(err, repositories.ErrJobSeekerNotFound) {
			return nil, apperrors.ErrJobSeekerNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	return s.GetJobSeeker(id)
}
