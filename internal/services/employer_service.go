package services

import (
	"errors"

	"revhire_backend/internal/dto"
	"revhire_backend/internal/models"
	"revhire_backend/internal/repositories"
	"revhire_backend/pkg/apperrors"
)

type EmployerService interface {
	GetEmployer(id string) (*dto.EmployerResponse, error)
	UpdateEmployer(id string, req *dto.UpdateEmployerRequest) (*dto.EmployerResponse, error)
}

type EmployerServiceImpl struct {
	employerRepo repositories.EmployerRepository
}

func NewEmployerService(employerRepo repositories.EmployerRepository) EmployerService {
	return &EmployerServiceImpl{employerRepo: employerRepo}
}

func (s *EmployerServiceImpl) GetEmployer(id string) (*dto.EmployerResponse, error) {
	employer, err := s.employerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrEmployerNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	resp := dto.ToEmployerResponse(employer)
	return &resp, nil
}

func (s *EmployerServiceImpl) UpdateEmployer(id string, req *dto.UpdateEmployerRequest) (*dto.EmployerResponse, error) {
	employer := &models.Employer{
		ID:           id,
		CompanyName:  req.CompanyName,
		WebsiteURL:   req.WebsiteURL,
		IndustryType: req.IndustryType,
		FullName:     req.FullName,
		MobileNumber: req.MobileNumber,
		Designation:  req.Designation,
	}

	if err := s.employerRepo.Update(employer); err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrEmployerNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	return s.GetEmployer(id)
}
