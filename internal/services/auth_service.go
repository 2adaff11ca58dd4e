package services

import (
	"errors"

	"revhire_backend/internal/auth"
	"revhire_backend/internal/dto"
	"revhire_backend/internal/email"
	"revhire_backend/internal/logger"
	"revhire_backend/internal/models"
	"revhire_backend/internal/repositories"
	"revhire_backend/pkg/apperrors"
)

const welcomeSubject = "Welcome to RevHire"
const welcomeBody = "Thank you for registering with RevHire!"

type AuthService interface {
	RegisterJobSeeker(req *dto.RegisterJobSeekerRequest) (*dto.JobSeekerResponse, error)
	RegisterEmployer(req *dto.RegisterEmployerRequest) (*dto.EmployerResponse, error)
	LoginJobSeeker(req *dto.LoginRequest) (*dto.LoginResponse, error)
	LoginEmployer(req *dto.LoginRequest) (*dto.LoginResponse, error)
	JobSeekerEmailExists(email string) (bool, error)
	EmployerEmailExists(email string) (bool, error)
	ResetJobSeekerPassword(req *dto.ForgotPasswordRequest) error
	ResetEmployerPassword(req *dto.ForgotPasswordRequest) error
}

type AuthServiceImpl struct {
	jobSeekerRepo repositories.JobSeekerRepository
	employerRepo  repositories.EmployerRepository
	emailSender   email.Sender
}

func NewAuthService(
	jobSeekerRepo repositories.JobSeekerRepository,
	employerRepo repositories.EmployerRepository,
	emailSender email.Sender,
) AuthService {
	return &AuthServiceImpl{
		jobSeekerRepo: jobSeekerRepo,
		employerRepo:  employerRepo,
		emailSender:   emailSender,
	}
}

func (s *AuthServiceImpl) RegisterJobSeeker(req *dto.RegisterJobSeekerRequest) (*dto.JobSeekerResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword.WithDetails(err.Error())
	}

	taken, err := s.jobSeekerRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if taken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	seeker := &models.JobSeeker{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		WorkStatus:   req.WorkStatus,
		Promotions:   req.Promotions,
		Role:         models.RoleJobSeeker,
	}

	if err := s.jobSeekerRepo.Create(seeker); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}

	s.sendWelcomeEmail(seeker.Email)

	resp := dto.ToJobSeekerResponse(seeker)
	return &resp, nil
}

func (s *AuthServiceImpl) RegisterEmployer(req *dto.RegisterEmployerRequest) (*dto.EmployerResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword.WithDetails(err.Error())
	}

	taken, err := s.employerRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if taken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	employer := &models.Employer{
		CompanyName:  req.CompanyName,
		WebsiteURL:   req.WebsiteURL,
		IndustryType: req.IndustryType,
		FullName:     req.FullName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Designation:  req.Designation,
		PasswordHash: hash,
		Role:         models.RoleEmployer,
	}

	if err := s.employerRepo.Create(employer); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}

	s.sendWelcomeEmail(employer.Email)

	resp := dto.ToEmployerResponse(employer)
	return &resp, nil
}

func (s *AuthServiceImpl) LoginJobSeeker(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	seeker, err := s.jobSeekerRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrJobSeekerNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, seeker.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(seeker.ID, string(seeker.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token:    token,
		UserID:   seeker.ID,
		Role:     string(seeker.Role),
		FullName: seeker.FullName,
	}, nil
}

func (s *AuthServiceImpl) LoginEmployer(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	employer, err := s.employerRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, employer.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(employer.ID, string(employer.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token:    token,
		UserID:   employer.ID,
		Role:     string(employer.Role),
		FullName: employer.FullName,
	}, nil
}

func (s *AuthServiceImpl) JobSeekerEmailExists(email string) (bool, error) {
	exists, err := s.jobSeekerRepo.ExistsByEmail(email)
	if err != nil {
		return false, apperrors.DatabaseError(err)
	}
	return exists, nil
}

func (s *AuthServiceImpl) EmployerEmailExists(email string) (bool, error) {
	exists, err := s.employerRepo.ExistsByEmail(email)
	if err != nil {
		return false, apperrors.DatabaseError(err)
	}
	return exists, nil
}

// ResetJobSeekerPassword is the forgot-password flow: the account is looked
// up by email and the password replaced with a fresh hash.
func (s *AuthServiceImpl) ResetJobSeekerPassword(req *dto.ForgotPasswordRequest) error {
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword.WithDetails(err.Error())
	}

	seeker, err := s.jobSeekerRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrJobSeekerNotFound) {
			return apperrors.ErrJobSeekerNotFound
		}
		return apperrors.DatabaseError(err)
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.jobSeekerRepo.UpdatePassword(seeker.ID, hash); err != nil {
		if errors.Is(err, repositories.ErrJobSeekerNotFound) {
			return apperrors.ErrJobSeekerNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *AuthServiceImpl) ResetEmployerPassword(req *dto.ForgotPasswordRequest) error {
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword.WithDetails(err.Error())
	}

	employer, err := s.employerRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return apperrors.ErrEmployerNotFound
		}
		return apperrors.DatabaseError(err)
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.employerRepo.UpdatePassword(employer.ID, hash); err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return apperrors.ErrEmployerNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

// Registration must not fail because the mail server is down, so the send
// happens off the request goroutine and only gets logged on failure.
func (s *AuthServiceImpl) sendWelcomeEmail(to string) {
	go func() {
		if err := s.emailSender.Send(to, welcomeSubject, welcomeBody); err != nil {
			logger.WithError(err).Error("Failed to send welcome email", "to", to)
		}
	}()
}
