package repositories

import (
	"errors"

	"revhire_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEmployerNotFound = errors.New("employer not found")

type EmployerRepository interface {
	Create(employer *models.Employer) error
	FindByID(id string) (*models.Employer, error)
	FindByEmail(email string) (*models.Employer, error)
	ExistsByEmail(email string) (bool, error)
	Update(employer *models.Employer) error
	UpdatePassword(id, passwordHash string) error
}

type EmployerRepositoryImpl struct {
	db *gorm.DB
}

func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &EmployerRepositoryImpl{db: db}
}

func (r *EmployerRepositoryImpl) Create(employer *models.Employer) error {
	if err := r.db.Create(employer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *EmployerRepositoryImpl) FindByID(id string) (*models.Employer, error) {
	var employer models.Employer
	err := r.db.First(&employer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployerNotFound
		}
		return nil, err
	}
	return &employer, nil
}

// FindByEmail mirrors the job seeker credential lookup: zero rows is
// not-found, more than one row is an integrity failure.
func (r *EmployerRepositoryImpl) FindByEmail(email string) (*models.Employer, error) {
	var employers []models.Employer
	if err := r.db.Where("email = ?", email).Limit(2).Find(&employers).Error; err != nil {
		return nil, err
	}
	switch len(employers) {
	case 0:
		return nil, ErrEmployerNotFound
	case 1:
		return &employers[0], nil
	default:
		return nil, ErrAmbiguousEmail
	}
}

func (r *EmployerRepositoryImpl) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Employer{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *EmployerRepositoryImpl) Update(employer *models.Employer) error {
	result := r.db.Model(&models.Employer{}).Where("id = ?", employer.ID).Updates(map[string]interface{}{
		"company_name":  employer.CompanyName,
		"website_url":   employer.WebsiteURL,
		"industry_type": employer.IndustryType,
		"full_name":     employer.FullName,
		"mobile_number": employer.MobileNumber,
		"designation":   employer.Designation,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployerNotFound
	}
	return nil
}

func (r *EmployerRepositoryImpl) UpdatePassword(id, passwordHash string) error {
	result := r.db.Model(&models.Employer{}).Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployerNotFound
	}
	return nil
}
