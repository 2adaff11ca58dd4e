package repositories

import (
	"errors"

	"revhire_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for job seeker and posting")
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindBySeekerAndPosting(jobSeekerID, jobPostingID string) (*models.Application, error)
	FindByJobSeekerID(jobSeekerID string) ([]models.Application, error)
	FindByJobPostingID(jobPostingID string) ([]models.Application, error)
	Update(application *models.Application) error
	Delete(jobSeekerID, applicationID string) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create relies on the (job_seeker_id, job_posting_id) unique index to
// reject a second application even under concurrent submits.
func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	if err := r.db.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindBySeekerAndPosting(jobSeekerID, jobPostingID string) (*models.Application, error) {
	var application models.Application
	err := r.db.
		Where("job_seeker_id = ? AND job_posting_id = ?", jobSeekerID, jobPostingID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByJobSeekerID(jobSeekerID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Where("job_seeker_id = ?", jobSeekerID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) FindByJobPostingID(jobPostingID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Where("job_posting_id = ?", jobPostingID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// Update replaces the mutable application fields, status included.
func (r *ApplicationRepositoryImpl) Update(application *models.Application) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", application.ID).Updates(map[string]interface{}{
		"job_posting_id": application.JobPostingID,
		"job_seeker_id":  application.JobSeekerID,
		"resume_id":      application.ResumeID,
		"status":         application.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// Delete removes the application only when both the id and the owning
// seeker match. Zero affected rows means there was nothing to withdraw.
func (r *ApplicationRepositoryImpl) Delete(jobSeekerID, applicationID string) error {
	result := r.db.
		Where("id = ? AND job_seeker_id = ?", applicationID, jobSeekerID).
		Delete(&models.Application{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
