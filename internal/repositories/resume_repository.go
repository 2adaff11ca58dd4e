package repositories

import (
	"errors"

	"revhire_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrResumeNotFound      = errors.New("resume not found")
	ErrResumeAlreadyExists = errors.New("resume already exists for job seeker")
)

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByID(id string) (*models.Resume, error)
	FindByJobSeekerID(jobSeekerID string) (*models.Resume, error)
	ExistsForJobSeeker(jobSeekerID string) (bool, error)
	Update(resume *models.Resume) error
	Delete(jobSeekerID string) error
	FindByJobPostingID(jobPostingID string) ([]models.Resume, error)
}

type ResumeRepositoryImpl struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &ResumeRepositoryImpl{db: db}
}

func (r *ResumeRepositoryImpl) Create(resume *models.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrResumeAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ResumeRepositoryImpl) FindByID(id string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.First(&resume, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) FindByJobSeekerID(jobSeekerID string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.First(&resume, "job_seeker_id = ?", jobSeekerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) ExistsForJobSeeker(jobSeekerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Resume{}).Where("job_seeker_id = ?", jobSeekerID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update replaces every resume field for the job seeker's resume row.
func (r *ResumeRepositoryImpl) Update(resume *models.Resume) error {
	result := r.db.Model(&models.Resume{}).
		Where("job_seeker_id = ?", resume.JobSeekerID).
		Select("*").
		Omit("id", "job_seeker_id").
		Updates(resume)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func (r *ResumeRepositoryImpl) Delete(jobSeekerID string) error {
	result := r.db.Where("job_seeker_id = ?", jobSeekerID).Delete(&models.Resume{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

// FindByJobPostingID returns the resumes attached to a posting's
// applications, for the employer-side applicant review screen.
func (r *ResumeRepositoryImpl) FindByJobPostingID(jobPostingID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.
		Joins("JOIN applications ON applications.resume_id = resumes.id").
		Where("applications.job_posting_id = ?", jobPostingID).
		Find(&resumes).Error
	if err != nil {
		return nil, err
	}
	return resumes, nil
}
