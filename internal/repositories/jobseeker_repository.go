package repositories

import (
	"errors"

	"revhire_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobSeekerNotFound = errors.New("job seeker not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrAmbiguousEmail    = errors.New("multiple accounts registered for email")
)

type JobSeekerRepository interface {
	Create(seeker *models.JobSeeker) error
	FindByID(id string) (*models.JobSeeker, error)
	FindByEmail(email string) (*models.JobSeeker, error)
	ExistsByEmail(email string) (bool, error)
	Update(seeker *models.JobSeeker) error
	UpdatePassword(id, passwordHash string) error
}

type JobSeekerRepositoryImpl struct {
	db *gorm.DB
}

func NewJobSeekerRepository(db *gorm.DB) JobSeekerRepository {
	return &JobSeekerRepositoryImpl{db: db}
}

func (r *JobSeekerRepositoryImpl) Create(seeker *models.JobSeeker) error {
	if err := r.db.Create(seeker).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *JobSeekerRepositoryImpl) FindByID(id string) (*models.JobSeeker, error) {
	var seeker models.JobSeeker
	err := r.db.First(&seeker, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobSeekerNotFound
		}
		return nil, err
	}
	return &seeker, nil
}

// FindByEmail is the credential lookup. Exactly one row must match: zero
// rows is not-found, more than one means the unique index was bypassed and
// the account state is unusable.
func (r *JobSeekerRepositoryImpl) FindByEmail(email string) (*models.JobSeeker, error) {
	var seekers []models.JobSeeker
	if err := r.db.Where("email = ?", email).Limit(2).Find(&seekers).Error; err != nil {
		return nil, err
	}
	switch len(seekers) {
	case 0:
		return nil, ErrJobSeekerNotFound
	case 1:
		return &seekers[0], nil
	default:
		return nil, ErrAmbiguousEmail
	}
}

func (r *JobSeekerRepositoryImpl) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.JobSeeker{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *JobSeekerRepositoryImpl) Update(seeker *models.JobSeeker) error {
	result := r.db.Model(&models.JobSeeker{}).Where("id = ?", seeker.ID).Updates(map[string]interface{}{
		"full_name":   seeker.FullName,
		"phone":       seeker.Phone,
		"work_status": seeker.WorkStatus,
		"promotions":  seeker.Promotions,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobSeekerNotFound
	}
	return nil
}

func (r *JobSeekerRepositoryImpl) UpdatePassword(id, passwordHash string) error {
	result := r.db.Model(&models.JobSeeker{}).Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobSeekerNotFound
	}
	return nil
}
