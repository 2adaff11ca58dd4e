package repositories

import (
	"errors"

	"revhire_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobPostingNotFound = errors.New("job posting not found")

// SearchFilter carries the optional search criteria. Empty fields do not
// constrain the result; non-empty fields combine conjunctively as
// case-sensitive substring matches.
type SearchFilter struct {
	JobTitle   string
	Location   string
	Experience string
}

type JobPostingRepository interface {
	Create(posting *models.JobPosting) error
	FindByID(id string) (*models.JobPosting, error)
	FindByEmployerID(employerID string) ([]models.JobPosting, error)
	FindAll(page, size int) ([]models.JobPosting, int64, error)
	Search(filter SearchFilter) ([]models.JobPosting, error)
	Update(posting *models.JobPosting) error
	DeleteWithApplications(id string) error
	CountApplicants(id string) (int64, error)
}

type JobPostingRepositoryImpl struct {
	db *gorm.DB
}

func NewJobPostingRepository(db *gorm.DB) JobPostingRepository {
	return &JobPostingRepositoryImpl{db: db}
}

func (r *JobPostingRepositoryImpl) Create(posting *models.JobPosting) error {
	return r.db.Create(posting).Error
}

func (r *JobPostingRepositoryImpl) FindByID(id string) (*models.JobPosting, error) {
	var posting models.JobPosting
	err := r.db.First(&posting, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostingNotFound
		}
		return nil, err
	}
	return &posting, nil
}

func (r *JobPostingRepositoryImpl) FindByEmployerID(employerID string) ([]models.JobPosting, error) {
	var postings []models.JobPosting
	err := r.db.
		Where("employer_id = ?", employerID).
		Order("posted_date DESC").
		Find(&postings).Error
	if err != nil {
		return nil, err
	}
	return postings, nil
}

// FindAll returns one page of postings plus the total row count, so the
// caller can compute the page count. Page numbering starts at 1.
func (r *JobPostingRepositoryImpl) FindAll(page, size int) ([]models.JobPosting, int64, error) {
	var total int64
	if err := r.db.Model(&models.JobPosting{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var postings []models.JobPosting
	err := r.db.
		Order("posted_date DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&postings).Error
	if err != nil {
		return nil, 0, err
	}
	return postings, total, nil
}

func (r *JobPostingRepositoryImpl) Search(filter SearchFilter) ([]models.JobPosting, error) {
	query := r.db.Model(&models.JobPosting{})

	if filter.JobTitle != "" {
		query = query.Where("job_title LIKE ?", "%"+filter.JobTitle+"%")
	}
	if filter.Location != "" {
		query = query.Where("location LIKE ?", "%"+filter.Location+"%")
	}
	if filter.Experience != "" {
		query = query.Where("experience LIKE ?", "%"+filter.Experience+"%")
	}

	var postings []models.JobPosting
	if err := query.Order("posted_date DESC").Find(&postings).Error; err != nil {
		return nil, err
	}
	return postings, nil
}

func (r *JobPostingRepositoryImpl) Update(posting *models.JobPosting) error {
	result := r.db.Model(&models.JobPosting{}).Where("id = ?", posting.ID).Updates(map[string]interface{}{
		"job_title":                  posting.JobTitle,
		"job_description":            posting.JobDescription,
		"roles_and_responsibilities": posting.RolesAndResponsibilities,
		"company_name":               posting.CompanyName,
		"location":                   posting.Location,
		"employment_type":            posting.EmploymentType,
		"salary":                     posting.Salary,
		"job_category":               posting.JobCategory,
		"skills":                     posting.Skills,
		"experience":                 posting.Experience,
		"education":                  posting.Education,
		"number_of_openings":         posting.NumberOfOpenings,
		"last_date":                  posting.LastDate,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobPostingNotFound
	}
	return nil
}

// DeleteWithApplications removes the posting and all applications that
// reference it inside a single transaction. Either both disappear or
// neither does.
func (r *JobPostingRepositoryImpl) DeleteWithApplications(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_posting_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.JobPosting{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobPostingNotFound
		}
		return nil
	})
}

func (r *JobPostingRepositoryImpl) CountApplicants(id string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("job_posting_id = ?", id).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
