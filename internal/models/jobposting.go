package models

import (
	"time"

	"gorm.io/datatypes"
)

type JobPosting struct {
	ID                       string `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EmployerID               string `gorm:"type:uuid;not null;index"`
	JobTitle                 string `gorm:"not null"`
	JobDescription           string `gorm:"not null"`
	RolesAndResponsibilities string
	CompanyName              string `gorm:"not null"`
	Location                 string `gorm:"not null"`
	EmploymentType           string
	Salary                   string
	JobCategory              string
	Skills                   datatypes.JSON `gorm:"type:jsonb"`
	Experience               string
	Education                string
	NumberOfOpenings         int       `gorm:"not null;default:1"`
	PostedDate               time.Time `gorm:"not null;autoCreateTime;<-:create"`
	LastDate                 time.Time `gorm:"not null"`

	// Relations
	Applications []Application `gorm:"foreignKey:JobPostingID"`
}
