package models

import "time"

type Employer struct {
	ID           string `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CompanyName  string `gorm:"not null"`
	WebsiteURL   string
	IndustryType string
	FullName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	MobileNumber string
	Designation  string
	PasswordHash string    `gorm:"not null"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'employee'"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime;<-:create"`

	// Relations
	JobPostings []JobPosting `gorm:"foreignKey:EmployerID"`
}
