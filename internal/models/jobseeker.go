package models

import "time"

type JobSeeker struct {
	ID           string `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FullName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Phone        string `gorm:"not null"`
	WorkStatus   string `gorm:"not null"`
	Promotions   bool   `gorm:"not null;default:false"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'jobseeker'"`

	// Set once on first persist, never overwritten by updates.
	RegistrationTime time.Time `gorm:"not null;autoCreateTime;<-:create"`

	// Relations
	Resume       *Resume       `gorm:"foreignKey:JobSeekerID"`
	Applications []Application `gorm:"foreignKey:JobSeekerID"`
}
