package models

import "time"

// Application joins a job seeker, a posting and a resume. The composite
// unique index is the canonical duplicate-application signal; the service
// pre-check only exists as a fast path.
type Application struct {
	ID           string            `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	JobPostingID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_seeker_posting"`
	JobSeekerID  string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_seeker_posting"`
	ResumeID     string            `gorm:"type:uuid;not null"`
	Status       ApplicationStatus `gorm:"type:varchar(50);not null;default:'Pending'"`
	AppliedAt    time.Time         `gorm:"not null;autoCreateTime;<-:create"`
}
