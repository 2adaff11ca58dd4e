package models

// Resume is a one-to-one profile document: the unique index on JobSeekerID
// rejects a second resume for the same seeker at the storage layer.
type Resume struct {
	ID          string `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	JobSeekerID string `gorm:"type:uuid;not null;uniqueIndex"`

	Headline         string `gorm:"not null"`
	FirstName        string `gorm:"not null"`
	MiddleName       string
	LastName         string `gorm:"not null"`
	Email            string `gorm:"not null"`
	PhoneNumber      string `gorm:"not null"`
	DateOfBirth      string `gorm:"not null"`
	Languages        string
	LinkedinURL      string
	PermanentAddress string
	CurrentAddress   string
	ProfilePhoto     string // path or URL only, no file storage here

	Tenth          string
	TenthYear      string
	Twelfth        string
	TwelfthYear    string
	Graduation     string
	GraduationYear string
	PostGraduation string
	PGStatus       string

	Skills                 string
	ProjectTitle           string
	ProjectDescription     string
	CertificateName        string
	CertificateDescription string

	// Single employment entry
	CompanyName    string
	StartDate      string
	EndDate        string
	JobTitle       string
	JobDescription string
}
