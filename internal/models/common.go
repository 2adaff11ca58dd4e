package models

type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employee"
)

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "Pending"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
)
