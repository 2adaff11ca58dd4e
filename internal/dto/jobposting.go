package dto

import (
	"encoding/json"
	"time"

	"revhire_backend/internal/models"

	"gorm.io/datatypes"
)

type CreateJobPostingRequest struct {
	JobTitle                 string    `json:"job_title" validate:"required,min=2,max=150"`
	JobDescription           string    `json:"job_description" validate:"required"`
	RolesAndResponsibilities string    `json:"roles_and_responsibilities"`
	Location                 string    `json:"location" validate:"required"`
	EmploymentType           string    `json:"employment_type" validate:"omitempty,oneof=full-time part-time contract internship"`
	Salary                   string    `json:"salary"`
	JobCategory              string    `json:"job_category"`
	Skills                   []string  `json:"skills"`
	Experience               string    `json:"experience"`
	Education                string    `json:"education"`
	NumberOfOpenings         int       `json:"number_of_openings" validate:"omitempty,min=1"`
	LastDate                 time.Time `json:"last_date" validate:"required"`
}

type UpdateJobPostingRequest = CreateJobPostingRequest

// SearchJobsRequest binds from the query string. All filters are optional
// and combine with AND.
type SearchJobsRequest struct {
	JobTitle   string `form:"job_title"`
	Location   string `form:"location"`
	Experience string `form:"experience"`
}

type JobPostingResponse struct {
	ID                       string    `json:"id"`
	EmployerID               string    `json:"employer_id"`
	JobTitle                 string    `json:"job_title"`
	JobDescription           string    `json:"job_description"`
	RolesAndResponsibilities string    `json:"roles_and_responsibilities,omitempty"`
	CompanyName              string    `json:"company_name"`
	Location                 string    `json:"location"`
	EmploymentType           string    `json:"employment_type,omitempty"`
	Salary                   string    `json:"salary,omitempty"`
	JobCategory              string    `json:"job_category,omitempty"`
	Skills                   []string  `json:"skills"`
	Experience               string    `json:"experience,omitempty"`
	Education                string    `json:"education,omitempty"`
	NumberOfOpenings         int       `json:"number_of_openings"`
	PostedDate               time.Time `json:"posted_date"`
	LastDate                 time.Time `json:"last_date"`
}

// JobPostingPageResponse is the paginated listing envelope.
type JobPostingPageResponse struct {
	Data       []JobPostingResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
}

func ToJobPostingResponse(p *models.JobPosting) JobPostingResponse {
	return JobPostingResponse{
		ID:                       p.ID,
		EmployerID:               p.EmployerID,
		JobTitle:                 p.JobTitle,
		JobDescription:           p.JobDescription,
		RolesAndResponsibilities: p.RolesAndResponsibilities,
		CompanyName:              p.CompanyName,
		Location:                 p.Location,
		EmploymentType:           p.EmploymentType,
		Salary:                   p.Salary,
		JobCategory:              p.JobCategory,
		Skills:                   SkillsFromJSON(p.Skills),
		Experience:               p.Experience,
		Education:                p.Education,
		NumberOfOpenings:         p.NumberOfOpenings,
		PostedDate:               p.PostedDate,
		LastDate:                 p.LastDate,
	}
}

func ToJobPostingResponses(postings []models.JobPosting) []JobPostingResponse {
	out := make([]JobPostingResponse, 0, len(postings))
	for i := range postings {
		out = append(out, ToJobPostingResponse(&postings[i]))
	}
	return out
}

func SkillsToJSON(skills []string) datatypes.JSON {
	if skills == nil {
		skills = []string{}
	}
	raw, _ := json.Marshal(skills)
	return datatypes.JSON(raw)
}

func SkillsFromJSON(raw datatypes.JSON) []string {
	var skills []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &skills)
	}
	if skills == nil {
		skills = []string{}
	}
	return skills
}
