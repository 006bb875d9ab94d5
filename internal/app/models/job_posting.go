package models

import "time"

// JobType classifies a job posting
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeInternship JobType = "internship"
	JobTypeContract   JobType = "contract"
)

// IsValid reports whether t is a known job type
func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract:
		return true
	}
	return false
}

// JobPosting is an opening shared by an alumni
type JobPosting struct {
	ID              int64     `json:"id" db:"id"`
	AlumniID        int64     `json:"alumni_id" db:"alumni_id"`
	Title           string    `json:"title" db:"title"`
	Company         string    `json:"company" db:"company"`
	Location        string    `json:"location" db:"location"`
	Description     string    `json:"description" db:"description"`
	Requirements    string    `json:"requirements" db:"requirements"`
	JobType         JobType   `json:"job_type" db:"job_type"`
	ApplicationLink string    `json:"application_link" db:"application_link"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// JobListing is a posting joined with the posting alumni's name
type JobListing struct {
	JobPosting
	AlumniName  string `json:"alumni_name"`
	AlumniEmail string `json:"alumni_email,omitempty"`
}

// JobFilter narrows the active job listing. Empty fields do not filter.
type JobFilter struct {
	JobType  JobType
	Company  string
	Location string
}

// JobStats counts postings by activity
type JobStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}
