package dto

import "github.com/yigit/alumnet/internal/app/models"

// JobPostingRequest creates or replaces a job posting
type JobPostingRequest struct {
	Title           string         `json:"title" binding:"required,notblank,max=255" example:"Backend Engineer"`
	Company         string         `json:"company" binding:"required,notblank,max=255" example:"Acme"`
	Location        string         `json:"location" binding:"max=255"`
	Description     string         `json:"description"`
	Requirements    string         `json:"requirements"`
	JobType         models.JobType `json:"job_type" binding:"omitempty,oneof=full-time part-time internship contract" example:"full-time"`
	ApplicationLink string         `json:"application_link" binding:"omitempty,url"`
}

// ToModel builds a posting owned by alumniID, defaulting the job type
func (r JobPostingRequest) ToModel(alumniID int64) *models.JobPosting {
	jobType := r.JobType
	if jobType == "" {
		jobType = models.JobTypeFullTime
	}
	return &models.JobPosting{
		AlumniID:        alumniID,
		Title:           r.Title,
		Company:         r.Company,
		Location:        r.Location,
		Description:     r.Description,
		Requirements:    r.Requirements,
		JobType:         jobType,
		ApplicationLink: r.ApplicationLink,
		IsActive:        true,
	}
}

// JobStatusResponse reports the active flag after a toggle
type JobStatusResponse struct {
	IsActive bool `json:"is_active"`
}
