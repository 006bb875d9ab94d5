package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/app/repositories"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
)

// JobService defines the interface for job posting operations
type JobService interface {
	ListActive(ctx context.Context, filter models.JobFilter) ([]*models.JobListing, error)
	Search(ctx context.Context, query string) ([]*models.JobListing, error)
	GetByID(ctx context.Context, id int64) (*models.JobListing, error)
	ListMine(ctx context.Context, alumniID int64) ([]*models.JobPosting, error)
	Create(ctx context.Context, alumniID int64, req *dto.JobPostingRequest) (*models.JobPosting, error)
	Update(ctx context.Context, alumniID, id int64, req *dto.JobPostingRequest) (*models.JobPosting, error)
	ToggleActive(ctx context.Context, alumniID, id int64) (bool, error)
	Delete(ctx context.Context, actorID int64, actorRole models.Role, id int64) error
	Stats(ctx context.Context) (*models.JobStats, error)
}

type jobServiceImpl struct {
	jobRepo repositories.IJobRepository
	logger  zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repositories.IJobRepository, logger zerolog.Logger) JobService {
	return &jobServiceImpl{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

var errJobNotFound = apperrors.NewCustomError(apperrors.ErrJobNotFound, "Job not found")

func (s *jobServiceImpl) ListActive(ctx context.Context, filter models.JobFilter) ([]*models.JobListing, error) {
	jobs, err := s.jobRepo.ListActive(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobServiceImpl) Search(ctx context.Context, query string) ([]*models.JobListing, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewBadRequestError("Search query is required")
	}
	jobs, err := s.jobRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error searching jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobServiceImpl) GetByID(ctx context.Context, id int64) (*models.JobListing, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapJobError(err)
	}
	return job, nil
}

func (s *jobServiceImpl) ListMine(ctx context.Context, alumniID int64) ([]*models.JobPosting, error) {
	jobs, err := s.jobRepo.ListByAlumni(ctx, alumniID)
	if err != nil {
		return nil, fmt.Errorf("error listing own jobs: %w", err)
	}
	return jobs, nil
}

// Create publishes an active posting owned by alumniID
func (s *jobServiceImpl) Create(ctx context.Context, alumniID int64, req *dto.JobPostingRequest) (*models.JobPosting, error) {
	job := req.ToModel(alumniID)
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("error creating job: %w", err)
	}
	s.logger.Info().Int64("jobID", job.ID).Int64("alumniID", alumniID).Msg("Job posting created")
	return job, nil
}

// Update replaces the fields of a posting owned by alumniID. The active flag is left untouched.
func (s *jobServiceImpl) Update(ctx context.Context, alumniID, id int64, req *dto.JobPostingRequest) (*models.JobPosting, error) {
	if _, err := s.ownedJob(ctx, alumniID, id); err != nil {
		return nil, err
	}

	job := req.ToModel(alumniID)
	job.ID = id
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, mapJobError(err)
	}
	return job, nil
}

// ToggleActive flips the active flag of a posting owned by alumniID
func (s *jobServiceImpl) ToggleActive(ctx context.Context, alumniID, id int64) (bool, error) {
	if _, err := s.ownedJob(ctx, alumniID, id); err != nil {
		return false, err
	}
	isActive, err := s.jobRepo.ToggleActive(ctx, id)
	if err != nil {
		return false, mapJobError(err)
	}
	return isActive, nil
}

// Delete removes a posting. Owners and admins may delete.
func (s *jobServiceImpl) Delete(ctx context.Context, actorID int64, actorRole models.Role, id int64) error {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return mapJobError(err)
	}
	if job.AlumniID != actorID && actorRole != models.RoleAdmin {
		return apperrors.NewForbiddenError("Not authorized to delete this job")
	}
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return mapJobError(err)
	}
	s.logger.Info().Int64("jobID", id).Int64("deletedBy", actorID).Msg("Job posting deleted")
	return nil
}

func (s *jobServiceImpl) Stats(ctx context.Context) (*models.JobStats, error) {
	stats, err := s.jobRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting jobs: %w", err)
	}
	return stats, nil
}

func (s *jobServiceImpl) ownedJob(ctx context.Context, alumniID, id int64) (*models.JobListing, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapJobError(err)
	}
	if job.AlumniID != alumniID {
		return nil, apperrors.NewForbiddenError("Not authorized to modify this job")
	}
	return job, nil
}

func mapJobError(err error) error {
	if errors.Is(err, apperrors.ErrJobNotFound) {
		return errJobNotFound
	}
	return fmt.Errorf("error accessing job: %w", err)
}
