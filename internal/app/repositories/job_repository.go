package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/dberrors"
	"github.com/yigit/alumnet/internal/pkg/helpers"
)

const (
	jobColumns = `j.id, j.alumni_id, j.title, j.company, j.location, j.description, j.requirements,
		j.job_type, j.application_link, j.is_active, j.created_at, j.updated_at`

	jobListingSelect = `SELECT ` + jobColumns + `, u.name, u.email
		FROM job_postings j
		JOIN users u ON u.id = j.alumni_id`
)

// JobRepository handles job posting database operations
type JobRepository struct {
	db *pgxpool.Pool
}

var _ IJobRepository = (*JobRepository)(nil)

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

func jobDest(j *models.JobPosting) []interface{} {
	return []interface{}{&j.ID, &j.AlumniID, &j.Title, &j.Company, &j.Location, &j.Description,
		&j.Requirements, &j.JobType, &j.ApplicationLink, &j.IsActive, &j.CreatedAt, &j.UpdatedAt}
}

func scanJobListing(row pgx.Row) (*models.JobListing, error) {
	listing := &models.JobListing{}
	dest := append(jobDest(&listing.JobPosting), &listing.AlumniName, &listing.AlumniEmail)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return listing, nil
}

func (r *JobRepository) queryListings(ctx context.Context, where *helpers.WhereBuilder) ([]*models.JobListing, error) {
	clause, args := where.Build()
	rows, err := r.db.Query(ctx, jobListingSelect+clause+` ORDER BY j.created_at DESC, j.id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying job postings: %w", err)
	}
	return collectRows(rows, scanJobListing)
}

// Create inserts a job posting
func (r *JobRepository) Create(ctx context.Context, job *models.JobPosting) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO job_postings
			(alumni_id, title, company, location, description, requirements, job_type, application_link, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		job.AlumniID, job.Title, job.Company, job.Location, job.Description, job.Requirements,
		job.JobType, job.ApplicationLink, job.IsActive).
		Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if dberrors.IsForeignKeyError(err) {
		return apperrors.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("error creating job posting: %w", err)
	}
	return nil
}

// GetByID retrieves a posting, active or not, with its owner's name
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.JobListing, error) {
	listing, err := scanJobListing(r.db.QueryRow(ctx, jobListingSelect+` WHERE j.id = $1`, id))
	if dberrors.IsNoRows(err) {
		return nil, apperrors.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting job posting %d: %w", id, err)
	}
	return listing, nil
}

// ListActive returns active postings matching filter, newest first
func (r *JobRepository) ListActive(ctx context.Context, filter models.JobFilter) ([]*models.JobListing, error) {
	where := helpers.NewWhereBuilder().
		AddRaw("j.is_active = TRUE").
		AddIfNotEmpty("j.company", filter.Company).
		AddIfNotEmpty("j.location", filter.Location)
	if filter.JobType != "" {
		where.Add("j.job_type = ?", filter.JobType)
	}
	return r.queryListings(ctx, where)
}

// Search matches query against the text fields of active postings
func (r *JobRepository) Search(ctx context.Context, query string) ([]*models.JobListing, error) {
	where := helpers.NewWhereBuilder().
		AddRaw("j.is_active = TRUE").
		AddSearch(query, "j.title", "j.company", "j.location", "j.description", "j.requirements")
	return r.queryListings(ctx, where)
}

// ListByAlumni returns every posting created by alumniID, active or not
func (r *JobRepository) ListByAlumni(ctx context.Context, alumniID int64) ([]*models.JobPosting, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+jobColumns+`
		FROM job_postings j
		WHERE j.alumni_id = $1
		ORDER BY j.created_at DESC, j.id DESC`, alumniID)
	if err != nil {
		return nil, fmt.Errorf("error listing job postings of alumni %d: %w", alumniID, err)
	}
	return collectRows(rows, func(row pgx.Row) (*models.JobPosting, error) {
		job := &models.JobPosting{}
		return job, row.Scan(jobDest(job)...)
	})
}

// Update replaces the editable fields of job and stamps updated_at
func (r *JobRepository) Update(ctx context.Context, job *models.JobPosting) error {
	err := r.db.QueryRow(ctx, `
		UPDATE job_postings j
		SET title = $2, company = $3, location = $4, description = $5, requirements = $6,
			job_type = $7, application_link = $8, updated_at = NOW()
		WHERE j.id = $1
		RETURNING `+jobColumns,
		job.ID, job.Title, job.Company, job.Location, job.Description, job.Requirements,
		job.JobType, job.ApplicationLink).
		Scan(jobDest(job)...)
	if dberrors.IsNoRows(err) {
		return apperrors.ErrJobNotFound
	}
	if err != nil {
		return fmt.Errorf("error updating job posting %d: %w", job.ID, err)
	}
	return nil
}

// ToggleActive flips is_active and returns the new value
func (r *JobRepository) ToggleActive(ctx context.Context, id int64) (bool, error) {
	var isActive bool
	err := r.db.QueryRow(ctx, `
		UPDATE job_postings
		SET is_active = NOT is_active
		WHERE id = $1
		RETURNING is_active`, id).Scan(&isActive)
	if dberrors.IsNoRows(err) {
		return false, apperrors.ErrJobNotFound
	}
	if err != nil {
		return false, fmt.Errorf("error toggling job posting %d: %w", id, err)
	}
	return isActive, nil
}

// Delete removes a posting
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting job posting %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

// Stats counts postings by activity
func (r *JobRepository) Stats(ctx context.Context) (*models.JobStats, error) {
	stats := &models.JobStats{}
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_active),
			COUNT(*) FILTER (WHERE NOT is_active)
		FROM job_postings`).Scan(&stats.Total, &stats.Active, &stats.Inactive)
	if err != nil {
		return nil, fmt.Errorf("error counting job postings: %w", err)
	}
	return stats, nil
}
