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
	profileColumns = `p.id, p.user_id, p.batch, p.phone, p.company, p.designation, p.location,
		p.skills, p.linkedin, p.bio, p.is_mentor, p.created_at, p.updated_at`

	directorySelect = `SELECT ` + profileColumns + `, u.name, u.email
		FROM alumni_profiles p
		JOIN users u ON u.id = p.user_id`
)

// AlumniProfileRepository handles alumni profile database operations
type AlumniProfileRepository struct {
	db *pgxpool.Pool
}

var _ IAlumniProfileRepository = (*AlumniProfileRepository)(nil)

// NewAlumniProfileRepository creates a new AlumniProfileRepository
func NewAlumniProfileRepository(db *pgxpool.Pool) *AlumniProfileRepository {
	return &AlumniProfileRepository{db: db}
}

func profileDest(p *models.AlumniProfile) []interface{} {
	return []interface{}{&p.ID, &p.UserID, &p.Batch, &p.Phone, &p.Company, &p.Designation,
		&p.Location, &p.Skills, &p.LinkedIn, &p.Bio, &p.IsMentor, &p.CreatedAt, &p.UpdatedAt}
}

func scanDirectoryEntry(row pgx.Row) (*models.AlumniDirectoryEntry, error) {
	entry := &models.AlumniDirectoryEntry{}
	dest := append(profileDest(&entry.AlumniProfile), &entry.Name, &entry.Email)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *AlumniProfileRepository) queryDirectory(ctx context.Context, where *helpers.WhereBuilder, orderBy string) ([]*models.AlumniDirectoryEntry, error) {
	clause, args := where.Build()
	rows, err := r.db.Query(ctx, directorySelect+clause+` ORDER BY `+orderBy, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying alumni directory: %w", err)
	}
	return collectRows(rows, scanDirectoryEntry)
}

// approvedAlumni restricts the directory to approved alumni accounts
func approvedAlumni() *helpers.WhereBuilder {
	return helpers.NewWhereBuilder().
		Add("u.role = ?", models.RoleAlumni).
		AddRaw("u.is_approved = TRUE")
}

// GetByUserID returns the profile owned by userID
func (r *AlumniProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.AlumniProfile, error) {
	profile := &models.AlumniProfile{}
	err := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM alumni_profiles p WHERE p.user_id = $1`, userID).
		Scan(profileDest(profile)...)
	if dberrors.IsNoRows(err) {
		return nil, apperrors.ErrAlumniProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting alumni profile for user %d: %w", userID, err)
	}
	return profile, nil
}

// GetDirectoryEntry returns the public profile of an alumni user
func (r *AlumniProfileRepository) GetDirectoryEntry(ctx context.Context, userID int64) (*models.AlumniDirectoryEntry, error) {
	entry, err := scanDirectoryEntry(r.db.QueryRow(ctx, directorySelect+` WHERE p.user_id = $1 AND u.role = $2`,
		userID, models.RoleAlumni))
	if dberrors.IsNoRows(err) {
		return nil, apperrors.ErrAlumniProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting alumni profile for user %d: %w", userID, err)
	}
	return entry, nil
}

// List returns approved alumni matching filter, most recently updated first
func (r *AlumniProfileRepository) List(ctx context.Context, filter models.AlumniFilter) ([]*models.AlumniDirectoryEntry, error) {
	where := approvedAlumni().
		AddIfNotEmpty("p.batch", filter.Batch).
		AddIfNotEmpty("p.company", filter.Company).
		AddIfNotEmpty("p.location", filter.Location).
		AddIfNotEmpty("p.skills", filter.Skills)
	if filter.IsMentor != nil {
		where.Add("p.is_mentor = ?", *filter.IsMentor)
	}
	return r.queryDirectory(ctx, where, "p.updated_at DESC, p.id DESC")
}

// Search matches query against name and profile fields of approved alumni
func (r *AlumniProfileRepository) Search(ctx context.Context, query string) ([]*models.AlumniDirectoryEntry, error) {
	where := approvedAlumni().AddSearch(query,
		"u.name", "p.company", "p.designation", "p.skills", "p.location", "p.batch")
	return r.queryDirectory(ctx, where, "u.name ASC, p.id ASC")
}

// ListMentors returns approved alumni currently offering mentorship
func (r *AlumniProfileRepository) ListMentors(ctx context.Context) ([]*models.AlumniDirectoryEntry, error) {
	return r.queryDirectory(ctx, approvedAlumni().AddRaw("p.is_mentor = TRUE"), "u.name ASC, p.id ASC")
}

// Upsert creates or replaces the profile of profile.UserID and stamps updated_at
func (r *AlumniProfileRepository) Upsert(ctx context.Context, profile *models.AlumniProfile) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO alumni_profiles
			(user_id, batch, phone, company, designation, location, skills, linkedin, bio, is_mentor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			batch = EXCLUDED.batch,
			phone = EXCLUDED.phone,
			company = EXCLUDED.company,
			designation = EXCLUDED.designation,
			location = EXCLUDED.location,
			skills = EXCLUDED.skills,
			linkedin = EXCLUDED.linkedin,
			bio = EXCLUDED.bio,
			is_mentor = EXCLUDED.is_mentor,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`,
		profile.UserID, profile.Batch, profile.Phone, profile.Company, profile.Designation,
		profile.Location, profile.Skills, profile.LinkedIn, profile.Bio, profile.IsMentor).
		Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if dberrors.IsForeignKeyError(err) {
		return apperrors.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("error saving alumni profile for user %d: %w", profile.UserID, err)
	}
	return nil
}

// ToggleMentor flips is_mentor and returns the new value
func (r *AlumniProfileRepository) ToggleMentor(ctx context.Context, userID int64) (bool, error) {
	var isMentor bool
	err := r.db.QueryRow(ctx, `
		UPDATE alumni_profiles
		SET is_mentor = NOT is_mentor
		WHERE user_id = $1
		RETURNING is_mentor`, userID).Scan(&isMentor)
	if dberrors.IsNoRows(err) {
		return false, apperrors.ErrAlumniProfileNotFound
	}
	if err != nil {
		return false, fmt.Errorf("error toggling mentor status for user %d: %w", userID, err)
	}
	return isMentor, nil
}
