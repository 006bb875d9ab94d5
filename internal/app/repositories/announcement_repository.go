package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/dberrors"
)

const announcementSelect = `
	SELECT a.id, a.title, a.description, a.target_audience, a.created_by,
		COALESCE(u.name, ''), a.created_at, a.updated_at
	FROM announcements a
	LEFT JOIN users u ON u.id = a.created_by`

// AnnouncementRepository handles announcement database operations
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

var _ IAnnouncementRepository = (*AnnouncementRepository)(nil)

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	a := &models.Announcement{}
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.TargetAudience, &a.CreatedBy,
		&a.AuthorName, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts an announcement
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO announcements (title, description, target_audience, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		a.Title, a.Description, a.TargetAudience, a.CreatedBy).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating announcement: %w", err)
	}
	return nil
}

// GetByID retrieves an announcement with its author's name
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	a, err := scanAnnouncement(r.db.QueryRow(ctx, announcementSelect+` WHERE a.id = $1`, id))
	if dberrors.IsNoRows(err) {
		return nil, apperrors.ErrAnnouncementNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting announcement %d: %w", id, err)
	}
	return a, nil
}

// List returns announcements newest first
func (r *AnnouncementRepository) List(ctx context.Context, audiences []models.Audience, limit int) ([]*models.Announcement, error) {
	query := announcementSelect
	var args []interface{}
	if audiences != nil {
		values := make([]string, 0, len(audiences))
		for _, a := range audiences {
			values = append(values, string(a))
		}
		args = append(args, values)
		query += fmt.Sprintf(` WHERE a.target_audience = ANY($%d)`, len(args))
	}
	query += ` ORDER BY a.created_at DESC, a.id DESC`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}
	return collectRows(rows, scanAnnouncement)
}

// Update replaces title, description and audience and stamps updated_at
func (r *AnnouncementRepository) Update(ctx context.Context, a *models.Announcement) error {
	err := r.db.QueryRow(ctx, `
		UPDATE announcements
		SET title = $2, description = $3, target_audience = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING created_by, created_at, updated_at`,
		a.ID, a.Title, a.Description, a.TargetAudience).
		Scan(&a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	if dberrors.IsNoRows(err) {
		return apperrors.ErrAnnouncementNotFound
	}
	if err != nil {
		return fmt.Errorf("error updating announcement %d: %w", a.ID, err)
	}
	return nil
}

// Delete removes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting announcement %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}
