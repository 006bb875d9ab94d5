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

const (
	// mentorshipPairConstraint makes the (student, alumni) pair unique. Its violation
	// is the only duplicate signal, so concurrent creates cannot both succeed.
	mentorshipPairConstraint = "mentorship_requests_student_alumni_key"

	mentorshipColumns = `m.id, m.student_id, m.alumni_id, m.message, m.status, m.created_at, m.updated_at`
)

// MentorshipRepository handles mentorship request database operations
type MentorshipRepository struct {
	db *pgxpool.Pool
}

var _ IMentorshipRepository = (*MentorshipRepository)(nil)

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{db: db}
}

func mentorshipDest(m *models.MentorshipRequest) []interface{} {
	return []interface{}{&m.ID, &m.StudentID, &m.AlumniID, &m.Message, &m.Status, &m.CreatedAt, &m.UpdatedAt}
}

// Create inserts a pending request
func (r *MentorshipRepository) Create(ctx context.Context, req *models.MentorshipRequest) error {
	req.Status = models.MentorshipPending
	err := r.db.QueryRow(ctx, `
		INSERT INTO mentorship_requests (student_id, alumni_id, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		req.StudentID, req.AlumniID, req.Message, req.Status).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	switch {
	case dberrors.IsDuplicateConstraintError(err, mentorshipPairConstraint):
		return apperrors.ErrMentorshipRequestExists
	case dberrors.IsForeignKeyError(err):
		return apperrors.ErrAlumniNotFound
	case err != nil:
		return fmt.Errorf("error creating mentorship request: %w", err)
	}
	return nil
}

// GetByID retrieves a request by ID
func (r *MentorshipRepository) GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error) {
	req := &models.MentorshipRequest{}
	err := r.db.QueryRow(ctx, `SELECT `+mentorshipColumns+` FROM mentorship_requests m WHERE m.id = $1`, id).
		Scan(mentorshipDest(req)...)
	if dberrors.IsNoRows(err) {
		return nil, apperrors.ErrMentorshipRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting mentorship request %d: %w", id, err)
	}
	return req, nil
}

// ListByStudent returns the requests a student sent with the target alumni's details
func (r *MentorshipRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.SentMentorshipRequest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+mentorshipColumns+`, u.name, u.email, COALESCE(p.company, ''), COALESCE(p.designation, '')
		FROM mentorship_requests m
		JOIN users u ON u.id = m.alumni_id
		LEFT JOIN alumni_profiles p ON p.user_id = m.alumni_id
		WHERE m.student_id = $1
		ORDER BY m.created_at DESC, m.id DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing sent mentorship requests: %w", err)
	}
	return collectRows(rows, func(row pgx.Row) (*models.SentMentorshipRequest, error) {
		item := &models.SentMentorshipRequest{}
		dest := append(mentorshipDest(&item.MentorshipRequest),
			&item.AlumniName, &item.AlumniEmail, &item.AlumniCompany, &item.AlumniDesignation)
		return item, row.Scan(dest...)
	})
}

// ListByAlumni returns the requests an alumni received with the sender's details
func (r *MentorshipRepository) ListByAlumni(ctx context.Context, alumniID int64) ([]*models.ReceivedMentorshipRequest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+mentorshipColumns+`, u.name, u.email
		FROM mentorship_requests m
		JOIN users u ON u.id = m.student_id
		WHERE m.alumni_id = $1
		ORDER BY m.created_at DESC, m.id DESC`, alumniID)
	if err != nil {
		return nil, fmt.Errorf("error listing received mentorship requests: %w", err)
	}
	return collectRows(rows, func(row pgx.Row) (*models.ReceivedMentorshipRequest, error) {
		item := &models.ReceivedMentorshipRequest{}
		dest := append(mentorshipDest(&item.MentorshipRequest), &item.StudentName, &item.StudentEmail)
		return item, row.Scan(dest...)
	})
}

// UpdateStatusIfPending applies the transition only while the request is still
// pending and still addressed to alumniID.
func (r *MentorshipRepository) UpdateStatusIfPending(ctx context.Context, id, alumniID int64, status models.MentorshipStatus) (*models.MentorshipRequest, error) {
	req := &models.MentorshipRequest{}
	err := r.db.QueryRow(ctx, `
		UPDATE mentorship_requests m
		SET status = $3, updated_at = NOW()
		WHERE m.id = $1 AND m.alumni_id = $2 AND m.status = $4
		RETURNING `+mentorshipColumns, id, alumniID, status, models.MentorshipPending).
		Scan(mentorshipDest(req)...)
	if dberrors.IsNoRows(err) {
		return nil, apperrors.ErrInvalidStatusTransition
	}
	if err != nil {
		return nil, fmt.Errorf("error updating mentorship request %d: %w", id, err)
	}
	return req, nil
}

// DeleteForParticipant removes the request when userID is its student or its alumni
func (r *MentorshipRepository) DeleteForParticipant(ctx context.Context, id, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM mentorship_requests
		WHERE id = $1 AND (student_id = $2 OR alumni_id = $2)`, id, userID)
	if err != nil {
		return false, fmt.Errorf("error deleting mentorship request %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Stats counts requests per status
func (r *MentorshipRepository) Stats(ctx context.Context) (*models.MentorshipStats, error) {
	stats := &models.MentorshipStats{}
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'accepted'),
			COUNT(*) FILTER (WHERE status = 'rejected')
		FROM mentorship_requests`).Scan(&stats.Total, &stats.Pending, &stats.Accepted, &stats.Rejected)
	if err != nil {
		return nil, fmt.Errorf("error counting mentorship requests: %w", err)
	}
	return stats, nil
}

// collectRows scans every row with scan and closes rows
func collectRows[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
