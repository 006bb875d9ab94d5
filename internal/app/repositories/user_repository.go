package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/db"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/dberrors"
)

const (
	usersEmailConstraint = "users_email_key"

	userColumns = `id, name, email, password, role, is_approved, created_at, updated_at`
)

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
}

var _ IUserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.IsApproved, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create creates a new user and, for alumni, the empty profile row
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (name, email, password, role, is_approved)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at`,
			user.Name, user.Email, user.Password, user.Role, user.IsApproved).
			Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return err
		}

		if user.Role != models.RoleAlumni {
			return nil
		}
		_, err = tx.Exec(ctx, `INSERT INTO alumni_profiles (user_id) VALUES ($1)`, user.ID)
		return err
	})
	if dberrors.IsDuplicateConstraintError(err, usersEmailConstraint) {
		return apperrors.ErrEmailAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if dberrors.IsNoRows(err) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting user %d: %w", id, err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email))
	if dberrors.IsNoRows(err) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}
	return user, nil
}

// List returns users newest first, optionally restricted to one role
func (r *UserRepository) List(ctx context.Context, role models.Role) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var args []interface{}
	if role != "" {
		query += ` WHERE role = $1`
		args = append(args, role)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return collectRows(rows, scanUser)
}

// ListPendingAlumni returns alumni accounts still waiting for approval, oldest first
func (r *UserRepository) ListPendingAlumni(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE role = $1 AND is_approved = FALSE
		ORDER BY created_at ASC, id ASC`, models.RoleAlumni)
	if err != nil {
		return nil, fmt.Errorf("error listing pending users: %w", err)
	}
	return collectRows(rows, scanUser)
}

// UpdateAccount changes name and email and stamps updated_at
func (r *UserRepository) UpdateAccount(ctx context.Context, id int64, name, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `
		UPDATE users
		SET name = $2, email = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, id, name, email))
	switch {
	case dberrors.IsNoRows(err):
		return nil, apperrors.ErrUserNotFound
	case dberrors.IsDuplicateConstraintError(err, usersEmailConstraint):
		return nil, apperrors.ErrEmailAlreadyExists
	case err != nil:
		return nil, fmt.Errorf("error updating user %d: %w", id, err)
	}
	return user, nil
}

// Approve marks the account approved
func (r *UserRepository) Approve(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `
		UPDATE users
		SET is_approved = TRUE, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, id))
	if dberrors.IsNoRows(err) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error approving user %d: %w", id, err)
	}
	return user, nil
}

// Delete removes the user; dependent rows go with it through ON DELETE CASCADE
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Stats counts accounts by role and approval
func (r *UserRepository) Stats(ctx context.Context) (*models.UserStats, error) {
	stats := &models.UserStats{}
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE role = 'alumni'),
			COUNT(*) FILTER (WHERE role = 'student'),
			COUNT(*) FILTER (WHERE role = 'alumni' AND is_approved = FALSE)
		FROM users`).Scan(&stats.Total, &stats.Alumni, &stats.Students, &stats.Pending)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}
	return stats, nil
}
