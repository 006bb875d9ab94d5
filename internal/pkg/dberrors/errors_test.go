package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: UniqueViolation, ConstraintName: "users_email_key"}

	assert.True(t, IsDuplicateConstraintError(dup, "users_email_key"))
	assert.True(t, IsDuplicateConstraintError(fmt.Errorf("insert: %w", dup), "users_email_key"))
	assert.False(t, IsDuplicateConstraintError(dup, "mentorship_requests_student_alumni_key"))
	assert.False(t, IsDuplicateConstraintError(&pgconn.PgError{Code: ForeignKeyViolation, ConstraintName: "users_email_key"}, "users_email_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("boom"), "users_email_key"))
}

func TestIsForeignKeyError(t *testing.T) {
	assert.True(t, IsForeignKeyError(&pgconn.PgError{Code: ForeignKeyViolation}))
	assert.False(t, IsForeignKeyError(&pgconn.PgError{Code: UniqueViolation}))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(fmt.Errorf("get user: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("other")))
}
