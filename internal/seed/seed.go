package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/alumnet/internal/app/models"
	appRepos "github.com/yigit/alumnet/internal/app/repositories"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/auth"
)

// AdminAccount describes the administrator to provision
type AdminAccount struct {
	Name     string
	Email    string
	Password string
}

// EnsureAdmin creates an approved admin account unless the email is already taken.
// Admins cannot self-register, so this is the only way one comes to exist.
// It reports whether a new account was created.
func EnsureAdmin(ctx context.Context, userRepo appRepos.IUserRepository, account AdminAccount, lgr zerolog.Logger) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(account.Email))
	if email == "" || account.Password == "" {
		return false, fmt.Errorf("admin email and password are required")
	}

	existing, err := userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != appModels.RoleAdmin {
			lgr.Warn().Str("email", email).Str("role", string(existing.Role)).
				Msg("Admin email belongs to a non-admin account, skipping provisioning")
		} else {
			lgr.Debug().Str("email", email).Msg("Admin account already exists")
		}
		return false, nil
	case !errors.Is(err, apperrors.ErrUserNotFound):
		return false, fmt.Errorf("error looking up admin account: %w", err)
	}

	hashed, err := auth.HashPassword(account.Password)
	if err != nil {
		return false, err
	}

	name := strings.TrimSpace(account.Name)
	if name == "" {
		name = "Administrator"
	}

	admin := &appModels.User{
		Name:       name,
		Email:      email,
		Password:   hashed,
		Role:       appModels.RoleAdmin,
		IsApproved: true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("error creating admin account: %w", err)
	}

	lgr.Info().Int64("userID", admin.ID).Str("email", email).Msg("Admin account created")
	return true, nil
}
