package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/app/repositories"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/auth"
	"github.com/yigit/alumnet/internal/pkg/helpers"
)

const (
	msgRegistered        = "Registration successful"
	msgRegisteredPending = "Registration successful. Please wait for admin approval."
)

// AuthService handles registration, login, logout and the caller's own account
type AuthService struct {
	userRepo    repositories.IUserRepository
	profileRepo repositories.IAlumniProfileRepository
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
	logger      zerolog.Logger
	now         func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	profileRepo repositories.IAlumniProfileRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtService:  jwtService,
		blacklist:   blacklist,
		logger:      logger,
		now:         time.Now,
	}
}

// Register creates a self-service account and signs a token for it.
// Students are approved immediately, alumni wait for an admin.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, string, error) {
	if !req.Role.SelfRegistrable() {
		return nil, "", apperrors.NewBadRequestError("Role must be alumni or student")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:       strings.TrimSpace(req.Name),
		Email:      normalizeEmail(req.Email),
		Password:   hashed,
		Role:       req.Role,
		IsApproved: !req.Role.RequiresApproval(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, "", apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "User already exists")
		}
		return nil, "", fmt.Errorf("user creation error: %w", err)
	}

	resp, err := s.issue(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")

	if user.IsApproved {
		return resp, msgRegistered, nil
	}
	return resp, msgRegisteredPending, nil
}

// Login checks credentials and signs a token. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials")
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials")
	}

	return s.issue(user)
}

// Logout revokes the token identified by jti until it would have expired
func (s *AuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return apperrors.ErrTokenInvalid
	}
	ttl := helpers.RemainingTTL(expiresAt, s.now())
	if ttl == 0 {
		return nil
	}
	if err := s.blacklist.Revoke(ctx, jti, ttl); err != nil {
		return fmt.Errorf("error revoking token: %w", err)
	}
	return nil
}

// Me returns the caller's account, plus the alumni profile for alumni
func (s *AuthService) Me(ctx context.Context, userID int64) (*dto.MeResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	resp := &dto.MeResponse{User: dto.NewUserResponse(user)}
	if user.Role != models.RoleAlumni {
		return resp, nil
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		resp.Profile = profile
	case errors.Is(err, apperrors.ErrAlumniProfileNotFound):
	default:
		return nil, fmt.Errorf("error finding alumni profile: %w", err)
	}
	return resp, nil
}

// UpdateMe changes the caller's name and email
func (s *AuthService) UpdateMe(ctx context.Context, userID int64, req *dto.UpdateAccountRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.UpdateAccount(ctx, userID, strings.TrimSpace(req.Name), normalizeEmail(req.Email))
	if err != nil {
		return nil, mapAccountUpdateError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *AuthService) issue(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}
	return &dto.AuthResponse{
		Token:     token.Token,
		TokenType: "Bearer",
		ExpiresAt: token.ExpiresAt,
		User:      dto.NewUserResponse(user),
	}, nil
}

func mapAccountUpdateError(err error) error {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		return apperrors.NewCustomError(apperrors.ErrUserNotFound, "User not found")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Email already in use")
	default:
		return fmt.Errorf("error updating user: %w", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
