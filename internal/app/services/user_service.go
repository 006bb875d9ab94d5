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

// UserService defines the interface for admin user management
type UserService interface {
	ListUsers(ctx context.Context, role models.Role) ([]dto.UserResponse, error)
	ListPendingAlumni(ctx context.Context) ([]dto.UserResponse, error)
	GetUser(ctx context.Context, id int64) (*dto.UserResponse, error)
	ApproveUser(ctx context.Context, id int64) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateAccountRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, actorID, id int64) error
	Stats(ctx context.Context) (*models.UserStats, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers lists every account, or only those with role when role is set
func (s *userServiceImpl) ListUsers(ctx context.Context, role models.Role) ([]dto.UserResponse, error) {
	if role != "" && !role.IsValid() {
		return nil, apperrors.NewBadRequestError("Invalid role filter")
	}
	users, err := s.userRepo.List(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return dto.NewUserResponses(users), nil
}

// ListPendingAlumni lists alumni accounts awaiting approval
func (s *userServiceImpl) ListPendingAlumni(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.userRepo.ListPendingAlumni(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing pending alumni: %w", err)
	}
	return dto.NewUserResponses(users), nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapUserLookupError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// ApproveUser approves an account. Approving twice is a client error.
func (s *userServiceImpl) ApproveUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapUserLookupError(err)
	}
	if user.IsApproved {
		return nil, apperrors.NewCustomError(apperrors.ErrAlreadyApproved, "User is already approved")
	}

	approved, err := s.userRepo.Approve(ctx, id)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	s.logger.Info().Int64("userID", id).Msg("User approved")
	resp := dto.NewUserResponse(approved)
	return &resp, nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UpdateAccountRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.UpdateAccount(ctx, id, strings.TrimSpace(req.Name), normalizeEmail(req.Email))
	if err != nil {
		return nil, mapAccountUpdateError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// DeleteUser removes an account and, through storage cascades, everything it owns
func (s *userServiceImpl) DeleteUser(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return apperrors.NewCustomError(apperrors.ErrCannotDeleteSelf, "Cannot delete your own account")
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return mapUserLookupError(err)
	}
	s.logger.Info().Int64("userID", id).Int64("deletedBy", actorID).Msg("User deleted")
	return nil
}

func (s *userServiceImpl) Stats(ctx context.Context) (*models.UserStats, error) {
	stats, err := s.userRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}
	return stats, nil
}

func mapUserLookupError(err error) error {
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return apperrors.NewCustomError(apperrors.ErrUserNotFound, "User not found")
	}
	return fmt.Errorf("error accessing user: %w", err)
}
