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

// AlumniService defines the interface for the alumni directory and profiles
type AlumniService interface {
	List(ctx context.Context, filter models.AlumniFilter) ([]*models.AlumniDirectoryEntry, error)
	Search(ctx context.Context, query string) ([]*models.AlumniDirectoryEntry, error)
	ListMentors(ctx context.Context) ([]*models.AlumniDirectoryEntry, error)
	GetByUserID(ctx context.Context, userID int64) (*models.AlumniDirectoryEntry, error)
	GetMyProfile(ctx context.Context, userID int64) (*models.AlumniProfile, error)
	UpdateMyProfile(ctx context.Context, userID int64, req *dto.UpdateAlumniProfileRequest) (*models.AlumniProfile, error)
	ToggleMentor(ctx context.Context, userID int64) (bool, error)
}

type alumniServiceImpl struct {
	profileRepo repositories.IAlumniProfileRepository
	logger      zerolog.Logger
}

// NewAlumniService creates a new AlumniService
func NewAlumniService(profileRepo repositories.IAlumniProfileRepository, logger zerolog.Logger) AlumniService {
	return &alumniServiceImpl{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// List returns approved alumni matching filter
func (s *alumniServiceImpl) List(ctx context.Context, filter models.AlumniFilter) ([]*models.AlumniDirectoryEntry, error) {
	entries, err := s.profileRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing alumni: %w", err)
	}
	return entries, nil
}

// Search requires a non-blank query
func (s *alumniServiceImpl) Search(ctx context.Context, query string) ([]*models.AlumniDirectoryEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewBadRequestError("Search query is required")
	}
	entries, err := s.profileRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error searching alumni: %w", err)
	}
	return entries, nil
}

func (s *alumniServiceImpl) ListMentors(ctx context.Context) ([]*models.AlumniDirectoryEntry, error) {
	entries, err := s.profileRepo.ListMentors(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing mentors: %w", err)
	}
	return entries, nil
}

func (s *alumniServiceImpl) GetByUserID(ctx context.Context, userID int64) (*models.AlumniDirectoryEntry, error) {
	entry, err := s.profileRepo.GetDirectoryEntry(ctx, userID)
	if err != nil {
		return nil, mapProfileError(err)
	}
	return entry, nil
}

// GetMyProfile returns the caller's profile, or an empty one when none is stored yet
func (s *alumniServiceImpl) GetMyProfile(ctx context.Context, userID int64) (*models.AlumniProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, apperrors.ErrAlumniProfileNotFound) {
		return &models.AlumniProfile{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting alumni profile: %w", err)
	}
	return profile, nil
}

// UpdateMyProfile replaces the caller's profile fields. An omitted is_mentor keeps its stored value.
func (s *alumniServiceImpl) UpdateMyProfile(ctx context.Context, userID int64, req *dto.UpdateAlumniProfileRequest) (*models.AlumniProfile, error) {
	current, err := s.GetMyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &models.AlumniProfile{
		UserID:      userID,
		Batch:       strings.TrimSpace(req.Batch),
		Phone:       strings.TrimSpace(req.Phone),
		Company:     strings.TrimSpace(req.Company),
		Designation: strings.TrimSpace(req.Designation),
		Location:    strings.TrimSpace(req.Location),
		Skills:      strings.TrimSpace(req.Skills),
		LinkedIn:    strings.TrimSpace(req.LinkedIn),
		Bio:         req.Bio,
		IsMentor:    current.IsMentor,
	}
	if req.IsMentor != nil {
		profile.IsMentor = *req.IsMentor
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("error saving alumni profile: %w", err)
	}

	s.logger.Debug().Int64("userID", userID).Msg("Alumni profile updated")
	return profile, nil
}

func (s *alumniServiceImpl) ToggleMentor(ctx context.Context, userID int64) (bool, error) {
	isMentor, err := s.profileRepo.ToggleMentor(ctx, userID)
	if err != nil {
		return false, mapProfileError(err)
	}
	return isMentor, nil
}

func mapProfileError(err error) error {
	if errors.Is(err, apperrors.ErrAlumniProfileNotFound) {
		return apperrors.NewCustomError(apperrors.ErrAlumniProfileNotFound, "Alumni profile not found")
	}
	return fmt.Errorf("error accessing alumni profile: %w", err)
}
