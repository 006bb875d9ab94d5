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

const (
	DefaultRecentAnnouncements = 5
	MaxRecentAnnouncements     = 50
)

// AnnouncementService defines the interface for announcement operations.
// Reads are filtered to the audiences visible to the caller's role.
type AnnouncementService interface {
	List(ctx context.Context, role models.Role) ([]*models.Announcement, error)
	Recent(ctx context.Context, role models.Role, limit int) ([]*models.Announcement, error)
	GetByID(ctx context.Context, role models.Role, id int64) (*models.Announcement, error)
	Create(ctx context.Context, adminID int64, req *dto.AnnouncementRequest) (*models.Announcement, error)
	Update(ctx context.Context, id int64, req *dto.AnnouncementRequest) (*models.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

type announcementServiceImpl struct {
	announcementRepo repositories.IAnnouncementRepository
	logger           zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(announcementRepo repositories.IAnnouncementRepository, logger zerolog.Logger) AnnouncementService {
	return &announcementServiceImpl{
		announcementRepo: announcementRepo,
		logger:           logger,
	}
}

var errAnnouncementNotFound = apperrors.NewCustomError(apperrors.ErrAnnouncementNotFound, "Announcement not found")

func (s *announcementServiceImpl) List(ctx context.Context, role models.Role) ([]*models.Announcement, error) {
	return s.list(ctx, role, 0)
}

// Recent returns the newest announcements, clamping limit to [1, MaxRecentAnnouncements]
func (s *announcementServiceImpl) Recent(ctx context.Context, role models.Role, limit int) ([]*models.Announcement, error) {
	if limit <= 0 {
		limit = DefaultRecentAnnouncements
	}
	if limit > MaxRecentAnnouncements {
		limit = MaxRecentAnnouncements
	}
	return s.list(ctx, role, limit)
}

// GetByID hides announcements the caller's audience cannot see
func (s *announcementServiceImpl) GetByID(ctx context.Context, role models.Role, id int64) (*models.Announcement, error) {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapAnnouncementError(err)
	}
	if !a.TargetAudience.VisibleTo(role) {
		return nil, errAnnouncementNotFound
	}
	return a, nil
}

func (s *announcementServiceImpl) Create(ctx context.Context, adminID int64, req *dto.AnnouncementRequest) (*models.Announcement, error) {
	a := &models.Announcement{
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		TargetAudience: req.Audience(),
		CreatedBy:      &adminID,
	}
	if err := s.announcementRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("error creating announcement: %w", err)
	}
	s.logger.Info().Int64("announcementID", a.ID).Str("audience", string(a.TargetAudience)).Msg("Announcement published")
	return a, nil
}

func (s *announcementServiceImpl) Update(ctx context.Context, id int64, req *dto.AnnouncementRequest) (*models.Announcement, error) {
	a := &models.Announcement{
		ID:             id,
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		TargetAudience: req.Audience(),
	}
	if err := s.announcementRepo.Update(ctx, a); err != nil {
		return nil, mapAnnouncementError(err)
	}
	return a, nil
}

func (s *announcementServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.announcementRepo.Delete(ctx, id); err != nil {
		return mapAnnouncementError(err)
	}
	return nil
}

func (s *announcementServiceImpl) list(ctx context.Context, role models.Role, limit int) ([]*models.Announcement, error) {
	items, err := s.announcementRepo.List(ctx, models.AudiencesFor(role), limit)
	if err != nil {
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}
	return items, nil
}

func mapAnnouncementError(err error) error {
	if errors.Is(err, apperrors.ErrAnnouncementNotFound) {
		return errAnnouncementNotFound
	}
	return fmt.Errorf("error accessing announcement: %w", err)
}
