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

// MentorshipService defines the interface for the mentorship workflow
type MentorshipService interface {
	Create(ctx context.Context, studentID int64, req *dto.CreateMentorshipRequest) (*models.MentorshipRequest, error)
	ListSent(ctx context.Context, studentID int64) ([]*models.SentMentorshipRequest, error)
	ListReceived(ctx context.Context, alumniID int64) ([]*models.ReceivedMentorshipRequest, error)
	UpdateStatus(ctx context.Context, alumniID, requestID int64, status models.MentorshipStatus) (*models.MentorshipRequest, error)
	Delete(ctx context.Context, userID, requestID int64) error
	Stats(ctx context.Context) (*models.MentorshipStats, error)
}

type mentorshipServiceImpl struct {
	mentorshipRepo repositories.IMentorshipRepository
	userRepo       repositories.IUserRepository
	profileRepo    repositories.IAlumniProfileRepository
	logger         zerolog.Logger
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(
	mentorshipRepo repositories.IMentorshipRepository,
	userRepo repositories.IUserRepository,
	profileRepo repositories.IAlumniProfileRepository,
	logger zerolog.Logger,
) MentorshipService {
	return &mentorshipServiceImpl{
		mentorshipRepo: mentorshipRepo,
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		logger:         logger,
	}
}

var (
	errAlumniNotFound    = apperrors.NewCustomError(apperrors.ErrAlumniNotFound, "Alumni not found")
	errRequestNotFound   = apperrors.NewCustomError(apperrors.ErrMentorshipRequestNotFound, "Request not found")
	errNotRequestOwner   = apperrors.NewCustomError(apperrors.ErrPermissionDenied, "Not authorized to update this request")
	errRequestAnswered   = apperrors.NewCustomError(apperrors.ErrInvalidStatusTransition, "Request has already been answered")
	errRequestExists     = apperrors.NewCustomError(apperrors.ErrMentorshipRequestExists, "Mentorship request already exists")
	errNotOfferingMentor = apperrors.NewCustomError(apperrors.ErrNotOfferingMentorship, "This alumni is not offering mentorship")
)

// Create files a pending request from studentID to the alumni in req.
// Duplicate pairs are rejected by the storage unique constraint.
func (s *mentorshipServiceImpl) Create(ctx context.Context, studentID int64, req *dto.CreateMentorshipRequest) (*models.MentorshipRequest, error) {
	target, err := s.userRepo.GetByID(ctx, req.AlumniID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, errAlumniNotFound
		}
		return nil, fmt.Errorf("error finding alumni: %w", err)
	}
	if target.Role != models.RoleAlumni {
		return nil, errAlumniNotFound
	}

	profile, err := s.profileRepo.GetByUserID(ctx, target.ID)
	if err != nil && !errors.Is(err, apperrors.ErrAlumniProfileNotFound) {
		return nil, fmt.Errorf("error finding alumni profile: %w", err)
	}
	if profile == nil || !profile.IsMentor {
		return nil, errNotOfferingMentor
	}

	request := &models.MentorshipRequest{
		StudentID: studentID,
		AlumniID:  target.ID,
		Message:   strings.TrimSpace(req.Message),
	}
	if err := s.mentorshipRepo.Create(ctx, request); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMentorshipRequestExists):
			return nil, errRequestExists
		case errors.Is(err, apperrors.ErrAlumniNotFound):
			return nil, errAlumniNotFound
		}
		return nil, fmt.Errorf("error creating mentorship request: %w", err)
	}

	s.logger.Info().Int64("requestID", request.ID).Int64("studentID", studentID).
		Int64("alumniID", target.ID).Msg("Mentorship request created")
	return request, nil
}

func (s *mentorshipServiceImpl) ListSent(ctx context.Context, studentID int64) ([]*models.SentMentorshipRequest, error) {
	items, err := s.mentorshipRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing sent requests: %w", err)
	}
	return items, nil
}

func (s *mentorshipServiceImpl) ListReceived(ctx context.Context, alumniID int64) ([]*models.ReceivedMentorshipRequest, error) {
	items, err := s.mentorshipRepo.ListByAlumni(ctx, alumniID)
	if err != nil {
		return nil, fmt.Errorf("error listing received requests: %w", err)
	}
	return items, nil
}

// UpdateStatus answers a pending request. Only the target alumni may answer,
// and a request is answered at most once.
func (s *mentorshipServiceImpl) UpdateStatus(ctx context.Context, alumniID, requestID int64, status models.MentorshipStatus) (*models.MentorshipRequest, error) {
	if !status.IsTerminal() {
		return nil, apperrors.NewBadRequestError("Status must be accepted or rejected")
	}

	current, err := s.mentorshipRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMentorshipRequestNotFound) {
			return nil, errRequestNotFound
		}
		return nil, fmt.Errorf("error finding mentorship request: %w", err)
	}
	if current.AlumniID != alumniID {
		return nil, errNotRequestOwner
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, errRequestAnswered
	}

	updated, err := s.mentorshipRepo.UpdateStatusIfPending(ctx, requestID, alumniID, status)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidStatusTransition) {
			return nil, errRequestAnswered
		}
		return nil, fmt.Errorf("error updating mentorship request: %w", err)
	}

	s.logger.Info().Int64("requestID", requestID).Str("status", string(status)).Msg("Mentorship request answered")
	return updated, nil
}

// Delete removes a request the caller takes part in. Missing and foreign
// requests are reported the same way.
func (s *mentorshipServiceImpl) Delete(ctx context.Context, userID, requestID int64) error {
	deleted, err := s.mentorshipRepo.DeleteForParticipant(ctx, requestID, userID)
	if err != nil {
		return fmt.Errorf("error deleting mentorship request: %w", err)
	}
	if !deleted {
		return apperrors.NewCustomError(apperrors.ErrMentorshipRequestNotFound, "Request not found or not authorized")
	}
	return nil
}

func (s *mentorshipServiceImpl) Stats(ctx context.Context) (*models.MentorshipStats, error) {
	stats, err := s.mentorshipRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting mentorship requests: %w", err)
	}
	return stats, nil
}
