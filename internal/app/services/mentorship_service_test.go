package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/app/repositories/mocks"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
)

type mentorshipFixture struct {
	svc      MentorshipService
	requests *mocks.MockMentorshipRepository
	users    *mocks.MockUserRepository
	profiles *mocks.MockAlumniProfileRepository
}

func newMentorshipFixture() *mentorshipFixture {
	f := &mentorshipFixture{
		requests: new(mocks.MockMentorshipRepository),
		users:    new(mocks.MockUserRepository),
		profiles: new(mocks.MockAlumniProfileRepository),
	}
	f.svc = NewMentorshipService(f.requests, f.users, f.profiles, zerolog.Nop())
	return f
}

func publicMessage(t *testing.T, err error) string {
	t.Helper()
	msg, ok := apperrors.PublicMessage(err)
	require.True(t, ok, "expected a public message on %v", err)
	return msg
}

func TestMentorshipService_Create(t *testing.T) {
	ctx := context.Background()
	alumni := &models.User{ID: 2, Role: models.RoleAlumni, IsApproved: true}

	t.Run("creates a pending request", func(t *testing.T) {
		f := newMentorshipFixture()
		f.users.On("GetByID", ctx, int64(2)).Return(alumni, nil)
		f.profiles.On("GetByUserID", ctx, int64(2)).Return(&models.AlumniProfile{UserID: 2, IsMentor: true}, nil)
		f.requests.On("Create", ctx, mock.MatchedBy(func(r *models.MentorshipRequest) bool {
			return r.StudentID == 9 && r.AlumniID == 2 && r.Message == "Hi"
		})).Run(func(args mock.Arguments) {
			r := args.Get(1).(*models.MentorshipRequest)
			r.ID = 1
			r.Status = models.MentorshipPending
		}).Return(nil)

		req, err := f.svc.Create(ctx, 9, &dto.CreateMentorshipRequest{AlumniID: 2, Message: " Hi "})
		require.NoError(t, err)
		assert.Equal(t, models.MentorshipPending, req.Status)
		f.requests.AssertExpectations(t)
	})

	t.Run("target must exist", func(t *testing.T) {
		f := newMentorshipFixture()
		f.users.On("GetByID", ctx, int64(2)).Return(nil, apperrors.ErrUserNotFound)

		_, err := f.svc.Create(ctx, 9, &dto.CreateMentorshipRequest{AlumniID: 2})
		assert.ErrorIs(t, err, apperrors.ErrAlumniNotFound)
		assert.Equal(t, "Alumni not found", publicMessage(t, err))
	})

	t.Run("target must be alumni", func(t *testing.T) {
		f := newMentorshipFixture()
		f.users.On("GetByID", ctx, int64(4)).Return(&models.User{ID: 4, Role: models.RoleStudent}, nil)

		_, err := f.svc.Create(ctx, 9, &dto.CreateMentorshipRequest{AlumniID: 4})
		assert.ErrorIs(t, err, apperrors.ErrAlumniNotFound)
	})

	t.Run("target must offer mentorship", func(t *testing.T) {
		f := newMentorshipFixture()
		f.users.On("GetByID", ctx, int64(2)).Return(alumni, nil)
		f.profiles.On("GetByUserID", ctx, int64(2)).Return(&models.AlumniProfile{UserID: 2}, nil)

		_, err := f.svc.Create(ctx, 9, &dto.CreateMentorshipRequest{AlumniID: 2})
		assert.ErrorIs(t, err, apperrors.ErrNotOfferingMentorship)
		assert.Equal(t, "This alumni is not offering mentorship", publicMessage(t, err))
		f.requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing profile counts as not offering", func(t *testing.T) {
		f := newMentorshipFixture()
		f.users.On("GetByID", ctx, int64(2)).Return(alumni, nil)
		f.profiles.On("GetByUserID", ctx, int64(2)).Return(nil, apperrors.ErrAlumniProfileNotFound)

		_, err := f.svc.Create(ctx, 9, &dto.CreateMentorshipRequest{AlumniID: 2})
		assert.ErrorIs(t, err, apperrors.ErrNotOfferingMentorship)
	})

	t.Run("duplicate pair conflicts", func(t *testing.T) {
		f := newMentorshipFixture()
		f.users.On("GetByID", ctx, int64(2)).Return(alumni, nil)
		f.profiles.On("GetByUserID", ctx, int64(2)).Return(&models.AlumniProfile{UserID: 2, IsMentor: true}, nil)
		f.requests.On("Create", ctx, mock.Anything).Return(apperrors.ErrMentorshipRequestExists)

		_, err := f.svc.Create(ctx, 9, &dto.CreateMentorshipRequest{AlumniID: 2})
		assert.ErrorIs(t, err, apperrors.ErrMentorshipRequestExists)
		assert.Equal(t, "Mentorship request already exists", publicMessage(t, err))
	})
}

func TestMentorshipService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	pending := &models.MentorshipRequest{ID: 1, StudentID: 9, AlumniID: 2, Status: models.MentorshipPending}

	t.Run("target alumni accepts", func(t *testing.T) {
		f := newMentorshipFixture()
		f.requests.On("GetByID", ctx, int64(1)).Return(pending, nil)
		f.requests.On("UpdateStatusIfPending", ctx, int64(1), int64(2), models.MentorshipAccepted).
			Return(&models.MentorshipRequest{ID: 1, Status: models.MentorshipAccepted}, nil)

		req, err := f.svc.UpdateStatus(ctx, 2, 1, models.MentorshipAccepted)
		require.NoError(t, err)
		assert.Equal(t, models.MentorshipAccepted, req.Status)
	})

	t.Run("missing request", func(t *testing.T) {
		f := newMentorshipFixture()
		f.requests.On("GetByID", ctx, int64(1)).Return(nil, apperrors.ErrMentorshipRequestNotFound)

		_, err := f.svc.UpdateStatus(ctx, 2, 1, models.MentorshipAccepted)
		assert.ErrorIs(t, err, apperrors.ErrMentorshipRequestNotFound)
		assert.Equal(t, "Request not found", publicMessage(t, err))
	})

	t.Run("other alumni is forbidden", func(t *testing.T) {
		f := newMentorshipFixture()
		f.requests.On("GetByID", ctx, int64(1)).Return(pending, nil)

		_, err := f.svc.UpdateStatus(ctx, 3, 1, models.MentorshipRejected)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Equal(t, "Not authorized to update this request", publicMessage(t, err))
	})

	t.Run("answered request cannot change", func(t *testing.T) {
		f := newMentorshipFixture()
		f.requests.On("GetByID", ctx, int64(1)).
			Return(&models.MentorshipRequest{ID: 1, AlumniID: 2, Status: models.MentorshipAccepted}, nil)

		_, err := f.svc.UpdateStatus(ctx, 2, 1, models.MentorshipRejected)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
		f.requests.AssertNotCalled(t, "UpdateStatusIfPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lost race is a conflict", func(t *testing.T) {
		f := newMentorshipFixture()
		f.requests.On("GetByID", ctx, int64(1)).Return(pending, nil)
		f.requests.On("UpdateStatusIfPending", ctx, int64(1), int64(2), models.MentorshipRejected).
			Return(nil, apperrors.ErrInvalidStatusTransition)

		_, err := f.svc.UpdateStatus(ctx, 2, 1, models.MentorshipRejected)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
	})

	t.Run("pending is not a target state", func(t *testing.T) {
		f := newMentorshipFixture()
		_, err := f.svc.UpdateStatus(ctx, 2, 1, models.MentorshipPending)
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})
}

func TestMentorshipService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newMentorshipFixture()
	f.requests.On("DeleteForParticipant", ctx, int64(1), int64(9)).Return(true, nil)
	f.requests.On("DeleteForParticipant", ctx, int64(1), int64(5)).Return(false, nil)
	f.requests.On("DeleteForParticipant", ctx, int64(2), int64(9)).Return(false, errors.New("db down"))

	require.NoError(t, f.svc.Delete(ctx, 9, 1))

	err := f.svc.Delete(ctx, 5, 1)
	assert.ErrorIs(t, err, apperrors.ErrMentorshipRequestNotFound)
	assert.Equal(t, "Request not found or not authorized", publicMessage(t, err))

	err = f.svc.Delete(ctx, 9, 2)
	assert.Error(t, err)
	_, public := apperrors.PublicMessage(err)
	assert.False(t, public)
}
