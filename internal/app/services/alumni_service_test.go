package services

import (
	"context"
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

func TestAlumniService(t *testing.T) {
	ctx := context.Background()

	newService := func() (AlumniService, *mocks.MockAlumniProfileRepository) {
		repo := new(mocks.MockAlumniProfileRepository)
		return NewAlumniService(repo, zerolog.Nop()), repo
	}

	t.Run("my profile falls back to an empty one", func(t *testing.T) {
		svc, repo := newService()
		repo.On("GetByUserID", ctx, int64(2)).Return(nil, apperrors.ErrAlumniProfileNotFound)

		profile, err := svc.GetMyProfile(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), profile.UserID)
		assert.Zero(t, profile.ID)
	})

	t.Run("update keeps mentor flag when omitted", func(t *testing.T) {
		svc, repo := newService()
		repo.On("GetByUserID", ctx, int64(2)).Return(&models.AlumniProfile{UserID: 2, IsMentor: true}, nil)
		repo.On("Upsert", ctx, mock.MatchedBy(func(p *models.AlumniProfile) bool {
			return p.UserID == 2 && p.IsMentor && p.Company == "Acme"
		})).Return(nil)

		profile, err := svc.UpdateMyProfile(ctx, 2, &dto.UpdateAlumniProfileRequest{Company: " Acme "})
		require.NoError(t, err)
		assert.True(t, profile.IsMentor)
		repo.AssertExpectations(t)
	})

	t.Run("update sets mentor flag when given", func(t *testing.T) {
		svc, repo := newService()
		off := false
		repo.On("GetByUserID", ctx, int64(2)).Return(&models.AlumniProfile{UserID: 2, IsMentor: true}, nil)
		repo.On("Upsert", ctx, mock.MatchedBy(func(p *models.AlumniProfile) bool { return !p.IsMentor })).Return(nil)

		profile, err := svc.UpdateMyProfile(ctx, 2, &dto.UpdateAlumniProfileRequest{IsMentor: &off})
		require.NoError(t, err)
		assert.False(t, profile.IsMentor)
	})

	t.Run("directory lookup of a missing alumni", func(t *testing.T) {
		svc, repo := newService()
		repo.On("GetDirectoryEntry", ctx, int64(9)).Return(nil, apperrors.ErrAlumniProfileNotFound)

		_, err := svc.GetByUserID(ctx, 9)
		assert.ErrorIs(t, err, apperrors.ErrAlumniProfileNotFound)
	})

	t.Run("search needs a query", func(t *testing.T) {
		svc, repo := newService()
		_, err := svc.Search(ctx, "")
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("toggle mentor", func(t *testing.T) {
		svc, repo := newService()
		repo.On("ToggleMentor", ctx, int64(2)).Return(true, nil)

		isMentor, err := svc.ToggleMentor(ctx, 2)
		require.NoError(t, err)
		assert.True(t, isMentor)
	})
}
