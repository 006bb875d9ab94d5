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

func TestUserService(t *testing.T) {
	ctx := context.Background()

	newService := func() (UserService, *mocks.MockUserRepository) {
		repo := new(mocks.MockUserRepository)
		return NewUserService(repo, zerolog.Nop()), repo
	}

	t.Run("approve pending alumni", func(t *testing.T) {
		svc, repo := newService()
		repo.On("GetByID", ctx, int64(2)).Return(&models.User{ID: 2, Role: models.RoleAlumni}, nil)
		repo.On("Approve", ctx, int64(2)).Return(&models.User{ID: 2, Role: models.RoleAlumni, IsApproved: true}, nil)

		user, err := svc.ApproveUser(ctx, 2)
		require.NoError(t, err)
		assert.True(t, user.IsApproved)
	})

	t.Run("approving twice is a bad request", func(t *testing.T) {
		svc, repo := newService()
		repo.On("GetByID", ctx, int64(2)).Return(&models.User{ID: 2, IsApproved: true}, nil)

		_, err := svc.ApproveUser(ctx, 2)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyApproved)
		repo.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything)
	})

	t.Run("approve missing user", func(t *testing.T) {
		svc, repo := newService()
		repo.On("GetByID", ctx, int64(3)).Return(nil, apperrors.ErrUserNotFound)

		_, err := svc.ApproveUser(ctx, 3)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("admins cannot delete themselves", func(t *testing.T) {
		svc, repo := newService()
		err := svc.DeleteUser(ctx, 1, 1)
		assert.ErrorIs(t, err, apperrors.ErrCannotDeleteSelf)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("delete another user", func(t *testing.T) {
		svc, repo := newService()
		repo.On("Delete", ctx, int64(2)).Return(nil)
		repo.On("Delete", ctx, int64(3)).Return(apperrors.ErrUserNotFound)

		require.NoError(t, svc.DeleteUser(ctx, 1, 2))
		assert.ErrorIs(t, svc.DeleteUser(ctx, 1, 3), apperrors.ErrUserNotFound)
	})

	t.Run("list validates role filter", func(t *testing.T) {
		svc, repo := newService()
		repo.On("List", ctx, models.RoleAlumni).Return([]*models.User{{ID: 2, Password: "hash"}}, nil)

		users, err := svc.ListUsers(ctx, models.RoleAlumni)
		require.NoError(t, err)
		require.Len(t, users, 1)

		_, err = svc.ListUsers(ctx, models.Role("teacher"))
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("update maps email conflict", func(t *testing.T) {
		svc, repo := newService()
		repo.On("UpdateAccount", ctx, int64(2), "Bob", "bob@example.edu").Return(nil, apperrors.ErrEmailAlreadyExists)

		_, err := svc.UpdateUser(ctx, 2, &dto.UpdateAccountRequest{Name: "Bob", Email: "bob@example.edu"})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})
}
