package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appModels "github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/app/repositories/mocks"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/auth"
)

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	account := AdminAccount{Name: " Root ", Email: " Admin@Example.edu ", Password: "secret1"}

	t.Run("creates approved admin", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByEmail", ctx, "admin@example.edu").Return(nil, apperrors.ErrUserNotFound)
		repo.On("Create", ctx, mock.MatchedBy(func(u *appModels.User) bool {
			return u.Role == appModels.RoleAdmin && u.IsApproved && u.Name == "Root" &&
				u.Email == "admin@example.edu" && auth.CheckPassword(u.Password, "secret1")
		})).Return(nil)

		created, err := EnsureAdmin(ctx, repo, account, zerolog.Nop())
		require.NoError(t, err)
		assert.True(t, created)
		repo.AssertExpectations(t)
	})

	t.Run("existing account is left alone", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByEmail", ctx, "admin@example.edu").
			Return(&appModels.User{ID: 1, Role: appModels.RoleAdmin}, nil)

		created, err := EnsureAdmin(ctx, repo, account, zerolog.Nop())
		require.NoError(t, err)
		assert.False(t, created)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lost race on email is not an error", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByEmail", ctx, "admin@example.edu").Return(nil, apperrors.ErrUserNotFound)
		repo.On("Create", ctx, mock.Anything).Return(apperrors.ErrEmailAlreadyExists)

		created, err := EnsureAdmin(ctx, repo, account, zerolog.Nop())
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := EnsureAdmin(ctx, new(mocks.MockUserRepository), AdminAccount{Email: "a@b.c"}, zerolog.Nop())
		assert.Error(t, err)
	})
}
