package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/app/repositories/mocks"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/auth"
)

func newTestAuthService() (*AuthService, *mocks.MockUserRepository, *mocks.MockAlumniProfileRepository, *auth.MemoryTokenBlacklist) {
	userRepo := new(mocks.MockUserRepository)
	profileRepo := new(mocks.MockAlumniProfileRepository)
	blacklist := auth.NewMemoryTokenBlacklist()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "alumnet-test",
	})
	svc := NewAuthService(userRepo, profileRepo, jwtService, blacklist, zerolog.Nop())
	return svc, userRepo, profileRepo, blacklist
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("student is approved immediately", func(t *testing.T) {
		svc, userRepo, _, _ := newTestAuthService()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Role == models.RoleStudent && u.IsApproved && u.Email == "sam@example.edu"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 10
		}).Return(nil)

		resp, msg, err := svc.Register(ctx, &dto.RegisterRequest{
			Name: " Sam ", Email: "Sam@Example.edu", Password: "secret1", Role: models.RoleStudent,
		})
		require.NoError(t, err)
		assert.Equal(t, "Registration successful", msg)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(10), resp.User.ID)
		assert.Equal(t, "Sam", resp.User.Name)
		assert.True(t, resp.User.IsApproved)
		userRepo.AssertExpectations(t)
	})

	t.Run("alumni waits for approval", func(t *testing.T) {
		svc, userRepo, _, _ := newTestAuthService()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Role == models.RoleAlumni && !u.IsApproved && u.Password != "secret1"
		})).Return(nil)

		resp, msg, err := svc.Register(ctx, &dto.RegisterRequest{
			Name: "Alice", Email: "alice@example.edu", Password: "secret1", Role: models.RoleAlumni,
		})
		require.NoError(t, err)
		assert.Equal(t, "Registration successful. Please wait for admin approval.", msg)
		assert.False(t, resp.User.IsApproved)
	})

	t.Run("admin cannot self register", func(t *testing.T) {
		svc, userRepo, _, _ := newTestAuthService()
		_, _, err := svc.Register(ctx, &dto.RegisterRequest{
			Name: "Root", Email: "root@example.edu", Password: "secret1", Role: models.RoleAdmin,
		})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc, userRepo, _, _ := newTestAuthService()
		userRepo.On("Create", ctx, mock.Anything).Return(apperrors.ErrEmailAlreadyExists)

		_, _, err := svc.Register(ctx, &dto.RegisterRequest{
			Name: "Alice", Email: "alice@example.edu", Password: "secret1", Role: models.RoleAlumni,
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
		msg, ok := apperrors.PublicMessage(err)
		assert.True(t, ok)
		assert.Equal(t, "User already exists", msg)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hashed, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	user := &models.User{ID: 3, Name: "Alice", Email: "alice@example.edu", Password: hashed, Role: models.RoleAlumni}

	t.Run("valid credentials", func(t *testing.T) {
		svc, userRepo, _, _ := newTestAuthService()
		userRepo.On("GetByEmail", ctx, "alice@example.edu").Return(user, nil)

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: " ALICE@example.edu", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.User.ID)

		claims, err := svc.jwtService.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(3), claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, userRepo, _, _ := newTestAuthService()
		userRepo.On("GetByEmail", ctx, "alice@example.edu").Return(user, nil)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.edu", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email looks the same", func(t *testing.T) {
		svc, userRepo, _, _ := newTestAuthService()
		userRepo.On("GetByEmail", ctx, "ghost@example.edu").Return(nil, apperrors.ErrUserNotFound)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ghost@example.edu", Password: "secret1"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _, _, blacklist := newTestAuthService()

	require.NoError(t, svc.Logout(ctx, "jti-1", time.Now().Add(time.Hour)))
	revoked, err := blacklist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, svc.Logout(ctx, "jti-2", time.Now().Add(-time.Minute)))
	revoked, err = blacklist.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked, "already expired tokens need no entry")

	assert.ErrorIs(t, svc.Logout(ctx, "", time.Now().Add(time.Hour)), apperrors.ErrTokenInvalid)
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()

	t.Run("alumni include profile", func(t *testing.T) {
		svc, userRepo, profileRepo, _ := newTestAuthService()
		userRepo.On("GetByID", ctx, int64(5)).Return(&models.User{ID: 5, Role: models.RoleAlumni}, nil)
		profileRepo.On("GetByUserID", ctx, int64(5)).Return(&models.AlumniProfile{UserID: 5, Company: "Acme"}, nil)

		me, err := svc.Me(ctx, 5)
		require.NoError(t, err)
		require.NotNil(t, me.Profile)
		assert.Equal(t, "Acme", me.Profile.Company)
	})

	t.Run("students have no profile", func(t *testing.T) {
		svc, userRepo, profileRepo, _ := newTestAuthService()
		userRepo.On("GetByID", ctx, int64(6)).Return(&models.User{ID: 6, Role: models.RoleStudent}, nil)

		me, err := svc.Me(ctx, 6)
		require.NoError(t, err)
		assert.Nil(t, me.Profile)
		profileRepo.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, userRepo, _, _ := newTestAuthService()
		userRepo.On("GetByID", ctx, int64(7)).Return(nil, apperrors.ErrUserNotFound)

		_, err := svc.Me(ctx, 7)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestAuthService_UpdateMe(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _, _ := newTestAuthService()
	userRepo.On("UpdateAccount", ctx, int64(5), "Alice", "taken@example.edu").Return(nil, apperrors.ErrEmailAlreadyExists)
	userRepo.On("UpdateAccount", ctx, int64(5), "Alice", "alice@example.edu").
		Return(&models.User{ID: 5, Name: "Alice", Email: "alice@example.edu"}, nil)

	_, err := svc.UpdateMe(ctx, 5, &dto.UpdateAccountRequest{Name: "Alice", Email: "taken@example.edu"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	resp, err := svc.UpdateMe(ctx, 5, &dto.UpdateAccountRequest{Name: " Alice ", Email: "Alice@example.edu"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.edu", resp.Email)
}
