package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
)

func newTestJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "alumnet-test",
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService()
	user := &models.User{ID: 42, Email: "jane@example.edu", Role: models.RoleAlumni}

	issued, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	claims, err := svc.ValidateToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@example.edu", claims.Email)
	assert.Equal(t, models.RoleAlumni, claims.Role)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestJWTService_ExpiredIsDistinguished(t *testing.T) {
	svc := newTestJWTService()
	issued, err := svc.GenerateToken(&models.User{ID: 1, Email: "a@example.edu", Role: models.RoleStudent})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = svc.ValidateToken(issued.Token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	assert.False(t, errors.Is(err, apperrors.ErrTokenInvalid))
}

func TestJWTService_Invalid(t *testing.T) {
	svc := newTestJWTService()
	issued, err := svc.GenerateToken(&models.User{ID: 1, Email: "a@example.edu", Role: models.RoleStudent})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour, TokenIssuer: "alumnet-test"})
	wrongIssuer := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "elsewhere"})

	tests := []struct {
		name  string
		svc   *JWTService
		token string
	}{
		{"empty", svc, ""},
		{"garbage", svc, "not-a-jwt"},
		{"wrong secret", other, issued.Token},
		{"wrong issuer", wrongIssuer, issued.Token},
		{"tampered", svc, issued.Token + "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("bearer  abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	for _, header := range []string{"", "Bearer", "Bearer   ", "Basic abc", "abc.def.ghi"} {
		_, err := ExtractBearerToken(header)
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated, header)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, CheckPassword(hash, "secret1"))
	assert.False(t, CheckPassword(hash, "secret2"))
}

func TestRedisTokenBlacklist(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	bl := NewRedisTokenBlacklist(client)
	ctx := context.Background()

	revoked, err := bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Revoke(ctx, "jti-1", time.Minute))
	revoked, err = bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Revoke(ctx, "jti-2", 0))
	revoked, err = bl.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisTokenBlacklist_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	_, err := NewRedisTokenBlacklist(client).IsRevoked(context.Background(), "jti")
	assert.Error(t, err)
}

func TestMemoryTokenBlacklist(t *testing.T) {
	bl := NewMemoryTokenBlacklist()
	now := time.Now()
	bl.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, bl.Revoke(ctx, "jti-1", time.Minute))
	revoked, _ := bl.IsRevoked(ctx, "jti-1")
	assert.True(t, revoked)

	now = now.Add(time.Minute)
	revoked, _ = bl.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked)

	// expired entries are pruned on the next write
	require.NoError(t, bl.Revoke(ctx, "jti-2", time.Minute))
	assert.Len(t, bl.entries, 1)
}
