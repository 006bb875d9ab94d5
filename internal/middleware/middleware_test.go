package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/alumnet/internal/app/auth"
	"github.com/yigit/alumnet/internal/app/models"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/app/repositories/mocks"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/auth"
	"github.com/yigit/alumnet/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Success bool            `json:"success"`
	Error   dto.ErrorDetail `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"not found sentinel", apperrors.ErrJobNotFound, 404, dto.ErrorCodeResourceNotFound, "Job not found"},
		{"public message wins", apperrors.NewCustomError(apperrors.ErrMentorshipRequestNotFound, "Request not found or not authorized"),
			404, dto.ErrorCodeResourceNotFound, "Request not found or not authorized"},
		{"wrapped conflict", fmt.Errorf("ctx: %w", apperrors.ErrMentorshipRequestExists), 409, dto.ErrorCodeResourceAlreadyExists, "Mentorship request already exists"},
		{"expired", apperrors.ErrTokenExpired, 401, dto.ErrorCodeExpiredToken, "Token expired"},
		{"wrong role", apperrors.ErrRoleNotAllowed, 403, dto.ErrorCodeRoleNotAllowed, "Access denied"},
		{"pending approval", apperrors.ErrAccountPendingApproval, 403, dto.ErrorCodePendingApproval, "Account pending approval"},
		{"forbidden", apperrors.NewForbiddenError("Not authorized to delete this job"), 403, dto.ErrorCodeForbidden, "Not authorized to delete this job"},
		{"bad request", apperrors.NewBadRequestError("Search query is required"), 400, dto.ErrorCodeBadRequest, "Search query is required"},
		{"status transition", apperrors.ErrInvalidStatusTransition, 409, dto.ErrorCodeConflict, "Request has already been answered"},
		{"generic not found", apperrors.NewResourceNotFoundError("Route not found"), 404, dto.ErrorCodeResourceNotFound, "Route not found"},
		{"payload too large", apperrors.ErrPayloadTooLarge, 413, dto.ErrorCodePayloadTooLarge, "Request body too large"},
		{"unknown", errors.New("connection reset"), 500, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			body := decodeError(t, w)
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.message, body.Error.Message)
			assert.Empty(t, body.Error.DebugInfo, "test mode never leaks error text")
			assert.True(t, c.IsAborted())
		})
	}
}

func TestHandleAPIErrorDebugMode(t *testing.T) {
	gin.SetMode(gin.DebugMode)
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	HandleAPIError(c, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "connection reset", body.Error.DebugInfo)
	require.NotEmpty(t, body.Error.Stack)
	assert.Contains(t, strings.Join(body.Error.Stack, "\n"), "HandleAPIError")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	HandleAPIError(c, apperrors.ErrJobNotFound)

	body = decodeError(t, w)
	assert.Empty(t, body.Error.Stack, "client errors carry no stack")
}

type authFixture struct {
	jwt       *auth.JWTService
	blacklist *auth.MemoryTokenBlacklist
	users     *mocks.MockUserRepository
	router    *gin.Engine
}

func newAuthFixture(policy appauth.Policy) *authFixture {
	f := &authFixture{
		jwt: auth.NewJWTService(auth.JWTConfig{
			SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "alumnet-test",
		}),
		blacklist: auth.NewMemoryTokenBlacklist(),
		users:     new(mocks.MockUserRepository),
	}
	m := NewAuthMiddleware(f.jwt, f.blacklist, f.users)

	f.router = gin.New()
	f.router.GET("/protected", m.Authenticate(), m.Require(policy), func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		jti, _ := CurrentToken(c)
		c.JSON(http.StatusOK, gin.H{"id": principal.UserID, "jti": jti})
	})
	return f
}

func (f *authFixture) token(t *testing.T, user *models.User) (string, string) {
	t.Helper()
	issued, err := f.jwt.GenerateToken(user)
	require.NoError(t, err)
	return issued.Token, issued.ID
}

func (f *authFixture) do(header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	student := &models.User{ID: 4, Email: "s@example.edu", Role: models.RoleStudent, IsApproved: true}
	pending := &models.User{ID: 5, Email: "p@example.edu", Role: models.RoleAlumni}
	approved := &models.User{ID: 6, Email: "a@example.edu", Role: models.RoleAlumni, IsApproved: true}

	t.Run("missing header", func(t *testing.T) {
		f := newAuthFixture(appauth.Authenticated)
		w := f.do("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeUnauthorized, decodeError(t, w).Error.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		f := newAuthFixture(appauth.Authenticated)
		w := f.do("Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		f := newAuthFixture(appauth.Authenticated)
		w := f.do("Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeInvalidToken, decodeError(t, w).Error.Code)
	})

	t.Run("valid token resolves the stored user", func(t *testing.T) {
		f := newAuthFixture(appauth.Authenticated)
		f.users.On("GetByID", mock.Anything, int64(4)).Return(student, nil)
		token, jti := f.token(t, student)

		w := f.do("Bearer " + token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"id":4,"jti":%q}`, jti), w.Body.String())
	})

	t.Run("revoked token", func(t *testing.T) {
		f := newAuthFixture(appauth.Authenticated)
		token, jti := f.token(t, student)
		require.NoError(t, f.blacklist.Revoke(context.Background(), jti, time.Hour))

		w := f.do("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeRevokedToken, decodeError(t, w).Error.Code)
		f.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("deleted user", func(t *testing.T) {
		f := newAuthFixture(appauth.Authenticated)
		f.users.On("GetByID", mock.Anything, int64(4)).Return(nil, apperrors.ErrUserNotFound)
		token, _ := f.token(t, student)

		w := f.do("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "User no longer exists", decodeError(t, w).Error.Message)
	})

	t.Run("wrong role", func(t *testing.T) {
		f := newAuthFixture(appauth.Admin)
		f.users.On("GetByID", mock.Anything, int64(4)).Return(student, nil)
		token, _ := f.token(t, student)

		w := f.do("Bearer " + token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, dto.ErrorCodeRoleNotAllowed, decodeError(t, w).Error.Code)
	})

	t.Run("approval read from storage, not the token", func(t *testing.T) {
		f := newAuthFixture(appauth.ApprovedAlumni)
		f.users.On("GetByID", mock.Anything, int64(5)).Return(pending, nil).Once()
		token, _ := f.token(t, pending)

		w := f.do("Bearer " + token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, dto.ErrorCodePendingApproval, decodeError(t, w).Error.Code)

		f.users.On("GetByID", mock.Anything, int64(5)).Return(&models.User{
			ID: 5, Role: models.RoleAlumni, IsApproved: true,
		}, nil).Once()
		w = f.do("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("approved alumni passes", func(t *testing.T) {
		f := newAuthFixture(appauth.ApprovedAlumni)
		f.users.On("GetByID", mock.Anything, int64(6)).Return(approved, nil)
		token, _ := f.token(t, approved)

		assert.Equal(t, http.StatusOK, f.do("Bearer "+token).Code)
	})
}

func TestRequireWithoutAuthenticate(t *testing.T) {
	m := NewAuthMiddleware(nil, nil, nil)
	router := gin.New()
	router.GET("/x", m.Require(appauth.Authenticated), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitByIP(t *testing.T) {
	router := gin.New()
	router.POST("/login", RateLimitByIP(RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)

	w := send("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, dto.ErrorCodeRateLimited, decodeError(t, w).Error.Code)

	assert.Equal(t, http.StatusOK, send("10.0.0.2").Code, "limits are per client")
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS(DefaultCORSConfig([]string{"http://localhost:5173"})))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger(t *testing.T) {
	var buf strings.Builder
	router := gin.New()
	router.Use(RequestLogger(zerolog.New(&buf)))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	generated := w.Header().Get(headerRequestID)
	assert.Len(t, generated, 26)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(headerRequestID, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(headerRequestID))

	assert.Contains(t, buf.String(), `"requestID":"abc-123"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestBindJSON(t *testing.T) {
	require.NoError(t, validation.RegisterRules())

	router := gin.New()
	router.POST("/register", func(c *gin.Context) {
		var req dto.RegisterRequest
		if !BindJSON(c, &req) {
			return
		}
		c.Status(http.StatusCreated)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := post(`{"name":"Jane","email":"jane@example.edu","password":"secret1","role":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.Equal(t, "role", body.Error.Field)
	assert.Equal(t, "role must be one of: alumni, student", body.Error.Message)

	w = post(`{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeBadRequest, decodeError(t, w).Error.Code)

	w = post(`{"name":"Jane","email":"jane@example.edu","password":"secret1","role":"student"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBindJSONBodyLimit(t *testing.T) {
	router := gin.New()
	router.Use(BodyLimit(64))
	router.POST("/login", func(c *gin.Context) {
		var req dto.LoginRequest
		if !BindJSON(c, &req) {
			return
		}
		c.Status(http.StatusOK)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := post(`{"email":"jane@example.edu","password":"` + strings.Repeat("x", 128) + `"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodePayloadTooLarge, body.Error.Code)
	assert.Equal(t, "Request body exceeds 64 bytes", body.Error.Message)

	w = post(`{"email":"jane@example.edu","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
