package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	appauth "github.com/yigit/alumnet/internal/app/auth"
	"github.com/yigit/alumnet/internal/app/repositories"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/auth"
	"github.com/yigit/alumnet/internal/pkg/logger"
)

const (
	contextKeyTokenID        = "tokenID"
	contextKeyTokenExpiresAt = "tokenExpiresAt"
)

// AuthMiddleware resolves the caller of a request and enforces route policies
type AuthMiddleware struct {
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	userRepo   repositories.IUserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, blacklist auth.TokenBlacklist, userRepo repositories.IUserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		blacklist:  blacklist,
		userRepo:   userRepo,
	}
}

// Authenticate verifies the bearer token and attaches the caller's principal
// to the request context. Role and approval come from storage, not from the token.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrUnauthenticated, "Authentication required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		ctx := c.Request.Context()
		revoked, err := m.blacklist.IsRevoked(ctx, claims.ID)
		if err != nil {
			HandleAPIError(c, err)
			return
		}
		if revoked {
			HandleAPIError(c, apperrors.ErrTokenRevoked)
			return
		}

		user, err := m.userRepo.GetByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrTokenInvalid, "User no longer exists"))
				return
			}
			HandleAPIError(c, err)
			return
		}

		principal := appauth.NewPrincipal(user)
		reqLogger := logger.Ctx(ctx).With().Int64("userID", user.ID).Logger()
		ctx = logger.WithContext(appauth.WithPrincipal(ctx, principal), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Set(contextKeyTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(contextKeyTokenExpiresAt, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// Require rejects callers that do not satisfy policy. It must run after Authenticate.
func (m *AuthMiddleware) Require(policy appauth.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, _ := appauth.PrincipalFromContext(c.Request.Context())
		if err := appauth.Authorize(principal, policy); err != nil {
			HandleAPIError(c, err)
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the caller attached by Authenticate
func CurrentPrincipal(c *gin.Context) (*appauth.Principal, bool) {
	return appauth.PrincipalFromContext(c.Request.Context())
}

// CurrentToken returns the id and expiry of the bearer token of the request
func CurrentToken(c *gin.Context) (string, time.Time) {
	jti := c.GetString(contextKeyTokenID)
	expiresAt := c.GetTime(contextKeyTokenExpiresAt)
	return jti, expiresAt
}
