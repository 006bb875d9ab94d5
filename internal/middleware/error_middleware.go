package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/logger"
)

// errorMapping binds a sentinel to its HTTP status, error code and default message
type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

// errorMappings is checked in order; the first sentinel matched by errors.Is wins
var errorMappings = []errorMapping{
	// 400
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"},
	{apperrors.ErrAlreadyApproved, http.StatusBadRequest, dto.ErrorCodeBadRequest, "User is already approved"},
	{apperrors.ErrCannotDeleteSelf, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Cannot delete your own account"},
	{apperrors.ErrNotOfferingMentorship, http.StatusBadRequest, dto.ErrorCodeBadRequest, "This alumni is not offering mentorship"},

	// 413
	{apperrors.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge, dto.ErrorCodePayloadTooLarge, "Request body too large"},

	// 401
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeRevokedToken, "Token revoked"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrUnauthenticated, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required"},

	// 403
	{apperrors.ErrRoleNotAllowed, http.StatusForbidden, dto.ErrorCodeRoleNotAllowed, "Access denied"},
	{apperrors.ErrAccountPendingApproval, http.StatusForbidden, dto.ErrorCodePendingApproval, "Account pending approval"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},

	// 404
	{apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"},
	{apperrors.ErrAlumniNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Alumni not found"},
	{apperrors.ErrAlumniProfileNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Alumni profile not found"},
	{apperrors.ErrMentorshipRequestNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Request not found"},
	{apperrors.ErrJobNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Job not found"},
	{apperrors.ErrAnnouncementNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Announcement not found"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},

	// 409
	{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"},
	{apperrors.ErrMentorshipRequestExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Mentorship request already exists"},
	{apperrors.ErrInvalidStatusTransition, http.StatusConflict, dto.ErrorCodeConflict, "Request has already been answered"},

	// 429
	{apperrors.ErrTooManyRequests, http.StatusTooManyRequests, dto.ErrorCodeRateLimited, "Too many requests"},
}

// HandleAPIError writes the error response for err and aborts the chain.
// Unmapped errors are logged and reported as 500; debug mode adds the error text
// and the stack.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := resolveError(err)

	if status >= http.StatusInternalServerError {
		logger.Ctx(c.Request.Context()).Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		if gin.IsDebugging() {
			detail = detail.WithDebugInfo("%v", err).WithStack(debug.Stack())
		}
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// resolveError maps err to a status and error detail without writing anything
func resolveError(err error) (int, *dto.ErrorDetail) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		message := m.message
		if public, ok := apperrors.PublicMessage(err); ok {
			message = public
		}
		detail := dto.NewErrorDetail(m.code, message)

		var customErr *apperrors.CustomError
		if errors.As(err, &customErr) && len(customErr.Details) > 0 {
			detail = detail.WithDetails(customErr.Details)
		}
		if m.status < http.StatusInternalServerError && m.status != http.StatusUnauthorized && m.status != http.StatusForbidden {
			detail = detail.WithSeverity(dto.ErrorSeverityWarning)
		}
		return m.status, detail
	}

	return http.StatusInternalServerError,
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
}

// NotFoundHandler answers unmatched routes
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleAPIError(c, apperrors.NewResourceNotFoundError("Route not found"))
	}
}
