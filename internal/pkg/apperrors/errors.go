package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied       = errors.New("permission denied")
	ErrRoleNotAllowed         = errors.New("role not allowed")
	ErrAccountPendingApproval = errors.New("account pending approval")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrPayloadTooLarge  = errors.New("payload too large")

	// Rate limiting
	ErrTooManyRequests = errors.New("too many requests")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrAlreadyApproved    = errors.New("user is already approved")
	ErrCannotDeleteSelf   = errors.New("cannot delete your own account")
)

// Alumni errors
var (
	ErrAlumniNotFound        = errors.New("alumni not found")
	ErrAlumniProfileNotFound = errors.New("alumni profile not found")
	ErrNotOfferingMentorship = errors.New("alumni is not offering mentorship")
)

// Mentorship errors
var (
	ErrMentorshipRequestNotFound = errors.New("mentorship request not found")
	ErrMentorshipRequestExists   = errors.New("mentorship request already exists")
	ErrInvalidStatusTransition   = errors.New("invalid mentorship status transition")
)

// Job and announcement errors
var (
	ErrJobNotFound          = errors.New("job posting not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context.
// Message is the text shown to API clients; Err drives the status mapping.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// PublicMessage returns the client facing message carried by err, if any
func PublicMessage(err error) (string, bool) {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message, true
	}
	return "", false
}
