package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/alumnet/internal/app/models/dto"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/validation"
)

// BindJSON binds the request body into obj and writes an error response on failure.
// It reports whether the handler should continue.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleBindError(c, err)
		return false
	}
	return true
}

// HandleBindError renders a binding failure. Field validation errors are listed
// per field, an oversized body is a 413 and anything else is a malformed body.
func HandleBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrPayloadTooLarge,
			fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit)))
		return
	}

	fields := dto.NewValidationErrors()
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields.AddError(fe.Field(), validation.FieldMessage(fe))
		}
	}
	if !fields.HasErrors() {
		detail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid request format").
			WithSeverity(dto.ErrorSeverityWarning)
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, fields.Errors[0].Message).
		WithField(fields.Errors[0].Field).
		WithSeverity(dto.ErrorSeverityWarning).
		WithDetails(fields.Errors)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
