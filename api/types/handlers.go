package types

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	apperrors "github.com/killallgit/nzwalks-api/pkg/errors"
	"github.com/rs/zerolog"
)

// Handler utility functions to reduce duplication across handlers

// ParseUUIDParam extracts and parses a URL parameter as a UUID
// Returns the parsed value and sends error response if parsing fails
func ParseUUIDParam(c *gin.Context, paramName string) (uuid.UUID, bool) {
	value, err := uuid.Parse(c.Param(paramName))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid " + paramName,
			Error:   string(apperrors.ErrCodeInvalidInput),
		})
		return uuid.Nil, false
	}
	return value, true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		var details interface{} = err.Error()

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			details = fieldErrors(validationErrs)
		}

		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Error:   string(apperrors.ErrCodeValidation),
			Details: details,
		})
		return false
	}
	return true
}

// fieldErrors converts validator errors into client-facing messages
func fieldErrors(errs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		default:
			msg = fmt.Sprintf("failed on %s", fe.Tag())
		}
		out = append(out, FieldError{
			Field: lowerFirst(fe.Field()),
			Error: msg,
		})
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// SendStatus sends a status code with an empty body
func SendStatus(c *gin.Context, code int) {
	c.AbortWithStatus(code)
}

// SendError logs err and answers with the status derived from its AppError code
func SendError(c *gin.Context, logger zerolog.Logger, message string, err error) {
	code := apperrors.GetHTTPCode(err)
	if code >= http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("code", string(apperrors.GetCode(err))).
			Msg(message)
	}

	c.AbortWithStatusJSON(code, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.GetCode(err)),
	})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}
