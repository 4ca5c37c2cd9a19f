package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/motionfix-api/internal/domain"
	"github.com/phrazzld/motionfix-api/internal/service"
	"github.com/phrazzld/motionfix-api/internal/task"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, task.ErrTaskNotFound):
		return http.StatusNotFound

	// Request validation errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyFileName),
		errors.Is(err, domain.ErrVolumeOutOfRange):
		return http.StatusUnprocessableEntity

	// Default: internal server error. A saturated queue counts as a
	// creation failure, so task.ErrQueueFull lands here too.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return "An unexpected error occurred"
	}

	// Map specific error types to user-friendly messages
	switch {
	// Not found errors
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, task.ErrTaskNotFound):
		return "Task not found"

	// Request validation errors
	case errors.Is(err, domain.ErrEmptyFileName),
		errors.Is(err, domain.ErrVolumeOutOfRange),
		errors.Is(err, domain.ErrValidation):
		return "Invalid request data"

	// Default case for unknown errors
	default:
		// Check the operation context embedded in service errors
		if strings.Contains(err.Error(), "start_processing") {
			return "Failed to start audio processing"
		} else if strings.Contains(err.Error(), "get_task") {
			return "Failed to retrieve task status"
		}
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message naming only the first offending field.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		// Not a field-level validation error, keep the message generic
		return "Validation error"
	}

	first := fieldErrs[0]
	return fmt.Sprintf("Invalid %s: %s", first.Field(), getValidationTagMessage(first.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "gte":
		return "value too small"
	case "lte":
		return "value too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
