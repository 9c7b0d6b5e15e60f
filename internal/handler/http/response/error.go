package response

import (
	"errors"
	"net/http"

	"github.com/kennarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/kennarhq/attendance-backend-go/internal/domain/auth"
	"github.com/kennarhq/attendance-backend-go/internal/domain/employee"
	"github.com/kennarhq/attendance-backend-go/internal/domain/summary"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidTimeFormat):
		BadRequest(w, "Time must be HH:MM or HH:MM:SS", nil)
	case errors.Is(err, attendance.ErrMissingField):
		BadRequest(w, "Missing required fields", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, summary.ErrMonthRequired):
		BadRequest(w, "Query parameter 'month' is required (YYYY-MM)", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrNoImage):
		NotFound(w, "Employee has no stored image")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, auth.ErrAdminNotFound):
		NotFound(w, "Admin not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
