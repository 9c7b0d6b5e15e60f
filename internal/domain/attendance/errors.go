package attendance

import (
	"errors"

	"github.com/kennarhq/attendance-backend-go/internal/pkg/timeofday"
)

// Attendance domain errors
var (
	// ErrInvalidTimeFormat aliases the parser error so callers can match it
	// without importing the timeofday package.
	ErrInvalidTimeFormat = timeofday.ErrInvalidFormat

	ErrRecordNotFound = errors.New("attendance record not found")
	ErrMissingField   = errors.New("missing required fields")
)
