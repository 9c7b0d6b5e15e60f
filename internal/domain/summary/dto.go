package summary

import (
	"errors"

	"github.com/kennarhq/attendance-backend-go/internal/pkg/validator"
)

// ErrMonthRequired is returned when the month query parameter is missing or
// not YYYY-MM.
var ErrMonthRequired = errors.New("month is required (YYYY-MM)")

// ParseMonth validates a YYYY-MM month string into (year, month).
func ParseMonth(month string) (int, int, error) {
	if validator.IsEmpty(month) {
		return 0, 0, ErrMonthRequired
	}
	t, ok := validator.IsValidMonth(month)
	if !ok {
		return 0, 0, ErrMonthRequired
	}
	return t.Year(), int(t.Month()), nil
}
