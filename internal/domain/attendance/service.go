package attendance

import (
	"context"
)

// AttendanceService is the caller-facing surface for attendance events and
// the report feed.
type AttendanceService interface {
	// CheckIn records or clears an employee's check-in time and re-derives
	// status and worked hours.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut records the check-out time and the resulting worked hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// List returns every record, newest date first.
	List(ctx context.Context) ([]AttendanceResponse, error)
}
