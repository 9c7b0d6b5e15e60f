package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the persistence boundary for attendance records.
// Records are keyed by (employee_id, date); the surrogate id exists for the
// transport layer. Writes touching check-in/check-out must happen through
// the ForUpdate variants inside a transaction so the read-compute-write
// sequence for a single key is never interleaved.
type AttendanceRepository interface {
	// Create inserts a new record for a key. Only the external creating
	// events (kiosk registration, the absence-marking job) call this;
	// check-in and check-out never create.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID returns ErrRecordNotFound when the id does not exist.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByIDForUpdate locks the row for the remainder of the surrounding
	// transaction.
	GetByIDForUpdate(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate looks a record up by its natural key.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// SetCheckIn writes time_in, status and worked_hours for one row as a
	// single statement.
	SetCheckIn(ctx context.Context, att Attendance) error

	// SetCheckOut writes time_out and worked_hours for one row as a single
	// statement.
	SetCheckOut(ctx context.Context, att Attendance) error

	// ListByDate scans all records for one calendar date.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListByMonth scans all records for one calendar month.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]Attendance, error)

	// List returns the full report feed, newest date first.
	List(ctx context.Context) ([]Attendance, error)

	// DeleteByEmployee removes all records for an employee. Administrative
	// path only, used when the employee itself is deleted.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
