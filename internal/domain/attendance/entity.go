package attendance

import (
	"time"
)

// Status classifies one employee-day. It is always derived from the check-in
// time against the configured cutoff and is never set directly by callers.
type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
)

// Attendance is one record per (employee, calendar date). TimeIn and TimeOut
// are seconds since midnight in the facility timezone; WorkedHours is present
// exactly when TimeOut is.
type Attendance struct {
	ID          string
	EmployeeID  string
	FullName    string
	Date        time.Time
	Temperature *float64
	TimeIn      *int
	TimeOut     *int
	Status      Status
	WorkedHours *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
