package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kennarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/kennarhq/attendance-backend-go/internal/domain/employee"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/timeofday"
)

// facilityZone matches the kiosks' wall clock; the job gate and the date key
// both follow it.
var facilityZone = time.FixedZone("UTC+8", 8*3600)

// AttendanceJobs owns the overnight housekeeping around attendance records.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills an Absent record for every active employee
// with no record for yesterday (facility time). These rows are what the
// monthly summary's absence count is built from, and they are the records a
// later corrective check-in updates in place.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run in the first hour after the facility's midnight.
	if j.now().In(facilityZone).Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job")

	yesterday := timeofday.DateOf(j.now()).AddDate(0, 0, -1)

	employees, err := j.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	marked := 0
	for _, emp := range employees {
		if emp.Status != employee.StatusActive {
			continue
		}

		_, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, emp.EmployeeID, yesterday)
		if err == nil {
			continue
		}
		if !errors.Is(err, attendance.ErrRecordNotFound) {
			slog.Error("Cron: Failed to look up attendance", "employee_id", emp.EmployeeID, "error", err)
			continue
		}

		_, err = j.attendanceRepo.Create(ctx, attendance.Attendance{
			ID:         uuid.New().String(),
			EmployeeID: emp.EmployeeID,
			FullName:   emp.Name,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
		})
		if err != nil {
			slog.Error("Cron: Failed to create absence record", "employee_id", emp.EmployeeID, "error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: Marked absent employees", "count", marked, "date", yesterday.Format("2006-01-02"))
	return nil
}
