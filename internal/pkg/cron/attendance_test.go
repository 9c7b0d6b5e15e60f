package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/kennarhq/attendance-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository

	employees []employee.Employee
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	existing map[string]bool
	created  []attendance.Attendance
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	if f.existing[employeeID] {
		return attendance.Attendance{EmployeeID: employeeID, Date: date}, nil
	}
	return attendance.Attendance{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.created = append(f.created, att)
	return att, nil
}

// facilityTime builds an instant whose facility-local clock reads the given
// hour on the given date.
func facilityTime(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, facilityZone)
}

func TestMarkAbsentEmployeesBackfillsMissingRecords(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{EmployeeID: "E1", Name: "Ann", Status: employee.StatusActive},
		{EmployeeID: "E2", Name: "Ben", Status: employee.StatusActive},
		{EmployeeID: "E3", Name: "Cy", Status: employee.StatusInactive},
	}}
	attRepo := &fakeAttendanceRepo{existing: map[string]bool{"E2": true}}

	jobs := NewAttendanceJobs(attRepo, empRepo)
	jobs.now = func() time.Time { return facilityTime(2023, 5, 11, 0) }

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	require.Len(t, attRepo.created, 1, "only the active employee without a record gets one")
	rec := attRepo.created[0]
	assert.Equal(t, "E1", rec.EmployeeID)
	assert.Equal(t, "Ann", rec.FullName)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.Equal(t, "2023-05-10", rec.Date.Format("2006-01-02"))
	assert.Nil(t, rec.TimeIn)
}

func TestMarkAbsentEmployeesOnlyRunsAfterMidnight(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{EmployeeID: "E1", Name: "Ann", Status: employee.StatusActive},
	}}
	attRepo := &fakeAttendanceRepo{existing: map[string]bool{}}

	jobs := NewAttendanceJobs(attRepo, empRepo)
	jobs.now = func() time.Time { return facilityTime(2023, 5, 11, 10) }

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Empty(t, attRepo.created)
}

func TestSchedulerRunOnceInvokesRegisteredJobs(t *testing.T) {
	scheduler := NewScheduler()

	calls := 0
	scheduler.AddJob("nightly", time.Hour, func(ctx context.Context) error {
		calls++
		return nil
	})

	scheduler.RunOnce(context.Background())
	assert.Equal(t, 1, calls)
}

func TestSchedulerStartFiresJobsImmediately(t *testing.T) {
	scheduler := NewScheduler()

	ran := make(chan struct{})
	scheduler.AddJob("nightly", time.Hour, func(ctx context.Context) error {
		close(ran)
		return nil
	})

	scheduler.Start()
	defer scheduler.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}
