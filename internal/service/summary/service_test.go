package summary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/kennarhq/attendance-backend-go/internal/domain/summary"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	records   []attendance.Attendance
	lastYear  int
	lastMonth time.Month
}

func (f *fakeAttendanceRepo) ListByMonth(ctx context.Context, year int, month time.Month) ([]attendance.Attendance, error) {
	f.lastYear = year
	f.lastMonth = month
	return f.records, nil
}

func hours(h float64) *float64 { return &h }

func TestGetMonthlySummaryRollsUpPerEmployee(t *testing.T) {
	repo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{EmployeeID: "E1", FullName: "Ann", Status: attendance.StatusPresent, WorkedHours: hours(8)},
		{EmployeeID: "E1", FullName: "Ann", Status: attendance.StatusLate, WorkedHours: hours(7.5)},
		{EmployeeID: "E1", FullName: "Ann", Status: attendance.StatusAbsent},
		{EmployeeID: "E2", FullName: "Bob", Status: attendance.StatusPresent, WorkedHours: hours(9)},
	}}
	svc := NewSummaryService(repo)

	rows, err := svc.GetMonthlySummary(context.Background(), "2023-05")
	require.NoError(t, err)

	assert.Equal(t, 2023, repo.lastYear)
	assert.Equal(t, time.May, repo.lastMonth)

	require.Len(t, rows, 2)
	assert.Equal(t, attendance.MonthlySummaryRow{
		EmployeeID: "E1", FullName: "Ann", DaysPresent: 2, LateCount: 1, Absences: 1, TotalHours: 15.5,
	}, rows[0])
	assert.Equal(t, "E2", rows[1].EmployeeID)
}

func TestGetMonthlySummaryRequiresMonth(t *testing.T) {
	svc := NewSummaryService(&fakeAttendanceRepo{})

	for _, month := range []string{"", "2023", "May 2023", "2023-13"} {
		_, err := svc.GetMonthlySummary(context.Background(), month)
		assert.ErrorIs(t, err, summary.ErrMonthRequired, "month %q", month)
	}
}
