package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func rec(employeeID, name string, d int, status Status, hours *float64) Attendance {
	return Attendance{
		EmployeeID:  employeeID,
		FullName:    name,
		Date:        day(d),
		Status:      status,
		WorkedHours: hours,
	}
}

func hoursPtr(h float64) *float64 { return &h }

func TestComputeDailyStats(t *testing.T) {
	roster := []string{"E1", "E2", "E3", "E4"}
	records := []Attendance{
		rec("E1", "Alice", 3, StatusPresent, hoursPtr(8)),
		rec("E2", "Bob", 3, StatusLate, nil),
		// E3 never showed up and has no record; E4 was marked Absent by the
		// overnight job and therefore holds a record.
		rec("E4", "Dave", 3, StatusAbsent, nil),
	}

	stats := ComputeDailyStats(roster, records)

	assert.Equal(t, 4, stats.Employees)
	assert.Equal(t, 2, stats.Present, "present counts Present and Late check-ins")
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 1, stats.Absent, "only employees with no record count as absent")
}

func TestComputeDailyStatsEmptyDay(t *testing.T) {
	stats := ComputeDailyStats([]string{"E1", "E2"}, nil)

	assert.Equal(t, DailyStats{Employees: 2, Present: 0, Late: 0, Absent: 2}, stats)
}

func TestComputeDailyStatsIgnoresNonRosterRecords(t *testing.T) {
	// A record from a deactivated employee still counts toward present but
	// never inflates the roster-based absent figure.
	stats := ComputeDailyStats([]string{"E1"}, []Attendance{
		rec("E9", "Zed", 3, StatusPresent, nil),
	})

	assert.Equal(t, 1, stats.Present)
	assert.Equal(t, 1, stats.Absent)
}

func TestBuildMonthlySummary(t *testing.T) {
	var records []Attendance

	// Employee E has 20 Present, 2 Late, 3 Absent and 180.25 logged hours.
	for d := 1; d <= 20; d++ {
		records = append(records, rec("E", "Erin", d, StatusPresent, hoursPtr(8.25)))
	}
	records = append(records,
		rec("E", "Erin", 21, StatusLate, hoursPtr(7.5)),
		rec("E", "Erin", 22, StatusLate, hoursPtr(7.75)),
		rec("E", "Erin", 23, StatusAbsent, nil),
		rec("E", "Erin", 24, StatusAbsent, nil),
		rec("E", "Erin", 25, StatusAbsent, nil),
	)

	rows := BuildMonthlySummary(records)
	require.Len(t, rows, 1)

	assert.Equal(t, MonthlySummaryRow{
		EmployeeID:  "E",
		FullName:    "Erin",
		DaysPresent: 22,
		LateCount:   2,
		Absences:    3,
		TotalHours:  180.25,
	}, rows[0])
}

func TestBuildMonthlySummaryOrdersByName(t *testing.T) {
	records := []Attendance{
		rec("E3", "Carol", 1, StatusPresent, hoursPtr(8)),
		rec("E1", "Alice", 1, StatusPresent, hoursPtr(8)),
		rec("E2", "Bob", 2, StatusLate, hoursPtr(6)),
		rec("E1", "Alice", 2, StatusAbsent, nil),
	}

	rows := BuildMonthlySummary(records)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, []string{rows[0].FullName, rows[1].FullName, rows[2].FullName})
	assert.Equal(t, 1, rows[0].DaysPresent)
	assert.Equal(t, 1, rows[0].Absences)
}

func TestBuildMonthlySummaryRoundsTotal(t *testing.T) {
	rows := BuildMonthlySummary([]Attendance{
		rec("E1", "Alice", 1, StatusPresent, hoursPtr(0.1)),
		rec("E1", "Alice", 2, StatusPresent, hoursPtr(0.2)),
		rec("E1", "Alice", 3, StatusPresent, hoursPtr(0.3)),
	})
	require.Len(t, rows, 1)

	// Binary float accumulation must not leak into the reported total.
	assert.Equal(t, 0.6, rows[0].TotalHours)
}

func TestBuildMonthlySummaryEmpty(t *testing.T) {
	assert.Empty(t, BuildMonthlySummary(nil))
}
