package attendance

import (
	"sort"
)

// DailyStats is the employer-wide view for a single date.
type DailyStats struct {
	Employees int `json:"employees"`
	Present   int `json:"present"`
	Late      int `json:"late"`
	Absent    int `json:"absent"`
}

// MonthlySummaryRow is the per-employee rollup for one month.
type MonthlySummaryRow struct {
	EmployeeID  string  `json:"employee_id"`
	FullName    string  `json:"fullname"`
	DaysPresent int     `json:"days_present"`
	LateCount   int     `json:"late_count"`
	Absences    int     `json:"absences"`
	TotalHours  float64 `json:"total_hours"`
}

// ComputeDailyStats folds one date's records against the active roster.
// Present counts distinct employees whose status is Present or Late; absent
// is the roster set-difference against employees holding any record for the
// date, so an active employee with no record at all counts as absent while
// one holding an Absent record lands in neither bucket.
func ComputeDailyStats(activeEmployeeIDs []string, records []Attendance) DailyStats {
	present := make(map[string]struct{})
	late := make(map[string]struct{})
	hasRecord := make(map[string]struct{})

	for _, rec := range records {
		hasRecord[rec.EmployeeID] = struct{}{}
		switch rec.Status {
		case StatusPresent:
			present[rec.EmployeeID] = struct{}{}
		case StatusLate:
			present[rec.EmployeeID] = struct{}{}
			late[rec.EmployeeID] = struct{}{}
		}
	}

	absent := 0
	for _, id := range activeEmployeeIDs {
		if _, ok := hasRecord[id]; !ok {
			absent++
		}
	}

	return DailyStats{
		Employees: len(activeEmployeeIDs),
		Present:   len(present),
		Late:      len(late),
		Absent:    absent,
	}
}

// BuildMonthlySummary groups one month's records per employee. Only
// employees with at least one record appear; absence here counts stored
// Absent records, deliberately unlike the roster-based daily view.
// Rows come back ordered by full name, then employee id for stability.
func BuildMonthlySummary(records []Attendance) []MonthlySummaryRow {
	byEmployee := make(map[string]*MonthlySummaryRow)

	for _, rec := range records {
		row, ok := byEmployee[rec.EmployeeID]
		if !ok {
			row = &MonthlySummaryRow{EmployeeID: rec.EmployeeID, FullName: rec.FullName}
			byEmployee[rec.EmployeeID] = row
		}

		switch rec.Status {
		case StatusPresent:
			row.DaysPresent++
		case StatusLate:
			row.DaysPresent++
			row.LateCount++
		case StatusAbsent:
			row.Absences++
		}

		if rec.WorkedHours != nil {
			row.TotalHours += *rec.WorkedHours
		}
	}

	rows := make([]MonthlySummaryRow, 0, len(byEmployee))
	for _, row := range byEmployee {
		row.TotalHours = RoundHours(row.TotalHours)
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].FullName != rows[j].FullName {
			return rows[i].FullName < rows[j].FullName
		}
		return rows[i].EmployeeID < rows[j].EmployeeID
	})

	return rows
}
