package summary

import (
	"context"

	"github.com/kennarhq/attendance-backend-go/internal/domain/attendance"
)

// SummaryService answers "how many logged absences this month": per-employee
// monthly rollups over stored records only. Employees without any record in
// the month do not appear; that deliberately differs from the daily view's
// roster-based absence counting.
type SummaryService interface {
	GetMonthlySummary(ctx context.Context, month string) ([]attendance.MonthlySummaryRow, error)
}
