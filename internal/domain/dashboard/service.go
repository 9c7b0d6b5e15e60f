package dashboard

import (
	"context"

	"github.com/kennarhq/attendance-backend-go/internal/domain/attendance"
)

// DashboardService answers "who hasn't shown up today": employer-wide
// counts for a single date, measured against the active roster.
type DashboardService interface {
	// GetDailyStats computes counts for the given YYYY-MM-DD date. An empty
	// date defaults to today in the facility timezone.
	GetDailyStats(ctx context.Context, date string) (attendance.DailyStats, error)
}
