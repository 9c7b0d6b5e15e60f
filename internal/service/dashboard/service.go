package dashboard

import (
	"context"
	"fmt"

	"github.com/kennarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/kennarhq/attendance-backend-go/internal/domain/dashboard"
	"github.com/kennarhq/attendance-backend-go/internal/domain/employee"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/timeofday"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/validator"
)

type DashboardServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewDashboardService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
	}
}

// GetDailyStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDailyStats(ctx context.Context, date string) (attendance.DailyStats, error) {
	day := timeofday.Today()
	if date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			return attendance.DailyStats{}, validator.ValidationErrors{{Field: "date", Message: "date must be YYYY-MM-DD"}}
		}
		day = parsed
	}

	activeIDs, err := s.EmployeeRepository.ListActiveIDs(ctx)
	if err != nil {
		return attendance.DailyStats{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return attendance.DailyStats{}, fmt.Errorf("failed to list attendance for date: %w", err)
	}

	return attendance.ComputeDailyStats(activeIDs, records), nil
}
