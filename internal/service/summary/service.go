package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/kennarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/kennarhq/attendance-backend-go/internal/domain/summary"
)

type SummaryServiceImpl struct {
	attendance.AttendanceRepository
}

func NewSummaryService(attendanceRepository attendance.AttendanceRepository) summary.SummaryService {
	return &SummaryServiceImpl{AttendanceRepository: attendanceRepository}
}

// GetMonthlySummary implements summary.SummaryService.
func (s *SummaryServiceImpl) GetMonthlySummary(ctx context.Context, month string) ([]attendance.MonthlySummaryRow, error) {
	year, m, err := summary.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByMonth(ctx, year, time.Month(m))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for month: %w", err)
	}

	return attendance.BuildMonthlySummary(records), nil
}
