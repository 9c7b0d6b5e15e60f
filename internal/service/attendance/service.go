package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/kennarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/database"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/metrics"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/queue"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/timeofday"
	"github.com/kennarhq/attendance-backend-go/internal/repository/postgresql"
)

const publishTimeout = 5 * time.Second

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	queue   queue.Queue
	metrics *metrics.Metrics
	cutoff  int

	// runTx wraps a check-in/check-out read-compute-write cycle in a
	// transaction so writes to one record key never interleave.
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepository attendance.AttendanceRepository,
	eventQueue queue.Queue,
	m *metrics.Metrics,
	cutoffSeconds int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		queue:                eventQueue,
		metrics:              m,
		cutoff:               cutoffSeconds,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Parse before touching the record so a malformed time leaves it intact.
	var timeIn *int
	if req.TimeIn != "" {
		secs, err := timeofday.Parse(req.TimeIn)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		timeIn = &secs
	}

	var updated attendance.Attendance
	err := s.runTx(ctx, func(txCtx context.Context) error {
		rec, err := s.AttendanceRepository.GetByIDForUpdate(txCtx, req.RecordID)
		if err != nil {
			return err
		}

		rec.TimeIn = timeIn
		rec.Status = attendance.Classify(timeIn, s.cutoff)
		rec.WorkedHours = attendance.DeriveWorkedHours(timeIn, rec.TimeOut)

		if err := s.AttendanceRepository.SetCheckIn(txCtx, rec); err != nil {
			return fmt.Errorf("failed to save check-in: %w", err)
		}

		updated = rec
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.metrics.CheckInsTotal.WithLabelValues(string(updated.Status)).Inc()

	resp := attendance.ToResponse(updated)
	s.publishEvent("attendance.checked_in", resp)
	return resp, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if req.TimeOut == "" {
		return attendance.AttendanceResponse{}, attendance.ErrMissingField
	}

	timeOut, err := timeofday.Parse(req.TimeOut)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var updated attendance.Attendance
	err = s.runTx(ctx, func(txCtx context.Context) error {
		rec, err := s.AttendanceRepository.GetByIDForUpdate(txCtx, req.RecordID)
		if err != nil {
			return err
		}

		rec.TimeOut = &timeOut

		// Hours come from the stored check-in; the caller's hint only fills
		// in when there is no check-in to derive from.
		switch {
		case rec.TimeIn != nil:
			h := attendance.WorkedHours(*rec.TimeIn, timeOut)
			rec.WorkedHours = &h
		case req.WorkingHours != nil:
			h := attendance.RoundHours(*req.WorkingHours)
			rec.WorkedHours = &h
		default:
			return attendance.ErrMissingField
		}

		if err := s.AttendanceRepository.SetCheckOut(txCtx, rec); err != nil {
			return fmt.Errorf("failed to save check-out: %w", err)
		}

		updated = rec
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.metrics.CheckOutsTotal.Inc()

	resp := attendance.ToResponse(updated)
	s.publishEvent("attendance.checked_out", resp)
	return resp, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}

// publishEvent hands the event to the kiosk side channel. Delivery is fire
// and forget; a publish failure is logged and never surfaces to the caller.
func (s *AttendanceServiceImpl) publishEvent(eventType string, payload attendance.AttendanceResponse) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal attendance event", "type", eventType, "error", err)
		return
	}

	s.metrics.EventsPublished.WithLabelValues(eventType).Inc()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := s.queue.Publish(ctx, queue.Message{Type: eventType, Body: body}); err != nil {
			slog.Error("Failed to publish attendance event", "type", eventType, "error", err)
		}
	}()
}
