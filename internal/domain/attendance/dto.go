package attendance

import (
	"github.com/kennarhq/attendance-backend-go/internal/pkg/timeofday"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/validator"
)

// CheckInRequest updates the check-in side of an existing record. TimeIn is
// textual HH:MM or HH:MM:SS; an empty string clears the check-in, which
// re-derives the status to Absent.
type CheckInRequest struct {
	RecordID string `json:"-"`
	TimeIn   string `json:"time_in"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "attendance id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CheckOutRequest closes a record for the day. WorkingHours is the caller's
// hint, used only when the record carries no check-in to derive from.
type CheckOutRequest struct {
	RecordID     string   `json:"-"`
	TimeOut      string   `json:"time_out"`
	WorkingHours *float64 `json:"working_hours"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "attendance id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceResponse is the wire shape of one record; times are canonical
// HH:MM:SS strings.
type AttendanceResponse struct {
	AttendanceID string   `json:"attendance_id"`
	EmployeeID   string   `json:"employee_id"`
	FullName     string   `json:"fullname"`
	Date         string   `json:"date"`
	Temperature  *float64 `json:"temperature,omitempty"`
	TimeIn       *string  `json:"time_in"`
	TimeOut      *string  `json:"time_out"`
	Status       Status   `json:"status"`
	WorkedHours  *float64 `json:"working_hours"`
}

// ToResponse maps an entity to its wire shape.
func ToResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID: att.ID,
		EmployeeID:   att.EmployeeID,
		FullName:     att.FullName,
		Date:         att.Date.Format("2006-01-02"),
		Temperature:  att.Temperature,
		TimeIn:       timeofday.FormatPtr(att.TimeIn),
		TimeOut:      timeofday.FormatPtr(att.TimeOut),
		Status:       att.Status,
		WorkedHours:  att.WorkedHours,
	}
}
