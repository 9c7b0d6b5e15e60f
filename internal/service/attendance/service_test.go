package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/metrics"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/queue"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/validator"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	byID map[string]attendance.Attendance
}

func newFakeAttendanceRepo(records ...attendance.Attendance) *fakeAttendanceRepo {
	f := &fakeAttendanceRepo{byID: make(map[string]attendance.Attendance)}
	for _, rec := range records {
		f.byID[rec.ID] = rec
	}
	return f
}

func (f *fakeAttendanceRepo) GetByIDForUpdate(ctx context.Context, id string) (attendance.Attendance, error) {
	rec, ok := f.byID[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) SetCheckIn(ctx context.Context, att attendance.Attendance) error {
	if _, ok := f.byID[att.ID]; !ok {
		return attendance.ErrRecordNotFound
	}
	f.byID[att.ID] = att
	return nil
}

func (f *fakeAttendanceRepo) SetCheckOut(ctx context.Context, att attendance.Attendance) error {
	if _, ok := f.byID[att.ID]; !ok {
		return attendance.ErrRecordNotFound
	}
	f.byID[att.ID] = att
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context) ([]attendance.Attendance, error) {
	records := make([]attendance.Attendance, 0, len(f.byID))
	for _, rec := range f.byID {
		records = append(records, rec)
	}
	return records, nil
}

// newService wires the service against the fake repo with the transaction
// runner replaced by a pass-through.
func newService(repo *fakeAttendanceRepo, q queue.Queue) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		queue:                q,
		metrics:              metrics.New(),
		cutoff:               attendance.DefaultCutoffSeconds,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func baseRecord(id string) attendance.Attendance {
	return attendance.Attendance{
		ID:         id,
		EmployeeID: "E1",
		FullName:   "Ann",
		Date:       time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusAbsent,
	}
}

func TestCheckInDerivesStatus(t *testing.T) {
	repo := newFakeAttendanceRepo(baseRecord("rec-1"))
	svc := newService(repo, queue.NewInMemory(8))

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{RecordID: "rec-1", TimeIn: "08:15"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)

	resp, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{RecordID: "rec-1", TimeIn: "08:16"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
	require.NotNil(t, resp.TimeIn)
	assert.Equal(t, "08:16:00", *resp.TimeIn)
	assert.Nil(t, resp.WorkedHours, "no hours without a check-out")
}

func TestCheckInIsIdempotent(t *testing.T) {
	repo := newFakeAttendanceRepo(baseRecord("rec-1"))
	svc := newService(repo, queue.NewInMemory(8))

	first, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{RecordID: "rec-1", TimeIn: "09:00"})
	require.NoError(t, err)
	second, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{RecordID: "rec-1", TimeIn: "09:00"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	stored := repo.byID["rec-1"]
	assert.Equal(t, attendance.StatusLate, stored.Status)
}

func TestCheckInEmptyTimeClearsToAbsent(t *testing.T) {
	timeIn := 29700
	rec := baseRecord("rec-1")
	rec.TimeIn = &timeIn
	rec.Status = attendance.StatusPresent

	repo := newFakeAttendanceRepo(rec)
	svc := newService(repo, queue.NewInMemory(8))

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{RecordID: "rec-1", TimeIn: ""})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, resp.Status)
	assert.Nil(t, resp.TimeIn)
	assert.Nil(t, resp.WorkedHours)
}

func TestCheckInRecomputesHoursWhenCheckedOut(t *testing.T) {
	timeOut := 17*3600 + 30*60
	rec := baseRecord("rec-1")
	rec.TimeOut = &timeOut

	repo := newFakeAttendanceRepo(rec)
	svc := newService(repo, queue.NewInMemory(8))

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{RecordID: "rec-1", TimeIn: "08:00:00"})
	require.NoError(t, err)
	require.NotNil(t, resp.WorkedHours)
	assert.InDelta(t, 9.5, *resp.WorkedHours, 1e-9)
}

func TestCheckInUnknownRecord(t *testing.T) {
	svc := newService(newFakeAttendanceRepo(), queue.NewInMemory(8))

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{RecordID: "ghost", TimeIn: "08:00"})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestCheckInRejectsMalformedTimeBeforeAnyWrite(t *testing.T) {
	rec := baseRecord("rec-1")
	repo := newFakeAttendanceRepo(rec)
	svc := newService(repo, queue.NewInMemory(8))

	for _, raw := range []string{"25:00:99:11", "abc", "8h15", "08:xx"} {
		_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{RecordID: "rec-1", TimeIn: raw})
		assert.ErrorIs(t, err, attendance.ErrInvalidTimeFormat, "input %q", raw)
	}

	assert.Equal(t, rec, repo.byID["rec-1"], "rejected input must not touch the record")
}

func TestCheckInRequiresRecordID(t *testing.T) {
	svc := newService(newFakeAttendanceRepo(), queue.NewInMemory(8))

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{TimeIn: "08:00"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "id", verrs[0].Field)
}

func TestCheckOutDerivesHoursFromStoredCheckIn(t *testing.T) {
	timeIn := 8 * 3600
	rec := baseRecord("rec-1")
	rec.TimeIn = &timeIn
	rec.Status = attendance.StatusPresent

	repo := newFakeAttendanceRepo(rec)
	svc := newService(repo, queue.NewInMemory(8))

	hint := 1.0
	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		RecordID:     "rec-1",
		TimeOut:      "17:30",
		WorkingHours: &hint,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.WorkedHours)
	assert.InDelta(t, 9.5, *resp.WorkedHours, 1e-9, "stored check-in wins over the caller's hint")
}

func TestCheckOutFallsBackToHint(t *testing.T) {
	repo := newFakeAttendanceRepo(baseRecord("rec-1"))
	svc := newService(repo, queue.NewInMemory(8))

	hint := 7.125
	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		RecordID:     "rec-1",
		TimeOut:      "17:00",
		WorkingHours: &hint,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.WorkedHours)
	assert.InDelta(t, 7.13, *resp.WorkedHours, 1e-9, "hint is rounded to two decimals")
}

func TestCheckOutWithoutCheckInOrHint(t *testing.T) {
	repo := newFakeAttendanceRepo(baseRecord("rec-1"))
	svc := newService(repo, queue.NewInMemory(8))

	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{RecordID: "rec-1", TimeOut: "17:00"})
	assert.ErrorIs(t, err, attendance.ErrMissingField)
}

func TestCheckOutRequiresTime(t *testing.T) {
	svc := newService(newFakeAttendanceRepo(), queue.NewInMemory(8))

	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{RecordID: "rec-1"})
	assert.ErrorIs(t, err, attendance.ErrMissingField)
}

func TestCheckInPublishesEvent(t *testing.T) {
	repo := newFakeAttendanceRepo(baseRecord("rec-1"))
	q := queue.NewInMemory(8)
	svc := newService(repo, q)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{RecordID: "rec-1", TimeIn: "08:00"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	out, err := q.Consume(ctx)
	require.NoError(t, err)

	select {
	case msg := <-out:
		assert.Equal(t, "attendance.checked_in", msg.Type)
		assert.Contains(t, string(msg.Body), `"employee_id":"E1"`)
	case <-ctx.Done():
		t.Fatal("timed out waiting for published event")
	}
}

func TestListMapsToWireShape(t *testing.T) {
	in := 29700
	out := 63900
	hours := 9.5
	repo := newFakeAttendanceRepo(
		attendance.Attendance{
			ID:          "rec-1",
			EmployeeID:  "E1",
			FullName:    "Ann",
			Status:      attendance.StatusPresent,
			TimeIn:      &in,
			TimeOut:     &out,
			WorkedHours: &hours,
		},
	)
	svc := newService(repo, queue.NewInMemory(8))

	responses, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, responses, 1)

	assert.Equal(t, "rec-1", responses[0].AttendanceID)
	require.NotNil(t, responses[0].TimeIn)
	assert.Equal(t, "08:15:00", *responses[0].TimeIn)
	require.NotNil(t, responses[0].TimeOut)
	assert.Equal(t, "17:45:00", *responses[0].TimeOut)
}
