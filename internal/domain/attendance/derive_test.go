package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func secs(hh, mm, ss int) int {
	return hh*3600 + mm*60 + ss
}

func TestClassifyAbsentWhenNoCheckIn(t *testing.T) {
	for _, cutoff := range []int{0, DefaultCutoffSeconds, secs(23, 59, 59)} {
		assert.Equal(t, StatusAbsent, Classify(nil, cutoff))
	}
}

func TestClassifyCutoffBoundary(t *testing.T) {
	cutoff := DefaultCutoffSeconds

	onTime := cutoff
	assert.Equal(t, StatusPresent, Classify(&onTime, cutoff), "check-in at cutoff favors the employee")

	early := cutoff - 1
	assert.Equal(t, StatusPresent, Classify(&early, cutoff))

	late := cutoff + 1
	assert.Equal(t, StatusLate, Classify(&late, cutoff))
}

func TestClassifyScenario(t *testing.T) {
	// Cutoff 08:15:00: 08:15 is Present, 08:16 is Late.
	in1 := secs(8, 15, 0)
	in2 := secs(8, 16, 0)
	assert.Equal(t, StatusPresent, Classify(&in1, DefaultCutoffSeconds))
	assert.Equal(t, StatusLate, Classify(&in2, DefaultCutoffSeconds))
}

func TestWorkedHours(t *testing.T) {
	cases := []struct {
		name    string
		timeIn  int
		timeOut int
		want    float64
	}{
		{"full day", secs(8, 0, 0), secs(17, 30, 0), 9.5},
		{"zero", secs(8, 0, 0), secs(8, 0, 0), 0},
		{"one minute", secs(8, 0, 0), secs(8, 1, 0), 0.02},
		{"checkout before checkin clamps", secs(17, 0, 0), secs(8, 0, 0), 0},
		{"quarter hour", secs(9, 0, 0), secs(9, 15, 0), 0.25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, WorkedHours(c.timeIn, c.timeOut), 1e-9)
		})
	}
}

func TestWorkedHoursRoundsHalfUp(t *testing.T) {
	// 63s = 0.0175h: the hundredths digit sits exactly on the boundary and
	// must round up, pinning the half-up policy.
	assert.InDelta(t, 0.02, WorkedHours(0, 63), 1e-9)
	// 54s = 0.015h.
	assert.InDelta(t, 0.02, WorkedHours(0, 54), 1e-9)
}

func TestWorkedHoursMonotonicNonNegative(t *testing.T) {
	timeIn := secs(8, 30, 0)
	prev := -1.0
	for out := 0; out <= 24*3600; out += 97 {
		h := WorkedHours(timeIn, out)
		assert.GreaterOrEqual(t, h, 0.0)
		assert.GreaterOrEqual(t, h, prev, "worked hours must not decrease as check-out grows (out=%d)", out)
		prev = h
	}
}

func TestDeriveWorkedHours(t *testing.T) {
	in := secs(8, 0, 0)
	out := secs(17, 30, 0)

	assert.Nil(t, DeriveWorkedHours(nil, &out))
	assert.Nil(t, DeriveWorkedHours(&in, nil))
	assert.Nil(t, DeriveWorkedHours(nil, nil))

	got := DeriveWorkedHours(&in, &out)
	require.NotNil(t, got)
	assert.InDelta(t, 9.5, *got, 1e-9)
}
