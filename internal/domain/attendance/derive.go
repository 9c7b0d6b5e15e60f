package attendance

import (
	"math"
)

// DefaultCutoffSeconds is the latest on-time check-in, 08:15:00, as seconds
// since midnight.
const DefaultCutoffSeconds = 8*3600 + 15*60

// Classify derives the status from a check-in time. Checking in exactly at
// the cutoff is still Present; no check-in at all is Absent.
func Classify(timeIn *int, cutoff int) Status {
	if timeIn == nil {
		return StatusAbsent
	}
	if *timeIn > cutoff {
		return StatusLate
	}
	return StatusPresent
}

// WorkedHours computes the span between check-in and check-out in hours,
// rounded half away from zero to two decimals. A check-out at or before the
// check-in clamps to zero.
func WorkedHours(in, out int) float64 {
	diff := out - in
	if diff < 0 {
		diff = 0
	}
	// diff/36 is hundredths of an hour, so one Round gives half-up at the
	// second decimal.
	return math.Round(float64(diff)/36.0) / 100.0
}

// DeriveWorkedHours is the nil-safe variant used when re-deriving a record;
// hours exist only when both endpoints do.
func DeriveWorkedHours(in, out *int) *float64 {
	if in == nil || out == nil {
		return nil
	}
	h := WorkedHours(*in, *out)
	return &h
}

// RoundHours rounds an hour total to two decimals, half away from zero.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
