// Package timeofday converts between textual clock times and their canonical
// seconds-since-midnight representation. All values are naive local times in
// the facility timezone; no DST or offset math happens here.
package timeofday

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFormat is returned when the input does not parse as HH:MM or
// HH:MM:SS with integer components.
var ErrInvalidFormat = errors.New("invalid time format (HH:MM or HH:MM:SS)")

// facilityZone is the fixed offset used when a caller supplies no explicit
// date. The kiosks run in a single facility at UTC+8; keeping this constant
// makes date boundaries reproducible regardless of server locale.
var facilityZone = time.FixedZone("UTC+8", 8*3600)

// Normalize appends ":00" seconds to HH:MM input so that both accepted forms
// share one canonical shape. Input that already carries seconds is returned
// unchanged; anything else is passed through for Parse to reject.
func Normalize(s string) string {
	if strings.Count(s, ":") == 1 {
		return s + ":00"
	}
	return s
}

// Parse converts HH:MM or HH:MM:SS into seconds since midnight.
func Parse(s string) (int, error) {
	parts := strings.Split(Normalize(s), ":")
	if len(parts) != 3 {
		return 0, ErrInvalidFormat
	}

	vals := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, ErrInvalidFormat
		}
		vals[i] = n
	}

	return vals[0]*3600 + vals[1]*60 + vals[2], nil
}

// Format renders seconds since midnight as canonical HH:MM:SS.
func Format(secs int) string {
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// FormatPtr is a nil-safe Format for optional fields.
func FormatPtr(secs *int) *string {
	if secs == nil {
		return nil
	}
	s := Format(*secs)
	return &s
}

// Today returns the current calendar date in the facility timezone,
// truncated to midnight UTC for use as a date key.
func Today() time.Time {
	return DateOf(time.Now())
}

// DateOf maps an instant onto its facility-local calendar date.
func DateOf(t time.Time) time.Time {
	local := t.In(facilityZone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
