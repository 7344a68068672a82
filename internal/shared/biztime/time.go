// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone is only used for
// deriving date keys and day boundaries (a visitor "arrives on a date" in
// complex-local time, not in UTC).
//
// Design principles:
// - All time storage is in UTC
// - Date keys and day boundaries are computed in the business timezone
// - Implicit Local timezone is prohibited
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Kuala_Lumpur"

	// DateKeyLayout is the canonical date-only key format.
	DateKeyLayout = "2006-01-02"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Kuala_Lumpur.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, auto-initializing with the
// default timezone when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DateKey returns the YYYY-MM-DD key of t in the business timezone.
func DateKey(t time.Time) string {
	return t.In(Location()).Format(DateKeyLayout)
}

// DateOnly truncates t to midnight of its business-timezone day.
func DateOnly(t time.Time) time.Time {
	lt := t.In(Location())
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, Location())
}

// ParseDateKey parses a YYYY-MM-DD key into midnight of that day in the
// business timezone.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// DaysInclusive returns the inclusive day count between start and end,
// date-only semantics. Returns 0 when end precedes start.
func DaysInclusive(start, end time.Time) int {
	s := DateOnly(start)
	e := DateOnly(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
