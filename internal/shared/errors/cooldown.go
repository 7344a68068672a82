package errors

import (
	"fmt"
	"regexp"
	"time"
)

// CooldownMarkerPrefix is the machine-parsable marker embedded in cooldown
// error messages so clients can extract the resume time without a second
// round-trip.
const CooldownMarkerPrefix = "cooldown_until:"

var cooldownMarkerRe = regexp.MustCompile(`cooldown_until:([0-9TZ:.+-]+)`)

// NewCooldownActiveError creates a failed-precondition error carrying the
// instant at which the unit may submit again. The timestamp is embedded in
// the message as "cooldown_until:<RFC3339>".
func NewCooldownActiveError(until time.Time) *AppError {
	return NewFailedPreconditionError(
		fmt.Sprintf("%s%s", CooldownMarkerPrefix, until.UTC().Format(time.RFC3339)),
		"unit is in a submission cooldown period",
	)
}

// CooldownUntil extracts the cooldown resume time from an error message
// produced by NewCooldownActiveError. The second return value reports whether
// a marker was found and parsed.
func CooldownUntil(err error) (time.Time, bool) {
	if err == nil {
		return time.Time{}, false
	}
	m := cooldownMarkerRe.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return time.Time{}, false
	}
	t, perr := time.Parse(time.RFC3339, m[1])
	if perr != nil {
		return time.Time{}, false
	}
	return t, true
}
