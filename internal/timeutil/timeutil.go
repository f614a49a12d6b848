package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// clockPattern accepts "H:MM" and "HH:MM" with hours 0-23 and minutes 00-59.
var clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

func IsValidClock(hm string) bool {
	return clockPattern.MatchString(hm)
}

// MinuteOffset converts "HH:MM" into minutes since midnight.
func MinuteOffset(hm string) (int, error) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", hm)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", hm)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", hm)
	}

	return hours*60 + minutes, nil
}

// MergeDateTime combines a calendar date with an "HH:MM" clock value into a
// single instant, with seconds and sub-seconds zeroed. Both the booking path
// and the availability read path derive appointment instants through here.
func MergeDateTime(date time.Time, hm string) (time.Time, error) {
	offset, err := MinuteOffset(hm)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		offset/60, offset%60, 0, 0,
		date.Location(),
	), nil
}

// StartOfDay truncates an instant to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate parses a "YYYY-MM-DD" calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
