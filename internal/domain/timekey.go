package domain

import (
	"strings"
	"time"

	"github.com/m04kA/VetEstetica-BookingService/pkg/types"
)

// Start keys are naive local wall-clock values without a timezone.
// They are parsed in time.Local so comparisons against time.Now() line up.

const startKeyWithSecondsFormat = "2006-01-02T15:04:05"

// ParseStartKey parses "YYYY-MM-DDTHH:MM" (seconds tolerated).
// Returns false for anything else.
func ParseStartKey(key string) (time.Time, bool) {
	key = strings.TrimSpace(key)
	if t, err := time.ParseInLocation(StartKeyFormat, key, time.Local); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(startKeyWithSecondsFormat, key, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatStartKey renders an instant as "YYYY-MM-DDTHH:MM" in local time
func FormatStartKey(t time.Time) string {
	return t.In(time.Local).Format(StartKeyFormat)
}

// ParseDateKey parses "YYYY-MM-DD" as local midnight
func ParseDateKey(key string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateFormat, strings.TrimSpace(key), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsDateKey reports whether s is a well-formed "YYYY-MM-DD"
func IsDateKey(s string) bool {
	_, ok := ParseDateKey(s)
	return ok
}

// DateKey renders the local calendar date of t
func DateKey(t time.Time) string {
	return t.In(time.Local).Format(DateFormat)
}

// ParseDateTime combines a date key and an "HH:MM" time key into a local instant
func ParseDateTime(dateKey, timeKey string) (time.Time, bool) {
	day, ok := ParseDateKey(dateKey)
	if !ok {
		return time.Time{}, false
	}
	ts, err := types.NewTimeStringFromString(timeKey)
	if err != nil {
		return time.Time{}, false
	}
	return AtMinute(day, ts.Minutes()), true
}

// AtMinute returns the instant minute minutes after local midnight of day's date
func AtMinute(day time.Time, minute int) time.Time {
	y, m, d := day.In(time.Local).Date()
	return time.Date(y, m, d, 0, minute, 0, 0, time.Local)
}

// MinuteOfDay returns minutes since local midnight
func MinuteOfDay(t time.Time) int {
	t = t.In(time.Local)
	return t.Hour()*60 + t.Minute()
}

// FormatNice renders "DD/MM/YYYY HH:MM" for messages
func FormatNice(t time.Time) string {
	return t.In(time.Local).Format(DisplayFormat)
}
