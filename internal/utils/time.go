package utils

import (
	"fmt"
	"time"

	"vitalog/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// Today returns today's day string (YYYY-MM-DD) in the given location.
func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(constants.DateFormat)
}

// DayOf returns the calendar day (YYYY-MM-DD) an epoch-millisecond timestamp
// falls on in the given location.
func DayOf(millis int64, loc *time.Location) string {
	return time.UnixMilli(millis).In(loc).Format(constants.DateFormat)
}

// BelongsToDay reports whether an epoch-millisecond timestamp falls on the
// given calendar day (YYYY-MM-DD) in the given location. Days are local
// calendar dates, not 24-hour windows: an entry exactly at local midnight
// belongs to the new day.
func BelongsToDay(millis int64, day string, loc *time.Location) bool {
	return DayOf(millis, loc) == day
}

// ValidateDay checks that a day string matches the standard YYYY-MM-DD format.
func ValidateDay(day string) error {
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return fmt.Errorf("invalid day %q (expected YYYY-MM-DD): %w", day, err)
	}
	return nil
}

// ValidateClock checks that a clock string matches the standard HH:MM format.
func ValidateClock(clock string) error {
	if _, err := time.Parse(constants.TimeFormat, clock); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM): %w", clock, err)
	}
	return nil
}

// FormatMillis renders an epoch-millisecond timestamp for display.
func FormatMillis(millis int64, loc *time.Location) string {
	return time.UnixMilli(millis).In(loc).Format(constants.ClockFormat)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}
