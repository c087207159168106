package utils

import (
	"fmt"
	"time"
)

// ParseClock converts an "HH:MM" time-of-day string into minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidDate reports whether s is a calendar date in "YYYY-MM-DD" form.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
