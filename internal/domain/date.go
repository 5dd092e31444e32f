package domain

import (
	"time"
)

// DateLayout is the calendar date wire format used on every boundary.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.Time.
// Anything else fails with an INVALID_DATE_FORMAT error.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, NewInvalidDateFormatError(s)
	}
	return t.UTC(), nil
}

// FormatDate renders a date in the YYYY-MM-DD wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
