package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ISODate is the layout used for dates in output and the HTTP API
const ISODate = "2006-01-02"

// ErrInvalidDate is returned when a string matches none of the accepted layouts
var ErrInvalidDate = errors.New("invalid date")

var layouts = []string{
	ISODate,
	"02.01.2006",
	"2.1.2006",
	time.RFC3339,
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}

// ParseDate parses ISO (2006-01-02) or German (02.01.2006) dates
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
}

// FormatDate formats date as 2006-01-02
func FormatDate(date time.Time) string {
	return date.Format(ISODate)
}
