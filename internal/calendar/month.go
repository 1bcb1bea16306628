package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// Month represents a calendar month, January = 1
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// February is resolved through IsLeapYear
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Valid reports whether m is one of the twelve months
func (m Month) Valid() bool {
	return m >= January && m <= December
}

// Number returns the integer literal of the month (1-12)
func (m Month) Number() int {
	return int(m)
}

// String returns the English name of the month
func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Days returns the number of days of the month in the given year
func (m Month) Days(year int) int {
	return DaysInMonth(m, year)
}

// Next returns the following month. December wraps to January; the year is
// not tracked.
func (m Month) Next() Month {
	if m >= December || m < January {
		return January
	}
	return m + 1
}

// Previous returns the preceding month. January wraps to December; the year
// is not tracked.
func (m Month) Previous() Month {
	if m <= January || m > December {
		return December
	}
	return m - 1
}

// MonthFromNumber converts an integer literal (1-12) into a Month
func MonthFromNumber(n int) (Month, error) {
	m := Month(n)
	if !m.Valid() {
		return 0, fmt.Errorf("%w: month number %d", ErrOutOfDomain, n)
	}
	return m, nil
}

// ParseMonth converts a month name, ignoring case and surrounding spaces
func ParseMonth(name string) (Month, error) {
	s := strings.TrimSpace(name)
	for i, n := range monthNames {
		if strings.EqualFold(n, s) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: month name %q", ErrOutOfDomain, name)
}

// LookupMonth accepts either a month number 1-12 or a month name
func LookupMonth(input string) (Month, error) {
	input = strings.TrimSpace(input)
	if n, err := strconv.Atoi(input); err == nil {
		return MonthFromNumber(n)
	}
	return ParseMonth(input)
}

// Months returns all months in calendar order
func Months() []Month {
	months := make([]Month, 0, len(monthNames))
	for m := January; m <= December; m++ {
		months = append(months, m)
	}
	return months
}

// NextMonth is the free-function form of Month.Next
func NextMonth(m Month) Month {
	return m.Next()
}

// PreviousMonth is the free-function form of Month.Previous
func PreviousMonth(m Month) Month {
	return m.Previous()
}

// DaysInMonth returns the number of days in month, respecting leap years.
// Invalid months have zero days.
func DaysInMonth(month Month, year int) int {
	if !month.Valid() {
		return 0
	}
	if month == February && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// Rollover resolves a day offset counted from the 1st of start (days == 1 is
// the 1st itself) into a day and month of the same year.
//
// Positive offsets are carried forward over as many months as needed. An
// offset <= 0 steps back exactly one month and is not looped, so only shifts
// that end inside the previous month are supported. Crossing December or
// January never changes the year; callers must keep offsets within one
// calendar year.
func Rollover(start Month, year, days int) (int, Month) {
	month := start

	if days <= 0 {
		month = month.Previous()
		return days + DaysInMonth(month, year), month
	}

	for days > DaysInMonth(month, year) {
		days -= DaysInMonth(month, year)
		month = month.Next()
	}
	return days, month
}
