package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfDomain is returned when a value cannot be converted into one of the
// calendar enumerations
var ErrOutOfDomain = errors.New("value out of domain")

// Weekday represents a day of the week. Sunday is 0, Saturday is 6.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// Valid reports whether w is one of the seven weekdays
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

// Number returns the integer literal of the weekday (0 = Sunday)
func (w Weekday) Number() int {
	return int(w)
}

// String returns the English name of the weekday
func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// Short returns the two-letter upper-case abbreviation used in sheet headers
func (w Weekday) Short() string {
	return strings.ToUpper(w.String()[:2])
}

// IsWeekend returns true for Saturday and Sunday
func (w Weekday) IsWeekend() bool {
	return w == Saturday || w == Sunday
}

// WeekdayFromNumber converts an integer literal (0 = Sunday ... 6 = Saturday)
func WeekdayFromNumber(n int) (Weekday, error) {
	w := Weekday(n)
	if !w.Valid() {
		return 0, fmt.Errorf("%w: weekday number %d", ErrOutOfDomain, n)
	}
	return w, nil
}

// ParseWeekday converts a weekday name, ignoring case and surrounding spaces
func ParseWeekday(name string) (Weekday, error) {
	s := strings.TrimSpace(name)
	for i, n := range weekdayNames {
		if strings.EqualFold(n, s) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: weekday name %q", ErrOutOfDomain, name)
}

// Weekdays returns all weekdays, Sunday first
func Weekdays() []Weekday {
	return []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// IsLeapYear returns true if year is a Gregorian leap year: divisible by 4,
// except century years, unless they are divisible by 400.
func IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}

// WeekdayOf calculates the weekday of a date with the abridged Zeller
// congruence. month is 1-12. The day is not validated against the month
// length; out-of-range input yields a defined but meaningless weekday.
func WeekdayOf(day, month, year int) Weekday {
	// March = 1 ... February = 12 of the previous year
	month -= 2
	if month < 1 {
		month += 12
		year--
	}

	c := year / 100
	year %= 100

	return Weekday(((26*month-1)/10 + day + year + year/4 + c/4 + 5*c) % 7)
}

// WeekdayOfFirstOfMonth returns the weekday the 1st of month falls on
func WeekdayOfFirstOfMonth(month Month, year int) Weekday {
	return WeekdayOf(1, month.Number(), year)
}
