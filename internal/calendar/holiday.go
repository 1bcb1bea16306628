package calendar

import (
	"fmt"
)

// Holiday represents one of the public and religious holidays observed in
// Lower Saxony. The declaration order is the order holidays are listed in.
type Holiday int

const (
	NewYear Holiday = iota
	GoodFriday
	EasterSunday
	EasterMonday
	LabourDay
	AscensionDay
	WhitSunday
	WhitMonday
	GermanUnityDay
	ReformationDay
	ChristmasEve
	ChristmasDay
	SecondChristmasDay
)

var holidayNames = [13]string{
	"New Year",
	"Good Friday",
	"Easter Sunday",
	"Easter Monday",
	"Labour Day",
	"Ascension Day",
	"Whit Sunday",
	"Whit Monday",
	"German Unity Day",
	"Reformation Day",
	"Christmas Eve",
	"1st Christmas Day",
	"2nd Christmas Day",
}

// easterOffsets holds the distance in days from Easter Sunday for movable feasts
var easterOffsets = map[Holiday]int{
	GoodFriday:   -2,
	EasterSunday: 0,
	EasterMonday: 1,
	AscensionDay: 39,
	WhitSunday:   49,
	WhitMonday:   50,
}

// fixedDates holds the position of immovable holidays
var fixedDates = map[Holiday]Date{
	NewYear:            {Month: January, Day: 1},
	LabourDay:          {Month: May, Day: 1},
	GermanUnityDay:     {Month: October, Day: 3},
	ReformationDay:     {Month: October, Day: 31},
	ChristmasEve:       {Month: December, Day: 24},
	ChristmasDay:       {Month: December, Day: 25},
	SecondChristmasDay: {Month: December, Day: 26},
}

// Date is a day within a year
type Date struct {
	Month Month `json:"month" yaml:"month"`
	Day   int   `json:"day" yaml:"day"`
}

// String formats the date as "<day> <Month>"
func (d Date) String() string {
	return fmt.Sprintf("%d %s", d.Day, d.Month)
}

// Occurrence is a holiday together with the date it falls on in a year
type Occurrence struct {
	Holiday Holiday
	Date    Date
}

// Holidays returns all holidays in declaration order
func Holidays() []Holiday {
	holidays := make([]Holiday, 0, len(holidayNames))
	for h := NewYear; h <= SecondChristmasDay; h++ {
		holidays = append(holidays, h)
	}
	return holidays
}

// Valid reports whether h is one of the thirteen holidays
func (h Holiday) Valid() bool {
	return h >= NewYear && h <= SecondChristmasDay
}

// String returns the display name of the holiday
func (h Holiday) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Holiday(%d)", int(h))
	}
	return holidayNames[h]
}

// IsMovable returns true if the holiday date depends on Easter
func (h Holiday) IsMovable() bool {
	_, ok := easterOffsets[h]
	return ok
}

// DateIn is the method form of DateOf
func (h Holiday) DateIn(year int) (Date, bool) {
	return DateOf(h, year)
}

// occursIn applies the legislative gates of Labour Day and German Unity Day
func (h Holiday) occursIn(year int) bool {
	switch h {
	case LabourDay:
		return year == 1919 || year > 1933
	case GermanUnityDay:
		return year > 1990
	default:
		return h.Valid()
	}
}

// EasterOffset calculates Easter Sunday with the Gauss algorithm, extended
// by Kinkelin and Zeller. The result is the 1-based day offset from March 1st
// and is meant to be passed to Rollover(March, year, offset).
func EasterOffset(year int) int {
	k := year / 100
	m := 15 + (3*k+3)/4 - (8*k+13)/25
	s := 2 - (3*k+3)/4
	a := year % 19
	d := (19*a + m) % 30
	r := (d + a/11) / 29
	og := 21 + d - r            // paschal full moon, counted from March 1st
	sz := 7 - (year+year/4+s)%7 // first Sunday in March
	oe := 7 - (og-sz)%7         // distance to the following Sunday
	return og + oe
}

// EasterDate returns the month and day of Easter Sunday
func EasterDate(year int) Date {
	day, month := Rollover(March, year, EasterOffset(year))
	return Date{Month: month, Day: day}
}

// DateOf returns the date a holiday falls on in year. The second result is
// false when the holiday is not observed in that year (Labour Day before
// 1934 except 1919, German Unity Day before 1991) or h is not a holiday.
func DateOf(h Holiday, year int) (Date, bool) {
	if !h.occursIn(year) {
		return Date{}, false
	}

	if offset, ok := easterOffsets[h]; ok {
		easter := EasterDate(year)
		if offset == 0 {
			return easter, true
		}
		day, month := Rollover(easter.Month, year, easter.Day+offset)
		return Date{Month: month, Day: day}, true
	}

	return fixedDates[h], true
}

// HolidaysInMonth returns the holidays observed in month of year, in
// declaration order
func HolidaysInMonth(month Month, year int) []Holiday {
	var holidays []Holiday
	for _, h := range Holidays() {
		if date, ok := DateOf(h, year); ok && date.Month == month {
			holidays = append(holidays, h)
		}
	}
	return holidays
}

// HolidaysInYear returns every holiday observed in year with its date, in
// declaration order
func HolidaysInYear(year int) []Occurrence {
	occurrences := make([]Occurrence, 0, len(holidayNames))
	for _, h := range Holidays() {
		if date, ok := DateOf(h, year); ok {
			occurrences = append(occurrences, Occurrence{Holiday: h, Date: date})
		}
	}
	return occurrences
}
