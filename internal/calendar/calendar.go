package calendar

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const (
	// DefaultMinYear is the first full year of the Gregorian calendar range
	DefaultMinYear = 1582
	// DefaultMaxYear is the last supported year
	DefaultMaxYear = 3000
)

// ErrYearOutOfRange is returned when a year lies outside the configured bounds
var ErrYearOutOfRange = errors.New("year out of range")

// DayInfo represents information about a specific day
type DayInfo struct {
	Year      int
	Month     Month
	Day       int
	Weekday   Weekday
	IsWeekend bool
	IsHoliday bool
	Holidays  []Holiday
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year         int
	Month        Month
	FirstWeekday Weekday
	DaysInMonth  int
	Holidays     []Occurrence
	Days         []DayInfo
}

// Calendar interface for month sheets and holiday lookups
type Calendar interface {
	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year int, month Month) (*MonthInfo, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(year int, month Month, day int) (*DayInfo, error)

	// GetYearHolidays returns every holiday of the year with its date
	GetYearHolidays(year int) ([]Occurrence, error)
}

// LowerSaxony implements Calendar with the holidays observed in Lower Saxony
type LowerSaxony struct {
	minYear int
	maxYear int
	logger  *zap.Logger
}

// NewLowerSaxony creates a calendar accepting years in [minYear, maxYear].
// Zero bounds fall back to the defaults.
func NewLowerSaxony(minYear, maxYear int, logger *zap.Logger) *LowerSaxony {
	if minYear == 0 {
		minYear = DefaultMinYear
	}
	if maxYear == 0 {
		maxYear = DefaultMaxYear
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LowerSaxony{
		minYear: minYear,
		maxYear: maxYear,
		logger:  logger,
	}
}

// Bounds returns the accepted year range
func (c *LowerSaxony) Bounds() (minYear, maxYear int) {
	return c.minYear, c.maxYear
}

// CheckYear returns ErrYearOutOfRange if year is outside the bounds
func (c *LowerSaxony) CheckYear(year int) error {
	if year < c.minYear || year > c.maxYear {
		return fmt.Errorf("%w: %d is not within %d-%d", ErrYearOutOfRange, year, c.minYear, c.maxYear)
	}
	return nil
}

// GetMonthInfo returns calendar info for the entire month
func (c *LowerSaxony) GetMonthInfo(year int, month Month) (*MonthInfo, error) {
	if err := c.validate(year, month); err != nil {
		return nil, err
	}

	days := DaysInMonth(month, year)
	first := WeekdayOfFirstOfMonth(month, year)

	monthInfo := &MonthInfo{
		Year:         year,
		Month:        month,
		FirstWeekday: first,
		DaysInMonth:  days,
		Days:         make([]DayInfo, 0, days),
	}

	byDay := make(map[int][]Holiday)
	for _, h := range HolidaysInMonth(month, year) {
		date, _ := DateOf(h, year)
		monthInfo.Holidays = append(monthInfo.Holidays, Occurrence{Holiday: h, Date: date})
		byDay[date.Day] = append(byDay[date.Day], h)
	}

	for day := 1; day <= days; day++ {
		weekday := Weekday((first.Number() + day - 1) % 7)
		monthInfo.Days = append(monthInfo.Days, DayInfo{
			Year:      year,
			Month:     month,
			Day:       day,
			Weekday:   weekday,
			IsWeekend: weekday.IsWeekend(),
			IsHoliday: len(byDay[day]) > 0,
			Holidays:  byDay[day],
		})
	}

	c.logger.Debug("Month info calculated",
		zap.Int("year", year),
		zap.Int("month", month.Number()),
		zap.String("first_weekday", first.String()),
		zap.Int("holidays", len(monthInfo.Holidays)))

	return monthInfo, nil
}

// GetDayInfo returns detailed info for a specific day
func (c *LowerSaxony) GetDayInfo(year int, month Month, day int) (*DayInfo, error) {
	if err := c.validate(year, month); err != nil {
		return nil, err
	}
	if day < 1 || day > DaysInMonth(month, year) {
		return nil, fmt.Errorf("%w: day %d of %s %d", ErrOutOfDomain, day, month, year)
	}

	weekday := WeekdayOf(day, month.Number(), year)
	dayInfo := &DayInfo{
		Year:      year,
		Month:     month,
		Day:       day,
		Weekday:   weekday,
		IsWeekend: weekday.IsWeekend(),
	}

	for _, h := range HolidaysInMonth(month, year) {
		if date, _ := DateOf(h, year); date.Day == day {
			dayInfo.Holidays = append(dayInfo.Holidays, h)
		}
	}
	dayInfo.IsHoliday = len(dayInfo.Holidays) > 0

	return dayInfo, nil
}

// GetYearHolidays returns every holiday of the year with its date
func (c *LowerSaxony) GetYearHolidays(year int) ([]Occurrence, error) {
	if err := c.CheckYear(year); err != nil {
		return nil, err
	}

	occurrences := HolidaysInYear(year)

	c.logger.Debug("Year holidays calculated",
		zap.Int("year", year),
		zap.Int("holidays", len(occurrences)))

	return occurrences, nil
}

func (c *LowerSaxony) validate(year int, month Month) error {
	if !month.Valid() {
		return fmt.Errorf("%w: month number %d", ErrOutOfDomain, month.Number())
	}
	return c.CheckYear(year)
}
