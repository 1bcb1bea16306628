package calendar

import (
	"reflect"
	"testing"
	"time"

	"github.com/rickar/cal/v2/aa"
)

func TestEasterDate(t *testing.T) {
	tests := []struct {
		year       int
		wantOffset int
		want       Date
	}{
		{2000, 54, Date{Month: April, Day: 23}},
		{2018, 32, Date{Month: April, Day: 1}},
		{2024, 31, Date{Month: March, Day: 31}},
		{2025, 51, Date{Month: April, Day: 20}},
		{2038, 56, Date{Month: April, Day: 25}},
		{2285, 22, Date{Month: March, Day: 22}},
	}

	for _, tt := range tests {
		if got := EasterOffset(tt.year); got != tt.wantOffset {
			t.Errorf("EasterOffset(%d) = %d, want %d", tt.year, got, tt.wantOffset)
		}
		if got := EasterDate(tt.year); got != tt.want {
			t.Errorf("EasterDate(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestEasterDate_MarchOrApril(t *testing.T) {
	for year := DefaultMinYear; year <= DefaultMaxYear; year++ {
		day, month := Rollover(March, year, EasterOffset(year))
		if month != March && month != April {
			t.Fatalf("Easter %d falls on %d %v", year, day, month)
		}
		if WeekdayOf(day, month.Number(), year) != Sunday {
			t.Fatalf("Easter %d (%d %v) is not a Sunday", year, day, month)
		}
	}
}

func TestEasterDate_MatchesReference(t *testing.T) {
	for year := 1583; year <= DefaultMaxYear; year++ {
		actual, _ := aa.Easter.Calc(year)
		got := EasterDate(year)
		if got.Month.Number() != int(actual.Month()) || got.Day != actual.Day() {
			t.Fatalf("EasterDate(%d) = %v, reference %s", year, got, actual.Format("2006-01-02"))
		}
	}
}

// Movable feasts resolved with Rollover must agree with plain date arithmetic.
func TestDateOf_MovableFeasts(t *testing.T) {
	for year := DefaultMinYear; year <= DefaultMaxYear; year++ {
		easter := EasterDate(year)
		base := time.Date(year, time.Month(easter.Month), easter.Day, 0, 0, 0, 0, time.UTC)

		for h, offset := range easterOffsets {
			want := base.AddDate(0, 0, offset)
			got, ok := DateOf(h, year)
			if !ok {
				t.Fatalf("DateOf(%v, %d) not observed", h, year)
			}
			if got.Month.Number() != int(want.Month()) || got.Day != want.Day() {
				t.Fatalf("DateOf(%v, %d) = %v, want %s", h, year, got, want.Format("2 January"))
			}
		}
	}
}

func TestDateOf_2024(t *testing.T) {
	tests := []struct {
		holiday Holiday
		want    Date
	}{
		{NewYear, Date{January, 1}},
		{GoodFriday, Date{March, 29}},
		{EasterSunday, Date{March, 31}},
		{EasterMonday, Date{April, 1}},
		{LabourDay, Date{May, 1}},
		{AscensionDay, Date{May, 9}},
		{WhitSunday, Date{May, 19}},
		{WhitMonday, Date{May, 20}},
		{GermanUnityDay, Date{October, 3}},
		{ReformationDay, Date{October, 31}},
		{ChristmasEve, Date{December, 24}},
		{ChristmasDay, Date{December, 25}},
		{SecondChristmasDay, Date{December, 26}},
	}

	for _, tt := range tests {
		t.Run(tt.holiday.String(), func(t *testing.T) {
			got, ok := DateOf(tt.holiday, 2024)
			if !ok {
				t.Fatalf("DateOf(%v, 2024) not observed", tt.holiday)
			}
			if got != tt.want {
				t.Errorf("DateOf(%v, 2024) = %v, want %v", tt.holiday, got, tt.want)
			}
		})
	}
}

func TestDateOf_GatedHolidays(t *testing.T) {
	tests := []struct {
		name    string
		holiday Holiday
		year    int
		want    Date
		wantOK  bool
	}{
		{"Labour Day 1918", LabourDay, 1918, Date{}, false},
		{"Labour Day 1919", LabourDay, 1919, Date{May, 1}, true},
		{"Labour Day 1920", LabourDay, 1920, Date{}, false},
		{"Labour Day 1933", LabourDay, 1933, Date{}, false},
		{"Labour Day 1934", LabourDay, 1934, Date{May, 1}, true},
		{"German Unity Day 1990", GermanUnityDay, 1990, Date{}, false},
		{"German Unity Day 1991", GermanUnityDay, 1991, Date{October, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.holiday.DateIn(tt.year)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("DateOf(%v, %d) = %v, %v, want %v, %v", tt.holiday, tt.year, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDateOf_InvalidHoliday(t *testing.T) {
	if _, ok := DateOf(Holiday(13), 2024); ok {
		t.Error("DateOf(Holiday(13)) observed, want not observed")
	}
}

func TestHolidaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		year  int
		want  []Holiday
	}{
		{"December 2024", December, 2024, []Holiday{ChristmasEve, ChristmasDay, SecondChristmasDay}},
		{"March 2024", March, 2024, []Holiday{GoodFriday, EasterSunday}},
		{"April 2024", April, 2024, []Holiday{EasterMonday}},
		{"May 2024", May, 2024, []Holiday{LabourDay, AscensionDay, WhitSunday, WhitMonday}},
		{"October 1990", October, 1990, []Holiday{ReformationDay}},
		{"October 1991", October, 1991, []Holiday{GermanUnityDay, ReformationDay}},
		{"May 1920", May, 1920, []Holiday{AscensionDay, WhitSunday, WhitMonday}},
		{"June 2038", June, 2038, []Holiday{AscensionDay, WhitSunday, WhitMonday}},
		{"February 2024", February, 2024, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HolidaysInMonth(tt.month, tt.year)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("HolidaysInMonth(%v, %d) = %v, want %v", tt.month, tt.year, got, tt.want)
			}
		})
	}
}

func TestHolidaysInYear(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{1900, 11},
		{1919, 12},
		{1950, 12},
		{2024, 13},
	}

	for _, tt := range tests {
		got := HolidaysInYear(tt.year)
		if len(got) != tt.want {
			t.Errorf("HolidaysInYear(%d) returned %d holidays, want %d", tt.year, len(got), tt.want)
		}
		for i := 1; i < len(got); i++ {
			if got[i-1].Holiday >= got[i].Holiday {
				t.Errorf("HolidaysInYear(%d) not in declaration order: %v before %v", tt.year, got[i-1].Holiday, got[i].Holiday)
			}
		}
	}
}

func TestHoliday_String(t *testing.T) {
	tests := []struct {
		holiday Holiday
		want    string
	}{
		{NewYear, "New Year"},
		{GermanUnityDay, "German Unity Day"},
		{ChristmasDay, "1st Christmas Day"},
		{SecondChristmasDay, "2nd Christmas Day"},
		{Holiday(42), "Holiday(42)"},
	}

	for _, tt := range tests {
		if got := tt.holiday.String(); got != tt.want {
			t.Errorf("Holiday(%d).String() = %q, want %q", int(tt.holiday), got, tt.want)
		}
	}

	if len(Holidays()) != 13 {
		t.Errorf("Holidays() returned %d values, want 13", len(Holidays()))
	}
	if !WhitMonday.IsMovable() || ReformationDay.IsMovable() {
		t.Error("IsMovable() mismatch for Whit Monday / Reformation Day")
	}
}
