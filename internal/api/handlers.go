package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/sheet"
	"github.com/username/holiday-calendar/pkg/dateutil"
)

// Handlers serves calendar data over HTTP
type Handlers struct {
	calendar calendar.Calendar
	logger   *zap.Logger
}

// NewHandlers creates handlers backed by cal
func NewHandlers(cal calendar.Calendar, logger *zap.Logger) *Handlers {
	return &Handlers{calendar: cal, logger: logger}
}

// HolidayView is the JSON form of a dated holiday
type HolidayView struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Day     int    `json:"day"`
	Month   string `json:"month"`
	Weekday string `json:"weekday"`
	Movable bool   `json:"movable"`
}

// YearView describes a year
type YearView struct {
	Year        int           `json:"year"`
	LeapYear    bool          `json:"leap_year"`
	Easter      string        `json:"easter"`
	EasterShift int           `json:"easter_offset"`
	Holidays    []HolidayView `json:"holidays"`
}

// DayView describes a single day
type DayView struct {
	Date          string   `json:"date"`
	Day           int      `json:"day"`
	Weekday       string   `json:"weekday"`
	WeekdayNumber int      `json:"weekday_number"`
	IsWeekend     bool     `json:"is_weekend"`
	IsHoliday     bool     `json:"is_holiday"`
	Holidays      []string `json:"holidays,omitempty"`
}

// MonthView describes a month together with its sheet grid
type MonthView struct {
	Year         int                            `json:"year"`
	Month        string                         `json:"month"`
	MonthNumber  int                            `json:"month_number"`
	FirstWeekday string                         `json:"first_weekday"`
	DaysInMonth  int                            `json:"days_in_month"`
	Holidays     []HolidayView                  `json:"holidays"`
	Grid         [sheet.Rows][sheet.Columns]int `json:"grid"`
	Days         []DayView                      `json:"days"`
}

// HealthCheck reports that the service is up
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"})
}

// GetYear returns leap year flag, Easter and all holidays of a year
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	occurrences, err := h.calendar.GetYearHolidays(year)
	if err != nil {
		h.writeCalendarError(w, err)
		return
	}

	easter := calendar.EasterDate(year)
	WriteSuccess(w, YearView{
		Year:        year,
		LeapYear:    calendar.IsLeapYear(year),
		Easter:      isoDate(year, easter.Month, easter.Day),
		EasterShift: calendar.EasterOffset(year),
		Holidays:    holidayViews(year, occurrences),
	})
}

// GetMonth returns the month info and its sheet grid
func (h *Handlers) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}
	month, ok := h.monthParam(w, r)
	if !ok {
		return
	}

	info, err := h.calendar.GetMonthInfo(year, month)
	if err != nil {
		h.writeCalendarError(w, err)
		return
	}

	view := MonthView{
		Year:         info.Year,
		Month:        info.Month.String(),
		MonthNumber:  info.Month.Number(),
		FirstWeekday: info.FirstWeekday.String(),
		DaysInMonth:  info.DaysInMonth,
		Holidays:     holidayViews(year, info.Holidays),
		Grid:         sheet.Grid(info),
		Days:         make([]DayView, 0, len(info.Days)),
	}
	for i := range info.Days {
		view.Days = append(view.Days, dayView(&info.Days[i]))
	}

	WriteSuccess(w, view)
}

// GetYearHolidays returns all holidays of a year
func (h *Handlers) GetYearHolidays(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	occurrences, err := h.calendar.GetYearHolidays(year)
	if err != nil {
		h.writeCalendarError(w, err)
		return
	}

	WriteSuccess(w, holidayViews(year, occurrences))
}

// GetMonthHolidays returns the holidays of one month
func (h *Handlers) GetMonthHolidays(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}
	month, ok := h.monthParam(w, r)
	if !ok {
		return
	}

	info, err := h.calendar.GetMonthInfo(year, month)
	if err != nil {
		h.writeCalendarError(w, err)
		return
	}

	WriteSuccess(w, holidayViews(year, info.Holidays))
}

// GetWeekday returns weekday and holidays of a date
func (h *Handlers) GetWeekday(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "date")
	date, err := dateutil.ParseDate(raw)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date '%s', expected YYYY-MM-DD or DD.MM.YYYY", raw))
		return
	}

	dayInfo, err := h.calendar.GetDayInfo(date.Year(), calendar.Month(date.Month()), date.Day())
	if err != nil {
		h.writeCalendarError(w, err)
		return
	}

	WriteSuccess(w, dayView(dayInfo))
}

// NotFound answers unknown routes with the JSON envelope
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteNotFound(w, fmt.Sprintf("No route for %s", r.URL.Path))
}

func (h *Handlers) yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year '%s'", raw))
		return 0, false
	}
	return year, true
}

func (h *Handlers) monthParam(w http.ResponseWriter, r *http.Request) (calendar.Month, bool) {
	raw := chi.URLParam(r, "month")
	month, err := calendar.LookupMonth(raw)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid month '%s', expected 1-12 or a month name", raw))
		return 0, false
	}
	return month, true
}

func (h *Handlers) writeCalendarError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, calendar.ErrYearOutOfRange):
		WriteError(w, http.StatusBadRequest, err.Error(), "YEAR_OUT_OF_RANGE")
	case errors.Is(err, calendar.ErrOutOfDomain):
		WriteBadRequest(w, err.Error())
	default:
		h.logger.Error("Calendar lookup failed", zap.Error(err))
		WriteInternalError(w, "Internal server error")
	}
}

func holidayViews(year int, occurrences []calendar.Occurrence) []HolidayView {
	views := make([]HolidayView, 0, len(occurrences))
	for _, o := range occurrences {
		views = append(views, HolidayView{
			Name:    o.Holiday.String(),
			Date:    isoDate(year, o.Date.Month, o.Date.Day),
			Day:     o.Date.Day,
			Month:   o.Date.Month.String(),
			Weekday: calendar.WeekdayOf(o.Date.Day, o.Date.Month.Number(), year).String(),
			Movable: o.Holiday.IsMovable(),
		})
	}
	return views
}

func dayView(d *calendar.DayInfo) DayView {
	view := DayView{
		Date:          isoDate(d.Year, d.Month, d.Day),
		Day:           d.Day,
		Weekday:       d.Weekday.String(),
		WeekdayNumber: d.Weekday.Number(),
		IsWeekend:     d.IsWeekend,
		IsHoliday:     d.IsHoliday,
	}
	for _, h := range d.Holidays {
		view.Holidays = append(view.Holidays, h.String())
	}
	return view
}

func isoDate(year int, month calendar.Month, day int) string {
	return dateutil.FormatDate(time.Date(year, time.Month(month.Number()), day, 0, 0, 0, 0, time.UTC))
}
