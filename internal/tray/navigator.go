// Package tray shows the month sheet and holidays in the system tray.
package tray

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/sheet"
)

// MenuState is what the tray menu displays for the current month
type MenuState struct {
	Title    string
	Tooltip  string
	Holidays []string
	Sheet    string
}

// Navigator keeps the month shown by the tray and renders its menu state
type Navigator struct {
	calendar *calendar.LowerSaxony
	cursor   calendar.Cursor
	logger   *zap.Logger
}

// NewNavigator creates a navigator positioned on the month of now
func NewNavigator(cal *calendar.LowerSaxony, now time.Time, logger *zap.Logger) *Navigator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Navigator{
		calendar: cal,
		cursor:   cursorFor(now),
		logger:   logger,
	}
}

// Cursor returns the month currently shown
func (n *Navigator) Cursor() calendar.Cursor {
	return n.cursor
}

// Next moves one month forward unless that leaves the year bounds
func (n *Navigator) Next() (*MenuState, error) {
	return n.move(n.cursor.Next())
}

// Previous moves one month back unless that leaves the year bounds
func (n *Navigator) Previous() (*MenuState, error) {
	return n.move(n.cursor.Previous())
}

// Today jumps to the month of now
func (n *Navigator) Today(now time.Time) (*MenuState, error) {
	return n.move(cursorFor(now))
}

// State renders the menu for the current month
func (n *Navigator) State() (*MenuState, error) {
	info, err := n.calendar.GetMonthInfo(n.cursor.Year, n.cursor.Month)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := sheet.Render(&buf, info); err != nil {
		return nil, fmt.Errorf("failed to render sheet: %w", err)
	}

	state := &MenuState{
		Title: n.cursor.String(),
		Sheet: buf.String(),
	}
	for _, o := range info.Holidays {
		state.Holidays = append(state.Holidays, fmt.Sprintf("%s : %s", o.Holiday, o.Date))
	}

	if len(state.Holidays) == 0 {
		state.Tooltip = state.Title + "\nNo holidays"
	} else {
		state.Tooltip = state.Title + "\n" + strings.Join(state.Holidays, "\n")
	}

	return state, nil
}

func (n *Navigator) move(to calendar.Cursor) (*MenuState, error) {
	if err := n.calendar.CheckYear(to.Year); err != nil {
		n.logger.Debug("Navigation blocked", zap.String("target", to.String()), zap.Error(err))
	} else {
		n.cursor = to
	}
	return n.State()
}

func cursorFor(t time.Time) calendar.Cursor {
	return calendar.NewCursor(t.Year(), calendar.Month(t.Month()))
}
