//go:build !windows
// +build !windows

package tray

import (
	"errors"

	"go.uber.org/zap"

	"github.com/username/holiday-calendar/internal/calendar"
)

// ErrUnsupported is returned by New on platforms without tray support
var ErrUnsupported = errors.New("system tray is only supported on Windows")

// TrayApp represents system tray application (stub for non-Windows platforms)
type TrayApp struct{}

// New creates a new system tray application (not supported on this platform)
func New(cal *calendar.LowerSaxony, logger *zap.Logger) (*TrayApp, error) {
	return nil, ErrUnsupported
}

// Run does nothing on non-Windows platforms
func (t *TrayApp) Run() error {
	return ErrUnsupported
}

// Stop does nothing on non-Windows platforms
func (t *TrayApp) Stop() {
}
