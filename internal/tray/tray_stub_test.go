//go:build !windows
// +build !windows

package tray

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/username/holiday-calendar/internal/calendar"
)

func TestNew_Unsupported(t *testing.T) {
	app, err := New(calendar.NewLowerSaxony(0, 0, zap.NewNop()), zap.NewNop())
	if !errors.Is(err, ErrUnsupported) || app != nil {
		t.Errorf("New() = %v, %v, want nil, ErrUnsupported", app, err)
	}
}
