//go:build windows
// +build windows

package tray

import (
	_ "embed"
	"fmt"
	"syscall"
	"time"
	"unsafe"

	"fyne.io/systray"
	"go.uber.org/zap"

	"github.com/username/holiday-calendar/internal/calendar"
)

//go:embed icon.ico
var iconData []byte

var (
	user32      = syscall.NewLazyDLL("user32.dll")
	messageBoxW = user32.NewProc("MessageBoxW")
)

const (
	MB_OK              = 0x00000000
	MB_ICONINFORMATION = 0x00000040
)

// holidaySlots is the most holidays a single month can have, plus one spare
const holidaySlots = 5

// TrayApp represents system tray application
type TrayApp struct {
	navigator *Navigator
	logger    *zap.Logger
	quit      chan struct{}
	title     *systray.MenuItem
	holidays  [holidaySlots]*systray.MenuItem
	state     *MenuState
}

// New creates a new system tray application
func New(cal *calendar.LowerSaxony, logger *zap.Logger) (*TrayApp, error) {
	return &TrayApp{
		navigator: NewNavigator(cal, time.Now(), logger),
		logger:    logger,
		quit:      make(chan struct{}),
	}, nil
}

// Run starts the system tray application (blocks until Quit)
func (t *TrayApp) Run() error {
	if _, err := t.navigator.State(); err != nil {
		return fmt.Errorf("current month is not displayable: %w", err)
	}
	systray.Run(t.onReady, t.onExit)
	return nil
}

func (t *TrayApp) onReady() {
	systray.SetIcon(iconData)

	t.title = systray.AddMenuItem("", "Displayed month")
	t.title.Disable()
	for i := range t.holidays {
		t.holidays[i] = systray.AddMenuItem("", "Holiday")
		t.holidays[i].Disable()
		t.holidays[i].Hide()
	}
	systray.AddSeparator()
	mSheet := systray.AddMenuItem("Show Sheet", "Show the calendar sheet of this month")
	mPrevious := systray.AddMenuItem("Previous Month", "Go back one month")
	mNext := systray.AddMenuItem("Next Month", "Go forward one month")
	mToday := systray.AddMenuItem("Today", "Go to the current month")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit the application")

	t.apply(t.navigator.State())

	// Handle menu item clicks
	go func() {
		for {
			select {
			case <-mSheet.ClickedCh:
				if t.state != nil {
					showMessageBox(t.state.Title, t.state.Sheet)
				}
			case <-mPrevious.ClickedCh:
				t.apply(t.navigator.Previous())
			case <-mNext.ClickedCh:
				t.apply(t.navigator.Next())
			case <-mToday.ClickedCh:
				t.apply(t.navigator.Today(time.Now()))
			case <-mQuit.ClickedCh:
				t.logger.Info("Quit clicked from tray")
				systray.Quit()
				return
			case <-t.quit:
				systray.Quit()
				return
			}
		}
	}()
}

func (t *TrayApp) onExit() {
	t.logger.Info("System tray exited")
}

// Stop stops the system tray application
func (t *TrayApp) Stop() {
	close(t.quit)
}

func (t *TrayApp) apply(state *MenuState, err error) {
	if err != nil {
		t.logger.Error("Failed to update tray menu", zap.Error(err))
		return
	}
	t.state = state

	systray.SetTitle(state.Title)
	systray.SetTooltip(state.Tooltip)
	t.title.SetTitle(state.Title)

	for i, item := range t.holidays {
		if i < len(state.Holidays) {
			item.SetTitle(state.Holidays[i])
			item.Show()
		} else {
			item.Hide()
		}
	}

	t.logger.Debug("Tray month changed", zap.String("month", state.Title))
}

func showMessageBox(title, message string) {
	titlePtr, _ := syscall.UTF16PtrFromString(title)
	messagePtr, _ := syscall.UTF16PtrFromString(message)
	messageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(messagePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(MB_OK|MB_ICONINFORMATION),
	)
}
