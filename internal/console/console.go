// Package console implements the interactive month prompt loop.
package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/sheet"
)

const (
	intro       = `To terminate the program, enter "exit" at any time`
	monthPrompt = "Please enter the month you want to display: "
	yearPrompt  = "Please enter the year you want to display: "
	exitCommand = "exit"
)

var errExit = errors.New("exit requested")

// LineReader reads one line of user input after showing a prompt.
// *readline.Instance satisfies it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Console asks for a month and a year and prints the matching sheet until
// the user types "exit" or closes the input.
type Console struct {
	reader   LineReader
	out      io.Writer
	calendar *calendar.LowerSaxony
	logger   *zap.Logger
}

// New creates a console reading from reader and printing to out
func New(reader LineReader, out io.Writer, cal *calendar.LowerSaxony, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		reader:   reader,
		out:      out,
		calendar: cal,
		logger:   logger,
	}
}

// NewReader builds a readline instance with month name completion.
// An empty historyFile disables history.
func NewReader(historyFile string) (*readline.Instance, error) {
	items := make([]readline.PrefixCompleterInterface, 0, 13)
	for _, m := range calendar.Months() {
		items = append(items, readline.PcItem(m.String()))
	}
	items = append(items, readline.PcItem(exitCommand))

	return readline.NewEx(&readline.Config{
		Prompt:          monthPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       exitCommand,
	})
}

// Run executes the prompt loop. It returns nil on "exit" or end of input.
func (c *Console) Run() error {
	fmt.Fprintln(c.out, intro)

	for {
		month, err := c.readMonth()
		if err != nil {
			return c.finish(err)
		}

		year, err := c.readYear()
		if err != nil {
			return c.finish(err)
		}

		info, err := c.calendar.GetMonthInfo(year, month)
		if err != nil {
			return fmt.Errorf("failed to calculate %s %d: %w", month, year, err)
		}

		c.logger.Debug("Displaying month",
			zap.Int("year", year),
			zap.String("month", month.String()))

		if err := sheet.Render(c.out, info); err != nil {
			return fmt.Errorf("failed to render sheet: %w", err)
		}
	}
}

func (c *Console) finish(err error) error {
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
		c.logger.Debug("Console terminated")
		return nil
	}
	return err
}

func (c *Console) readMonth() (calendar.Month, error) {
	for {
		line, err := c.prompt(monthPrompt)
		if err != nil {
			return 0, err
		}

		month, err := calendar.LookupMonth(line)
		if err != nil {
			c.logger.Debug("Invalid month input", zap.String("input", line))
			continue
		}
		return month, nil
	}
}

func (c *Console) readYear() (int, error) {
	for {
		line, err := c.prompt(yearPrompt)
		if err != nil {
			return 0, err
		}

		year, err := strconv.Atoi(line)
		if err != nil {
			c.logger.Debug("Invalid year input", zap.String("input", line))
			continue
		}
		if err := c.calendar.CheckYear(year); err != nil {
			c.logger.Debug("Year out of range", zap.Int("year", year))
			continue
		}
		return year, nil
	}
}

// prompt reads a trimmed line. Interrupts repeat the prompt.
func (c *Console) prompt(text string) (string, error) {
	for {
		c.reader.SetPrompt(text)
		line, err := c.reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return "", err
		}

		line = strings.TrimSpace(line)
		if line == exitCommand {
			return "", errExit
		}
		return line, nil
	}
}
