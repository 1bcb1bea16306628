// Package sheet renders a month as a Sunday-first text calendar sheet.
package sheet

import (
	"bufio"
	"fmt"
	"io"

	"github.com/username/holiday-calendar/internal/calendar"
)

const (
	// Rows is the number of week rows on a sheet
	Rows = 6
	// Columns is the number of weekday columns on a sheet
	Columns = 7
)

// Header is the weekday header line, starting on Sunday
const Header = "SU MO TU WE TH FR SA"

// Grid lays the days of the month out in rows of weeks. Empty cells are 0.
func Grid(info *calendar.MonthInfo) [Rows][Columns]int {
	var grid [Rows][Columns]int

	cell := info.FirstWeekday.Number()
	for day := 1; day <= info.DaysInMonth; day++ {
		if cell >= Rows*Columns {
			break
		}
		grid[cell/Columns][cell%Columns] = day
		cell++
	}

	return grid
}

// Render writes the sheet followed by the holidays of the month, if any
func Render(w io.Writer, info *calendar.MonthInfo) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, Header)
	for _, row := range Grid(info) {
		for _, day := range row {
			if day == 0 {
				bw.WriteString("  ")
			} else {
				fmt.Fprintf(bw, "%02d", day)
			}
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}

	if len(info.Holidays) > 0 {
		fmt.Fprintln(bw, "Holidays: ")
		for _, o := range info.Holidays {
			fmt.Fprintf(bw, "%s : %d %s\n", o.Holiday, o.Date.Day, o.Date.Month)
		}
	}

	return bw.Flush()
}

// RenderTitle writes a "<Month> <Year>" heading
func RenderTitle(w io.Writer, info *calendar.MonthInfo) error {
	_, err := fmt.Fprintf(w, "%s %d\n", info.Month, info.Year)
	return err
}
