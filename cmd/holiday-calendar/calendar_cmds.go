package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/export"
	"github.com/username/holiday-calendar/internal/sheet"
	"github.com/username/holiday-calendar/pkg/dateutil"
)

func showCmd() *cobra.Command {
	var monthStr string
	var year int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the calendar sheet of a month",
		Long:  "Print a Sunday-first calendar sheet followed by the holidays of the month. Defaults to the current month.",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, y, err := monthAndYear(monthStr, year)
			if err != nil {
				return err
			}

			info, err := newCalendar().GetMonthInfo(y, month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := sheet.RenderTitle(out, info); err != nil {
				return err
			}
			return sheet.Render(out, info)
		},
	}

	cmd.Flags().StringVarP(&monthStr, "month", "m", "", "Month number (1-12) or name")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default: current year)")

	return cmd
}

func holidaysCmd() *cobra.Command {
	var monthStr string
	var year int
	var formatStr string
	var output string

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the holidays of a year or month",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			if year == 0 {
				year = dateutil.Today().Year()
			}

			cal := newCalendar()
			var occurrences []calendar.Occurrence
			if monthStr != "" {
				month, err := calendar.LookupMonth(monthStr)
				if err != nil {
					return err
				}
				info, err := cal.GetMonthInfo(year, month)
				if err != nil {
					return err
				}
				occurrences = info.Holidays
			} else {
				occurrences, err = cal.GetYearHolidays(year)
				if err != nil {
					return err
				}
			}

			exporter := export.NewExporter(logger)
			if output != "" {
				if err := exporter.WriteFile(output, format, year, occurrences); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d holidays to %s\n", len(occurrences), output)
				return nil
			}
			return exporter.Write(cmd.OutOrStdout(), format, year, occurrences)
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default: current year)")
	cmd.Flags().StringVarP(&monthStr, "month", "m", "", "Restrict to one month (number or name)")
	formats := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		formats = append(formats, string(f))
	}
	cmd.Flags().StringVarP(&formatStr, "format", "f", string(export.FormatText), "Output format: "+strings.Join(formats, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func weekdayCmd() *cobra.Command {
	var day int
	var monthStr string
	var year int

	cmd := &cobra.Command{
		Use:   "weekday [date]",
		Short: "Show the weekday and holidays of a date",
		Long:  "Show the weekday of a date given as YYYY-MM-DD, DD.MM.YYYY or with --day, --month and --year.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var month calendar.Month
			switch {
			case len(args) == 1:
				date, err := dateutil.ParseDate(args[0])
				if err != nil {
					return err
				}
				day, month, year = date.Day(), calendar.Month(date.Month()), date.Year()
			case day != 0 && monthStr != "" && year != 0:
				var err error
				month, err = calendar.LookupMonth(monthStr)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("either a date argument or --day, --month and --year must be specified")
			}

			dayInfo, err := newCalendar().GetDayInfo(year, month, day)
			if err != nil {
				return err
			}

			logger.Debug("Weekday calculated",
				zap.Int("year", year),
				zap.Int("month", month.Number()),
				zap.Int("day", day),
				zap.String("weekday", dayInfo.Weekday.String()))

			line := fmt.Sprintf("%d %s %d is a %s", day, month, year, dayInfo.Weekday)
			if dayInfo.IsHoliday {
				names := make([]string, 0, len(dayInfo.Holidays))
				for _, h := range dayInfo.Holidays {
					names = append(names, h.String())
				}
				line += fmt.Sprintf(" (%s)", strings.Join(names, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().IntVarP(&day, "day", "d", 0, "Day of month")
	cmd.Flags().StringVarP(&monthStr, "month", "m", "", "Month number (1-12) or name")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year")

	return cmd
}

func easterCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "easter",
		Short: "Show Easter Sunday and the movable feasts of a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = dateutil.Today().Year()
			}
			if err := newCalendar().CheckYear(year); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Easter Sunday %d: %s (day %d counted from 1 March)\n",
				year, calendar.EasterDate(year), calendar.EasterOffset(year))
			for _, h := range calendar.Holidays() {
				if !h.IsMovable() || h == calendar.EasterSunday {
					continue
				}
				date, _ := calendar.DateOf(h, year)
				fmt.Fprintf(out, "  %-14s %s\n", h, date)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default: current year)")

	return cmd
}

// monthAndYear resolves flag values, defaulting to the current month
func monthAndYear(monthStr string, year int) (calendar.Month, int, error) {
	today := dateutil.Today()

	month := calendar.Month(today.Month())
	if monthStr != "" {
		var err error
		month, err = calendar.LookupMonth(monthStr)
		if err != nil {
			return 0, 0, err
		}
	}
	if year == 0 {
		year = today.Year()
	}
	return month, year, nil
}
