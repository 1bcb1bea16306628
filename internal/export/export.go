// Package export writes the holidays of a year in several file formats.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/username/holiday-calendar/internal/calendar"
)

// Format identifies an output format
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats
func Formats() []Format {
	return []Format{FormatText, FormatCSV, FormatJSON, FormatYAML}
}

// ParseFormat converts a case-insensitive format name
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatText, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format '%s', expected text, csv, json or yaml", name)
}

// Record is one holiday line of an export
type Record struct {
	Date    string `csv:"date" json:"date" yaml:"date"`
	Weekday string `csv:"weekday" json:"weekday" yaml:"weekday"`
	Holiday string `csv:"holiday" json:"holiday" yaml:"holiday"`
	Movable bool   `csv:"movable" json:"movable" yaml:"movable"`
}

// Records converts occurrences of year into export records
func Records(year int, occurrences []calendar.Occurrence) []Record {
	records := make([]Record, 0, len(occurrences))
	for _, o := range occurrences {
		records = append(records, Record{
			Date:    fmt.Sprintf("%04d-%02d-%02d", year, o.Date.Month.Number(), o.Date.Day),
			Weekday: calendar.WeekdayOf(o.Date.Day, o.Date.Month.Number(), year).String(),
			Holiday: o.Holiday.String(),
			Movable: o.Holiday.IsMovable(),
		})
	}
	return records
}

// Exporter writes holiday lists
type Exporter struct {
	logger *zap.Logger
}

// NewExporter creates a new Exporter instance
func NewExporter(logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{logger: logger}
}

// Write encodes the holidays of year to w
func (e *Exporter) Write(w io.Writer, format Format, year int, occurrences []calendar.Occurrence) error {
	records := Records(year, occurrences)

	var err error
	switch format {
	case FormatText:
		err = writeText(w, records)
	case FormatCSV:
		err = gocsv.Marshal(records, w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(records); err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("unsupported format '%s'", format)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s export: %w", format, err)
	}

	e.logger.Debug("Holidays exported",
		zap.String("format", string(format)),
		zap.Int("year", year),
		zap.Int("holidays", len(records)))

	return nil
}

// WriteFile writes the export to path, replacing an existing file
func (e *Exporter) WriteFile(path string, format Format, year int, occurrences []calendar.Occurrence) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := e.Write(file, format, year, occurrences); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}

	e.logger.Info("Export file written",
		zap.String("file", path),
		zap.String("format", string(format)))

	return nil
}

// writeText writes one "YYYY-MM-DD Weekday Name" line per holiday
func writeText(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		fmt.Fprintf(bw, "%s %s %s\n", r.Date, r.Weekday, r.Holiday)
	}
	return bw.Flush()
}
