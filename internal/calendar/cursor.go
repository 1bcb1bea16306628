package calendar

import "fmt"

// Cursor points at a month of a specific year. Unlike Month.Next and
// Month.Previous it carries the year across the December/January boundary.
type Cursor struct {
	Year  int
	Month Month
}

// NewCursor returns a cursor for month of year
func NewCursor(year int, month Month) Cursor {
	return Cursor{Year: year, Month: month}
}

// Next moves to the following month
func (c Cursor) Next() Cursor {
	if c.Month == December {
		return Cursor{Year: c.Year + 1, Month: c.Month.Next()}
	}
	return Cursor{Year: c.Year, Month: c.Month.Next()}
}

// Previous moves to the preceding month
func (c Cursor) Previous() Cursor {
	if c.Month == January {
		return Cursor{Year: c.Year - 1, Month: c.Month.Previous()}
	}
	return Cursor{Year: c.Year, Month: c.Month.Previous()}
}

// String formats the cursor as "<Month> <Year>"
func (c Cursor) String() string {
	return fmt.Sprintf("%s %d", c.Month, c.Year)
}
