package dateutil

import (
	"fmt"
	"time"
)

// WindowKind selects the granularity of a summary window.
type WindowKind int

const (
	WindowDay WindowKind = iota
	WindowMonth
	WindowYear
)

// Window is a day, month or year selector that translates into an
// inclusive calendar date range.
type Window struct {
	Kind  WindowKind
	Date  Date       // day windows
	Year  int        // month and year windows
	Month time.Month // month windows
}

// Day returns a window covering the single date d.
func Day(d Date) Window {
	return Window{Kind: WindowDay, Date: d}
}

// MonthOf returns a window covering the whole given calendar month.
func MonthOf(year int, month time.Month) Window {
	return Window{Kind: WindowMonth, Year: year, Month: month}
}

// YearOf returns a window covering the whole given calendar year.
func YearOf(year int) Window {
	return Window{Kind: WindowYear, Year: year}
}

// Range returns the inclusive [start, end] date range of the window.
// Month windows respect month length and leap years.
func (w Window) Range() (start, end Date) {
	switch w.Kind {
	case WindowDay:
		return w.Date, w.Date
	case WindowMonth:
		start = Date{Year: w.Year, Month: w.Month, Day: 1}
		end = Date{Year: w.Year, Month: w.Month, Day: DaysInMonth(w.Year, w.Month)}
		return start, end
	case WindowYear:
		start = Date{Year: w.Year, Month: time.January, Day: 1}
		end = Date{Year: w.Year, Month: time.December, Day: 31}
		return start, end
	}
	panic(fmt.Sprintf("dateutil: unknown window kind %d", w.Kind))
}

// String returns a short label for the window, used in summary headers.
func (w Window) String() string {
	switch w.Kind {
	case WindowDay:
		return w.Date.String()
	case WindowMonth:
		return fmt.Sprintf("%04d-%02d", w.Year, w.Month)
	case WindowYear:
		return fmt.Sprintf("%04d", w.Year)
	}
	return "unknown"
}
