package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aldosh/aldo/internal/dateutil"
	"github.com/aldosh/aldo/internal/entry"
)

// Summary holds the aggregation result for a day, month or year window.
type Summary struct {
	Window     dateutil.Window
	TotalHours decimal.Decimal
	Entries    []entry.HourEntry
}

// Summarize computes the total hours and entry list for the window.
// An empty window yields a zero total and an empty entry slice.
func (l *Ledger) Summarize(w dateutil.Window) (Summary, error) {
	start, end := w.Range()
	entries, err := l.EntriesInRange(start, end)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Window:     w,
		TotalHours: SumHours(entries),
		Entries:    entries,
	}, nil
}

// MonthTotal is the aggregate hours of one calendar month. Used by the
// xlsx export's summary sheet.
type MonthTotal struct {
	Year       int
	Month      time.Month
	TotalHours decimal.Decimal
	Days       int
}

// MonthlyTotals aggregates the whole ledger per calendar month, in
// chronological order.
func (l *Ledger) MonthlyTotals() []MonthTotal {
	byMonth := make(map[dateutil.Date]*MonthTotal)
	for _, e := range l.All() {
		key := dateutil.Date{Year: e.Date.Year, Month: e.Date.Month, Day: 1}
		mt, ok := byMonth[key]
		if !ok {
			mt = &MonthTotal{Year: e.Date.Year, Month: e.Date.Month, TotalHours: decimal.Zero}
			byMonth[key] = mt
		}
		mt.TotalHours = mt.TotalHours.Add(e.Hours)
		mt.Days++
	}

	totals := make([]MonthTotal, 0, len(byMonth))
	for _, mt := range byMonth {
		totals = append(totals, *mt)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Year != totals[j].Year {
			return totals[i].Year < totals[j].Year
		}
		return totals[i].Month < totals[j].Month
	})
	return totals
}
