// Package ledger implements the date-keyed collection of logged hour
// entries. It owns the replace-on-duplicate-date semantics for logging
// and the inclusive range queries used by summaries and invoicing.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aldosh/aldo/internal/dateutil"
	"github.com/aldosh/aldo/internal/entry"
)

// InvalidRangeError reports a range query whose start date is after its
// end date.
type InvalidRangeError struct {
	Start dateutil.Date
	End   dateutil.Date
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: start %s is after end %s", e.Start, e.End)
}

// Ledger is an ordered-by-date mapping from calendar date to hour entry.
// At most one entry exists per date; hours are always positive.
type Ledger struct {
	entries map[dateutil.Date]entry.HourEntry
	dirty   bool
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{entries: make(map[dateutil.Date]entry.HourEntry)}
}

// FromEntries builds a ledger from stored entries. When the input holds
// several entries for the same date, the last one wins, matching the
// replace semantics of Log.
func FromEntries(entries []entry.HourEntry) *Ledger {
	l := New()
	for _, e := range entries {
		l.entries[e.Date] = e
	}
	return l
}

// Log validates and records hours for a date, overwriting any existing
// entry for the same date. It returns the resulting entry and the entry
// it replaced, if any. A successful call marks the ledger dirty.
func (l *Ledger) Log(date dateutil.Date, hours decimal.Decimal, description string) (logged entry.HourEntry, replaced *entry.HourEntry, err error) {
	if err := entry.ValidateHours(hours); err != nil {
		return entry.HourEntry{}, nil, err
	}

	if prev, ok := l.entries[date]; ok {
		replaced = &prev
	}

	logged = entry.HourEntry{
		Date:        date,
		Hours:       hours,
		Description: description,
		LoggedAt:    time.Now(),
	}
	l.entries[date] = logged
	l.dirty = true

	return logged, replaced, nil
}

// EntriesInRange returns the entries with start <= date <= end in
// ascending date order. An empty range yields an empty slice; a start
// after end fails with *InvalidRangeError.
func (l *Ledger) EntriesInRange(start, end dateutil.Date) ([]entry.HourEntry, error) {
	if start.After(end) {
		return nil, &InvalidRangeError{Start: start, End: end}
	}

	matched := []entry.HourEntry{}
	for date, e := range l.entries {
		if !date.Before(start) && !date.After(end) {
			matched = append(matched, e)
		}
	}
	sortByDate(matched)
	return matched, nil
}

// All returns every entry in ascending date order.
func (l *Ledger) All() []entry.HourEntry {
	all := make([]entry.HourEntry, 0, len(l.entries))
	for _, e := range l.entries {
		all = append(all, e)
	}
	sortByDate(all)
	return all
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// EarliestDate returns the date of the oldest entry. The second return
// value is false when the ledger is empty.
func (l *Ledger) EarliestDate() (dateutil.Date, bool) {
	var earliest dateutil.Date
	found := false
	for date := range l.entries {
		if !found || date.Before(earliest) {
			earliest = date
			found = true
		}
	}
	return earliest, found
}

// Dirty reports whether the ledger has unsaved mutations.
func (l *Ledger) Dirty() bool {
	return l.dirty
}

// ClearDirty marks the ledger as persisted. Called by the storage layer
// after a durable write.
func (l *Ledger) ClearDirty() {
	l.dirty = false
}

// SumHours returns the exact decimal sum of hours over the entries.
func SumHours(entries []entry.HourEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Hours)
	}
	return total
}

func sortByDate(entries []entry.HourEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}
