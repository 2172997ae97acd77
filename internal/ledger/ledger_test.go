package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aldosh/aldo/internal/dateutil"
	"github.com/aldosh/aldo/internal/entry"
)

func mustLog(t *testing.T, l *Ledger, date dateutil.Date, hours string, description string) entry.HourEntry {
	t.Helper()
	logged, _, err := l.Log(date, decimal.RequireFromString(hours), description)
	if err != nil {
		t.Fatalf("Log(%v, %s) unexpected error: %v", date, hours, err)
	}
	return logged
}

func TestLog_DistinctDatesPreserved(t *testing.T) {
	l := New()
	d1 := dateutil.NewDate(2025, time.April, 1)
	d2 := dateutil.NewDate(2025, time.April, 2)

	mustLog(t, l, d1, "4", "morning work")
	mustLog(t, l, d2, "6", "afternoon work")

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", l.Len())
	}

	all := l.All()
	if all[0].Date != d1 || all[1].Date != d2 {
		t.Errorf("All() order = [%v, %v], expected [%v, %v]", all[0].Date, all[1].Date, d1, d2)
	}
}

func TestLog_SameDateReplaces(t *testing.T) {
	l := New()
	d := dateutil.NewDate(2025, time.April, 1)

	mustLog(t, l, d, "4", "first version")
	logged, replaced, err := l.Log(d, decimal.RequireFromString("7.5"), "second version")
	if err != nil {
		t.Fatalf("Log() unexpected error: %v", err)
	}

	if replaced == nil {
		t.Fatal("Log() on existing date should return the replaced entry")
	}
	if !replaced.Hours.Equal(decimal.NewFromInt(4)) {
		t.Errorf("replaced hours = %v, expected 4", replaced.Hours)
	}

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, expected exactly 1 entry after replace", l.Len())
	}

	all := l.All()
	if !all[0].Hours.Equal(logged.Hours) || all[0].Description != "second version" {
		t.Errorf("surviving entry = %v %q, expected 7.5 %q", all[0].Hours, all[0].Description, "second version")
	}
}

func TestLog_NewDateReportsNoReplacement(t *testing.T) {
	l := New()
	_, replaced, err := l.Log(dateutil.NewDate(2025, time.April, 1), decimal.NewFromInt(8), "")
	if err != nil {
		t.Fatalf("Log() unexpected error: %v", err)
	}
	if replaced != nil {
		t.Errorf("Log() on fresh date should report nil replacement, got %v", replaced)
	}
}

func TestLog_InvalidHours(t *testing.T) {
	tests := []struct {
		name  string
		hours string
	}{
		{name: "zero", hours: "0"},
		{name: "negative", hours: "-2"},
		{name: "above one day", hours: "25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			_, _, err := l.Log(dateutil.NewDate(2025, time.April, 1), decimal.RequireFromString(tt.hours), "")
			if err == nil {
				t.Fatalf("Log() with hours %s expected error, got none", tt.hours)
			}

			var hoursErr *entry.InvalidHoursError
			if !errors.As(err, &hoursErr) {
				t.Fatalf("error type = %T, expected *entry.InvalidHoursError", err)
			}
			if l.Len() != 0 {
				t.Error("failed Log() must not add an entry")
			}
			if l.Dirty() {
				t.Error("failed Log() must not mark the ledger dirty")
			}
		})
	}
}

func TestLog_MarksDirty(t *testing.T) {
	l := New()
	if l.Dirty() {
		t.Error("fresh ledger should not be dirty")
	}

	mustLog(t, l, dateutil.NewDate(2025, time.April, 1), "8", "")
	if !l.Dirty() {
		t.Error("ledger should be dirty after Log()")
	}

	l.ClearDirty()
	if l.Dirty() {
		t.Error("ledger should be clean after ClearDirty()")
	}
}

func TestEntriesInRange(t *testing.T) {
	l := New()
	mustLog(t, l, dateutil.NewDate(2025, time.March, 31), "1", "")
	mustLog(t, l, dateutil.NewDate(2025, time.April, 1), "2", "")
	mustLog(t, l, dateutil.NewDate(2025, time.April, 15), "3", "")
	mustLog(t, l, dateutil.NewDate(2025, time.April, 30), "4", "")
	mustLog(t, l, dateutil.NewDate(2025, time.May, 1), "5", "")

	tests := []struct {
		name          string
		start, end    dateutil.Date
		expectedDates []dateutil.Date
	}{
		{
			name:  "inclusive both ends",
			start: dateutil.NewDate(2025, time.April, 1),
			end:   dateutil.NewDate(2025, time.April, 30),
			expectedDates: []dateutil.Date{
				dateutil.NewDate(2025, time.April, 1),
				dateutil.NewDate(2025, time.April, 15),
				dateutil.NewDate(2025, time.April, 30),
			},
		},
		{
			name:          "single day",
			start:         dateutil.NewDate(2025, time.April, 15),
			end:           dateutil.NewDate(2025, time.April, 15),
			expectedDates: []dateutil.Date{dateutil.NewDate(2025, time.April, 15)},
		},
		{
			name:          "empty range inside ledger span",
			start:         dateutil.NewDate(2025, time.April, 2),
			end:           dateutil.NewDate(2025, time.April, 14),
			expectedDates: []dateutil.Date{},
		},
		{
			name:          "range before all entries",
			start:         dateutil.NewDate(2024, time.January, 1),
			end:           dateutil.NewDate(2024, time.December, 31),
			expectedDates: []dateutil.Date{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.EntriesInRange(tt.start, tt.end)
			if err != nil {
				t.Fatalf("EntriesInRange() unexpected error: %v", err)
			}
			if len(got) != len(tt.expectedDates) {
				t.Fatalf("EntriesInRange() returned %d entries, expected %d", len(got), len(tt.expectedDates))
			}
			for i, e := range got {
				if e.Date != tt.expectedDates[i] {
					t.Errorf("entry %d date = %v, expected %v", i, e.Date, tt.expectedDates[i])
				}
			}
		})
	}
}

func TestEntriesInRange_StartAfterEnd(t *testing.T) {
	l := New()
	start := dateutil.NewDate(2025, time.April, 2)
	end := start.AddDays(-1)

	_, err := l.EntriesInRange(start, end)
	if err == nil {
		t.Fatal("EntriesInRange() with start after end expected error, got none")
	}

	var rangeErr *InvalidRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("error type = %T, expected *InvalidRangeError", err)
	}
	if rangeErr.Start != start || rangeErr.End != end {
		t.Errorf("InvalidRangeError = {%v %v}, expected {%v %v}", rangeErr.Start, rangeErr.End, start, end)
	}
}

func TestEarliestDate(t *testing.T) {
	l := New()
	if _, ok := l.EarliestDate(); ok {
		t.Error("EarliestDate() on empty ledger should report not found")
	}

	mustLog(t, l, dateutil.NewDate(2025, time.April, 15), "1", "")
	mustLog(t, l, dateutil.NewDate(2025, time.March, 2), "1", "")
	mustLog(t, l, dateutil.NewDate(2025, time.May, 1), "1", "")

	earliest, ok := l.EarliestDate()
	if !ok {
		t.Fatal("EarliestDate() should report found")
	}
	if expected := dateutil.NewDate(2025, time.March, 2); earliest != expected {
		t.Errorf("EarliestDate() = %v, expected %v", earliest, expected)
	}
}

func TestFromEntries_LastWinsOnDuplicateDates(t *testing.T) {
	d := dateutil.NewDate(2025, time.April, 1)
	l := FromEntries([]entry.HourEntry{
		{Date: d, Hours: decimal.NewFromInt(4)},
		{Date: d, Hours: decimal.NewFromInt(6)},
	})

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", l.Len())
	}
	if got := l.All()[0].Hours; !got.Equal(decimal.NewFromInt(6)) {
		t.Errorf("surviving hours = %v, expected 6", got)
	}
}

func TestSumHours_ExactDecimalSum(t *testing.T) {
	entries := []entry.HourEntry{
		{Hours: decimal.RequireFromString("0.1")},
		{Hours: decimal.RequireFromString("0.2")},
		{Hours: decimal.RequireFromString("7.5")},
	}

	if got := SumHours(entries); !got.Equal(decimal.RequireFromString("7.8")) {
		t.Errorf("SumHours() = %v, expected 7.8", got)
	}
	if got := SumHours(nil); !got.Equal(decimal.Zero) {
		t.Errorf("SumHours(nil) = %v, expected 0", got)
	}
}
