package service

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aldosh/aldo/internal/config"
	"github.com/aldosh/aldo/internal/dateutil"
	"github.com/aldosh/aldo/internal/entry"
	"github.com/aldosh/aldo/internal/ledger"
	"github.com/aldosh/aldo/internal/storage"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	dir := t.TempDir()
	return NewServicesWithPaths(
		filepath.Join(dir, storage.DataFile),
		filepath.Join(dir, config.ConfigFile),
	)
}

func TestLedgerService_LogPersists(t *testing.T) {
	svc := newTestServices(t)

	result, err := svc.Ledger.Log("2025-04-01", "7.5", "backend work")
	if err != nil {
		t.Fatalf("Log() unexpected error: %v", err)
	}
	if result.Logged.Date != dateutil.NewDate(2025, time.April, 1) {
		t.Errorf("logged date = %v, expected 2025-04-01", result.Logged.Date)
	}
	if result.Replaced != nil {
		t.Errorf("first log should not replace anything, got %v", result.Replaced)
	}

	// A fresh read from disk must see the entry.
	entries, err := svc.Ledger.All()
	if err != nil {
		t.Fatalf("All() unexpected error: %v", err)
	}
	if len(entries) != 1 || !entries[0].Hours.Equal(decimal.RequireFromString("7.5")) {
		t.Errorf("persisted entries = %v, expected single 7.5h entry", entries)
	}
}

func TestLedgerService_LogReplacesSameDate(t *testing.T) {
	svc := newTestServices(t)

	if _, err := svc.Ledger.Log("2025-04-01", "4", "draft"); err != nil {
		t.Fatalf("Log() unexpected error: %v", err)
	}

	result, err := svc.Ledger.Log("2025-04-01", "8", "final")
	if err != nil {
		t.Fatalf("Log() unexpected error: %v", err)
	}
	if result.Replaced == nil || !result.Replaced.Hours.Equal(decimal.NewFromInt(4)) {
		t.Errorf("Replaced = %v, expected the 4h entry", result.Replaced)
	}

	entries, err := svc.Ledger.All()
	if err != nil {
		t.Fatalf("All() unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, expected exactly 1 after replacement", len(entries))
	}
	if entries[0].Description != "final" {
		t.Errorf("surviving description = %q, expected %q", entries[0].Description, "final")
	}
}

func TestLedgerService_LogRelativeDate(t *testing.T) {
	svc := newTestServices(t)

	if _, err := svc.Ledger.Log("yesterday", "3", ""); err != nil {
		t.Fatalf("Log(yesterday) unexpected error: %v", err)
	}

	entries, err := svc.Ledger.All()
	if err != nil {
		t.Fatalf("All() unexpected error: %v", err)
	}
	expected := dateutil.Today().AddDays(-1)
	if len(entries) != 1 || entries[0].Date != expected {
		t.Errorf("entries = %v, expected one entry on %v", entries, expected)
	}
}

func TestLedgerService_LogInvalidInput(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.Ledger.Log("not-a-date", "8", "")
	var dateErr *dateutil.InvalidDateError
	if !errors.As(err, &dateErr) {
		t.Errorf("Log() with bad date error = %T, expected *dateutil.InvalidDateError", err)
	}

	_, err = svc.Ledger.Log("2025-04-01", "-2", "")
	var hoursErr *entry.InvalidHoursError
	if !errors.As(err, &hoursErr) {
		t.Errorf("Log() with bad hours error = %T, expected *entry.InvalidHoursError", err)
	}

	// Nothing must be persisted after failed logs.
	entries, err := svc.Ledger.All()
	if err != nil {
		t.Fatalf("All() unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("failed logs persisted %d entries, expected 0", len(entries))
	}
}

func TestLedgerService_EndToEndMonthSummary(t *testing.T) {
	svc := newTestServices(t)

	for _, date := range []string{"2025-04-01", "2025-04-02", "2025-04-03"} {
		if _, err := svc.Ledger.Log(date, "1", ""); err != nil {
			t.Fatalf("Log(%s) unexpected error: %v", date, err)
		}
	}

	summary, err := svc.Ledger.Summarize(dateutil.MonthOf(2025, time.April))
	if err != nil {
		t.Fatalf("Summarize() unexpected error: %v", err)
	}
	if !summary.TotalHours.Equal(decimal.NewFromInt(3)) {
		t.Errorf("TotalHours = %v, expected 3", summary.TotalHours)
	}
	if len(summary.Entries) != 3 {
		t.Fatalf("summary entries = %d, expected 3", len(summary.Entries))
	}

	ranged, err := svc.Ledger.EntriesInRange(
		dateutil.NewDate(2025, time.April, 1),
		dateutil.NewDate(2025, time.April, 3),
	)
	if err != nil {
		t.Fatalf("EntriesInRange() unexpected error: %v", err)
	}
	if len(ranged) != 3 {
		t.Fatalf("ranged entries = %d, expected 3", len(ranged))
	}
	for i := range ranged {
		if ranged[i].Date != summary.Entries[i].Date {
			t.Errorf("entry %d: range date %v != summary date %v", i, ranged[i].Date, summary.Entries[i].Date)
		}
	}
}

func TestLedgerService_EntriesInRangeInvalid(t *testing.T) {
	svc := newTestServices(t)

	start := dateutil.NewDate(2025, time.April, 2)
	_, err := svc.Ledger.EntriesInRange(start, start.AddDays(-1))

	var rangeErr *ledger.InvalidRangeError
	if !errors.As(err, &rangeErr) {
		t.Errorf("error = %T, expected *ledger.InvalidRangeError", err)
	}
}
