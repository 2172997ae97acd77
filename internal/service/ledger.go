package service

import (
	"fmt"

	"github.com/aldosh/aldo/internal/dateutil"
	"github.com/aldosh/aldo/internal/entry"
	"github.com/aldosh/aldo/internal/ledger"
	"github.com/aldosh/aldo/internal/storage"
)

// LogResult describes the outcome of logging hours.
type LogResult struct {
	Logged   entry.HourEntry
	Replaced *entry.HourEntry
}

// LedgerService provides operations over the hours ledger.
type LedgerService struct {
	dataPath string
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(dataPath string) *LedgerService {
	return &LedgerService{dataPath: dataPath}
}

// Log records hours for a date given raw user tokens. The entry is
// durably written before the call returns; a same-date entry is
// replaced and reported back in the result.
func (s *LedgerService) Log(dateToken, hoursToken, description string) (LogResult, error) {
	date, err := dateutil.Resolve(dateToken, dateutil.Today())
	if err != nil {
		return LogResult{}, err
	}

	hours, err := entry.ParseHours(hoursToken)
	if err != nil {
		return LogResult{}, err
	}

	data, err := storage.LoadData(s.dataPath)
	if err != nil {
		return LogResult{}, err
	}

	l := ledger.FromEntries(data.Entries)
	logged, replaced, err := l.Log(date, hours, description)
	if err != nil {
		return LogResult{}, err
	}

	data.Entries = l.All()
	if err := storage.SaveData(s.dataPath, data); err != nil {
		return LogResult{}, fmt.Errorf("failed to save ledger: %w", err)
	}
	l.ClearDirty()

	return LogResult{Logged: logged, Replaced: replaced}, nil
}

// Summarize aggregates the ledger over a day, month or year window.
func (s *LedgerService) Summarize(w dateutil.Window) (ledger.Summary, error) {
	l, err := s.load()
	if err != nil {
		return ledger.Summary{}, err
	}
	return l.Summarize(w)
}

// EntriesInRange returns the entries within the inclusive date range.
func (s *LedgerService) EntriesInRange(start, end dateutil.Date) ([]entry.HourEntry, error) {
	l, err := s.load()
	if err != nil {
		return nil, err
	}
	return l.EntriesInRange(start, end)
}

// All returns every ledger entry in date order.
func (s *LedgerService) All() ([]entry.HourEntry, error) {
	l, err := s.load()
	if err != nil {
		return nil, err
	}
	return l.All(), nil
}

func (s *LedgerService) load() (*ledger.Ledger, error) {
	data, err := storage.LoadData(s.dataPath)
	if err != nil {
		return nil, err
	}
	return ledger.FromEntries(data.Entries), nil
}
