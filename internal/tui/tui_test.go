package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aldosh/aldo/internal/config"
	"github.com/aldosh/aldo/internal/service"
	"github.com/aldosh/aldo/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	dir := t.TempDir()
	svc := service.NewServicesWithPaths(
		filepath.Join(dir, storage.DataFile),
		filepath.Join(dir, config.ConfigFile),
	)
	if _, err := svc.Ledger.Log("2025-04-01", "7.5", "backend work"); err != nil {
		t.Fatalf("seeding ledger: %v", err)
	}
	if _, err := svc.Ledger.Log("2025-04-02", "4", ""); err != nil {
		t.Fatalf("seeding ledger: %v", err)
	}

	m := New(svc)
	m.year, m.month = 2025, time.April
	return m
}

func loadModel(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.load()()
	loaded, ok := msg.(ledgerLoadedMsg)
	if !ok {
		t.Fatalf("load() produced %T, expected ledgerLoadedMsg", msg)
	}
	if loaded.err != nil {
		t.Fatalf("load() error: %v", loaded.err)
	}
	updated, _ := m.Update(loaded)
	return updated.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel_LoadsMonthSummary(t *testing.T) {
	m := loadModel(t, newTestModel(t))

	if len(m.summary.Entries) != 2 {
		t.Fatalf("loaded entries = %d, expected 2", len(m.summary.Entries))
	}
	if m.summary.TotalHours.String() != "11.5" {
		t.Errorf("TotalHours = %s, expected 11.5", m.summary.TotalHours)
	}

	view := m.View()
	for _, want := range []string{"April 2025", "2025-04-01", "7.5h", "backend work", "Total: 11.5h"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_MonthNavigation(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(keyMsg("left"))
	m = updated.(Model)
	if m.year != 2025 || m.month != time.March {
		t.Errorf("after left: %d %s, expected 2025 March", m.year, m.month)
	}
	if cmd == nil {
		t.Error("month change should trigger a reload")
	}

	updated, _ = m.Update(keyMsg("right"))
	m = updated.(Model)
	if m.month != time.April {
		t.Errorf("after right: %s, expected April", m.month)
	}
}

func TestModel_MonthNavigationAcrossYears(t *testing.T) {
	year, month := prevMonth(2025, time.January)
	if year != 2024 || month != time.December {
		t.Errorf("prevMonth(2025, January) = %d %s, expected 2024 December", year, month)
	}

	year, month = nextMonth(2024, time.December)
	if year != 2025 || month != time.January {
		t.Errorf("nextMonth(2024, December) = %d %s, expected 2025 January", year, month)
	}
}

func TestModel_TabSwitchShowsTotals(t *testing.T) {
	m := loadModel(t, newTestModel(t))

	updated, _ := m.Update(keyMsg("tab"))
	m = updated.(Model)
	if m.activeTab != TabTotals {
		t.Fatalf("activeTab = %v, expected TabTotals", m.activeTab)
	}

	view := m.View()
	if !strings.Contains(view, "Hours per month") || !strings.Contains(view, "2025-04") {
		t.Errorf("totals view missing expected content:\n%s", view)
	}
	if !strings.Contains(view, "(2 days)") {
		t.Errorf("totals view missing day count:\n%s", view)
	}

	updated, _ = m.Update(keyMsg("tab"))
	m = updated.(Model)
	if m.activeTab != TabEntries {
		t.Errorf("activeTab after second tab = %v, expected TabEntries", m.activeTab)
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q produced %T, expected tea.QuitMsg", cmd())
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := loadModel(t, newTestModel(t))

	short := m.View()
	updated, _ := m.Update(keyMsg("?"))
	m = updated.(Model)
	full := m.View()

	if !strings.Contains(full, "prev month") {
		t.Error("expanded help missing month navigation binding")
	}
	if strings.Contains(short, "prev month") {
		t.Error("collapsed help should not list month navigation")
	}
}
