// Package tui provides a read-only terminal browser over the ledger:
// a per-month entries list and a monthly totals view, navigable by
// keyboard.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aldosh/aldo/internal/cli"
	"github.com/aldosh/aldo/internal/dateutil"
	"github.com/aldosh/aldo/internal/ledger"
	"github.com/aldosh/aldo/internal/service"
)

// Tab represents a view tab
type Tab int

const (
	TabEntries Tab = iota
	TabTotals
)

var tabNames = []string{"Entries", "Monthly Totals"}

// ledgerLoadedMsg carries freshly loaded ledger data into the model
type ledgerLoadedMsg struct {
	summary ledger.Summary
	totals  []ledger.MonthTotal
	err     error
}

// Model is the root TUI model
type Model struct {
	services *service.Services

	activeTab Tab
	year      int
	month     time.Month
	width     int
	height    int
	showHelp  bool

	summary ledger.Summary
	totals  []ledger.MonthTotal
	loadErr error

	styles Styles
	keys   KeyMap
}

// New creates a new TUI model positioned on the current month
func New(services *service.Services) Model {
	today := dateutil.Today()
	return Model{
		services: services,
		year:     today.Year,
		month:    today.Month,
		styles:   DefaultStyles(),
		keys:     DefaultKeyMap(),
	}
}

// Run starts the TUI and blocks until it exits
func Run(services *service.Services) error {
	_, err := tea.NewProgram(New(services), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.load()
}

// load reads the current month's summary and the all-time monthly
// totals from the service layer
func (m Model) load() tea.Cmd {
	window := dateutil.MonthOf(m.year, m.month)
	svc := m.services
	return func() tea.Msg {
		summary, err := svc.Ledger.Summarize(window)
		if err != nil {
			return ledgerLoadedMsg{err: err}
		}
		entries, err := svc.Ledger.All()
		if err != nil {
			return ledgerLoadedMsg{err: err}
		}
		return ledgerLoadedMsg{
			summary: summary,
			totals:  ledger.FromEntries(entries).MonthlyTotals(),
		}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, nil

		case key.Matches(msg, m.keys.PrevMonth):
			m.year, m.month = prevMonth(m.year, m.month)
			return m, m.load()

		case key.Matches(msg, m.keys.NextMonth):
			m.year, m.month = nextMonth(m.year, m.month)
			return m, m.load()

		case key.Matches(msg, m.keys.Today):
			today := dateutil.Today()
			m.year, m.month = today.Year, today.Month
			return m, m.load()

		case key.Matches(msg, m.keys.Refresh):
			return m, m.load()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ledgerLoadedMsg:
		m.loadErr = msg.err
		if msg.err == nil {
			m.summary = msg.summary
			m.totals = msg.totals
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.loadErr != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Failed to read the ledger: %v", m.loadErr)))
		b.WriteString("\n")
	} else {
		switch m.activeTab {
		case TabEntries:
			b.WriteString(m.renderEntries())
		case TabTotals:
			b.WriteString(m.renderTotals())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return m.styles.App.Render(b.String())
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return strings.Join(tabs, "|")
}

func (m Model) renderEntries() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(fmt.Sprintf("%s %d", m.month, m.year)))
	b.WriteString("\n")

	if len(m.summary.Entries) == 0 {
		b.WriteString(m.styles.Empty.Render("No hours logged this month"))
		b.WriteString("\n")
		return b.String()
	}

	for _, e := range m.summary.Entries {
		b.WriteString(m.styles.EntryDate.Render(e.Date.String()))
		b.WriteString("  ")
		b.WriteString(m.styles.EntryHours.Render(fmt.Sprintf("%6s", cli.FormatHours(e.Hours))))
		if e.Description != "" {
			b.WriteString("  ")
			b.WriteString(m.styles.EntryDesc.Render(e.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Total.Render(fmt.Sprintf("Total: %s over %d days",
		cli.FormatHours(m.summary.TotalHours), len(m.summary.Entries))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTotals() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Hours per month"))
	b.WriteString("\n")

	if len(m.totals) == 0 {
		b.WriteString(m.styles.Empty.Render("The ledger is empty"))
		b.WriteString("\n")
		return b.String()
	}

	for _, mt := range m.totals {
		b.WriteString(m.styles.EntryDate.Render(fmt.Sprintf("%04d-%02d", mt.Year, mt.Month)))
		b.WriteString("  ")
		b.WriteString(m.styles.EntryHours.Render(fmt.Sprintf("%8s", cli.FormatHours(mt.TotalHours))))
		b.WriteString(m.styles.EntryDesc.Render(fmt.Sprintf("  (%d days)", mt.Days)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderHelp() string {
	bindings := []key.Binding{m.keys.NextTab, m.keys.Quit}
	if m.showHelp {
		bindings = []key.Binding{
			m.keys.PrevMonth, m.keys.NextMonth, m.keys.Today,
			m.keys.NextTab, m.keys.Refresh, m.keys.Help, m.keys.Quit,
		}
	}

	var parts []string
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.styles.HelpKey.Render(h.Key)+" "+m.styles.HelpDesc.Render(h.Desc))
	}
	if !m.showHelp {
		parts = append(parts, m.styles.HelpDesc.Render("? more"))
	}
	return strings.Join(parts, "  ")
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
