package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aldosh/aldo/internal/cli"
	"github.com/aldosh/aldo/internal/dateutil"
	"github.com/aldosh/aldo/internal/ledger"
)

// summaryCmd represents the summary parent command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize logged hours over a window",
	Long: `Summarize logged hours over a day, month or year.

Examples:
  aldo summary day                 Today's hours
  aldo summary day yesterday       A single day by alias
  aldo summary day 2025-04-03      A single day by date
  aldo summary month               The current month
  aldo summary month 2025-04       A specific month
  aldo summary year                The current year
  aldo summary year 2024           A specific year`,
}

// summaryDayCmd represents the summary day command
var summaryDayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show hours for a single day",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		date := dateutil.Today()
		if len(args) > 0 {
			var err error
			date, err = dateutil.Resolve(args[0], dateutil.Today())
			if err != nil {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'\n", args[0])
				_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use YYYY-MM-DD or today, tomorrow, yesterday, daybefore")
				deps.Exit(1)
				return
			}
		}
		showSummary(dateutil.Day(date))
	},
}

// summaryMonthCmd represents the summary month command
var summaryMonthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "Show hours for a month",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		today := dateutil.Today()
		window := dateutil.MonthOf(today.Year, today.Month)
		if len(args) > 0 {
			parsed, err := time.Parse("2006-01", args[0])
			if err != nil {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid month '%s'\n", args[0])
				_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use YYYY-MM, like 2025-04")
				deps.Exit(1)
				return
			}
			window = dateutil.MonthOf(parsed.Year(), parsed.Month())
		}
		showSummary(window)
	},
}

// summaryYearCmd represents the summary year command
var summaryYearCmd = &cobra.Command{
	Use:   "year [YYYY]",
	Short: "Show hours for a year",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		year := dateutil.Today().Year
		if len(args) > 0 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil || parsed < 1 {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid year '%s'\n", args[0])
				_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use a four digit year, like 2025")
				deps.Exit(1)
				return
			}
			year = parsed
		}
		showSummary(dateutil.YearOf(year))
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.AddCommand(summaryDayCmd)
	summaryCmd.AddCommand(summaryMonthCmd)
	summaryCmd.AddCommand(summaryYearCmd)
}

// showSummary renders entries and the total for a window
func showSummary(window dateutil.Window) {
	svc, err := newServices()
	if err != nil {
		failStoragePath(err)
		return
	}

	summary, err := svc.Ledger.Summarize(window)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read the ledger")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(summary.Entries) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No hours logged for %s\n", window)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Hours for %s:\n", window)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for _, e := range summary.Entries {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatEntry(e))
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s over %d %s\n",
		cli.FormatHours(summary.TotalHours),
		len(summary.Entries),
		pluralize("day", len(summary.Entries)))

	if window.Kind == dateutil.WindowYear {
		showMonthlyBreakdown(summary)
	}
}

// showMonthlyBreakdown prints per-month totals under a year summary
func showMonthlyBreakdown(summary ledger.Summary) {
	l := ledger.FromEntries(summary.Entries)
	totals := l.MonthlyTotals()
	if len(totals) < 2 {
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout)
	for _, mt := range totals {
		_, _ = fmt.Fprintf(deps.Stdout, "  %04d-%02d  %s\n", mt.Year, mt.Month, cli.FormatHours(mt.TotalHours))
	}
}

// pluralize returns the singular or plural form of a word based on count
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
