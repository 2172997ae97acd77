package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aldosh/aldo/internal/cli"
	"github.com/aldosh/aldo/internal/dateutil"
	"github.com/aldosh/aldo/internal/entry"
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log <date> <hours> [description...]",
	Short: "Log work hours for a day",
	Long: `Log work hours for a single day.

The date is YYYY-MM-DD or one of the aliases today, tomorrow, yesterday,
daybefore. Hours is a decimal between 0 (exclusive) and 24.

Logging a second time for the same date replaces the previous entry.

Examples:
  aldo log today 7.5 backend work
  aldo log 2025-04-01 8
  aldo log yesterday 3.25 "code review"`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		logEntry(args)
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}

// logEntry records hours for a day and reports what happened
func logEntry(args []string) {
	dateToken := args[0]
	hoursToken := args[1]
	description := strings.TrimSpace(strings.Join(args[2:], " "))

	svc, err := newServices()
	if err != nil {
		failStoragePath(err)
		return
	}

	result, err := svc.Ledger.Log(dateToken, hoursToken, description)
	if err != nil {
		var dateErr *dateutil.InvalidDateError
		var hoursErr *entry.InvalidHoursError
		switch {
		case errors.As(err, &dateErr):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'\n", dateErr.Token)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use YYYY-MM-DD or today, tomorrow, yesterday, daybefore")
		case errors.As(err, &hoursErr):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid hours '%s'\n", hoursErr.Input)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use a decimal between 0 and 24, like 7.5")
		default:
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to log hours")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	if result.Replaced != nil {
		_, _ = fmt.Fprintf(deps.Stdout, "Replaced %s on %s with %s\n",
			cli.FormatHours(result.Replaced.Hours),
			result.Logged.Date,
			cli.FormatHours(result.Logged.Hours))
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Logged %s on %s\n",
		cli.FormatHours(result.Logged.Hours), result.Logged.Date)
}

// failStoragePath reports a failure to resolve the data or config path
func failStoragePath(err error) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine storage location")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
	deps.Exit(1)
}
