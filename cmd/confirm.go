package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldosh/aldo/internal/dateutil"
	"github.com/aldosh/aldo/internal/invoice"
)

// confirmCmd represents the confirm command
var confirmCmd = &cobra.Command{
	Use:   "confirm <number> [date]",
	Short: "Mark a generated invoice as sent",
	Long: `Mark a generated invoice as sent, advancing the invoice counter.

The number must be the one offered by the latest 'aldo invoice' run.
The optional date records when the invoice was sent (default today).

Examples:
  aldo confirm 1000
  aldo confirm INV-1000 2025-05-01`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		dateToken := ""
		if len(args) > 1 {
			dateToken = args[1]
		}
		confirmInvoice(args[0], dateToken)
	},
}

func init() {
	rootCmd.AddCommand(confirmCmd)
}

// confirmInvoice commits an offered invoice number
func confirmInvoice(numberToken, dateToken string) {
	svc, err := newServices()
	if err != nil {
		failStoragePath(err)
		return
	}

	result, err := svc.Invoice.Confirm(numberToken, dateToken)
	if err != nil {
		var staleErr *invoice.StaleNumberError
		var dateErr *dateutil.InvalidDateError
		switch {
		case errors.As(err, &staleErr):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invoice number %d is stale, the counter is at %d\n",
				staleErr.Expected, staleErr.Next)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Generate a fresh invoice with 'aldo invoice'")
		case errors.As(err, &dateErr):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'\n", dateErr.Token)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use YYYY-MM-DD or today, tomorrow, yesterday, daybefore")
		default:
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to confirm invoice")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Generate the invoice first with 'aldo invoice'")
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Confirmed %s on %s\n", result.FullNumber, result.ConfirmedOn)
	_, _ = fmt.Fprintf(deps.Stdout, "Next invoice number: %d\n", result.NextNumber)
	_, _ = fmt.Fprintf(deps.Stdout, "Next period starts:  %s\n", result.NextStart)
}
