package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldosh/aldo/internal/cli"
	"github.com/aldosh/aldo/internal/dateutil"
	"github.com/aldosh/aldo/internal/service"
)

// invoiceCmd represents the invoice command
var invoiceCmd = &cobra.Command{
	Use:   "invoice [end-date|number]",
	Short: "Generate a PDF invoice",
	Long: `Generate a PDF invoice for the unbilled period.

Without an argument the invoice covers the day after the last confirmed
invoice (or the earliest logged entry) up to and including today. A date
argument replaces today as the end of the period.

Generating does not consume the invoice number: run it as often as you
like, the same number is offered until you confirm it. Pass a confirmed
invoice number (with or without the configured prefix) to re-render that
invoice unchanged.

Examples:
  aldo invoice -o april.pdf
  aldo invoice 2025-04-30 -o april.pdf
  aldo invoice INV-1000 -o copy.pdf`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		token := ""
		if len(args) > 0 {
			token = args[0]
		}
		output, _ := cmd.Flags().GetString("output")
		generateInvoice(token, output)
	},
}

func init() {
	rootCmd.AddCommand(invoiceCmd)
	invoiceCmd.Flags().StringP("output", "o", "invoice.pdf", "Path of the PDF to write")
}

// generateInvoice renders an invoice and reports the offered number
func generateInvoice(token, output string) {
	svc, err := newServices()
	if err != nil {
		failStoragePath(err)
		return
	}

	result, err := svc.Invoice.Generate(token, output)
	if err != nil {
		var dateErr *dateutil.InvalidDateError
		switch {
		case errors.Is(err, service.ErrNoBillableHours):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Log hours first with 'aldo log <date> <hours>'")
		case errors.As(err, &dateErr):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'\n", dateErr.Token)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use YYYY-MM-DD or today, tomorrow, yesterday, daybefore")
		default:
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to generate invoice")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	if result.Regenerated {
		_, _ = fmt.Fprintf(deps.Stdout, "Regenerated %s (%s to %s) at %s\n",
			result.FullNumber, result.Start, result.End, result.OutputPath)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Generated %s at %s\n", result.FullNumber, result.OutputPath)
	_, _ = fmt.Fprintf(deps.Stdout, "Period:  %s to %s (%d %s)\n",
		result.Start, result.End, result.EntryCount, pluralize("day", result.EntryCount))
	_, _ = fmt.Fprintf(deps.Stdout, "Hours:   %s\n", cli.FormatHours(result.TotalHours))
	_, _ = fmt.Fprintf(deps.Stdout, "Amount:  %s\n", result.Amount.StringFixed(2))
	_, _ = fmt.Fprintf(deps.Stdout, "Confirm with 'aldo confirm %d' once sent\n", result.Number)
}
