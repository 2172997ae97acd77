package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as a spreadsheet",
	Long: `Export all logged hours as an xlsx workbook.

The workbook has an Entries sheet with one row per logged day and a
Monthly Totals sheet with per-month sums.

Examples:
  aldo export
  aldo export -o ~/reports/hours.xlsx`,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		exportLedger(output)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "ledger.xlsx", "Path of the workbook to write")
}

// exportLedger writes the full ledger to an xlsx workbook
func exportLedger(output string) {
	svc, err := newServices()
	if err != nil {
		failStoragePath(err)
		return
	}

	count, err := svc.Export.WriteXLSX(output)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to export the ledger")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the directory is writable: %s\n", output)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Exported %d %s to %s\n", count, pluralize("entry", count), output)
}
