package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aldo",
	Short: "A work hours ledger and invoice generator",
	Long: `aldo tracks billable work hours and turns them into PDF invoices.

Usage:
  aldo log <date> <hours> [description]    Log hours for a day (replaces any existing entry)
  aldo summary day [date]                  Show hours for a single day
  aldo summary month [YYYY-MM]             Show hours for a month
  aldo summary year [YYYY]                 Show hours for a year
  aldo invoice [end-date] -o out.pdf       Generate an invoice for the unbilled period
  aldo invoice <number> -o out.pdf         Regenerate a confirmed invoice
  aldo confirm <number> [date]             Mark a generated invoice as sent
  aldo export [-o ledger.xlsx]             Export the ledger as a spreadsheet
  aldo config init|show|path               Manage configuration
  aldo tui                                 Browse the ledger interactively

Dates accept YYYY-MM-DD or the aliases today, tomorrow, yesterday and daybefore.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"aldo version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
