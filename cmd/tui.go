package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldosh/aldo/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the ledger interactively",
	Long: `Open an interactive terminal browser over the ledger.

Navigate months with the arrow keys (or h/l), switch between the
entries list and the summary view with tab, and quit with q.`,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI() {
	svc, err := newServices()
	if err != nil {
		failStoragePath(err)
		return
	}

	if err := tui.Run(svc); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: TUI exited with an error")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
	}
}
