package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldosh/aldo/internal/cli"
)

// configCmd represents the config parent command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage the aldo configuration file.

The file holds your business and client details, the hourly rate and
the invoice counter. Missing keys fall back to built-in defaults.

Examples:
  aldo config init    Write a commented sample config
  aldo config show    Print the effective configuration
  aldo config path    Print the config file location`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented sample config file",
	Run: func(cmd *cobra.Command, args []string) {
		configInit()
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		configShow()
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		configPath()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func configInit() {
	svc, err := newServices()
	if err != nil {
		failStoragePath(err)
		return
	}

	if err := svc.Config.Init(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to create config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Edit the existing file instead, see 'aldo config path'")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created %s\n", svc.Config.GetPath())
	_, _ = fmt.Fprintln(deps.Stdout, "Edit it to fill in your business, client and payment details")
}

func configShow() {
	svc, err := newServices()
	if err != nil {
		failStoragePath(err)
		return
	}

	cfg, err := svc.Config.Get()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check the file for syntax errors: %s\n", svc.Config.GetPath())
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprint(deps.Stdout, cli.FormatConfig(cfg))
}

func configPath() {
	svc, err := newServices()
	if err != nil {
		failStoragePath(err)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, svc.Config.GetPath())
}
