package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for passguard.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passguard",
		Short: "Check password strength and generate random passwords",
		Long: `passguard checks passwords against a list of known weak passwords and
simple pattern heuristics (too short, digits only, single case, low
character diversity), and generates random passwords from configurable
character classes.

Settings are read from .passguard (current or home directory) or
$XDG_CONFIG_HOME/passguard/config.yaml, then from PASSGUARD_* environment
variables, and finally from command line flags.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .passguard in current or home directory)")
	cmd.PersistentFlags().String("log-format", "text", "Log format on stderr (text, json)")

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
