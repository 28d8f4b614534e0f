package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rewire",
		Short: "Connectivity-preserving social graph rewiring simulator",
		Long: `rewire simulates agents that follow recommendations and drop weak ties
on a weighted directed social graph, round after round, without ever
disconnecting it.

Settings come from defaults, then --config, then REWIRE_* environment
variables, then command-line flags.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAlgorithmsCmd(),
		newRunCmd(),
		newCompareCmd(),
	)

	return rootCmd
}
