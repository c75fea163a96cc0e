// Package main provides the entry point for the coverpoint CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coverpoint/coverpoint/cmd/coverpoint/commands"
	"github.com/coverpoint/coverpoint/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coverpoint",
		Short: "Coverpoint - ball-by-ball cricket match replay",
		Long: `Coverpoint replays cricsheet ball-by-ball match feeds into full
scorecards, bowling figures, partnerships and match summaries.

Commands:
  replay    Replay match feeds and print scorecards
  validate  Check match feeds against the schema
  export    Replay one match and persist the result`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewReplayCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "coverpoint %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
