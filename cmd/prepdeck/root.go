package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepdeck",
		Short: "Prepdeck - practice job interviews from your terminal",
		Long: `Prepdeck is a command-line client for AI-scored mock interviews.

Create an interview from a job posting, answer questions one at a time,
and get per-answer scoring plus a final feedback report.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().String("server", "", "Interview service base URL (overrides config and PREPDECK_SERVER_URL)")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newNewCommand())
	cmd.AddCommand(newStartCommand())
	cmd.AddCommand(newHistoryCommand())
	cmd.AddCommand(newFeedbackCommand())
	cmd.AddCommand(newReplayCommand())
	cmd.AddCommand(newServeCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
