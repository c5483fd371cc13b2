package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/interview"
	"github.com/prepdeck/prepdeck/internal/projectconfig"
	"github.com/prepdeck/prepdeck/internal/transcript"
)

func newReplayCommand() *cobra.Command {
	var asTranscript bool

	cmd := &cobra.Command{
		Use:   "replay [log-file]",
		Short: "Replay a recorded interview session",
		Long: `Replay a recorded interview session from its event log.

Without arguments, lists the session logs found in the configured
sessions directory. With a log file argument, renders the session
timeline, or the projected transcript when --transcript is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				cfg, err := projectconfig.Load(".")
				if err != nil {
					return err
				}
				logs, err := interview.ListLogs(cfg.Sessions.Dir)
				if err != nil {
					return fmt.Errorf("listing session logs: %w", err)
				}
				if len(logs) == 0 {
					fmt.Fprintln(out, "No session logs found. Run 'prepdeck start' to record one.")
					return nil
				}
				for _, lf := range logs {
					fmt.Fprintf(out, "%s  %d events  %s\n", lf.ModTime.Format("2006-01-02 15:04"), lf.NumEvents, lf.Path) //nolint:errcheck
				}
				return nil
			}

			events, err := interview.ReadEvents(args[0])
			if err != nil {
				return err
			}

			if asTranscript {
				printEntries(out, transcript.Project(events))
				return nil
			}

			interview.RenderTimeline(out, events)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTranscript, "transcript", false, "Render the projected transcript instead of the timeline")

	return cmd
}
