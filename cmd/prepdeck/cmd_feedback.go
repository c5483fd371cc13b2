package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/models"
)

func newFeedbackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback <interview-id>",
		Short: "Show the feedback report for a completed interview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid interview id %q", args[0])
			}

			client, _, err := newAPIClient(cmd)
			if err != nil {
				return err
			}

			report, err := client.GetFeedback(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("fetching feedback for interview %d: %w", id, err)
			}

			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	return cmd
}

//nolint:errcheck // display-only writes; errors are not actionable
func renderReport(out io.Writer, report *models.FeedbackReport) {
	fmt.Fprintf(out, "Interview %d: overall score %.1f/10\n\n", report.InterviewID, report.OverallScore)
	fmt.Fprintln(out, report.FeedbackSummary)

	for i, item := range report.DetailedFeedback {
		fmt.Fprintf(out, "\n%d. %s\n", i+1, item.Question)
		fmt.Fprintf(out, "   Your answer: %s\n", item.Response)
		fmt.Fprintf(out, "   Score: %.1f/10\n", item.Score)
		fmt.Fprintf(out, "   %s\n", item.Feedback)
	}
}
