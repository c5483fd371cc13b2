package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/interview"
	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/spinner"
)

func newStartCommand() *cobra.Command {
	var noSessionLog bool

	cmd := &cobra.Command{
		Use:   "start <interview-id>",
		Short: "Start an interview and answer its questions interactively",
		Long: `Start an interview and answer its questions interactively.

Each answer is sent to the scoring service; feedback and the next
question appear as soon as scoring finishes. When the last question is
answered, run 'prepdeck feedback <id>' for the full report.

Type /quit to leave the session early. A failed submission never loses
your place: the same question is offered again and pressing Enter
resubmits the same answer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid interview id %q", args[0])
			}

			client, cfg, err := newAPIClient(cmd)
			if err != nil {
				return err
			}

			var sink interview.EventSink = interview.NopSink{}
			if !noSessionLog && cfg.Sessions.Log != nil && *cfg.Sessions.Log {
				logger, err := interview.NewJSONLogger(interview.DefaultLogPath(cfg.Sessions.Dir, id))
				if err != nil {
					slog.Warn("session log disabled", "error", err)
				} else {
					sink = logger
					slog.Debug("session log enabled", "path", logger.Path())
				}
			}

			return runInterview(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), client, id, sink)
		},
	}

	cmd.Flags().BoolVar(&noSessionLog, "no-session-log", false, "Do not write a session event log")

	return cmd
}

// runInterview drives one interview session over the given transport
// until completion, early exit, or input exhaustion.
func runInterview(ctx context.Context, in io.Reader, out io.Writer, t interview.Transport, id int, sink interview.EventSink) error {
	s := interview.NewSession(id, t, interview.WithEventSink(sink))
	defer s.Close() //nolint:errcheck

	sp := spinner.Start(out, "Contacting the interviewer...")
	entries, err := s.Start(ctx)
	sp.Stop()
	if err != nil {
		return fmt.Errorf("starting interview %d: %w", id, err)
	}

	fmt.Fprintln(out, "Welcome to your mock interview! Answer each question as you would in person.")
	printEntries(out, entries)

	reader := bufio.NewReader(in)
	var pending string // last unscored answer, offered again after a failed submit

	for s.Status() == interview.StatusAwaitingAnswer {
		fmt.Fprint(out, "\nYou: ")
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("reading answer: %w", readErr)
		}

		text := strings.TrimSpace(line)
		if text == "" && pending != "" {
			text = pending
		}
		if text == "" {
			if readErr == io.EOF {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Session closed. Start again anytime; your place is kept on the server.")
				return nil
			}
			fmt.Fprintln(out, "An answer cannot be empty.")
			continue
		}
		if text == "/quit" {
			fmt.Fprintln(out, "Leaving the interview. Start again anytime; your place is kept on the server.")
			return nil
		}

		sp := spinner.Start(out, "Scoring your answer...")
		res, err := s.Submit(ctx, text)
		sp.Stop()
		if err != nil {
			if readErr == io.EOF {
				return err
			}
			pending = text
			fmt.Fprintf(out, "Could not score your answer: %v\n", err)
			fmt.Fprintln(out, "Press Enter to resubmit the same answer, or type a new one.")
			continue
		}
		pending = ""

		// Skip the echoed answer entry; the candidate just typed it.
		printEntries(out, res.Entries[1:])

		if res.Complete {
			fmt.Fprintf(out, "\nRun 'prepdeck feedback %d' to see your full report.\n", id)
			return nil
		}
		if readErr == io.EOF {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "No more input. Session closed; your place is kept on the server.")
			return nil
		}
	}

	return nil
}

// printEntries renders transcript entries for the terminal.
//
//nolint:errcheck // display-only writes; errors are not actionable
func printEntries(out io.Writer, entries []models.Entry) {
	for _, e := range entries {
		switch e.Kind {
		case models.EntryQuestion:
			fmt.Fprintf(out, "\n❓ %s\n", e.Text)
		case models.EntryAnswer:
			fmt.Fprintf(out, "\n💬 %s\n", e.Text)
		case models.EntryFeedback:
			fmt.Fprintf(out, "\n📝 Feedback (%.1f/10): %s\n", e.Score, e.Text)
			for _, s := range e.Suggestions {
				fmt.Fprintf(out, "   • %s\n", s)
			}
		case models.EntrySystemNotice:
			fmt.Fprintf(out, "\n🏁 %s\n", e.Text)
		}
	}
}
