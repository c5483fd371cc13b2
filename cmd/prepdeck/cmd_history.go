package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/models"
)

func newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List your past and in-progress interviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newAPIClient(cmd)
			if err != nil {
				return err
			}

			history, err := client.GetHistory(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching history: %w", err)
			}

			renderHistory(cmd.OutOrStdout(), history)
			return nil
		},
	}

	return cmd
}

//nolint:errcheck // display-only writes; errors are not actionable
func renderHistory(out io.Writer, history []models.InterviewSummary) {
	if len(history) == 0 {
		fmt.Fprintln(out, "No interviews yet. Run 'prepdeck new' to create one.")
		return
	}

	headers := []string{"ID", "TITLE", "COMPANY", "STATUS", "CREATED", "COMPLETED"}
	rows := make([][]string, 0, len(history))
	for _, iv := range history {
		completed := "-"
		if iv.CompletedAt != nil {
			completed = iv.CompletedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			strconv.Itoa(iv.ID),
			iv.JobTitle,
			orDash(iv.Company),
			iv.Status,
			iv.CreatedAt.Format("2006-01-02 15:04"),
			completed,
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i, h := range headers {
		fmt.Fprint(out, padRight(h, widths[i]+2))
	}
	fmt.Fprintln(out)
	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprint(out, padRight(cell, widths[i]+2))
		}
		fmt.Fprintln(out)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
