package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newNewCommand() *cobra.Command {
	var jobTitle, company, jobDescription string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new mock interview from a job posting",
		Long: `Create a new mock interview from a job posting.

Without flags, an interactive form collects the job title, company, and
job description. The service generates interview questions from the
posting; run 'prepdeck start <id>' afterwards to begin answering.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobTitle == "" || jobDescription == "" {
				collected, err := runNewInterviewForm(cmd.InOrStdin(), cmd.OutOrStdout(), jobTitle, company, jobDescription)
				if err != nil {
					return err
				}
				jobTitle, company, jobDescription = collected.title, collected.company, collected.description
			}

			client, _, err := newAPIClient(cmd)
			if err != nil {
				return err
			}

			summary, err := client.CreateInterview(cmd.Context(), jobTitle, jobDescription, company)
			if err != nil {
				return fmt.Errorf("creating interview: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created interview %d for %q", summary.ID, summary.JobTitle)
			if summary.Company != "" {
				fmt.Fprintf(out, " at %s", summary.Company)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Run 'prepdeck start %d' to begin.\n", summary.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&jobTitle, "title", "", "Job title (skips the form when set with --description)")
	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.Flags().StringVar(&jobDescription, "description", "", "Job description text")

	return cmd
}

type newInterviewFields struct {
	title       string
	company     string
	description string
}

// runNewInterviewForm collects the job posting interactively.
func runNewInterviewForm(in io.Reader, out io.Writer, title, company, description string) (*newInterviewFields, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Job title").
				Placeholder("Senior Software Engineer").
				Value(&title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("job title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Company").
				Description("Optional").
				Placeholder("Acme Corp").
				Value(&company),
			huh.NewText().
				Title("Job description").
				Description("Paste the posting; questions are generated from it").
				Value(&description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("job description is required")
					}
					return nil
				}),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("interview form failed: %w", err)
	}

	return &newInterviewFields{
		title:       strings.TrimSpace(title),
		company:     strings.TrimSpace(company),
		description: strings.TrimSpace(description),
	}, nil
}
