package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/models"
)

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcde", padRight("abcde", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 5))

	// wide runes count by display width, not byte or rune count
	assert.Equal(t, "日本  ", padRight("日本", 6))
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", orDash(""))
	assert.Equal(t, "Acme", orDash("Acme"))
}

func TestRenderHistoryEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	renderHistory(out, nil)
	assert.Contains(t, out.String(), "No interviews yet")
}

func TestRenderHistoryTable(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	completed := created.Add(45 * time.Minute)

	out := &bytes.Buffer{}
	renderHistory(out, []models.InterviewSummary{
		{ID: 2, JobTitle: "Staff Engineer", Company: "Acme", Status: models.InterviewCompleted, CreatedAt: created, CompletedAt: &completed},
		{ID: 1, JobTitle: "SRE", Status: models.InterviewInProgress, CreatedAt: created},
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "COMPLETED")
	assert.Contains(t, lines[1], "Staff Engineer")
	assert.Contains(t, lines[1], "2026-03-14 10:15")
	assert.Contains(t, lines[2], "SRE")

	// missing company and completion render as a dash
	assert.Contains(t, lines[2], "-")

	// columns line up: STATUS starts at the same offset in every row
	col := strings.Index(lines[0], "STATUS")
	require.Positive(t, col)
	assert.Equal(t, models.InterviewCompleted, lines[1][col:col+len(models.InterviewCompleted)])
}

func TestRenderReport(t *testing.T) {
	out := &bytes.Buffer{}
	renderReport(out, &models.FeedbackReport{
		InterviewID:     7,
		OverallScore:    8.25,
		FeedbackSummary: "Excellent performance.",
		DetailedFeedback: []models.FeedbackItem{
			{Question: "Tell me about yourself.", Response: "I build Go services.", Score: 9, Feedback: "Strong answer."},
			{Question: "Why this role?", Response: "Growth.", Score: 7.5, Feedback: "Add specifics."},
		},
	})

	got := out.String()
	assert.Contains(t, got, "Interview 7: overall score 8.2/10")
	assert.Contains(t, got, "Excellent performance.")
	assert.Contains(t, got, "1. Tell me about yourself.")
	assert.Contains(t, got, "Score: 9.0/10")
	assert.Contains(t, got, "2. Why this role?")
	assert.Contains(t, got, "Add specifics.")
}

func TestPrintEntries(t *testing.T) {
	out := &bytes.Buffer{}
	printEntries(out, []models.Entry{
		{Kind: models.EntryQuestion, Text: "First question?", QuestionID: 1},
		{Kind: models.EntryAnswer, Text: "My answer.", QuestionID: 1},
		{Kind: models.EntryFeedback, Text: "Solid.", QuestionID: 1, Score: 7, Suggestions: []string{"Add numbers."}},
		{Kind: models.EntrySystemNotice, Text: "Interview complete."},
	})

	got := out.String()
	assert.Contains(t, got, "❓ First question?")
	assert.Contains(t, got, "💬 My answer.")
	assert.Contains(t, got, "📝 Feedback (7.0/10): Solid.")
	assert.Contains(t, got, "• Add numbers.")
	assert.Contains(t, got, "🏁 Interview complete.")
}
