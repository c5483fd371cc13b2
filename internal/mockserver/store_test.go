package mockserver

import (
	"errors"
	"strings"
	"testing"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/models"
)

func createInterview(t *testing.T, m *MemStore) *models.InterviewSummary {
	t.Helper()
	summary, err := m.Create(api.CreateInterviewRequest{
		JobTitle:       "Software Engineer",
		JobDescription: "Build and maintain services",
		Company:        "Acme",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return summary
}

func TestFullInterviewFlow(t *testing.T) {
	m := NewMemStore()
	summary := createInterview(t, m)
	if summary.Status != models.InterviewCreated {
		t.Errorf("Status = %q, want %q", summary.Status, models.InterviewCreated)
	}

	start, err := m.Start(summary.ID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if start.QuestionID == 0 || start.CurrentQuestion == "" {
		t.Fatalf("Start returned empty question: %+v", start)
	}

	qid := start.QuestionID
	answered := 0
	for {
		res, err := m.Respond(summary.ID, qid, "I shipped a project with a 40% latency win")
		if err != nil {
			t.Fatalf("Respond (answer %d): %v", answered, err)
		}
		answered++
		if res.Score < 0 || res.Score > 10 {
			t.Errorf("score %v out of range", res.Score)
		}
		if res.InterviewComplete {
			if res.NextQuestionID != 0 {
				t.Error("completed response should carry no next question")
			}
			break
		}
		if res.NextQuestionID == 0 || res.NextQuestion == "" {
			t.Fatalf("incomplete response missing next question: %+v", res)
		}
		qid = res.NextQuestionID
	}
	if answered != len(defaultQuestions) {
		t.Errorf("answered %d questions, want %d", answered, len(defaultQuestions))
	}

	report, err := m.Feedback(summary.ID)
	if err != nil {
		t.Fatalf("Feedback: %v", err)
	}
	if len(report.DetailedFeedback) != answered {
		t.Errorf("detailed feedback has %d items, want %d", len(report.DetailedFeedback), answered)
	}
	if report.OverallScore <= 0 || report.OverallScore > 10 {
		t.Errorf("overall score %v out of range", report.OverallScore)
	}
	if report.FeedbackSummary == "" {
		t.Error("feedback summary is empty")
	}

	history, err := m.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history has %d rows, want 1", len(history))
	}
	if history[0].Status != models.InterviewCompleted {
		t.Errorf("history status = %q, want %q", history[0].Status, models.InterviewCompleted)
	}
	if history[0].CompletedAt == nil {
		t.Error("CompletedAt should be set after completion")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	m := NewMemStore()
	summary := createInterview(t, m)

	first, err := m.Start(summary.ID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	second, err := m.Start(summary.ID)
	if err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if *first != *second {
		t.Errorf("retried start returned a different question: %+v vs %+v", first, second)
	}
}

func TestRespondErrors(t *testing.T) {
	m := NewMemStore()
	summary := createInterview(t, m)

	if _, err := m.Respond(summary.ID, 1, "answer"); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("respond before start: err = %v, want ErrNotInProgress", err)
	}

	start, err := m.Start(summary.ID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := m.Respond(summary.ID, start.QuestionID+99, "answer"); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("wrong question: err = %v, want ErrQuestionNotFound", err)
	}
	if _, err := m.Respond(999, start.QuestionID, "answer"); !errors.Is(err, ErrInterviewNotFound) {
		t.Errorf("unknown interview: err = %v, want ErrInterviewNotFound", err)
	}
}

func TestFeedbackBeforeCompletion(t *testing.T) {
	m := NewMemStore()
	summary := createInterview(t, m)

	if _, err := m.Feedback(summary.ID); !errors.Is(err, ErrNotCompleted) {
		t.Errorf("err = %v, want ErrNotCompleted", err)
	}
	if _, err := m.Feedback(999); !errors.Is(err, ErrInterviewNotFound) {
		t.Errorf("err = %v, want ErrInterviewNotFound", err)
	}
}

func TestScoreAnswerDeterministic(t *testing.T) {
	answer := "I led a migration across 3 teams and cut costs by 25%"
	s1, f1, _ := scoreAnswer(answer)
	s2, f2, _ := scoreAnswer(answer)
	if s1 != s2 || f1 != f2 {
		t.Error("scoring the same answer twice gave different results")
	}

	short, _, _ := scoreAnswer("yes")
	long, _, _ := scoreAnswer(strings.Repeat("detail ", 40) + "with 2 concrete numbers")
	if short >= long {
		t.Errorf("short answer (%v) should score below a detailed one (%v)", short, long)
	}
	if long > 10 {
		t.Errorf("score %v exceeds the cap", long)
	}
}
