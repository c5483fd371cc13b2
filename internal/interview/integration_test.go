package interview_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/interview"
	"github.com/prepdeck/prepdeck/internal/mockserver"
	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/transcript"
)

// TestFullSessionAgainstMockServer drives a session over a real HTTP
// client against the in-process server, all the way to completion, and
// checks that the event log replays to the same transcript the session
// built live.
func TestFullSessionAgainstMockServer(t *testing.T) {
	mux := http.NewServeMux()
	mockserver.RegisterRoutes(mux, mockserver.NewMemStore())
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	client := api.NewClient(srv.URL)

	summary, err := client.CreateInterview(ctx, "Backend Engineer", "Design and run Go services", "Acme")
	if err != nil {
		t.Fatalf("CreateInterview: %v", err)
	}

	logPath := filepath.Join(t.TempDir(), "session.jsonl")
	sink, err := interview.NewJSONLogger(logPath)
	if err != nil {
		t.Fatalf("NewJSONLogger: %v", err)
	}

	s := interview.NewSession(summary.ID, client, interview.WithEventSink(sink))
	defer s.Close() //nolint:errcheck

	if _, err := s.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	answers := 0
	for s.Status() == interview.StatusAwaitingAnswer {
		res, err := s.Submit(ctx, "I debugged a 3am outage and wrote the postmortem that fixed the class of bug")
		if err != nil {
			t.Fatalf("Submit (answer %d): %v", answers, err)
		}
		answers++
		if answers > 20 {
			t.Fatal("session never completed")
		}
		if res.Complete != (s.Status() == interview.StatusCompleted) {
			t.Errorf("result Complete=%v disagrees with status %q", res.Complete, s.Status())
		}
	}

	if s.Status() != interview.StatusCompleted {
		t.Fatalf("final status = %q, want %q", s.Status(), interview.StatusCompleted)
	}

	// report is available once the session completed
	report, err := client.GetFeedback(ctx, summary.ID)
	if err != nil {
		t.Fatalf("GetFeedback: %v", err)
	}
	if len(report.DetailedFeedback) != answers {
		t.Errorf("report covers %d answers, want %d", len(report.DetailedFeedback), answers)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// the logged events replay to the live transcript
	logged, err := interview.ReadEvents(logPath)
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	replayed := transcript.Project(logged)
	live := s.Transcript()
	if len(replayed) != len(live) {
		t.Fatalf("replayed %d entries, live %d", len(replayed), len(live))
	}
	for i := range live {
		if replayed[i].Kind != live[i].Kind || replayed[i].Text != live[i].Text {
			t.Errorf("entry %d differs: replayed %+v, live %+v", i, replayed[i], live[i])
		}
	}

	last := live[len(live)-1]
	if last.Kind != models.EntrySystemNotice {
		t.Errorf("transcript should end with a completion notice, got %q", last.Kind)
	}
}
