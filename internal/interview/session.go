// Package interview owns the state of one active mock-interview
// conversation. The Session state machine sequences the interview:
// fetch the first question, submit answers, fold scoring results into
// the transcript, and detect completion. A Session is owned by exactly
// one caller, is never shared between goroutines, and is discarded
// (not reused) when its conversation ends.
package interview

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/transcript"
)

// Status is the lifecycle state of a session. Transitions are monotonic
// except AwaitingAnswer and Submitting, which cycle once per turn.
type Status string

const (
	StatusNotStarted     Status = "not_started"
	StatusAwaitingAnswer Status = "awaiting_answer"
	StatusSubmitting     Status = "submitting"
	StatusCompleted      Status = "completed"
)

// DisplayStatus maps a session status onto the coarser set used by the
// history listing.
func (s Status) DisplayStatus() string {
	switch s {
	case StatusNotStarted:
		return models.InterviewCreated
	case StatusCompleted:
		return models.InterviewCompleted
	default:
		return models.InterviewInProgress
	}
}

// Transport is the remote surface a session depends on. *api.Client
// satisfies it; tests substitute stubs.
type Transport interface {
	StartInterview(ctx context.Context, id int) (*api.StartResult, error)
	SubmitAnswer(ctx context.Context, id, questionID int, text string) (*api.RespondResult, error)
}

const completionNotice = "Interview complete! You've answered every question. " +
	"Your detailed feedback report is ready."

// Session is the authoritative in-memory state of one interview
// conversation.
type Session struct {
	id        int
	transport Transport
	sink      EventSink
	now       func() time.Time

	status            Status
	currentQuestionID int
	entries           []models.Entry
	events            []models.Event
	lastAt            time.Time
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithEventSink directs session events to sink, typically an NDJSON
// logger. The default sink discards events.
func WithEventSink(sink EventSink) SessionOption {
	return func(s *Session) { s.sink = sink }
}

// WithClock replaces the timestamp source. Tests use this for
// deterministic entry timestamps.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// NewSession creates a session for an already-created interview,
// identified by id. The session starts in NotStarted; call Start to
// fetch the first question.
func NewSession(id int, t Transport, opts ...SessionOption) *Session {
	s := &Session{
		id:        id,
		transport: t,
		sink:      NopSink{},
		now:       func() time.Time { return time.Now().UTC() },
		status:    StatusNotStarted,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the interview identifier this session was created for.
func (s *Session) ID() int { return s.id }

// Status returns the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// CurrentQuestionID returns the question awaiting an answer. ok is
// false when no question is active (before start and after
// completion).
func (s *Session) CurrentQuestionID() (id int, ok bool) {
	return s.currentQuestionID, s.currentQuestionID != 0
}

// Transcript returns a copy of the full transcript so far. The
// returned slice is the caller's to keep; the session's own entries
// are never mutated after append.
func (s *Session) Transcript() []models.Entry {
	out := make([]models.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Events returns a copy of the session's event log.
func (s *Session) Events() []models.Event {
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Start fetches the first question and moves the session to
// AwaitingAnswer. On transport failure the session stays NotStarted
// and Start may be called again. Returns the transcript entries this
// call appended.
func (s *Session) Start(ctx context.Context) ([]models.Entry, error) {
	if s.status != StatusNotStarted {
		return nil, &InvalidStateError{Op: "start", State: s.status}
	}

	res, err := s.transport.StartInterview(ctx, s.id)
	if err != nil {
		return nil, err
	}

	s.status = StatusAwaitingAnswer
	s.currentQuestionID = res.QuestionID
	s.emit(models.QuestionAsked(s.tick(), res.QuestionID, res.CurrentQuestion))
	return s.tail(1), nil
}

// SubmitResult is what an accepted, successful submit returns.
type SubmitResult struct {
	Status   Status
	Entries  []models.Entry // entries appended by this turn, in order
	Score    float64
	Complete bool
}

// Submit sends the candidate's answer to the current question.
//
// The answer entry is appended to the transcript as soon as the submit
// is accepted, before the remote call returns, so the answer always
// precedes its feedback in the transcript. Exactly one remote call is
// made per accepted submit, and the Submitting state rejects a second
// in-flight submit for the same question.
//
// On transport failure the session returns to AwaitingAnswer with the
// same current question, so the caller can safely re-invoke Submit
// with the same text; no retry happens here.
func (s *Session) Submit(ctx context.Context, text string) (*SubmitResult, error) {
	switch s.status {
	case StatusAwaitingAnswer:
	default:
		return nil, &InvalidStateError{Op: "submit", State: s.status}
	}

	answer := strings.TrimSpace(text)
	if answer == "" {
		return nil, &ValidationError{Reason: "response text is empty"}
	}
	if s.currentQuestionID == 0 {
		return nil, &InvalidStateError{Op: "submit", State: s.status}
	}

	qid := s.currentQuestionID
	s.status = StatusSubmitting
	before := len(s.entries)
	s.emit(models.AnswerSubmitted(s.tick(), qid, answer))

	res, err := s.transport.SubmitAnswer(ctx, s.id, qid, answer)
	if err != nil {
		// The unanswered question is re-offered; the optimistic answer
		// entry stays and the caller decides how to flag the failure.
		s.status = StatusAwaitingAnswer
		return nil, err
	}

	s.emit(models.FeedbackReceived(s.tick(), qid, res.Feedback, res.Score, res.Suggestions))

	adv := Resolve(res)
	if adv.Complete {
		s.currentQuestionID = 0
		s.status = StatusCompleted
		s.emit(models.SessionCompleted(s.tick(), completionNotice))
	} else {
		s.currentQuestionID = adv.NextQuestionID
		s.status = StatusAwaitingAnswer
		s.emit(models.QuestionAsked(s.tick(), adv.NextQuestionID, adv.NextQuestion))
	}

	return &SubmitResult{
		Status:   s.status,
		Entries:  s.tail(len(s.entries) - before),
		Score:    res.Score,
		Complete: adv.Complete,
	}, nil
}

// Close releases the session's event sink. The session itself is
// simply discarded afterwards; a closed session accepts no further
// transitions only by virtue of its owner dropping it.
func (s *Session) Close() error {
	return s.sink.Close()
}

// emit records an event, folds it into the transcript, and forwards it
// to the sink. Sink failures never affect session state.
func (s *Session) emit(ev models.Event) {
	s.events = append(s.events, ev)
	s.entries = transcript.Apply(s.entries, ev)
	if err := s.sink.Log(ev); err != nil {
		slog.Debug("session event sink failed", "type", ev.Type, "error", err)
	}
}

// tick returns a timestamp strictly after every previous one, so entry
// order and timestamp order always agree even within one turn.
func (s *Session) tick() time.Time {
	t := s.now()
	if !t.After(s.lastAt) {
		t = s.lastAt.Add(time.Nanosecond)
	}
	s.lastAt = t
	return t
}

// tail copies the final n transcript entries.
func (s *Session) tail(n int) []models.Entry {
	out := make([]models.Entry, n)
	copy(out, s.entries[len(s.entries)-n:])
	return out
}
