// Package mockserver is an in-process implementation of the interview
// service wire contract, with canned questions and a deterministic
// scorer. It backs `prepdeck serve` for offline use and serves as the
// httptest backend in tests.
package mockserver

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/models"
)

var (
	// ErrInterviewNotFound is returned when an interview ID matches nothing.
	ErrInterviewNotFound = errors.New("interview not found")
	// ErrQuestionNotFound is returned when a question ID does not belong
	// to the interview.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrNotInProgress is returned for a respond call against an
	// interview that is not accepting answers.
	ErrNotInProgress = errors.New("interview is not in progress")
	// ErrNotCompleted is returned for a feedback call before completion.
	ErrNotCompleted = errors.New("interview is not completed")
)

// InterviewStore provides the state behind the HTTP handlers.
type InterviewStore interface {
	Create(req api.CreateInterviewRequest) (*models.InterviewSummary, error)
	Start(id int) (*api.StartResult, error)
	Respond(id, questionID int, text string) (*api.RespondResult, error)
	Feedback(id int) (*models.FeedbackReport, error)
	History() ([]models.InterviewSummary, error)
}

var defaultQuestions = []string{
	"Tell me about yourself and your background.",
	"Why are you interested in this role?",
	"Describe a challenging project you worked on and how you handled it.",
	"Tell me about a time you disagreed with a teammate. How did you resolve it?",
	"Where do you see yourself in five years?",
}

type question struct {
	id   int
	text string
}

type answer struct {
	questionID int
	question   string
	text       string
	score      float64
	feedback   string
}

type interviewState struct {
	summary   models.InterviewSummary
	questions []question
	answers   []answer
	nextIdx   int
}

// MemStore holds interviews in memory. Safe for concurrent handlers.
type MemStore struct {
	mu         sync.Mutex
	interviews map[int]*interviewState
	nextID     int
	nextQID    int
	now        func() time.Time
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		interviews: make(map[int]*interviewState),
		nextID:     1,
		nextQID:    1,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create registers a new interview with the default question set.
func (m *MemStore) Create(req api.CreateInterviewRequest) (*models.InterviewSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := &interviewState{
		summary: models.InterviewSummary{
			ID:             m.nextID,
			JobTitle:       req.JobTitle,
			JobDescription: req.JobDescription,
			Company:        req.Company,
			Status:         models.InterviewCreated,
			CreatedAt:      m.now(),
		},
	}
	m.nextID++

	for _, text := range defaultQuestions {
		st.questions = append(st.questions, question{id: m.nextQID, text: text})
		m.nextQID++
	}

	m.interviews[st.summary.ID] = st
	out := st.summary
	return &out, nil
}

// Start marks the interview in progress and returns its first question.
// Starting an already-started interview returns the current question
// again, so start is idempotent on retry.
func (m *MemStore) Start(id int) (*api.StartResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.interviews[id]
	if !ok {
		return nil, ErrInterviewNotFound
	}
	if st.summary.Status == models.InterviewCompleted {
		return nil, ErrNotInProgress
	}

	st.summary.Status = models.InterviewInProgress
	q := st.questions[st.nextIdx]
	return &api.StartResult{QuestionID: q.id, CurrentQuestion: q.text}, nil
}

// Respond scores an answer and advances to the next question, or
// completes the interview when the question set is exhausted.
func (m *MemStore) Respond(id, questionID int, text string) (*api.RespondResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.interviews[id]
	if !ok {
		return nil, ErrInterviewNotFound
	}
	if st.summary.Status != models.InterviewInProgress {
		return nil, ErrNotInProgress
	}

	cur := st.questions[st.nextIdx]
	if cur.id != questionID {
		return nil, ErrQuestionNotFound
	}

	score, feedback, suggestions := scoreAnswer(text)
	st.answers = append(st.answers, answer{
		questionID: cur.id,
		question:   cur.text,
		text:       text,
		score:      score,
		feedback:   feedback,
	})
	st.nextIdx++

	res := &api.RespondResult{
		Score:       score,
		Feedback:    feedback,
		Suggestions: suggestions,
	}

	if st.nextIdx >= len(st.questions) {
		st.summary.Status = models.InterviewCompleted
		completed := m.now()
		st.summary.CompletedAt = &completed
		res.InterviewComplete = true
		return res, nil
	}

	next := st.questions[st.nextIdx]
	res.NextQuestionID = next.id
	res.NextQuestion = next.text
	return res, nil
}

// Feedback builds the terminal report for a completed interview.
func (m *MemStore) Feedback(id int) (*models.FeedbackReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.interviews[id]
	if !ok {
		return nil, ErrInterviewNotFound
	}
	if st.summary.Status != models.InterviewCompleted {
		return nil, ErrNotCompleted
	}

	report := &models.FeedbackReport{InterviewID: id}
	var total float64
	for _, a := range st.answers {
		total += a.score
		report.DetailedFeedback = append(report.DetailedFeedback, models.FeedbackItem{
			Question: a.question,
			Response: a.text,
			Score:    a.score,
			Feedback: a.feedback,
		})
	}
	if len(st.answers) > 0 {
		report.OverallScore = total / float64(len(st.answers))
	}
	report.FeedbackSummary = summaryFor(report.OverallScore)
	return report, nil
}

// History lists all interviews, newest first.
func (m *MemStore) History() ([]models.InterviewSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.InterviewSummary, 0, len(m.interviews))
	for _, st := range m.interviews {
		out = append(out, st.summary)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
