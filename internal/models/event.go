package models

import "time"

// EventType identifies the kind of session event.
type EventType string

const (
	EventQuestionAsked    EventType = "question_asked"
	EventAnswerSubmitted  EventType = "answer_submitted"
	EventFeedbackReceived EventType = "feedback_received"
	EventSessionCompleted EventType = "session_completed"
)

// Event is a single timestamped occurrence in an interview session.
// Events are what the state machine emits and what the transcript
// projector folds into entries; they serialize to one NDJSON line each.
type Event struct {
	Timestamp   time.Time `json:"timestamp"`
	Type        EventType `json:"type"`
	QuestionID  int       `json:"question_id,omitempty"`
	Text        string    `json:"text,omitempty"`
	Score       float64   `json:"score,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

// QuestionAsked returns an event recording that a question was issued.
func QuestionAsked(ts time.Time, questionID int, text string) Event {
	return Event{Timestamp: ts, Type: EventQuestionAsked, QuestionID: questionID, Text: text}
}

// AnswerSubmitted returns an event recording the candidate's answer.
func AnswerSubmitted(ts time.Time, questionID int, text string) Event {
	return Event{Timestamp: ts, Type: EventAnswerSubmitted, QuestionID: questionID, Text: text}
}

// FeedbackReceived returns an event recording per-answer scoring.
func FeedbackReceived(ts time.Time, questionID int, text string, score float64, suggestions []string) Event {
	return Event{
		Timestamp:   ts,
		Type:        EventFeedbackReceived,
		QuestionID:  questionID,
		Text:        text,
		Score:       score,
		Suggestions: suggestions,
	}
}

// SessionCompleted returns the terminal event for a session.
func SessionCompleted(ts time.Time, notice string) Event {
	return Event{Timestamp: ts, Type: EventSessionCompleted, Text: notice}
}
