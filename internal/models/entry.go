package models

import "time"

// EntryKind identifies the kind of transcript entry.
type EntryKind string

const (
	EntryQuestion     EntryKind = "question"
	EntryAnswer       EntryKind = "answer"
	EntryFeedback     EntryKind = "feedback"
	EntrySystemNotice EntryKind = "system_notice"
)

// Entry is one unit of interview transcript. Entries are append-only:
// once added to a transcript they are never edited or reordered.
type Entry struct {
	Kind        EntryKind `json:"kind"`
	Text        string    `json:"text"`
	QuestionID  int       `json:"question_id,omitempty"`
	Score       float64   `json:"score,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
