package models

import "time"

// Display status values for an interview summary, as reported by the
// history endpoint. The session state machine uses its own richer
// status set; these exist for display only.
const (
	InterviewCreated    = "created"
	InterviewInProgress = "in_progress"
	InterviewCompleted  = "completed"
)

// InterviewSummary is one row of the interview history listing.
type InterviewSummary struct {
	ID             int        `json:"id"`
	JobTitle       string     `json:"job_title"`
	JobDescription string     `json:"job_description"`
	Company        string     `json:"company,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// FeedbackItem is the per-question breakdown inside a feedback report.
type FeedbackItem struct {
	Question string  `json:"question"`
	Response string  `json:"response"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// FeedbackReport is the terminal, server-computed summary for a
// completed interview. It is fetched once and immutable thereafter.
type FeedbackReport struct {
	InterviewID      int            `json:"interview_id"`
	OverallScore     float64        `json:"overall_score"`
	FeedbackSummary  string         `json:"feedback_summary"`
	DetailedFeedback []FeedbackItem `json:"detailed_feedback"`
}
