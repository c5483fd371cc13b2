package api

// CreateInterviewRequest is the body for POST /interviews/create.
type CreateInterviewRequest struct {
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	Company        string `json:"company,omitempty"`
}

// StartResult is the response to POST /interviews/{id}/start.
type StartResult struct {
	QuestionID      int    `json:"question_id"`
	CurrentQuestion string `json:"current_question"`
}

type respondRequest struct {
	QuestionID   int    `json:"question_id"`
	ResponseText string `json:"response_text"`
}

// RespondResult is the response to POST /interviews/{id}/respond.
// When InterviewComplete is false, NextQuestionID and NextQuestion
// carry the following question; when true they are absent.
type RespondResult struct {
	Score             float64  `json:"score"`
	Feedback          string   `json:"feedback"`
	Suggestions       []string `json:"suggestions"`
	NextQuestionID    int      `json:"next_question_id,omitempty"`
	NextQuestion      string   `json:"next_question,omitempty"`
	InterviewComplete bool     `json:"interview_complete"`
}
