package interview

import "github.com/prepdeck/prepdeck/internal/api"

// Advance is the completion gate's decision for one submit result:
// either the session terminates, or it continues with the next
// question.
type Advance struct {
	Complete       bool
	NextQuestionID int
	NextQuestion   string
}

// Resolve decides the single next status for a submit result.
// Completion wins over any next-question presence: a completed session
// is terminal and must never be reversed, so a response that sets both
// resolves to Complete. A response with neither completion nor a next
// question also resolves to Complete, since there is nothing left to
// ask.
func Resolve(res *api.RespondResult) Advance {
	if res.InterviewComplete {
		return Advance{Complete: true}
	}
	if res.NextQuestionID == 0 && res.NextQuestion == "" {
		return Advance{Complete: true}
	}
	return Advance{
		NextQuestionID: res.NextQuestionID,
		NextQuestion:   res.NextQuestion,
	}
}
