// Package transcript derives the renderable conversation history of an
// interview session from its event log. Projection is a pure fold:
// replaying the same event sequence always yields an identical
// transcript, and prior entries are never edited or removed.
package transcript

import "github.com/prepdeck/prepdeck/internal/models"

// Apply folds one event into a transcript, returning a new slice.
// The prior slice is never mutated; unknown event types produce no
// entry. Entry timestamps come from the event, not the clock, so the
// fold is deterministic.
func Apply(prior []models.Entry, ev models.Event) []models.Entry {
	entry, ok := entryFor(ev)
	if !ok {
		return prior
	}

	out := make([]models.Entry, len(prior), len(prior)+1)
	copy(out, prior)
	return append(out, entry)
}

// Project folds a whole event log into a transcript.
func Project(events []models.Event) []models.Entry {
	var entries []models.Entry
	for _, ev := range events {
		entries = Apply(entries, ev)
	}
	return entries
}

func entryFor(ev models.Event) (models.Entry, bool) {
	switch ev.Type {
	case models.EventQuestionAsked:
		return models.Entry{
			Kind:       models.EntryQuestion,
			Text:       ev.Text,
			QuestionID: ev.QuestionID,
			CreatedAt:  ev.Timestamp,
		}, true

	case models.EventAnswerSubmitted:
		return models.Entry{
			Kind:       models.EntryAnswer,
			Text:       ev.Text,
			QuestionID: ev.QuestionID,
			CreatedAt:  ev.Timestamp,
		}, true

	case models.EventFeedbackReceived:
		return models.Entry{
			Kind:        models.EntryFeedback,
			Text:        ev.Text,
			QuestionID:  ev.QuestionID,
			Score:       ev.Score,
			Suggestions: ev.Suggestions,
			CreatedAt:   ev.Timestamp,
		}, true

	case models.EventSessionCompleted:
		return models.Entry{
			Kind:      models.EntrySystemNotice,
			Text:      ev.Text,
			CreatedAt: ev.Timestamp,
		}, true
	}

	return models.Entry{}, false
}
