package mockserver

import (
	"strings"
	"unicode"
)

// scoreAnswer grades an answer deterministically so test runs and
// offline demos are reproducible. Longer, more concrete answers score
// higher: the base score grows with word count and gets a bump when the
// answer cites numbers.
func scoreAnswer(text string) (score float64, feedback string, suggestions []string) {
	words := len(strings.Fields(text))

	score = 4.0
	bonus := float64(words) / 15.0
	if bonus > 4.0 {
		bonus = 4.0
	}
	score += bonus
	if containsDigit(text) {
		score += 1.0
	}
	if score > 10.0 {
		score = 10.0
	}

	switch {
	case score >= 8.0:
		feedback = "Strong answer with good detail and concrete evidence."
		suggestions = []string{"Tighten the opening so the key point lands first."}
	case score >= 6.0:
		feedback = "Solid answer, but it would benefit from more specifics."
		suggestions = []string{
			"Add measurable outcomes to back up your claims.",
			"Structure the answer as situation, action, result.",
		}
	default:
		feedback = "The answer is too brief to assess your experience."
		suggestions = []string{
			"Expand with a concrete example from your own work.",
			"Quantify the impact where you can.",
		}
	}
	return score, feedback, suggestions
}

func summaryFor(overall float64) string {
	switch {
	case overall >= 8.0:
		return "Excellent performance. Your answers were specific and well structured; with minor polish you are interview-ready."
	case overall >= 6.0:
		return "Good performance overall. Focus on backing your answers with measurable results to reach the next level."
	default:
		return "There is room to grow. Practice expanding your answers with concrete examples and quantified outcomes."
	}
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
