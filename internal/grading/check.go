// Package grading scores worksheet answers. Multiple-choice and
// fill-blank answers are checked locally; open answers are reviewed by
// the model with a keyword heuristic as the fallback.
package grading

import (
	"strings"
	"unicode"

	"github.com/abhisek/wordiz/internal/worksheet"
)

// Check compares a response against an auto-gradable question. ok is
// false for question types that need review.
func Check(q worksheet.Question, response string) (correct, ok bool) {
	switch q.Type {
	case worksheet.TypeMultipleChoice:
		return checkChoice(q, response), true
	case worksheet.TypeFillBlank:
		return checkBlank(q.CorrectAnswer, response), true
	}
	return false, false
}

func checkChoice(q worksheet.Question, response string) bool {
	response = strings.TrimSpace(response)
	if response == "" {
		return false
	}
	if strings.EqualFold(response, q.CorrectAnswer) {
		return true
	}
	if idx, ok := worksheet.OptionIndex(response); ok && idx < len(q.Options) {
		return q.Options[idx] == q.CorrectAnswer
	}
	return false
}

// checkBlank compares case- and space-insensitively. Comma-separated
// answers fill several blanks and must all match in order.
func checkBlank(want, got string) bool {
	wantParts := strings.Split(want, ",")
	gotParts := strings.Split(got, ",")
	if len(wantParts) != len(gotParts) {
		return normalize(want) != "" && normalize(want) == normalize(got)
	}
	for i := range wantParts {
		w := normalize(wantParts[i])
		if w == "" || w != normalize(gotParts[i]) {
			return false
		}
	}
	return true
}

// normalize lowercases, collapses whitespace and drops surrounding
// punctuation.
func normalize(s string) string {
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) && r != '\''
	})
}
