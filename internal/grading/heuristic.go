package grading

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/abhisek/wordiz/internal/worksheet"
)

// MinEssayWords is the length below which an essay loses half its credit.
const MinEssayWords = 50

var defaultEssayTerms = []string{"thesis", "evidence", "analysis", "conclusion"}

var stopWords = map[string]bool{
	"the": true, "and": true, "that": true, "this": true, "with": true,
	"from": true, "have": true, "they": true, "their": true, "there": true,
	"what": true, "when": true, "which": true, "will": true, "would": true,
	"about": true, "into": true, "your": true, "been": true, "were": true,
	"should": true, "could": true, "also": true, "than": true, "then": true,
}

// passRatio is the share of key terms an open answer needs to count as
// correct.
func passRatio(d worksheet.Difficulty) float64 {
	switch d {
	case worksheet.DifficultyEasy:
		return 0.5
	case worksheet.DifficultyHard:
		return 0.8
	default:
		return 0.7
	}
}

// keyTerms pulls the significant words out of a sample answer or rubric.
func keyTerms(text string) []string {
	seen := map[string]bool{}
	var out []string
	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	}) {
		if len(w) <= 3 || stopWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

func overlap(terms []string, response string) float64 {
	if len(terms) == 0 {
		return 0
	}
	lower := strings.ToLower(response)
	matched := 0
	for _, t := range terms {
		if strings.Contains(lower, t) {
			matched++
		}
	}
	return float64(matched) / float64(len(terms))
}

// heuristic scores an open answer by keyword overlap with the sample
// answer or rubric.
func heuristic(q worksheet.Question, response string, d worksheet.Difficulty) QuestionResult {
	r := QuestionResult{
		QuestionID:  q.ID,
		Response:    response,
		Points:      q.Points,
		NeedsReview: true,
	}
	if strings.TrimSpace(response) == "" {
		r.Feedback = "No answer provided."
		return r
	}

	terms := keyTerms(q.CorrectAnswer)
	if q.Type == worksheet.TypeEssay && len(terms) == 0 {
		terms = defaultEssayTerms
	}
	if len(terms) == 0 {
		// Nothing to compare against; credit a genuine attempt.
		r.Credit = 0.5
		r.Feedback = "Your answer was recorded for review."
		r.settle(passRatio(d))
		return r
	}

	ratio := overlap(terms, response)
	r.Credit = ratio

	if q.Type == worksheet.TypeEssay {
		words := len(strings.Fields(response))
		switch {
		case words < MinEssayWords:
			r.Credit = ratio / 2
			r.Feedback = fmt.Sprintf("Your essay is too short (%d words). A good response should be at least %d words.", words, MinEssayWords)
		case ratio > 0.7:
			r.Feedback = "Your essay addresses most of the key points expected in a strong response. Good work!"
		case ratio > 0.4:
			r.Feedback = "Your essay addresses some key concepts but could be more comprehensive."
		default:
			r.Feedback = "Your essay is missing many important elements."
		}
		r.settle(passRatio(d))
		return r
	}

	r.settle(passRatio(d))
	if r.Correct {
		r.Feedback = "Your answer contains key elements. Good job!"
	} else {
		r.Feedback = "Your answer is missing some key elements. Consider including: " + strings.Join(terms, ", ")
	}
	return r
}
