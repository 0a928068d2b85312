package grading

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordiz/internal/llm"
	"github.com/abhisek/wordiz/internal/worksheet"
)

func testWorksheet() *worksheet.Worksheet {
	return &worksheet.Worksheet{
		Title: "Nouns",
		Questions: []worksheet.Question{
			{ID: "1", Type: worksheet.TypeMultipleChoice, Prompt: "Which is a noun?", Options: []string{"run", "dog", "blue"}, CorrectAnswer: "dog", Points: 2},
			{ID: "2", Type: worksheet.TypeFillBlank, Prompt: "The ___ sat on the ___.", CorrectAnswer: "cat, mat", Points: 2},
			{ID: "3", Type: worksheet.TypeShortAnswer, Prompt: "What is a noun?", CorrectAnswer: "A noun names a person, place or thing.", Points: 5},
			{ID: "4", Type: worksheet.TypeEssay, Prompt: "Describe your favourite place.", CorrectAnswer: "Uses vivid nouns and adjectives", Points: 10},
		},
	}
}

func TestCheck(t *testing.T) {
	ws := testWorksheet()
	mc, fb := ws.Questions[0], ws.Questions[1]

	tests := []struct {
		name     string
		q        worksheet.Question
		response string
		want     bool
	}{
		{"mc exact", mc, "dog", true},
		{"mc case", mc, " DOG ", true},
		{"mc letter", mc, "B", true},
		{"mc wrong letter", mc, "a", false},
		{"mc wrong", mc, "run", false},
		{"mc empty", mc, "", false},
		{"blank exact", fb, "cat, mat", true},
		{"blank spacing and case", fb, "Cat ,  MAT.", true},
		{"blank order matters", fb, "mat, cat", false},
		{"blank missing part", fb, "cat", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Check(tt.q, tt.response)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := Check(ws.Questions[2], "anything")
	assert.False(t, ok, "short answers are not auto-gradable")
}

func TestGrade_ModelReview(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(`Here is the grading:
{
  overallFeedback: 'Nice work on nouns.',
  gradedAnswers: [
    {questionId: '3', isCorrect: true, feedback: 'Clear definition.', partialCredit: 1},
    {questionId: 4, isCorrect: false, feedback: 'Add more detail.', partialCredit: 0.5},
  ],
  score: 80,
}`))
	g := NewGrader(mock)

	res, err := g.Grade(context.Background(), testWorksheet(), map[string]string{
		"1": "B",
		"2": "cat, hat",
		"3": "A naming word for a person, place or thing.",
		"4": "My favourite place is the beach.",
	}, worksheet.DifficultyMedium)
	require.NoError(t, err)

	assert.True(t, res.Reviewed)
	assert.Equal(t, "Nice work on nouns.", res.OverallFeedback)
	assert.Equal(t, 19, res.TotalPoints)
	assert.InDelta(t, 2+0+5+5, res.EarnedPoints, 0.001)
	assert.Equal(t, 63, res.Score)
	assert.Equal(t, 4, res.Answered)
	assert.Equal(t, 2, res.Correct)

	q2, _ := res.Question("2")
	assert.False(t, q2.Correct)
	assert.Contains(t, q2.Feedback, "cat, mat")

	q4, _ := res.Question("4")
	assert.Equal(t, 0.5, q4.Credit)
	assert.Equal(t, "Add more detail.", q4.Feedback)

	call, ok := mock.LastCall()
	require.True(t, ok)
	prompt := call.Messages[0].Content
	assert.Contains(t, prompt, "moderately strict")
	assert.Contains(t, prompt, `"questionId": "3"`)
	assert.NotContains(t, prompt, `"questionId": "1"`, "auto-graded questions are not sent for review")
}

func TestGrade_LenientPromptForEasy(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(`{"gradedAnswers": []}`))
	_, err := NewGrader(mock).Grade(context.Background(), testWorksheet(), map[string]string{"3": "words"}, worksheet.DifficultyEasy)
	require.NoError(t, err)

	call, _ := mock.LastCall()
	assert.Contains(t, call.Messages[0].Content, "more lenient")
}

func TestGrade_FallsBackToHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		provider llm.Provider
	}{
		{"no provider", nil},
		{"provider error", llm.NewMockProvider(llm.MockError(&llm.ErrProviderUnavailable{StatusCode: 500}))},
		{"unparseable review", llm.NewMockProvider(llm.MockText("I am unable to grade this."))},
		{"wrong shape", llm.NewMockProvider(llm.MockText(`{"score": 50}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g *Grader
			if tt.provider == nil {
				g = NewGrader(nil)
			} else {
				g = NewGrader(tt.provider)
			}

			res, err := g.Grade(context.Background(), testWorksheet(), map[string]string{
				"1": "dog",
				"3": "A noun names a person, place or thing.",
			}, worksheet.DifficultyMedium)
			require.NoError(t, err)

			assert.False(t, res.Reviewed)
			assert.True(t, strings.HasSuffix(res.OverallFeedback, ReviewUnavailable))

			q3, _ := res.Question("3")
			assert.True(t, q3.Correct)
			assert.True(t, q3.NeedsReview)

			q4, _ := res.Question("4")
			assert.Equal(t, "No answer provided.", q4.Feedback)
			assert.Zero(t, q4.Earned)
		})
	}
}

func TestGrade_NoOpenAnswersSkipsModel(t *testing.T) {
	mock := llm.NewMockProvider()
	res, err := NewGrader(mock).Grade(context.Background(), testWorksheet(), map[string]string{"1": "dog", "2": "cat, mat"}, worksheet.DifficultyHard)
	require.NoError(t, err)

	assert.Equal(t, 0, mock.CallCount())
	assert.True(t, res.Reviewed)
	assert.Equal(t, 2, res.Answered)
	assert.Equal(t, 21, res.Score) // 4 of 19 points
	assert.Equal(t, "You scored 21% (2 of 4 questions correct).", res.OverallFeedback)
}

func TestGrade_NilWorksheet(t *testing.T) {
	_, err := NewGrader(nil).Grade(context.Background(), nil, nil, worksheet.DifficultyEasy)
	assert.Error(t, err)
}

func TestHeuristic(t *testing.T) {
	short := worksheet.Question{ID: "s", Type: worksheet.TypeShortAnswer, CorrectAnswer: "Plants need sunlight water and soil", Points: 5}

	full := heuristic(short, "They need sunlight, water and good soil.", worksheet.DifficultyMedium)
	assert.True(t, full.Correct)
	assert.InDelta(t, 4, full.Earned, 0.001) // 4 of 5 key terms

	partial := heuristic(short, "Plants need water.", worksheet.DifficultyMedium)
	assert.False(t, partial.Correct)
	assert.Contains(t, partial.Feedback, "Consider including")

	lenient := heuristic(short, "Plants need water.", worksheet.DifficultyEasy)
	assert.True(t, lenient.Correct, "easy passes at half the key terms")

	essay := worksheet.Question{ID: "e", Type: worksheet.TypeEssay, Points: 10}
	shortEssay := heuristic(essay, "My thesis has evidence.", worksheet.DifficultyMedium)
	assert.Contains(t, shortEssay.Feedback, "too short")
	assert.InDelta(t, 0.25, shortEssay.Credit, 0.001)
}

func TestKeyTerms(t *testing.T) {
	assert.Equal(t, []string{"noun", "names", "person", "place", "thing"}, keyTerms("A noun names a person, place or thing. The noun!"))
}
