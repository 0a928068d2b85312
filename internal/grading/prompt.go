package grading

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/wordiz/internal/worksheet"
)

type reviewItem struct {
	QuestionID    string                 `json:"questionId"`
	Type          worksheet.QuestionType `json:"type"`
	Question      string                 `json:"question"`
	CorrectAnswer string                 `json:"correctAnswer"`
	UserAnswer    string                 `json:"userAnswer"`
}

func strictness(d worksheet.Difficulty) string {
	switch d {
	case worksheet.DifficultyEasy:
		return "more lenient"
	case worksheet.DifficultyHard:
		return "very strict"
	default:
		return "moderately strict"
	}
}

func buildPrompt(items []reviewItem, d worksheet.Difficulty) string {
	body, _ := json.MarshalIndent(items, "", "  ")

	var b strings.Builder
	b.WriteString("Grade the following student answers for an English worksheet.\n")
	fmt.Fprintf(&b, "The difficulty level of this worksheet is %s.\n\n", d)
	b.WriteString("Here are the questions and student answers in JSON format:\n")
	b.Write(body)
	b.WriteString("\n\nEvaluate each answer on content, accuracy and completeness. ")
	b.WriteString(`For short-answer questions "correctAnswer" is a sample answer; for essay questions it is the evaluation criteria.`)
	b.WriteString("\n\nReturn ONLY a JSON object with this structure:\n")
	b.WriteString(`{
  "overallFeedback": "General feedback about the student's performance",
  "gradedAnswers": [
    {
      "questionId": "question id",
      "isCorrect": true,
      "feedback": "Specific feedback for this answer",
      "partialCredit": 0.75
    }
  ],
  "score": 85
}`)
	fmt.Fprintf(&b, "\n\npartialCredit is between 0 and 1. For %s difficulty, be %s in your grading.\n", d, strictness(d))
	return b.String()
}
