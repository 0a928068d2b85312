package grading

import "github.com/abhisek/wordiz/internal/llm"

// GradingSchema is the shape of a model review.
var GradingSchema = &llm.Schema{
	Name:        "worksheet-grading",
	Description: "Per-question grading of open worksheet answers",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"gradedAnswers"},
		"properties": map[string]any{
			"overallFeedback": map[string]any{"type": "string"},
			"gradedAnswers": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"questionId", "isCorrect"},
					"properties": map[string]any{
						"questionId":    map[string]any{"type": []any{"string", "integer"}},
						"isCorrect":     map[string]any{"type": "boolean"},
						"feedback":      map[string]any{"type": "string"},
						"partialCredit": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					},
				},
			},
			"score": map[string]any{"type": "number"},
		},
	},
}
