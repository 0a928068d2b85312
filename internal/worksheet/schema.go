package worksheet

import "github.com/abhisek/wordiz/internal/llm"

// WorksheetSchema is the minimum shape a model response must have before
// it is mapped onto a Worksheet. Field-level defaults are applied later,
// so only structure is enforced here.
var WorksheetSchema = &llm.Schema{
	Name:        "english-worksheet",
	Description: "An English worksheet with title, instructions and questions",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"title", "instructions", "questions"},
		"properties": map[string]any{
			"title":        map[string]any{"type": "string", "minLength": 1},
			"instructions": map[string]any{"type": "string", "minLength": 1},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"type", "question"},
					"properties": map[string]any{
						"id":       map[string]any{"type": []any{"string", "integer", "number"}},
						"type":     map[string]any{"type": "string", "minLength": 1},
						"question": map[string]any{"type": "string", "minLength": 1},
						"options":  map[string]any{"type": "array"},
						"correctAnswer": map[string]any{
							"type": []any{"string", "array", "number", "boolean"},
						},
						"explanation": map[string]any{"type": "string"},
						"points":      map[string]any{"type": "number"},
					},
				},
			},
		},
	},
}
