package worksheet

import "fmt"

// TypeWhitelistValidator rejects questions whose type was not requested.
type TypeWhitelistValidator struct{}

func (v *TypeWhitelistValidator) Name() string { return "type-whitelist" }

func (v *TypeWhitelistValidator) Validate(q *Question, req Request) *ValidationError {
	for _, t := range req.AllowedTypes() {
		if q.Type == t {
			return nil
		}
	}
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("question %s has type %q, allowed: %s", q.ID, q.Type, joinTypes(req.AllowedTypes())),
		Retryable: true,
	}
}

// StructuralValidator checks required text fields and length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ Request) *ValidationError {
	if q.Prompt == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("question %s has no text", q.ID),
			Retryable: true,
		}
	}
	if len(q.Prompt) > 2000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("question %s exceeds 2000 characters", q.ID),
			Retryable: true,
		}
	}
	if q.Type == TypeFillBlank && q.CorrectAnswer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("fill-blank question %s has no answer", q.ID),
			Retryable: true,
		}
	}
	return nil
}
