package worksheet

import "fmt"

// Validator checks a parsed question before the worksheet is accepted.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g.
	// "type-whitelist".
	Name() string

	// Validate checks the question against the request it was generated
	// for and returns nil if it passes.
	Validate(q *Question, req Request) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// validate runs validators over every question, stopping at the first
// failure.
func validate(ws *Worksheet, req Request, validators []Validator) *ValidationError {
	for i := range ws.Questions {
		for _, v := range validators {
			if verr := v.Validate(&ws.Questions[i], req); verr != nil {
				return verr
			}
		}
	}
	return nil
}
