package worksheet

import "context"

// Generator produces English worksheets.
type Generator interface {
	// Generate returns a validated worksheet for req. When every attempt
	// fails it returns a fallback worksheet (Fallback set) and a nil
	// error; only configuration problems are returned as errors.
	Generate(ctx context.Context, req Request) (*Worksheet, error)
}
