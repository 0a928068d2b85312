package worksheet

import "time"

// RetryConfig is the attempt budget and backoff schedule.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	Multiplier  float64
}

// Backoff returns the wait after the given failed attempt (1-based):
// InitialWait × Multiplier^(attempt−1).
func (r RetryConfig) Backoff(attempt int) time.Duration {
	wait := float64(r.InitialWait)
	for i := 1; i < attempt; i++ {
		wait *= r.Multiplier
	}
	return time.Duration(wait)
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every parsed question; the first failure
	// rejects the attempt.
	Validators []Validator

	// MaxTokens is the output token ceiling for the model.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	Retry RetryConfig

	// Question count and time limit bounds applied before prompting.
	MinQuestions     int
	MaxQuestions     int
	MinTimeLimit     int
	MaxTimeLimit     int
	DefaultTimeLimit int

	// CacheTTL is used when the generator builds its own cache.
	CacheTTL time.Duration
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&TypeWhitelistValidator{},
			&StructuralValidator{},
		},
		MaxTokens:   8192,
		Temperature: 0.7,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			Multiplier:  2,
		},
		MinQuestions:     5,
		MaxQuestions:     20,
		MinTimeLimit:     5,
		MaxTimeLimit:     60,
		DefaultTimeLimit: 15,
		CacheTTL:         5 * time.Minute,
	}
}

// clamp applies the question count and time limit bounds.
func (c Config) clamp(req Request) Request {
	req.QuestionCount = clampInt(req.QuestionCount, c.MinQuestions, c.MaxQuestions)
	if req.TimeLimitMinutes <= 0 {
		req.TimeLimitMinutes = c.DefaultTimeLimit
	}
	req.TimeLimitMinutes = clampInt(req.TimeLimitMinutes, c.MinTimeLimit, c.MaxTimeLimit)
	return req
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
