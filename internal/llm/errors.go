package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrConfig indicates the provider cannot be used because required
// configuration (usually the API key) is missing. No request is sent.
type ErrConfig struct {
	Provider string
	Setting  string
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("%s provider: %s is not configured", e.Provider, e.Setting)
}

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the upstream envelope or the generated
// content does not have the expected shape.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, unreachable or
// answered with a non-success status.
type ErrProviderUnavailable struct {
	StatusCode int
	Err        error
}

func (e *ErrProviderUnavailable) Error() string {
	switch {
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("LLM provider unavailable (status %d): %v", e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// Retryable reports whether another attempt could succeed. Only
// configuration problems are permanent. Callers check their own context
// separately, since a per-call deadline is worth retrying.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	var cfgErr *ErrConfig
	return !errors.As(err, &cfgErr)
}
