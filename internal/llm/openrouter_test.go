package llm

import (
	"errors"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("model passes through", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "google/gemini-2.0-flash-001",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "google/gemini-2.0-flash-001" {
			t.Errorf("model = %q", p.ModelID())
		}
	})

	t.Run("missing key is a config error", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-001"})
		var cfgErr *ErrConfig
		if !errors.As(err, &cfgErr) {
			t.Fatalf("expected ErrConfig, got %T (%v)", err, err)
		}
		if cfgErr.Provider != "openrouter" {
			t.Errorf("provider = %q", cfgErr.Provider)
		}
	})
}
