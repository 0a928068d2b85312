package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func newTestGeminiProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-flash",
		BaseURL: server.URL + "/",
	})
	if err != nil {
		t.Fatalf("NewGeminiProvider: %v", err)
	}
	return p
}

func TestGeminiProvider_GenerateContent(t *testing.T) {
	var body map[string]any
	var path string
	handler := func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": "Here you go: {\"title\":\"Nouns\"}"}},
				},
				"finishReason": "STOP",
			}},
			"usageMetadata": map[string]any{
				"promptTokenCount":     90,
				"candidatesTokenCount": 400,
				"totalTokenCount":      490,
			},
		})
	}

	p := newTestGeminiProvider(t, handler)
	resp, err := p.Generate(context.Background(), UserPrompt("Create a worksheet.", 8192, 0.7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasSuffix(path, "gemini-2.0-flash:generateContent") {
		t.Errorf("unexpected path %q", path)
	}
	gen, _ := body["generationConfig"].(map[string]any)
	if temp, _ := gen["temperature"].(float64); temp < 0.69 || temp > 0.71 {
		t.Errorf("temperature = %v, want 0.7", gen["temperature"])
	}
	if maxTok, _ := gen["maxOutputTokens"].(float64); maxTok != 8192 {
		t.Errorf("maxOutputTokens = %v, want 8192", gen["maxOutputTokens"])
	}
	if resp.Text() != `Here you go: {"title":"Nouns"}` {
		t.Errorf("text = %q", resp.Text())
	}
	if resp.Usage.TotalTokens != 490 {
		t.Errorf("total tokens = %d", resp.Usage.TotalTokens)
	}
}

func TestGeminiProvider_MaxTokens(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": `{"title":"Nou`}},
				},
				"finishReason": "MAX_TOKENS",
			}},
		})
	}

	p := newTestGeminiProvider(t, handler)
	_, err := p.Generate(context.Background(), UserPrompt("Create a worksheet.", 10, 0.7))
	var maxErr *ErrMaxTokensExceeded
	if !errors.As(err, &maxErr) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
	if string(maxErr.Content) != `{"title":"Nou` {
		t.Errorf("content = %q", maxErr.Content)
	}
	if !Retryable(err) {
		t.Error("truncated responses should be retryable")
	}
}

func TestGeminiProvider_ServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"},
		})
	}

	p := newTestGeminiProvider(t, handler)
	_, err := p.Generate(context.Background(), UserPrompt("x", 100, 0.7))
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
	if !strings.Contains(err.Error(), "API key not valid") {
		t.Errorf("error should carry upstream message: %v", err)
	}
}

func TestNewGeminiProvider_MissingKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiConfig{Model: "gemini-flash"})
	var cfgErr *ErrConfig
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ErrConfig, got %T (%v)", err, err)
	}
}

func TestGeminiText(t *testing.T) {
	text := func(s string) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{{Text: s}}},
			}},
		}
	}

	tests := []struct {
		name    string
		result  *genai.GenerateContentResponse
		want    string
		wantErr bool
	}{
		{"ok", text("{}"), "{}", false},
		{"no candidates", &genai.GenerateContentResponse{}, "", true},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, "", true},
		{"no parts", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}}, "", true},
		{"empty text", text(""), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := geminiText(tt.result)
			if tt.wantErr {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("geminiText = %q, %v", got, err)
			}
		})
	}
}

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-flash-lite", "gemini-2.0-flash-lite"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	schema := buildGeminiSchema(gradingLikeSchema().Definition)

	if schema.Type != genai.TypeObject {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	answers := schema.Properties["gradedAnswers"]
	if answers == nil || answers.Type != genai.TypeArray {
		t.Fatalf("gradedAnswers should be an array: %+v", answers)
	}
	if answers.Items.Properties["isCorrect"].Type != genai.TypeBoolean {
		t.Errorf("isCorrect should be boolean")
	}
	if len(schema.Required) != 2 {
		t.Errorf("required = %v", schema.Required)
	}
}

func gradingLikeSchema() *Schema {
	return &Schema{
		Name: "grading-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"overallFeedback": map[string]any{"type": "string"},
				"score":           map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				"gradedAnswers": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"questionId": map[string]any{"type": "string"},
							"isCorrect":  map[string]any{"type": "boolean"},
						},
						"required": []any{"questionId", "isCorrect"},
					},
				},
			},
			"required": []any{"overallFeedback", "gradedAnswers"},
		},
	}
}
