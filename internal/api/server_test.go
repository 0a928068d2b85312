package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordiz/internal/grading"
	"github.com/abhisek/wordiz/internal/library"
	"github.com/abhisek/wordiz/internal/llm"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/worksheet"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubGenerator struct {
	mu   sync.Mutex
	ws   *worksheet.Worksheet
	err  error
	reqs []worksheet.Request
}

func (g *stubGenerator) Generate(_ context.Context, req worksheet.Request) (*worksheet.Worksheet, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reqs = append(g.reqs, req)
	if g.err != nil {
		return nil, g.err
	}
	return g.ws.Clone(), nil
}

func sampleSheet() *worksheet.Worksheet {
	return &worksheet.Worksheet{
		Title:        "Nouns Practice",
		Instructions: "Choose the noun.",
		Questions: []worksheet.Question{
			{ID: "1", Type: worksheet.TypeMultipleChoice, Prompt: "Which word is a noun?", Options: []string{"run", "table", "quickly", "blue"}, CorrectAnswer: "table", Points: 2},
			{ID: "2", Type: worksheet.TypeFillBlank, Prompt: "The _____ barked.", CorrectAnswer: "dog", Points: 2},
		},
		AnswerKey: map[string]string{"1": "table", "2": "dog"},
	}
}

func newTestServer(t *testing.T, gen worksheet.Generator) *Server {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:api_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	lib := library.New(s.WorksheetRepo(), s.AttemptRepo())
	grader := grading.NewGrader(llm.NewMockProvider())
	return NewServer(gen, lib, grader, nil, "test")
}

func do(t *testing.T, srv *Server, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(UserHeader, user)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func nounsBody(save bool) map[string]any {
	return map[string]any{
		"grade":            "1",
		"subjectType":      "grammar",
		"topics":           []map[string]string{{"id": "nouns"}},
		"difficulty":       "easy",
		"questionTypes":    []string{"multiple-choice", "fill-blank"},
		"questionCount":    5,
		"includeAnswerKey": true,
		"save":             save,
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{ws: sampleSheet()})
	rec := do(t, srv, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "wordiz", body["service"])
	assert.Equal(t, "test", body["version"])
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{ws: sampleSheet()})
	rec := do(t, srv, http.MethodOptions, "/api/worksheets", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), UserHeader)
}

func TestTopics(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{ws: sampleSheet()})

	rec := do(t, srv, http.MethodGet, "/api/topics?grade=1&subject=grammar", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Topics []struct{ ID, Name string } `json:"topics"`
	}
	decode(t, rec, &body)
	require.NotEmpty(t, body.Topics)
	assert.Equal(t, "nouns", body.Topics[0].ID)

	rec = do(t, srv, http.MethodGet, "/api/topics?grade=13", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/topics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all struct {
		Grades []json.RawMessage `json:"grades"`
	}
	decode(t, rec, &all)
	assert.Len(t, all.Grades, 13)
}

func TestRequiresUser(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{ws: sampleSheet()})
	rec := do(t, srv, http.MethodGet, "/api/worksheets", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body errorResponse
	decode(t, rec, &body)
	assert.False(t, body.Success)
	assert.Contains(t, body.Error, UserHeader)
}

func TestGenerateResolvesTopicNames(t *testing.T) {
	gen := &stubGenerator{ws: sampleSheet()}
	srv := newTestServer(t, gen)

	rec := do(t, srv, http.MethodPost, "/api/worksheets/generate", "u1", nounsBody(false))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body generateResponse
	decode(t, rec, &body)
	assert.True(t, body.Success)
	assert.False(t, body.Fallback)
	assert.Empty(t, body.ID)
	require.NotNil(t, body.Worksheet)
	assert.Len(t, body.Worksheet.Questions, 2)

	require.Len(t, gen.reqs, 1)
	assert.Equal(t, []worksheet.Topic{{ID: "nouns", Name: "Nouns"}}, gen.reqs[0].Topics)
	assert.Equal(t, worksheet.SubjectGrammar, gen.reqs[0].Subject)
}

func TestGenerateRejectsBadRequest(t *testing.T) {
	gen := &stubGenerator{ws: sampleSheet()}
	srv := newTestServer(t, gen)

	body := nounsBody(false)
	body["topics"] = []map[string]string{{"id": "no-such-topic"}}
	rec := do(t, srv, http.MethodPost, "/api/worksheets/generate", "u1", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body = nounsBody(false)
	body["questionCount"] = 50
	rec = do(t, srv, http.MethodPost, "/api/worksheets/generate", "u1", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, gen.reqs)
}

func TestGenerateFallbackFlag(t *testing.T) {
	ws := sampleSheet()
	ws.Fallback = true
	srv := newTestServer(t, &stubGenerator{ws: ws})

	rec := do(t, srv, http.MethodPost, "/api/worksheets/generate", "u1", nounsBody(false))
	require.Equal(t, http.StatusOK, rec.Code)
	var body generateResponse
	decode(t, rec, &body)
	assert.True(t, body.Fallback)
}

func TestGenerateConfigError(t *testing.T) {
	gen := &stubGenerator{err: &llm.ErrConfig{Provider: "gemini", Setting: "API key"}}
	srv := newTestServer(t, gen)

	rec := do(t, srv, http.MethodPost, "/api/worksheets/generate", "u1", nounsBody(false))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body errorResponse
	decode(t, rec, &body)
	assert.Contains(t, body.Error, "API key")
}

func generateSaved(t *testing.T, srv *Server, user string) string {
	t.Helper()
	rec := do(t, srv, http.MethodPost, "/api/worksheets/generate", user, nounsBody(true))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body generateResponse
	decode(t, rec, &body)
	require.NotEmpty(t, body.ID)
	return body.ID
}

func TestWorksheetLifecycle(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{ws: sampleSheet()})
	id := generateSaved(t, srv, "u1")

	rec := do(t, srv, http.MethodGet, "/api/worksheets", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Worksheets []library.Summary `json:"worksheets"`
	}
	decode(t, rec, &list)
	require.Len(t, list.Worksheets, 1)
	assert.Equal(t, id, list.Worksheets[0].ID)
	assert.Equal(t, "Nouns Practice", list.Worksheets[0].Title)

	// Other users cannot see it.
	rec = do(t, srv, http.MethodGet, "/api/worksheets/"+id, "u2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/worksheets/"+id, "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Worksheet library.Entry `json:"worksheet"`
	}
	decode(t, rec, &got)
	assert.Equal(t, worksheet.Grade("1"), got.Worksheet.Request.Grade)
	assert.Len(t, got.Worksheet.Worksheet.Questions, 2)

	rec = do(t, srv, http.MethodDelete, "/api/worksheets/"+id, "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, srv, http.MethodGet, "/api/worksheets/"+id, "u1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListWorksheetsBadLimit(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{ws: sampleSheet()})
	rec := do(t, srv, http.MethodGet, "/api/worksheets?limit=abc", "u1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorksheetPDF(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{ws: sampleSheet()})
	id := generateSaved(t, srv, "u1")

	rec := do(t, srv, http.MethodGet, "/api/worksheets/"+id+"/pdf", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "nouns_practice.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	rec = do(t, srv, http.MethodGet, "/api/worksheets/"+id+"/pdf?pageSize=letter", "u1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/worksheets/"+id+"/pdf?pageSize=Tabloid", "u1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "A4 or Letter")

	rec = do(t, srv, http.MethodGet, "/api/worksheets/missing/pdf", "u1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitAttemptAndProgress(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{ws: sampleSheet()})
	id := generateSaved(t, srv, "u1")

	rec := do(t, srv, http.MethodPost, "/api/worksheets/"+id+"/attempts", "u1", attemptRequest{
		Answers:          map[string]string{"1": "B", "2": "cat"},
		TimeSpentSeconds: 90,
		Completed:        true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		Attempt library.Attempt `json:"attempt"`
	}
	decode(t, rec, &body)
	assert.Equal(t, id, body.Attempt.WorksheetID)
	assert.InDelta(t, 50, body.Attempt.Score, 0.001)
	assert.Equal(t, 2, body.Attempt.Answered)
	require.NotNil(t, body.Attempt.Result)
	assert.True(t, body.Attempt.Result.Questions[0].Correct)
	assert.False(t, body.Attempt.Result.Questions[1].Correct)

	rec = do(t, srv, http.MethodGet, "/api/worksheets/"+id+"/attempts", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var attempts struct {
		Attempts []library.Attempt `json:"attempts"`
	}
	decode(t, rec, &attempts)
	assert.Len(t, attempts.Attempts, 1)

	rec = do(t, srv, http.MethodGet, "/api/progress", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var progress struct {
		Progress library.Analytics `json:"progress"`
	}
	decode(t, rec, &progress)
	assert.Equal(t, 1, progress.Progress.TotalWorksheets)
	assert.Equal(t, 1, progress.Progress.TotalAttempts)
	assert.Equal(t, 1, progress.Progress.CompletedAttempts)
}

func TestSubmitAttemptUnknownWorksheet(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{ws: sampleSheet()})
	rec := do(t, srv, http.MethodPost, "/api/worksheets/missing/attempts", "u1", attemptRequest{
		Answers: map[string]string{"1": "table"},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
