// Package library saves generated worksheets and practice attempts and
// reports progress over them.
package library

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/wordiz/internal/grading"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/worksheet"
)

// Entry is a saved worksheet with the request that produced it.
type Entry struct {
	ID        string               `json:"id"`
	Request   worksheet.Request    `json:"request"`
	Worksheet *worksheet.Worksheet `json:"worksheet"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// Summary is a listing row.
type Summary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Grade         string    `json:"grade"`
	Subject       string    `json:"subjectType"`
	Difficulty    string    `json:"difficulty"`
	Topics        []string  `json:"topics"`
	QuestionCount int       `json:"questionCount"`
	Fallback      bool      `json:"fallback"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Attempt is a graded practice attempt.
type Attempt struct {
	ID             string            `json:"id"`
	WorksheetID    string            `json:"worksheetId"`
	Score          float64           `json:"score"`
	EarnedPoints   float64           `json:"earnedPoints"`
	TotalPoints    float64           `json:"totalPoints"`
	Answered       int               `json:"answered"`
	TotalQuestions int               `json:"totalQuestions"`
	TimeSpent      time.Duration     `json:"timeSpent"`
	Completed      bool              `json:"completed"`
	Answers        map[string]string `json:"answers"`
	Result         *grading.Result   `json:"result,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

type content struct {
	Request   worksheet.Request    `json:"request"`
	Worksheet *worksheet.Worksheet `json:"worksheet"`
}

// Library stores worksheets and attempts for users.
type Library struct {
	worksheets store.WorksheetRepo
	attempts   store.AttemptRepo
	logger     *zap.Logger
	now        func() time.Time
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(lib *Library) { lib.logger = l }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(lib *Library) { lib.now = now }
}

// New creates a Library over the given repositories.
func New(worksheets store.WorksheetRepo, attempts store.AttemptRepo, opts ...Option) *Library {
	lib := &Library{
		worksheets: worksheets,
		attempts:   attempts,
		logger:     zap.NewNop(),
		now:        time.Now,
	}
	for _, o := range opts {
		o(lib)
	}
	return lib
}

// Save stores ws for userID and returns the new entry.
func (l *Library) Save(ctx context.Context, userID string, req worksheet.Request, ws *worksheet.Worksheet) (*Entry, error) {
	if ws == nil {
		return nil, fmt.Errorf("save worksheet: nil worksheet")
	}
	req.ForceRefresh = false
	body, err := json.Marshal(content{Request: req, Worksheet: ws})
	if err != nil {
		return nil, fmt.Errorf("marshal worksheet: %w", err)
	}

	now := l.now()
	rec := &store.WorksheetRecord{
		UserID:        userID,
		Title:         ws.Title,
		Grade:         string(req.Grade),
		Subject:       string(req.Subject),
		Difficulty:    string(req.Difficulty),
		Topics:        req.TopicNames(),
		QuestionCount: len(ws.Questions),
		Fallback:      ws.Fallback,
		Content:       body,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := l.worksheets.SaveWorksheet(ctx, rec); err != nil {
		return nil, fmt.Errorf("save worksheet: %w", err)
	}
	l.logger.Debug("worksheet saved", zap.String("user", userID), zap.String("id", rec.ID))

	return &Entry{
		ID:        rec.ID,
		Request:   req,
		Worksheet: ws.Clone(),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}

// Get loads a saved worksheet. Unknown ids return store.ErrNotFound.
func (l *Library) Get(ctx context.Context, userID, id string) (*Entry, error) {
	rec, err := l.worksheets.GetWorksheet(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	var c content
	if err := json.Unmarshal(rec.Content, &c); err != nil {
		return nil, fmt.Errorf("decode worksheet %s: %w", id, err)
	}
	if c.Worksheet == nil {
		return nil, fmt.Errorf("decode worksheet %s: missing content", id)
	}
	return &Entry{
		ID:        rec.ID,
		Request:   c.Request,
		Worksheet: c.Worksheet,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}

// List returns the user's worksheets, newest first.
func (l *Library) List(ctx context.Context, userID string, f store.WorksheetFilter) ([]Summary, error) {
	recs, err := l.worksheets.ListWorksheets(ctx, userID, f)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, len(recs))
	for i, r := range recs {
		out[i] = Summary{
			ID:            r.ID,
			Title:         r.Title,
			Grade:         r.Grade,
			Subject:       r.Subject,
			Difficulty:    r.Difficulty,
			Topics:        r.Topics,
			QuestionCount: r.QuestionCount,
			Fallback:      r.Fallback,
			CreatedAt:     r.CreatedAt,
		}
	}
	return out, nil
}

// Delete removes a worksheet and its attempts.
func (l *Library) Delete(ctx context.Context, userID, id string) error {
	return l.worksheets.DeleteWorksheet(ctx, userID, id)
}

// RecordAttempt stores a graded attempt of a saved worksheet.
func (l *Library) RecordAttempt(ctx context.Context, userID, worksheetID string, res *grading.Result, answers map[string]string, timeSpent time.Duration, completed bool) (*Attempt, error) {
	if res == nil {
		return nil, fmt.Errorf("record attempt: nil result")
	}
	if _, err := l.worksheets.GetWorksheet(ctx, userID, worksheetID); err != nil {
		return nil, err
	}
	body, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	rec := &store.AttemptRecord{
		UserID:         userID,
		WorksheetID:    worksheetID,
		Score:          float64(res.Score),
		EarnedPoints:   res.EarnedPoints,
		TotalPoints:    float64(res.TotalPoints),
		Answered:       res.Answered,
		TotalQuestions: len(res.Questions),
		TimeSpent:      timeSpent,
		Completed:      completed,
		Answers:        answers,
		Result:         body,
		CreatedAt:      l.now(),
	}
	if err := l.attempts.SaveAttempt(ctx, rec); err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}
	l.logger.Info("attempt recorded",
		zap.String("user", userID),
		zap.String("worksheet", worksheetID),
		zap.Int("score", res.Score),
	)
	return toAttempt(*rec), nil
}

// Attempts returns the attempts of one worksheet, newest first.
func (l *Library) Attempts(ctx context.Context, userID, worksheetID string) ([]Attempt, error) {
	recs, err := l.attempts.WorksheetAttempts(ctx, userID, worksheetID)
	if err != nil {
		return nil, err
	}
	out := make([]Attempt, len(recs))
	for i, r := range recs {
		out[i] = *toAttempt(r)
	}
	return out, nil
}

func toAttempt(r store.AttemptRecord) *Attempt {
	a := &Attempt{
		ID:             r.ID,
		WorksheetID:    r.WorksheetID,
		Score:          r.Score,
		EarnedPoints:   r.EarnedPoints,
		TotalPoints:    r.TotalPoints,
		Answered:       r.Answered,
		TotalQuestions: r.TotalQuestions,
		TimeSpent:      r.TimeSpent,
		Completed:      r.Completed,
		Answers:        r.Answers,
		CreatedAt:      r.CreatedAt,
	}
	if len(r.Result) > 0 {
		var res grading.Result
		if err := json.Unmarshal(r.Result, &res); err == nil {
			a.Result = &res
		}
	}
	return a
}
