package grading

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/wordiz/internal/jsonrepair"
	"github.com/abhisek/wordiz/internal/llm"
	"github.com/abhisek/wordiz/internal/worksheet"
)

// ReviewUnavailable is appended to the overall feedback when open answers
// were scored locally.
const ReviewUnavailable = "Automatic review was unavailable, so written answers were scored by keyword matching."

// Grader scores submitted answers for a worksheet.
type Grader struct {
	provider    llm.Provider
	logger      *zap.Logger
	maxTokens   int
	temperature float64
}

// Option configures a Grader.
type Option func(*Grader)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Grader) { g.logger = l }
}

// NewGrader creates a Grader. A nil provider grades open answers with
// the keyword heuristic only.
func NewGrader(provider llm.Provider, opts ...Option) *Grader {
	g := &Grader{
		provider:    provider,
		logger:      zap.NewNop(),
		maxTokens:   4096,
		temperature: 0.3,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

type gradedAnswer struct {
	QuestionID    json.RawMessage `json:"questionId"`
	IsCorrect     bool            `json:"isCorrect"`
	Feedback      string          `json:"feedback"`
	PartialCredit *float64        `json:"partialCredit"`
}

type review struct {
	OverallFeedback string         `json:"overallFeedback"`
	GradedAnswers   []gradedAnswer `json:"gradedAnswers"`
}

// Grade scores every question of ws. answers maps question id to the
// student's response; missing ids count as unanswered. Model failures are
// absorbed: open answers then fall back to the keyword heuristic.
func (g *Grader) Grade(ctx context.Context, ws *worksheet.Worksheet, answers map[string]string, difficulty worksheet.Difficulty) (*Result, error) {
	if ws == nil {
		return nil, errors.New("grade: nil worksheet")
	}

	res := &Result{Questions: make([]QuestionResult, len(ws.Questions))}
	var open []int

	for i, q := range ws.Questions {
		response := strings.TrimSpace(answers[q.ID])
		if correct, ok := Check(q, response); ok {
			r := QuestionResult{QuestionID: q.ID, Response: response, Points: q.Points, Correct: correct}
			switch {
			case response == "":
				r.Feedback = "No answer provided."
			case correct:
				r.Credit = 1
				r.Feedback = "Correct!"
			default:
				r.Feedback = "Incorrect. The correct answer is: " + q.CorrectAnswer
			}
			r.settle(1)
			res.Questions[i] = r
			continue
		}
		if response == "" {
			res.Questions[i] = heuristic(q, response, difficulty)
			continue
		}
		open = append(open, i)
	}

	res.Reviewed = true
	if len(open) > 0 {
		reviewed, overall, err := g.review(ctx, ws, open, answers, difficulty)
		if err != nil {
			g.logger.Warn("model review failed, using keyword heuristic",
				zap.Int("open_answers", len(open)),
				zap.Error(err),
			)
			res.Reviewed = false
		}
		res.OverallFeedback = overall
		for _, i := range open {
			q := ws.Questions[i]
			if r, ok := reviewed[q.ID]; ok {
				res.Questions[i] = r
				continue
			}
			res.Questions[i] = heuristic(q, strings.TrimSpace(answers[q.ID]), difficulty)
			if err == nil {
				g.logger.Debug("question missing from model review", zap.String("question_id", q.ID))
			}
		}
	}

	res.total()
	if res.OverallFeedback == "" {
		res.OverallFeedback = fmt.Sprintf("You scored %d%% (%d of %d questions correct).", res.Score, res.Correct, len(res.Questions))
	}
	if !res.Reviewed {
		res.OverallFeedback += " " + ReviewUnavailable
	}
	return res, nil
}

func (g *Grader) review(ctx context.Context, ws *worksheet.Worksheet, open []int, answers map[string]string, d worksheet.Difficulty) (map[string]QuestionResult, string, error) {
	if g.provider == nil {
		return nil, "", errors.New("no LLM provider configured")
	}

	items := make([]reviewItem, 0, len(open))
	byID := make(map[string]worksheet.Question, len(open))
	for _, i := range open {
		q := ws.Questions[i]
		byID[q.ID] = q
		items = append(items, reviewItem{
			QuestionID:    q.ID,
			Type:          q.Type,
			Question:      q.Prompt,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    strings.TrimSpace(answers[q.ID]),
		})
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeGrading)
	resp, err := g.provider.Generate(ctx, llm.UserPrompt(buildPrompt(items, d), g.maxTokens, g.temperature))
	if err != nil {
		return nil, "", fmt.Errorf("grading request failed: %w", err)
	}

	raw, err := jsonrepair.Normalize(resp.Text())
	if err != nil {
		return nil, "", fmt.Errorf("parse grading response: %w", err)
	}
	if err := llm.ValidateJSON(GradingSchema, raw); err != nil {
		return nil, "", err
	}
	var rv review
	if err := json.Unmarshal(raw, &rv); err != nil {
		return nil, "", fmt.Errorf("decode grading response: %w", err)
	}

	out := make(map[string]QuestionResult, len(rv.GradedAnswers))
	for _, ga := range rv.GradedAnswers {
		id := questionID(ga.QuestionID)
		q, ok := byID[id]
		if !ok {
			continue
		}
		r := QuestionResult{
			QuestionID: id,
			Response:   strings.TrimSpace(answers[id]),
			Points:     q.Points,
			Correct:    ga.IsCorrect,
			Feedback:   strings.TrimSpace(ga.Feedback),
		}
		switch {
		case ga.PartialCredit != nil:
			r.Credit = *ga.PartialCredit
		case ga.IsCorrect:
			r.Credit = 1
		}
		r.settle(1)
		out[id] = r
	}
	return out, strings.TrimSpace(rv.OverallFeedback), nil
}

// questionID accepts ids sent back as strings or numbers.
func questionID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
