package worksheet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/wordiz/internal/jsonrepair"
	"github.com/abhisek/wordiz/internal/llm"
)

// Parse stages reported by ParseError.
const (
	StageExtract  = "extract"
	StageRepair   = "repair"
	StageShape    = "shape"
	StageDecode   = "decode"
	StageValidate = "validate"
)

// ParseError reports model text that could not be turned into a worksheet.
type ParseError struct {
	Stage   string
	Subject Subject
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s worksheet (%s): %v", e.Subject, e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// flexString accepts a JSON string, number or boolean.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*f = flexString(strconv.FormatBool(v))
		return nil
	}
	return fmt.Errorf("expected string or number, got %s", b)
}

// flexAnswer accepts a scalar or an array of scalars. Arrays are joined
// with ", " (multi-blank answers).
type flexAnswer string

func (f *flexAnswer) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var parts []flexString
		if err := json.Unmarshal(b, &parts); err != nil {
			return err
		}
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(string(p)))
		}
		*f = flexAnswer(strings.Join(out, ", "))
		return nil
	}
	var s flexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	*f = flexAnswer(s)
	return nil
}

type rawQuestion struct {
	ID            flexString   `json:"id"`
	Type          string       `json:"type"`
	Question      string       `json:"question"`
	Options       []flexString `json:"options"`
	CorrectAnswer flexAnswer   `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	Points        *float64     `json:"points"`
}

type rawWorksheet struct {
	Title        string        `json:"title"`
	Instructions string        `json:"instructions"`
	Questions    []rawQuestion `json:"questions"`
}

// Parse turns raw model text into a Worksheet. The text may carry prose or
// code fences around the object and common JSON mistakes (single quotes,
// bare keys, trailing commas). Any failure is a *ParseError.
func Parse(raw string, subject Subject, includeAnswerKey bool) (*Worksheet, error) {
	fail := func(stage string, err error) (*Worksheet, error) {
		return nil, &ParseError{Stage: stage, Subject: subject, Err: err}
	}

	doc, err := jsonrepair.Normalize(raw)
	if err != nil {
		if errors.Is(err, jsonrepair.ErrNoObject) {
			return fail(StageExtract, err)
		}
		return fail(StageRepair, err)
	}

	if err := llm.ValidateJSON(WorksheetSchema, doc); err != nil {
		return fail(StageShape, err)
	}

	var rw rawWorksheet
	if err := json.Unmarshal(doc, &rw); err != nil {
		return fail(StageDecode, err)
	}

	ws := &Worksheet{
		Title:        strings.TrimSpace(rw.Title),
		Instructions: strings.TrimSpace(rw.Instructions),
		Questions:    make([]Question, 0, len(rw.Questions)),
		AnswerKey:    map[string]string{},
	}
	if ws.Title == "" || ws.Instructions == "" {
		return fail(StageShape, errors.New("title and instructions must not be blank"))
	}

	seen := map[string]bool{}
	for i, rq := range rw.Questions {
		q, err := mapQuestion(i, rq)
		if err != nil {
			return fail(StageValidate, err)
		}
		if seen[q.ID] {
			q.ID = strconv.Itoa(i + 1)
		}
		seen[q.ID] = true
		ws.Questions = append(ws.Questions, q)
	}

	if includeAnswerKey {
		for _, q := range ws.Questions {
			ws.AnswerKey[q.ID] = q.CorrectAnswer
		}
	}
	return ws, nil
}

func mapQuestion(i int, rq rawQuestion) (Question, error) {
	q := Question{
		ID:            strings.TrimSpace(string(rq.ID)),
		Prompt:        strings.TrimSpace(rq.Question),
		CorrectAnswer: strings.TrimSpace(string(rq.CorrectAnswer)),
		Explanation:   strings.TrimSpace(rq.Explanation),
	}
	if q.ID == "" {
		q.ID = strconv.Itoa(i + 1)
	}

	// Unknown types are kept verbatim so the type whitelist can reject them.
	if t, ok := ParseQuestionType(rq.Type); ok {
		q.Type = t
	} else {
		q.Type = QuestionType(strings.ToLower(strings.TrimSpace(rq.Type)))
	}

	if rq.Points != nil && *rq.Points > 0 {
		q.Points = int(math.Round(*rq.Points))
	}
	if q.Points <= 0 {
		q.Points = q.Type.DefaultPoints()
	}

	if q.Type != TypeMultipleChoice {
		return q, nil
	}

	for _, o := range rq.Options {
		if s := strings.TrimSpace(string(o)); s != "" {
			q.Options = append(q.Options, s)
		}
	}
	if len(q.Options) < 2 {
		return q, fmt.Errorf("question %s: multiple-choice needs at least 2 options, got %d", q.ID, len(q.Options))
	}
	answer, ok := resolveOption(q.Options, q.CorrectAnswer)
	if !ok {
		return q, fmt.Errorf("question %s: correct answer %q is not one of the options", q.ID, q.CorrectAnswer)
	}
	q.CorrectAnswer = answer
	return q, nil
}

// resolveOption maps an answer onto the exact option text. It accepts the
// option itself (case-insensitive) or a bare letter such as "B" or "b)".
func resolveOption(options []string, answer string) (string, bool) {
	for _, o := range options {
		if strings.EqualFold(o, answer) {
			return o, true
		}
	}
	if idx, ok := OptionIndex(answer); ok && idx < len(options) {
		return options[idx], true
	}
	return "", false
}

// OptionIndex parses an option letter ("A", "b", "C)", "d.") into a
// zero-based index.
func OptionIndex(s string) (int, bool) {
	s = strings.TrimRight(strings.TrimSpace(s), ").:")
	if len(s) != 1 {
		return 0, false
	}
	c := s[0] | 0x20
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}

// OptionLetter returns "A" for 0, "B" for 1 and so on.
func OptionLetter(i int) string {
	return string(rune('A' + i))
}
