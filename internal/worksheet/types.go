package worksheet

import (
	"fmt"
	"strconv"
	"strings"
)

// Grade is a school grade: "K" or "1" through "12".
type Grade string

// ParseGrade accepts "K", "k", "kindergarten" or a number from 1 to 12.
func ParseGrade(s string) (Grade, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "k") || strings.EqualFold(s, "kindergarten") {
		return "K", nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(s), "grade "))
	if err != nil || n < 1 || n > 12 {
		return "", fmt.Errorf("invalid grade %q: want K or 1-12", s)
	}
	return Grade(strconv.Itoa(n)), nil
}

// Label renders the grade for prompts and printouts.
func (g Grade) Label() string {
	if g == "K" {
		return "Kindergarten"
	}
	return "Grade " + string(g)
}

// Subject is the worksheet family.
type Subject string

const (
	SubjectGrammar    Subject = "grammar"
	SubjectVocabulary Subject = "vocabulary"
	SubjectReading    Subject = "readingComprehension"
)

// Subjects lists every subject in display order.
var Subjects = []Subject{SubjectGrammar, SubjectVocabulary, SubjectReading}

// ParseSubject accepts the canonical names plus "reading".
func ParseSubject(s string) (Subject, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grammar":
		return SubjectGrammar, nil
	case "vocabulary", "vocab":
		return SubjectVocabulary, nil
	case "readingcomprehension", "reading", "reading-comprehension":
		return SubjectReading, nil
	}
	return "", fmt.Errorf("invalid subject %q: want grammar, vocabulary or readingComprehension", s)
}

// DisplayName is the human title used in prompts.
func (s Subject) DisplayName() string {
	switch s {
	case SubjectGrammar:
		return "Grammar Practice"
	case SubjectVocabulary:
		return "Vocabulary Builder"
	case SubjectReading:
		return "Reading Comprehension"
	}
	return string(s)
}

// Difficulty is the requested challenge level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	}
	return "", fmt.Errorf("invalid difficulty %q: want easy, medium or hard", s)
}

// Descriptor is the natural-language focus for the difficulty.
func (d Difficulty) Descriptor() string {
	switch d {
	case DifficultyEasy:
		return "basic understanding and recall"
	case DifficultyHard:
		return "critical thinking and evaluation"
	default:
		return "application and analysis"
	}
}

// QuestionType is the answer format of a question.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeFillBlank      QuestionType = "fill-blank"
	TypeShortAnswer    QuestionType = "short-answer"
	TypeEssay          QuestionType = "essay"
)

// QuestionTypes lists every question type in canonical order.
var QuestionTypes = []QuestionType{TypeMultipleChoice, TypeFillBlank, TypeShortAnswer, TypeEssay}

var typeAliases = map[string]QuestionType{
	"multiple-choice":   TypeMultipleChoice,
	"multiple_choice":   TypeMultipleChoice,
	"multiplechoice":    TypeMultipleChoice,
	"mc":                TypeMultipleChoice,
	"fill-blank":        TypeFillBlank,
	"fill_blank":        TypeFillBlank,
	"fill-in-the-blank": TypeFillBlank,
	"fill-in-blank":     TypeFillBlank,
	"short-answer":      TypeShortAnswer,
	"short_answer":      TypeShortAnswer,
	"long-answer":       TypeShortAnswer,
	"long_answer":       TypeShortAnswer,
	"essay":             TypeEssay,
}

// ParseQuestionType normalizes a type name. "long-answer" maps to
// short-answer.
func ParseQuestionType(s string) (QuestionType, bool) {
	t, ok := typeAliases[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}

// DefaultPoints is the score weight used when the model omits points.
func (t QuestionType) DefaultPoints() int {
	switch t {
	case TypeEssay:
		return 10
	case TypeShortAnswer:
		return 5
	default:
		return 2
	}
}

// AutoGradable reports whether answers can be checked without a model.
func (t QuestionType) AutoGradable() bool {
	return t == TypeMultipleChoice || t == TypeFillBlank
}

// Topic is a catalog topic selected for a worksheet.
type Topic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Request describes the worksheet to generate. Treat it as immutable.
type Request struct {
	Grade            Grade          `json:"grade"`
	Subject          Subject        `json:"subjectType"`
	Topics           []Topic        `json:"topics"`
	Difficulty       Difficulty     `json:"difficulty"`
	QuestionTypes    []QuestionType `json:"questionTypes"`
	QuestionCount    int            `json:"questionCount"`
	IncludeAnswerKey bool           `json:"includeAnswerKey"`
	TimeLimitMinutes int            `json:"timeLimit,omitempty"` // 0 means unset
	ShowHints        bool           `json:"showHints"`
	AllowRetries     bool           `json:"allowRetries"`
	ForceRefresh     bool           `json:"forceRefresh,omitempty"`
}

// Validate checks enum fields and ranges accepted at the edges
// (CLI flags, API bodies). The generator itself never rejects a request.
func (r Request) Validate() error {
	if _, err := ParseGrade(string(r.Grade)); err != nil {
		return err
	}
	if _, err := ParseSubject(string(r.Subject)); err != nil {
		return err
	}
	if _, err := ParseDifficulty(string(r.Difficulty)); err != nil {
		return err
	}
	if len(r.Topics) == 0 {
		return fmt.Errorf("at least one topic is required")
	}
	for _, t := range r.QuestionTypes {
		if _, ok := ParseQuestionType(string(t)); !ok {
			return fmt.Errorf("invalid question type %q", t)
		}
	}
	if r.QuestionCount < 3 || r.QuestionCount > 20 {
		return fmt.Errorf("question count %d out of range 3-20", r.QuestionCount)
	}
	if r.TimeLimitMinutes < 0 {
		return fmt.Errorf("time limit must not be negative")
	}
	return nil
}

// TopicNames returns the topic names in request order.
func (r Request) TopicNames() []string {
	names := make([]string, len(r.Topics))
	for i, t := range r.Topics {
		names[i] = t.Name
	}
	return names
}

// AllowedTypes returns the normalized, de-duplicated question types in
// canonical order, defaulting to multiple-choice.
func (r Request) AllowedTypes() []QuestionType {
	seen := map[QuestionType]bool{}
	for _, t := range r.QuestionTypes {
		if n, ok := ParseQuestionType(string(t)); ok {
			seen[n] = true
		}
	}
	var out []QuestionType
	for _, t := range QuestionTypes {
		if seen[t] {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		out = []QuestionType{TypeMultipleChoice}
	}
	return out
}

// Question is one worksheet item.
type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Prompt        string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation,omitempty"`
	Points        int          `json:"points"`
}

// Worksheet is a generated worksheet.
type Worksheet struct {
	Title        string            `json:"title"`
	Instructions string            `json:"instructions"`
	Questions    []Question        `json:"questions"`
	AnswerKey    map[string]string `json:"answerKey"`

	// Fallback marks placeholder content produced when generation failed.
	Fallback bool `json:"fallback"`
}

// TotalPoints sums question points.
func (w *Worksheet) TotalPoints() int {
	total := 0
	for _, q := range w.Questions {
		total += q.Points
	}
	return total
}

// Question returns the question with the given id.
func (w *Worksheet) Question(id string) (*Question, bool) {
	for i := range w.Questions {
		if w.Questions[i].ID == id {
			return &w.Questions[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy.
func (w *Worksheet) Clone() *Worksheet {
	if w == nil {
		return nil
	}
	out := *w
	if w.Questions != nil {
		out.Questions = make([]Question, len(w.Questions))
		for i, q := range w.Questions {
			if q.Options != nil {
				q.Options = append([]string{}, q.Options...)
			}
			out.Questions[i] = q
		}
	}
	if w.AnswerKey != nil {
		out.AnswerKey = make(map[string]string, len(w.AnswerKey))
		for k, v := range w.AnswerKey {
			out.AnswerKey[k] = v
		}
	}
	return &out
}
