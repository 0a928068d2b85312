package session

import (
	"time"

	"github.com/abhisek/wordiz/internal/worksheet"
)

// MaxRetries is the number of extra tries allowed on a wrong
// auto-graded answer when retries are enabled.
const MaxRetries = 2

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseAnswering SessionPhase = iota // Waiting for an answer to the current question
	PhaseFeedback                      // Showing feedback for the last answer
	PhaseComplete                      // All questions done, time expired or finished early
)

// Options carries the per-worksheet practice settings.
type Options struct {
	// TimeLimit is the session duration. Zero means untimed.
	TimeLimit time.Duration

	// ShowHints lets the student reveal a question's explanation.
	ShowHints bool

	// AllowRetries grants up to MaxRetries extra tries on wrong
	// multiple-choice and fill-blank answers.
	AllowRetries bool
}

// Feedback describes the outcome of the last submitted answer.
type Feedback struct {
	// Graded is false for open answers that are reviewed at the end.
	Graded  bool
	Correct bool
	Message string

	// CanRetry is true when the student may try the question again.
	CanRetry    bool
	RetriesLeft int
}

// SessionState tracks the runtime state of one practice run.
type SessionState struct {
	// ID identifies this run; it becomes the attempt id.
	ID string

	// WorksheetID is the stored worksheet being practiced.
	WorksheetID string

	Worksheet *worksheet.Worksheet
	Options   Options

	// Index is the position of the current question.
	Index int

	// Answers maps question id to the latest response.
	Answers map[string]string

	// Tries counts submissions per question id.
	Tries map[string]int

	// Correct records auto-graded outcomes per question id.
	Correct map[string]bool

	// HintsShown is the set of question ids whose hint was revealed.
	HintsShown map[string]bool

	Phase        SessionPhase
	LastFeedback *Feedback

	StartTime  time.Time
	FinishTime time.Time

	// Now is the clock; tests replace it.
	Now func() time.Time
}
