// Package session holds the runtime state of a worksheet practice run:
// navigation, answers, retries, hints and the time limit.
package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/wordiz/internal/grading"
	"github.com/abhisek/wordiz/internal/worksheet"
)

// NewSessionState starts a practice run on ws.
func NewSessionState(worksheetID string, ws *worksheet.Worksheet, opts Options) *SessionState {
	s := &SessionState{
		ID:          uuid.NewString(),
		WorksheetID: worksheetID,
		Worksheet:   ws,
		Options:     opts,
		Answers:     make(map[string]string),
		Tries:       make(map[string]int),
		Correct:     make(map[string]bool),
		HintsShown:  make(map[string]bool),
		Now:         time.Now,
	}
	s.StartTime = s.Now()
	if len(ws.Questions) == 0 {
		Finish(s)
	}
	return s
}

// CurrentQuestion returns the question at the current index.
func CurrentQuestion(s *SessionState) (worksheet.Question, bool) {
	if s.Index < 0 || s.Index >= len(s.Worksheet.Questions) {
		return worksheet.Question{}, false
	}
	return s.Worksheet.Questions[s.Index], true
}

// HandleAnswer records an answer for the current question and returns
// the feedback to show. Auto-gradable answers are checked immediately.
func HandleAnswer(s *SessionState, answer string) *Feedback {
	if CheckExpired(s) || s.Phase != PhaseAnswering {
		return nil
	}
	q, ok := CurrentQuestion(s)
	if !ok {
		return nil
	}

	answer = strings.TrimSpace(answer)
	s.Answers[q.ID] = answer
	s.Tries[q.ID]++

	fb := &Feedback{Message: "Answer saved."}
	if correct, graded := grading.Check(q, answer); graded {
		fb.Graded = true
		fb.Correct = correct
		s.Correct[q.ID] = correct
		if correct {
			fb.Message = "Correct!"
		} else {
			fb.RetriesLeft = retriesLeft(s, q.ID)
			fb.CanRetry = fb.RetriesLeft > 0
			if fb.CanRetry {
				fb.Message = "Not quite. Try again."
			} else {
				fb.Message = "Incorrect. The correct answer is: " + q.CorrectAnswer
			}
		}
	}

	s.LastFeedback = fb
	s.Phase = PhaseFeedback
	return fb
}

func retriesLeft(s *SessionState, id string) int {
	if !s.Options.AllowRetries {
		return 0
	}
	left := MaxRetries + 1 - s.Tries[id]
	if left < 0 {
		return 0
	}
	return left
}

// Retry returns to the current question after a wrong answer that can be
// retried.
func Retry(s *SessionState) bool {
	if s.Phase != PhaseFeedback || s.LastFeedback == nil || !s.LastFeedback.CanRetry {
		return false
	}
	s.Phase = PhaseAnswering
	s.LastFeedback = nil
	return true
}

// Advance moves to the next question. Past the last question the session
// completes. Returns false once complete.
func Advance(s *SessionState) bool {
	if CheckExpired(s) || s.Phase == PhaseComplete {
		return false
	}
	s.LastFeedback = nil
	if s.Index+1 >= len(s.Worksheet.Questions) {
		Finish(s)
		return false
	}
	s.Index++
	s.Phase = PhaseAnswering
	return true
}

// Back moves to the previous question to review or change an answer.
func Back(s *SessionState) bool {
	if CheckExpired(s) || s.Phase == PhaseComplete || s.Index == 0 {
		return false
	}
	s.Index--
	s.Phase = PhaseAnswering
	s.LastFeedback = nil
	return true
}

// Hint reveals the current question's explanation when hints are on.
func Hint(s *SessionState) (string, bool) {
	if !s.Options.ShowHints || s.Phase == PhaseComplete {
		return "", false
	}
	q, ok := CurrentQuestion(s)
	if !ok || q.Explanation == "" {
		return "", false
	}
	s.HintsShown[q.ID] = true
	return q.Explanation, true
}

// Remaining returns the time left. Untimed sessions report ok=false.
func Remaining(s *SessionState) (left time.Duration, ok bool) {
	if s.Options.TimeLimit <= 0 {
		return 0, false
	}
	left = s.Options.TimeLimit - Elapsed(s)
	if left < 0 {
		left = 0
	}
	return left, true
}

// CheckExpired completes the session when the time limit has passed.
func CheckExpired(s *SessionState) bool {
	if s.Phase == PhaseComplete {
		return s.Options.TimeLimit > 0 && Elapsed(s) >= s.Options.TimeLimit
	}
	if left, ok := Remaining(s); ok && left == 0 {
		Finish(s)
		return true
	}
	return false
}

// Finish ends the session early or on completion.
func Finish(s *SessionState) {
	if s.Phase == PhaseComplete {
		return
	}
	s.Phase = PhaseComplete
	s.LastFeedback = nil
	s.FinishTime = s.Now()
	if s.Options.TimeLimit > 0 && s.FinishTime.Sub(s.StartTime) > s.Options.TimeLimit {
		s.FinishTime = s.StartTime.Add(s.Options.TimeLimit)
	}
}

// Elapsed returns the time spent so far, frozen once finished.
func Elapsed(s *SessionState) time.Duration {
	if !s.FinishTime.IsZero() {
		return s.FinishTime.Sub(s.StartTime)
	}
	return s.Now().Sub(s.StartTime)
}

// AnswerSnapshot returns a copy of the recorded answers.
func AnswerSnapshot(s *SessionState) map[string]string {
	out := make(map[string]string, len(s.Answers))
	for k, v := range s.Answers {
		out[k] = v
	}
	return out
}
