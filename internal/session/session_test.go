package session

import (
	"testing"
	"time"

	"github.com/abhisek/wordiz/internal/worksheet"
)

func testWorksheet() *worksheet.Worksheet {
	return &worksheet.Worksheet{
		Title: "Nouns",
		Questions: []worksheet.Question{
			{ID: "1", Type: worksheet.TypeMultipleChoice, Prompt: "Which is a noun?", Options: []string{"run", "dog"}, CorrectAnswer: "dog", Explanation: "A dog is a thing.", Points: 2},
			{ID: "2", Type: worksheet.TypeFillBlank, Prompt: "The ___ barked.", CorrectAnswer: "dog", Points: 2},
			{ID: "3", Type: worksheet.TypeShortAnswer, Prompt: "What is a noun?", CorrectAnswer: "A naming word.", Points: 5},
		},
	}
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func testState(opts Options) (*SessionState, *clock) {
	c := &clock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := NewSessionState("ws-1", testWorksheet(), opts)
	s.Now = c.Now
	s.StartTime = c.now
	return s, c
}

func TestHandleAnswer_Correct(t *testing.T) {
	s, _ := testState(Options{})

	fb := HandleAnswer(s, "B")
	if fb == nil || !fb.Graded || !fb.Correct {
		t.Fatalf("expected graded correct feedback, got %+v", fb)
	}
	if s.Phase != PhaseFeedback {
		t.Errorf("phase = %d, want feedback", s.Phase)
	}
	if s.Answers["1"] != "B" {
		t.Errorf("answer not recorded: %q", s.Answers["1"])
	}
	if HandleAnswer(s, "dog") != nil {
		t.Error("answering during feedback should be ignored")
	}
}

func TestHandleAnswer_RetryBudget(t *testing.T) {
	s, _ := testState(Options{AllowRetries: true})

	for i := 0; i < MaxRetries; i++ {
		fb := HandleAnswer(s, "run")
		if !fb.CanRetry {
			t.Fatalf("try %d: expected retry", i+1)
		}
		if fb.RetriesLeft != MaxRetries-i {
			t.Errorf("try %d: retries left = %d, want %d", i+1, fb.RetriesLeft, MaxRetries-i)
		}
		if !Retry(s) {
			t.Fatalf("try %d: Retry should succeed", i+1)
		}
	}

	fb := HandleAnswer(s, "run")
	if fb.CanRetry {
		t.Error("retries should be exhausted")
	}
	if fb.Message != "Incorrect. The correct answer is: dog" {
		t.Errorf("unexpected message %q", fb.Message)
	}
	if Retry(s) {
		t.Error("Retry should fail once exhausted")
	}
}

func TestHandleAnswer_NoRetriesWhenDisabled(t *testing.T) {
	s, _ := testState(Options{})
	if fb := HandleAnswer(s, "run"); fb.CanRetry {
		t.Error("retries are disabled")
	}
}

func TestHandleAnswer_OpenQuestion(t *testing.T) {
	s, _ := testState(Options{})
	s.Index = 2

	fb := HandleAnswer(s, " A word that names things. ")
	if fb.Graded {
		t.Error("short answers are reviewed at the end")
	}
	if s.Answers["3"] != "A word that names things." {
		t.Errorf("answer not trimmed: %q", s.Answers["3"])
	}
}

func TestAdvanceAndBack(t *testing.T) {
	s, _ := testState(Options{})

	if Back(s) {
		t.Error("cannot go back from the first question")
	}
	HandleAnswer(s, "dog")
	if !Advance(s) || s.Index != 1 || s.Phase != PhaseAnswering {
		t.Fatalf("advance failed: index=%d phase=%d", s.Index, s.Phase)
	}
	if !Back(s) || s.Index != 0 {
		t.Fatalf("back failed: index=%d", s.Index)
	}
	Advance(s)
	Advance(s)
	if Advance(s) {
		t.Error("advancing past the last question should complete")
	}
	if s.Phase != PhaseComplete {
		t.Errorf("phase = %d, want complete", s.Phase)
	}
}

func TestHint(t *testing.T) {
	s, _ := testState(Options{})
	if _, ok := Hint(s); ok {
		t.Error("hints are disabled")
	}

	s, _ = testState(Options{ShowHints: true})
	hint, ok := Hint(s)
	if !ok || hint != "A dog is a thing." {
		t.Errorf("hint = %q, %v", hint, ok)
	}
	Advance(s)
	if _, ok := Hint(s); ok {
		t.Error("question without explanation has no hint")
	}
	if !s.HintsShown["1"] || len(s.HintsShown) != 1 {
		t.Errorf("hints shown = %v", s.HintsShown)
	}
}

func TestTimeLimit(t *testing.T) {
	s, c := testState(Options{TimeLimit: 10 * time.Minute})

	c.now = c.now.Add(4 * time.Minute)
	left, ok := Remaining(s)
	if !ok || left != 6*time.Minute {
		t.Errorf("remaining = %v, %v", left, ok)
	}

	c.now = c.now.Add(7 * time.Minute)
	if HandleAnswer(s, "dog") != nil {
		t.Error("answers after expiry are rejected")
	}
	if s.Phase != PhaseComplete {
		t.Error("session should be complete after expiry")
	}
	if Elapsed(s) != 10*time.Minute {
		t.Errorf("elapsed = %v, want capped at the limit", Elapsed(s))
	}
}

func TestUntimed(t *testing.T) {
	s, c := testState(Options{})
	c.now = c.now.Add(5 * time.Hour)
	if _, ok := Remaining(s); ok {
		t.Error("untimed session has no remaining time")
	}
	if CheckExpired(s) {
		t.Error("untimed session never expires")
	}
}

func TestBuildSummary(t *testing.T) {
	s, c := testState(Options{AllowRetries: true, ShowHints: true})

	Hint(s)
	HandleAnswer(s, "run")
	Retry(s)
	HandleAnswer(s, "dog")
	Advance(s)
	HandleAnswer(s, "cat")
	Advance(s)
	c.now = c.now.Add(3 * time.Minute)
	Finish(s)

	sum := BuildSummary(s)
	if sum.TotalQuestions != 3 || sum.Answered != 2 {
		t.Errorf("total/answered = %d/%d", sum.TotalQuestions, sum.Answered)
	}
	if sum.AutoGraded != 2 || sum.AutoCorrect != 1 {
		t.Errorf("auto graded/correct = %d/%d", sum.AutoGraded, sum.AutoCorrect)
	}
	if sum.Retries != 1 || sum.HintsUsed != 1 {
		t.Errorf("retries/hints = %d/%d", sum.Retries, sum.HintsUsed)
	}
	if sum.Duration != 3*time.Minute || sum.TimedOut {
		t.Errorf("duration = %v timedOut = %v", sum.Duration, sum.TimedOut)
	}
	if snap := AnswerSnapshot(s); snap["1"] != "dog" || len(snap) != 2 {
		t.Errorf("snapshot = %v", snap)
	}
}

func TestEmptyWorksheetCompletesImmediately(t *testing.T) {
	s := NewSessionState("ws", &worksheet.Worksheet{}, Options{})
	if s.Phase != PhaseComplete {
		t.Error("empty worksheet should complete at once")
	}
}
