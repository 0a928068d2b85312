package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordiz/internal/session"
)

func testSummary() *session.SessionSummary {
	return &session.SessionSummary{
		Duration:       7*time.Minute + 5*time.Second,
		TotalQuestions: 10,
		Answered:       8,
		AutoGraded:     6,
		AutoCorrect:    5,
		HintsUsed:      2,
		Retries:        1,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := New(testSummary()).View(80, 24)
	for _, want := range []string{"Worksheet complete!", "7:05", "5/6 correct", "Hints used: 2", "2 written answers"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_TimedOut(t *testing.T) {
	sum := testSummary()
	sum.TimedOut = true
	if view := New(sum).View(80, 24); !strings.Contains(view, "Time's up!") {
		t.Error("expected timed out heading")
	}
}

func TestSummaryScreen_EnterQuits(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected Enter to quit")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	if hints := New(testSummary()).KeyHints(); len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
