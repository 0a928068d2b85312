package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiChoiceArrowAndEnter(t *testing.T) {
	m := NewMultiChoice([]string{"run", "table", "quickly", "blue"}, "")

	m, picked := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if picked {
		t.Fatal("moving the cursor should not pick")
	}
	m, picked = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !picked {
		t.Fatal("expected enter to pick")
	}
	if got := m.Value(); got != "table" {
		t.Errorf("Value() = %q, want %q", got, "table")
	}
}

func TestMultiChoiceLetterAndDigit(t *testing.T) {
	m := NewMultiChoice([]string{"run", "table", "quickly", "blue"}, "")

	m, picked := m.Update(keyPress('c'))
	if !picked || m.Value() != "quickly" {
		t.Errorf("letter c: picked=%v value=%q", picked, m.Value())
	}

	m, picked = m.Update(keyPress('4'))
	if !picked || m.Value() != "blue" {
		t.Errorf("digit 4: picked=%v value=%q", picked, m.Value())
	}

	// Out of range letters are ignored.
	m, picked = m.Update(keyPress('z'))
	if picked || m.Value() != "blue" {
		t.Errorf("letter z: picked=%v value=%q", picked, m.Value())
	}
}

func TestMultiChoicePreselectsCurrentAnswer(t *testing.T) {
	m := NewMultiChoice([]string{"run", "table"}, "Table")
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
	if !strings.Contains(m.View(), "B)  table") {
		t.Errorf("view missing lettered option:\n%s", m.View())
	}
}

func TestProgressBarClamps(t *testing.T) {
	p := NewProgressBar("", 3, 2, true, 20)
	if !strings.Contains(p.View(), "150%") {
		t.Errorf("expected raw percent label, got %q", p.View())
	}
	if strings.Contains(p.View(), "░") {
		t.Error("overfull bar should have no empty cells")
	}

	empty := NewProgressBar("Q", 0, 0, false, 10)
	if strings.Contains(empty.View(), "█") {
		t.Error("zero total should render an empty bar")
	}
}
