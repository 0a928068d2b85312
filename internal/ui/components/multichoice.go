package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/ui/theme"
	"github.com/abhisek/wordiz/internal/worksheet"
)

// MultiChoice is a lettered option selector. Arrow keys move the cursor;
// a letter or digit picks an option directly.
type MultiChoice struct {
	Options  []string
	Selected int

	// Chosen is the submitted option, -1 until a choice is made.
	Chosen int

	// Correct is the index to highlight once revealed, -1 to hide.
	Correct int
}

// NewMultiChoice creates a selector with the cursor on the option whose
// text equals current, if any.
func NewMultiChoice(options []string, current string) MultiChoice {
	m := MultiChoice{Options: options, Chosen: -1, Correct: -1}
	for i, opt := range options {
		if strings.EqualFold(opt, current) {
			m.Selected = i
		}
	}
	return m
}

// Update handles navigation. It reports true when the student picked an
// option with enter, a letter or a digit.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, false
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, false
	case "enter":
		m.Chosen = m.Selected
		return m, true
	}

	if len(key) == 1 {
		i, ok := worksheet.OptionIndex(key)
		if !ok && key[0] >= '1' && key[0] <= '9' {
			i, ok = int(key[0]-'1'), true
		}
		if ok && i < len(m.Options) {
			m.Selected, m.Chosen = i, i
			return m, true
		}
	}
	return m, false
}

// Value returns the chosen option text.
func (m MultiChoice) Value() string {
	if m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return ""
	}
	return m.Options[m.Chosen]
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && m.Correct < 0 {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, worksheet.OptionLetter(i), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Correct >= 0 && i == m.Correct:
			style = theme.Correct
		case m.Correct >= 0 && i == m.Chosen:
			style = theme.Incorrect
		case m.Correct >= 0:
			style = theme.Muted
		case i == m.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
