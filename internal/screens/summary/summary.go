package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/session"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/ui/theme"
)

// SummaryScreen displays the practice summary. Leaving it ends the
// program; grading happens afterwards.
type SummaryScreen struct {
	summary *session.SessionSummary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit for grading"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	heading := "Worksheet complete!"
	if sum.TimedOut {
		heading = "Time's up!"
	}
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(heading))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.TextDim).Render(
		"Time spent: " + layout.FormatClock(int(sum.Duration.Seconds()))))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Answered", sum.Answered, sum.TotalQuestions, true, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Questions: %d    Answered: %d", sum.TotalQuestions, sum.Answered)
	if sum.AutoGraded > 0 {
		stats += fmt.Sprintf("    Checked so far: %d/%d correct", sum.AutoCorrect, sum.AutoGraded)
	}
	b.WriteString(center.Foreground(theme.Text).Render(stats))
	b.WriteString("\n")

	var extras []string
	if sum.HintsUsed > 0 {
		extras = append(extras, fmt.Sprintf("Hints used: %d", sum.HintsUsed))
	}
	if sum.Retries > 0 {
		extras = append(extras, fmt.Sprintf("Retries: %d", sum.Retries))
	}
	if len(extras) > 0 {
		b.WriteString(center.Foreground(theme.TextDim).Render(strings.Join(extras, "    ")))
		b.WriteString("\n")
	}

	if open := sum.Answered - sum.AutoGraded; open > 0 {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Accent).Render(
			fmt.Sprintf("%d written %s will be reviewed after you submit.", open, plural(open))))
		b.WriteString("\n")
	}
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return "answer"
	}
	return "answers"
}
