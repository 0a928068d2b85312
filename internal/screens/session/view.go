package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/wordiz/internal/session"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/ui/theme"
	"github.com/abhisek/wordiz/internal/worksheet"
)

// renderInfoLine renders the position, answered count and countdown.
func (s *SessionScreen) renderInfoLine(width int) string {
	state := s.state
	total := len(state.Worksheet.Questions)

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", state.Index+1, total))

	right := fmt.Sprintf("Answered %d/%d", total-s.unanswered(), total)
	if left, ok := sess.Remaining(state); ok {
		right += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render("T") +
			" " + layout.FormatClock(int(left.Seconds()))
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)

	line := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + infoRight
	}
	bar := components.NewProgressBar("", state.Index+1, total, false, min(width-4, 60))
	return line + "\n  " + bar.View()
}

// renderQuestionView renders the active question.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	q, ok := sess.CurrentQuestion(s.state)
	if !ok {
		return theme.Muted.Width(width).Align(lipgloss.Center).Render("\n\n  No questions.")
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	textWidth := min(width-8, 80)
	b.WriteString(theme.Muted.Render("  " + typeLabel(q.Type) + fmt.Sprintf(" · %d pts", q.Points)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(textWidth).
		PaddingLeft(2).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	if s.mcActive {
		b.WriteString(indent(s.mc.View()))
	} else {
		b.WriteString("  Answer: " + s.input.View())
		b.WriteString("\n")
	}

	if s.hint != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(textWidth).PaddingLeft(2).Render("Hint: " + s.hint))
		b.WriteString("\n")
	}

	return b.String()
}

// renderFeedback renders the outcome of the last answer.
func (s *SessionScreen) renderFeedback(width, height int) string {
	fb := s.state.LastFeedback
	q, _ := sess.CurrentQuestion(s.state)

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(min(width-8, 80)).PaddingLeft(2).Foreground(theme.Text).Render(q.Prompt))
	b.WriteString("\n\n")
	if s.mcActive {
		b.WriteString(indent(s.mc.View()))
		b.WriteString("\n")
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if fb != nil {
		style := theme.Body
		switch {
		case fb.Graded && fb.Correct:
			style = theme.Correct
		case fb.Graded:
			style = theme.Incorrect
		}
		b.WriteString(center.Inherit(style).Render(fb.Message))
		b.WriteString("\n")
		if fb.CanRetry {
			b.WriteString(center.Foreground(theme.TextDim).Render(
				fmt.Sprintf("%d %s left", fb.RetriesLeft, plural(fb.RetriesLeft, "try", "tries"))))
			b.WriteString("\n")
		}
		if !fb.Graded {
			b.WriteString(center.Foreground(theme.TextDim).Render("This answer will be reviewed when you finish."))
			b.WriteString("\n")
		}
	}

	if fb != nil && fb.Graded && !fb.CanRetry && q.Explanation != "" {
		b.WriteString("\n")
		exp := lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.Text).Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Press any key to continue..."))
	return b.String()
}

// renderQuitConfirm renders the finish-early dialog.
func renderQuitConfirm(width, height, unanswered int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Finish the worksheet now?"))
	b.WriteString("\n")
	if unanswered > 0 {
		b.WriteString(center.Foreground(theme.TextDim).Render(
			fmt.Sprintf("%d %s still unanswered.", unanswered, plural(unanswered, "question is", "questions are"))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Success).Render("[Y] Yes, finish"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

func typeLabel(t worksheet.QuestionType) string {
	switch t {
	case worksheet.TypeMultipleChoice:
		return "Multiple choice"
	case worksheet.TypeFillBlank:
		return "Fill in the blank"
	case worksheet.TypeShortAnswer:
		return "Short answer"
	case worksheet.TypeEssay:
		return "Essay"
	}
	return string(t)
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n") + "\n"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
