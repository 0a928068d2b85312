package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/session"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/ui/theme"
	"github.com/abhisek/wordiz/internal/worksheet"
)

const (
	tickInterval = 100 * time.Millisecond
	revealAfter  = 800 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen introduces the worksheet before the clock starts.
type WelcomeScreen struct {
	ws           *worksheet.Worksheet
	opts         session.Options
	startFactory func() screen.Screen
	elapsed      time.Duration
	started      bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. Enter replaces it with the screen made by
// startFactory.
func New(ws *worksheet.Worksheet, opts session.Options, startFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{ws: ws, opts: opts, startFactory: startFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.elapsed >= revealAfter {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyMsg:
		// The first key press skips the animation.
		if w.elapsed < revealAfter {
			w.elapsed = revealAfter
			return w, nil
		}
		if msg.String() == "enter" {
			return w, w.start()
		}
	}
	return w, nil
}

func (w *WelcomeScreen) start() tea.Cmd {
	if w.started {
		return nil
	}
	w.started = true
	next := w.startFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width)}

	if w.elapsed >= revealAfter && w.ws != nil {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.ws.Title))
		if w.ws.Instructions != "" {
			sections = append(sections, "",
				lipgloss.NewStyle().Width(min(width-8, 70)).Align(lipgloss.Center).
					Foreground(theme.Text).Render(w.ws.Instructions))
		}
		sections = append(sections, "", theme.Muted.Render(w.details()), "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press Enter to begin"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (w *WelcomeScreen) details() string {
	parts := []string{fmt.Sprintf("%d questions", len(w.ws.Questions))}
	if w.opts.TimeLimit > 0 {
		parts = append(parts, fmt.Sprintf("%d minutes", int(w.opts.TimeLimit.Minutes())))
	} else {
		parts = append(parts, "untimed")
	}
	if w.opts.ShowHints {
		parts = append(parts, "hints on")
	}
	if w.opts.AllowRetries {
		parts = append(parts, fmt.Sprintf("%d retries per question", session.MaxRetries))
	}
	return strings.Join(parts, " · ")
}
