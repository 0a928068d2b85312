// Package app runs the terminal practice program for one worksheet.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	practice "github.com/abhisek/wordiz/internal/screens/session"
	"github.com/abhisek/wordiz/internal/screens/welcome"
	"github.com/abhisek/wordiz/internal/session"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/worksheet"
)

// Result is the outcome of a practice run.
type Result struct {
	State   *session.SessionState
	Summary *session.SessionSummary

	// Completed is false when the student quit before the summary.
	Completed bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	state  *session.SessionState
	width  int
	height int
}

func newAppModel(state *session.SessionState) AppModel {
	start := func() screen.Screen { return practice.New(state) }
	return AppModel{
		router: router.New(welcome.New(state.Worksheet, state.Options, start)),
		state:  state,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}
	if len(hints) == 0 {
		hints = []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}

	status := ""
	if left, ok := session.Remaining(m.state); ok && m.state.Phase != session.PhaseComplete && !m.state.StartTime.IsZero() {
		status = "⏱ " + layout.FormatClock(int(left.Seconds()))
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run practices ws interactively and returns the recorded answers once
// the student submits or quits.
func Run(worksheetID string, ws *worksheet.Worksheet, opts session.Options) (*Result, error) {
	state := session.NewSessionState(worksheetID, ws, opts)

	p := tea.NewProgram(newAppModel(state))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return nil, err
	}

	completed := state.Phase == session.PhaseComplete
	session.Finish(state)
	return &Result{
		State:     state,
		Summary:   session.BuildSummary(state),
		Completed: completed,
	}, nil
}
