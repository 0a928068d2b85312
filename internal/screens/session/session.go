package session

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/screens/summary"
	sess "github.com/abhisek/wordiz/internal/session"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/worksheet"
)

const answerCharLimit = 2000

// SessionScreen implements screen.Screen for an active practice run.
type SessionScreen struct {
	state       *sess.SessionState
	mc          components.MultiChoice
	input       components.TextInput
	mcActive    bool
	hint        string
	confirmQuit bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen over state.
func New(state *sess.SessionState) *SessionScreen {
	s := &SessionScreen{state: state}
	s.loadQuestion()
	return s
}

// Init starts the clock. The time limit counts from the first question,
// not from when the worksheet was opened.
func (s *SessionScreen) Init() tea.Cmd {
	if s.state.Phase == sess.PhaseComplete {
		return func() tea.Msg { return sessionEndMsg{} }
	}
	s.state.StartTime = s.state.Now()
	cmds := []tea.Cmd{tickCmd()}
	if !s.mcActive {
		cmds = append(cmds, s.input.Init())
	}
	return tea.Batch(cmds...)
}

func (s *SessionScreen) Title() string {
	return s.state.Worksheet.Title
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Finish"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.Phase == sess.PhaseFeedback {
		hints := []layout.KeyHint{{Key: "any key", Description: "Next"}}
		if fb := s.state.LastFeedback; fb != nil && fb.CanRetry {
			hints = append([]layout.KeyHint{{Key: "R", Description: "Try again"}}, hints...)
		}
		return hints
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Skip"},
		{Key: "Shift+Tab", Description: "Back"},
	}
	if s.state.Options.ShowHints {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+T", Description: "Hint"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Finish"})
}

func (s *SessionScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height, s.unanswered())
	}
	if s.state.Phase == sess.PhaseFeedback {
		return s.renderFeedback(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state.Phase == sess.PhaseAnswering && !s.confirmQuit && !s.mcActive {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// loadQuestion prepares the answer widget for the current question,
// prefilled with any earlier answer.
func (s *SessionScreen) loadQuestion() {
	s.hint = ""
	q, ok := sess.CurrentQuestion(s.state)
	if !ok {
		return
	}
	prev := s.state.Answers[q.ID]
	s.mcActive = q.Type == worksheet.TypeMultipleChoice && len(q.Options) > 0
	if s.mcActive {
		s.mc = components.NewMultiChoice(q.Options, prev)
		return
	}
	placeholder := "Type your answer..."
	if q.Type == worksheet.TypeEssay {
		placeholder = "Write your response..."
	}
	s.input = components.NewTextInput(placeholder, prev, answerCharLimit)
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.state.Phase == sess.PhaseComplete {
		return s, nil
	}
	if sess.CheckExpired(s.state) {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	return s, tickCmd()
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	sess.Finish(s.state)
	sum := sess.BuildSummary(s.state)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.state.Phase == sess.PhaseComplete {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.state.Phase == sess.PhaseFeedback {
		if (key == "r" || key == "R") && sess.Retry(s.state) {
			s.loadQuestion()
			return s, s.focusCmd()
		}
		return s.next()
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "tab":
		return s.next()
	case "shift+tab":
		if sess.Back(s.state) {
			s.loadQuestion()
			return s, s.focusCmd()
		}
		return s, nil
	case "ctrl+t":
		if h, ok := sess.Hint(s.state); ok {
			s.hint = h
		}
		return s, nil
	}

	if s.mcActive {
		var picked bool
		s.mc, picked = s.mc.Update(msg)
		if picked {
			return s.submit(s.mc.Value())
		}
		return s, nil
	}

	if key == "enter" {
		if s.input.Value() == "" {
			return s, nil
		}
		return s.submit(s.input.Value())
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) submit(answer string) (screen.Screen, tea.Cmd) {
	fb := sess.HandleAnswer(s.state, answer)
	if fb == nil {
		if s.state.Phase == sess.PhaseComplete {
			return s, func() tea.Msg { return sessionEndMsg{} }
		}
		return s, nil
	}
	if s.mcActive && fb.Graded && !fb.CanRetry {
		q, _ := sess.CurrentQuestion(s.state)
		if i, ok := optionPosition(q); ok {
			s.mc.Correct = i
		}
	}
	return s, nil
}

// next advances past the current question, ending the run after the last.
func (s *SessionScreen) next() (screen.Screen, tea.Cmd) {
	if !sess.Advance(s.state) {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.loadQuestion()
	return s, s.focusCmd()
}

func (s *SessionScreen) focusCmd() tea.Cmd {
	if s.mcActive {
		return nil
	}
	return s.input.Init()
}

func (s *SessionScreen) unanswered() int {
	n := 0
	for _, q := range s.state.Worksheet.Questions {
		if s.state.Answers[q.ID] == "" {
			n++
		}
	}
	return n
}

func optionPosition(q worksheet.Question) (int, bool) {
	for i, opt := range q.Options {
		if strings.EqualFold(opt, q.CorrectAnswer) {
			return i, true
		}
	}
	return 0, false
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
