package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rechenquiz/rechenquiz/internal/countdown"
	"github.com/rechenquiz/rechenquiz/internal/router"
	"github.com/rechenquiz/rechenquiz/internal/screen"
	"github.com/rechenquiz/rechenquiz/internal/screens/summary"
	"github.com/rechenquiz/rechenquiz/internal/session"
	"github.com/rechenquiz/rechenquiz/internal/ui/components"
	"github.com/rechenquiz/rechenquiz/internal/ui/layout"
)

// QuizScreen runs a started session: it drives the clock, takes answers and
// hands over to the summary screen when time is up.
type QuizScreen struct {
	sess     *session.Session
	interval time.Duration
	input    components.TextInput

	// pendingToken is the advance the screen is waiting for, 0 if none.
	pendingToken uint64
	confirmQuit  bool
	finished     bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for a session that has already been started.
// interval is the real time between two countdown steps.
func New(sess *session.Session, interval time.Duration) *QuizScreen {
	if interval <= 0 {
		interval = countdown.DefaultInterval
	}
	return &QuizScreen{
		sess:     sess,
		interval: interval,
		input:    components.NewTextInput("Deine Antwort...", true, 6),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(
		s.input.Init(),
		tickCmd(s.sess.ID(), s.interval),
	)
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Spiel beenden"},
			{Key: "N", Description: "Weiterspielen"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Prüfen"},
		{Key: "Esc", Description: "Beenden"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick(msg)

	case advanceMsg:
		return s.handleAdvance(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if msg.SessionID != s.sess.ID() || s.sess.Status() != session.StatusRunning {
		return s, nil
	}

	s.sess.Tick()
	if s.sess.Status() == session.StatusEnded {
		return s, s.finish()
	}
	return s, tickCmd(s.sess.ID(), s.interval)
}

func (s *QuizScreen) handleAdvance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	if msg.SessionID != s.sess.ID() {
		return s, nil
	}
	if s.sess.Advance(msg.Token) {
		s.pendingToken = 0
		s.input.Clear()
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, tea.Quit
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	res := s.sess.Submit(s.input.Value())
	if res.Ignored() {
		return s, nil
	}

	if res.Kind != session.FeedbackInvalid {
		s.input.Clear()
	}

	if res.Advance != nil {
		s.pendingToken = res.Advance.Token
		return s, advanceCmd(s.sess.ID(), res.Advance.Token, res.Advance.Delay)
	}
	return s, nil
}

// finish swaps the quiz for the summary screen once.
func (s *QuizScreen) finish() tea.Cmd {
	if s.finished {
		return nil
	}
	s.finished = true
	s.pendingToken = 0
	next := summary.New(s.sess)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}
