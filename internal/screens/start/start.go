package start

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rechenquiz/rechenquiz/internal/countdown"
	"github.com/rechenquiz/rechenquiz/internal/router"
	"github.com/rechenquiz/rechenquiz/internal/screen"
	"github.com/rechenquiz/rechenquiz/internal/session"
	"github.com/rechenquiz/rechenquiz/internal/ui/components"
	"github.com/rechenquiz/rechenquiz/internal/ui/layout"
	"github.com/rechenquiz/rechenquiz/internal/ui/theme"
)

// StartScreen introduces the game and starts a run on Enter.
type StartScreen struct {
	sess        *session.Session
	quizFactory func() screen.Screen
	button      components.Button

	// checkUpdate returns a newer release tag or "". Nil disables the check.
	checkUpdate func() (string, error)
	newVersion  string
}

// updateCheckedMsg carries the result of the background release check.
type updateCheckedMsg struct {
	Version string
	Err     error
}

// Option configures a StartScreen.
type Option func(*StartScreen)

// WithUpdateCheck looks for a newer release once, when the screen is first
// shown, and advertises it under the start button.
func WithUpdateCheck(check func() (string, error)) Option {
	return func(s *StartScreen) { s.checkUpdate = check }
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates a StartScreen. quizFactory builds the screen pushed once the
// session has been started.
func New(sess *session.Session, quizFactory func() screen.Screen, opts ...Option) *StartScreen {
	s := &StartScreen{
		sess:        sess,
		quizFactory: quizFactory,
	}
	s.button = components.NewButton("Spiel starten", s.start)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *StartScreen) Init() tea.Cmd {
	if s.checkUpdate == nil {
		return nil
	}
	check := s.checkUpdate
	return func() tea.Msg {
		v, err := check()
		return updateCheckedMsg{Version: v, Err: err}
	}
}

func (s *StartScreen) Title() string {
	return "Start"
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		s.button.KeyHint(),
		{Key: "q", Description: "Beenden"},
	}
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(updateCheckedMsg); ok {
		// A failed check is not worth bothering the player with.
		if m.Err == nil {
			s.newVersion = m.Version
		}
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return s, tea.Quit
	}

	var cmd tea.Cmd
	s.button, cmd = s.button.Update(msg)
	return s, cmd
}

// start begins the run and pushes the quiz. A session that is already
// running (a stray second Enter) is left alone.
func (s *StartScreen) start() tea.Cmd {
	if !s.sess.Start() {
		return nil
	}
	quiz := s.quizFactory()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quiz}
	}
}

func (s *StartScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, components.RenderMascot(components.MascotIdle))
	sections = append(sections, "")
	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	for _, line := range s.rules() {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Render(line))
	}

	sections = append(sections, "")
	sections = append(sections, s.button.View())

	if s.newVersion != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("Neue Version %s verfügbar: rechenquiz update", s.newVersion)))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *StartScreen) rules() []string {
	retries := s.sess.Retries()
	tries := "einen zweiten Versuch"
	if retries == 0 {
		tries = "keinen zweiten Versuch"
	} else if retries > 1 {
		tries = fmt.Sprintf("%d weitere Versuche", retries)
	}

	return []string{
		fmt.Sprintf("Löse in %s Minuten so viele Aufgaben wie möglich.", countdown.Format(s.sess.Duration())),
		fmt.Sprintf("Bei einer falschen Antwort hast du %s.", tries),
		"Du gewinnst, wenn du mehr richtige als falsche Antworten hast.",
	}
}
