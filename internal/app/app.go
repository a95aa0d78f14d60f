package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rechenquiz/rechenquiz/internal/router"
	"github.com/rechenquiz/rechenquiz/internal/screen"
	"github.com/rechenquiz/rechenquiz/internal/screens/quiz"
	"github.com/rechenquiz/rechenquiz/internal/screens/start"
	"github.com/rechenquiz/rechenquiz/internal/session"
	"github.com/rechenquiz/rechenquiz/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Session      *session.Session
	TickInterval time.Duration
	Logger       *slog.Logger

	// UpdateCheck, if set, is run once in the background by the start screen.
	UpdateCheck func() (string, error)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *session.Session
	logger *slog.Logger
	width  int
	height int
}

// New creates an AppModel showing the start screen.
func New(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	quizFactory := func() screen.Screen {
		return quiz.New(opts.Session, opts.TickInterval)
	}

	var startOpts []start.Option
	if opts.UpdateCheck != nil {
		startOpts = append(startOpts, start.WithUpdateCheck(opts.UpdateCheck))
	}

	return AppModel{
		router: router.New(start.New(opts.Session, quizFactory, startOpts...)),
		sess:   opts.Session,
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.logger.Info("quit requested", "session_id", m.sess.ID(), "status", m.sess.Status().String())
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

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStatus(), m.width)

	footerHints := screen.Hints(active, []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Beenden"},
	})
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := layout.ContentHeight(header, footer, m.height)
	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// headerStatus shows the score of the current or last run.
func (m AppModel) headerStatus() string {
	if m.sess.Status() == session.StatusIdle && m.sess.ID() == "" {
		return ""
	}
	return fmt.Sprintf("✓ %d  ✗ %d  ", m.sess.Correct(), m.sess.Wrong())
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
