package summary

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

// SummaryScreen displays the result of an ended run.
type SummaryScreen struct {
	sess *session.Session
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen for an ended session.
func New(sess *session.Session) *SummaryScreen {
	return &SummaryScreen{sess: sess}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Ergebnis"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Nochmal spielen"},
		{Key: "Q", Description: "Beenden"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Back to the start screen with an idle session.
			s.sess.Reset()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.sess.Summary()
	if sum == nil {
		return ""
	}

	center := func(st lipgloss.Style, text string) string {
		return layout.Centered(st, width, text)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), "Die Zeit ist abgelaufen!"))
	b.WriteString("\n\n")

	variant := components.MascotSad
	headline := "Knapp daneben! Versuch es gleich nochmal."
	headStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if sum.Won() {
		variant = components.MascotCelebrating
		headline = "Super gemacht! Du hast gewonnen!"
		headStyle = lipgloss.NewStyle().Foreground(theme.Celebrate).Bold(true)
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.RenderMascot(variant)))
	b.WriteString("\n\n")
	b.WriteString(center(headStyle, headline))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("%s %d        %s %d        Genauigkeit: %.0f%%",
		lipgloss.NewStyle().Foreground(theme.Success).Render("Richtig:"),
		sum.Correct,
		lipgloss.NewStyle().Foreground(theme.Error).Render("Falsch:"),
		sum.Wrong,
		sum.Accuracy*100,
	)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), stats))
	b.WriteString("\n\n")

	secs := int(sum.Duration.Seconds())
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Aufgaben: %d    Dauer: %s", sum.Presented, countdown.Format(secs))))

	content := b.String()
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}
