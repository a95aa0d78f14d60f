package quiz

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rechenquiz/rechenquiz/internal/countdown"
	"github.com/rechenquiz/rechenquiz/internal/session"
	"github.com/rechenquiz/rechenquiz/internal/ui/components"
	"github.com/rechenquiz/rechenquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestionView(width, height)
}

// renderQuestionView renders the active question with score and clock.
func (s *QuizScreen) renderQuestionView(width, height int) string {
	q := s.sess.Current()
	if q == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Zeit abgelaufen"))
	}

	var b strings.Builder

	// Info line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Aufgabe %d", s.sess.Presented()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  %s %d  %s %s",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.sess.Correct(),
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗"),
			s.sess.Wrong(),
			lipgloss.NewStyle().Foreground(theme.Accent).Render("⏱"),
			countdown.Format(s.sess.Remaining()),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", countdown.Fraction(s.sess.Remaining(), s.sess.Duration()), max(width-4, 4))
	if s.sess.Remaining() <= 10 {
		bar.Fill = theme.Error
	}
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n\n")

	// Question text (centered).
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Antwort: " + s.input.View())
	b.WriteString(answerLine)
	b.WriteString("\n\n")

	b.WriteString(renderFeedback(s.sess.Feedback(), width))

	if s.sess.AttemptsLeft() < s.sess.Retries() && !s.sess.AdvancePending() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(attemptsHint(s.sess.AttemptsLeft())))
	}

	return b.String()
}

func attemptsHint(left int) string {
	switch left {
	case 0:
		return "Letzter Versuch"
	case 1:
		return "Noch 1 Versuch"
	default:
		return fmt.Sprintf("Noch %d Versuche", left)
	}
}

// renderFeedback colors the feedback line by its category.
func renderFeedback(fb session.Feedback, width int) string {
	if fb.Message == "" {
		return ""
	}

	var fg color.Color = theme.TextDim
	switch fb.Category() {
	case session.CategoryCorrect:
		fg = theme.Success
	case session.CategoryWrong:
		fg = theme.Error
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Bold(true).
		Render(fb.Message)
}

func renderQuitConfirm(width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 4).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Spiel wirklich beenden?"),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Y: beenden   N: weiterspielen"),
		))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
