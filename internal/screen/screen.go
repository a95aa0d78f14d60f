// Package screen defines what the router stacks: the start, quiz and
// summary views of a run.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/rechenquiz/rechenquiz/internal/ui/layout"
)

// Screen is one full-window view. The app draws the header and footer
// around whatever View returns.
type Screen interface {
	// Init runs when the screen becomes active.
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body into the space left between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer keys.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Hints returns the footer keys of s, or fallback when s has none.
func Hints(s Screen, fallback []layout.KeyHint) []layout.KeyHint {
	p, ok := s.(KeyHintProvider)
	if !ok {
		return fallback
	}
	if hints := p.KeyHints(); len(hints) > 0 {
		return hints
	}
	return fallback
}
