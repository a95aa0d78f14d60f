package components

import (
	"charm.land/lipgloss/v2"

	"github.com/rechenquiz/rechenquiz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star eyes: the run was won
	MascotSad                              // Orange, drooping: the run was lost
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ +−= │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ +−= │
└─╥═╥─┘
  ╚═╝`

const mascotSad = `┌─────┐
│ ╥ ╥ │
│  ︵ │
│ +−= │
└─────┘`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch variant {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Celebrate
	case MascotSad:
		art = mascotSad
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
