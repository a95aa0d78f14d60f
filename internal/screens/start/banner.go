package start

import (
	"charm.land/lipgloss/v2"

	"github.com/rechenquiz/rechenquiz/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ███████╗ ██████╗██╗  ██╗███████╗███╗   ██╗ ██████╗ ██╗   ██╗██╗███████╗
 ██╔══██╗██╔════╝██╔════╝██║  ██║██╔════╝████╗  ██║██╔═══██╗██║   ██║██║╚══███╔╝
 ██████╔╝█████╗  ██║     ███████║█████╗  ██╔██╗ ██║██║   ██║██║   ██║██║  ███╔╝
 ██╔══██╗██╔══╝  ██║     ██╔══██║██╔══╝  ██║╚██╗██║██║▄▄ ██║██║   ██║██║ ███╔╝
 ██║  ██║███████╗╚██████╗██║  ██║███████╗██║ ╚████║╚██████╔╝╚██████╔╝██║███████╗
 ╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═══╝ ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "R E C H E N Q U I Z"

// bannerMinWidth is the narrowest terminal that fits the block banner.
const bannerMinWidth = 84

// RenderBanner returns the RECHENQUIZ banner styled in the primary color,
// falling back to spaced letters on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
