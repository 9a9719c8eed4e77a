package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgame/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██╗   ██╗██╗███████╗ ██████╗  █████╗ ███╗   ███╗███████╗
 ██╔═══██╗██║   ██║██║╚══███╔╝██╔════╝ ██╔══██╗████╗ ████║██╔════╝
 ██║   ██║██║   ██║██║  ███╔╝ ██║  ███╗███████║██╔████╔██║█████╗
 ██║▄▄ ██║██║   ██║██║ ███╔╝  ██║   ██║██╔══██║██║╚██╔╝██║██╔══╝
 ╚██████╔╝╚██████╔╝██║███████╗╚██████╔╝██║  ██║██║ ╚═╝ ██║███████╗
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝ ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝`

const bannerCompact = "Q U I Z G A M E"

// bannerMinWidth is the narrowest terminal that fits the block banner.
const bannerMinWidth = 70

// RenderBanner returns the QUIZGAME banner styled in the primary color,
// or the compact fallback on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
