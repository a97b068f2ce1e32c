package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/baselearn/internal/ui/theme"
)

const bannerArt = `
 ██████╗  █████╗ ███████╗███████╗
 ██╔══██╗██╔══██╗██╔════╝██╔════╝
 ██████╔╝███████║███████╗█████╗
 ██╔══██╗██╔══██║╚════██║██╔══╝
 ██████╔╝██║  ██║███████║███████╗
 ╚═════╝ ╚═╝  ╚═╝╚══════╝╚══════╝`

const bannerCompact = "B A S E"

// RenderBanner returns the BASE banner in Base blue, or a one-line
// fallback below 36 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 36 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
