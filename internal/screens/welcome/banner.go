package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/ui/theme"
)

const bannerArt = `
 ██╗    ██╗ ██████╗ ██████╗ ██████╗ ██╗███████╗
 ██║    ██║██╔═══██╗██╔══██╗██╔══██╗██║╚══███╔╝
 ██║ █╗ ██║██║   ██║██████╔╝██║  ██║██║  ███╔╝
 ██║███╗██║██║   ██║██╔══██╗██║  ██║██║ ███╔╝
 ╚███╔███╔╝╚██████╔╝██║  ██║██████╔╝██║███████╗
  ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "W O R D I Z"

// RenderBanner returns the WORDIZ banner, compact below 49 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 49 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
