package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/adhdflow/adhdflow/internal/ui/theme"
)

const bannerArt = `
 █████╗ ██████╗ ██╗  ██╗██████╗     ███████╗██╗      ██████╗ ██╗    ██╗
██╔══██╗██╔══██╗██║  ██║██╔══██╗    ██╔════╝██║     ██╔═══██╗██║    ██║
███████║██║  ██║███████║██║  ██║    █████╗  ██║     ██║   ██║██║ █╗ ██║
██╔══██║██║  ██║██╔══██║██║  ██║    ██╔══╝  ██║     ██║   ██║██║███╗██║
██║  ██║██████╔╝██║  ██║██████╔╝    ██║     ███████╗╚██████╔╝╚███╔███╔╝
╚═╝  ╚═╝╚═════╝ ╚═╝  ╚═╝╚═════╝     ╚═╝     ╚══════╝ ╚═════╝  ╚══╝╚══╝`

const bannerCompact = "A D H D   F L O W"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 72

// RenderBanner returns the app banner, or a one-line version when width
// cannot fit the block letters.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
