package components

import (
	"charm.land/lipgloss/v2"

	"github.com/adhdflow/adhdflow/internal/ui/theme"
)

// ContentWidth returns the width used for centred content blocks so every
// screen lines up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

// Card wraps content in a rounded border at width cw.
func Card(content string, cw int) string {
	return theme.Card.Width(cw).Render(content)
}

// FocusedCard is Card with the accent border.
func FocusedCard(content string, cw int) string {
	return theme.FocusedCard.Width(cw).Render(content)
}

// Centered renders s centred on a line of width w.
func Centered(s string, w int) string {
	return lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(s)
}
