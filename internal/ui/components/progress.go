package components

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adhdflow/adhdflow/internal/ui/theme"
)

// ProgressBar is a one-line horizontal bar. Percent is clamped to 0..1.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

const minBarWidth = 4

func (p ProgressBar) View() string {
	pct := min(max(p.Percent, 0), 1)

	var head, tail string
	if p.Label != "" {
		head = theme.Body.Render(p.Label) + "  "
	}
	if p.ShowPercent {
		tail = theme.Subtitle.Render("  " + strconv.Itoa(int(pct*100)) + "%")
	}

	bar := max(p.Width-lipgloss.Width(head)-lipgloss.Width(tail), minBarWidth)
	filled := int(float64(bar) * pct)
	return head +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", bar-filled)) +
		tail
}
