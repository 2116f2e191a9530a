// Package layout draws the frame around every screen: a header with the
// app name and screen title, the body, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/adhdflow/adhdflow/internal/ui/theme"
)

// AppName is shown at the left edge of the header.
const AppName = "ADHD Flow"

// Minimum terminal size, and the fixed bar heights (one line plus border).
const (
	MinWidth     = 80
	MinHeight    = 24
	HeaderHeight = 3
	FooterHeight = 3
)

var bar = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border)

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small\n\nPlease resize to at least %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return theme.Body.Width(width).Height(height).Align(lipgloss.Center, lipgloss.Center).Render(msg)
}

// RenderHeader puts the app name on the left, title in the middle and the
// optional status (quiz progress, for example) on the right.
func RenderHeader(title, status string, width int) string {
	left := theme.Title.Render("  " + AppName)
	mid := theme.Body.Render(title)
	right := theme.AccentText.UnsetBold().Render(status)

	inner := max(width-4, 0)
	lw, mw, rw := lipgloss.Width(left), lipgloss.Width(mid), lipgloss.Width(right)
	gapL := max((inner-mw)/2-lw, 1)
	gapR := max(inner-lw-gapL-mw-rw, 1)

	line := left + strings.Repeat(" ", gapL) + mid + strings.Repeat(" ", gapR) + right
	return bar.Width(width).Render(line)
}

func newHelp() help.Model {
	h := help.New()
	h.ShortSeparator = "   "
	h.Styles.ShortKey = theme.Body.Bold(true)
	h.Styles.ShortDesc = theme.Subtitle
	h.Styles.ShortSeparator = theme.Subtitle
	return h
}

var footerHelp = newHelp()

// RenderFooter lists the help text of bindings.
func RenderFooter(bindings []key.Binding, width int) string {
	return bar.Width(width).Render("  " + footerHelp.ShortHelpView(bindings))
}

// RenderFrame stacks header, body and footer to fill width x height.
func RenderFrame(header, content, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
