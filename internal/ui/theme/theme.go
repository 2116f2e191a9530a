// Package theme holds the colours and lipgloss styles shared by every
// screen.
package theme

import "charm.land/lipgloss/v2"

// Muted tones with one strong accent, so the current question is the only
// thing that stands out.
var (
	Primary   = lipgloss.Color("#8B5CF6") // violet
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F59E0B") // amber
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var base = lipgloss.NewStyle()

// Text styles.
var (
	Title      = base.Foreground(Primary).Bold(true)
	Subtitle   = base.Foreground(TextDim)
	Body       = base.Foreground(Text)
	Hint       = base.Foreground(TextDim).Italic(true)
	ErrorText  = base.Foreground(Error)
	AccentText = base.Foreground(Accent).Bold(true)
)

// Selection states for menus and option lists.
var (
	Selected   = base.Foreground(Primary).Bold(true)
	Unselected = base.Foreground(Text)
	Chosen     = base.Foreground(Secondary).Bold(true)
	Disabled   = base.Foreground(Border)
)

// Boxes and widgets.
var (
	Card           = base.Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(1, 2)
	FocusedCard    = Card.BorderForeground(Primary)
	ProgressFilled = base.Background(Secondary)
	ProgressEmpty  = base.Background(Border)
	ButtonActive   = base.Background(Primary).Foreground(Text).Bold(true).Padding(0, 2)
	ButtonInactive = base.Foreground(TextDim).Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 2)
)
