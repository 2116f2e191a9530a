package screen

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Screen is one page of the quiz UI.
type Screen interface {
	// Init returns the command to run when the screen is opened.
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between the header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []key.Binding
}

// Refresher is implemented by screens that show persisted state and need to
// reload it when they become active again after a pop.
type Refresher interface {
	Refresh() tea.Cmd
}

// StatusProvider lets a screen put a short status, such as quiz progress,
// on the right side of the header.
type StatusProvider interface {
	Status() string
}
