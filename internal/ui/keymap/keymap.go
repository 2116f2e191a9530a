// Package keymap holds the key bindings shared by the screens. The footer
// renders their help text, so a screen's hints and its input handling come
// from the same values.
package keymap

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/key"
)

var (
	Up   = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	Down = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))

	// Navigate is Up and Down combined for the footer.
	Navigate = key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑↓", "navigate"))

	Select = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
	Answer = key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "answer"))
	Prev   = key.NewBinding(key.WithKeys("left", "h", "backspace"), key.WithHelp("←", "previous"))
	Next   = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next"))

	NextField = key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field"))
	PrevField = key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field"))

	CycleLeft  = key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "previous"))
	CycleRight = key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "next"))
	Scroll     = key.NewBinding(key.WithKeys("up", "down", "k", "j", "pgup", "pgdown", "home", "end"), key.WithHelp("↑↓", "scroll"))
	Retry      = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry"))

	Back = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	Quit = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	// QuitKey quits from the home screen only.
	QuitKey = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
)

// Relabel returns a copy of b with its help description replaced.
func Relabel(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}

// Numbers binds the digit keys 1..n (n at most 9).
func Numbers(n int, desc string) key.Binding {
	n = min(max(n, 1), 9)
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i + 1)
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(fmt.Sprintf("1-%d", n), desc))
}
