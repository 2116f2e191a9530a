package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/adhdflow/adhdflow/internal/ui/keymap"
	"github.com/adhdflow/adhdflow/internal/ui/theme"
)

// MenuItem is one menu entry. Disabled entries are drawn but cannot be
// selected.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.Selected = m.step(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// step returns the nearest enabled index from Selected in direction dir,
// or Selected itself when there is none.
func (m Menu) step(dir int) int {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Selected
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(kmsg, keymap.Up):
		m.Selected = m.step(-1)
	case key.Matches(kmsg, keymap.Down):
		m.Selected = m.step(1)
	case key.Matches(kmsg, keymap.Select):
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			break
		}
		if it := m.Items[m.Selected]; !it.Disabled && it.Action != nil {
			return m, it.Action()
		}
	}
	return m, nil
}

func (m Menu) View() string {
	lines := make([]string, len(m.Items))
	for i, it := range m.Items {
		switch {
		case it.Disabled:
			lines[i] = theme.Disabled.Render("    " + it.Label)
		case i == m.Selected:
			lines[i] = theme.Selected.Render("  ▸ " + it.Label)
		default:
			lines[i] = theme.Unselected.Render("    " + it.Label)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
