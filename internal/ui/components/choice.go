package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/adhdflow/adhdflow/internal/ui/keymap"
	"github.com/adhdflow/adhdflow/internal/ui/theme"
)

// Choice is a single-answer option selector. Options can be picked with the
// arrow keys and enter, or directly with their number.
type Choice struct {
	Options  []string
	Selected int
	// Chosen is the index picked last, or -1.
	Chosen int
}

// NewChoice creates a selector. chosen pre-marks a previous answer and may
// be -1.
func NewChoice(options []string, chosen int) Choice {
	c := Choice{Options: options, Chosen: -1}
	if chosen >= 0 && chosen < len(options) {
		c.Chosen = chosen
		c.Selected = chosen
	}
	return c
}

// ChoiceMadeMsg is emitted when an option is picked.
type ChoiceMadeMsg struct {
	Index int
}

// Update moves the cursor with the arrow keys and picks on enter, space
// or an option number.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Options) == 0 {
		return c, nil
	}
	switch {
	case key.Matches(kmsg, keymap.Up):
		c.Selected = max(c.Selected-1, 0)
	case key.Matches(kmsg, keymap.Down):
		c.Selected = min(c.Selected+1, len(c.Options)-1)
	case key.Matches(kmsg, keymap.Answer):
		return c.pick(c.Selected)
	default:
		if n, err := strconv.Atoi(kmsg.String()); err == nil && n >= 1 && n <= min(len(c.Options), 9) {
			c.Selected = n - 1
			return c.pick(n - 1)
		}
	}
	return c, nil
}

func (c Choice) pick(i int) (Choice, tea.Cmd) {
	c.Chosen = i
	return c, func() tea.Msg { return ChoiceMadeMsg{Index: i} }
}

// View renders the options, numbered from 1.
func (c Choice) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		mark := " "
		if i == c.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, mark, opt)

		switch {
		case i == c.Selected:
			b.WriteString(theme.Selected.Render(line))
		case i == c.Chosen:
			b.WriteString(theme.Chosen.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
