// Package home is the root menu screen.
package home

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adhdflow/adhdflow/internal/router"
	"github.com/adhdflow/adhdflow/internal/screen"
	"github.com/adhdflow/adhdflow/internal/screens/assessment"
	"github.com/adhdflow/adhdflow/internal/screens/history"
	"github.com/adhdflow/adhdflow/internal/screens/results"
	"github.com/adhdflow/adhdflow/internal/session"
	"github.com/adhdflow/adhdflow/internal/textutil"
	"github.com/adhdflow/adhdflow/internal/ui/components"
	"github.com/adhdflow/adhdflow/internal/ui/keymap"
	"github.com/adhdflow/adhdflow/internal/ui/theme"
)

// resetFailedMsg reports a failed "start over".
type resetFailedMsg struct {
	Err error
}

// HomeScreen offers start/resume, results, history and quit.
type HomeScreen struct {
	svc    *screen.Services
	state  session.State
	menu   components.Menu
	errMsg string
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
	_ screen.Refresher       = (*HomeScreen)(nil)
)

// New creates the home screen.
func New(svc *screen.Services) *HomeScreen {
	h := &HomeScreen{svc: svc}
	h.reload()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Refresh rebuilds the menu from the current session.
func (h *HomeScreen) Refresh() tea.Cmd {
	h.reload()
	return nil
}

func (h *HomeScreen) reload() {
	h.state = h.svc.Session.Snapshot()
	h.menu = components.NewMenu(h.menuItems())
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []key.Binding {
	return []key.Binding{keymap.Navigate, keymap.Select, keymap.QuitKey}
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	total := h.svc.Bank.Len()
	progress := session.ProgressOf(h.state, h.svc.Bank.QuestionIDs())

	var items []components.MenuItem
	switch {
	case h.state.InProgress():
		items = append(items,
			components.MenuItem{
				Label:  fmt.Sprintf("Resume assessment (%d/%d answered)", progress.Answered, total),
				Action: h.open(func() screen.Screen { return assessment.New(h.svc) }),
			},
			components.MenuItem{Label: "Start over", Action: h.startOver},
		)
	case h.state.IsComplete:
		items = append(items, components.MenuItem{Label: "Retake assessment", Action: h.startOver})
	default:
		items = append(items, components.MenuItem{
			Label:  "Start assessment",
			Action: h.open(func() screen.Screen { return assessment.New(h.svc) }),
		})
	}

	items = append(items,
		components.MenuItem{
			Label:    "View results",
			Action:   h.open(func() screen.Screen { return results.New(h.svc) }),
			Disabled: !h.state.HasResults(),
		},
		components.MenuItem{
			Label:    "History",
			Action:   h.open(func() screen.Screen { return history.New(h.svc.Events) }),
			Disabled: h.svc.Events == nil,
		},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	)
	return items
}

func (h *HomeScreen) open(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		s := build()
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}
}

// startOver discards the stored session and opens the first question.
func (h *HomeScreen) startOver() tea.Cmd {
	if err := h.svc.Session.Reset(context.Background()); err != nil {
		h.svc.Log().Error("reset session", "err", err)
		return func() tea.Msg { return resetFailedMsg{Err: err} }
	}
	h.reload()
	s := assessment.New(h.svc)
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resetFailedMsg:
		h.errMsg = "Could not start over: " + msg.Err.Error()
		return h, nil
	case tea.KeyMsg:
		if key.Matches(msg, keymap.QuitKey) {
			return h, tea.Quit
		}
		h.errMsg = ""
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	greeting := "Welcome"
	if h.state.FirstName != "" {
		greeting = "Welcome back, " + textutil.Capitalize(h.state.FirstName)
	}

	sections := []string{
		theme.Title.Render(greeting),
		theme.Subtitle.Render(fmt.Sprintf("%d questions · about five minutes", h.svc.Bank.Len())),
		"",
		h.menu.View(),
	}

	if h.state.HasResults() {
		info := h.state.Results.ADHDType.Info()
		line := "Last result: " + info.Name
		if !h.state.UpdatedAt.IsZero() {
			line += " · " + textutil.FormatDate(h.state.UpdatedAt)
		}
		sections = append(sections, theme.Hint.Render(line))
	}
	if h.errMsg != "" {
		sections = append(sections, "", theme.ErrorText.Render(h.errMsg))
	}

	card := components.Card(strings.Join(sections, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
