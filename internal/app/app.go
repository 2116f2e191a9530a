// Package app hosts the root Bubble Tea model.
package app

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adhdflow/adhdflow/internal/router"
	"github.com/adhdflow/adhdflow/internal/screen"
	"github.com/adhdflow/adhdflow/internal/screens/home"
	"github.com/adhdflow/adhdflow/internal/screens/welcome"
	"github.com/adhdflow/adhdflow/internal/ui/keymap"
	"github.com/adhdflow/adhdflow/internal/ui/layout"
)

// Options configures Run.
type Options struct {
	Services *screen.Services
	// SkipSplash opens the home screen directly.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel starts on the splash, or on home when skipSplash is set.
func newAppModel(svc *screen.Services, skipSplash bool) AppModel {
	newHome := func() screen.Screen { return home.New(svc) }

	var first screen.Screen
	if skipSplash {
		first = newHome()
	} else {
		first = welcome.New(newHome)
	}
	return AppModel{router: router.New(first)}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, keymap.Back):
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the current frame.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()

	// the splash draws the whole screen itself
	if active.Title() == "" {
		return m.router.View(m.width, m.height)
	}

	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(active.Title(), status, m.width)
	footer := layout.RenderFooter(m.keyHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) keyHints(active screen.Screen) []key.Binding {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		if hints := kp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []key.Binding{keymap.Back, keymap.Quit}
	}
	return []key.Binding{keymap.Navigate, keymap.Select, keymap.Quit}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	svc := opts.Services
	if svc == nil || svc.Session == nil || svc.Bank == nil {
		return errors.New("app: session and question bank are required")
	}

	p := tea.NewProgram(newAppModel(svc, opts.SkipSplash))
	if _, err := p.Run(); err != nil {
		svc.Log().Error("program exited", "err", err)
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
