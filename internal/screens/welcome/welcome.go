// Package welcome is the splash shown once at startup.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adhdflow/adhdflow/internal/router"
	"github.com/adhdflow/adhdflow/internal/screen"
	"github.com/adhdflow/adhdflow/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 400 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

const (
	Tagline    = "A short self-check on focus and energy"
	Disclaimer = "This is a self-reflection tool, not a clinical diagnosis."
)

var pulse = []string{"·", "•", "●", "•"}

type tickMsg time.Time

// WelcomeScreen plays a short intro and then replaces itself with the
// screen built by next. Any key skips ahead.
type WelcomeScreen struct {
	next  func() screen.Screen
	frame int
	done  bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (w *WelcomeScreen) elapsed() time.Duration {
	return time.Duration(w.frame) * tickInterval
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.done {
			return w, nil
		}
		w.frame++
		if w.elapsed() < totalDur {
			return w, tick()
		}
		return w, w.finish()
	case tea.KeyPressMsg:
		return w, w.finish()
	}
	return w, nil
}

// finish builds the next screen exactly once.
func (w *WelcomeScreen) finish() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	next := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (w *WelcomeScreen) View(width, height int) string {
	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(pulse[w.frame%len(pulse)]),
	}
	if w.elapsed() >= bannerAt {
		lines = append(lines,
			"", RenderBanner(width),
			"", theme.Body.Bold(true).Render(Tagline),
			"", theme.Hint.Render(Disclaimer),
			"", theme.Hint.Render("press any key to continue"),
		)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}
