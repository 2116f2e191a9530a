// Package router keeps the stack of screens behind the app model. Screens
// never hold a reference to it; they navigate by returning one of the
// messages below from a command.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/adhdflow/adhdflow/internal/screen"
)

type (
	// PushScreenMsg opens Screen on top of the current one.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg goes back one screen.
	PopScreenMsg struct{}

	// ReplaceScreenMsg swaps the current screen for Screen, e.g. moving
	// from the last question to the contact form.
	ReplaceScreenMsg struct{ Screen screen.Screen }

	// PopToRootMsg unwinds to the home screen, then opens Screen on top of
	// it when Screen is set.
	PopToRootMsg struct{ Screen screen.Screen }
)

type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) top() int { return len(r.stack) - 1 }

// Push opens s and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the current screen. The root stays.
func (r *Router) Pop() tea.Cmd {
	return r.truncate(r.top())
}

func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[r.top()] = s
	return s.Init()
}

// PopToRoot closes every screen above the root and pushes next, if any.
func (r *Router) PopToRoot(next screen.Screen) tea.Cmd {
	cmd := r.truncate(1)
	if next == nil {
		return cmd
	}
	return tea.Batch(cmd, r.Push(next))
}

// truncate shrinks the stack to n screens (never below one) and refreshes
// the uncovered screen.
func (r *Router) truncate(n int) tea.Cmd {
	if n < 1 || n >= len(r.stack) {
		return nil
	}
	clear(r.stack[n:])
	r.stack = r.stack[:n]
	if rf, ok := r.Active().(screen.Refresher); ok {
		return rf.Refresh()
	}
	return nil
}

// Active is the screen on top, or nil for an empty router.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[r.top()]
}

func (r *Router) Depth() int { return len(r.stack) }

// Update applies navigation messages and hands the rest to the active
// screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case PushScreenMsg:
		return r.Push(m.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(m.Screen)
	case PopToRootMsg:
		return r.PopToRoot(m.Screen)
	}
	if len(r.stack) == 0 {
		return nil
	}
	next, cmd := r.stack[r.top()].Update(msg)
	r.stack[r.top()] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	if s := r.Active(); s != nil {
		return s.View(width, height)
	}
	return ""
}
