package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adhdflow/adhdflow/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title     string
	initRan   bool
	refreshed int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

// refreshScreen records Refresh calls.
type refreshScreen struct {
	stubScreen
}

func (s *refreshScreen) Refresh() tea.Cmd {
	s.refreshed++
	return nil
}

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	quiz := &stubScreen{title: "quiz"}
	r.Push(quiz)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
	if !quiz.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "quiz"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestPopRefreshesUncoveredScreen(t *testing.T) {
	home := &refreshScreen{stubScreen{title: "home"}}
	r := New(home)
	r.Push(&stubScreen{title: "quiz"})

	r.Update(PopScreenMsg{})

	if home.refreshed != 1 {
		t.Errorf("expected 1 refresh, got %d", home.refreshed)
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	results := &stubScreen{title: "results"}
	r.Replace(results)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "results" {
		t.Errorf("expected active 'results', got %q", r.Active().Title())
	}
	if !results.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	contact := &stubScreen{title: "contact"}
	r.Update(ReplaceScreenMsg{Screen: contact})

	if r.Active().Title() != "contact" {
		t.Errorf("expected active 'contact', got %q", r.Active().Title())
	}
	if !contact.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "quiz"})
	r.Replace(&stubScreen{title: "contact"})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "contact" {
		t.Errorf("expected active 'contact', got %q", r.Active().Title())
	}
}

func TestPopToRoot(t *testing.T) {
	home := &refreshScreen{stubScreen{title: "home"}}
	r := New(home)
	r.Push(&stubScreen{title: "quiz"})
	r.Push(&stubScreen{title: "contact"})

	r.Update(PopToRootMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if home.refreshed != 1 {
		t.Errorf("expected home to refresh once, got %d", home.refreshed)
	}
}

func TestPopToRootThenPush(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "quiz"})
	r.Push(&stubScreen{title: "contact"})

	results := &stubScreen{title: "results"}
	r.Update(PopToRootMsg{Screen: results})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active() != results || !results.initRan {
		t.Error("expected results to be active and initialised")
	}
}
