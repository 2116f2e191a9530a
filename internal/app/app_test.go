package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adhdflow/adhdflow/internal/router"
	"github.com/adhdflow/adhdflow/internal/screens/screentest"
)

func TestStartsOnSplashOrHome(t *testing.T) {
	svc := screentest.Services(t, nil)

	if m := newAppModel(svc, false); m.router.Active().Title() != "" {
		t.Errorf("expected splash first, got %q", m.router.Active().Title())
	}
	if m := newAppModel(svc, true); m.router.Active().Title() != "Home" {
		t.Errorf("expected home first, got %q", m.router.Active().Title())
	}
}

func TestEscPopsToHome(t *testing.T) {
	svc := screentest.Services(t, nil)
	m := newAppModel(svc, true)

	_, cmd := m.Update(screentest.Special(tea.KeyEnter))
	m.Update(screentest.Drain(cmd))
	if m.router.Depth() != 2 {
		t.Fatalf("expected assessment pushed, depth %d", m.router.Depth())
	}

	_, cmd = m.Update(screentest.Special(tea.KeyEscape))
	msg := screentest.Drain(cmd)
	if _, ok := msg.(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", msg)
	}
	m.Update(msg)
	if m.router.Active().Title() != "Home" {
		t.Errorf("expected home after esc, got %q", m.router.Active().Title())
	}
}

func TestViewFrame(t *testing.T) {
	svc := screentest.Services(t, nil)
	model, _ := newAppModel(svc, true).Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m := model.(AppModel)

	_, cmd := m.Update(screentest.Special(tea.KeyEnter))
	m.Update(screentest.Drain(cmd))

	content := m.render()
	if !strings.Contains(content, "ADHD Flow") {
		t.Error("expected app name in header")
	}
	if !strings.Contains(content, "0/20 answered") {
		t.Error("expected quiz status in header")
	}
	if !strings.Contains(content, "save & exit") {
		t.Error("expected screen key hints in footer")
	}
}

func TestTooSmall(t *testing.T) {
	svc := screentest.Services(t, nil)
	model, _ := newAppModel(svc, true).Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(model.(AppModel).render(), "Terminal too small") {
		t.Error("expected size warning")
	}
}

func TestRunRequiresServices(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Error("expected error without services")
	}
}
