package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/adhdflow/adhdflow/internal/screens/screentest"
	"github.com/adhdflow/adhdflow/internal/store"
)

func load(s *HistoryScreen) {
	s.Update(s.Init()())
}

func TestEmptyHistory(t *testing.T) {
	svc := screentest.Services(t, nil)
	s := New(svc.Events)

	if !strings.Contains(s.View(100, 30), "Loading") {
		t.Error("expected loading state before data arrives")
	}
	load(s)
	if !strings.Contains(s.View(100, 30), "No completed assessments yet") {
		t.Error("expected empty state")
	}
}

func TestListAndExpand(t *testing.T) {
	svc := screentest.Services(t, nil)
	ctx := context.Background()
	for _, name := range []string{"ana", "ben"} {
		err := svc.Events.AppendResult(ctx, store.ResultEventData{
			SessionID:         name,
			FirstName:         name,
			ADHDType:          "Inattentive",
			FocusScore:        4,
			OrganizationScore: 6,
			PrimaryChallenges: []string{"Time management"},
			AnswerCount:       20,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	s := New(svc.Events)
	s.now = func() time.Time { return time.Now().Add(time.Hour) }
	load(s)

	if len(s.results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(s.results))
	}
	view := s.View(120, 30)
	if !strings.Contains(view, "Ana") || !strings.Contains(view, "Ben") {
		t.Errorf("expected both names, got %q", view)
	}
	if !strings.Contains(view, "Inattentive Type") {
		t.Error("expected subtype name")
	}
	if strings.Contains(view, "challenges:") {
		t.Error("details should be collapsed")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if c := s.table.Cursor(); c != 1 {
		t.Errorf("selection should clamp at 1, got %d", c)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 30), "challenges: Time management") {
		t.Error("expected expanded details")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if strings.Contains(s.View(120, 30), "challenges:") {
		t.Error("second enter should collapse details")
	}
}

func TestLoadError(t *testing.T) {
	s := New(nil)
	s.Update(historyLoadedMsg{Err: context.DeadlineExceeded})
	if !strings.Contains(s.View(100, 30), "Error") {
		t.Error("expected error view")
	}
}
