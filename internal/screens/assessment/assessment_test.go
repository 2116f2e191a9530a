package assessment

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adhdflow/adhdflow/internal/router"
	"github.com/adhdflow/adhdflow/internal/screen"
	"github.com/adhdflow/adhdflow/internal/screens/screentest"
)

// pick presses the option's number key and feeds the resulting choice
// message back, the way the router would.
func pick(t *testing.T, s *Screen, option int) tea.Cmd {
	t.Helper()
	_, cmd := s.Update(screentest.Key(rune('1' + option)))
	msg := screentest.Drain(cmd)
	if msg == nil {
		t.Fatal("expected a choice message")
	}
	_, cmd = s.Update(msg)
	return cmd
}

func TestAnswerAdvancesAndPersists(t *testing.T) {
	svc := screentest.Services(t, nil)
	s := New(svc)

	if s.Index() != 0 {
		t.Fatalf("expected to start at question 0, got %d", s.Index())
	}

	pick(t, s, 2)

	if s.Index() != 1 {
		t.Errorf("expected question 1 after answering, got %d", s.Index())
	}
	st := svc.Session.Snapshot()
	if st.CurrentQuestionIndex != 1 {
		t.Errorf("stored index = %d, want 1", st.CurrentQuestionIndex)
	}
	a, ok := st.Answer(svc.Bank.Questions[0].ID)
	if !ok {
		t.Fatal("expected answer for first question")
	}
	if want := svc.Bank.Questions[0].Options[2]; a.OptionID != want.ID || a.Value != want.Value {
		t.Errorf("stored answer %+v, want option %+v", a, want)
	}
}

func TestBackRevisitsWithPreviousAnswer(t *testing.T) {
	svc := screentest.Services(t, nil)
	s := New(svc)
	pick(t, s, 3)

	s.Update(screentest.Special(tea.KeyLeft))

	if s.Index() != 0 {
		t.Fatalf("expected back at question 0, got %d", s.Index())
	}
	if s.choice.Chosen != 3 {
		t.Errorf("expected previous answer preselected, got %d", s.choice.Chosen)
	}

	// changing the answer replaces it
	pick(t, s, 0)
	st := svc.Session.Snapshot()
	if len(st.Answers) != 1 {
		t.Fatalf("expected 1 answer after re-answering, got %d", len(st.Answers))
	}
	if st.Answers[0].Value != svc.Bank.Questions[0].Options[0].Value {
		t.Errorf("expected the new answer to win, got %+v", st.Answers[0])
	}
}

func TestBackOnFirstQuestionIsNoop(t *testing.T) {
	svc := screentest.Services(t, nil)
	s := New(svc)

	_, cmd := s.Update(screentest.Special(tea.KeyLeft))
	if cmd != nil || s.Index() != 0 {
		t.Error("left on the first question should do nothing")
	}
}

func TestRightNeedsAnAnswer(t *testing.T) {
	svc := screentest.Services(t, nil)
	s := New(svc)

	s.Update(screentest.Special(tea.KeyRight))
	if s.Index() != 0 {
		t.Error("right should not skip an unanswered question")
	}

	pick(t, s, 1)
	s.Update(screentest.Special(tea.KeyLeft))
	s.Update(screentest.Special(tea.KeyRight))
	if s.Index() != 1 {
		t.Errorf("right on an answered question should advance, got %d", s.Index())
	}
}

func TestResumesAtStoredIndex(t *testing.T) {
	svc := screentest.Services(t, nil)
	if err := svc.Session.SetCurrentQuestionIndex(context.Background(), 7); err != nil {
		t.Fatal(err)
	}
	if s := New(svc); s.Index() != 7 {
		t.Errorf("expected resume at 7, got %d", s.Index())
	}

	if err := svc.Session.SetCurrentQuestionIndex(context.Background(), 99); err != nil {
		t.Fatal(err)
	}
	if s := New(svc); s.Index() != svc.Bank.Len()-1 {
		t.Errorf("expected index clamped to last question, got %d", s.Index())
	}
}

func TestLastAnswerOpensContact(t *testing.T) {
	svc := screentest.Services(t, nil)
	s := New(svc)

	var cmd tea.Cmd
	for range svc.Bank.Len() {
		cmd = pick(t, s, 1)
	}

	msg, ok := screentest.Drain(cmd).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg after last answer, got %T", screentest.Drain(cmd))
	}
	if msg.Screen.Title() != "Almost done" {
		t.Errorf("expected contact screen, got %q", msg.Screen.Title())
	}
	if got := len(svc.Session.Snapshot().Answers); got != svc.Bank.Len() {
		t.Errorf("expected %d answers, got %d", svc.Bank.Len(), got)
	}
}

func TestLastAnswerWithGapJumpsBack(t *testing.T) {
	svc := screentest.Services(t, nil)
	last := svc.Bank.Len() - 1
	if err := svc.Session.SetCurrentQuestionIndex(context.Background(), last); err != nil {
		t.Fatal(err)
	}
	s := New(svc)

	cmd := pick(t, s, 0)
	if cmd != nil {
		t.Errorf("expected no navigation while questions are unanswered, got %T", cmd())
	}
	if s.Index() != 0 {
		t.Errorf("expected jump to first unanswered question, got %d", s.Index())
	}
}

func TestStatusAndView(t *testing.T) {
	svc := screentest.Services(t, nil)
	s := New(svc)
	pick(t, s, 0)

	var sp screen.StatusProvider = s
	if got := sp.Status(); got != "1/20 answered" {
		t.Errorf("Status() = %q", got)
	}

	view := s.View(100, 30)
	if !strings.Contains(view, "Question 2 of 20") {
		t.Errorf("view missing progress label: %q", view)
	}
	if !strings.Contains(view, svc.Bank.Questions[1].Options[0].Text) {
		t.Error("view missing option text")
	}
}
