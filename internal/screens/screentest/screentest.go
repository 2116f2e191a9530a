// Package screentest builds real services and key messages for screen tests.
package screentest

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/adhdflow/adhdflow/internal/advice"
	"github.com/adhdflow/adhdflow/internal/llm"
	"github.com/adhdflow/adhdflow/internal/quiz"
	"github.com/adhdflow/adhdflow/internal/screen"
	"github.com/adhdflow/adhdflow/internal/session"
	"github.com/adhdflow/adhdflow/internal/store"
)

// Services opens a SQLite store in a temp dir and wires a session, the
// default bank and an advice client backed by mock.
func Services(t *testing.T, mock *llm.MockProvider) *screen.Services {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "screens.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	events := st.EventRepo()
	sess, err := session.Open(context.Background(), st.StateRepo(), session.WithRecorder(events))
	if err != nil {
		t.Fatalf("open session: %v", err)
	}

	bank, err := quiz.DefaultBank()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}

	svc := &screen.Services{Session: sess, Bank: bank, Events: events}
	if mock != nil {
		svc.Advice = advice.NewClient(mock, advice.DefaultConfig())
	}
	return svc
}

// AnswerAll answers every question with option index opt and completes
// the session.
func AnswerAll(t *testing.T, svc *screen.Services, opt int) quiz.Results {
	t.Helper()
	ctx := context.Background()
	for i := range svc.Bank.Questions {
		a, err := svc.Bank.AnswerFor(i, opt)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if err := svc.Session.AddAnswer(ctx, a); err != nil {
			t.Fatalf("add answer: %v", err)
		}
	}
	res, err := svc.Session.Complete(ctx, svc.Bank)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	return res
}

// Key is a printable key press.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Special is a non-printable key press such as tea.KeyEnter.
func Special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Drain runs cmd and returns its message, or nil.
func Drain(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
