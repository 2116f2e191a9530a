// Package contact collects the optional name and email before scoring.
package contact

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adhdflow/adhdflow/internal/router"
	"github.com/adhdflow/adhdflow/internal/screen"
	"github.com/adhdflow/adhdflow/internal/screens/results"
	"github.com/adhdflow/adhdflow/internal/session"
	"github.com/adhdflow/adhdflow/internal/ui/components"
	"github.com/adhdflow/adhdflow/internal/ui/keymap"
	"github.com/adhdflow/adhdflow/internal/ui/theme"
)

const (
	fieldName = iota
	fieldEmail
	fieldSubmit
	fieldCount
)

// Screen is a two-field form followed by a submit button.
type Screen struct {
	svc    *screen.Services
	name   components.TextInput
	email  components.TextInput
	submit components.Button
	focus  int
	errMsg string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

// New creates the form prefilled from the session.
func New(svc *screen.Services) *Screen {
	st := svc.Session.Snapshot()

	s := &Screen{
		svc:   svc,
		name:  components.NewTextInput("First name (optional)", "Alex", 50),
		email: components.NewTextInput("Email (optional)", "alex@example.com", 254),
	}
	s.name.SetValue(st.FirstName)
	s.email.SetValue(st.Email)
	s.submit = components.NewButton("See my results", false, s.complete)
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.setFocus(fieldName)
}

func (s *Screen) Title() string {
	return "Almost done"
}

func (s *Screen) KeyHints() []key.Binding {
	return []key.Binding{
		keymap.NextField,
		keymap.Relabel(keymap.Select, "continue"),
		keymap.Relabel(keymap.Back, "save & exit"),
	}
}

func (s *Screen) setFocus(f int) tea.Cmd {
	s.focus = (f + fieldCount) % fieldCount
	s.name.Blur()
	s.email.Blur()
	s.submit.Active = false

	switch s.focus {
	case fieldName:
		return s.name.Focus()
	case fieldEmail:
		return s.email.Focus()
	default:
		s.submit.Active = true
		return nil
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, keymap.NextField):
			return s, s.setFocus(s.focus + 1)
		case key.Matches(kmsg, keymap.PrevField):
			return s, s.setFocus(s.focus - 1)
		case key.Matches(kmsg, keymap.Select) && s.focus != fieldSubmit:
			return s, s.setFocus(s.focus + 1)
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldEmail:
		s.email, cmd = s.email.Update(msg)
	default:
		s.submit, cmd = s.submit.Update(msg)
	}
	return s, cmd
}

// complete saves the contact fields, scores the session and opens the
// results on top of the home screen.
func (s *Screen) complete() tea.Cmd {
	ctx := context.Background()
	s.errMsg = ""

	if err := s.svc.Session.SetFirstName(ctx, s.name.Value()); err != nil {
		return s.fail("save first name", err)
	}
	if err := s.svc.Session.SetEmail(ctx, s.email.Value()); err != nil {
		if errors.Is(err, session.ErrInvalidEmail) {
			s.email.Err = "Enter a valid email address or leave it blank"
			return s.setFocus(fieldEmail)
		}
		return s.fail("save email", err)
	}

	if _, err := s.svc.Session.Complete(ctx, s.svc.Bank); err != nil {
		// A failed history write still leaves scored results in the session.
		if !s.svc.Session.Snapshot().HasResults() {
			return s.fail("complete session", err)
		}
		s.svc.Log().Warn("record result", "err", err)
	}

	next := results.New(s.svc)
	return func() tea.Msg { return router.PopToRootMsg{Screen: next} }
}

func (s *Screen) fail(op string, err error) tea.Cmd {
	s.svc.Log().Error(op, "err", err)
	s.errMsg = "Something went wrong while saving. Please try again."
	return nil
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("You answered every question"),
		theme.Subtitle.Width(cw-6).Render("Add your name to personalize the report. Both fields are optional and stay on this computer."),
		"",
		s.name.View(),
		"",
		s.email.View(),
		"",
		s.submit.View(),
	)
	if s.errMsg != "" {
		body += "\n\n" + theme.ErrorText.Render(s.errMsg)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.FocusedCard(body, cw))
}
