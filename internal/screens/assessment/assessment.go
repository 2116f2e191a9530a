// Package assessment walks through the question bank one question at a time.
package assessment

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adhdflow/adhdflow/internal/quiz"
	"github.com/adhdflow/adhdflow/internal/router"
	"github.com/adhdflow/adhdflow/internal/screen"
	"github.com/adhdflow/adhdflow/internal/screens/contact"
	"github.com/adhdflow/adhdflow/internal/session"
	"github.com/adhdflow/adhdflow/internal/ui/components"
	"github.com/adhdflow/adhdflow/internal/ui/keymap"
	"github.com/adhdflow/adhdflow/internal/ui/theme"
)

// Screen shows the question at the session's current index. Every pick is
// written to the session store before moving on, so leaving and coming
// back resumes where the user stopped.
type Screen struct {
	svc    *screen.Services
	index  int
	choice components.Choice
	errMsg string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
	_ screen.StatusProvider  = (*Screen)(nil)
)

// New opens the assessment at the stored question index.
func New(svc *screen.Services) *Screen {
	s := &Screen{svc: svc}
	idx := svc.Session.Snapshot().CurrentQuestionIndex
	s.show(min(max(idx, 0), svc.Bank.Len()-1))
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Assessment"
}

// Status shows how many questions have an answer.
func (s *Screen) Status() string {
	p := s.progress()
	return fmt.Sprintf("%d/%d answered", p.Answered, p.Total)
}

func (s *Screen) KeyHints() []key.Binding {
	hints := []key.Binding{
		keymap.Relabel(keymap.Navigate, "move"),
		keymap.Numbers(len(s.question().Options), "answer"),
	}
	if s.index > 0 {
		hints = append(hints, keymap.Prev)
	}
	if s.choice.Chosen >= 0 {
		hints = append(hints, keymap.Next)
	}
	return append(hints, keymap.Relabel(keymap.Back, "save & exit"))
}

// Index returns the position of the question on screen.
func (s *Screen) Index() int {
	return s.index
}

func (s *Screen) question() quiz.Question {
	return s.svc.Bank.Questions[s.index]
}

func (s *Screen) progress() session.Progress {
	return session.ProgressOf(s.svc.Session.Snapshot(), s.svc.Bank.QuestionIDs())
}

// show moves to question i and preselects its stored answer.
func (s *Screen) show(i int) {
	s.index = i
	q := s.question()

	labels := make([]string, len(q.Options))
	chosen := -1
	prev, answered := s.svc.Session.Snapshot().Answer(q.ID)
	for j, o := range q.Options {
		labels[j] = o.Text
		if answered && o.ID == prev.OptionID {
			chosen = j
		}
	}
	s.choice = components.NewChoice(labels, chosen)
}

// move persists the new index and shows that question.
func (s *Screen) move(i int) tea.Cmd {
	if err := s.svc.Session.SetCurrentQuestionIndex(context.Background(), i); err != nil {
		return s.fail("save position", err)
	}
	s.show(i)
	return nil
}

func (s *Screen) fail(op string, err error) tea.Cmd {
	s.svc.Log().Error(op, "err", err, "question", s.question().ID)
	s.errMsg = "Could not save your answer. Please try again."
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChoiceMadeMsg:
		return s, s.answer(msg.Index)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keymap.Prev):
			if s.index == 0 {
				return s, nil
			}
			s.errMsg = ""
			return s, s.move(s.index - 1)
		case key.Matches(msg, keymap.Next):
			if s.choice.Chosen < 0 {
				return s, nil
			}
			return s, s.advance()
		}
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

// answer stores option i for the current question and advances.
func (s *Screen) answer(i int) tea.Cmd {
	a, err := s.svc.Bank.AnswerFor(s.index, i)
	if err != nil {
		return s.fail("build answer", err)
	}
	if err := s.svc.Session.AddAnswer(context.Background(), a); err != nil {
		return s.fail("add answer", err)
	}
	s.errMsg = ""
	return s.advance()
}

// advance goes to the next question, or to the contact step after the last
// one once every question is answered. With gaps left it jumps to the first
// unanswered question instead.
func (s *Screen) advance() tea.Cmd {
	if s.index+1 < s.svc.Bank.Len() {
		return s.move(s.index + 1)
	}

	if gap := s.firstUnanswered(); gap >= 0 {
		return s.move(gap)
	}

	if err := s.svc.Session.SetCurrentQuestionIndex(context.Background(), s.svc.Bank.Len()); err != nil {
		return s.fail("save position", err)
	}
	next := contact.New(s.svc)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *Screen) firstUnanswered() int {
	st := s.svc.Session.Snapshot()
	for i, q := range s.svc.Bank.Questions {
		if _, ok := st.Answer(q.ID); !ok {
			return i
		}
	}
	return -1
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	q := s.question()
	p := s.progress()

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.index+1, p.Total), p.Percent, true, cw).View()

	text := lipgloss.NewStyle().
		Width(cw - 6).
		Bold(true).
		Foreground(theme.Text).
		Render(q.Text)

	body := text + "\n\n" + s.choice.View()
	if s.errMsg != "" {
		body += "\n" + theme.ErrorText.Render(s.errMsg)
	}

	block := lipgloss.JoinVertical(lipgloss.Left,
		bar,
		"",
		components.FocusedCard(body, cw),
		"",
		theme.Hint.Render("Answer for the last six months. There are no right or wrong answers."),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
