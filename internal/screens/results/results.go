// Package results shows the scored profile and generated advice.
package results

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adhdflow/adhdflow/internal/advice"
	"github.com/adhdflow/adhdflow/internal/quiz"
	"github.com/adhdflow/adhdflow/internal/report"
	"github.com/adhdflow/adhdflow/internal/screen"
	"github.com/adhdflow/adhdflow/internal/ui/components"
	"github.com/adhdflow/adhdflow/internal/ui/keymap"
	"github.com/adhdflow/adhdflow/internal/ui/theme"
)

// adviceMsg carries a finished advice request. seq ties it to the request
// that produced it so late replies for an older selection are dropped.
type adviceMsg struct {
	seq  int
	Type advice.ContentType
	Text string
	Err  error
}

// Screen renders the result card with an advice panel below it.
type Screen struct {
	svc   *screen.Services
	res   quiz.Results
	name  string
	ready bool

	types    []advice.ContentType
	selected int
	shown    advice.ContentType

	seq      int
	loading  bool
	spin     spinner.Model
	text     string
	errMsg   string
	rendered string
	renderW  int

	vp viewport.Model
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

// New creates the results screen from the session's stored results.
func New(svc *screen.Services) *Screen {
	st := svc.Session.Snapshot()
	s := &Screen{
		svc:   svc,
		name:  st.FirstName,
		types: advice.FeaturedContentTypes(),
		shown: advice.DailyTips,
		vp:    viewport.New(),
		spin:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.AccentText)),
	}
	if res, err := svc.Session.Results(); err == nil {
		s.res = res
		s.ready = true
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	if !s.ready || !s.svc.AdviceReady() {
		return nil
	}
	return s.generate(advice.DailyTips)
}

func (s *Screen) Title() string {
	return "Your results"
}

var adviceTypeHint = key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "advice type"))

func (s *Screen) KeyHints() []key.Binding {
	hints := []key.Binding{adviceTypeHint, keymap.Relabel(keymap.Select, "generate"), keymap.Scroll}
	if s.errMsg != "" {
		hints = append(hints, keymap.Retry)
	}
	return append(hints, keymap.Relabel(keymap.Back, "home"))
}

// generate starts an async request for ct.
func (s *Screen) generate(ct advice.ContentType) tea.Cmd {
	s.seq++
	seq := s.seq
	s.shown = ct
	s.errMsg = ""
	wasLoading := s.loading
	s.loading = true

	client := s.svc.Advice
	profile := advice.ProfileFromResults(s.res)
	svc := s.svc

	fetch := func() tea.Msg {
		ctx, cancel := svc.AdviceContext()
		defer cancel()
		text, err := client.Generate(ctx, profile, ct)
		return adviceMsg{seq: seq, Type: ct, Text: text, Err: err}
	}
	if wasLoading {
		return fetch
	}
	return tea.Batch(fetch, s.spin.Tick)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case adviceMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		s.loading = false
		if msg.Err != nil {
			s.svc.Log().Error("generate advice", "type", msg.Type, "err", msg.Err)
			s.errMsg = fmt.Sprintf("Unable to generate %s content. Please try again later.", strings.ToLower(msg.Type.Label()))
			return s, nil
		}
		s.text = msg.Text
		s.rendered = ""
		s.vp.GotoTop()
		return s, nil

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keymap.CycleLeft):
		s.selected = (s.selected - 1 + len(s.types)) % len(s.types)
	case key.Matches(msg, keymap.CycleRight):
		s.selected = (s.selected + 1) % len(s.types)
	case key.Matches(msg, keymap.Select):
		if s.ready && s.svc.AdviceReady() {
			return s, s.generate(s.types[s.selected])
		}
	case key.Matches(msg, keymap.Retry):
		if s.errMsg != "" && s.svc.AdviceReady() {
			return s, s.generate(s.shown)
		}
	case key.Matches(msg, keymap.Scroll):
		var cmd tea.Cmd
		s.vp, cmd = s.vp.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if !s.ready {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No results yet. Finish the assessment first."))
	}

	cw := components.ContentWidth(width)
	s.vp.SetWidth(width)
	s.vp.SetHeight(height)
	s.vp.SetContent(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.body(cw)))
	return s.vp.View()
}

func (s *Screen) body(cw int) string {
	r := report.Renderer{Styled: true, Width: cw}

	sections := []string{
		r.Results(s.res, s.name),
		"",
		theme.Title.Render("Your personalized strategies"),
		s.switcher(cw),
		"",
		s.advicePanel(cw),
		"",
		theme.Hint.Width(cw).Render("This is a self-reflection tool, not a clinical diagnosis. Talk to a healthcare professional for an assessment."),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *Screen) switcher(cw int) string {
	parts := make([]string, len(s.types))
	for i, ct := range s.types {
		label := ct.Label()
		switch {
		case i == s.selected:
			parts[i] = theme.Selected.Render("[" + label + "]")
		case ct == s.shown:
			parts[i] = theme.Chosen.Render(" " + label + " ")
		default:
			parts[i] = theme.Subtitle.Render(" " + label + " ")
		}
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(parts, " "))
}

func (s *Screen) advicePanel(cw int) string {
	switch {
	case !s.svc.AdviceReady():
		return components.Card(theme.Hint.Render(
			"Personalized strategies need an LLM provider. Set ADHDFLOW_GROQ_API_KEY (or another provider key) and reopen this screen."), cw)
	case s.loading:
		return components.Card(
			s.spin.View()+" Generating "+strings.ToLower(s.shown.Label())+"...", cw)
	case s.errMsg != "":
		return components.Card(
			theme.ErrorText.Render(s.errMsg)+"\n\n"+theme.Hint.Render("Press r to try again."), cw)
	case s.text == "":
		return components.Card(theme.Hint.Render("Pick a topic and press enter."), cw)
	}

	if s.rendered == "" || s.renderW != cw {
		// card border and padding take six columns
		out, err := report.Renderer{Styled: true, Width: cw - 6}.Markdown(s.text)
		if err != nil {
			s.svc.Log().Warn("render advice markdown", "err", err)
			out = s.text
		}
		s.rendered, s.renderW = out, cw
	}
	return components.Card(s.rendered, cw)
}
