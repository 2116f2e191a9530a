// Package history lists completed assessments.
package history

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adhdflow/adhdflow/internal/quiz"
	"github.com/adhdflow/adhdflow/internal/router"
	"github.com/adhdflow/adhdflow/internal/screen"
	"github.com/adhdflow/adhdflow/internal/store"
	"github.com/adhdflow/adhdflow/internal/textutil"
	"github.com/adhdflow/adhdflow/internal/ui/keymap"
	"github.com/adhdflow/adhdflow/internal/ui/theme"
)

// PageSize caps how many results are loaded.
const PageSize = 50

var columns = []table.Column{
	{Title: "When", Width: 16},
	{Title: "Name", Width: 12},
	{Title: "Subtype", Width: 26},
	{Title: "Focus", Width: 6},
	{Title: "Org", Width: 6},
}

// tableWidth covers every column plus the one-cell padding on each side.
func tableWidth() int {
	w := 0
	for _, c := range columns {
		w += c.Width + 2
	}
	return w
}

type historyLoadedMsg struct {
	Results []store.ResultEvent
	Err     error
}

// HistoryScreen shows past results newest first. Enter toggles the detail
// panel for the highlighted row.
type HistoryScreen struct {
	events  store.EventRepo
	results []store.ResultEvent
	table   table.Model
	open    int // index with details shown, -1 for none
	loaded  bool
	err     error
	now     func() time.Time
}

var (
	_ screen.Screen          = (*HistoryScreen)(nil)
	_ screen.KeyHintProvider = (*HistoryScreen)(nil)
)

func New(events store.EventRepo) *HistoryScreen {
	km := table.DefaultKeyMap()
	km.LineUp, km.LineDown = keymap.Up, keymap.Down

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(theme.TextDim)
	styles.Selected = theme.Selected

	return &HistoryScreen{
		events: events,
		table: table.New(
			table.WithColumns(columns),
			table.WithKeyMap(km),
			table.WithStyles(styles),
			table.WithFocused(true),
			table.WithHeight(12),
			table.WithWidth(tableWidth()),
		),
		open: -1,
		now:  time.Now,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	events := s.events
	return func() tea.Msg {
		res, err := events.QueryResults(context.Background(), store.QueryOpts{Limit: PageSize})
		return historyLoadedMsg{Results: res, Err: err}
	}
}

func (s *HistoryScreen) Title() string { return "History" }

func (s *HistoryScreen) KeyHints() []key.Binding {
	return []key.Binding{keymap.Relabel(keymap.Select, "details"), keymap.Navigate, keymap.Back}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loaded, s.err = true, msg.Err
		if msg.Err == nil {
			s.results = msg.Results
			s.table.SetRows(s.rows(s.now()))
		}
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keymap.Back):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, keymap.Select):
			if c := s.table.Cursor(); s.open == c {
				s.open = -1
			} else {
				s.open = c
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.table, cmd = s.table.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *HistoryScreen) rows(now time.Time) []table.Row {
	rows := make([]table.Row, len(s.results))
	for i, r := range s.results {
		name := r.FirstName
		if name == "" {
			name = "Anonymous"
		}
		rows[i] = table.Row{
			textutil.Ago(r.Timestamp, now),
			textutil.Capitalize(name),
			quiz.ADHDType(r.ADHDType).Info().Name,
			strconv.Itoa(r.FocusScore),
			strconv.Itoa(r.OrganizationScore),
		}
	}
	return rows
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case s.err != nil:
		return center.Foreground(theme.Error).Render("\n\nError: " + s.err.Error())
	case !s.loaded:
		return center.Foreground(theme.TextDim).Render("\n\nLoading history...")
	case len(s.results) == 0:
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\nNo completed assessments yet.")
	}

	out := "\n" + s.table.View()
	if s.open >= 0 && s.open < len(s.results) {
		out += "\n\n" + details(s.results[s.open])
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, out)
}

func details(r store.ResultEvent) string {
	challenges := "none identified"
	if len(r.PrimaryChallenges) > 0 {
		challenges = strings.Join(r.PrimaryChallenges, ", ")
	}
	return theme.Hint.Render(strings.Join([]string{
		fmt.Sprintf("%s · %d answers", textutil.FormatDate(r.Timestamp), r.AnswerCount),
		fmt.Sprintf("inattentive %d · hyperactive %d · combined %d",
			r.InattentiveScore, r.HyperactiveScore, r.CombinedScore),
		"challenges: " + challenges,
	}, "\n"))
}
