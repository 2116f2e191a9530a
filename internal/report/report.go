// Package report renders quiz results, advice and history for the terminal.
package report

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/adhdflow/adhdflow/internal/quiz"
	"github.com/adhdflow/adhdflow/internal/store"
	"github.com/adhdflow/adhdflow/internal/textutil"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 72

// ScoreMax is the top of the normalized score scale.
const ScoreMax = 10

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	barFill      = lipgloss.NewStyle().Foreground(lipgloss.Color("#14B8A6"))
	barEmpty     = lipgloss.NewStyle().Foreground(lipgloss.Color("#334155"))
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1)
)

// Renderer turns domain values into terminal text. The zero value renders
// plain text at DefaultWidth.
type Renderer struct {
	Styled bool
	Width  int
}

func (r Renderer) width() int {
	if r.Width <= 0 {
		return DefaultWidth
	}
	return r.Width
}

func (r Renderer) style(s lipgloss.Style, text string) string {
	if !r.Styled {
		return text
	}
	return s.Render(text)
}

// ScoreLine is one labelled score bar.
type ScoreLine struct {
	Label string
	Score int
}

// ScoreLines lists the five scores of res in display order.
func ScoreLines(res quiz.Results) []ScoreLine {
	return []ScoreLine{
		{"Inattentive", res.InattentiveScore},
		{"Hyperactive", res.HyperactiveScore},
		{"Combined", res.CombinedScore},
		{"Focus", res.FocusScore},
		{"Organization", res.OrganizationScore},
	}
}

// Bar draws score on a 0..ScoreMax scale using width cells. Scores outside
// the scale are clamped for drawing only.
func (r Renderer) Bar(score, width int) string {
	if width <= 0 {
		return ""
	}
	filled := min(max(score, 0), ScoreMax) * width / ScoreMax
	return r.style(barFill, strings.Repeat("█", filled)) +
		r.style(barEmpty, strings.Repeat("░", width-filled))
}

// Results renders the result card for res. name, when set, personalizes
// the heading.
func (r Renderer) Results(res quiz.Results, name string) string {
	info := res.ADHDType.Info()
	var b strings.Builder

	heading := "Your ADHD profile"
	if name != "" {
		heading = fmt.Sprintf("%s's ADHD profile", textutil.Capitalize(name))
	}
	b.WriteString(r.style(headingStyle, heading))
	b.WriteString("\n\n")

	title := info.Name
	if info.Emoji != "" {
		title = info.Emoji + "  " + title
	}
	b.WriteString(title)
	b.WriteString("\n")
	if info.Description != "" {
		b.WriteString(r.style(labelStyle, lipgloss.NewStyle().Width(r.width()-4).Render(info.Description)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	barWidth := max(r.width()-30, 10)
	for _, l := range ScoreLines(res) {
		fmt.Fprintf(&b, "%s %s %2d/%d\n",
			r.style(labelStyle, fmt.Sprintf("%-13s", l.Label)), r.Bar(l.Score, barWidth), l.Score, ScoreMax)
	}

	b.WriteString("\n")
	b.WriteString(r.style(headingStyle, "Primary challenges"))
	b.WriteString("\n")
	if len(res.PrimaryChallenges) == 0 {
		b.WriteString("  None identified\n")
	}
	for _, c := range res.PrimaryChallenges {
		fmt.Fprintf(&b, "  • %s\n", c)
	}

	out := strings.TrimRight(b.String(), "\n")
	if r.Styled {
		return cardStyle.Width(r.width()).Render(out)
	}
	return out
}

// Markdown renders advice text. Styled output uses glamour's dark theme,
// plain output its notty theme.
func (r Renderer) Markdown(md string) (string, error) {
	style := "notty"
	if r.Styled {
		style = "dark"
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(r.width()),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}

// History renders completed assessments, newest first, as a table.
func (r Renderer) History(events []store.ResultEvent, now time.Time) string {
	if len(events) == 0 {
		return "No completed assessments yet."
	}

	var b strings.Builder
	header := fmt.Sprintf("%-5s  %-18s  %-14s  %-22s  %5s  %5s  %s",
		"ID", "When", "Name", "Type", "Focus", "Org", "Top challenge")
	b.WriteString(r.style(headingStyle, header))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(r.width(), lipgloss.Width(header)+10)))
	b.WriteString("\n")

	for _, e := range events {
		top := "-"
		if len(e.PrimaryChallenges) > 0 {
			top = e.PrimaryChallenges[0]
		}
		name := e.FirstName
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(&b, "%-5d  %-18s  %-14s  %-22s  %5d  %5d  %s\n",
			e.ID,
			textutil.Truncate(textutil.Ago(e.Timestamp, now), 18),
			textutil.Truncate(name, 11),
			textutil.Truncate(quiz.ADHDType(e.ADHDType).Info().Name, 19),
			e.FocusScore,
			e.OrganizationScore,
			top,
		)
	}
	return strings.TrimRight(b.String(), "\n")
}
