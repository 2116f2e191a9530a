package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhdflow/adhdflow/internal/quiz"
	"github.com/adhdflow/adhdflow/internal/session"
	"github.com/adhdflow/adhdflow/internal/store"
)

func defaultBank(t *testing.T) *quiz.Bank {
	t.Helper()
	b, err := quiz.DefaultBank()
	require.NoError(t, err)
	return b
}

// highestAnswers answers every question with its last option, giving only
// question and option IDs.
func highestAnswers(t *testing.T, b *quiz.Bank) []quiz.Answer {
	t.Helper()
	var out []quiz.Answer
	for _, q := range b.Questions {
		out = append(out, quiz.Answer{QuestionID: q.ID, OptionID: q.Options[len(q.Options)-1].ID})
	}
	return out
}

func TestScoreAnswers_ResolvesFromBank(t *testing.T) {
	b := defaultBank(t)
	data, err := json.Marshal(highestAnswers(t, b))
	require.NoError(t, err)

	res, err := scoreAnswers(b, bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, quiz.TypeCombined, res.ADHDType)
	assert.Equal(t, 10, res.InattentiveScore)
	assert.Equal(t, 10, res.HyperactiveScore)
}

func TestScoreAnswers_UnknownQuestionScoredAsGiven(t *testing.T) {
	b := defaultBank(t)
	in := `[{"questionId": 999, "optionId": "x", "value": 40, "type": "inattentive"}]`

	res, err := scoreAnswers(b, strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 10, res.InattentiveScore)
	assert.Equal(t, 0, res.HyperactiveScore)
}

func TestScoreAnswers_BadJSON(t *testing.T) {
	_, err := scoreAnswers(defaultBank(t), strings.NewReader("{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode answers")
}

func TestWriteResults(t *testing.T) {
	res := quiz.ComputeResults(nil, quiz.DefaultAxisMax)

	var js bytes.Buffer
	require.NoError(t, writeResults(&js, res, "", true))
	assert.Contains(t, js.String(), `"adhdType": "Unspecified"`)

	var plain bytes.Buffer
	require.NoError(t, writeResults(&plain, res, "sam", false))
	assert.Contains(t, plain.String(), "Sam's ADHD profile")
	assert.Contains(t, plain.String(), "None identified")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, session.State{}, false))
	assert.Contains(t, buf.String(), "No completed assessment yet")

	assert.Error(t, printSummary(&bytes.Buffer{}, session.State{}, true))

	b := defaultBank(t)
	res := b.Compute(resolveAnswers(b, highestAnswers(t, b)))
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	st := session.State{
		Answers:    highestAnswers(t, b),
		FirstName:  "ada",
		IsComplete: true,
		Results:    &res,
		StartedAt:  start,
		UpdatedAt:  start.Add(4 * time.Minute),
	}

	buf.Reset()
	require.NoError(t, printSummary(&buf, st, false))
	assert.Contains(t, buf.String(), "Ada's ADHD profile")
	assert.Contains(t, buf.String(), "20 answers, completed in 4m0s")

	buf.Reset()
	require.NoError(t, printSummary(&buf, st, true))
	var got struct {
		FirstName   string       `json:"firstName"`
		AnswerCount int          `json:"answerCount"`
		DurationSec int64        `json:"durationSeconds"`
		Results     quiz.Results `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "ada", got.FirstName)
	assert.Equal(t, 20, got.AnswerCount)
	assert.Equal(t, int64(240), got.DurationSec)
	assert.Equal(t, res, got.Results)
}

func TestPrintBank(t *testing.T) {
	b := defaultBank(t)

	var buf bytes.Buffer
	require.NoError(t, printBank(&buf, b, false))
	assert.True(t, strings.HasPrefix(buf.String(), "20 questions"))
	assert.Contains(t, buf.String(), b.Questions[0].Text)

	buf.Reset()
	require.NoError(t, printBank(&buf, b, true))
	var got quiz.Bank
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, b.Len(), got.Len())
}

func TestListContentTypes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listContentTypes(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "daily-tips"))
}

func TestPrintLLMEvents(t *testing.T) {
	var buf bytes.Buffer
	printLLMEvents(&buf, nil)
	assert.Equal(t, "No LLM events found.\n", buf.String())

	buf.Reset()
	printLLMEvents(&buf, []store.LLMEvent{
		{ID: 7, Timestamp: time.Now(), LLMRequestEventData: store.LLMRequestEventData{
			Purpose: "tips", Model: "llama-3.3-70b-versatile", InputTokens: 120, OutputTokens: 300, Success: true,
		}},
		{ID: 8, Timestamp: time.Now(), LLMRequestEventData: store.LLMRequestEventData{Purpose: "tips", Model: "m"}},
	})
	out := buf.String()
	assert.Contains(t, out, "llama-3.3-70b-versatile")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "✗")
}

func TestPrintLLMEvent(t *testing.T) {
	var buf bytes.Buffer
	printLLMEvent(&buf, &store.LLMEvent{ID: 3, LLMRequestEventData: store.LLMRequestEventData{
		Provider: "groq", RequestBody: `{"system":"x"}`, ErrorMessage: "boom",
	}})
	out := buf.String()
	assert.Contains(t, out, "Provider:  groq")
	assert.Contains(t, out, "Error:     boom")
	assert.Contains(t, out, `{"system":"x"}`)
	assert.Contains(t, out, "(not captured)")
}

func TestPrintLLMStats(t *testing.T) {
	var buf bytes.Buffer
	printLLMStats(&buf, nil, nil)
	assert.Equal(t, "No LLM usage recorded yet.\n", buf.String())

	buf.Reset()
	printLLMStats(&buf,
		[]store.LLMPurposeUsage{{Purpose: "tips", Calls: 2, InputTokens: 1500, OutputTokens: 2500, AvgLatencyMs: 900}},
		[]store.LLMModelUsage{{Model: "unpriced-model", Calls: 2, InputTokens: 1500, OutputTokens: 2500}},
	)
	out := buf.String()
	assert.Contains(t, out, "4,000")
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "Pricing unavailable for: unpriced-model")
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0012", formatCost(0.00123))
	assert.Equal(t, "$1.50", formatCost(1.5))
}

func TestScoreThenReset_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "adhdflow.db")
	answersPath := filepath.Join(dir, "answers.json")

	data, err := json.Marshal(highestAnswers(t, defaultBank(t)))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(answersPath, data, 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"--db", dbPath, "score", "--json", answersPath})
	require.NoError(t, rootCmd.Execute())
	var res quiz.Results
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, quiz.TypeCombined, res.ADHDType)

	out.Reset()
	rootCmd.SetArgs([]string{"--db", dbPath, "reset"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "Assessment reset.\n", out.String())

	out.Reset()
	rootCmd.SetArgs([]string{"--db", dbPath, "results"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "No completed assessment yet")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "adhdflow (devel)\n", out.String())
}
