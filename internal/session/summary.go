package session

import (
	"time"

	"github.com/adhdflow/adhdflow/internal/quiz"
)

// Summary is what the results views show about a finished session.
type Summary struct {
	FirstName   string
	Results     quiz.Results
	AnswerCount int
	Duration    time.Duration
}

// BuildSummary describes a completed session. It returns ErrNoResults when
// the session has not been scored.
func BuildSummary(s State) (*Summary, error) {
	if !s.HasResults() {
		return nil, ErrNoResults
	}

	var d time.Duration
	if !s.StartedAt.IsZero() && s.UpdatedAt.After(s.StartedAt) {
		d = s.UpdatedAt.Sub(s.StartedAt)
	}

	return &Summary{
		FirstName:   s.FirstName,
		Results:     s.Results.Clone(),
		AnswerCount: len(s.Answers),
		Duration:    d,
	}, nil
}
